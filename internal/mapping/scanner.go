// Package mapping locates question markers in recognized sheet text and
// partitions the text into per-question answer spans. Students answer in
// any order; the whole document is scanned before any question is
// declared unattempted.
package mapping

import (
	"regexp"
	"sort"
)

// Marker is one recognized question-identifier occurrence.
type Marker struct {
	// Identifier is the captured surface form, e.g. "1", "5a".
	Identifier string

	// Start is the byte offset of the marker token in the source text.
	Start int

	// End is the byte offset just past the marker token. The answer
	// span for this marker begins here.
	End int
}

// markerPatterns are the accepted identifier surface forms. Group 1
// captures the identifier.
var markerPatterns = []*regexp.Regexp{
	// Q1: / Q.1) / q 2.
	regexp.MustCompile(`(?i)Q\.?\s*(\d+[a-z]?)\s*[:\.\)]`),
	// Question 1: / question 3)
	regexp.MustCompile(`(?i)Question\s+(\d+[a-z]?)\s*[:\.\)]`),
	// 1. or 1) at start of line
	regexp.MustCompile(`(?im)^\s*(\d+[a-z]?)\s*[\.\)]`),
	// (1) or (1a)
	regexp.MustCompile(`\((\d+[a-z]?)\)`),
}

// ScanMarkers finds every question-identifier occurrence in text, in
// document order. Candidates starting at the same offset resolve to the
// longest (most specific) form. Pure function of its input.
func ScanMarkers(text string) []Marker {
	var found []Marker
	for _, pat := range markerPatterns {
		for _, m := range pat.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, Marker{
				Identifier: text[m[2]:m[3]],
				Start:      m[0],
				End:        m[1],
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Start != found[j].Start {
			return found[i].Start < found[j].Start
		}
		// Same offset: longest form first.
		return found[i].End > found[j].End
	})

	// Collapse candidates sharing a start offset; the longest survives.
	out := found[:0]
	lastStart := -1
	for _, m := range found {
		if m.Start == lastStart {
			continue
		}
		out = append(out, m)
		lastStart = m.Start
	}
	return out
}
