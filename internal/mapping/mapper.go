package mapping

import (
	"errors"
	"sort"
	"strings"

	"github.com/smehta/examiner/internal/exam"
)

// AnswerSpan attributes one region of sheet text to one question. The
// set of spans returned by MapAnswers is a strict partition of the
// question list: every question appears exactly once.
type AnswerSpan struct {
	Question exam.Question

	// Start/End are offsets into the source text. For a span assembled
	// from duplicate markers, Start is the first segment's start and End
	// the last segment's end; the text between them that belongs to
	// other questions is not part of this span.
	Start int
	End   int

	// Text is the extracted answer text.
	Text string

	// Attempted is true when the span holds more than a trivial amount
	// of text.
	Attempted bool

	// PositionInSheet is the 1-based order in which the student answered
	// this question, by first marker appearance. -1 when no marker for
	// the question was found.
	PositionInSheet int
}

// MappingResult is the outcome of mapping one sheet.
type MappingResult struct {
	// Spans holds exactly one span per question, sorted by ordinal.
	Spans []AnswerSpan

	// NoMarkersFound is set when the sheet contained no recognizable
	// question markers at all. A blank or fully unrecognized sheet is a
	// valid, scoreable outcome, not an error.
	NoMarkersFound bool

	// Extraneous holds markers whose identifier matched no question on
	// the paper. Their text segments are discarded.
	Extraneous []Marker
}

// attemptedMinChars is the minimum trimmed length for a span to count
// as attempted.
const attemptedMinChars = 5

// ErrNoQuestions is returned when MapAnswers is called without a
// question list.
var ErrNoQuestions = errors.New("mapping: question list is empty")

// MapAnswers partitions fullText into per-question answer spans.
//
// Markers are processed in document order. Each marker's segment runs
// from the end of its token to the start of the next marker (or end of
// text). The first marker for a question wins its span; segments of
// later duplicate markers are appended to it, which tolerates OCR noise
// reproducing a marker inside body text. Sub-part identifiers attribute
// to the specific sub-question when declared, else to the parent
// numeral. Questions with no matching marker become unattempted spans;
// but only after the entire document has been scanned.
func MapAnswers(fullText string, questions []exam.Question) (*MappingResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	byID := make(map[string]*exam.Question, len(questions))
	for i := range questions {
		byID[exam.NormalizeIdentifier(questions[i].Number)] = &questions[i]
	}

	markers := ScanMarkers(fullText)
	result := &MappingResult{NoMarkersFound: len(markers) == 0}

	spans := make(map[string]*AnswerSpan, len(questions))
	nextPosition := 1

	for i, m := range markers {
		segStart := m.End
		segEnd := len(fullText)
		if i+1 < len(markers) {
			segEnd = markers[i+1].Start
		}
		segment := strings.TrimSpace(fullText[segStart:segEnd])

		q := resolveQuestion(m.Identifier, byID)
		if q == nil {
			result.Extraneous = append(result.Extraneous, m)
			continue
		}

		key := exam.NormalizeIdentifier(q.Number)
		if span, ok := spans[key]; ok {
			// Duplicate marker: first occurrence keeps the span, the
			// later segment is folded in.
			if segment != "" {
				if span.Text != "" {
					span.Text += "\n"
				}
				span.Text += segment
			}
			span.End = segEnd
			continue
		}

		spans[key] = &AnswerSpan{
			Question:        *q,
			Start:           segStart,
			End:             segEnd,
			Text:            segment,
			PositionInSheet: nextPosition,
		}
		nextPosition++
	}

	// Only now, with the full document scanned, are missing questions
	// declared unattempted.
	for i := range questions {
		key := exam.NormalizeIdentifier(questions[i].Number)
		span, ok := spans[key]
		if !ok {
			result.Spans = append(result.Spans, AnswerSpan{
				Question:        questions[i],
				Attempted:       false,
				PositionInSheet: -1,
			})
			continue
		}
		span.Attempted = len(strings.TrimSpace(span.Text)) > attemptedMinChars
		result.Spans = append(result.Spans, *span)
	}

	sort.SliceStable(result.Spans, func(i, j int) bool {
		return result.Spans[i].Question.Ordinal < result.Spans[j].Question.Ordinal
	})

	return result, nil
}

// resolveQuestion matches a marker identifier against the paper,
// falling back from a sub-part to its parent numeral.
func resolveQuestion(identifier string, byID map[string]*exam.Question) *exam.Question {
	norm := exam.NormalizeIdentifier(identifier)
	if norm == "" {
		return nil
	}
	if q, ok := byID[norm]; ok {
		return q
	}
	if exam.IsSubPart(identifier) {
		if q, ok := byID[exam.ParentIdentifier(identifier)]; ok {
			return q
		}
	}
	return nil
}
