package exam

import (
	"regexp"
	"strconv"
	"strings"
)

// Question-paper parsing: extracts numbered questions, marks allocation
// and a Bloom level from recognized question-paper text. This is a
// convenience for building a Question list when no structured paper is
// available; finalized papers should be authored directly.

// questionHeadings match the start of a question; the body runs from the
// end of the heading to the start of the next heading (or end of paper).
var questionHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Q\.?\s*(\d+[a-z]?)\s*[:\.\)]`),
	regexp.MustCompile(`(?i)Question\s+(\d+[a-z]?)\s*[:\.\)]`),
	regexp.MustCompile(`(?im)^\s*(\d+[a-z]?)\s*[\.\)]`),
}

var marksPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[(\d+)\s*marks?\]`),
	regexp.MustCompile(`(?i)\((\d+)\s*marks?\)`),
	regexp.MustCompile(`(?i)Marks?\s*[:\-]\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*marks?`),
}

// bloomKeywords maps each taxonomy level to the instruction verbs that
// signal it. Checked in order; first hit wins.
var bloomKeywords = []struct {
	level    BloomLevel
	keywords []string
}{
	{BloomRemember, []string{"define", "list", "name", "identify", "recall", "state", "what is"}},
	{BloomUnderstand, []string{"explain", "describe", "summarize", "interpret", "discuss", "compare"}},
	{BloomApply, []string{"apply", "demonstrate", "calculate", "solve", "use", "implement"}},
	{BloomAnalyze, []string{"analyze", "examine", "differentiate", "distinguish", "investigate"}},
	{BloomEvaluate, []string{"evaluate", "assess", "justify", "critique", "argue", "defend"}},
	{BloomCreate, []string{"design", "create", "develop", "formulate", "construct", "propose"}},
}

// DefaultMaxMarks is assumed when a question carries no marks tag.
const DefaultMaxMarks = 5

// ParsePaper extracts questions from recognized question-paper text.
// The first heading style that matches anything is used for the whole
// paper, mirroring how papers keep a single numbering style throughout.
func ParsePaper(text string) []Question {
	for _, pat := range questionHeadings {
		idx := pat.FindAllStringSubmatchIndex(text, -1)
		if len(idx) == 0 {
			continue
		}

		var questions []Question
		for i, m := range idx {
			number := text[m[2]:m[3]]
			bodyEnd := len(text)
			if i+1 < len(idx) {
				bodyEnd = idx[i+1][0]
			}
			body := strings.TrimSpace(text[m[1]:bodyEnd])
			if len(body) < 5 {
				continue
			}
			questions = append(questions, Question{
				Number:   NormalizeIdentifier(number),
				Ordinal:  len(questions) + 1,
				Text:     body,
				MaxMarks: ExtractMarks(body),
				Bloom:    InferBloomLevel(body),
				Type:     DetectAnswerType(body),
			})
		}
		if len(questions) > 0 {
			return questions
		}
	}
	return nil
}

// ExtractMarks finds a marks allocation tag in the question text.
// Returns DefaultMaxMarks when none is present.
func ExtractMarks(text string) float64 {
	for _, pat := range marksPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return float64(n)
			}
		}
	}
	return DefaultMaxMarks
}

// InferBloomLevel classifies the question's cognitive demand from its
// instruction verbs. Defaults to Understand.
func InferBloomLevel(text string) BloomLevel {
	lower := strings.ToLower(text)

	// Explicit level mention wins.
	for _, entry := range bloomKeywords {
		if strings.Contains(lower, strings.ToLower(string(entry.level))) {
			return entry.level
		}
	}

	for _, entry := range bloomKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.level
			}
		}
	}
	return BloomUnderstand
}

// DetectAnswerType guesses the answer type from question phrasing.
func DetectAnswerType(text string) AnswerType {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "choose the correct"),
		strings.Contains(lower, "select the correct"),
		strings.Contains(lower, "which of the following"):
		return TypeChoice
	case strings.Contains(lower, "draw"),
		strings.Contains(lower, "sketch"),
		strings.Contains(lower, "diagram"):
		return TypeDiagram
	case strings.Contains(lower, "write a program"),
		strings.Contains(lower, "write code"),
		strings.Contains(lower, "function"),
		strings.Contains(lower, "algorithm"):
		return TypeCode
	case strings.Contains(lower, "solve"),
		strings.Contains(lower, "calculate"),
		strings.Contains(lower, "evaluate the expression"),
		strings.Contains(lower, "derive"):
		return TypeMath
	}
	return TypeText
}
