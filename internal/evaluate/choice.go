package evaluate

import (
	"fmt"
	"regexp"
	"strings"
)

// optionPatterns match a selected option letter, most specific first:
// "(A)", then "A.", then labels like "Option A" or "Ans: B", and as a
// last resort the first bare letter anywhere in the text.
var optionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(([A-H])\)`),
	regexp.MustCompile(`([A-H])\.`),
	regexp.MustCompile(`(?:OPTION|ANSWER|ANS)[:\s]*([A-H])`),
	regexp.MustCompile(`([A-H])`),
}

// ExtractSelectedOption finds the option letter a student selected.
// Returns "" when no option can be detected.
func ExtractSelectedOption(answer string) string {
	text := strings.ToUpper(strings.TrimSpace(answer))

	if len(text) == 1 && text[0] >= 'A' && text[0] <= 'H' {
		return text
	}

	for _, pat := range optionPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// evaluateChoice grades a multiple-choice answer by pure comparison.
// No external call, deterministic.
func evaluateChoice(answer, correctOption string, maxMarks float64) EvaluationResult {
	selected := ExtractSelectedOption(answer)
	correct := selected != "" && strings.EqualFold(selected, correctOption)

	var marks float64
	if correct {
		marks = maxMarks
	}

	result := EvaluationResult{
		Marks:                marks,
		MaxMarks:             maxMarks,
		EvaluationConfidence: 1,
		Breakdown: Breakdown{
			RawMarks:        marks,
			CalibratedMarks: marks,
			SelectedOption:  selected,
			CorrectOption:   strings.ToUpper(correctOption),
			Correct:         correct,
		},
	}

	switch {
	case selected == "":
		result.Feedback = "Could not detect the selected option. Please review manually."
		result.NeedsReview = true
		result.ReviewReason = "selected option not detected"
		result.EvaluationConfidence = 0
	case correct:
		result.Feedback = fmt.Sprintf("Correct. Selected option %s.", selected)
	default:
		result.Feedback = fmt.Sprintf("Incorrect. Selected %s, correct answer is %s.",
			selected, strings.ToUpper(correctOption))
	}

	return result
}
