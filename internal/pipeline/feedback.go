package pipeline

import (
	"fmt"

	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
)

// suggestions derives actionable study advice from one graded answer.
func suggestions(eval evaluate.EvaluationResult) []string {
	var out []string

	pct := percentage(eval.Marks, eval.MaxMarks)
	switch {
	case pct < 40:
		out = append(out,
			"Review fundamental concepts for this topic",
			"Practice similar problems to improve understanding")
	case pct < 70:
		out = append(out,
			"Good attempt, but more detail needed",
			"Focus on covering all key concepts")
	default:
		out = append(out, "Excellent work! Minor improvements possible")
	}

	matched := eval.Breakdown.KeywordsMatched
	total := eval.Breakdown.TotalKeywords
	if total > 0 && float64(matched) < float64(total)*0.5 {
		out = append(out, fmt.Sprintf("Cover more key concepts (%d/%d mentioned)", matched, total))
	}
	return out
}

// summarize builds the whole-sheet verdict from the per-answer results.
func summarize(answers []AnswerFeedback, overallPct float64) SheetSummary {
	s := SheetSummary{
		TotalQuestions:    len(answers),
		OverallAssessment: assess(overallPct),
	}

	for _, a := range answers {
		if a.Attempted {
			s.AttemptedQuestions++
		}
		if a.Confidence.NeedsReview {
			s.FlaggedForReview++
		}
		switch {
		case a.Percentage >= 80:
			s.Performance.Excellent++
		case a.Percentage >= 60:
			s.Performance.Good++
		case a.Percentage >= 40:
			s.Performance.Average++
		default:
			s.Performance.Poor++
		}
	}

	s.Strengths = identifyStrengths(answers)
	s.AreasForImprovement = identifyImprovements(answers)
	s.FacultyActionRequired = s.FlaggedForReview > 0
	return s
}

func assess(pct float64) string {
	switch {
	case pct >= 80:
		return "Excellent"
	case pct >= 60:
		return "Good"
	case pct >= 40:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// identifyStrengths reports up to three whole-sheet strengths.
func identifyStrengths(answers []AnswerFeedback) []string {
	var out []string

	highScoring := 0
	for _, a := range answers {
		if a.Percentage >= 80 {
			highScoring++
		}
	}
	if len(answers) > 0 && float64(highScoring) > float64(len(answers))*0.5 {
		out = append(out, "Strong overall understanding of course material")
	}

	for _, qtype := range answerTypes(answers) {
		if avg := averageByType(answers, qtype); avg >= 75 {
			out = append(out, fmt.Sprintf("Excellent performance in %s questions", qtype))
		}
	}
	return top3(out)
}

// identifyImprovements reports up to three improvement areas.
func identifyImprovements(answers []AnswerFeedback) []string {
	var out []string

	lowScoring := 0
	for _, a := range answers {
		if a.Percentage < 50 {
			lowScoring++
		}
	}
	if lowScoring > 0 {
		out = append(out, fmt.Sprintf("Focus on %d questions that need more attention", lowScoring))
	}

	var matched, total int
	for _, a := range answers {
		matched += a.Evaluation.Breakdown.KeywordsMatched
		total += a.Evaluation.Breakdown.TotalKeywords
	}
	if total > 0 && float64(matched)/float64(total) < 0.6 {
		out = append(out, "Cover more key concepts in answers")
	}

	for _, qtype := range answerTypes(answers) {
		if avg := averageByType(answers, qtype); avg < 50 {
			out = append(out, fmt.Sprintf("Practice more %s questions", qtype))
		}
	}
	return top3(out)
}

// answerTypes lists the distinct answer types present, in first-seen
// order so the summary is deterministic.
func answerTypes(answers []AnswerFeedback) []exam.AnswerType {
	seen := make(map[exam.AnswerType]bool)
	var order []exam.AnswerType
	for _, a := range answers {
		if !seen[a.QuestionType] {
			seen[a.QuestionType] = true
			order = append(order, a.QuestionType)
		}
	}
	return order
}

func averageByType(answers []AnswerFeedback, qtype exam.AnswerType) float64 {
	var sum float64
	n := 0
	for _, a := range answers {
		if a.QuestionType == qtype {
			sum += a.Percentage
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func top3(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}
