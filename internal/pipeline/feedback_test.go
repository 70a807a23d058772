package pipeline

import (
	"strings"
	"testing"

	"github.com/smehta/examiner/internal/confidence"
	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
)

func answer(qtype exam.AnswerType, marks, max float64, review bool) AnswerFeedback {
	return AnswerFeedback{
		QuestionType: qtype,
		Attempted:    true,
		Percentage:   percentage(marks, max),
		Evaluation:   evaluate.EvaluationResult{Marks: marks, MaxMarks: max},
		Confidence:   confidence.Record{NeedsReview: review},
	}
}

func TestSuggestionsByBand(t *testing.T) {
	tests := []struct {
		marks, max float64
		wantFirst  string
	}{
		{1, 5, "Review fundamental concepts for this topic"},
		{3, 5, "Good attempt, but more detail needed"},
		{5, 5, "Excellent work! Minor improvements possible"},
	}

	for _, tt := range tests {
		got := suggestions(evaluate.EvaluationResult{Marks: tt.marks, MaxMarks: tt.max})
		if got[0] != tt.wantFirst {
			t.Errorf("suggestions(%v/%v)[0] = %q, want %q", tt.marks, tt.max, got[0], tt.wantFirst)
		}
	}
}

func TestSuggestionsLowKeywordCoverage(t *testing.T) {
	eval := evaluate.EvaluationResult{
		Marks:    4,
		MaxMarks: 5,
		Breakdown: evaluate.Breakdown{
			KeywordsMatched: 1,
			TotalKeywords:   4,
		},
	}
	got := suggestions(eval)
	last := got[len(got)-1]
	if !strings.Contains(last, "1/4 mentioned") {
		t.Errorf("suggestions = %q, want keyword coverage note", got)
	}
}

func TestSummarizeBreakdown(t *testing.T) {
	answers := []AnswerFeedback{
		answer(exam.TypeText, 5, 5, false), // excellent
		answer(exam.TypeText, 3, 5, false), // 60, good
		answer(exam.TypeMath, 2, 5, false), // 40, average
		answer(exam.TypeCode, 1, 5, true),  // 20, poor
	}

	s := summarize(answers, 55)
	if s.Performance.Excellent != 1 || s.Performance.Good != 1 || s.Performance.Average != 1 || s.Performance.Poor != 1 {
		t.Errorf("breakdown = %+v, want 1/1/1/1", s.Performance)
	}
	if s.FlaggedForReview != 1 {
		t.Errorf("flagged = %d, want 1", s.FlaggedForReview)
	}
	if !s.FacultyActionRequired {
		t.Error("flagged answers require faculty action")
	}
	if s.OverallAssessment != "Average" {
		t.Errorf("assessment = %q, want Average", s.OverallAssessment)
	}
}

func TestAssessBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{90, "Excellent"},
		{80, "Excellent"},
		{65, "Good"},
		{45, "Average"},
		{10, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := assess(tt.pct); got != tt.want {
			t.Errorf("assess(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestIdentifyStrengthsMajorityHighScores(t *testing.T) {
	answers := []AnswerFeedback{
		answer(exam.TypeText, 5, 5, false),
		answer(exam.TypeText, 4.5, 5, false),
		answer(exam.TypeMath, 1, 5, false),
	}

	got := identifyStrengths(answers)
	if len(got) == 0 || got[0] != "Strong overall understanding of course material" {
		t.Errorf("strengths = %q", got)
	}
	// Text averages 95, so the type-level strength follows.
	found := false
	for _, s := range got {
		if s == "Excellent performance in text questions" {
			found = true
		}
	}
	if !found {
		t.Errorf("strengths = %q, want text-type strength", got)
	}
}

func TestIdentifyImprovementsWeakType(t *testing.T) {
	answers := []AnswerFeedback{
		answer(exam.TypeMath, 1, 5, false),
		answer(exam.TypeMath, 2, 5, false),
		answer(exam.TypeText, 5, 5, false),
	}

	got := identifyImprovements(answers)
	if len(got) == 0 {
		t.Fatal("expected improvement areas")
	}
	if !strings.Contains(got[0], "2 questions that need more attention") {
		t.Errorf("improvements[0] = %q", got[0])
	}
	found := false
	for _, s := range got {
		if s == "Practice more math questions" {
			found = true
		}
	}
	if !found {
		t.Errorf("improvements = %q, want math practice note", got)
	}
}

func TestSummaryCapsListsAtThree(t *testing.T) {
	var answers []AnswerFeedback
	for _, qt := range []exam.AnswerType{exam.TypeText, exam.TypeMath, exam.TypeCode, exam.TypeDiagram, exam.TypeChoice} {
		answers = append(answers, answer(qt, 1, 5, false))
	}

	got := identifyImprovements(answers)
	if len(got) > 3 {
		t.Errorf("improvements = %d entries, want at most 3", len(got))
	}
}
