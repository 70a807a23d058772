package evaluate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/smehta/examiner/internal/calibration"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/mapping"
)

type stubScorer struct {
	text *TextScore
	math *MathScore
	code *CodeScore
	err  error
}

func (s *stubScorer) ScoreText(ctx context.Context, req ScoreRequest) (*TextScore, error) {
	return s.text, s.err
}

func (s *stubScorer) ScoreMath(ctx context.Context, req ScoreRequest) (*MathScore, error) {
	return s.math, s.err
}

func (s *stubScorer) ScoreCode(ctx context.Context, req ScoreRequest) (*CodeScore, error) {
	return s.code, s.err
}

func (s *stubScorer) ModelID() string { return "stub-model" }

func attemptedSpan(q exam.Question, text string) mapping.AnswerSpan {
	return mapping.AnswerSpan{Question: q, Text: text, Attempted: true}
}

func TestEvaluateUnattempted(t *testing.T) {
	r := NewRouter(&stubScorer{}, nil)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", mapping.AnswerSpan{Question: q}, q, exam.ModelAnswer{})
	if result.Marks != 0 {
		t.Errorf("marks = %v, want 0", result.Marks)
	}
	if result.Feedback != "No answer provided." {
		t.Errorf("feedback = %q", result.Feedback)
	}
	if result.NeedsReview {
		t.Error("unattempted answers do not need review")
	}
}

func TestEvaluateDispatchesText(t *testing.T) {
	scorer := &stubScorer{text: &TextScore{
		MarksAwarded: 4,
		Feedback:     "Covers the main points.",
		Strengths:    []string{"clear definition"},
		Confidence:   0.9,
	}}
	r := NewRouter(scorer, nil)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}
	model := exam.ModelAnswer{Text: "A process is a program in execution.", Keywords: []string{"process", "program"}}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "A process is a program in execution."), q, model)
	if result.Marks != 4 {
		t.Errorf("marks = %v, want 4", result.Marks)
	}
	if result.Model != "stub-model" {
		t.Errorf("model = %q, want stub-model", result.Model)
	}
	if result.Breakdown.KeywordsMatched != 2 {
		t.Errorf("keywords matched = %d, want 2", result.Breakdown.KeywordsMatched)
	}
	if result.Breakdown.TotalKeywords != 2 {
		t.Errorf("total keywords = %d, want 2", result.Breakdown.TotalKeywords)
	}
}

func TestEvaluateDispatchesMath(t *testing.T) {
	scorer := &stubScorer{math: &MathScore{
		MarksAwarded:       3,
		CorrectSteps:       2,
		TotalSteps:         3,
		FinalAnswerCorrect: true,
		MethodScore:        0.8,
		Confidence:         0.85,
	}}
	r := NewRouter(scorer, nil)
	q := exam.Question{Number: "2", Type: exam.TypeMath, MaxMarks: 4}

	result := r.Evaluate(context.Background(), "MA101", attemptedSpan(q, "Step 1: x=2\nStep 2: y=4"), q, exam.ModelAnswer{Text: "x=2, y=4"})
	if result.Marks != 3 {
		t.Errorf("marks = %v, want 3", result.Marks)
	}
	if !result.Breakdown.FinalAnswerCorrect {
		t.Error("expected final answer correct")
	}
	if result.Breakdown.CorrectSteps != 2 {
		t.Errorf("correct steps = %d, want 2", result.Breakdown.CorrectSteps)
	}
}

func TestEvaluateDispatchesChoiceWithoutScorer(t *testing.T) {
	r := NewRouter(&stubScorer{err: errors.New("must not be called")}, nil)
	q := exam.Question{Number: "3", Type: exam.TypeChoice, MaxMarks: 1}
	model := exam.ModelAnswer{CorrectOption: "B"}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "(B)"), q, model)
	if result.Marks != 1 {
		t.Errorf("marks = %v, want 1", result.Marks)
	}
	if result.NeedsReview {
		t.Error("correct choice should not need review")
	}
}

func TestEvaluateDispatchesDiagramWithoutScorer(t *testing.T) {
	r := NewRouter(&stubScorer{err: errors.New("must not be called")}, nil)
	q := exam.Question{Number: "4", Type: exam.TypeDiagram, MaxMarks: 5}
	model := exam.ModelAnswer{Components: []string{"CPU", "ALU"}}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "CPU → ALU"), q, model)
	if !result.NeedsReview {
		t.Error("diagram result must need review")
	}
	if result.Marks != 5 {
		t.Errorf("marks = %v, want 5", result.Marks)
	}
}

func TestEvaluateScorerFailure(t *testing.T) {
	r := NewRouter(&stubScorer{err: errors.New("provider unavailable")}, nil)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "some answer"), q, exam.ModelAnswer{})
	if result.Marks != 0 {
		t.Errorf("marks = %v, want 0", result.Marks)
	}
	if !result.NeedsReview {
		t.Error("scorer failure must flag review")
	}
	if result.EvaluationConfidence != 0 {
		t.Errorf("confidence = %v, want 0", result.EvaluationConfidence)
	}
	if !strings.HasPrefix(result.Feedback, ScoringErrorMarker) {
		t.Errorf("feedback = %q, want %s prefix", result.Feedback, ScoringErrorMarker)
	}
}

func TestEvaluateAppliesCalibration(t *testing.T) {
	cal := calibration.New()
	key := calibration.Key{CourseCode: "CS301", QuestionType: exam.TypeText}
	cal.Record(key, 3, 4) // first sample moves delta to +0.3

	scorer := &stubScorer{text: &TextScore{MarksAwarded: 3, Confidence: 0.9}}
	r := NewRouter(scorer, cal)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "answer"), q, exam.ModelAnswer{})
	if result.Marks != 3.3 {
		t.Errorf("calibrated marks = %v, want 3.3", result.Marks)
	}
	if result.Breakdown.RawMarks != 3 {
		t.Errorf("raw marks = %v, want 3", result.Breakdown.RawMarks)
	}
	if result.Breakdown.CalibratedMarks != 3.3 {
		t.Errorf("calibrated breakdown = %v, want 3.3", result.Breakdown.CalibratedMarks)
	}
}

func TestEvaluateCalibrationClampsToMax(t *testing.T) {
	cal := calibration.New()
	key := calibration.Key{CourseCode: "CS301", QuestionType: exam.TypeText}
	for i := 0; i < 3; i++ {
		cal.Record(key, 0, 5) // delta converges toward +5
	}

	scorer := &stubScorer{text: &TextScore{MarksAwarded: 4, Confidence: 0.9}}
	r := NewRouter(scorer, cal)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "answer"), q, exam.ModelAnswer{})
	if result.Marks != 5 {
		t.Errorf("marks = %v, want clamp to 5", result.Marks)
	}
}

func TestEvaluateScorerFailureSkipsCalibration(t *testing.T) {
	cal := calibration.New()
	key := calibration.Key{CourseCode: "CS301", QuestionType: exam.TypeText}
	for i := 0; i < 3; i++ {
		cal.Record(key, 0, 5) // lenient bucket with a large positive delta
	}

	r := NewRouter(&stubScorer{err: errors.New("provider unavailable")}, cal)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "some answer"), q, exam.ModelAnswer{})
	if result.Marks != 0 {
		t.Errorf("marks = %v, want 0", result.Marks)
	}
	if result.Breakdown.RawMarks != 0 || result.Breakdown.CalibratedMarks != 0 {
		t.Errorf("breakdown = (%v, %v), want (0, 0)",
			result.Breakdown.RawMarks, result.Breakdown.CalibratedMarks)
	}
	if !result.NeedsReview {
		t.Error("scorer failure must flag review")
	}
}

func TestEvaluateClampsRawMarksAboveMax(t *testing.T) {
	scorer := &stubScorer{text: &TextScore{MarksAwarded: 9, Confidence: 0.9}}
	r := NewRouter(scorer, nil)
	q := exam.Question{Number: "1", Type: exam.TypeText, MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "answer"), q, exam.ModelAnswer{})
	if result.Marks != 5 {
		t.Errorf("marks = %v, want 5", result.Marks)
	}
	if result.Breakdown.RawMarks != 5 {
		t.Errorf("raw marks = %v, want 5", result.Breakdown.RawMarks)
	}
}

func TestEvaluateUnknownTypeGradesAsText(t *testing.T) {
	scorer := &stubScorer{text: &TextScore{MarksAwarded: 2, Confidence: 0.7}}
	r := NewRouter(scorer, nil)
	q := exam.Question{Number: "1", Type: exam.AnswerType("essay"), MaxMarks: 5}

	result := r.Evaluate(context.Background(), "CS301", attemptedSpan(q, "answer"), q, exam.ModelAnswer{})
	if result.Marks != 2 {
		t.Errorf("marks = %v, want 2", result.Marks)
	}
}
