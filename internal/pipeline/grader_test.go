package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/smehta/examiner/internal/calibration"
	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/ocr"
	"github.com/smehta/examiner/internal/store"
)

type fixedScorer struct {
	text evaluate.TextScore
	err  error
}

func (s *fixedScorer) ScoreText(ctx context.Context, req evaluate.ScoreRequest) (*evaluate.TextScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	score := s.text
	return &score, nil
}

func (s *fixedScorer) ScoreMath(ctx context.Context, req evaluate.ScoreRequest) (*evaluate.MathScore, error) {
	return nil, errors.New("not used")
}

func (s *fixedScorer) ScoreCode(ctx context.Context, req evaluate.ScoreRequest) (*evaluate.CodeScore, error) {
	return nil, errors.New("not used")
}

func (s *fixedScorer) ModelID() string { return "fixed" }

const sheetText = `Roll No: CS2021001
Name: Priya Sharma
Course: CS301
Date: 12/05/2026

Q1: A process is a program in execution with its own address space.

Q2: Answer: B
`

func testQuestions() []exam.Question {
	return []exam.Question{
		{Number: "1", Ordinal: 1, Text: "Define a process.", MaxMarks: 5, Type: exam.TypeText},
		{Number: "2", Ordinal: 2, Text: "Pick the correct option.", MaxMarks: 1, Type: exam.TypeChoice},
	}
}

func testKey() map[string]exam.ModelAnswer {
	return map[string]exam.ModelAnswer{
		"1": {Text: "A process is a program in execution.", Keywords: []string{"process", "execution"}},
		"2": {CorrectOption: "B"},
	}
}

func testGrader(scorer evaluate.Scorer, events store.EventRepo) *Grader {
	recognizer := ocr.NewMockRecognizer(map[string]*ocr.Result{
		"sheet-1": {Text: sheetText, Confidence: 0.9},
	})
	router := evaluate.NewRouter(scorer, calibration.New())
	return New(recognizer, router, events)
}

func TestGradeSheet(t *testing.T) {
	scorer := &fixedScorer{text: evaluate.TextScore{MarksAwarded: 4, Feedback: "Good.", Confidence: 0.9}}
	g := testGrader(scorer, nil)

	result, err := g.GradeSheet(context.Background(), "sheet-1", testQuestions(), testKey())
	if err != nil {
		t.Fatalf("GradeSheet: %v", err)
	}

	if result.Header.RollNumber != "CS2021001" {
		t.Errorf("roll number = %q", result.Header.RollNumber)
	}
	if result.Header.CourseCode != "CS301" {
		t.Errorf("course = %q", result.Header.CourseCode)
	}
	if result.SheetID == "" {
		t.Error("sheet ID must be set")
	}
	if len(result.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(result.Answers))
	}
	if result.TotalMarks != 5 { // 4 text + 1 choice
		t.Errorf("total marks = %v, want 5", result.TotalMarks)
	}
	if result.MaxMarks != 6 {
		t.Errorf("max marks = %v, want 6", result.MaxMarks)
	}
	if result.Summary.AttemptedQuestions != 2 {
		t.Errorf("attempted = %d, want 2", result.Summary.AttemptedQuestions)
	}
}

func TestGradeSheetScorerFailureIsNotFatal(t *testing.T) {
	g := testGrader(&fixedScorer{err: errors.New("provider down")}, nil)

	result, err := g.GradeSheet(context.Background(), "sheet-1", testQuestions(), testKey())
	if err != nil {
		t.Fatalf("GradeSheet: %v", err)
	}

	textAnswer := result.Answers[0]
	if textAnswer.Evaluation.Marks != 0 {
		t.Errorf("failed scorer marks = %v, want 0", textAnswer.Evaluation.Marks)
	}
	if !textAnswer.Confidence.NeedsReview {
		t.Error("failed scoring must flag review")
	}

	// The choice question is deterministic and unaffected.
	if result.Answers[1].Evaluation.Marks != 1 {
		t.Errorf("choice marks = %v, want 1", result.Answers[1].Evaluation.Marks)
	}
}

func TestGradeSheetRecognizerFailure(t *testing.T) {
	recognizer := ocr.NewMockRecognizer(nil)
	router := evaluate.NewRouter(&fixedScorer{}, nil)
	g := New(recognizer, router, nil)

	if _, err := g.GradeSheet(context.Background(), "missing", testQuestions(), testKey()); err == nil {
		t.Fatal("expected recognition error")
	}
}

func TestGradeSheetNoQuestions(t *testing.T) {
	g := testGrader(&fixedScorer{}, nil)

	if _, err := g.GradeSheet(context.Background(), "sheet-1", nil, testKey()); err == nil {
		t.Fatal("expected mapping error for empty question list")
	}
}

func TestGradeSheetBlankSheet(t *testing.T) {
	recognizer := ocr.NewMockRecognizer(map[string]*ocr.Result{
		"blank": {Text: "illegible scrawl", Confidence: 0.3},
	})
	router := evaluate.NewRouter(&fixedScorer{}, nil)
	g := New(recognizer, router, nil)

	result, err := g.GradeSheet(context.Background(), "blank", testQuestions(), testKey())
	if err != nil {
		t.Fatalf("GradeSheet: %v", err)
	}
	if !result.NoMarkersFound {
		t.Error("expected NoMarkersFound on a markerless sheet")
	}
	if result.TotalMarks != 0 {
		t.Errorf("total marks = %v, want 0", result.TotalMarks)
	}
	if result.Summary.AttemptedQuestions != 0 {
		t.Errorf("attempted = %d, want 0", result.Summary.AttemptedQuestions)
	}
}

type captureEvents struct {
	store.EventRepo
	evals []store.EvaluationEventData
}

func (c *captureEvents) AppendEvaluation(_ context.Context, data store.EvaluationEventData) error {
	c.evals = append(c.evals, data)
	return nil
}

func TestGradeSheetPersistsEvaluations(t *testing.T) {
	events := &captureEvents{}
	scorer := &fixedScorer{text: evaluate.TextScore{MarksAwarded: 4, Confidence: 0.9}}
	g := testGrader(scorer, events)

	if _, err := g.GradeSheet(context.Background(), "sheet-1", testQuestions(), testKey()); err != nil {
		t.Fatalf("GradeSheet: %v", err)
	}

	if len(events.evals) != 2 {
		t.Fatalf("persisted events = %d, want 2", len(events.evals))
	}
	first := events.evals[0]
	if first.RollNumber != "CS2021001" || first.CourseCode != "CS301" {
		t.Errorf("event identity = %s/%s", first.RollNumber, first.CourseCode)
	}
	if first.QuestionType != "text" {
		t.Errorf("question type = %q, want text", first.QuestionType)
	}
	if first.CalibratedMarks != 4 {
		t.Errorf("calibrated marks = %v, want 4", first.CalibratedMarks)
	}
}
