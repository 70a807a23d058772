package evaluate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/smehta/examiner/internal/llm"
)

func TestLLMScorerScoreText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"marks_awarded": 4,
			"feedback": "Good coverage of the concept.",
			"strengths": ["accurate definition"],
			"improvements": ["mention scheduling"],
			"confidence": 0.9
		}`),
	})
	scorer := NewLLMScorer(mock)

	score, err := scorer.ScoreText(context.Background(), ScoreRequest{
		QuestionText:  "Define a process.",
		StudentAnswer: "A process is a program in execution.",
		ModelAnswer:   "A process is a program in execution with its own address space.",
		MaxMarks:      5,
		Keywords:      []string{"process", "execution"},
	})
	if err != nil {
		t.Fatalf("ScoreText: %v", err)
	}
	if score.MarksAwarded != 4 {
		t.Errorf("marks = %v, want 4", score.MarksAwarded)
	}
	if score.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", score.Confidence)
	}

	req := mock.Calls[0]
	if req.Schema.Name == "" {
		t.Error("expected a response schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Define a process.") {
		t.Error("prompt should include the question text")
	}
}

func TestLLMScorerClampsMarks(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockGradedAnswer(12, "ok", 0.8))
	scorer := NewLLMScorer(mock)

	score, err := scorer.ScoreText(context.Background(), ScoreRequest{
		StudentAnswer: "answer",
		MaxMarks:      5,
	})
	if err != nil {
		t.Fatalf("ScoreText: %v", err)
	}
	if score.MarksAwarded != 5 {
		t.Errorf("marks = %v, want clamp to 5", score.MarksAwarded)
	}
}

func TestLLMScorerScoreMath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"marks_awarded": 3,
			"correct_steps": 2,
			"total_steps": 0,
			"final_answer_correct": true,
			"method_score": 0.8,
			"step_breakdown": "both substitutions correct",
			"feedback": "Minor slip in step 3.",
			"confidence": 0.85
		}`),
	})
	scorer := NewLLMScorer(mock)

	score, err := scorer.ScoreMath(context.Background(), ScoreRequest{
		QuestionText:  "Solve for x.",
		StudentAnswer: "Step 1: 2x = 8\nStep 2: x = 4\nStep 3: check",
		ModelAnswer:   "Step 1: 2x = 8\nStep 2: x = 4",
		MaxMarks:      4,
	})
	if err != nil {
		t.Fatalf("ScoreMath: %v", err)
	}
	if !score.FinalAnswerCorrect {
		t.Error("expected final answer correct")
	}
	if score.TotalSteps != 3 {
		t.Errorf("total steps = %d, want 3 from extraction fallback", score.TotalSteps)
	}
}

func TestLLMScorerScoreCode(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"marks_awarded": 4,
			"logic_score": 0.9,
			"approach_correct": "yes",
			"edge_cases": "empty input not handled",
			"strengths": ["correct loop bounds"],
			"improvements": ["handle empty slice"],
			"feedback": "Sound approach.",
			"confidence": 0.8
		}`),
	})
	scorer := NewLLMScorer(mock)

	score, err := scorer.ScoreCode(context.Background(), ScoreRequest{
		QuestionText:  "Write a function summing a list.",
		StudentAnswer: "```python\ndef s(xs):\n    return sum(xs)\n```",
		ModelAnswer:   "```python\ndef s(xs):\n    return sum(xs)\n```",
		MaxMarks:      5,
		Language:      "python",
	})
	if err != nil {
		t.Fatalf("ScoreCode: %v", err)
	}
	if score.ApproachCorrect != "yes" {
		t.Errorf("approach = %q, want yes", score.ApproachCorrect)
	}
	if score.LogicScore != 0.9 {
		t.Errorf("logic score = %v, want 0.9", score.LogicScore)
	}
}

func TestLLMScorerDecodeError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	scorer := NewLLMScorer(mock)

	if _, err := scorer.ScoreText(context.Background(), ScoreRequest{MaxMarks: 5}); err == nil {
		t.Fatal("expected decode error")
	}
}
