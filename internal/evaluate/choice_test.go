package evaluate

import "testing"

func TestExtractSelectedOption(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"B", "B"},
		{"b", "B"},
		{"(C)", "C"},
		{"A.", "A"},
		{"Option D", "D"},
		{"Answer: B", "B"},
		{"ans c", "C"},
		{"my pick is option B today", "B"},
		{"zzz B zzz", "B"},
		{"42", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractSelectedOption(tt.answer); got != tt.want {
			t.Errorf("ExtractSelectedOption(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}

func TestEvaluateChoiceCorrect(t *testing.T) {
	result := evaluateChoice("(B)", "b", 2)
	if result.Marks != 2 {
		t.Errorf("marks = %v, want 2", result.Marks)
	}
	if !result.Breakdown.Correct {
		t.Error("expected correct")
	}
	if result.NeedsReview {
		t.Error("correct choice should not need review")
	}
	if result.EvaluationConfidence != 1 {
		t.Errorf("confidence = %v, want 1", result.EvaluationConfidence)
	}
}

func TestEvaluateChoiceIncorrect(t *testing.T) {
	result := evaluateChoice("A", "B", 2)
	if result.Marks != 0 {
		t.Errorf("marks = %v, want 0", result.Marks)
	}
	if result.Breakdown.Correct {
		t.Error("expected incorrect")
	}
	if result.Breakdown.SelectedOption != "A" {
		t.Errorf("selected = %q, want A", result.Breakdown.SelectedOption)
	}
}

func TestEvaluateChoiceUndetected(t *testing.T) {
	result := evaluateChoice("12345", "B", 2)
	if result.Marks != 0 {
		t.Errorf("marks = %v, want 0", result.Marks)
	}
	if !result.NeedsReview {
		t.Error("undetected option must need review")
	}
	if result.EvaluationConfidence != 0 {
		t.Errorf("confidence = %v, want 0", result.EvaluationConfidence)
	}
}

func TestEvaluateChoiceDeterministic(t *testing.T) {
	a := evaluateChoice("Option C", "C", 1)
	b := evaluateChoice("Option C", "C", 1)
	if a.Marks != b.Marks || a.Feedback != b.Feedback || a.Breakdown.SelectedOption != b.Breakdown.SelectedOption {
		t.Errorf("same input produced different results:\n%+v\n%+v", a, b)
	}
}
