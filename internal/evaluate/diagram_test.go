package evaluate

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractDiagramLabels(t *testing.T) {
	text := "CPU, Control Unit\nRegisters; x"
	got := ExtractDiagramLabels(text)
	want := []string{"CPU", "Control Unit", "Registers"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %q, want %q", got, want)
	}
}

func TestExtractDiagramLabelsStripsArrows(t *testing.T) {
	got := ExtractDiagramLabels("Input → Process\nOutput")
	if len(got) != 2 {
		t.Fatalf("labels = %q, want 2 entries", got)
	}
	if strings.ContainsAny(got[0], "→") {
		t.Errorf("label %q still contains an arrow", got[0])
	}
}

func TestEvaluateDiagramAlwaysNeedsReview(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"full match", "CPU\nALU\nControl Unit"},
		{"no match", "unrelated scribbles here"},
		{"empty", ""},
	}

	required := []string{"CPU", "ALU", "Control Unit"}
	for _, tt := range tests {
		result := evaluateDiagram(tt.answer, required, 5)
		if !result.NeedsReview {
			t.Errorf("%s: diagram result must always need review", tt.name)
		}
	}
}

func TestEvaluateDiagramPartialMarks(t *testing.T) {
	required := []string{"CPU", "ALU", "Control Unit", "Registers"}
	result := evaluateDiagram("CPU\nALU diagram with arrows", required, 4)

	if result.Breakdown.MatchPercentage != 50 {
		t.Errorf("match percentage = %v, want 50", result.Breakdown.MatchPercentage)
	}
	if result.Marks != 2 {
		t.Errorf("marks = %v, want 2", result.Marks)
	}
	if len(result.Breakdown.MissingComponents) != 2 {
		t.Errorf("missing = %q, want 2 entries", result.Breakdown.MissingComponents)
	}
}

func TestEvaluateDiagramCaseInsensitiveMatch(t *testing.T) {
	result := evaluateDiagram("cpu\ncontrol unit", []string{"CPU", "Control Unit"}, 2)
	if result.Breakdown.MatchPercentage != 100 {
		t.Errorf("match percentage = %v, want 100", result.Breakdown.MatchPercentage)
	}
}

func TestEvaluateDiagramFeedbackMentionsManualReview(t *testing.T) {
	result := evaluateDiagram("CPU", []string{"CPU"}, 1)
	if !strings.Contains(result.Feedback, "Manual visual review required") {
		t.Errorf("feedback = %q, want manual review note", result.Feedback)
	}
}
