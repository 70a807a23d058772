package confidence

import (
	"testing"

	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
)

func TestScoreHighConfidence(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.95}
	rec := Score(0.92, result, exam.TypeText, true)

	if rec.NeedsReview {
		t.Errorf("needs review with reasons %q", rec.ReviewReasons)
	}
	if rec.Level != LevelHigh {
		t.Errorf("level = %q, want high", rec.Level)
	}
	want := 0.5*0.92 + 0.5*0.95
	if rec.Overall != want {
		t.Errorf("overall = %v, want %v", rec.Overall, want)
	}
}

func TestScoreLowOCRFlagsReview(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.9}

	clear := Score(0.70, result, exam.TypeText, true)
	if clear.NeedsReview {
		t.Errorf("ocr at threshold should not flag, reasons %q", clear.ReviewReasons)
	}

	flagged := Score(0.69, result, exam.TypeText, true)
	if !flagged.NeedsReview {
		t.Error("ocr below threshold must flag review")
	}
	if flagged.ReviewReasons[0] != "low OCR confidence" {
		t.Errorf("reason = %q", flagged.ReviewReasons[0])
	}
}

func TestScoreLowEvaluationConfidenceFlagsReview(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.5}
	rec := Score(0.9, result, exam.TypeText, true)

	if !rec.NeedsReview {
		t.Error("low evaluation confidence must flag review")
	}
	if rec.ReviewReasons[0] != "low evaluation confidence" {
		t.Errorf("reason = %q", rec.ReviewReasons[0])
	}
}

func TestScoreDiagramAlwaysFlagged(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.95}
	rec := Score(0.95, result, exam.TypeDiagram, true)

	if !rec.NeedsReview {
		t.Error("diagram answers must always need review")
	}
	if rec.Level != LevelHigh {
		t.Errorf("level = %q, review flag should not lower the level", rec.Level)
	}
}

func TestScorePropagatesEvaluationReviewReason(t *testing.T) {
	result := evaluate.EvaluationResult{
		NeedsReview:  true,
		ReviewReason: "scoring capability failed",
	}
	rec := Score(0.9, result, exam.TypeText, true)

	if !rec.NeedsReview {
		t.Error("evaluation review flag must propagate")
	}
	if rec.ReviewReasons[0] != "scoring capability failed" {
		t.Errorf("reason = %q", rec.ReviewReasons[0])
	}
}

func TestScoreUnattempted(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.9}
	rec := Score(0.9, result, exam.TypeText, false)

	if rec.NeedsReview {
		t.Error("unattempted answers are never flagged")
	}
	if rec.Overall != 0 || rec.OCRConfidence != 0 || rec.EvaluationConfidence != 0 {
		t.Errorf("unattempted record should be zeroed: %+v", rec)
	}
	if rec.Level != LevelLow {
		t.Errorf("level = %q, want low", rec.Level)
	}
}

func TestScoreLevels(t *testing.T) {
	tests := []struct {
		ocr, eval float64
		want      Level
	}{
		{0.9, 0.8, LevelHigh},   // 0.85 exactly
		{0.8, 0.8, LevelMedium}, // 0.80
		{0.6, 0.6, LevelMedium}, // 0.60 exactly
		{0.55, 0.6, LevelLow},   // 0.575
		{0.2, 0.3, LevelLow},
	}

	for _, tt := range tests {
		rec := Score(tt.ocr, evaluate.EvaluationResult{EvaluationConfidence: tt.eval}, exam.TypeText, true)
		if rec.Level != tt.want {
			t.Errorf("Score(%v, %v) level = %q, want %q", tt.ocr, tt.eval, rec.Level, tt.want)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	result := evaluate.EvaluationResult{EvaluationConfidence: 0.55}
	a := Score(0.65, result, exam.TypeText, true)
	b := Score(0.65, result, exam.TypeText, true)

	if a.Overall != b.Overall || a.Level != b.Level || a.NeedsReview != b.NeedsReview {
		t.Errorf("same input produced different records:\n%+v\n%+v", a, b)
	}
	if len(a.ReviewReasons) != 2 {
		t.Errorf("reasons = %q, want both low-confidence reasons", a.ReviewReasons)
	}
}
