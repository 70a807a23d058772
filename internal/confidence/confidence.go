// Package confidence folds OCR and evaluation confidence into a single
// reviewability verdict for one graded answer.
package confidence

import (
	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
)

// Thresholds for review flagging and level banding.
const (
	OCRThreshold  = 0.70
	EvalThreshold = 0.60

	HighThreshold   = 0.85
	MediumThreshold = 0.60

	ocrWeight  = 0.5
	evalWeight = 0.5
)

// Level bands the overall confidence for display and filtering.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Record is the aggregated confidence verdict for one answer.
type Record struct {
	OCRConfidence        float64  `json:"ocrConfidence"`
	EvaluationConfidence float64  `json:"evaluationConfidence"`
	Overall              float64  `json:"overall"`
	Level                Level    `json:"level"`
	NeedsReview          bool     `json:"needsReview"`
	ReviewReasons        []string `json:"reviewReasons,omitempty"`
}

// Score aggregates OCR confidence with an evaluation result. It is
// deterministic: the same inputs always produce the same record.
//
// Unattempted answers score zero and are never flagged; there is
// nothing for a human to re-check.
func Score(ocrConf float64, result evaluate.EvaluationResult, answerType exam.AnswerType, attempted bool) Record {
	if !attempted {
		return Record{Level: LevelLow}
	}

	rec := Record{
		OCRConfidence:        ocrConf,
		EvaluationConfidence: result.EvaluationConfidence,
	}

	if result.NeedsReview {
		reason := result.ReviewReason
		if reason == "" {
			reason = "flagged during evaluation"
		}
		rec.flag(reason)
	}
	if answerType == exam.TypeDiagram && !result.NeedsReview {
		rec.flag("diagram evaluation requires visual verification")
	}
	if ocrConf < OCRThreshold {
		rec.flag("low OCR confidence")
	}
	if result.EvaluationConfidence < EvalThreshold {
		rec.flag("low evaluation confidence")
	}

	rec.Overall = ocrWeight*ocrConf + evalWeight*result.EvaluationConfidence
	switch {
	case rec.Overall >= HighThreshold:
		rec.Level = LevelHigh
	case rec.Overall >= MediumThreshold:
		rec.Level = LevelMedium
	default:
		rec.Level = LevelLow
	}
	return rec
}

func (r *Record) flag(reason string) {
	r.NeedsReview = true
	r.ReviewReasons = append(r.ReviewReasons, reason)
}
