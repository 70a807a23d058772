package evaluate

import (
	"context"
	"fmt"

	"github.com/smehta/examiner/internal/calibration"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/mapping"
)

// ScoringErrorMarker prefixes feedback when the scoring capability
// failed. Downstream layers can detect it without parsing prose.
const ScoringErrorMarker = "[scoring-error]"

// Router dispatches answer spans to the strategy for their question
// type and applies the calibrator's learned delta to the raw mark.
type Router struct {
	scorer Scorer
	cal    *calibration.Calibrator
}

// NewRouter creates a Router. The calibrator may be nil, in which case
// marks pass through uncalibrated.
func NewRouter(scorer Scorer, cal *calibration.Calibrator) *Router {
	return &Router{scorer: scorer, cal: cal}
}

// Evaluate grades one answer span. A scoring failure is never fatal: it
// yields a zero-mark, review-flagged result so the surrounding batch
// continues.
func (r *Router) Evaluate(ctx context.Context, course string, span mapping.AnswerSpan, q exam.Question, model exam.ModelAnswer) EvaluationResult {
	if !span.Attempted {
		return EvaluationResult{
			MaxMarks: q.MaxMarks,
			Feedback: "No answer provided.",
		}
	}

	var result EvaluationResult
	var err error
	switch q.Type {
	case exam.TypeChoice:
		result = evaluateChoice(span.Text, model.CorrectOption, q.MaxMarks)
	case exam.TypeDiagram:
		result = evaluateDiagram(span.Text, model.Components, q.MaxMarks)
	case exam.TypeMath:
		result, err = r.scoreMath(ctx, span, q, model)
	case exam.TypeCode:
		result, err = r.scoreCode(ctx, span, q, model)
	default:
		// Text, and any unrecognized tag, grades as a descriptive answer.
		result, err = r.scoreText(ctx, span, q, model)
	}
	if err != nil {
		// A failed scoring call stays at zero marks; calibration must not
		// lift it.
		return failureResult(q, err)
	}

	r.applyCalibration(course, q, &result)
	return result
}

func (r *Router) scoreText(ctx context.Context, span mapping.AnswerSpan, q exam.Question, model exam.ModelAnswer) (EvaluationResult, error) {
	score, err := r.scorer.ScoreText(ctx, ScoreRequest{
		QuestionText:  q.Text,
		StudentAnswer: span.Text,
		ModelAnswer:   model.Text,
		MaxMarks:      q.MaxMarks,
		Keywords:      model.Keywords,
	})
	if err != nil {
		return EvaluationResult{}, err
	}

	return EvaluationResult{
		Marks:                score.MarksAwarded,
		MaxMarks:             q.MaxMarks,
		Feedback:             score.Feedback,
		EvaluationConfidence: score.Confidence,
		Model:                r.scorer.ModelID(),
		Breakdown: Breakdown{
			RawMarks:        score.MarksAwarded,
			CalibratedMarks: score.MarksAwarded,
			Strengths:       score.Strengths,
			Improvements:    score.Improvements,
			KeywordsMatched: CountKeywordMatches(span.Text, model.Keywords),
			TotalKeywords:   len(model.Keywords),
		},
	}, nil
}

func (r *Router) scoreMath(ctx context.Context, span mapping.AnswerSpan, q exam.Question, model exam.ModelAnswer) (EvaluationResult, error) {
	score, err := r.scorer.ScoreMath(ctx, ScoreRequest{
		QuestionText:  q.Text,
		StudentAnswer: span.Text,
		ModelAnswer:   model.Text,
		MaxMarks:      q.MaxMarks,
	})
	if err != nil {
		return EvaluationResult{}, err
	}

	return EvaluationResult{
		Marks:                score.MarksAwarded,
		MaxMarks:             q.MaxMarks,
		Feedback:             score.Feedback,
		EvaluationConfidence: score.Confidence,
		Model:                r.scorer.ModelID(),
		Breakdown: Breakdown{
			RawMarks:           score.MarksAwarded,
			CalibratedMarks:    score.MarksAwarded,
			CorrectSteps:       score.CorrectSteps,
			TotalSteps:         score.TotalSteps,
			FinalAnswerCorrect: score.FinalAnswerCorrect,
			MethodScore:        score.MethodScore,
			StepBreakdown:      score.StepBreakdown,
		},
	}, nil
}

func (r *Router) scoreCode(ctx context.Context, span mapping.AnswerSpan, q exam.Question, model exam.ModelAnswer) (EvaluationResult, error) {
	score, err := r.scorer.ScoreCode(ctx, ScoreRequest{
		QuestionText:  q.Text,
		StudentAnswer: span.Text,
		ModelAnswer:   model.Text,
		MaxMarks:      q.MaxMarks,
		Language:      model.Language,
	})
	if err != nil {
		return EvaluationResult{}, err
	}

	return EvaluationResult{
		Marks:                score.MarksAwarded,
		MaxMarks:             q.MaxMarks,
		Feedback:             score.Feedback,
		EvaluationConfidence: score.Confidence,
		Model:                r.scorer.ModelID(),
		Breakdown: Breakdown{
			RawMarks:        score.MarksAwarded,
			CalibratedMarks: score.MarksAwarded,
			LogicScore:      score.LogicScore,
			ApproachCorrect: score.ApproachCorrect,
			EdgeCases:       score.EdgeCases,
			Strengths:       score.Strengths,
			Improvements:    score.Improvements,
		},
	}, nil
}

// applyCalibration replaces the raw mark with the calibrated one,
// keeping both in the breakdown for auditability.
func (r *Router) applyCalibration(course string, q exam.Question, result *EvaluationResult) {
	raw := clampMarks(result.Marks, q.MaxMarks)
	result.Breakdown.RawMarks = raw

	if r.cal == nil {
		result.Marks = raw
		result.Breakdown.CalibratedMarks = raw
		return
	}

	key := calibration.Key{CourseCode: course, QuestionType: q.Type}
	adjusted := r.cal.Adjust(key, raw, q.MaxMarks)
	result.Marks = adjusted
	result.Breakdown.CalibratedMarks = adjusted
}

func failureResult(q exam.Question, err error) EvaluationResult {
	return EvaluationResult{
		MaxMarks:     q.MaxMarks,
		Feedback:     fmt.Sprintf("%s %v. Manual review required.", ScoringErrorMarker, err),
		NeedsReview:  true,
		ReviewReason: "scoring capability failed",
	}
}
