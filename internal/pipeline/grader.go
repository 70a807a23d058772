// Package pipeline runs the full grading flow for one answer sheet:
// recognize, extract the header, map answers to questions, evaluate
// each span, aggregate confidence, and persist the outcome.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/smehta/examiner/internal/confidence"
	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/mapping"
	"github.com/smehta/examiner/internal/ocr"
	"github.com/smehta/examiner/internal/store"
)

// headerWindow caps how much leading text the header extractor sees
// when no question marker bounds the header region.
const headerWindow = 500

// AnswerFeedback is the graded outcome for one question, with the
// derived feedback a student or examiner reads.
type AnswerFeedback struct {
	QuestionNumber string                    `json:"questionNumber"`
	QuestionType   exam.AnswerType           `json:"questionType"`
	Attempted      bool                      `json:"attempted"`
	Percentage     float64                   `json:"percentage"`
	Evaluation     evaluate.EvaluationResult `json:"evaluation"`
	Confidence     confidence.Record         `json:"confidence"`
	Suggestions    []string                  `json:"suggestions,omitempty"`
}

// PerformanceBreakdown counts answers by score band.
type PerformanceBreakdown struct {
	Excellent int `json:"excellent"` // >= 80%
	Good      int `json:"good"`      // 60-79%
	Average   int `json:"average"`   // 40-59%
	Poor      int `json:"poor"`      // < 40%
}

// SheetSummary is the whole-sheet verdict.
type SheetSummary struct {
	OverallAssessment     string               `json:"overallAssessment"`
	Performance           PerformanceBreakdown `json:"performanceBreakdown"`
	FlaggedForReview      int                  `json:"flaggedForReview"`
	TotalQuestions        int                  `json:"totalQuestions"`
	AttemptedQuestions    int                  `json:"attemptedQuestions"`
	Strengths             []string             `json:"strengths,omitempty"`
	AreasForImprovement   []string             `json:"areasForImprovement,omitempty"`
	FacultyActionRequired bool                 `json:"facultyActionRequired"`
}

// SheetResult is everything grading one sheet produces.
type SheetResult struct {
	SheetID        string             `json:"sheetId"`
	Header         mapping.HeaderInfo `json:"header"`
	OCRConfidence  float64            `json:"ocrConfidence"`
	NoMarkersFound bool               `json:"noMarkersFound"`
	Answers        []AnswerFeedback   `json:"answers"`
	TotalMarks     float64            `json:"totalMarks"`
	MaxMarks       float64            `json:"maxMarks"`
	Percentage     float64            `json:"percentage"`
	Summary        SheetSummary       `json:"summary"`
}

// Grader wires the recognizer, router and event store into a per-sheet
// grading pipeline.
type Grader struct {
	recognizer ocr.Recognizer
	router     *evaluate.Router
	events     store.EventRepo
}

// New creates a Grader. events may be nil, in which case outcomes are
// not persisted.
func New(recognizer ocr.Recognizer, router *evaluate.Router, events store.EventRepo) *Grader {
	return &Grader{recognizer: recognizer, router: router, events: events}
}

// GradeSheet grades one sheet identified by ref against the question
// list and answer key (keyed by question number). Per-answer scoring
// failures are folded into the result; only recognition or mapping
// failures abort the sheet.
func (g *Grader) GradeSheet(ctx context.Context, ref string, questions []exam.Question, key map[string]exam.ModelAnswer) (*SheetResult, error) {
	rec, err := g.recognizer.Recognize(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", ref, err)
	}

	header := mapping.ExtractHeader(headerText(rec.Text))

	mres, err := mapping.MapAnswers(rec.Text, questions)
	if err != nil {
		return nil, fmt.Errorf("map answers for %s: %w", ref, err)
	}

	result := &SheetResult{
		SheetID:        uuid.NewString(),
		Header:         header,
		OCRConfidence:  rec.Confidence,
		NoMarkersFound: mres.NoMarkersFound,
	}

	for _, span := range mres.Spans {
		q := span.Question
		model, ok := key[exam.NormalizeIdentifier(q.Number)]
		if !ok {
			model = key[q.Number]
		}

		eval := g.router.Evaluate(ctx, header.CourseCode, span, q, model)
		conf := confidence.Score(rec.Confidence, eval, q.Type, span.Attempted)

		fb := AnswerFeedback{
			QuestionNumber: q.Number,
			QuestionType:   q.Type,
			Attempted:      span.Attempted,
			Percentage:     percentage(eval.Marks, q.MaxMarks),
			Evaluation:     eval,
			Confidence:     conf,
		}
		if span.Attempted {
			fb.Suggestions = suggestions(eval)
		}
		result.Answers = append(result.Answers, fb)

		result.TotalMarks += eval.Marks
		result.MaxMarks += q.MaxMarks

		g.persist(ctx, header, q, span.Attempted, eval, conf)
	}

	result.Percentage = percentage(result.TotalMarks, result.MaxMarks)
	result.Summary = summarize(result.Answers, result.Percentage)
	return result, nil
}

// persist appends the evaluation event; a storage failure must not
// lose the grading result, so it only warns.
func (g *Grader) persist(ctx context.Context, header mapping.HeaderInfo, q exam.Question, attempted bool, eval evaluate.EvaluationResult, conf confidence.Record) {
	if g.events == nil {
		return
	}

	err := g.events.AppendEvaluation(ctx, store.EvaluationEventData{
		RollNumber:      header.RollNumber,
		CourseCode:      header.CourseCode,
		QuestionNumber:  q.Number,
		QuestionType:    string(q.Type),
		MaxMarks:        q.MaxMarks,
		RawMarks:        eval.Breakdown.RawMarks,
		CalibratedMarks: eval.Breakdown.CalibratedMarks,
		Confidence:      conf.Overall,
		ConfidenceLevel: string(conf.Level),
		NeedsReview:     conf.NeedsReview,
		Attempted:       attempted,
		Model:           eval.Model,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record evaluation event: %v\n", err)
	}
}

// headerText returns the region before the first question marker, or a
// fixed-size prefix when the sheet has no markers.
func headerText(fullText string) string {
	markers := mapping.ScanMarkers(fullText)
	if len(markers) > 0 && markers[0].Start < headerWindow {
		return fullText[:markers[0].Start]
	}
	if len(fullText) > headerWindow {
		return fullText[:headerWindow]
	}
	return fullText
}

func percentage(marks, max float64) float64 {
	if max <= 0 {
		return 0
	}
	p := marks / max * 100
	return float64(int(p*10+0.5)) / 10
}
