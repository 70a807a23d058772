package store

import (
	"context"
	"fmt"

	"github.com/smehta/examiner/ent"
	"github.com/smehta/examiner/ent/evaluationevent"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetRollNumber(data.RollNumber).
		SetCourseCode(data.CourseCode).
		SetQuestionNumber(data.QuestionNumber).
		SetQuestionType(data.QuestionType).
		SetMaxMarks(data.MaxMarks).
		SetRawMarks(data.RawMarks).
		SetCalibratedMarks(data.CalibratedMarks).
		SetConfidence(data.Confidence).
		SetConfidenceLevel(data.ConfidenceLevel).
		SetNeedsReview(data.NeedsReview).
		SetAttempted(data.Attempted).
		SetModel(data.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewQueue(ctx context.Context, courseCode string, limit int) ([]*EvaluationRecord, error) {
	q := r.client.EvaluationEvent.Query().
		Where(evaluationevent.NeedsReview(true)).
		Order(ent.Desc(evaluationevent.FieldSequence))

	if courseCode != "" {
		q = q.Where(evaluationevent.CourseCode(courseCode))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review queue: %w", err)
	}

	out := make([]*EvaluationRecord, len(events))
	for i, e := range events {
		out[i] = &EvaluationRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			EvaluationEventData: EvaluationEventData{
				RollNumber:      e.RollNumber,
				CourseCode:      e.CourseCode,
				QuestionNumber:  e.QuestionNumber,
				QuestionType:    e.QuestionType,
				MaxMarks:        e.MaxMarks,
				RawMarks:        e.RawMarks,
				CalibratedMarks: e.CalibratedMarks,
				Confidence:      e.Confidence,
				ConfidenceLevel: e.ConfidenceLevel,
				NeedsReview:     e.NeedsReview,
				Attempted:       e.Attempted,
				Model:           e.Model,
			},
		}
	}
	return out, nil
}
