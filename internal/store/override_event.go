package store

import (
	"context"
	"fmt"

	"github.com/smehta/examiner/ent"
	"github.com/smehta/examiner/ent/overrideevent"
)

func (r *eventRepo) AppendOverride(ctx context.Context, data OverrideEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OverrideEvent.Create().
		SetSequence(seqNum).
		SetRollNumber(data.RollNumber).
		SetCourseCode(data.CourseCode).
		SetQuestionNumber(data.QuestionNumber).
		SetQuestionType(data.QuestionType).
		SetMachineMarks(data.MachineMarks).
		SetHumanMarks(data.HumanMarks).
		SetMaxMarks(data.MaxMarks).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save override event: %w", err)
	}
	return nil
}

func (r *eventRepo) Overrides(ctx context.Context, courseCode string, opts QueryOpts) ([]*OverrideRecord, error) {
	q := r.client.OverrideEvent.Query().
		Order(ent.Asc(overrideevent.FieldSequence))

	if courseCode != "" {
		q = q.Where(overrideevent.CourseCode(courseCode))
	}
	if opts.After > 0 {
		q = q.Where(overrideevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(overrideevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(overrideevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(overrideevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}

	out := make([]*OverrideRecord, len(events))
	for i, e := range events {
		out[i] = &OverrideRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			OverrideEventData: OverrideEventData{
				RollNumber:     e.RollNumber,
				CourseCode:     e.CourseCode,
				QuestionNumber: e.QuestionNumber,
				QuestionType:   e.QuestionType,
				MachineMarks:   e.MachineMarks,
				HumanMarks:     e.HumanMarks,
				MaxMarks:       e.MaxMarks,
			},
		}
	}
	return out, nil
}
