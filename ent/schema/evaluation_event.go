package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one graded answer: the marks awarded, the
// confidence assessment and whether it was flagged for human review.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_number").
			NotEmpty().
			Comment("Student roll number from the sheet header"),
		field.String("course_code").
			NotEmpty().
			Comment("Course the exam belongs to"),
		field.String("question_number").
			NotEmpty().
			Comment("Question identifier, e.g. 5 or 5a"),
		field.String("question_type").
			NotEmpty().
			Comment("text, math, code, diagram or choice"),
		field.Float("max_marks").
			Comment("Marks allotted to the question"),
		field.Float("raw_marks").
			Comment("Marks awarded before calibration"),
		field.Float("calibrated_marks").
			Comment("Marks awarded after the calibration delta"),
		field.Float("confidence").
			Comment("Composite confidence in [0,1]"),
		field.String("confidence_level").
			Comment("high, medium or low"),
		field.Bool("needs_review").
			Comment("Whether the answer was flagged for human review"),
		field.Bool("attempted").
			Comment("Whether the student wrote a substantive answer"),
		field.String("model").
			Default("").
			Comment("Model ID that scored the answer, empty for deterministic strategies"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roll_number"),
		index.Fields("course_code"),
		index.Fields("question_type"),
		index.Fields("needs_review"),
	}
}
