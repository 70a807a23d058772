package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OverrideEvent records an examiner correcting a machine-awarded mark.
// Overrides are the feedback signal the calibrator learns from.
type OverrideEvent struct {
	ent.Schema
}

func (OverrideEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OverrideEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_number").
			NotEmpty().
			Comment("Student roll number"),
		field.String("course_code").
			NotEmpty().
			Comment("Course the exam belongs to"),
		field.String("question_number").
			NotEmpty().
			Comment("Question identifier"),
		field.String("question_type").
			NotEmpty().
			Comment("text, math, code, diagram or choice"),
		field.Float("machine_marks").
			Comment("Marks the system awarded"),
		field.Float("human_marks").
			Comment("Marks the examiner awarded"),
		field.Float("max_marks").
			Comment("Marks allotted to the question"),
	}
}

func (OverrideEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_code"),
		index.Fields("question_type"),
	}
}
