// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "roll_number", Type: field.TypeString},
		{Name: "course_code", Type: field.TypeString},
		{Name: "question_number", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "max_marks", Type: field.TypeFloat64},
		{Name: "raw_marks", Type: field.TypeFloat64},
		{Name: "calibrated_marks", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "confidence_level", Type: field.TypeString},
		{Name: "needs_review", Type: field.TypeBool},
		{Name: "attempted", Type: field.TypeBool},
		{Name: "model", Type: field.TypeString, Default: ""},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_roll_number",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3]},
			},
			{
				Name:    "evaluationevent_course_code",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[4]},
			},
			{
				Name:    "evaluationevent_question_type",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[6]},
			},
			{
				Name:    "evaluationevent_needs_review",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[12]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Default: ""},
		{Name: "response_body", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// OverrideEventsColumns holds the columns for the "override_events" table.
	OverrideEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "roll_number", Type: field.TypeString},
		{Name: "course_code", Type: field.TypeString},
		{Name: "question_number", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "machine_marks", Type: field.TypeFloat64},
		{Name: "human_marks", Type: field.TypeFloat64},
		{Name: "max_marks", Type: field.TypeFloat64},
	}
	// OverrideEventsTable holds the schema information for the "override_events" table.
	OverrideEventsTable = &schema.Table{
		Name:       "override_events",
		Columns:    OverrideEventsColumns,
		PrimaryKey: []*schema.Column{OverrideEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "overrideevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OverrideEventsColumns[1]},
			},
			{
				Name:    "overrideevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OverrideEventsColumns[2]},
			},
			{
				Name:    "overrideevent_course_code",
				Unique:  false,
				Columns: []*schema.Column{OverrideEventsColumns[4]},
			},
			{
				Name:    "overrideevent_question_type",
				Unique:  false,
				Columns: []*schema.Column{OverrideEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluationEventsTable,
		LlmRequestEventsTable,
		OverrideEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
