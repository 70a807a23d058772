// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehta/examiner/ent/overrideevent"
)

// OverrideEvent is the model entity for the OverrideEvent schema.
type OverrideEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student roll number
	RollNumber string `json:"roll_number,omitempty"`
	// Course the exam belongs to
	CourseCode string `json:"course_code,omitempty"`
	// Question identifier
	QuestionNumber string `json:"question_number,omitempty"`
	// text, math, code, diagram or choice
	QuestionType string `json:"question_type,omitempty"`
	// Marks the system awarded
	MachineMarks float64 `json:"machine_marks,omitempty"`
	// Marks the examiner awarded
	HumanMarks float64 `json:"human_marks,omitempty"`
	// Marks allotted to the question
	MaxMarks     float64 `json:"max_marks,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OverrideEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case overrideevent.FieldMachineMarks, overrideevent.FieldHumanMarks, overrideevent.FieldMaxMarks:
			values[i] = new(sql.NullFloat64)
		case overrideevent.FieldID, overrideevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case overrideevent.FieldRollNumber, overrideevent.FieldCourseCode, overrideevent.FieldQuestionNumber, overrideevent.FieldQuestionType:
			values[i] = new(sql.NullString)
		case overrideevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OverrideEvent fields.
func (_m *OverrideEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case overrideevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case overrideevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case overrideevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case overrideevent.FieldRollNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_number", values[i])
			} else if value.Valid {
				_m.RollNumber = value.String
			}
		case overrideevent.FieldCourseCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_code", values[i])
			} else if value.Valid {
				_m.CourseCode = value.String
			}
		case overrideevent.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = value.String
			}
		case overrideevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case overrideevent.FieldMachineMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field machine_marks", values[i])
			} else if value.Valid {
				_m.MachineMarks = value.Float64
			}
		case overrideevent.FieldHumanMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field human_marks", values[i])
			} else if value.Valid {
				_m.HumanMarks = value.Float64
			}
		case overrideevent.FieldMaxMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_marks", values[i])
			} else if value.Valid {
				_m.MaxMarks = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OverrideEvent.
// This includes values selected through modifiers, order, etc.
func (_m *OverrideEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OverrideEvent.
// Note that you need to call OverrideEvent.Unwrap() before calling this method if this OverrideEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OverrideEvent) Update() *OverrideEventUpdateOne {
	return NewOverrideEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OverrideEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OverrideEvent) Unwrap() *OverrideEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OverrideEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OverrideEvent) String() string {
	var builder strings.Builder
	builder.WriteString("OverrideEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("roll_number=")
	builder.WriteString(_m.RollNumber)
	builder.WriteString(", ")
	builder.WriteString("course_code=")
	builder.WriteString(_m.CourseCode)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(_m.QuestionNumber)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("machine_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.MachineMarks))
	builder.WriteString(", ")
	builder.WriteString("human_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanMarks))
	builder.WriteString(", ")
	builder.WriteString("max_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxMarks))
	builder.WriteByte(')')
	return builder.String()
}

// OverrideEvents is a parsable slice of OverrideEvent.
type OverrideEvents []*OverrideEvent
