// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehta/examiner/ent/evaluationevent"
)

// EvaluationEvent is the model entity for the EvaluationEvent schema.
type EvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student roll number from the sheet header
	RollNumber string `json:"roll_number,omitempty"`
	// Course the exam belongs to
	CourseCode string `json:"course_code,omitempty"`
	// Question identifier, e.g. 5 or 5a
	QuestionNumber string `json:"question_number,omitempty"`
	// text, math, code, diagram or choice
	QuestionType string `json:"question_type,omitempty"`
	// Marks allotted to the question
	MaxMarks float64 `json:"max_marks,omitempty"`
	// Marks awarded before calibration
	RawMarks float64 `json:"raw_marks,omitempty"`
	// Marks awarded after the calibration delta
	CalibratedMarks float64 `json:"calibrated_marks,omitempty"`
	// Composite confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// high, medium or low
	ConfidenceLevel string `json:"confidence_level,omitempty"`
	// Whether the answer was flagged for human review
	NeedsReview bool `json:"needs_review,omitempty"`
	// Whether the student wrote a substantive answer
	Attempted bool `json:"attempted,omitempty"`
	// Model ID that scored the answer, empty for deterministic strategies
	Model        string `json:"model,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldNeedsReview, evaluationevent.FieldAttempted:
			values[i] = new(sql.NullBool)
		case evaluationevent.FieldMaxMarks, evaluationevent.FieldRawMarks, evaluationevent.FieldCalibratedMarks, evaluationevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case evaluationevent.FieldID, evaluationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evaluationevent.FieldRollNumber, evaluationevent.FieldCourseCode, evaluationevent.FieldQuestionNumber, evaluationevent.FieldQuestionType, evaluationevent.FieldConfidenceLevel, evaluationevent.FieldModel:
			values[i] = new(sql.NullString)
		case evaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationEvent fields.
func (_m *EvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evaluationevent.FieldRollNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_number", values[i])
			} else if value.Valid {
				_m.RollNumber = value.String
			}
		case evaluationevent.FieldCourseCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_code", values[i])
			} else if value.Valid {
				_m.CourseCode = value.String
			}
		case evaluationevent.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = value.String
			}
		case evaluationevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case evaluationevent.FieldMaxMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_marks", values[i])
			} else if value.Valid {
				_m.MaxMarks = value.Float64
			}
		case evaluationevent.FieldRawMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_marks", values[i])
			} else if value.Valid {
				_m.RawMarks = value.Float64
			}
		case evaluationevent.FieldCalibratedMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calibrated_marks", values[i])
			} else if value.Valid {
				_m.CalibratedMarks = value.Float64
			}
		case evaluationevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case evaluationevent.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = value.String
			}
		case evaluationevent.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case evaluationevent.FieldAttempted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field attempted", values[i])
			} else if value.Valid {
				_m.Attempted = value.Bool
			}
		case evaluationevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationEvent.
// Note that you need to call EvaluationEvent.Unwrap() before calling this method if this EvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationEvent) Update() *EvaluationEventUpdateOne {
	return NewEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationEvent) Unwrap() *EvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationEvent(")
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
	builder.WriteString("max_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxMarks))
	builder.WriteString(", ")
	builder.WriteString("raw_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMarks))
	builder.WriteString(", ")
	builder.WriteString("calibrated_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CalibratedMarks))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(_m.ConfidenceLevel)
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempted))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationEvents is a parsable slice of EvaluationEvent.
type EvaluationEvents []*EvaluationEvent
