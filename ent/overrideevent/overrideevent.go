// Code generated by ent, DO NOT EDIT.

package overrideevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the overrideevent type in the database.
	Label = "override_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRollNumber holds the string denoting the roll_number field in the database.
	FieldRollNumber = "roll_number"
	// FieldCourseCode holds the string denoting the course_code field in the database.
	FieldCourseCode = "course_code"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldMachineMarks holds the string denoting the machine_marks field in the database.
	FieldMachineMarks = "machine_marks"
	// FieldHumanMarks holds the string denoting the human_marks field in the database.
	FieldHumanMarks = "human_marks"
	// FieldMaxMarks holds the string denoting the max_marks field in the database.
	FieldMaxMarks = "max_marks"
	// Table holds the table name of the overrideevent in the database.
	Table = "override_events"
)

// Columns holds all SQL columns for overrideevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRollNumber,
	FieldCourseCode,
	FieldQuestionNumber,
	FieldQuestionType,
	FieldMachineMarks,
	FieldHumanMarks,
	FieldMaxMarks,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RollNumberValidator is a validator for the "roll_number" field. It is called by the builders before save.
	RollNumberValidator func(string) error
	// CourseCodeValidator is a validator for the "course_code" field. It is called by the builders before save.
	CourseCodeValidator func(string) error
	// QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	QuestionNumberValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
)

// OrderOption defines the ordering options for the OverrideEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRollNumber orders the results by the roll_number field.
func ByRollNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollNumber, opts...).ToFunc()
}

// ByCourseCode orders the results by the course_code field.
func ByCourseCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseCode, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByMachineMarks orders the results by the machine_marks field.
func ByMachineMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMachineMarks, opts...).ToFunc()
}

// ByHumanMarks orders the results by the human_marks field.
func ByHumanMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanMarks, opts...).ToFunc()
}

// ByMaxMarks orders the results by the max_marks field.
func ByMaxMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMarks, opts...).ToFunc()
}
