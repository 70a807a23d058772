// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationevent type in the database.
	Label = "evaluation_event"
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
	// FieldMaxMarks holds the string denoting the max_marks field in the database.
	FieldMaxMarks = "max_marks"
	// FieldRawMarks holds the string denoting the raw_marks field in the database.
	FieldRawMarks = "raw_marks"
	// FieldCalibratedMarks holds the string denoting the calibrated_marks field in the database.
	FieldCalibratedMarks = "calibrated_marks"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldAttempted holds the string denoting the attempted field in the database.
	FieldAttempted = "attempted"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// Table holds the table name of the evaluationevent in the database.
	Table = "evaluation_events"
)

// Columns holds all SQL columns for evaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRollNumber,
	FieldCourseCode,
	FieldQuestionNumber,
	FieldQuestionType,
	FieldMaxMarks,
	FieldRawMarks,
	FieldCalibratedMarks,
	FieldConfidence,
	FieldConfidenceLevel,
	FieldNeedsReview,
	FieldAttempted,
	FieldModel,
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
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
)

// OrderOption defines the ordering options for the EvaluationEvent queries.
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

// ByMaxMarks orders the results by the max_marks field.
func ByMaxMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMarks, opts...).ToFunc()
}

// ByRawMarks orders the results by the raw_marks field.
func ByRawMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMarks, opts...).ToFunc()
}

// ByCalibratedMarks orders the results by the calibrated_marks field.
func ByCalibratedMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibratedMarks, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByAttempted orders the results by the attempted field.
func ByAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempted, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}
