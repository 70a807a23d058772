// Code generated by ent, DO NOT EDIT.

package overrideevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smehta/examiner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RollNumber applies equality check predicate on the "roll_number" field. It's identical to RollNumberEQ.
func RollNumber(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldRollNumber, v))
}

// CourseCode applies equality check predicate on the "course_code" field. It's identical to CourseCodeEQ.
func CourseCode(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldCourseCode, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldQuestionType, v))
}

// MachineMarks applies equality check predicate on the "machine_marks" field. It's identical to MachineMarksEQ.
func MachineMarks(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldMachineMarks, v))
}

// HumanMarks applies equality check predicate on the "human_marks" field. It's identical to HumanMarksEQ.
func HumanMarks(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldHumanMarks, v))
}

// MaxMarks applies equality check predicate on the "max_marks" field. It's identical to MaxMarksEQ.
func MaxMarks(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldMaxMarks, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RollNumberEQ applies the EQ predicate on the "roll_number" field.
func RollNumberEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldRollNumber, v))
}

// RollNumberNEQ applies the NEQ predicate on the "roll_number" field.
func RollNumberNEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldRollNumber, v))
}

// RollNumberIn applies the In predicate on the "roll_number" field.
func RollNumberIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldRollNumber, vs...))
}

// RollNumberNotIn applies the NotIn predicate on the "roll_number" field.
func RollNumberNotIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldRollNumber, vs...))
}

// RollNumberGT applies the GT predicate on the "roll_number" field.
func RollNumberGT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldRollNumber, v))
}

// RollNumberGTE applies the GTE predicate on the "roll_number" field.
func RollNumberGTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldRollNumber, v))
}

// RollNumberLT applies the LT predicate on the "roll_number" field.
func RollNumberLT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldRollNumber, v))
}

// RollNumberLTE applies the LTE predicate on the "roll_number" field.
func RollNumberLTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldRollNumber, v))
}

// RollNumberContains applies the Contains predicate on the "roll_number" field.
func RollNumberContains(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContains(FieldRollNumber, v))
}

// RollNumberHasPrefix applies the HasPrefix predicate on the "roll_number" field.
func RollNumberHasPrefix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasPrefix(FieldRollNumber, v))
}

// RollNumberHasSuffix applies the HasSuffix predicate on the "roll_number" field.
func RollNumberHasSuffix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasSuffix(FieldRollNumber, v))
}

// RollNumberEqualFold applies the EqualFold predicate on the "roll_number" field.
func RollNumberEqualFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEqualFold(FieldRollNumber, v))
}

// RollNumberContainsFold applies the ContainsFold predicate on the "roll_number" field.
func RollNumberContainsFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContainsFold(FieldRollNumber, v))
}

// CourseCodeEQ applies the EQ predicate on the "course_code" field.
func CourseCodeEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldCourseCode, v))
}

// CourseCodeNEQ applies the NEQ predicate on the "course_code" field.
func CourseCodeNEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldCourseCode, v))
}

// CourseCodeIn applies the In predicate on the "course_code" field.
func CourseCodeIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldCourseCode, vs...))
}

// CourseCodeNotIn applies the NotIn predicate on the "course_code" field.
func CourseCodeNotIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldCourseCode, vs...))
}

// CourseCodeGT applies the GT predicate on the "course_code" field.
func CourseCodeGT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldCourseCode, v))
}

// CourseCodeGTE applies the GTE predicate on the "course_code" field.
func CourseCodeGTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldCourseCode, v))
}

// CourseCodeLT applies the LT predicate on the "course_code" field.
func CourseCodeLT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldCourseCode, v))
}

// CourseCodeLTE applies the LTE predicate on the "course_code" field.
func CourseCodeLTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldCourseCode, v))
}

// CourseCodeContains applies the Contains predicate on the "course_code" field.
func CourseCodeContains(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContains(FieldCourseCode, v))
}

// CourseCodeHasPrefix applies the HasPrefix predicate on the "course_code" field.
func CourseCodeHasPrefix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasPrefix(FieldCourseCode, v))
}

// CourseCodeHasSuffix applies the HasSuffix predicate on the "course_code" field.
func CourseCodeHasSuffix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasSuffix(FieldCourseCode, v))
}

// CourseCodeEqualFold applies the EqualFold predicate on the "course_code" field.
func CourseCodeEqualFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEqualFold(FieldCourseCode, v))
}

// CourseCodeContainsFold applies the ContainsFold predicate on the "course_code" field.
func CourseCodeContainsFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContainsFold(FieldCourseCode, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldQuestionNumber, v))
}

// QuestionNumberContains applies the Contains predicate on the "question_number" field.
func QuestionNumberContains(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContains(FieldQuestionNumber, v))
}

// QuestionNumberHasPrefix applies the HasPrefix predicate on the "question_number" field.
func QuestionNumberHasPrefix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasPrefix(FieldQuestionNumber, v))
}

// QuestionNumberHasSuffix applies the HasSuffix predicate on the "question_number" field.
func QuestionNumberHasSuffix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasSuffix(FieldQuestionNumber, v))
}

// QuestionNumberEqualFold applies the EqualFold predicate on the "question_number" field.
func QuestionNumberEqualFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEqualFold(FieldQuestionNumber, v))
}

// QuestionNumberContainsFold applies the ContainsFold predicate on the "question_number" field.
func QuestionNumberContainsFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContainsFold(FieldQuestionNumber, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// MachineMarksEQ applies the EQ predicate on the "machine_marks" field.
func MachineMarksEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldMachineMarks, v))
}

// MachineMarksNEQ applies the NEQ predicate on the "machine_marks" field.
func MachineMarksNEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldMachineMarks, v))
}

// MachineMarksIn applies the In predicate on the "machine_marks" field.
func MachineMarksIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldMachineMarks, vs...))
}

// MachineMarksNotIn applies the NotIn predicate on the "machine_marks" field.
func MachineMarksNotIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldMachineMarks, vs...))
}

// MachineMarksGT applies the GT predicate on the "machine_marks" field.
func MachineMarksGT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldMachineMarks, v))
}

// MachineMarksGTE applies the GTE predicate on the "machine_marks" field.
func MachineMarksGTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldMachineMarks, v))
}

// MachineMarksLT applies the LT predicate on the "machine_marks" field.
func MachineMarksLT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldMachineMarks, v))
}

// MachineMarksLTE applies the LTE predicate on the "machine_marks" field.
func MachineMarksLTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldMachineMarks, v))
}

// HumanMarksEQ applies the EQ predicate on the "human_marks" field.
func HumanMarksEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldHumanMarks, v))
}

// HumanMarksNEQ applies the NEQ predicate on the "human_marks" field.
func HumanMarksNEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldHumanMarks, v))
}

// HumanMarksIn applies the In predicate on the "human_marks" field.
func HumanMarksIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldHumanMarks, vs...))
}

// HumanMarksNotIn applies the NotIn predicate on the "human_marks" field.
func HumanMarksNotIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldHumanMarks, vs...))
}

// HumanMarksGT applies the GT predicate on the "human_marks" field.
func HumanMarksGT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldHumanMarks, v))
}

// HumanMarksGTE applies the GTE predicate on the "human_marks" field.
func HumanMarksGTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldHumanMarks, v))
}

// HumanMarksLT applies the LT predicate on the "human_marks" field.
func HumanMarksLT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldHumanMarks, v))
}

// HumanMarksLTE applies the LTE predicate on the "human_marks" field.
func HumanMarksLTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldHumanMarks, v))
}

// MaxMarksEQ applies the EQ predicate on the "max_marks" field.
func MaxMarksEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldEQ(FieldMaxMarks, v))
}

// MaxMarksNEQ applies the NEQ predicate on the "max_marks" field.
func MaxMarksNEQ(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNEQ(FieldMaxMarks, v))
}

// MaxMarksIn applies the In predicate on the "max_marks" field.
func MaxMarksIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldIn(FieldMaxMarks, vs...))
}

// MaxMarksNotIn applies the NotIn predicate on the "max_marks" field.
func MaxMarksNotIn(vs ...float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldNotIn(FieldMaxMarks, vs...))
}

// MaxMarksGT applies the GT predicate on the "max_marks" field.
func MaxMarksGT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGT(FieldMaxMarks, v))
}

// MaxMarksGTE applies the GTE predicate on the "max_marks" field.
func MaxMarksGTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldGTE(FieldMaxMarks, v))
}

// MaxMarksLT applies the LT predicate on the "max_marks" field.
func MaxMarksLT(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLT(FieldMaxMarks, v))
}

// MaxMarksLTE applies the LTE predicate on the "max_marks" field.
func MaxMarksLTE(v float64) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.FieldLTE(FieldMaxMarks, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OverrideEvent) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OverrideEvent) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OverrideEvent) predicate.OverrideEvent {
	return predicate.OverrideEvent(sql.NotPredicates(p))
}
