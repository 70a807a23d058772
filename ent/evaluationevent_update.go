// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehta/examiner/ent/evaluationevent"
	"github.com/smehta/examiner/ent/predicate"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRollNumber sets the "roll_number" field.
func (_u *EvaluationEventUpdate) SetRollNumber(v string) *EvaluationEventUpdate {
	_u.mutation.SetRollNumber(v)
	return _u
}

// SetNillableRollNumber sets the "roll_number" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableRollNumber(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetRollNumber(*v)
	}
	return _u
}

// SetCourseCode sets the "course_code" field.
func (_u *EvaluationEventUpdate) SetCourseCode(v string) *EvaluationEventUpdate {
	_u.mutation.SetCourseCode(v)
	return _u
}

// SetNillableCourseCode sets the "course_code" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCourseCode(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCourseCode(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *EvaluationEventUpdate) SetQuestionNumber(v string) *EvaluationEventUpdate {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableQuestionNumber(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EvaluationEventUpdate) SetQuestionType(v string) *EvaluationEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableQuestionType(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *EvaluationEventUpdate) SetMaxMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableMaxMarks(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *EvaluationEventUpdate) AddMaxMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// SetRawMarks sets the "raw_marks" field.
func (_u *EvaluationEventUpdate) SetRawMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetRawMarks()
	_u.mutation.SetRawMarks(v)
	return _u
}

// SetNillableRawMarks sets the "raw_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableRawMarks(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetRawMarks(*v)
	}
	return _u
}

// AddRawMarks adds value to the "raw_marks" field.
func (_u *EvaluationEventUpdate) AddRawMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.AddRawMarks(v)
	return _u
}

// SetCalibratedMarks sets the "calibrated_marks" field.
func (_u *EvaluationEventUpdate) SetCalibratedMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetCalibratedMarks()
	_u.mutation.SetCalibratedMarks(v)
	return _u
}

// SetNillableCalibratedMarks sets the "calibrated_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCalibratedMarks(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCalibratedMarks(*v)
	}
	return _u
}

// AddCalibratedMarks adds value to the "calibrated_marks" field.
func (_u *EvaluationEventUpdate) AddCalibratedMarks(v float64) *EvaluationEventUpdate {
	_u.mutation.AddCalibratedMarks(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvaluationEventUpdate) SetConfidence(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableConfidence(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvaluationEventUpdate) AddConfidence(v float64) *EvaluationEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *EvaluationEventUpdate) SetConfidenceLevel(v string) *EvaluationEventUpdate {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableConfidenceLevel(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EvaluationEventUpdate) SetNeedsReview(v bool) *EvaluationEventUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableNeedsReview(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *EvaluationEventUpdate) SetAttempted(v bool) *EvaluationEventUpdate {
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableAttempted(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationEventUpdate) SetModel(v string) *EvaluationEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableModel(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.RollNumber(); ok {
		if err := evaluationevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.roll_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseCode(); ok {
		if err := evaluationevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.course_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := evaluationevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNumber(); ok {
		_spec.SetField(evaluationevent.FieldRollNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCode(); ok {
		_spec.SetField(evaluationevent.FieldCourseCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(evaluationevent.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(evaluationevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(evaluationevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawMarks(); ok {
		_spec.SetField(evaluationevent.FieldRawMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawMarks(); ok {
		_spec.AddField(evaluationevent.FieldRawMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalibratedMarks(); ok {
		_spec.SetField(evaluationevent.FieldCalibratedMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalibratedMarks(); ok {
		_spec.AddField(evaluationevent.FieldCalibratedMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evaluationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evaluationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(evaluationevent.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(evaluationevent.FieldAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetRollNumber sets the "roll_number" field.
func (_u *EvaluationEventUpdateOne) SetRollNumber(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetRollNumber(v)
	return _u
}

// SetNillableRollNumber sets the "roll_number" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableRollNumber(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetRollNumber(*v)
	}
	return _u
}

// SetCourseCode sets the "course_code" field.
func (_u *EvaluationEventUpdateOne) SetCourseCode(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetCourseCode(v)
	return _u
}

// SetNillableCourseCode sets the "course_code" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCourseCode(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCourseCode(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *EvaluationEventUpdateOne) SetQuestionNumber(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableQuestionNumber(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EvaluationEventUpdateOne) SetQuestionType(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableQuestionType(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *EvaluationEventUpdateOne) SetMaxMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableMaxMarks(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *EvaluationEventUpdateOne) AddMaxMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// SetRawMarks sets the "raw_marks" field.
func (_u *EvaluationEventUpdateOne) SetRawMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetRawMarks()
	_u.mutation.SetRawMarks(v)
	return _u
}

// SetNillableRawMarks sets the "raw_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableRawMarks(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetRawMarks(*v)
	}
	return _u
}

// AddRawMarks adds value to the "raw_marks" field.
func (_u *EvaluationEventUpdateOne) AddRawMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddRawMarks(v)
	return _u
}

// SetCalibratedMarks sets the "calibrated_marks" field.
func (_u *EvaluationEventUpdateOne) SetCalibratedMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetCalibratedMarks()
	_u.mutation.SetCalibratedMarks(v)
	return _u
}

// SetNillableCalibratedMarks sets the "calibrated_marks" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCalibratedMarks(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCalibratedMarks(*v)
	}
	return _u
}

// AddCalibratedMarks adds value to the "calibrated_marks" field.
func (_u *EvaluationEventUpdateOne) AddCalibratedMarks(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddCalibratedMarks(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvaluationEventUpdateOne) SetConfidence(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableConfidence(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvaluationEventUpdateOne) AddConfidence(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *EvaluationEventUpdateOne) SetConfidenceLevel(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableConfidenceLevel(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EvaluationEventUpdateOne) SetNeedsReview(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableNeedsReview(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *EvaluationEventUpdateOne) SetAttempted(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableAttempted(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationEventUpdateOne) SetModel(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableModel(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.RollNumber(); ok {
		if err := evaluationevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.roll_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseCode(); ok {
		if err := evaluationevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.course_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := evaluationevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNumber(); ok {
		_spec.SetField(evaluationevent.FieldRollNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCode(); ok {
		_spec.SetField(evaluationevent.FieldCourseCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(evaluationevent.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(evaluationevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(evaluationevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawMarks(); ok {
		_spec.SetField(evaluationevent.FieldRawMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawMarks(); ok {
		_spec.AddField(evaluationevent.FieldRawMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalibratedMarks(); ok {
		_spec.SetField(evaluationevent.FieldCalibratedMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalibratedMarks(); ok {
		_spec.AddField(evaluationevent.FieldCalibratedMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evaluationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evaluationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(evaluationevent.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(evaluationevent.FieldAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
