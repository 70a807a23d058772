// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehta/examiner/ent/overrideevent"
	"github.com/smehta/examiner/ent/predicate"
)

// OverrideEventUpdate is the builder for updating OverrideEvent entities.
type OverrideEventUpdate struct {
	config
	hooks    []Hook
	mutation *OverrideEventMutation
}

// Where appends a list predicates to the OverrideEventUpdate builder.
func (_u *OverrideEventUpdate) Where(ps ...predicate.OverrideEvent) *OverrideEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRollNumber sets the "roll_number" field.
func (_u *OverrideEventUpdate) SetRollNumber(v string) *OverrideEventUpdate {
	_u.mutation.SetRollNumber(v)
	return _u
}

// SetNillableRollNumber sets the "roll_number" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableRollNumber(v *string) *OverrideEventUpdate {
	if v != nil {
		_u.SetRollNumber(*v)
	}
	return _u
}

// SetCourseCode sets the "course_code" field.
func (_u *OverrideEventUpdate) SetCourseCode(v string) *OverrideEventUpdate {
	_u.mutation.SetCourseCode(v)
	return _u
}

// SetNillableCourseCode sets the "course_code" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableCourseCode(v *string) *OverrideEventUpdate {
	if v != nil {
		_u.SetCourseCode(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *OverrideEventUpdate) SetQuestionNumber(v string) *OverrideEventUpdate {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableQuestionNumber(v *string) *OverrideEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *OverrideEventUpdate) SetQuestionType(v string) *OverrideEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableQuestionType(v *string) *OverrideEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetMachineMarks sets the "machine_marks" field.
func (_u *OverrideEventUpdate) SetMachineMarks(v float64) *OverrideEventUpdate {
	_u.mutation.ResetMachineMarks()
	_u.mutation.SetMachineMarks(v)
	return _u
}

// SetNillableMachineMarks sets the "machine_marks" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableMachineMarks(v *float64) *OverrideEventUpdate {
	if v != nil {
		_u.SetMachineMarks(*v)
	}
	return _u
}

// AddMachineMarks adds value to the "machine_marks" field.
func (_u *OverrideEventUpdate) AddMachineMarks(v float64) *OverrideEventUpdate {
	_u.mutation.AddMachineMarks(v)
	return _u
}

// SetHumanMarks sets the "human_marks" field.
func (_u *OverrideEventUpdate) SetHumanMarks(v float64) *OverrideEventUpdate {
	_u.mutation.ResetHumanMarks()
	_u.mutation.SetHumanMarks(v)
	return _u
}

// SetNillableHumanMarks sets the "human_marks" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableHumanMarks(v *float64) *OverrideEventUpdate {
	if v != nil {
		_u.SetHumanMarks(*v)
	}
	return _u
}

// AddHumanMarks adds value to the "human_marks" field.
func (_u *OverrideEventUpdate) AddHumanMarks(v float64) *OverrideEventUpdate {
	_u.mutation.AddHumanMarks(v)
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *OverrideEventUpdate) SetMaxMarks(v float64) *OverrideEventUpdate {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *OverrideEventUpdate) SetNillableMaxMarks(v *float64) *OverrideEventUpdate {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *OverrideEventUpdate) AddMaxMarks(v float64) *OverrideEventUpdate {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// Mutation returns the OverrideEventMutation object of the builder.
func (_u *OverrideEventUpdate) Mutation() *OverrideEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OverrideEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OverrideEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OverrideEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OverrideEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OverrideEventUpdate) check() error {
	if v, ok := _u.mutation.RollNumber(); ok {
		if err := overrideevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.roll_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseCode(); ok {
		if err := overrideevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.course_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := overrideevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := overrideevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *OverrideEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(overrideevent.Table, overrideevent.Columns, sqlgraph.NewFieldSpec(overrideevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNumber(); ok {
		_spec.SetField(overrideevent.FieldRollNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCode(); ok {
		_spec.SetField(overrideevent.FieldCourseCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(overrideevent.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(overrideevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MachineMarks(); ok {
		_spec.SetField(overrideevent.FieldMachineMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMachineMarks(); ok {
		_spec.AddField(overrideevent.FieldMachineMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HumanMarks(); ok {
		_spec.SetField(overrideevent.FieldHumanMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumanMarks(); ok {
		_spec.AddField(overrideevent.FieldHumanMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(overrideevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(overrideevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{overrideevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OverrideEventUpdateOne is the builder for updating a single OverrideEvent entity.
type OverrideEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OverrideEventMutation
}

// SetRollNumber sets the "roll_number" field.
func (_u *OverrideEventUpdateOne) SetRollNumber(v string) *OverrideEventUpdateOne {
	_u.mutation.SetRollNumber(v)
	return _u
}

// SetNillableRollNumber sets the "roll_number" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableRollNumber(v *string) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetRollNumber(*v)
	}
	return _u
}

// SetCourseCode sets the "course_code" field.
func (_u *OverrideEventUpdateOne) SetCourseCode(v string) *OverrideEventUpdateOne {
	_u.mutation.SetCourseCode(v)
	return _u
}

// SetNillableCourseCode sets the "course_code" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableCourseCode(v *string) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetCourseCode(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *OverrideEventUpdateOne) SetQuestionNumber(v string) *OverrideEventUpdateOne {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableQuestionNumber(v *string) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *OverrideEventUpdateOne) SetQuestionType(v string) *OverrideEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableQuestionType(v *string) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetMachineMarks sets the "machine_marks" field.
func (_u *OverrideEventUpdateOne) SetMachineMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.ResetMachineMarks()
	_u.mutation.SetMachineMarks(v)
	return _u
}

// SetNillableMachineMarks sets the "machine_marks" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableMachineMarks(v *float64) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetMachineMarks(*v)
	}
	return _u
}

// AddMachineMarks adds value to the "machine_marks" field.
func (_u *OverrideEventUpdateOne) AddMachineMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.AddMachineMarks(v)
	return _u
}

// SetHumanMarks sets the "human_marks" field.
func (_u *OverrideEventUpdateOne) SetHumanMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.ResetHumanMarks()
	_u.mutation.SetHumanMarks(v)
	return _u
}

// SetNillableHumanMarks sets the "human_marks" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableHumanMarks(v *float64) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetHumanMarks(*v)
	}
	return _u
}

// AddHumanMarks adds value to the "human_marks" field.
func (_u *OverrideEventUpdateOne) AddHumanMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.AddHumanMarks(v)
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *OverrideEventUpdateOne) SetMaxMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *OverrideEventUpdateOne) SetNillableMaxMarks(v *float64) *OverrideEventUpdateOne {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *OverrideEventUpdateOne) AddMaxMarks(v float64) *OverrideEventUpdateOne {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// Mutation returns the OverrideEventMutation object of the builder.
func (_u *OverrideEventUpdateOne) Mutation() *OverrideEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OverrideEventUpdate builder.
func (_u *OverrideEventUpdateOne) Where(ps ...predicate.OverrideEvent) *OverrideEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OverrideEventUpdateOne) Select(field string, fields ...string) *OverrideEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OverrideEvent entity.
func (_u *OverrideEventUpdateOne) Save(ctx context.Context) (*OverrideEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OverrideEventUpdateOne) SaveX(ctx context.Context) *OverrideEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OverrideEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OverrideEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OverrideEventUpdateOne) check() error {
	if v, ok := _u.mutation.RollNumber(); ok {
		if err := overrideevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.roll_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseCode(); ok {
		if err := overrideevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.course_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := overrideevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := overrideevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *OverrideEventUpdateOne) sqlSave(ctx context.Context) (_node *OverrideEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(overrideevent.Table, overrideevent.Columns, sqlgraph.NewFieldSpec(overrideevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OverrideEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, overrideevent.FieldID)
		for _, f := range fields {
			if !overrideevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != overrideevent.FieldID {
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
		_spec.SetField(overrideevent.FieldRollNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCode(); ok {
		_spec.SetField(overrideevent.FieldCourseCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(overrideevent.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(overrideevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MachineMarks(); ok {
		_spec.SetField(overrideevent.FieldMachineMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMachineMarks(); ok {
		_spec.AddField(overrideevent.FieldMachineMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HumanMarks(); ok {
		_spec.SetField(overrideevent.FieldHumanMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumanMarks(); ok {
		_spec.AddField(overrideevent.FieldHumanMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(overrideevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(overrideevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	_node = &OverrideEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{overrideevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
