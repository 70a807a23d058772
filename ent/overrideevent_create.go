// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehta/examiner/ent/overrideevent"
)

// OverrideEventCreate is the builder for creating a OverrideEvent entity.
type OverrideEventCreate struct {
	config
	mutation *OverrideEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *OverrideEventCreate) SetSequence(v int64) *OverrideEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OverrideEventCreate) SetTimestamp(v time.Time) *OverrideEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OverrideEventCreate) SetNillableTimestamp(v *time.Time) *OverrideEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRollNumber sets the "roll_number" field.
func (_c *OverrideEventCreate) SetRollNumber(v string) *OverrideEventCreate {
	_c.mutation.SetRollNumber(v)
	return _c
}

// SetCourseCode sets the "course_code" field.
func (_c *OverrideEventCreate) SetCourseCode(v string) *OverrideEventCreate {
	_c.mutation.SetCourseCode(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *OverrideEventCreate) SetQuestionNumber(v string) *OverrideEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *OverrideEventCreate) SetQuestionType(v string) *OverrideEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetMachineMarks sets the "machine_marks" field.
func (_c *OverrideEventCreate) SetMachineMarks(v float64) *OverrideEventCreate {
	_c.mutation.SetMachineMarks(v)
	return _c
}

// SetHumanMarks sets the "human_marks" field.
func (_c *OverrideEventCreate) SetHumanMarks(v float64) *OverrideEventCreate {
	_c.mutation.SetHumanMarks(v)
	return _c
}

// SetMaxMarks sets the "max_marks" field.
func (_c *OverrideEventCreate) SetMaxMarks(v float64) *OverrideEventCreate {
	_c.mutation.SetMaxMarks(v)
	return _c
}

// Mutation returns the OverrideEventMutation object of the builder.
func (_c *OverrideEventCreate) Mutation() *OverrideEventMutation {
	return _c.mutation
}

// Save creates the OverrideEvent in the database.
func (_c *OverrideEventCreate) Save(ctx context.Context) (*OverrideEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OverrideEventCreate) SaveX(ctx context.Context) *OverrideEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OverrideEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OverrideEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OverrideEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := overrideevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OverrideEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OverrideEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OverrideEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RollNumber(); !ok {
		return &ValidationError{Name: "roll_number", err: errors.New(`ent: missing required field "OverrideEvent.roll_number"`)}
	}
	if v, ok := _c.mutation.RollNumber(); ok {
		if err := overrideevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.roll_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseCode(); !ok {
		return &ValidationError{Name: "course_code", err: errors.New(`ent: missing required field "OverrideEvent.course_code"`)}
	}
	if v, ok := _c.mutation.CourseCode(); ok {
		if err := overrideevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.course_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "OverrideEvent.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := overrideevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "OverrideEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := overrideevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "OverrideEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MachineMarks(); !ok {
		return &ValidationError{Name: "machine_marks", err: errors.New(`ent: missing required field "OverrideEvent.machine_marks"`)}
	}
	if _, ok := _c.mutation.HumanMarks(); !ok {
		return &ValidationError{Name: "human_marks", err: errors.New(`ent: missing required field "OverrideEvent.human_marks"`)}
	}
	if _, ok := _c.mutation.MaxMarks(); !ok {
		return &ValidationError{Name: "max_marks", err: errors.New(`ent: missing required field "OverrideEvent.max_marks"`)}
	}
	return nil
}

func (_c *OverrideEventCreate) sqlSave(ctx context.Context) (*OverrideEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OverrideEventCreate) createSpec() (*OverrideEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OverrideEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(overrideevent.Table, sqlgraph.NewFieldSpec(overrideevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(overrideevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(overrideevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RollNumber(); ok {
		_spec.SetField(overrideevent.FieldRollNumber, field.TypeString, value)
		_node.RollNumber = value
	}
	if value, ok := _c.mutation.CourseCode(); ok {
		_spec.SetField(overrideevent.FieldCourseCode, field.TypeString, value)
		_node.CourseCode = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(overrideevent.FieldQuestionNumber, field.TypeString, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(overrideevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.MachineMarks(); ok {
		_spec.SetField(overrideevent.FieldMachineMarks, field.TypeFloat64, value)
		_node.MachineMarks = value
	}
	if value, ok := _c.mutation.HumanMarks(); ok {
		_spec.SetField(overrideevent.FieldHumanMarks, field.TypeFloat64, value)
		_node.HumanMarks = value
	}
	if value, ok := _c.mutation.MaxMarks(); ok {
		_spec.SetField(overrideevent.FieldMaxMarks, field.TypeFloat64, value)
		_node.MaxMarks = value
	}
	return _node, _spec
}

// OverrideEventCreateBulk is the builder for creating many OverrideEvent entities in bulk.
type OverrideEventCreateBulk struct {
	config
	err      error
	builders []*OverrideEventCreate
}

// Save creates the OverrideEvent entities in the database.
func (_c *OverrideEventCreateBulk) Save(ctx context.Context) ([]*OverrideEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OverrideEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OverrideEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OverrideEventCreateBulk) SaveX(ctx context.Context) []*OverrideEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OverrideEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OverrideEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
