// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehta/examiner/ent/evaluationevent"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRollNumber sets the "roll_number" field.
func (_c *EvaluationEventCreate) SetRollNumber(v string) *EvaluationEventCreate {
	_c.mutation.SetRollNumber(v)
	return _c
}

// SetCourseCode sets the "course_code" field.
func (_c *EvaluationEventCreate) SetCourseCode(v string) *EvaluationEventCreate {
	_c.mutation.SetCourseCode(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *EvaluationEventCreate) SetQuestionNumber(v string) *EvaluationEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *EvaluationEventCreate) SetQuestionType(v string) *EvaluationEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetMaxMarks sets the "max_marks" field.
func (_c *EvaluationEventCreate) SetMaxMarks(v float64) *EvaluationEventCreate {
	_c.mutation.SetMaxMarks(v)
	return _c
}

// SetRawMarks sets the "raw_marks" field.
func (_c *EvaluationEventCreate) SetRawMarks(v float64) *EvaluationEventCreate {
	_c.mutation.SetRawMarks(v)
	return _c
}

// SetCalibratedMarks sets the "calibrated_marks" field.
func (_c *EvaluationEventCreate) SetCalibratedMarks(v float64) *EvaluationEventCreate {
	_c.mutation.SetCalibratedMarks(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EvaluationEventCreate) SetConfidence(v float64) *EvaluationEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *EvaluationEventCreate) SetConfidenceLevel(v string) *EvaluationEventCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *EvaluationEventCreate) SetNeedsReview(v bool) *EvaluationEventCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetAttempted sets the "attempted" field.
func (_c *EvaluationEventCreate) SetAttempted(v bool) *EvaluationEventCreate {
	_c.mutation.SetAttempted(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *EvaluationEventCreate) SetModel(v string) *EvaluationEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableModel(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := evaluationevent.DefaultModel
		_c.mutation.SetModel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RollNumber(); !ok {
		return &ValidationError{Name: "roll_number", err: errors.New(`ent: missing required field "EvaluationEvent.roll_number"`)}
	}
	if v, ok := _c.mutation.RollNumber(); ok {
		if err := evaluationevent.RollNumberValidator(v); err != nil {
			return &ValidationError{Name: "roll_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.roll_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseCode(); !ok {
		return &ValidationError{Name: "course_code", err: errors.New(`ent: missing required field "EvaluationEvent.course_code"`)}
	}
	if v, ok := _c.mutation.CourseCode(); ok {
		if err := evaluationevent.CourseCodeValidator(v); err != nil {
			return &ValidationError{Name: "course_code", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.course_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "EvaluationEvent.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := evaluationevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "EvaluationEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxMarks(); !ok {
		return &ValidationError{Name: "max_marks", err: errors.New(`ent: missing required field "EvaluationEvent.max_marks"`)}
	}
	if _, ok := _c.mutation.RawMarks(); !ok {
		return &ValidationError{Name: "raw_marks", err: errors.New(`ent: missing required field "EvaluationEvent.raw_marks"`)}
	}
	if _, ok := _c.mutation.CalibratedMarks(); !ok {
		return &ValidationError{Name: "calibrated_marks", err: errors.New(`ent: missing required field "EvaluationEvent.calibrated_marks"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EvaluationEvent.confidence"`)}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "EvaluationEvent.confidence_level"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "EvaluationEvent.needs_review"`)}
	}
	if _, ok := _c.mutation.Attempted(); !ok {
		return &ValidationError{Name: "attempted", err: errors.New(`ent: missing required field "EvaluationEvent.attempted"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "EvaluationEvent.model"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
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

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RollNumber(); ok {
		_spec.SetField(evaluationevent.FieldRollNumber, field.TypeString, value)
		_node.RollNumber = value
	}
	if value, ok := _c.mutation.CourseCode(); ok {
		_spec.SetField(evaluationevent.FieldCourseCode, field.TypeString, value)
		_node.CourseCode = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(evaluationevent.FieldQuestionNumber, field.TypeString, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.MaxMarks(); ok {
		_spec.SetField(evaluationevent.FieldMaxMarks, field.TypeFloat64, value)
		_node.MaxMarks = value
	}
	if value, ok := _c.mutation.RawMarks(); ok {
		_spec.SetField(evaluationevent.FieldRawMarks, field.TypeFloat64, value)
		_node.RawMarks = value
	}
	if value, ok := _c.mutation.CalibratedMarks(); ok {
		_spec.SetField(evaluationevent.FieldCalibratedMarks, field.TypeFloat64, value)
		_node.CalibratedMarks = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(evaluationevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(evaluationevent.FieldConfidenceLevel, field.TypeString, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(evaluationevent.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.Attempted(); ok {
		_spec.SetField(evaluationevent.FieldAttempted, field.TypeBool, value)
		_node.Attempted = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
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
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
