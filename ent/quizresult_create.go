// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdrill/ent/quizresult"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizResultCreate) SetSequence(v int64) *QuizResultCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizResultCreate) SetTimestamp(v time.Time) *QuizResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableTimestamp(v *time.Time) *QuizResultCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuizResultCreate) SetCategory(v string) *QuizResultCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuizResultCreate) SetLevel(v string) *QuizResultCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPart sets the "part" field.
func (_c *QuizResultCreate) SetPart(v int) *QuizResultCreate {
	_c.mutation.SetPart(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultCreate) SetScore(v int) *QuizResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizResultCreate) SetTotal(v int) *QuizResultCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *QuizResultCreate) SetDurationMs(v int64) *QuizResultCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableDurationMs(v *int64) *QuizResultCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the QuizResultMutation object of the builder.
func (_c *QuizResultCreate) Mutation() *QuizResultMutation {
	return _c.mutation
}

// Save creates the QuizResult in the database.
func (_c *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizresult.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := quizresult.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizResult.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResult.timestamp"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "QuizResult.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := quizresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizResult.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "QuizResult.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := quizresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizResult.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Part(); !ok {
		return &ValidationError{Name: "part", err: errors.New(`ent: missing required field "QuizResult.part"`)}
	}
	if v, ok := _c.mutation.Part(); ok {
		if err := quizresult.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "QuizResult.part": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizResult.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := quizresult.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizResult.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "QuizResult.duration_ms"`)}
	}
	return nil
}

func (_c *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
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

func (_c *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizresult.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(quizresult.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(quizresult.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Part(); ok {
		_spec.SetField(quizresult.FieldPart, field.TypeInt, value)
		_node.Part = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizresult.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(quizresult.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (_c *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
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
func (_c *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
