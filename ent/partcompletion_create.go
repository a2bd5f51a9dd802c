// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdrill/ent/partcompletion"
)

// PartCompletionCreate is the builder for creating a PartCompletion entity.
type PartCompletionCreate struct {
	config
	mutation *PartCompletionMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *PartCompletionCreate) SetCategory(v string) *PartCompletionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *PartCompletionCreate) SetLevel(v string) *PartCompletionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPart sets the "part" field.
func (_c *PartCompletionCreate) SetPart(v int) *PartCompletionCreate {
	_c.mutation.SetPart(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PartCompletionCreate) SetCompletedAt(v time.Time) *PartCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PartCompletionCreate) SetNillableCompletedAt(v *time.Time) *PartCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the PartCompletionMutation object of the builder.
func (_c *PartCompletionCreate) Mutation() *PartCompletionMutation {
	return _c.mutation
}

// Save creates the PartCompletion in the database.
func (_c *PartCompletionCreate) Save(ctx context.Context) (*PartCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartCompletionCreate) SaveX(ctx context.Context) *PartCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartCompletionCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := partcompletion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartCompletionCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PartCompletion.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := partcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "PartCompletion.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := partcompletion.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Part(); !ok {
		return &ValidationError{Name: "part", err: errors.New(`ent: missing required field "PartCompletion.part"`)}
	}
	if v, ok := _c.mutation.Part(); ok {
		if err := partcompletion.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.part": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "PartCompletion.completed_at"`)}
	}
	return nil
}

func (_c *PartCompletionCreate) sqlSave(ctx context.Context) (*PartCompletion, error) {
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

func (_c *PartCompletionCreate) createSpec() (*PartCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &PartCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(partcompletion.Table, sqlgraph.NewFieldSpec(partcompletion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(partcompletion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(partcompletion.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Part(); ok {
		_spec.SetField(partcompletion.FieldPart, field.TypeInt, value)
		_node.Part = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(partcompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// PartCompletionCreateBulk is the builder for creating many PartCompletion entities in bulk.
type PartCompletionCreateBulk struct {
	config
	err      error
	builders []*PartCompletionCreate
}

// Save creates the PartCompletion entities in the database.
func (_c *PartCompletionCreateBulk) Save(ctx context.Context) ([]*PartCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PartCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartCompletionMutation)
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
func (_c *PartCompletionCreateBulk) SaveX(ctx context.Context) []*PartCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
