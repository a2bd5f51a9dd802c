// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdrill/ent/partcompletion"
	"github.com/abhisek/quizdrill/ent/predicate"
)

// PartCompletionUpdate is the builder for updating PartCompletion entities.
type PartCompletionUpdate struct {
	config
	hooks    []Hook
	mutation *PartCompletionMutation
}

// Where appends a list predicates to the PartCompletionUpdate builder.
func (_u *PartCompletionUpdate) Where(ps ...predicate.PartCompletion) *PartCompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *PartCompletionUpdate) SetCategory(v string) *PartCompletionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PartCompletionUpdate) SetNillableCategory(v *string) *PartCompletionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PartCompletionUpdate) SetLevel(v string) *PartCompletionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PartCompletionUpdate) SetNillableLevel(v *string) *PartCompletionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *PartCompletionUpdate) SetPart(v int) *PartCompletionUpdate {
	_u.mutation.ResetPart()
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *PartCompletionUpdate) SetNillablePart(v *int) *PartCompletionUpdate {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// AddPart adds value to the "part" field.
func (_u *PartCompletionUpdate) AddPart(v int) *PartCompletionUpdate {
	_u.mutation.AddPart(v)
	return _u
}

// Mutation returns the PartCompletionMutation object of the builder.
func (_u *PartCompletionUpdate) Mutation() *PartCompletionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartCompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartCompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartCompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartCompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartCompletionUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := partcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := partcompletion.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Part(); ok {
		if err := partcompletion.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.part": %w`, err)}
		}
	}
	return nil
}

func (_u *PartCompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partcompletion.Table, partcompletion.Columns, sqlgraph.NewFieldSpec(partcompletion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(partcompletion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(partcompletion.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(partcompletion.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPart(); ok {
		_spec.AddField(partcompletion.FieldPart, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartCompletionUpdateOne is the builder for updating a single PartCompletion entity.
type PartCompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartCompletionMutation
}

// SetCategory sets the "category" field.
func (_u *PartCompletionUpdateOne) SetCategory(v string) *PartCompletionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PartCompletionUpdateOne) SetNillableCategory(v *string) *PartCompletionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PartCompletionUpdateOne) SetLevel(v string) *PartCompletionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PartCompletionUpdateOne) SetNillableLevel(v *string) *PartCompletionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *PartCompletionUpdateOne) SetPart(v int) *PartCompletionUpdateOne {
	_u.mutation.ResetPart()
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *PartCompletionUpdateOne) SetNillablePart(v *int) *PartCompletionUpdateOne {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// AddPart adds value to the "part" field.
func (_u *PartCompletionUpdateOne) AddPart(v int) *PartCompletionUpdateOne {
	_u.mutation.AddPart(v)
	return _u
}

// Mutation returns the PartCompletionMutation object of the builder.
func (_u *PartCompletionUpdateOne) Mutation() *PartCompletionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PartCompletionUpdate builder.
func (_u *PartCompletionUpdateOne) Where(ps ...predicate.PartCompletion) *PartCompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartCompletionUpdateOne) Select(field string, fields ...string) *PartCompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PartCompletion entity.
func (_u *PartCompletionUpdateOne) Save(ctx context.Context) (*PartCompletion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartCompletionUpdateOne) SaveX(ctx context.Context) *PartCompletion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartCompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartCompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartCompletionUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := partcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := partcompletion.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Part(); ok {
		if err := partcompletion.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "PartCompletion.part": %w`, err)}
		}
	}
	return nil
}

func (_u *PartCompletionUpdateOne) sqlSave(ctx context.Context) (_node *PartCompletion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partcompletion.Table, partcompletion.Columns, sqlgraph.NewFieldSpec(partcompletion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PartCompletion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partcompletion.FieldID)
		for _, f := range fields {
			if !partcompletion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != partcompletion.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(partcompletion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(partcompletion.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(partcompletion.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPart(); ok {
		_spec.AddField(partcompletion.FieldPart, field.TypeInt, value)
	}
	_node = &PartCompletion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
