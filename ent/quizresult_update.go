// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdrill/ent/predicate"
	"github.com/abhisek/quizdrill/ent/quizresult"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuizResultUpdate) SetCategory(v string) *QuizResultUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCategory(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizResultUpdate) SetLevel(v string) *QuizResultUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableLevel(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *QuizResultUpdate) SetPart(v int) *QuizResultUpdate {
	_u.mutation.ResetPart()
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePart(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// AddPart adds value to the "part" field.
func (_u *QuizResultUpdate) AddPart(v int) *QuizResultUpdate {
	_u.mutation.AddPart(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v int) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v int) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultUpdate) SetTotal(v int) *QuizResultUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotal(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultUpdate) AddTotal(v int) *QuizResultUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QuizResultUpdate) SetDurationMs(v int64) *QuizResultUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDurationMs(v *int64) *QuizResultUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QuizResultUpdate) AddDurationMs(v int64) *QuizResultUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := quizresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizResult.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizResult.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Part(); ok {
		if err := quizresult.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "QuizResult.part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizresult.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizResult.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quizresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizresult.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(quizresult.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPart(); ok {
		_spec.AddField(quizresult.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(quizresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(quizresult.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetCategory sets the "category" field.
func (_u *QuizResultUpdateOne) SetCategory(v string) *QuizResultUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCategory(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizResultUpdateOne) SetLevel(v string) *QuizResultUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableLevel(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *QuizResultUpdateOne) SetPart(v int) *QuizResultUpdateOne {
	_u.mutation.ResetPart()
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePart(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// AddPart adds value to the "part" field.
func (_u *QuizResultUpdateOne) AddPart(v int) *QuizResultUpdateOne {
	_u.mutation.AddPart(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v int) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v int) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultUpdateOne) SetTotal(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotal(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultUpdateOne) AddTotal(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QuizResultUpdateOne) SetDurationMs(v int64) *QuizResultUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDurationMs(v *int64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QuizResultUpdateOne) AddDurationMs(v int64) *QuizResultUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := quizresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizResult.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizResult.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Part(); ok {
		if err := quizresult.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`ent: validator failed for field "QuizResult.part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizresult.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizResult.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
		_spec.SetField(quizresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizresult.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(quizresult.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPart(); ok {
		_spec.AddField(quizresult.FieldPart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(quizresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(quizresult.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
