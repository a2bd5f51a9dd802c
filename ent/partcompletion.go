// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizdrill/ent/partcompletion"
)

// PartCompletion is the model entity for the PartCompletion schema.
type PartCompletion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exam category name
	Category string `json:"category,omitempty"`
	// Basic, Medium, or Advanced
	Level string `json:"level,omitempty"`
	// Part number within the level, 1-based
	Part int `json:"part,omitempty"`
	// When the part was first completed
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PartCompletion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case partcompletion.FieldID, partcompletion.FieldPart:
			values[i] = new(sql.NullInt64)
		case partcompletion.FieldCategory, partcompletion.FieldLevel:
			values[i] = new(sql.NullString)
		case partcompletion.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PartCompletion fields.
func (_m *PartCompletion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case partcompletion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case partcompletion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case partcompletion.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case partcompletion.FieldPart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field part", values[i])
			} else if value.Valid {
				_m.Part = int(value.Int64)
			}
		case partcompletion.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PartCompletion.
// This includes values selected through modifiers, order, etc.
func (_m *PartCompletion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PartCompletion.
// Note that you need to call PartCompletion.Unwrap() before calling this method if this PartCompletion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PartCompletion) Update() *PartCompletionUpdateOne {
	return NewPartCompletionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PartCompletion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PartCompletion) Unwrap() *PartCompletion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PartCompletion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PartCompletion) String() string {
	var builder strings.Builder
	builder.WriteString("PartCompletion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("part=")
	builder.WriteString(fmt.Sprintf("%v", _m.Part))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PartCompletions is a parsable slice of PartCompletion.
type PartCompletions []*PartCompletion
