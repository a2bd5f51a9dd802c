// Code generated by ent, DO NOT EDIT.

package partcompletion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldCategory, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldLevel, v))
}

// Part applies equality check predicate on the "part" field. It's identical to PartEQ.
func Part(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldPart, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldContainsFold(FieldCategory, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldContainsFold(FieldLevel, v))
}

// PartEQ applies the EQ predicate on the "part" field.
func PartEQ(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldPart, v))
}

// PartNEQ applies the NEQ predicate on the "part" field.
func PartNEQ(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNEQ(FieldPart, v))
}

// PartIn applies the In predicate on the "part" field.
func PartIn(vs ...int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldIn(FieldPart, vs...))
}

// PartNotIn applies the NotIn predicate on the "part" field.
func PartNotIn(vs ...int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNotIn(FieldPart, vs...))
}

// PartGT applies the GT predicate on the "part" field.
func PartGT(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGT(FieldPart, v))
}

// PartGTE applies the GTE predicate on the "part" field.
func PartGTE(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGTE(FieldPart, v))
}

// PartLT applies the LT predicate on the "part" field.
func PartLT(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLT(FieldPart, v))
}

// PartLTE applies the LTE predicate on the "part" field.
func PartLTE(v int) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLTE(FieldPart, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PartCompletion {
	return predicate.PartCompletion(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PartCompletion) predicate.PartCompletion {
	return predicate.PartCompletion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PartCompletion) predicate.PartCompletion {
	return predicate.PartCompletion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PartCompletion) predicate.PartCompletion {
	return predicate.PartCompletion(sql.NotPredicates(p))
}
