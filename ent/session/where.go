// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/caliper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// UserTag applies equality check predicate on the "user_tag" field. It's identical to UserTagEQ.
func UserTag(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserTag, v))
}

// ThetaMean applies equality check predicate on the "theta_mean" field. It's identical to ThetaMeanEQ.
func ThetaMean(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldThetaMean, v))
}

// ThetaVar applies equality check predicate on the "theta_var" field. It's identical to ThetaVarEQ.
func ThetaVar(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldThetaVar, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTurnCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserTagEQ applies the EQ predicate on the "user_tag" field.
func UserTagEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserTag, v))
}

// UserTagNEQ applies the NEQ predicate on the "user_tag" field.
func UserTagNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserTag, v))
}

// UserTagIn applies the In predicate on the "user_tag" field.
func UserTagIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserTag, vs...))
}

// UserTagNotIn applies the NotIn predicate on the "user_tag" field.
func UserTagNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserTag, vs...))
}

// UserTagGT applies the GT predicate on the "user_tag" field.
func UserTagGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserTag, v))
}

// UserTagGTE applies the GTE predicate on the "user_tag" field.
func UserTagGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserTag, v))
}

// UserTagLT applies the LT predicate on the "user_tag" field.
func UserTagLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserTag, v))
}

// UserTagLTE applies the LTE predicate on the "user_tag" field.
func UserTagLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserTag, v))
}

// UserTagContains applies the Contains predicate on the "user_tag" field.
func UserTagContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserTag, v))
}

// UserTagHasPrefix applies the HasPrefix predicate on the "user_tag" field.
func UserTagHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserTag, v))
}

// UserTagHasSuffix applies the HasSuffix predicate on the "user_tag" field.
func UserTagHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserTag, v))
}

// UserTagEqualFold applies the EqualFold predicate on the "user_tag" field.
func UserTagEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserTag, v))
}

// UserTagContainsFold applies the ContainsFold predicate on the "user_tag" field.
func UserTagContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserTag, v))
}

// ThetaMeanEQ applies the EQ predicate on the "theta_mean" field.
func ThetaMeanEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldThetaMean, v))
}

// ThetaMeanNEQ applies the NEQ predicate on the "theta_mean" field.
func ThetaMeanNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldThetaMean, v))
}

// ThetaMeanIn applies the In predicate on the "theta_mean" field.
func ThetaMeanIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldThetaMean, vs...))
}

// ThetaMeanNotIn applies the NotIn predicate on the "theta_mean" field.
func ThetaMeanNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldThetaMean, vs...))
}

// ThetaMeanGT applies the GT predicate on the "theta_mean" field.
func ThetaMeanGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldThetaMean, v))
}

// ThetaMeanGTE applies the GTE predicate on the "theta_mean" field.
func ThetaMeanGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldThetaMean, v))
}

// ThetaMeanLT applies the LT predicate on the "theta_mean" field.
func ThetaMeanLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldThetaMean, v))
}

// ThetaMeanLTE applies the LTE predicate on the "theta_mean" field.
func ThetaMeanLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldThetaMean, v))
}

// ThetaVarEQ applies the EQ predicate on the "theta_var" field.
func ThetaVarEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldThetaVar, v))
}

// ThetaVarNEQ applies the NEQ predicate on the "theta_var" field.
func ThetaVarNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldThetaVar, v))
}

// ThetaVarIn applies the In predicate on the "theta_var" field.
func ThetaVarIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldThetaVar, vs...))
}

// ThetaVarNotIn applies the NotIn predicate on the "theta_var" field.
func ThetaVarNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldThetaVar, vs...))
}

// ThetaVarGT applies the GT predicate on the "theta_var" field.
func ThetaVarGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldThetaVar, v))
}

// ThetaVarGTE applies the GTE predicate on the "theta_var" field.
func ThetaVarGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldThetaVar, v))
}

// ThetaVarLT applies the LT predicate on the "theta_var" field.
func ThetaVarLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldThetaVar, v))
}

// ThetaVarLTE applies the LTE predicate on the "theta_var" field.
func ThetaVarLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldThetaVar, v))
}

// AskedIsNil applies the IsNil predicate on the "asked" field.
func AskedIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAsked))
}

// AskedNotNil applies the NotNil predicate on the "asked" field.
func AskedNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAsked))
}

// CoverageIsNil applies the IsNil predicate on the "coverage" field.
func CoverageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCoverage))
}

// CoverageNotNil applies the NotNil predicate on the "coverage" field.
func CoverageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCoverage))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTurnCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
