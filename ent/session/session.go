// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserTag holds the string denoting the user_tag field in the database.
	FieldUserTag = "user_tag"
	// FieldThetaMean holds the string denoting the theta_mean field in the database.
	FieldThetaMean = "theta_mean"
	// FieldThetaVar holds the string denoting the theta_var field in the database.
	FieldThetaVar = "theta_var"
	// FieldAsked holds the string denoting the asked field in the database.
	FieldAsked = "asked"
	// FieldCoverage holds the string denoting the coverage field in the database.
	FieldCoverage = "coverage"
	// FieldTurnCount holds the string denoting the turn_count field in the database.
	FieldTurnCount = "turn_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldUserTag,
	FieldThetaMean,
	FieldThetaVar,
	FieldAsked,
	FieldCoverage,
	FieldTurnCount,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUserTag holds the default value on creation for the "user_tag" field.
	DefaultUserTag string
	// DefaultTurnCount holds the default value on creation for the "turn_count" field.
	DefaultTurnCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserTag orders the results by the user_tag field.
func ByUserTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserTag, opts...).ToFunc()
}

// ByThetaMean orders the results by the theta_mean field.
func ByThetaMean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaMean, opts...).ToFunc()
}

// ByThetaVar orders the results by the theta_var field.
func ByThetaVar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaVar, opts...).ToFunc()
}

// ByTurnCount orders the results by the turn_count field.
func ByTurnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
