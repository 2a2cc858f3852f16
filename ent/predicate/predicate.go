// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
