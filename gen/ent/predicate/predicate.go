// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobEvent is the predicate function for jobevent builders.
type JobEvent func(*sql.Selector)
