// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Pipeline is the predicate function for pipeline builders.
type Pipeline func(*sql.Selector)
