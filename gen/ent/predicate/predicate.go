// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaptureInput is the predicate function for captureinput builders.
type CaptureInput func(*sql.Selector)

// ProcessedItem is the predicate function for processeditem builders.
type ProcessedItem func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
