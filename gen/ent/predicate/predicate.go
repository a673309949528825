// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractBatch is the predicate function for extractbatch builders.
type ExtractBatch func(*sql.Selector)

// FiscalRecord is the predicate function for fiscalrecord builders.
type FiscalRecord func(*sql.Selector)
