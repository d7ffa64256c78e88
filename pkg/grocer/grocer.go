// Package grocer is the public face of the ingredient aggregation engine.
//
// It exposes the four operations external collaborators need: parsing a
// raw measurement, normalizing a unit, converting a quantity between
// units, and aggregating ingredient records into a shopping list. The
// engine never errors on malformed user input; it degrades to quantities
// of 1 and opaque unit text instead.
package grocer

import (
	"github.com/grocerapp/grocer/internal/aggregate"
	"github.com/grocerapp/grocer/internal/grocery"
	"github.com/grocerapp/grocer/internal/measure"
)

// Quantity is an exact rational ingredient amount.
type Quantity = measure.Quantity

// Record is one ingredient occurrence: a display name, the raw measurement
// text, and an opaque source identifier (usually a recipe ID, possibly
// empty).
type Record = aggregate.Record

// Entry is the aggregated result for one ingredient.
type Entry = aggregate.Entry

// Category is a shopping list category.
type Category = grocery.Category

// ParseMeasurement splits raw measurement text into an exact quantity and
// unit text. It never fails; see measure.Parse for the grammar.
func ParseMeasurement(text string) (Quantity, string) {
	return measure.Parse(text)
}

// NormalizeUnit canonicalizes unit text: lowercased, trimmed.
func NormalizeUnit(unit string) string {
	return measure.Normalize(unit)
}

// Convert restates a quantity in another unit. It returns
// errors.ErrNoConversion when the units are not compatible; callers decide
// how to surface that.
func Convert(q Quantity, from, to string) (Quantity, error) {
	return measure.Convert(q, from, to)
}

// Aggregate merges ingredient records into one entry per normalized
// ingredient name, with each entry's quantity restated in its best display
// unit. Empty input yields an empty map.
func Aggregate(records []Record) map[string]*Entry {
	return aggregate.Aggregate(records)
}

// Categorize classifies an ingredient name into a shopping category.
func Categorize(name string) Category {
	return grocery.Categorize(name)
}
