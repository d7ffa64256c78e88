// Package aggregate merges ingredient records from many recipes into a
// consolidated shopping list, one entry per ingredient.
package aggregate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/grocerapp/grocer/internal/grocery"
	"github.com/grocerapp/grocer/internal/measure"
)

// Record is one ingredient occurrence supplied by a caller. SourceID is an
// opaque identifier for whatever contributed the record, typically a recipe
// ID; it may be empty.
type Record struct {
	Name        string `json:"name" validate:"required"`
	Measurement string `json:"measurement" validate:"required"`
	SourceID    string `json:"source_id,omitempty"`
}

// Entry is the consolidated result for one ingredient. Records group under
// a key derived from the lowercased, trimmed name; the capitalization of
// the first record seen is kept for display.
type Entry struct {
	Key          string
	OriginalName string
	Quantity     measure.Quantity
	Unit         string
	Category     grocery.Category
	// SourceIDs holds contributing identifiers in first-contribution order,
	// without duplicates.
	SourceIDs []string
	// Notes carries quantities that could not be merged into Quantity
	// because their units are incompatible, e.g. "+ 2 cloves" on an entry
	// measured in cups. Nothing is silently dropped.
	Notes []string
}

// Aggregate merges records in input order into one entry per normalized
// ingredient name. Same-category quantities are converted and summed;
// identical unit text is summed directly; anything else is preserved as a
// note. After all records are consumed each entry's quantity is restated
// once in its best display unit.
//
// The call is pure: no state survives between invocations, the result does
// not alias the input, and empty input yields an empty map.
func Aggregate(records []Record) map[string]*Entry {
	aggregated := make(map[string]*Entry)

	for _, record := range records {
		qty, unit := parseMeasurement(record.Measurement)
		key := strings.ToLower(strings.TrimSpace(record.Name))

		existing, ok := aggregated[key]
		if !ok {
			entry := &Entry{
				Key:          key,
				OriginalName: record.Name,
				Quantity:     qty,
				Unit:         unit,
				Category:     grocery.Categorize(key),
			}
			if record.SourceID != "" {
				entry.SourceIDs = []string{record.SourceID}
			}
			aggregated[key] = entry
			continue
		}

		switch {
		case measure.CanConvert(unit, existing.Unit):
			converted, err := measure.Convert(qty, unit, existing.Unit)
			if err == nil {
				existing.Quantity = existing.Quantity.Add(converted)
			} else {
				// CanConvert and Convert disagreeing would be a bug in the
				// unit tables. Adding the raw quantity mirrors what shipped
				// lists have always shown, so keep it rather than drop the
				// amount.
				existing.Quantity = existing.Quantity.Add(qty)
			}
		case measure.Normalize(unit) == measure.Normalize(existing.Unit):
			// Count units with identical text, e.g. "cloves" + "cloves".
			existing.Quantity = existing.Quantity.Add(qty)
		default:
			existing.Notes = append(existing.Notes, fmt.Sprintf("+ %s %s", qty, unit))
		}

		if record.SourceID != "" && !slices.Contains(existing.SourceIDs, record.SourceID) {
			existing.SourceIDs = append(existing.SourceIDs, record.SourceID)
		}
	}

	for _, entry := range aggregated {
		entry.Quantity, entry.Unit = measure.BestUnit(entry.Quantity, entry.Unit)
	}

	return aggregated
}

// parseMeasurement guards measure.Parse. The parser is total, but a panic
// out of quantity arithmetic must degrade to "1 <raw text>" instead of
// aborting a whole shopping list.
func parseMeasurement(raw string) (qty measure.Quantity, unit string) {
	defer func() {
		if r := recover(); r != nil {
			qty, unit = measure.One(), raw
		}
	}()
	return measure.Parse(raw)
}
