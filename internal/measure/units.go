// Package measure parses free-text ingredient measurements and converts
// quantities between kitchen units.
//
// Units fall into three families: volume (base unit: cup), weight (base
// unit: gram), and count units like "clove" or "pinch" that never convert
// to anything else. The tables below are process-wide constants, built once
// and never mutated, so they are safe to read from any goroutine.
package measure

import "strings"

// Category identifies the conversion family a unit belongs to.
type Category int

const (
	// CategoryUnknown represents unit text not found in any table.
	CategoryUnknown Category = iota
	// CategoryVolume represents volume units, convertible via cups.
	CategoryVolume
	// CategoryWeight represents weight units, convertible via grams.
	CategoryWeight
	// CategoryCount represents countable or descriptive units that only
	// combine on exact text match.
	CategoryCount
)

// String returns the string representation of a Category.
func (c Category) String() string {
	switch c {
	case CategoryVolume:
		return "volume"
	case CategoryWeight:
		return "weight"
	case CategoryCount:
		return "count"
	default:
		return "unknown"
	}
}

// volumeFactors maps volume unit spellings to cup equivalents.
var volumeFactors = map[string]Quantity{
	// Metric
	"ml":          mustDec("0.00422675"),
	"milliliter":  mustDec("0.00422675"),
	"milliliters": mustDec("0.00422675"),
	"l":           mustDec("4.22675"),
	"liter":       mustDec("4.22675"),
	"liters":      mustDec("4.22675"),

	// US customary
	"tsp":          mustDec("0.0208333"),
	"teaspoon":     mustDec("0.0208333"),
	"teaspoons":    mustDec("0.0208333"),
	"tbsp":         mustDec("0.0625"),
	"tablespoon":   mustDec("0.0625"),
	"tablespoons":  mustDec("0.0625"),
	"fl oz":        mustDec("0.125"),
	"fluid ounce":  mustDec("0.125"),
	"fluid ounces": mustDec("0.125"),
	"cup":          mustDec("1"),
	"cups":         mustDec("1"),
	"c":            mustDec("1"),
	"pint":         mustDec("2"),
	"pints":        mustDec("2"),
	"pt":           mustDec("2"),
	"quart":        mustDec("4"),
	"quarts":       mustDec("4"),
	"qt":           mustDec("4"),
	"gallon":       mustDec("16"),
	"gallons":      mustDec("16"),
	"gal":          mustDec("16"),
}

// weightFactors maps weight unit spellings to gram equivalents.
var weightFactors = map[string]Quantity{
	"mg":         mustDec("0.001"),
	"milligram":  mustDec("0.001"),
	"milligrams": mustDec("0.001"),
	"g":          mustDec("1"),
	"gram":       mustDec("1"),
	"grams":      mustDec("1"),
	"kg":         mustDec("1000"),
	"kilogram":   mustDec("1000"),
	"kilograms":  mustDec("1000"),
	"oz":         mustDec("28.3495"),
	"ounce":      mustDec("28.3495"),
	"ounces":     mustDec("28.3495"),
	"lb":         mustDec("453.592"),
	"lbs":        mustDec("453.592"),
	"pound":      mustDec("453.592"),
	"pounds":     mustDec("453.592"),
}

// countUnits lists countable and descriptive units. Matching is by
// substring, so "2 large cans" still reads as a count measurement.
var countUnits = []string{
	"piece", "pieces", "whole", "item", "items",
	"clove", "cloves", "slice", "slices",
	"can", "cans", "package", "packages", "pkg",
	"bunch", "bunches", "head", "heads",
	"pinch", "pinches", "dash", "dashes",
	"to taste", "as needed",
}

// Normalize canonicalizes unit text for comparison: lowercase, surrounding
// whitespace trimmed. It is idempotent.
func Normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// CategoryOf determines which conversion family a unit belongs to.
// Volume and weight require an exact (normalized) spelling match; count
// units match by substring. Anything else is CategoryUnknown.
func CategoryOf(unit string) Category {
	normalized := Normalize(unit)

	if _, ok := volumeFactors[normalized]; ok {
		return CategoryVolume
	}
	if _, ok := weightFactors[normalized]; ok {
		return CategoryWeight
	}
	for _, count := range countUnits {
		if strings.Contains(normalized, count) {
			return CategoryCount
		}
	}
	return CategoryUnknown
}
