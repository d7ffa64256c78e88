package measure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestUnitVolume(t *testing.T) {
	tests := []struct {
		name     string
		quantity Quantity
		unit     string
		wantQty  string
		wantUnit string
	}{
		// A gallon and up displays as gallons; the label never pluralizes.
		{"twenty cups", FromInt(20), "cup", "1.25", "gallon"},
		{"two gallons worth", FromInt(32), "cups", "2", "gallon"},
		{"large in quarts", FromInt(8), "quart", "2", "gallon"},

		// A cup and up displays as cups.
		{"three cups", FromInt(3), "cup", "3", "cups"},
		{"exactly one cup", FromInt(1), "cup", "1", "cup"},
		{"tablespoons promote", FromInt(32), "tbsp", "2", "cups"},
		{"pint promotes", FromInt(1), "pint", "2", "cups"},

		// Between a tablespoon and a cup displays as tablespoons.
		{"half cup", mustDec("0.5"), "cup", "8", "tablespoons"},
		{"single tablespoon", FromInt(1), "tbsp", "1", "tablespoon"},

		// Count and unknown units are untouched.
		{"pieces unchanged", FromInt(3), "pieces", "3", "pieces"},
		{"descriptive unchanged", FromInt(1), "to taste", "1", "to taste"},
		{"unknown unchanged", FromInt(2), "handfuls", "2", "handfuls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, unit := BestUnit(tt.quantity, tt.unit)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.wantQty, qty.String())
		})
	}
}

func TestBestUnitTinyVolume(t *testing.T) {
	// Under a sixteenth of a cup displays as teaspoons. The teaspoon
	// factor is rounded, so check the magnitude, not the exact digits.
	qty, unit := BestUnit(mustDec("0.05"), "cup")
	assert.True(t, strings.Contains(unit, "teaspoon"))
	assert.InDelta(t, 2.4, qty.Float64(), 0.001)
}

func TestBestUnitWeight(t *testing.T) {
	tests := []struct {
		name     string
		quantity Quantity
		unit     string
		wantQty  string
		wantUnit string
	}{
		// A kilogram and up displays as kg.
		{"grams promote to kg", FromInt(1500), "g", "1.5", "kg"},
		{"exactly a kilogram", FromInt(1000), "g", "1", "kg"},

		// Metric stays metric below a kilogram.
		{"medium grams stay grams", FromInt(500), "g", "500", "g"},
		{"small grams stay grams", FromInt(20), "g", "20", "g"},
		{"fraction of a kg", mustDec("0.5"), "kg", "500", "g"},

		// Imperial input stays imperial between an ounce and a kilogram.
		{"ounces stay ounces", FromInt(8), "oz", "8", "oz"},
		{"a pound of ounces", FromInt(16), "oz", "1", "lb"},
		{"pounds pluralize", FromInt(2), "lb", "2", "lbs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, unit := BestUnit(tt.quantity, tt.unit)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.wantQty, qty.String())
		})
	}
}
