package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/grocerapp/grocer/internal/errors"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cup", Normalize("Cup"))
	assert.Equal(t, "tbsp", Normalize("  TBSP  "))

	// Idempotent.
	assert.Equal(t, Normalize("  Fl Oz "), Normalize(Normalize("  Fl Oz ")))
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		unit     string
		expected Category
	}{
		{"cup", CategoryVolume},
		{"CUPS", CategoryVolume},
		{"fl oz", CategoryVolume},
		{"lbs", CategoryWeight},
		{"g", CategoryWeight},
		{"piece", CategoryCount},
		{"cloves", CategoryCount},
		{"to taste", CategoryCount},
		// Substring semantics for count units.
		{"large can", CategoryCount},
		{"unknown", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryOf(tt.unit), "unit %q", tt.unit)
		})
	}
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert("cup", "tablespoon"))
	assert.True(t, CanConvert("oz", "lbs"))

	// Different categories never convert.
	assert.False(t, CanConvert("cup", "lb"))
	// Count units never convert, not even to themselves.
	assert.False(t, CanConvert("piece", "piece"))
	assert.False(t, CanConvert("clove", "cloves"))
	// Unknown units never convert.
	assert.False(t, CanConvert("cup", "gizmo"))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		quantity Quantity
		from, to string
		expected Quantity
	}{
		{"cup to tablespoons", FromInt(1), "cup", "tablespoon", FromInt(16)},
		{"cups to quart", FromInt(4), "cup", "quart", FromInt(1)},
		{"grams to kilograms", FromInt(1000), "g", "kg", FromInt(1)},
		{"pints to cups", FromInt(2), "pint", "cup", FromInt(4)},
		{"gallon to quarts", FromInt(1), "gallon", "quart", FromInt(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.quantity, tt.from, tt.to)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(tt.expected), "Convert(%s, %s, %s) = %s, want %s",
				tt.quantity, tt.from, tt.to, got, tt.expected)
		})
	}
}

func TestConvertApproximate(t *testing.T) {
	// The published oz and tsp factors are rounded, so cross-checks land
	// near, not on, the nominal value.
	got, err := Convert(FromInt(16), "oz", "lb")
	require.NoError(t, err)
	assert.InDelta(t, 1, got.Float64(), 0.01)

	got, err = Convert(FromInt(3), "teaspoon", "tablespoon")
	require.NoError(t, err)
	assert.InDelta(t, 1, got.Float64(), 0.001)
}

func TestConvertIdentity(t *testing.T) {
	// Identity holds for every unit, count and unknown included.
	for _, unit := range []string{"cup", "g", "piece", "to taste", "gizmo"} {
		got, err := Convert(FromInt(5), unit, unit)
		require.NoError(t, err, "unit %q", unit)
		assert.True(t, got.Equal(FromInt(5)), "unit %q", unit)
	}

	// Identity is textual: different spellings of a count unit still fail.
	_, err := Convert(FromInt(2), "clove", "cloves")
	assert.ErrorIs(t, err, domainerrors.ErrNoConversion)
}

func TestConvertIncompatible(t *testing.T) {
	_, err := Convert(FromInt(1), "cup", "lbs")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoConversion)
}

func TestConvertRoundTrip(t *testing.T) {
	// Rational arithmetic makes round-trips exact for same-category pairs.
	pairs := [][2]string{
		{"cup", "tablespoon"},
		{"cup", "ml"},
		{"tsp", "gallon"},
		{"g", "oz"},
		{"kg", "lb"},
	}

	for _, pair := range pairs {
		q := mustDec("2.75")
		there, err := Convert(q, pair[0], pair[1])
		require.NoError(t, err)
		back, err := Convert(there, pair[1], pair[0])
		require.NoError(t, err)
		assert.True(t, back.Equal(q), "%s -> %s -> %s: got %s", pair[0], pair[1], pair[0], back)
	}
}
