package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerapp/grocer/internal/grocery"
	"github.com/grocerapp/grocer/internal/measure"
)

func TestAggregateSameUnit(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Flour", Measurement: "2 cups", SourceID: "r1"},
		{Name: "Flour", Measurement: "1 cup", SourceID: "r2"},
	})

	require.Len(t, result, 1)
	entry := result["flour"]
	require.NotNil(t, entry)

	assert.Equal(t, "3", entry.Quantity.String())
	assert.Equal(t, "cups", entry.Unit)
	assert.Equal(t, "Flour", entry.OriginalName)
	assert.Equal(t, grocery.CategoryPantry, entry.Category)
	assert.Equal(t, []string{"r1", "r2"}, entry.SourceIDs)
	assert.Empty(t, entry.Notes)
}

func TestAggregateWithConversion(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Milk", Measurement: "2 cups", SourceID: "r1"},
		{Name: "Milk", Measurement: "8 tablespoons", SourceID: "r2"},
	})

	entry := result["milk"]
	require.NotNil(t, entry)

	// 8 tbsp is half a cup.
	assert.Equal(t, "2.5", entry.Quantity.String())
	assert.Equal(t, "cups", entry.Unit)
	assert.Equal(t, grocery.CategoryDairy, entry.Category)
}

func TestAggregateDifferentIngredients(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Flour", Measurement: "2 cups", SourceID: "r1"},
		{Name: "Sugar", Measurement: "1 cup", SourceID: "r1"},
	})

	assert.Len(t, result, 2)
	assert.Contains(t, result, "flour")
	assert.Contains(t, result, "sugar")
}

func TestAggregateKeyNormalization(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Fresh Basil", Measurement: "2 tablespoons", SourceID: "r1"},
		{Name: "  fresh basil ", Measurement: "1 tablespoon", SourceID: "r2"},
	})

	require.Len(t, result, 1)
	entry := result["fresh basil"]
	require.NotNil(t, entry)

	// First-seen capitalization wins.
	assert.Equal(t, "Fresh Basil", entry.OriginalName)
	assert.Equal(t, "3", entry.Quantity.String())
}

func TestAggregateIncompatibleUnitsBecomeNotes(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Garlic", Measurement: "2 cloves", SourceID: "r1"},
		{Name: "Garlic", Measurement: "1 tbsp", SourceID: "r2"},
	})

	entry := result["garlic"]
	require.NotNil(t, entry)

	// Quantity stays with the first unit seen; the tablespoon is a note.
	assert.Equal(t, "2", entry.Quantity.String())
	assert.Equal(t, "cloves", entry.Unit)
	assert.Equal(t, []string{"+ 1 tbsp"}, entry.Notes)
	assert.Equal(t, []string{"r1", "r2"}, entry.SourceIDs)
}

func TestAggregateExactTextCountUnits(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Garlic", Measurement: "2 cloves", SourceID: "r1"},
		{Name: "Garlic", Measurement: "3 cloves", SourceID: "r2"},
	})

	entry := result["garlic"]
	require.NotNil(t, entry)

	assert.Equal(t, "5", entry.Quantity.String())
	assert.Equal(t, "cloves", entry.Unit)
	assert.Empty(t, entry.Notes)
}

func TestAggregateSourceIDsDeduplicated(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Eggs", Measurement: "2", SourceID: "r1"},
		{Name: "Eggs", Measurement: "3", SourceID: "r1"},
		{Name: "Eggs", Measurement: "1", SourceID: "r2"},
	})

	entry := result["eggs"]
	require.NotNil(t, entry)
	assert.Equal(t, []string{"r1", "r2"}, entry.SourceIDs)
	assert.Equal(t, "6", entry.Quantity.String())
	assert.Equal(t, "piece", entry.Unit)
}

func TestAggregateWithoutSourceIDs(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Salt", Measurement: "1 tsp"},
	})

	entry := result["salt"]
	require.NotNil(t, entry)
	assert.Empty(t, entry.SourceIDs)
}

func TestAggregateAppliesBestUnit(t *testing.T) {
	// 32 tablespoons collapse to 2 cups at the end of the run.
	result := Aggregate([]Record{
		{Name: "Butter", Measurement: "16 tbsp", SourceID: "r1"},
		{Name: "Butter", Measurement: "16 tbsp", SourceID: "r2"},
	})

	entry := result["butter"]
	require.NotNil(t, entry)
	assert.Equal(t, "2", entry.Quantity.String())
	assert.Equal(t, "cups", entry.Unit)
}

func TestAggregateUnparsableMeasurement(t *testing.T) {
	result := Aggregate([]Record{
		{Name: "Salt", Measurement: "to taste", SourceID: "r1"},
		{Name: "Salt", Measurement: "to taste", SourceID: "r2"},
	})

	entry := result["salt"]
	require.NotNil(t, entry)

	// Two "to taste" records combine on exact unit text.
	assert.Equal(t, "2", entry.Quantity.String())
	assert.Equal(t, "to taste", entry.Unit)
}

func TestAggregateManySmallFractionsStayExact(t *testing.T) {
	records := make([]Record, 0, 24)
	for range 24 {
		records = append(records, Record{Name: "Nutmeg", Measurement: "1/3 tsp", SourceID: "r1"})
	}

	entry := Aggregate(records)["nutmeg"]
	require.NotNil(t, entry)

	// 24 thirds are exactly 8 teaspoons; 8 tsp is under a cup and over a
	// tablespoon, so it displays as tablespoons.
	assert.Contains(t, entry.Unit, "tablespoon")
	want, err := measure.Convert(measure.FromInt(8), "tsp", "tbsp")
	require.NoError(t, err)
	assert.True(t, entry.Quantity.Equal(want),
		"got %s, want %s", entry.Quantity, want)
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]Record{}))
}
