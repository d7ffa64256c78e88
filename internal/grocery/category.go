// Package grocery classifies ingredient names into shopping list categories.
package grocery

// Category is a shopping list section. The set is closed; persisted values
// outside it are rejected by Valid.
type Category string

// Shopping list categories.
const (
	CategoryProduce    Category = "produce"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryBakery     Category = "bakery"
	CategoryPantry     Category = "pantry"
	CategoryCanned     Category = "canned"
	CategoryFrozen     Category = "frozen"
	CategoryBeverages  Category = "beverages"
	CategoryCondiments Category = "condiments"
	CategorySpices     Category = "spices"
	CategorySnacks     Category = "snacks"
	CategoryOther      Category = "other"
)

// DisplayOrder is the aisle order shopping lists are grouped in.
var DisplayOrder = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryBakery,
	CategoryFrozen,
	CategoryCanned,
	CategoryCondiments,
	CategorySpices,
	CategoryBeverages,
	CategorySnacks,
	CategoryPantry,
	CategoryOther,
}

// String returns the category as stored and serialized.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduce, CategoryDairy, CategoryMeat, CategoryBakery,
		CategoryPantry, CategoryCanned, CategoryFrozen, CategoryBeverages,
		CategoryCondiments, CategorySpices, CategorySnacks, CategoryOther:
		return true
	}
	return false
}

// Rank returns the position of c in DisplayOrder, for sorting.
func (c Category) Rank() int {
	for i, other := range DisplayOrder {
		if c == other {
			return i
		}
	}
	return len(DisplayOrder)
}
