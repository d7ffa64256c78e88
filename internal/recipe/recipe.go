// Package recipe models recipe documents and flattens them into ingredient
// records for aggregation.
package recipe

import (
	"sort"

	"github.com/grocerapp/grocer/internal/aggregate"
)

// Recipe is one recipe document as authored in a YAML or JSON file.
type Recipe struct {
	// ID identifies the recipe in shopping list source references. The
	// loader assigns one when the file does not carry it.
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Category string `json:"category,omitempty" yaml:"category,omitempty" validate:"omitempty,oneof=appetizers baking_bread breakfast desserts dinner drinks international lunch"`
	Servings int    `json:"servings,omitempty" yaml:"servings,omitempty" validate:"omitempty,gte=1"`

	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients" validate:"required,min=1,dive"`
}

// Ingredient is one ingredient line within a recipe.
type Ingredient struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Measurement string `json:"measurement" yaml:"measurement" validate:"required"`
	// Order preserves the authored ingredient sequence when set.
	Order int `json:"order,omitempty" yaml:"order,omitempty" validate:"gte=0"`
}

// Records flattens recipes into aggregation records, each tagged with its
// recipe's ID. Within a recipe, ingredients follow their authored order.
func Records(recipes []*Recipe) []aggregate.Record {
	var records []aggregate.Record

	for _, r := range recipes {
		ingredients := make([]Ingredient, len(r.Ingredients))
		copy(ingredients, r.Ingredients)
		sort.SliceStable(ingredients, func(i, j int) bool {
			return ingredients[i].Order < ingredients[j].Order
		})

		for _, ing := range ingredients {
			records = append(records, aggregate.Record{
				Name:        ing.Name,
				Measurement: ing.Measurement,
				SourceID:    r.ID,
			})
		}
	}

	return records
}
