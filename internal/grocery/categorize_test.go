package grocery

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		// Produce
		{"tomato", CategoryProduce},
		{"cherry tomatoes", CategoryProduce},
		{"red onion", CategoryProduce},
		{"bell pepper", CategoryProduce},
		{"fresh basil", CategoryProduce},

		// Dairy
		{"milk", CategoryDairy},
		{"heavy cream", CategoryDairy},
		{"parmesan", CategoryDairy},
		{"eggs", CategoryDairy},

		// Meat
		{"chicken breast", CategoryMeat},
		{"salmon fillet", CategoryMeat},
		{"bacon", CategoryMeat},

		// Canned
		{"canned beans", CategoryCanned},
		{"chicken broth", CategoryMeat}, // "chicken" outranks "broth"
		{"vegetable broth", CategoryCanned},
		{"tomato paste", CategoryProduce}, // "tomato" outranks "tomato paste"
		{"chickpeas", CategoryCanned},

		// Condiments
		{"dijon mustard", CategoryCondiments},
		{"ranch dressing", CategoryCondiments},

		// Spices
		{"paprika", CategorySpices},
		{"ground cinnamon", CategorySpices},
		{"curry powder", CategorySpices},

		// Frozen
		{"frozen peas", CategoryFrozen},
		{"ice cream", CategoryDairy}, // "cream" outranks "ice cream"

		// Bakery
		{"sourdough bread", CategoryBakery},
		{"flour tortilla", CategoryBakery}, // "tortilla" hits bakery before "flour" reaches pantry

		// Beverages
		{"orange juice", CategoryProduce}, // "orange" outranks "juice"
		{"green tea", CategoryBeverages},
		{"red wine", CategoryBeverages},

		// Pantry
		{"all-purpose flour", CategoryPantry},
		{"brown sugar", CategoryPantry},
		{"olive oil", CategoryPantry},
		{"vanilla", CategoryPantry},

		// Fallback
		{"unknown item", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.name); got != tt.expected {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCategorizeIsCaseInsensitive(t *testing.T) {
	if got := Categorize("TOMATO"); got != CategoryProduce {
		t.Errorf("Categorize(TOMATO) = %q, want produce", got)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range DisplayOrder {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("household").Valid() {
		t.Error("household is not part of the category set")
	}
}

func TestCategoryRank(t *testing.T) {
	if CategoryProduce.Rank() != 0 {
		t.Errorf("produce should rank first, got %d", CategoryProduce.Rank())
	}
	if Category("bogus").Rank() != len(DisplayOrder) {
		t.Error("unknown categories should rank last")
	}
}
