package grocery

import "strings"

// categoryCheck pairs a keyword vocabulary with the category it selects.
type categoryCheck struct {
	category Category
	keywords []string
}

// categoryChecks is evaluated strictly in order; the first keyword hit
// wins. Several keywords deliberately overlap categories — "pepper" is in
// both the produce and spice vocabularies, "basil" in produce and spices —
// and the precedence below is what keeps "bell pepper" in produce. Do not
// reorder or dedupe these lists: existing shopping lists depend on the
// exact outcome.
var categoryChecks = []categoryCheck{
	{CategoryProduce, []string{
		"tomato", "lettuce", "spinach", "kale", "carrot", "celery", "onion",
		"garlic", "potato", "pepper", "cucumber", "zucchini", "squash",
		"broccoli", "cauliflower", "cabbage", "mushroom", "avocado",
		"apple", "banana", "orange", "lemon", "lime", "berry", "berries",
		"basil", "cilantro", "parsley", "mint", "thyme", "rosemary",
	}},
	{CategoryDairy, []string{
		"milk", "cream", "butter", "cheese", "yogurt", "sour cream",
		"cottage cheese", "ricotta", "mozzarella", "cheddar", "parmesan",
		"egg", "eggs",
	}},
	{CategoryMeat, []string{
		"chicken", "beef", "pork", "turkey", "lamb", "fish", "salmon",
		"tuna", "shrimp", "bacon", "sausage", "ham", "steak", "ground meat",
	}},
	{CategoryCanned, []string{
		"canned", "can of", "tomato paste", "tomato sauce", "broth", "stock",
		"beans", "chickpeas", "corn",
	}},
	{CategoryCondiments, []string{
		"sauce", "ketchup", "mustard", "mayonnaise", "salsa", "dressing",
		"soy sauce", "hot sauce", "bbq sauce", "worcestershire",
	}},
	{CategorySpices, []string{
		"pepper", "paprika", "cumin", "oregano", "basil", "cinnamon",
		"nutmeg", "ginger", "turmeric", "curry", "chili powder", "cayenne",
		"garlic powder", "onion powder",
	}},
	{CategoryFrozen, []string{
		"frozen", "ice cream",
	}},
	{CategoryBakery, []string{
		"bread", "roll", "bun", "bagel", "croissant", "tortilla", "pita",
	}},
	{CategoryBeverages, []string{
		"juice", "soda", "water", "coffee", "tea", "wine", "beer",
	}},
	{CategoryPantry, []string{
		"flour", "sugar", "salt", "rice", "pasta", "oil", "vinegar",
		"honey", "syrup", "baking powder", "baking soda", "yeast",
		"cornstarch", "cocoa", "chocolate", "vanilla", "almond extract",
	}},
}

// Categorize classifies an ingredient name into a shopping list category
// by case-insensitive keyword substring match. Unrecognized names land in
// CategoryOther; this never fails.
func Categorize(name string) Category {
	lower := strings.ToLower(name)

	for _, check := range categoryChecks {
		for _, keyword := range check.keywords {
			if strings.Contains(lower, keyword) {
				return check.category
			}
		}
	}
	return CategoryOther
}
