package measure

var (
	bestUnitOneCup    = mustDec("1")
	bestUnitOneGallon = mustDec("16")      // cups per gallon
	bestUnitOneTbsp   = mustDec("0.0625")  // cups per tablespoon
	bestUnitOneKilo   = mustDec("1000")    // grams
	bestUnitOneOunce  = mustDec("28.35")   // grams, rounded display threshold
	bestUnitOnePound  = mustDec("453.592") // grams
)

// ounceFamily holds the spellings whose best weight unit stays imperial.
var ounceFamily = map[string]bool{
	"oz": true, "ounce": true, "ounces": true,
	"lb": true, "lbs": true, "pound": true, "pounds": true,
}

// BestUnit picks the friendliest display unit for an aggregated quantity,
// e.g. 32 tbsp becomes 2 cups and 1500 g becomes 1.5 kg. It is applied once
// after aggregation finishes, never mid-merge.
//
// Volume buckets by cup equivalent: a gallon and up displays as gallons, a
// cup and up as cups, under a sixteenth of a cup as teaspoons, the rest as
// tablespoons. Weight buckets by grams: a kilogram and up displays as kg;
// above roughly an ounce, quantities that arrived in ounces or pounds stay
// imperial (pounds from a pound up, ounces below), everything else stays in
// grams. Count and unknown units are returned unchanged.
//
// Unit labels pluralize only above exactly 1 ("1 cup", "1.5 cups"), and
// "gallon" and "oz" never take a plural form. That asymmetry is part of the
// engine's observable output and is kept as is.
func BestUnit(q Quantity, unit string) (Quantity, string) {
	normalized := Normalize(unit)

	switch CategoryOf(unit) {
	case CategoryVolume:
		cups, err := Convert(q, unit, "cup")
		if err != nil {
			break
		}
		switch {
		case cups.Cmp(bestUnitOneGallon) >= 0:
			gallons := cups.Div(bestUnitOneGallon)
			return gallons, "gallon"
		case cups.Cmp(bestUnitOneCup) >= 0:
			return cups, pluralize(cups, "cup", "cups")
		case cups.Cmp(bestUnitOneTbsp) < 0:
			tsp, err := Convert(q, unit, "tsp")
			if err != nil {
				break
			}
			return tsp, pluralize(tsp, "teaspoon", "teaspoons")
		default:
			tbsp := cups.Div(bestUnitOneTbsp)
			return tbsp, pluralize(tbsp, "tablespoon", "tablespoons")
		}

	case CategoryWeight:
		grams, err := Convert(q, unit, "g")
		if err != nil {
			break
		}
		switch {
		case grams.Cmp(bestUnitOneKilo) >= 0:
			return grams.Div(bestUnitOneKilo), "kg"
		case grams.Cmp(bestUnitOneOunce) >= 0 && ounceFamily[normalized]:
			if grams.Cmp(bestUnitOnePound) >= 0 {
				pounds := grams.Div(bestUnitOnePound)
				return pounds, pluralize(pounds, "lb", "lbs")
			}
			ounces, err := Convert(q, unit, "oz")
			if err != nil {
				break
			}
			return ounces, "oz"
		default:
			return grams, "g"
		}
	}

	// Count units, unknown units, or a conversion that unexpectedly failed:
	// leave the quantity as the caller stated it.
	return q, unit
}

func pluralize(q Quantity, singular, plural string) string {
	if q.Cmp(One()) > 0 {
		return plural
	}
	return singular
}
