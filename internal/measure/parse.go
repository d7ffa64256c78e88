package measure

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "1 1/2 cups" — whole number, fraction, unit.
	mixedNumberRe = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)\s*(.+)$`)
	// "1/2 cup" — fraction, unit.
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)\s*(.+)$`)
	// "2 cups", "1.5 tablespoons" — number, unit. Whitespace between the
	// number and the unit is optional, so "100g" parses too.
	numberUnitRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.+)$`)
	// A bare leading number with nothing usable after it.
	leadingNumberRe = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// Parse splits a raw measurement string into a quantity and unit text.
// It never fails: anything it cannot read degrades to quantity 1 with the
// whole input kept as an opaque descriptive unit, so "to taste" survives
// aggregation intact.
//
// Patterns are tried in a fixed order:
//
//	"1 1/2 cups" → (1.5, "cups")
//	"1/2 cup"    → (0.5, "cup")
//	"2 cups"     → (2, "cups")
//	"3"          → (3, "piece")
//	"to taste"   → (1, "to taste")
//
// The unit text is not validated here; CategoryOf decides later whether it
// is a real unit.
func Parse(text string) (Quantity, string) {
	text = strings.TrimSpace(text)

	if m := mixedNumberRe.FindStringSubmatch(text); m != nil {
		whole := mustInt(m[1])
		if frac, ok := FromFraction(mustInt(m[2]), mustInt(m[3])); ok {
			return FromInt(whole).Add(frac), strings.TrimSpace(m[4])
		}
		// Zero denominator: fall through to the simpler patterns.
	}

	if m := fractionRe.FindStringSubmatch(text); m != nil {
		if frac, ok := FromFraction(mustInt(m[1]), mustInt(m[2])); ok {
			return frac, strings.TrimSpace(m[3])
		}
	}

	if m := numberUnitRe.FindStringSubmatch(text); m != nil {
		if qty, ok := ParseDecimal(m[1]); ok {
			return qty, strings.TrimSpace(m[2])
		}
	}

	if m := leadingNumberRe.FindString(text); m != "" {
		if qty, ok := ParseDecimal(m); ok {
			rest := strings.TrimSpace(text[len(m):])
			if rest == "" {
				rest = "piece"
			}
			return qty, rest
		}
	}

	return One(), text
}

// mustInt converts digits already matched by a \d+ group.
func mustInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// \d+ runs long enough to overflow int64 are not measurements.
		return 0
	}
	return n
}

// nameQualifiers are descriptive words stripped from ingredient names so
// "fresh chopped tomatoes" and "tomatoes" group together.
var nameQualifiers = map[string]bool{
	"fresh": true, "dried": true, "frozen": true, "canned": true,
	"chopped": true, "diced": true, "minced": true, "sliced": true,
	"grated": true, "shredded": true, "crushed": true, "ground": true,
	"whole": true, "halved": true, "quartered": true, "peeled": true,
	"deveined": true, "boneless": true, "skinless": true,
	"organic": true, "raw": true, "cooked": true,
}

// ExtractIngredientName strips descriptive qualifiers from an ingredient
// name, e.g. "Fresh chopped Basil" → "basil". If every word is a qualifier
// the original string is returned unchanged.
func ExtractIngredientName(fullName string) string {
	words := strings.Fields(strings.ToLower(fullName))

	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !nameQualifiers[w] {
			filtered = append(filtered, w)
		}
	}

	if len(filtered) == 0 {
		return fullName
	}
	return strings.Join(filtered, " ")
}
