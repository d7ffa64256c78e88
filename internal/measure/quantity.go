package measure

import (
	"math/big"
	"strings"
)

// Quantity is an exact rational amount of an ingredient.
//
// Kitchen measurements are dominated by small fractions (1/3 cup, 1/8 tsp)
// that have no finite binary representation, so quantities are kept as
// rationals end to end. Summing a third of a cup across thirty recipes must
// still land in the right display bucket, which float64 cannot guarantee.
//
// The zero value is 0. Quantity values are immutable; arithmetic methods
// return new values.
type Quantity struct {
	rat *big.Rat
}

// Zero returns the zero quantity.
func Zero() Quantity {
	return Quantity{}
}

// One returns the quantity 1, the default for unparsable measurements.
func One() Quantity {
	return FromInt(1)
}

// FromInt creates a quantity from an integer.
func FromInt(n int64) Quantity {
	return Quantity{rat: new(big.Rat).SetInt64(n)}
}

// FromFraction creates a quantity from a numerator and denominator.
// Returns false if the denominator is zero.
func FromFraction(num, den int64) (Quantity, bool) {
	if den == 0 {
		return Quantity{}, false
	}
	return Quantity{rat: big.NewRat(num, den)}, true
}

// ParseDecimal parses a non-negative decimal literal such as "2", "1.5"
// or "0.0625" into an exact quantity.
func ParseDecimal(s string) (Quantity, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "/eE+-") {
		return Quantity{}, false
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Quantity{}, false
	}
	return Quantity{rat: r}, true
}

// mustDec parses a decimal literal, panicking on failure. It is only used
// for the package's own conversion-factor tables.
func mustDec(s string) Quantity {
	q, ok := ParseDecimal(s)
	if !ok {
		panic("measure: bad decimal literal " + s)
	}
	return q
}

func (q Quantity) val() *big.Rat {
	if q.rat == nil {
		return new(big.Rat)
	}
	return q.rat
}

// Add returns q + o.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{rat: new(big.Rat).Add(q.val(), o.val())}
}

// Mul returns q * o.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{rat: new(big.Rat).Mul(q.val(), o.val())}
}

// Div returns q / o. o must be non-zero.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{rat: new(big.Rat).Quo(q.val(), o.val())}
}

// Cmp compares q and o, returning -1, 0 or +1.
func (q Quantity) Cmp(o Quantity) int {
	return q.val().Cmp(o.val())
}

// Equal reports whether q and o represent the same amount.
func (q Quantity) Equal(o Quantity) bool {
	return q.Cmp(o) == 0
}

// IsZero reports whether q is zero.
func (q Quantity) IsZero() bool {
	return q.val().Sign() == 0
}

// Float64 returns the nearest float64. Display and sorting only; all
// arithmetic stays rational.
func (q Quantity) Float64() float64 {
	f, _ := q.val().Float64()
	return f
}

// String renders the quantity the way it appears on a shopping list.
// Terminating decimals are rendered exactly with trailing zeros trimmed
// ("0.5", "1.25", "3"); non-terminating ones are rounded to two places.
func (q Quantity) String() string {
	r := q.val()
	if r.IsInt() {
		return r.Num().String()
	}

	// A reduced rational terminates in decimal iff the denominator is
	// 2^a * 5^b; the needed precision is max(a, b).
	den := new(big.Int).Set(r.Denom())
	var twos, fives int
	for den.Bit(0) == 0 {
		den.Rsh(den, 1)
		twos++
	}
	five := big.NewInt(5)
	mod := new(big.Int)
	for {
		quo, m := new(big.Int).QuoRem(den, five, mod)
		if m.Sign() != 0 {
			break
		}
		den.Set(quo)
		fives++
	}

	prec := 2
	if den.Cmp(big.NewInt(1)) == 0 {
		prec = max(twos, fives)
	}
	return trimZeros(r.FloatString(prec))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
