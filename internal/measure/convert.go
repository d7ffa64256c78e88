package measure

import (
	domainerrors "github.com/grocerapp/grocer/internal/errors"
)

// CanConvert reports whether quantities in from can be restated in to.
// Conversion requires both units to share a known category, and count
// units never convert, not even to each other.
func CanConvert(from, to string) bool {
	fromCat := CategoryOf(from)
	toCat := CategoryOf(to)

	return fromCat == toCat &&
		fromCat != CategoryUnknown &&
		fromCat != CategoryCount
}

// Convert restates q from one unit in another.
//
// Textually identical units (after normalization) are an identity
// conversion for every category, count units included. Otherwise the units
// must satisfy CanConvert, and the result is exact:
//
//	result = q * factor(from) / factor(to)
//
// On incompatible units Convert returns ErrNoConversion; the caller decides
// how to surface that, it must never guess a conversion.
func Convert(q Quantity, from, to string) (Quantity, error) {
	fromNorm := Normalize(from)
	toNorm := Normalize(to)

	// Same unit, no conversion needed.
	if fromNorm == toNorm {
		return q, nil
	}

	if !CanConvert(from, to) {
		return Quantity{}, domainerrors.ErrNoConversion.WithDetails(map[string]string{
			"from": from,
			"to":   to,
		})
	}

	var factors map[string]Quantity
	switch CategoryOf(from) {
	case CategoryVolume:
		factors = volumeFactors
	case CategoryWeight:
		factors = weightFactors
	default:
		// Unreachable given CanConvert above.
		return Quantity{}, domainerrors.ErrNoConversion
	}

	base := q.Mul(factors[fromNorm])
	return base.Div(factors[toNorm]), nil
}
