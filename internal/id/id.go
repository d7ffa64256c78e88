// Package id generates identifiers for shopping list items.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// itemAlphabet skips lookalike characters so IDs survive being read aloud
// or copied off a printed list.
const itemAlphabet = "23456789abcdefghjkmnpqrstuvwxyz"

const itemLength = 12

// New creates a prefixed unique ID, e.g. "item-x7k2mframpq9".
//
// NanoIDs are shorter than UUIDs and URL-safe, which keeps exported JSON
// compact. Returns an error only when the system entropy source fails.
func New(prefix string) (string, error) {
	id, err := gonanoid.Generate(itemAlphabet, itemLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustNew is like New but panics if ID generation fails. Entropy
// exhaustion is not a condition a shopping list tool can recover from.
func MustNew(prefix string) string {
	id, err := New(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
