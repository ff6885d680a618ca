// Package merge provides the structural deep-merge used to assemble bundle
// configurations. Records are merged nested key-by-key; for keys present on
// both sides with non-record values the overlay wins. Array-valued fields are
// combined according to a per-call strategy.
package merge

import (
	"dario.cat/mergo"
)

// ArrayStrategy selects how array-valued fields present on both sides of a
// merge are combined.
type ArrayStrategy int

const (
	// Concat appends the overlay's elements after the base's elements.
	Concat ArrayStrategy = iota
	// Replace discards the base's array and keeps the overlay's as-is.
	Replace
)

// Records merges overlay onto a copy of base and returns the result. Neither
// input is modified. Zero-valued overlay fields leave the base value in place.
func Records[T any](base, overlay T, strategy ArrayStrategy) (T, error) {
	out := base

	opts := []func(*mergo.Config){mergo.WithOverride}
	if strategy == Concat {
		opts = append(opts, mergo.WithAppendSlice)
	}

	if err := mergo.Merge(&out, overlay, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
