package ary

// Sequence is the read-only surface of [Array][T].
//
// The package-level helpers accept a Sequence so callers can pass their own
// types without depending on the concrete *Array.
type Sequence[T any] interface {
	// All returns a copy of every element as a plain Go slice.
	All() []T

	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Each calls fn(item, index) for every element.
	Each(fn func(T, int))
}

var _ Sequence[int] = (*Array[int])(nil)
