package ary

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-ruby-utils/arr"
)

// Array is a generic wrapper around a slice of T that exposes the arr
// helpers as methods, Ruby style:
//
//	ary.Of(1, 2, 3).Combination(2) // → [[1 2] [1 3] [2 3]]
//
// Every method except [Array.Clear] leaves the receiver unchanged and
// returns new values, so an Array may be read from several goroutines.
//
// Go methods cannot introduce type parameters, so operations that change
// the element type or need comparable elements are package-level functions:
// [FilterMap], [ForEachWith], [Difference] and [Assoc].
type Array[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates an Array from a variadic list of items (copied).
func Of[T any](items ...T) *Array[T] {
	return From(items)
}

// From creates an Array from a slice (the slice is copied).
func From[T any](items []T) *Array[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Array[T]{items: dst}
}

// Empty creates an empty Array of type T.
func Empty[T any]() *Array[T] {
	return &Array[T]{items: []T{}}
}

func wrap[T any](items []T) *Array[T] { return &Array[T]{items: items} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (a *Array[T]) All() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool { return len(a.items) == 0 }

// Each calls fn(item, index) for every element.
func (a *Array[T]) Each(fn func(T, int)) {
	for i, item := range a.items {
		fn(item, i)
	}
}

// String returns a JSON representation of the array, falling back to %v
// for elements JSON cannot encode. It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := json.Marshal(a.items)
	if err != nil {
		return fmt.Sprintf("%v", a.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Clear removes every element from a in place and returns a.
func (a *Array[T]) Clear() *Array[T] {
	arr.Clear(&a.items)
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinatorics
// ─────────────────────────────────────────────────────────────────────────────

// Combination returns every n-element combination. See [arr.Combination].
func (a *Array[T]) Combination(n int) [][]T { return arr.Combination(a.items, n) }

// Permutation returns every n-element permutation. See [arr.Permutation].
func (a *Array[T]) Permutation(n int) [][]T { return arr.Permutation(a.items, n) }

// RepeatedCombination returns every n-element combination with
// replacement. See [arr.RepeatedCombination].
func (a *Array[T]) RepeatedCombination(n int) [][]T {
	return arr.RepeatedCombination(a.items, n)
}

// RepeatedPermutation returns every n-element permutation with
// replacement. See [arr.RepeatedPermutation].
func (a *Array[T]) RepeatedPermutation(n int) [][]T {
	return arr.RepeatedPermutation(a.items, n)
}

// Product returns the cartesian product of a followed by others; a is the
// slowest-varying position.
//
//	ary.Of(1, 2).Product([]int{3, 4}) // → [[1 3] [1 4] [2 3] [2 4]]
func (a *Array[T]) Product(others ...[]T) [][]T {
	lists := make([][]T, 0, len(others)+1)
	lists = append(lists, a.items)
	return arr.Product(append(lists, others...)...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & slicing
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns a new Array without nil elements.
func (a *Array[T]) Compact() *Array[T] { return wrap(arr.Compact(a.items)) }

// Count returns the number of elements satisfying fn.
func (a *Array[T]) Count(fn func(T) bool) int { return arr.Count(a.items, fn) }

// Drop returns a new Array without the first n elements. A negative n
// keeps the last -n elements. See [arr.Drop].
func (a *Array[T]) Drop(n int) *Array[T] {
	return wrap(arr.Drop(a.items, n))
}

// DropWhile returns a new Array starting at the first element for which fn
// returns false.
func (a *Array[T]) DropWhile(fn func(T) bool) *Array[T] {
	return wrap(arr.DropWhile(a.items, fn))
}

// Take returns a new Array with the first n elements, or
// [arr.ErrNegativeSize] when n is negative.
func (a *Array[T]) Take(n int) (*Array[T], error) {
	out, err := arr.Take(a.items, n)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// TakeWhile returns a new Array with the leading elements for which fn
// returns true.
func (a *Array[T]) TakeWhile(fn func(T) bool) *Array[T] {
	return wrap(arr.TakeWhile(a.items, fn))
}

// Partition splits the array into the elements satisfying fn and the rest.
func (a *Array[T]) Partition(fn func(T) bool) (*Array[T], *Array[T]) {
	pass, fail := arr.Partition(a.items, fn)
	return wrap(pass), wrap(fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// Runtime extension
// ─────────────────────────────────────────────────────────────────────────────

// Send calls the method registered under name with a as the receiver.
// This is a convenience wrapper around the package-level [Send].
func (a *Array[T]) Send(name string, args ...any) (any, error) {
	return Send(name, a, args...)
}

// RespondTo reports whether a method is registered under name.
func (a *Array[T]) RespondTo(name string) bool { return Responds(name) }
