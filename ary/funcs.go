package ary

// This file contains package-level generic functions for operations that
// cannot be methods on Array[T]: they change the element type or require
// comparable elements.

import (
	"github.com/samber/mo"

	"github.com/hasbyte1/go-ruby-utils/arr"
)

// FilterMap applies fn to every element of s and collects the present
// results into a new Array[U].
func FilterMap[T, U any](s Sequence[T], fn func(T, int) mo.Option[U]) *Array[U] {
	return wrap(arr.FilterMap(s.All(), fn))
}

// ForEachWith calls fn with every element of s and memo, then returns memo.
func ForEachWith[T, U any](s Sequence[T], memo U, fn func(T, U)) U {
	s.Each(func(item T, _ int) { fn(item, memo) })
	return memo
}

// Difference returns a new Array with the elements of s found in none of
// others.
func Difference[T comparable](s Sequence[T], others ...Sequence[T]) *Array[T] {
	excluded := make([][]T, len(others))
	for i, o := range others {
		excluded[i] = o.All()
	}
	return wrap(arr.Difference(s.All(), excluded...))
}

// Assoc returns the first tuple of s whose first element equals key.
func Assoc[T comparable](s Sequence[[]T], key T) mo.Option[[]T] {
	return arr.Assoc(s.All(), key)
}

// Product2 is the typed cartesian product of two sequences.
// See [arr.Product2].
func Product2[A, B any](as Sequence[A], bs Sequence[B]) *Array[arr.Tuple2[A, B]] {
	return wrap(arr.Product2(as.All(), bs.All()))
}
