package arr

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Clear truncates *items to zero length in place and returns items.
// The backing array is zeroed so dropped elements can be collected.
//
//	s := []int{1, 2, 3}
//	arr.Clear(&s)
//	len(s) // → 0
func Clear[T any](items *[]T) *[]T {
	clear(*items)
	*items = (*items)[:0]
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns the elements of items that are not nil, in order.
// Nil interfaces and nil pointers, maps, slices, channels and funcs are
// dropped; every other value, zero values included, is kept.
func Compact[T any](items []T) []T {
	return lo.Reject(items, func(item T, _ int) bool { return lo.IsNil(item) })
}

// Count returns the number of elements satisfying fn.
func Count[T any](items []T, fn func(T) bool) int {
	return lo.CountBy(items, fn)
}

// Difference returns the elements of items that appear in none of others.
// Every occurrence of an excluded value is removed; order is preserved.
//
//	Difference([]int{1, 1, 2, 3, 4}, []int{1}, []int{4}) // → [2 3]
func Difference[T comparable](items []T, others ...[]T) []T {
	return lo.Without(items, lo.Flatten(others)...)
}

// FilterMap applies fn to every element and keeps the present results.
//
//	FilterMap([]string{"1", "x", "3"}, func(s string, _ int) mo.Option[int] {
//	    n, err := strconv.Atoi(s)
//	    return mo.TupleToOption(n, err == nil)
//	}) // → [1 3]
func FilterMap[T, U any](items []T, fn func(T, int) mo.Option[U]) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		if v, ok := fn(item, i).Get(); ok {
			out = append(out, v)
		}
	}
	return out
}

// ForEachWith calls fn with every element and memo, then returns memo.
//
//	seen := ForEachWith([]string{"a", "b"}, map[string]bool{},
//	    func(s string, m map[string]bool) { m[s] = true })
func ForEachWith[T, U any](items []T, memo U, fn func(T, U)) U {
	for _, item := range items {
		fn(item, memo)
	}
	return memo
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Drop returns a copy of items without its first n elements; n past the end
// yields an empty slice. A negative n counts from the end instead and keeps
// the last -n elements:
//
//	Drop([]int{1, 2, 3, 4, 5}, 2)  // → [3 4 5]
//	Drop([]int{1, 2, 3, 4, 5}, -2) // → [4 5]
func Drop[T any](items []T, n int) []T {
	if n < 0 {
		return slices.Clone(items[max(len(items)+n, 0):])
	}
	return slices.Clone(items[min(n, len(items)):])
}

// DropWhile skips elements while fn returns true and returns a copy of the
// remainder, starting at the first element for which fn returns false.
//
//	DropWhile([]int{1, 2, 3, 1, 2, 3}, func(n int) bool { return n < 3 })
//	// → [3 1 2 3]
func DropWhile[T any](items []T, fn func(T) bool) []T {
	return slices.Clone(items[prefixLen(items, fn):])
}

// Take returns a copy of the first n elements of items.
// A negative n returns [ErrNegativeSize]; n past the end copies everything.
func Take[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: take %d", ErrNegativeSize, n)
	}
	return slices.Clone(items[:min(n, len(items))]), nil
}

// TakeWhile returns a copy of the leading elements for which fn returns true.
//
//	TakeWhile([]int{1, 2, 3, 1, 2, 3}, func(n int) bool { return n < 3 })
//	// → [1 2]
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	return slices.Clone(items[:prefixLen(items, fn)])
}

// prefixLen returns the length of the longest prefix whose elements all
// satisfy fn.
func prefixLen[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if !fn(item) {
			return i
		}
	}
	return len(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & lookup
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits items into two slices: those satisfying fn and those that
// do not. Both keep the relative order of items.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Assoc returns the first tuple whose first element equals key.
// Empty tuples never match.
//
//	Assoc([][]any{{1, "a"}, {2, "b", "c"}}, any(2)) // → Some([2 b c])
//
// With T = any, comparing a key against an element whose dynamic type is not
// comparable panics, as == does.
func Assoc[T comparable](tuples [][]T, key T) mo.Option[[]T] {
	for _, tuple := range tuples {
		if len(tuple) > 0 && tuple[0] == key {
			return mo.Some(tuple)
		}
	}
	return mo.None[[]T]()
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Number is satisfied by every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of items, or 0 when items is empty.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// MinMax returns the smallest and largest elements of items.
// Returns zero values and false if items is empty.
func MinMax[T constraints.Ordered](items []T) (T, T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, zero, false
	}
	least, most := items[0], items[0]
	for _, item := range items[1:] {
		if item < least {
			least = item
		}
		if item > most {
			most = item
		}
	}
	return least, most, true
}
