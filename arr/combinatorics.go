package arr

// ─────────────────────────────────────────────────────────────────────────────
// Combinatorial generators
//
// Every generator reads items without mutating it and returns freshly
// allocated tuples, so callers may modify results freely. Out-of-range sizes
// produce an empty (non-nil) result instead of an error.
// ─────────────────────────────────────────────────────────────────────────────

// maxCapHint bounds the capacity pre-allocated for a result set.
const maxCapHint = 1 << 16

// Combination returns every n-element combination of items.
//
// Elements inside a tuple keep their relative order from items, and tuples
// are grouped by their first element in input order:
//
//	Combination([]int{1, 2, 3, 4}, 2)
//	// → [[1 2] [1 3] [1 4] [2 3] [2 4] [3 4]]
//
// n == 0 yields a single empty tuple; n < 0 or n > len(items) yields none.
func Combination[T any](items []T, n int) [][]T {
	if n < 0 || n > len(items) {
		return [][]T{}
	}
	if n == 0 {
		return [][]T{{}}
	}
	out := make([][]T, 0, capHint(CombinationCount(len(items), n)))
	for i, head := range items {
		for _, tail := range Combination(items[i+1:], n-1) {
			out = append(out, cons(head, tail))
		}
	}
	return out
}

// Permutation returns every ordered arrangement of n distinct positions of
// items.
//
//	Permutation([]int{1, 2, 3}, 2)
//	// → [[1 2] [1 3] [2 1] [2 3] [3 1] [3 2]]
//
// n == 0 yields a single empty tuple; n < 0 or n > len(items) yields none.
func Permutation[T any](items []T, n int) [][]T {
	if n < 0 || n > len(items) {
		return [][]T{}
	}
	out := make([][]T, 0, capHint(PermutationCount(len(items), n)))
	chosen := make([]int, 0, n)
	used := make([]bool, len(items))

	var build func()
	build = func() {
		if len(chosen) == n {
			tuple := make([]T, n)
			for k, idx := range chosen {
				tuple[k] = items[idx]
			}
			out = append(out, tuple)
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			used[i] = true
			chosen = append(chosen, i)
			build()
			chosen = chosen[:len(chosen)-1]
			used[i] = false
		}
	}
	build()
	return out
}

// RepeatedCombination returns every n-element combination of items in which
// the same position may be chosen more than once. Positions inside a tuple
// never decrease.
//
//	RepeatedCombination([]int{1, 2, 3}, 2)
//	// → [[1 1] [1 2] [1 3] [2 2] [2 3] [3 3]]
func RepeatedCombination[T any](items []T, n int) [][]T {
	if n < 0 {
		return [][]T{}
	}
	if n == 0 {
		return [][]T{{}}
	}
	out := make([][]T, 0, capHint(RepeatedCombinationCount(len(items), n)))
	for i, head := range items {
		for _, tail := range RepeatedCombination(items[i:], n-1) {
			out = append(out, cons(head, tail))
		}
	}
	return out
}

// RepeatedPermutation returns every length-n sequence drawn from items with
// replacement.
//
//	RepeatedPermutation([]int{1, 2}, 2)
//	// → [[1 1] [1 2] [2 1] [2 2]]
func RepeatedPermutation[T any](items []T, n int) [][]T {
	if n < 0 {
		return [][]T{}
	}
	if n == 0 {
		return [][]T{{}}
	}
	if len(items) == 0 {
		return [][]T{}
	}
	sub := RepeatedPermutation(items, n-1)
	out := make([][]T, 0, capHint(RepeatedPermutationCount(len(items), n)))
	for _, head := range items {
		for _, tail := range sub {
			out = append(out, cons(head, tail))
		}
	}
	return out
}

// Product returns the cartesian product of lists. Position k of every tuple
// holds an element of lists[k]; the first list varies slowest.
//
//	Product([]any{1, 2}, []any{"a", "b"})
//	// → [[1 a] [1 b] [2 a] [2 b]]
//
// Mixing element types requires []any inputs; use [Product2], [Product3] or
// [Product4] to keep static types. With no lists, or when any list is
// empty, the result is empty. A single list yields one singleton tuple per
// element.
func Product[T any](lists ...[]T) [][]T {
	if len(lists) == 0 {
		return [][]T{}
	}
	head, rest := lists[0], lists[1:]
	if len(rest) == 0 {
		out := make([][]T, len(head))
		for i, x := range head {
			out[i] = []T{x}
		}
		return out
	}
	sub := Product(rest...)
	out := make([][]T, 0, capHint(len(head)*len(sub)))
	for _, x := range head {
		for _, tail := range sub {
			out = append(out, cons(x, tail))
		}
	}
	return out
}

// Product2 is the statically typed cartesian product of two slices.
func Product2[A, B any](as []A, bs []B) []Tuple2[A, B] {
	out := make([]Tuple2[A, B], 0, capHint(ProductCount(len(as), len(bs))))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, Tuple2[A, B]{First: a, Second: b})
		}
	}
	return out
}

// Product3 is the statically typed cartesian product of three slices.
func Product3[A, B, C any](as []A, bs []B, cs []C) []Tuple3[A, B, C] {
	out := make([]Tuple3[A, B, C], 0, capHint(ProductCount(len(as), len(bs), len(cs))))
	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				out = append(out, Tuple3[A, B, C]{First: a, Second: b, Third: c})
			}
		}
	}
	return out
}

// Product4 is the statically typed cartesian product of four slices.
func Product4[A, B, C, D any](as []A, bs []B, cs []C, ds []D) []Tuple4[A, B, C, D] {
	out := make([]Tuple4[A, B, C, D], 0, capHint(ProductCount(len(as), len(bs), len(cs), len(ds))))
	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				for _, d := range ds {
					out = append(out, Tuple4[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d})
				}
			}
		}
	}
	return out
}

// cons returns a new slice holding head followed by tail.
func cons[T any](head T, tail []T) []T {
	out := make([]T, len(tail)+1)
	out[0] = head
	copy(out[1:], tail)
	return out
}

func capHint(n int) int {
	if n < 0 || n > maxCapHint {
		return maxCapHint
	}
	return n
}
