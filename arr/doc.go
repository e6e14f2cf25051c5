// Package arr provides standalone generic helpers for Go slices modelled on
// Ruby's Array: combinatorial generators plus a handful of filtering,
// slicing and partitioning functions.
//
// # Combinatorics
//
// The generators read their input without modifying it and return freshly
// allocated tuples:
//
//	arr.Combination([]int{1, 2, 3}, 2)          // → [[1 2] [1 3] [2 3]]
//	arr.Permutation([]int{1, 2, 3}, 2)          // → [[1 2] [1 3] [2 1] [2 3] [3 1] [3 2]]
//	arr.RepeatedCombination([]int{1, 2}, 2)     // → [[1 1] [1 2] [2 2]]
//	arr.RepeatedPermutation([]int{1, 2}, 2)     // → [[1 1] [1 2] [2 1] [2 2]]
//	arr.Product([]any{1, 2}, []any{"a", "b"})   // → [[1 a] [1 b] [2 a] [2 b]]
//
// A size that cannot be satisfied (negative, or larger than the input for
// the non-repeating variants) yields an empty result rather than an error.
// The *Count functions report result sizes without generating anything.
//
// Go has no variadic heterogeneous tuples, so [Product] is homogeneous.
// Mixed element types either go through []any, losing static types, or use
// the fixed-arity [Product2], [Product3] and [Product4].
//
// # Slicing and filtering
//
//	arr.Take([]int{1, 2, 3, 4, 5}, 3)     // → [1 2 3], nil
//	arr.Take([]int{1, 2, 3}, -1)          // → nil, ErrNegativeSize
//	arr.Drop([]int{1, 2, 3, 4, 5}, -2)    // → [4 5]
//	arr.Partition([]int{1, 2, 3, 4}, even) // → [2 4], [1 3]
//	arr.Assoc(pairs, "key")               // → mo.Option[[]T]
//
// # Comparing result sets
//
// Result sets are [][]T and cannot be compared with ==. [TupleHasher]
// fingerprints tuples with BLAKE2b so that [UniqTuples] and [SameTuples] can
// deduplicate and compare them as multisets.
package arr
