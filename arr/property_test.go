package arr_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-ruby-utils/arr"
)

// seq returns [0, 1, …, n-1], so element values double as source indices.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func properties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestGeneratorProperties(t *testing.T) {
	props := properties()
	sizes := gen.IntRange(0, 6)
	ns := gen.IntRange(-2, 7)

	props.Property("combinations are C(len, n) increasing tuples", prop.ForAll(
		func(size, n int) bool {
			got := arr.Combination(seq(size), n)
			if len(got) != arr.CombinationCount(size, n) {
				return false
			}
			for _, tuple := range got {
				if len(tuple) != n {
					return false
				}
				for k := 1; k < len(tuple); k++ {
					if tuple[k-1] >= tuple[k] {
						return false
					}
				}
			}
			return arr.SameTuples(got, arr.UniqTuples(got))
		},
		sizes, ns,
	))

	props.Property("permutations are P(len, n) tuples of distinct positions", prop.ForAll(
		func(size, n int) bool {
			got := arr.Permutation(seq(size), n)
			if len(got) != arr.PermutationCount(size, n) {
				return false
			}
			for _, tuple := range got {
				seen := make(map[int]bool, len(tuple))
				for _, v := range tuple {
					if seen[v] || v < 0 || v >= size {
						return false
					}
					seen[v] = true
				}
			}
			return len(arr.UniqTuples(got)) == len(got)
		},
		sizes, ns,
	))

	props.Property("repeated combinations are C(len+n-1, n) non-decreasing tuples", prop.ForAll(
		func(size, n int) bool {
			got := arr.RepeatedCombination(seq(size), n)
			if len(got) != arr.RepeatedCombinationCount(size, n) {
				return false
			}
			for _, tuple := range got {
				for k := 1; k < len(tuple); k++ {
					if tuple[k-1] > tuple[k] {
						return false
					}
				}
			}
			return len(arr.UniqTuples(got)) == len(got)
		},
		sizes, gen.IntRange(-1, 4),
	))

	props.Property("repeated permutations are len^n distinct tuples", prop.ForAll(
		func(size, n int) bool {
			got := arr.RepeatedPermutation(seq(size), n)
			if n < 0 {
				return len(got) == 0
			}
			want := int(math.Pow(float64(size), float64(n)))
			return len(got) == want && len(arr.UniqTuples(got)) == want
		},
		gen.IntRange(0, 4), gen.IntRange(-1, 4),
	))

	props.Property("product size is the product of lengths", prop.ForAll(
		func(a, b, c int) bool {
			got := arr.Product(seq(a), seq(b), seq(c))
			if len(got) != arr.ProductCount(a, b, c) {
				return false
			}
			for _, tuple := range got {
				if len(tuple) != 3 || tuple[0] >= a || tuple[1] >= b || tuple[2] >= c {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 4), gen.IntRange(0, 4), gen.IntRange(0, 4),
	))

	props.Property("inputs are never mutated", prop.ForAll(
		func(size, n int) bool {
			items := seq(size)
			arr.Combination(items, n)
			arr.Permutation(items, n)
			arr.RepeatedCombination(items, min(n, 3))
			arr.RepeatedPermutation(items, min(n, 3))
			return assert.ObjectsAreEqual(seq(size), items)
		},
		sizes, ns,
	))

	props.TestingRun(t)
}

func TestHelperProperties(t *testing.T) {
	props := properties()

	props.Property("compact is idempotent", prop.ForAll(
		func(xs []int) bool {
			items := make([]*int, len(xs))
			for i := range xs {
				if xs[i]%2 == 0 {
					items[i] = &xs[i]
				}
			}
			once := arr.Compact(items)
			return assert.ObjectsAreEqual(once, arr.Compact(once))
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	props.Property("partition halves rebuild the input", prop.ForAll(
		func(xs []int) bool {
			pass, fail := arr.Partition(xs, func(n int) bool { return n%3 == 0 })
			return len(pass)+len(fail) == len(xs) &&
				len(pass) == arr.Count(xs, func(n int) bool { return n%3 == 0 })
		},
		gen.SliceOf(gen.Int()),
	))

	props.Property("take-while and drop-while split the input", prop.ForAll(
		func(xs []int) bool {
			small := func(n int) bool { return n < 5 }
			head, tail := arr.TakeWhile(xs, small), arr.DropWhile(xs, small)
			return assert.ObjectsAreEqual(xs, append(head, tail...)) ||
				(len(xs) == 0 && len(head) == 0 && len(tail) == 0)
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	props.TestingRun(t)
}
