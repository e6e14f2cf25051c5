package arr_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-ruby-utils/arr"
)

// FuzzCombination checks that Combination never panics and always agrees
// with CombinationCount for arbitrary sizes.
//
// Run with: go test -fuzz=FuzzCombination ./arr/
func FuzzCombination(f *testing.F) {
	for _, seed := range [][2]int{{0, 0}, {3, 2}, {5, -1}, {4, 9}, {10, 10}} {
		f.Add(seed[0], seed[1])
	}
	f.Fuzz(func(t *testing.T, size, n int) {
		size = ((size % 12) + 12) % 12
		if n > 14 || n < -14 {
			n %= 14
		}
		got := arr.Combination(seq(size), n)
		if want := arr.CombinationCount(size, n); len(got) != want {
			t.Fatalf("Combination(%d, %d) produced %d tuples; want %d", size, n, len(got), want)
		}
	})
}

// FuzzTakeDrop checks that Take fails with ErrNegativeSize exactly when n is
// negative, that Drop never fails, and that together they split the input
// without losing elements.
func FuzzTakeDrop(f *testing.F) {
	f.Add([]byte("hello"), 2)
	f.Add([]byte{}, 0)
	f.Add([]byte("x"), -3)
	f.Add([]byte("hello"), -2)
	f.Fuzz(func(t *testing.T, data []byte, n int) {
		head, err := arr.Take(data, n)
		tail := arr.Drop(data, n)
		if n < 0 {
			if !errors.Is(err, arr.ErrNegativeSize) {
				t.Fatalf("Take(%d) error = %v; want ErrNegativeSize", n, err)
			}
			if want := min(-n, len(data)); len(tail) != want {
				t.Fatalf("Drop(%d) kept %d elements; want %d", n, len(tail), want)
			}
			return
		}
		if err != nil {
			t.Fatalf("Take(%d): unexpected error %v", n, err)
		}
		if len(head)+len(tail) != len(data) {
			t.Fatalf("Take/Drop(%d) lost elements: %d + %d != %d", n, len(head), len(tail), len(data))
		}
	})
}
