package arr

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Tuple fingerprints
//
// Result sets are [][]T, and []T is not comparable, so tuples cannot be map
// keys directly. A TupleHasher reduces a tuple to a fixed-size BLAKE2b
// fingerprint that can be used to deduplicate or compare result sets.
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTupleDigestSize is the default fingerprint length in bytes.
	DefaultTupleDigestSize = 32

	maxDigestSize = blake2b.Size
)

// TupleHashOptions configures a [TupleHasher].
type TupleHashOptions struct {
	// Size is the fingerprint length in bytes, in [1, 64].
	// Default: [DefaultTupleDigestSize].
	Size int
}

// DefaultTupleHashOptions returns TupleHashOptions with the default size.
func DefaultTupleHashOptions() TupleHashOptions {
	return TupleHashOptions{Size: DefaultTupleDigestSize}
}

func (o TupleHashOptions) validate() error {
	if o.Size < 1 || o.Size > maxDigestSize {
		return fmt.Errorf("%w: got %d", ErrInvalidDigestSize, o.Size)
	}
	return nil
}

// TupleHasher fingerprints tuples of T. Two tuples share a fingerprint when
// they have the same length and their elements have the same dynamic type
// and Go-syntax representation position by position.
//
// A TupleHasher is immutable and safe for concurrent use.
type TupleHasher[T any] struct {
	size int
}

// NewTupleHasher validates opts and returns a TupleHasher.
func NewTupleHasher[T any](opts TupleHashOptions) (*TupleHasher[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &TupleHasher[T]{size: opts.Size}, nil
}

func defaultTupleHasher[T any]() *TupleHasher[T] {
	return &TupleHasher[T]{size: DefaultTupleDigestSize}
}

// Key returns the hex-encoded fingerprint of tuple.
func (h *TupleHasher[T]) Key(tuple []T) string {
	d, err := blake2b.New(h.size, nil)
	if err != nil {
		// Options were validated in NewTupleHasher.
		panic(err)
	}
	writeLen(d, len(tuple))
	for _, v := range tuple {
		enc := fmt.Sprintf("%T:%#v", v, v)
		writeLen(d, len(enc))
		_, _ = io.WriteString(d, enc)
	}
	return hex.EncodeToString(d.Sum(nil))
}

// Uniq returns tuples with duplicates removed, keeping first occurrences in
// order.
func (h *TupleHasher[T]) Uniq(tuples [][]T) [][]T {
	seen := make(map[string]struct{}, len(tuples))
	out := make([][]T, 0, len(tuples))
	for _, tuple := range tuples {
		k := h.Key(tuple)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, tuple)
	}
	return out
}

// Same reports whether a and b hold the same tuples with the same
// multiplicities, ignoring order.
func (h *TupleHasher[T]) Same(a, b [][]T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, tuple := range a {
		counts[h.Key(tuple)]++
	}
	for _, tuple := range b {
		k := h.Key(tuple)
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

// UniqTuples is [TupleHasher.Uniq] with default options.
//
//	UniqTuples([][]int{{1, 2}, {2, 1}, {1, 2}}) // → [[1 2] [2 1]]
func UniqTuples[T any](tuples [][]T) [][]T {
	return defaultTupleHasher[T]().Uniq(tuples)
}

// SameTuples is [TupleHasher.Same] with default options.
func SameTuples[T any](a, b [][]T) bool {
	return defaultTupleHasher[T]().Same(a, b)
}

func writeLen(d hash.Hash, n int) {
	var buf [binary.MaxVarintLen64]byte
	_, _ = d.Write(buf[:binary.PutUvarint(buf[:], uint64(n))])
}
