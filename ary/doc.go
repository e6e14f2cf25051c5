// Package ary provides Array, a generic method-style wrapper over the arr
// helpers, plus a process-wide registry for methods defined at runtime.
//
// # Overview
//
// Ruby attaches combination, permutation and friends directly to Array. Go
// cannot add methods to built-in slices, so this package wraps a slice
// instead:
//
//	a := ary.Of(1, 2, 3, 4)
//	a.Combination(2)            // → [[1 2] [1 3] [1 4] [2 3] [2 4] [3 4]]
//	a.Product([]int{10, 20})    // → [[1 10] [1 20] [2 10] …]
//	head, err := a.Take(2)      // → [1 2], nil
//
// The free functions in package arr remain the primary API; Array adds
// nothing but call syntax.
//
// # Runtime methods
//
// Methods can also be defined at runtime and called by name, the way a Ruby
// program reopens Array:
//
//	ary.DefineFor("second", func(a *ary.Array[string], _ ...any) (any, error) {
//	    if a.Len() < 2 {
//	        return nil, errors.New("too short")
//	    }
//	    return a.All()[1], nil
//	})
//
//	v, _ := ary.Of("x", "y").Send("second") // "y"
//
// Definitions are opt-in and process-wide. Register them once during
// start-up; [Send] with an unknown name returns [ErrUndefinedMethod].
package ary
