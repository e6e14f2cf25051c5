package ary

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Method is a method defined at runtime. recv is whatever [Send] was called
// with, usually an *Array[T]; args are the caller's arguments unchanged.
//
// Use [DefineFor] when the method only makes sense for one element type.
type Method func(recv any, args ...any) (any, error)

// methodTable maps method names to their definitions. The zero value is
// ready to use.
type methodTable struct {
	mu   sync.RWMutex
	defs map[string]Method
}

func (t *methodTable) lookup(name string) (Method, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.defs[name]
	return fn, ok
}

func (t *methodTable) store(name string, fn Method) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.defs == nil {
		t.defs = make(map[string]Method)
	}
	t.defs[name] = fn
}

func (t *methodTable) remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.defs, name)
}

func (t *methodTable) names() []string {
	t.mu.RLock()
	names := lo.Keys(t.defs)
	t.mu.RUnlock()
	slices.Sort(names)
	return names
}

// methods holds every runtime definition in the process.
var methods methodTable

// Define makes fn callable as name on every receiver through [Send] and
// [Array.Send]. A later Define with the same name replaces the earlier one.
// It panics if fn is nil.
func Define(name string, fn Method) {
	if fn == nil {
		panic("ary: Define " + name + " with nil method")
	}
	methods.store(name, fn)
}

// DefineFor is [Define] for methods written against *Array[T]. The receiver
// is type-checked on every call; any other receiver makes the call fail
// with [ErrReceiverType] before fn runs.
//
//	ary.DefineFor("pairs_summing_to", func(a *ary.Array[int], args ...any) (any, error) {
//	    var out [][]int
//	    for _, pair := range a.Combination(2) {
//	        if pair[0]+pair[1] == args[0].(int) {
//	            out = append(out, pair)
//	        }
//	    }
//	    return out, nil
//	})
//	ary.Of(1, 2, 3, 4).Send("pairs_summing_to", 5) // → [[1 4] [2 3]], nil
func DefineFor[T any](name string, fn func(a *Array[T], args ...any) (any, error)) {
	if fn == nil {
		panic("ary: DefineFor " + name + " with nil method")
	}
	Define(name, func(recv any, args ...any) (any, error) {
		a, ok := recv.(*Array[T])
		if !ok {
			return nil, fmt.Errorf("%w: %q wants %T, got %T", ErrReceiverType, name, a, recv)
		}
		return fn(a, args...)
	})
}

// Responds reports whether name is currently defined.
func Responds(name string) bool {
	_, ok := methods.lookup(name)
	return ok
}

// Methods returns the names of all runtime-defined methods in sorted order.
func Methods() []string { return methods.names() }

// Undefine forgets name. Undefining an unknown name is a no-op.
func Undefine(name string) { methods.remove(name) }

// Send invokes the method defined as name with recv and args. It fails with
// [ErrUndefinedMethod] if name is not defined; otherwise it returns whatever
// the method returns.
func Send(name string, recv any, args ...any) (any, error) {
	fn, ok := methods.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedMethod, name)
	}
	return fn(recv, args...)
}
