package ary

import "errors"

// Sentinel errors returned by Array and the method registry.
var (
	// ErrUndefinedMethod is returned by Send when no method is registered
	// under the requested name.
	ErrUndefinedMethod = errors.New("ary: undefined method")

	// ErrReceiverType is returned by methods registered with DefineFor when
	// they are sent to a receiver of a different type.
	ErrReceiverType = errors.New("ary: receiver has the wrong type")
)
