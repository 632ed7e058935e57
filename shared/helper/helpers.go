package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned when a type-erased value does not hold the requested type.
var ErrUnexpectedType = errors.New("unexpected type")

// TypedValueOf safely asserts a type-erased value to the expected type T.
// Returns an error wrapping ErrUnexpectedType if type assertion fails.
func TypedValueOf[T any](raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, zero, raw)
	}
	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when a mismatch can only be a programming error.
func MustTypedValue[T any](raw any) T {
	res, err := TypedValueOf[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}
