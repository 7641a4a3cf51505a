package helper

import (
	"fmt"
)

// GetTypedValueOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, zero, res)
	}

	return val, nil
}

// GetTypedValueOf2 is the comma-ok variant of GetTypedValueOf.
// ok is false when the getter misses or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

var ErrUnexpectedType = fmt.Errorf("unexpected type")
