package parser

import (
	"fmt"
)

// CreateRangeValidator creates a validation function for numeric types with
// min/max constraints. Nil bounds are unconstrained; both bounds are
// inclusive.
func CreateRangeValidator[T interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && v < *min {
			return fmt.Errorf("value %v is less than minimum %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}

// CreateOpenRangeValidator is like CreateRangeValidator but treats the lower
// bound as exclusive. It exists for domains of the form (lo, hi].
func CreateOpenRangeValidator[T ~float32 | ~float64](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && !(v > *min) {
			return fmt.Errorf("value %v must be greater than %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}

// Ptr returns a pointer to v. Handy for literal validator bounds.
func Ptr[T any](v T) *T {
	return &v
}
