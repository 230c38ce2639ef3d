// Package zerokit helps with defaulting zero values.
package zerokit

// Coalesce returns the first non-zero value, or the zero value when all of them are zero.
func Coalesce[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}
