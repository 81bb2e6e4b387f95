package helper

import (
	"github.com/cespare/xxhash/v2"
)

// GetTypedValueOf2 asserts the result of a getter function to the expected type T.
// ok is false if the getter reports absence or the value has another type.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// IndexOf maps key onto one of n partitions.
// Panics if n is 0.
func IndexOf(key string, n int) int {
	switch n {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(key) % uint64(n))
	}
}
