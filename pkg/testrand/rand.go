package testrand

import (
	"math"
	"math/rand/v2"
	"os"

	"golang.org/x/exp/constraints"
)

// Uniform enumerates the scalar types that support uniform sampling over
// their full representable domain. Integers and bool are sampled over every
// representable value; floats are sampled uniformly from [0, 1). The union
// lists exact types rather than underlying-type sets because each member
// carries its own sampling rule.
type Uniform interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool
}

// Real is the subset of Uniform that is ordered and range-samplable.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Value returns a uniformly distributed value of type T.
func Value[T Uniform]() T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = rand.Uint64()&1 == 1
	case *int:
		*p = int(rand.Uint64())
	case *int8:
		*p = int8(rand.Uint64())
	case *int16:
		*p = int16(rand.Uint64())
	case *int32:
		*p = int32(rand.Uint64())
	case *int64:
		*p = int64(rand.Uint64())
	case *uint:
		*p = uint(rand.Uint64())
	case *uint8:
		*p = uint8(rand.Uint64())
	case *uint16:
		*p = uint16(rand.Uint64())
	case *uint32:
		*p = uint32(rand.Uint64())
	case *uint64:
		*p = rand.Uint64()
	case *float32:
		*p = rand.Float32()
	case *float64:
		*p = rand.Float64()
	}
	return v
}

// Range returns a uniformly distributed value in the half-open interval
// [lo, hi). It panics with ErrEmptyRange when the interval holds no values,
// including NaN bounds.
func Range[T Real](lo, hi T) T {
	if !(lo < hi) {
		panic(ErrEmptyRange)
	}
	switch any(lo).(type) {
	case float32, float64:
		// Rounding in the conversion back to T can push the product up to
		// exactly hi-lo; resample so the upper bound stays excluded.
		for {
			if v := lo + T(float64(hi-lo)*rand.Float64()); v < hi {
				return v
			}
		}
	}
	// Integer spans are computed in uint64 so that signed bounds wrap
	// instead of overflowing; converting back restores the sign.
	span := uint64(hi) - uint64(lo)
	return T(uint64(lo) + rand.Uint64N(span))
}

// RangeInclusive returns a uniformly distributed value in the closed interval
// [lo, hi]. It panics with ErrEmptyRange when the interval holds no values,
// including NaN bounds.
func RangeInclusive[T Real](lo, hi T) T {
	if !(lo <= hi) {
		panic(ErrEmptyRange)
	}
	switch any(lo).(type) {
	case float32, float64:
		return lo + T(float64(hi-lo)*rand.Float64())
	}
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		// The closed span covers the whole uint64 domain and span+1 would
		// wrap to zero.
		return T(rand.Uint64())
	}
	return T(uint64(lo) + rand.Uint64N(span+1))
}

// Bytes returns a slice of length independent, uniformly distributed bytes.
// A zero length yields an empty slice.
func Bytes[I constraints.Integer](length I) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rand.UintN(256))
	}
	return b
}

// Alphanumeric returns a string of exactly length characters, each drawn
// independently from the 62-symbol set A-Z, a-z, 0-9. A zero length yields
// an empty string.
func Alphanumeric[I constraints.Integer](length I) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// Filename returns an alphanumeric string of the given length that does not
// name an existing entry in the current working directory, resampling on
// collision. With length >= 8 a collision is negligibly likely, so the
// uncapped retry loop terminates in O(1) expected iterations.
//
// The name is checked but never created or reserved: a race exists between
// the existence check here and any later use of the name, so callers should
// use it promptly. Filename panics with ErrZeroLengthName when length <= 0.
func Filename[I constraints.Integer](length I) string {
	if length <= 0 {
		panic(ErrZeroLengthName)
	}
	for {
		name := Alphanumeric(length)
		if _, err := os.Stat(name); err != nil {
			return name
		}
	}
}
