package common

import (
	"math"
	"reflect"
)

// Alignment is the XDR unit size; every encoded item occupies a multiple of it.
const Alignment = 4

// Padding returns the number of zero bytes needed after n payload bytes to
// reach the next 4-byte boundary. It is always in [0, 3].
func Padding(n int) int {
	return (Alignment - n%Alignment) % Alignment
}

// Padded returns n rounded up to the next multiple of Alignment.
func Padded(n int) int {
	return n + Padding(n)
}

// IsIntegerKind reports whether k is a signed or unsigned integer kind.
func IsIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsByteKind reports whether v is a slice or array of uint8, named types included.
func IsByteKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}

// AsBytes returns the byte content of x. Slices are returned as-is, arrays are
// copied. ok is false if x is not a byte sequence.
func AsBytes(x any) (b []byte, ok bool) {
	if x == nil {
		return nil, false
	}
	if b, ok := x.([]byte); ok {
		return b, true
	}
	v := reflect.ValueOf(x)
	if !IsByteKind(v) {
		return nil, false
	}
	if v.Kind() == reflect.Slice {
		return v.Bytes(), true
	}
	// arrays held in an interface are not addressable; element type may be named
	out := make([]byte, v.Len())
	for i := range out {
		out[i] = byte(v.Index(i).Uint())
	}
	return out, true
}

// AsLength returns x as a non-negative int. ok is false if x is not an
// integer or does not fit in [0, math.MaxInt].
func AsLength(x any) (n int, ok bool) {
	if x == nil {
		return 0, false
	}
	if n, ok := x.(int); ok {
		return n, n >= 0
	}
	v := reflect.ValueOf(x)
	if !IsIntegerKind(v.Kind()) {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	default:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	}
}

// AllZero reports whether every byte of b is zero.
func AllZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
