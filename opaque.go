package xdr

import "fmt"

// FixedOpaque is a byte sequence together with its declared length. Length is
// the logical size before any wire padding.
type FixedOpaque struct {
	Opaque []byte
	Length int
}

// New returns a FixedOpaque for opaque with the given declared length.
// It does not validate; Encode does.
func New(opaque []byte, length int) FixedOpaque {
	return FixedOpaque{Opaque: opaque, Length: length}
}

// String implements fmt.Stringer.
func (v FixedOpaque) String() string {
	return fmt.Sprintf("FixedOpaque(%d)%x", v.Length, v.Opaque)
}

var defaultCodec = &Codec{}

// Encode returns the wire form of v: the opaque bytes followed by zero padding
// to the next 4-byte boundary.
func Encode(v FixedOpaque) ([]byte, error) {
	return defaultCodec.Encode(v)
}

// MustEncode is like Encode but panics on error.
func MustEncode(v FixedOpaque) []byte {
	out, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Append appends the wire form of v to dst. On error dst is returned unchanged.
func Append(dst []byte, v FixedOpaque) ([]byte, error) {
	return defaultCodec.Append(dst, v)
}

// Decode reads a fixed-length opaque of the declared length from the start of
// data and returns it with the unconsumed remainder. Padding bytes are skipped
// without inspection.
func Decode(data []byte, length int) (FixedOpaque, []byte, error) {
	return defaultCodec.Decode(data, length)
}

// MustDecode is like Decode but panics on error.
func MustDecode(data []byte, length int) (FixedOpaque, []byte) {
	v, rest, err := Decode(data, length)
	if err != nil {
		panic(err)
	}
	return v, rest
}

// EncodeValue is Encode for untyped inputs. opaque must be a slice or array of
// uint8 and length any integer kind.
func EncodeValue(opaque, length any) ([]byte, error) {
	return defaultCodec.EncodeValue(opaque, length)
}

// DecodeValue is Decode for untyped inputs.
func DecodeValue(data, length any) (FixedOpaque, []byte, error) {
	return defaultCodec.DecodeValue(data, length)
}
