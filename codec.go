package xdr

import (
	"fmt"

	"github.com/rawbytedev/xdr/internal/common"
)

// Options controls decode strictness. The zero value matches RFC 4506 readers
// that ignore padding content.
type Options struct {
	StrictPadding bool // reject non-zero padding bytes on decode
}

// Codec encodes and decodes fixed-length opaque values. It holds no mutable
// state and may be shared between goroutines.
type Codec struct {
	Opts Options
}

// NewCodec returns a Codec using opts.
func NewCodec(opts Options) *Codec {
	return &Codec{Opts: opts}
}

// Encode returns a newly allocated wire form of v.
func (c *Codec) Encode(v FixedOpaque) ([]byte, error) {
	if err := checkEncode(v); err != nil {
		return nil, err
	}
	return appendOpaque(make([]byte, 0, common.Padded(v.Length)), v), nil
}

// Append appends the wire form of v to dst.
func (c *Codec) Append(dst []byte, v FixedOpaque) ([]byte, error) {
	if err := checkEncode(v); err != nil {
		return dst, err
	}
	return appendOpaque(dst, v), nil
}

func appendOpaque(dst []byte, v FixedOpaque) []byte {
	var zero [common.Alignment]byte
	dst = append(dst, v.Opaque...)
	return append(dst, zero[:common.Padding(v.Length)]...)
}

func checkEncode(v FixedOpaque) error {
	if v.Length < 0 {
		return fmt.Errorf("%w: %d", ErrNotNumber, v.Length)
	}
	if v.Length != len(v.Opaque) {
		return fmt.Errorf("%w: declared %d, have %d", ErrInvalidLength, v.Length, len(v.Opaque))
	}
	return nil
}

// Decode splits data into the opaque value, its padding and the remainder.
// The returned opaque and remainder alias data; the opaque is capacity-clipped
// so appending to it does not overwrite the bytes that follow.
func (c *Codec) Decode(data []byte, length int) (FixedOpaque, []byte, error) {
	if len(data)%common.Alignment != 0 {
		return FixedOpaque{}, nil, fmt.Errorf("%w: %d bytes", ErrNotValidBinary, len(data))
	}
	if length < 0 {
		return FixedOpaque{}, nil, fmt.Errorf("%w: %d", ErrNotNumber, length)
	}
	if length > len(data) {
		return FixedOpaque{}, nil, fmt.Errorf("%w: declared %d, have %d", ErrExceedLength, length, len(data))
	}
	// len(data) is aligned and >= length, so the padded end is in range
	end := common.Padded(length)
	if c.Opts.StrictPadding && !common.AllZero(data[length:end]) {
		return FixedOpaque{}, nil, fmt.Errorf("%w: % x", ErrNonZeroPadding, data[length:end])
	}
	return FixedOpaque{Opaque: data[:length:length], Length: length}, data[end:], nil
}

// EncodeValue validates untyped inputs in order (byte sequence, integer,
// matching length) and encodes them.
func (c *Codec) EncodeValue(opaque, length any) ([]byte, error) {
	b, ok := common.AsBytes(opaque)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotBinary, opaque)
	}
	n, ok := common.AsLength(length)
	if !ok {
		return nil, fmt.Errorf("%w: %v (%T)", ErrNotNumber, length, length)
	}
	return c.Encode(FixedOpaque{Opaque: b, Length: n})
}

// DecodeValue validates untyped inputs in order (byte sequence, alignment,
// integer, bounds) and decodes them.
func (c *Codec) DecodeValue(data, length any) (FixedOpaque, []byte, error) {
	b, ok := common.AsBytes(data)
	if !ok {
		return FixedOpaque{}, nil, fmt.Errorf("%w: %T", ErrNotBinary, data)
	}
	if len(b)%common.Alignment != 0 {
		return FixedOpaque{}, nil, fmt.Errorf("%w: %d bytes", ErrNotValidBinary, len(b))
	}
	n, ok := common.AsLength(length)
	if !ok {
		return FixedOpaque{}, nil, fmt.Errorf("%w: %v (%T)", ErrNotNumber, length, length)
	}
	return c.Decode(b, n)
}
