package xdr

import "errors"

// Sentinel errors returned by the encode and decode paths. Returned errors
// wrap one of these with detail; match with errors.Is.
var (
	// ErrNotBinary is returned when the payload or input buffer is not a byte sequence.
	ErrNotBinary = errors.New("xdr: not a byte sequence")
	// ErrNotNumber is returned when the length is not a non-negative integer.
	ErrNotNumber = errors.New("xdr: length is not a non-negative integer")
	// ErrInvalidLength is returned by encode when the declared length differs from the payload size.
	ErrInvalidLength = errors.New("xdr: declared length does not match opaque size")
	// ErrNotValidBinary is returned by decode when the input size is not a multiple of 4.
	ErrNotValidBinary = errors.New("xdr: input is not 4-byte aligned")
	// ErrExceedLength is returned by decode when the declared length exceeds the input size.
	ErrExceedLength = errors.New("xdr: declared length exceeds input")
	// ErrNonZeroPadding is returned by a strict Codec when a skipped padding byte is not zero.
	ErrNonZeroPadding = errors.New("xdr: non-zero padding")
)
