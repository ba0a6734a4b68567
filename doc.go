/*
Package xdr implements the XDR fixed-length opaque type (RFC 4506, section 4.9).

A fixed-length opaque is a byte blob whose length comes from the schema, not
from the wire. On the wire it is the raw bytes followed by zero padding up to
the next multiple of 4. The package is a leaf primitive: composite codecs call
it with the declared length of each field and chain the returned remainder.

# Encode

	out, err := xdr.Encode(xdr.New([]byte{1, 2, 3}, 3))
	// out == []byte{1, 2, 3, 0}

To build one buffer for several fields:

	buf, err := xdr.Append(buf, field)

# Decode

	v, rest, err := xdr.Decode(data, 3)
	// continue with the next field: rest

Decoded slices alias data. Padding bytes are skipped without inspection;
use a Codec with Options.StrictPadding to reject non-zero padding.

# Dynamic values

EncodeValue and DecodeValue accept untyped values, for reflection-driven
callers. Any slice or array of uint8 is a byte sequence and any integer kind
is a length.

All functions are pure and safe for concurrent use.
*/
package xdr
