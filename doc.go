// Package pgcodec converts PostgreSQL text-format field values into Go
// values.
//
// It implements the value codec layer of a PostgreSQL client: the
// recursive-descent parsers for the array, composite (record), and hstore
// literal grammars, the scalar decoders for the numeric, boolean, and money
// types, bytea unescaping, and the OID-keyed dispatch that picks a decoder
// for each result column. It performs no I/O; the transport layer hands it
// raw field bytes plus per-column metadata (type OID and format code) and
// receives fully decoded rows back.
//
// Decoding behavior that PostgreSQL clients traditionally make configurable
// (decimal type, money decimal point, bytea escaping, JSON decoding, a
// fallback cast hook for unknown OIDs, and the connection character
// encoding) is carried by a Config. A Config may be shared across
// goroutines; decode calls operate on an immutable snapshot so concurrent
// setter calls never tear an in-flight decode.
//
// Decoded values use a small closed vocabulary: SQL NULL is nil, integers
// are int32 or int64, floats are float64, numeric values are whatever the
// configured DecimalFunc returns (github.com/shopspring/decimal by
// default), text is string (or []byte if the connection encoding cannot
// decode it), bytea is []byte, arrays are []any, composites are Record, and
// hstore values are Hstore.
//
// The grammar parsers are also usable standalone, without any result set,
// for casting literal strings obtained elsewhere:
//
//	v, err := pgcodec.ParseArray(`{"x","y",NULL}`, pgcodec.Text, 0, nil)
//	// v = []any{"x", "y", nil}
package pgcodec
