package pgcodec

import "fmt"

// SyntaxError reports a violation of one of the literal grammars (array,
// record, hstore, bytea). Msg names the violated rule; Literal carries the
// offending input, possibly truncated, for logging.
type SyntaxError struct {
	Type    string // "array", "record", "hstore", "bytea"
	Msg     string
	Literal string
}

func (e *SyntaxError) Error() string {
	if e.Literal == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s %q", e.Msg, e.Type, truncateLiteral(e.Literal))
}

// DecodeError reports field text that is malformed for its type, e.g.
// non-numeric text in an int4 column.
type DecodeError struct {
	Code TypeCode
	Text string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q as %s", truncateLiteral(e.Text), e.Code)
}

// RangeError reports a numeric literal outside the representable range of
// its target type.
type RangeError struct {
	Code TypeCode
	Text string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%q out of range for %s", truncateLiteral(e.Text), e.Code)
}

// DepthError reports an array literal nested deeper than MaxArrayDepth.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return "Array is too deeply nested"
}

// EncodingError reports bytes that cannot be decoded under the configured
// connection encoding in a context where falling back to raw bytes is not
// possible.
type EncodingError struct {
	Encoding string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid byte sequence for encoding %s", e.Encoding)
}

// ColumnError wraps a field decode failure with the position and OID of the
// originating column. The underlying error is available via Unwrap, so
// errors raised by caller-supplied callbacks remain visible unchanged.
type ColumnError struct {
	Column int
	Name   string
	OID    uint32
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("cannot decode column %d (%s, oid %d): %v", e.Column, e.Name, e.OID, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

func truncateLiteral(s string) string {
	if len(s) > 64 {
		return s[:64] + "..."
	}
	return s
}
