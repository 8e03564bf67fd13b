package pgcodec

import "strings"

// Record is a decoded composite value. It is a distinct type so callers can
// tell a tuple from an array after decoding.
type Record []any

// ParseRecord parses a composite literal in record_out syntax. When codes
// is non-nil it fixes the arity and supplies the decoder per field
// position, with array-flagged codes recursing into the array parser; a nil
// codes leaves every field as text and accepts any arity. Empty fields
// (nothing between two delimiters) are nil. delim overrides the field
// delimiter (0 means comma); '(', ')', and '\' are rejected. cfg may be nil
// for the defaults.
func ParseRecord(src string, codes []TypeCode, delim byte, cfg *Config) (Record, error) {
	snap := cfg.snapshot()
	if len(codes) == 0 {
		return parseRecord(src, nil, delim, 0, snap)
	}
	return parseRecord(src, func(text string, i int) (any, error) {
		code := codes[i]
		if code.IsArray() {
			return parseArray(text, code, nil, 0, snap)
		}
		if code.textBased() {
			return decodeTextBased([]byte(text), code, snap)
		}
		return decodeScalar(text, code, snap)
	}, delim, len(codes), snap)
}

// ParseRecordFunc is ParseRecord with cast applied to every non-null field.
// Arity is not enforced. A nil cast leaves fields as text.
func ParseRecordFunc(src string, cast CastFunc, delim byte, cfg *Config) (Record, error) {
	snap := cfg.snapshot()
	if cast == nil {
		return parseRecord(src, nil, delim, 0, snap)
	}
	return parseRecord(src, func(text string, i int) (any, error) {
		return cast(text)
	}, delim, 0, snap)
}

// ParseRecordCasts is ParseRecord with one cast per field position; the
// arity is fixed to len(casts). A nil entry leaves that field as text.
func ParseRecordCasts(src string, casts []CastFunc, delim byte, cfg *Config) (Record, error) {
	snap := cfg.snapshot()
	if len(casts) == 0 {
		return parseRecord(src, nil, delim, 0, snap)
	}
	return parseRecord(src, func(text string, i int) (any, error) {
		if casts[i] == nil {
			return decodeText([]byte(text), snap), nil
		}
		return casts[i](text)
	}, delim, len(casts), snap)
}

func parseRecord(src string, decode func(text string, i int) (any, error), delim byte, arity int, snap config) (Record, error) {
	if delim == 0 {
		delim = ','
	} else if delim == '(' || delim == ')' || delim == '\\' {
		return nil, &SyntaxError{Type: "record", Msg: "Invalid record delimiter"}
	}

	s, end := 0, len(src)
	for s < end && src[s] == ' ' {
		s++
	}
	if s >= end || src[s] != '(' {
		return nil, &SyntaxError{Type: "record", Msg: "Record must start with a left parenthesis", Literal: src}
	}

	result := Record{}
	i := 0

	for {
		s++
		if s >= end {
			goto closed
		}

		var element any
		if src[s] == ')' || src[s] == delim {
			element = nil // empty field
		} else {
			// A field is a run of quoted and unquoted segments: quotes
			// toggle mid-field, a doubled "" inside a quoted segment is a
			// literal quote, and \c escapes apply in either state.
			start := s
			quoted := src[s] == '"'
			if quoted {
				s++
			}
			size := 0
			for s < end {
				if !quoted && (src[s] == ')' || src[s] == delim) {
					break
				}
				if src[s] == '"' {
					s++
					if s >= end {
						break
					}
					if !(quoted && src[s] == '"') {
						quoted = !quoted
						continue
					}
				}
				if src[s] == '\\' {
					s++
					if s >= end {
						break
					}
				}
				s++
				size++
			}
			if s >= end {
				goto closed
			}

			text := src[start:s]
			if len(text) != size {
				text = unquoteRecordField(text)
			}

			if decode != nil {
				var err error
				element, err = decode(text, i)
				if err != nil {
					return nil, err
				}
			} else {
				element = decodeText([]byte(text), snap)
			}
		}

		result = append(result, element)
		if arity > 0 {
			i++
		}
		if src[s] != delim {
			break
		}
		if arity > 0 && i >= arity {
			return nil, &SyntaxError{Type: "record", Msg: "Too many columns", Literal: src}
		}
	}

	if src[s] != ')' {
		goto closed
	}
	s++
	for s < end && src[s] == ' ' {
		s++
	}
	if s != end {
		return nil, &SyntaxError{Type: "record", Msg: "Unexpected characters after end of record", Literal: src}
	}
	if arity > 0 && i < arity {
		return nil, &SyntaxError{Type: "record", Msg: "Too few columns", Literal: src}
	}
	return result, nil

closed:
	return nil, &SyntaxError{Type: "record", Msg: "Unexpected end of record", Literal: src}
}

// unquoteRecordField strips quoting from a raw field span, resolving the
// doubled-quote and backslash escapes.
func unquoteRecordField(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	quoted := false
	for t := 0; t < len(raw); t++ {
		if raw[t] == '"' {
			t++
			if t >= len(raw) || !(quoted && raw[t] == '"') {
				quoted = !quoted
				t--
				continue
			}
		}
		if raw[t] == '\\' {
			t++
			if t >= len(raw) {
				break
			}
		}
		b.WriteByte(raw[t])
	}
	return b.String()
}
