package pgcodec

import "strings"

// MaxArrayDepth bounds array literal nesting. The limit is enforced with an
// explicit counter before any recursion into the content, so adversarial
// input cannot grow the stack.
const MaxArrayDepth = 16

// ParseArray parses an array literal in array_out syntax into a nested
// []any. Non-null elements are decoded as the base of code; a zero code, or
// a config with arrays-as-text set, leaves elements as text. NULL elements
// (unquoted, any case) become nil. delim overrides the element delimiter
// for the few types that do not use a comma (0 means comma); '{', '}', and
// '\' are rejected. cfg may be nil for the defaults.
func ParseArray(src string, code TypeCode, delim byte, cfg *Config) ([]any, error) {
	return parseArray(src, code, nil, delim, cfg.snapshot())
}

// ParseArrayFunc is ParseArray with cast applied to each non-null element
// instead of a built-in decoder. A nil cast leaves elements as text. Errors
// returned by cast propagate unchanged.
func ParseArrayFunc(src string, cast CastFunc, delim byte, cfg *Config) ([]any, error) {
	return parseArray(src, 0, cast, delim, cfg.snapshot())
}

func parseArray(src string, code TypeCode, cast CastFunc, delim byte, snap config) ([]any, error) {
	code = code.Base()
	if snap.arrayAsText {
		code = Text
	}

	if delim == 0 {
		delim = ','
	} else if delim == '{' || delim == '}' || delim == '\\' {
		return nil, &SyntaxError{Type: "array", Msg: "Invalid array delimiter"}
	}

	s, end := 0, len(src)
	for s < end && src[s] == ' ' {
		s++
	}

	// Optional dimension-bounds prefix "[lo:hi]...=". Only the count of
	// bracket pairs is kept; the declared bounds are checked syntactically
	// and dropped, since the decoded value is plain nested slices.
	ranges := 0
	if s < end && src[s] == '[' {
		valid := false
		for !valid {
			if s >= end || src[s] != '[' {
				break
			}
			s++
			for s < end && src[s] == ' ' {
				s++
			}
			var ok bool
			if s, ok = scanArrayBound(src, s); !ok {
				break
			}
			if s >= end || src[s] != ':' {
				break
			}
			s++
			if s, ok = scanArrayBound(src, s); !ok {
				break
			}
			if s >= end || src[s] != ']' {
				break
			}
			s++
			for s < end && src[s] == ' ' {
				s++
			}
			ranges++
			if s < end && src[s] == '=' {
				s++
				for s < end && src[s] == ' ' {
					s++
				}
				valid = true
			}
		}
		if !valid {
			return nil, &SyntaxError{Type: "array", Msg: "Invalid array dimensions", Literal: src}
		}
	}

	// The run of opening braces fixes the nesting depth up front.
	depth := 0
	for t := s; t < end && (src[t] == '{' || src[t] == ' '); t++ {
		if src[t] == '{' {
			depth++
		}
	}
	if depth == 0 {
		return nil, &SyntaxError{Type: "array", Msg: "Array must start with a left brace", Literal: src}
	}
	if ranges > 0 && depth != ranges {
		return nil, &SyntaxError{Type: "array", Msg: "Array dimensions do not match content", Literal: src}
	}
	if depth > MaxArrayDepth {
		return nil, &DepthError{Depth: depth}
	}
	depth-- // elements live at the innermost level

	result := []any{}
	stack := make([][]any, 0, depth)
	level := 0

	s++ // consume the first '{'
	for s < end && src[s] == ' ' {
		s++
	}

	for s < end {
		switch {
		case src[s] == '}':
			if level == 0 {
				goto closed // top level array ended
			}
			s++
			for s < end && src[s] == ' ' {
				s++
			}
			if s >= end {
				goto closed
			}
			if src[s] == delim {
				s++
				for s < end && src[s] == ' ' {
					s++
				}
				if s >= end {
					goto closed
				}
				if src[s] != '{' {
					return nil, &SyntaxError{Type: "array", Msg: "Subarray expected but not found", Literal: src}
				}
			} else if src[s] != '}' {
				goto closed
			}
			sub := result
			level--
			result = append(stack[level], sub)
			stack = stack[:level]

		case level == depth: // elements expected here
			if src[s] == '{' {
				return nil, &SyntaxError{Type: "array", Msg: "Subarray found where not expected", Literal: src}
			}

			var raw string
			var escaped, isNull bool
			if src[s] == '"' {
				s++
				start := s
				for s < end && src[s] != '"' {
					if src[s] == '\\' {
						s++
						if s >= end {
							break
						}
						escaped = true
					}
					s++
				}
				raw = src[start:s]
				if s >= end {
					goto closed // unterminated quote
				}
				s++ // closing quote
				for s < end && src[s] == ' ' {
					s++
				}
			} else {
				start := s
				for s < end && src[s] != '"' && src[s] != '{' && src[s] != '}' && src[s] != delim {
					if src[s] == '\\' {
						s++
						if s >= end {
							break
						}
						escaped = true
					}
					s++
				}
				t := s
				for t > start && src[t-1] == ' ' {
					t--
				}
				raw = src[start:t]
				if raw == "" {
					goto closed // empty unquoted element
				}
				// The check runs on the raw span, so an escaped spelling
				// like \NULL stays a string.
				isNull = strings.EqualFold(raw, "NULL")
			}
			if s >= end {
				goto closed
			}

			var element any
			if !isNull {
				text := raw
				if escaped {
					text = unescapeBackslashes(raw)
				}
				var err error
				element, err = decodeArrayElement(text, code, cast, snap)
				if err != nil {
					return nil, err
				}
			}
			result = append(result, element)

			if src[s] == delim {
				s++
				for s < end && src[s] == ' ' {
					s++
				}
				if s >= end {
					goto closed
				}
			} else if src[s] != '}' {
				goto closed
			}

		default: // subarrays expected here
			if src[s] != '{' {
				return nil, &SyntaxError{Type: "array", Msg: "Subarray must start with a left brace", Literal: src}
			}
			s++
			for s < end && src[s] == ' ' {
				s++
			}
			stack = append(stack, result)
			level++
			result = []any{}
		}
	}

closed:
	if s >= end || src[s] != '}' {
		return nil, &SyntaxError{Type: "array", Msg: "Unexpected end of array", Literal: src}
	}
	s++
	for s < end && src[s] == ' ' {
		s++
	}
	if s != end {
		return nil, &SyntaxError{Type: "array", Msg: "Unexpected characters after end of array", Literal: src}
	}
	return result, nil
}

// scanArrayBound consumes an optionally signed integer and reports whether
// at least one digit was present.
func scanArrayBound(src string, s int) (int, bool) {
	end := len(src)
	if s < end && (src[s] == '+' || src[s] == '-') {
		s++
	}
	start := s
	for s < end && src[s] >= '0' && src[s] <= '9' {
		s++
	}
	return s, s > start
}

func decodeArrayElement(text string, code TypeCode, cast CastFunc, snap config) (any, error) {
	if cast != nil {
		return cast(text)
	}
	if code == 0 || code.textBased() {
		return decodeTextBased([]byte(text), code.Base(), snap)
	}
	return decodeScalar(text, code, snap)
}

// unescapeBackslashes resolves \c escapes to c. Quotes are already gone.
func unescapeBackslashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
