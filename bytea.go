package pgcodec

import "encoding/hex"

// unescapeBytea reverses the two output formats of byteaout: the hex format
// ("\x48656c6c6f", the server default since 9.0) and the legacy escape
// format with backslash-octal sequences and doubled backslashes. Mirrors
// libpq's PQunescapeBytea.
func unescapeBytea(src []byte) ([]byte, error) {
	if len(src) >= 2 && src[0] == '\\' && src[1] == 'x' {
		return unescapeByteaHex(src[2:])
	}
	return unescapeByteaEscape(src)
}

func unescapeByteaHex(src []byte) ([]byte, error) {
	// byteaout never emits whitespace, but bytea input rules allow it
	// between hex pairs and literals pasted from logs often carry it.
	compact := make([]byte, 0, len(src))
	for _, b := range src {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		compact = append(compact, b)
	}

	dst := make([]byte, hex.DecodedLen(len(compact)))
	if _, err := hex.Decode(dst, compact); err != nil {
		return nil, &SyntaxError{Type: "bytea", Msg: "Invalid hex sequence", Literal: string(src)}
	}
	return dst, nil
}

func unescapeByteaEscape(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] != '\\' {
			dst = append(dst, src[i])
			continue
		}
		if i+1 < len(src) && src[i+1] == '\\' {
			dst = append(dst, '\\')
			i++
			continue
		}
		if i+3 < len(src) && src[i+1] >= '0' && src[i+1] <= '3' && isOctal(src[i+2]) && isOctal(src[i+3]) {
			dst = append(dst, (src[i+1]-'0')<<6|(src[i+2]-'0')<<3|(src[i+3]-'0'))
			i += 3
			continue
		}
		return nil, &SyntaxError{Type: "bytea", Msg: "Invalid escape sequence", Literal: string(src)}
	}
	return dst, nil
}

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}
