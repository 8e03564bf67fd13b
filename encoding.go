package pgcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// serverEncoding resolves a PostgreSQL encoding name once so the per-field
// decode path never touches the registry.
type serverEncoding struct {
	name string
	// nil enc means the encoding is handled without a transform: UTF8 by
	// validation, SQL_ASCII by a 7-bit check.
	enc     encoding.Encoding
	isASCII bool
}

var utf8ServerEncoding = &serverEncoding{name: "UTF8"}

// Single-byte encodings PostgreSQL can report, keyed by its names. LATIN5
// through LATIN10 deliberately do not line up with the ISO 8859 part
// numbers; the pairing below follows src/common/encnames.c.
var serverEncodings = map[string]encoding.Encoding{
	"LATIN1":     charmap.ISO8859_1,
	"LATIN2":     charmap.ISO8859_2,
	"LATIN3":     charmap.ISO8859_3,
	"LATIN4":     charmap.ISO8859_4,
	"LATIN5":     charmap.ISO8859_9,
	"LATIN6":     charmap.ISO8859_10,
	"LATIN7":     charmap.ISO8859_13,
	"LATIN8":     charmap.ISO8859_14,
	"LATIN9":     charmap.ISO8859_15,
	"LATIN10":    charmap.ISO8859_16,
	"ISO_8859_5": charmap.ISO8859_5,
	"ISO_8859_6": charmap.ISO8859_6,
	"ISO_8859_7": charmap.ISO8859_7,
	"ISO_8859_8": charmap.ISO8859_8,
	"KOI8R":      charmap.KOI8R,
	"KOI8U":      charmap.KOI8U,
	"WIN866":     charmap.CodePage866,
	"WIN874":     charmap.Windows874,
	"WIN1250":    charmap.Windows1250,
	"WIN1251":    charmap.Windows1251,
	"WIN1252":    charmap.Windows1252,
	"WIN1253":    charmap.Windows1253,
	"WIN1254":    charmap.Windows1254,
	"WIN1255":    charmap.Windows1255,
	"WIN1256":    charmap.Windows1256,
	"WIN1257":    charmap.Windows1257,
	"WIN1258":    charmap.Windows1258,
}

func lookupServerEncoding(name string) (*serverEncoding, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	switch key {
	case "UTF8", "UNICODE":
		return utf8ServerEncoding, nil
	case "SQL_ASCII":
		return &serverEncoding{name: "SQL_ASCII", isASCII: true}, nil
	}
	if enc, ok := serverEncodings[key]; ok {
		return &serverEncoding{name: key, enc: enc}, nil
	}
	// Names like EUC_JP reach the IANA registry after the usual
	// underscore-for-dash spelling difference.
	enc, err := ianaindex.IANA.Encoding(strings.ReplaceAll(key, "_", "-"))
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return &serverEncoding{name: key, enc: enc}, nil
}

// decode converts src to a UTF-8 string. ok is false when src is not valid
// under the encoding; the caller decides between the bytes fallback (text
// fields) and an EncodingError (everywhere else).
func (e *serverEncoding) decode(src []byte) (string, bool) {
	switch {
	case e.isASCII:
		for _, b := range src {
			if b >= 0x80 {
				return "", false
			}
		}
		return string(src), true
	case e.enc == nil: // UTF8
		if !utf8.Valid(src) {
			return "", false
		}
		return string(src), true
	default:
		out, err := e.enc.NewDecoder().Bytes(src)
		if err != nil {
			return "", false
		}
		// x/text substitutes unmappable bytes instead of failing; treat a
		// substitution the decoder introduced as a failure.
		if strings.ContainsRune(string(out), utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}
