package pgcodec

import (
	"errors"
	"math"
	"strconv"
)

// decodeScalar parses text as the scalar base code. Malformed text is a
// DecodeError, out-of-range text a RangeError; neither is ever silently
// mapped to a zero value.
func decodeScalar(text string, code TypeCode, snap config) (any, error) {
	switch code.Base() {
	case Int:
		n, err := parseInt(text, code)
		if err != nil {
			return nil, err
		}
		// int4-tagged columns only ever carry int32-range values, but the
		// standalone entry points accept arbitrary literals; promote rather
		// than truncate.
		if n < math.MinInt32 || n > math.MaxInt32 {
			return n, nil
		}
		return int32(n), nil

	case Long:
		return parseInt(text, code)

	case Float:
		return parseFloat(text, code)

	case Decimal:
		if snap.decimalFunc == nil {
			return parseFloat(text, code)
		}
		return snap.decimalFunc(text)

	case Money:
		return decodeMoney(text, snap)

	case Bool:
		if len(text) == 0 {
			return nil, &DecodeError{Code: Bool, Text: text}
		}
		if snap.boolAsText {
			if text[0] == 't' {
				return "t", nil
			}
			return "f", nil
		}
		return text[0] == 't', nil

	default:
		return nil, &DecodeError{Code: code, Text: text}
	}
}

// decodeMoney strips currency formatting and feeds the bare digit string to
// the decimal constructor. With no decimal point configured the text is
// locale-dependent and unparseable, so it is returned verbatim.
func decodeMoney(text string, snap config) (any, error) {
	if snap.decimalPoint == 0 {
		return text, nil
	}

	buf := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; {
		case ch >= '0' && ch <= '9':
			buf = append(buf, ch)
		case ch == snap.decimalPoint:
			buf = append(buf, '.')
		case ch == '(' || ch == '-':
			buf = append(buf, '-')
		}
	}
	stripped := string(buf)

	if snap.decimalFunc == nil {
		return parseFloat(stripped, Money)
	}
	return snap.decimalFunc(stripped)
}

func parseInt(text string, code TypeCode) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &RangeError{Code: code, Text: text}
		}
		return 0, &DecodeError{Code: code, Text: text}
	}
	return n, nil
}

func parseFloat(text string, code TypeCode) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &RangeError{Code: code, Text: text}
		}
		return 0, &DecodeError{Code: code, Text: text}
	}
	return f, nil
}
