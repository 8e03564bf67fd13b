package pgcodec

// decodeText converts src under the connection encoding. System catalogs on
// misconfigured servers can hold bytes that are invalid for the reported
// encoding; for plain text context the raw bytes are returned instead of
// failing the row.
func decodeText(src []byte, snap config) any {
	if s, ok := snap.encoding.decode(src); ok {
		return s
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// decodeTextStrict is decodeText for contexts where a bytes fallback is not
// possible (json decoding, cast hooks).
func decodeTextStrict(src []byte, snap config) (string, error) {
	s, ok := snap.encoding.decode(src)
	if !ok {
		return "", &EncodingError{Encoding: snap.encoding.name}
	}
	return s, nil
}

// decodeTextBased handles the text-based codes: Text, Bytea, JSON, and
// Other without a cast hook.
func decodeTextBased(src []byte, code TypeCode, snap config) (any, error) {
	switch code.Base() {
	case Bytea:
		if snap.byteaEscaped {
			// Classification never produces Bytea when escaped output is
			// requested, but the standalone entry points can.
			return decodeText(src, snap), nil
		}
		return unescapeBytea(src)

	case JSON:
		s, err := decodeTextStrict(src, snap)
		if err != nil {
			return nil, err
		}
		if snap.jsonFunc == nil {
			return s, nil
		}
		return snap.jsonFunc([]byte(s))

	default:
		return decodeText(src, snap), nil
	}
}

// decodeOther handles fields whose OID has no built-in decoder. With no
// cast hook configured they behave exactly like text; with one, the decoded
// text and the OID go to the hook and its result (or error) is passed
// through unchanged.
func decodeOther(src []byte, oid uint32, snap config) (any, error) {
	if snap.castHook == nil {
		return decodeText(src, snap), nil
	}
	s, err := decodeTextStrict(src, snap)
	if err != nil {
		return nil, err
	}
	return snap.castHook(s, oid)
}
