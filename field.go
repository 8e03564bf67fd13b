package pgcodec

// DecodeField decodes one result field. src is the raw payload as handed
// over by the protocol layer; it need not be NUL-terminated and may contain
// embedded zero bytes. A nil src is the transport-level null marker and
// decodes to nil without consulting any decoder. Binary-format fields are
// returned as an opaque copy of src; only the text format is decoded. cfg
// may be nil for the defaults.
func DecodeField(src []byte, oid uint32, format int16, cfg *Config) (any, error) {
	return decodeField(src, oid, format, cfg.snapshot())
}

func decodeField(src []byte, oid uint32, format int16, snap config) (any, error) {
	if src == nil {
		return nil, nil
	}
	if format == BinaryFormatCode {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}

	code := typeCodeForOID(oid, snap)
	switch {
	case code.IsArray():
		return parseArray(string(src), code, nil, 0, snap)
	case code == Other:
		return decodeOther(src, oid, snap)
	case code.textBased():
		return decodeTextBased(src, code, snap)
	default:
		return decodeScalar(string(src), code, snap)
	}
}

// Result row format codes, matching the wire protocol values.
const (
	TextFormatCode   int16 = 0
	BinaryFormatCode int16 = 1
)
