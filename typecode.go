package pgcodec

// TypeCode classifies a column's on-wire text representation and selects the
// decoder for it. Codes below Text are parsed as scalars; Text and above are
// text based. ArrayFlag may be combined with any base code.
type TypeCode int

const (
	Int     TypeCode = 1 // int2, int4, oid, xid, cid
	Long    TypeCode = 2 // int8
	Float   TypeCode = 3 // float4, float8
	Decimal TypeCode = 4 // numeric
	Money   TypeCode = 5 // money, when a decimal point is configured
	Bool    TypeCode = 6 // bool

	Text  TypeCode = 8  // char, bpchar, varchar, text, name, regtype
	Bytea TypeCode = 9  // bytea, when not configured as escaped
	JSON  TypeCode = 10 // json, jsonb, when a JSON decode func is configured
	Other TypeCode = 11 // anything without a built-in decoder

	// ArrayFlag marks an array of the base code.
	ArrayFlag TypeCode = 16
)

// Base strips ArrayFlag. The zero base of a flagged code decodes as Text.
func (c TypeCode) Base() TypeCode {
	c &^= ArrayFlag
	if c == 0 {
		return Text
	}
	return c
}

// IsArray reports whether ArrayFlag is set.
func (c TypeCode) IsArray() bool {
	return c&ArrayFlag != 0
}

// textBased reports whether the base code decodes through the text decoder
// rather than a scalar parser.
func (c TypeCode) textBased() bool {
	return c.Base() >= Text
}

func (c TypeCode) String() string {
	var s string
	switch c.Base() {
	case Int:
		s = "int"
	case Long:
		s = "long"
	case Float:
		s = "float"
	case Decimal:
		s = "decimal"
	case Money:
		s = "money"
	case Bool:
		s = "bool"
	case Text:
		s = "text"
	case Bytea:
		s = "bytea"
	case JSON:
		s = "json"
	case Other:
		s = "other"
	default:
		s = "invalid"
	}
	if c.IsArray() {
		s += " array"
	}
	return s
}

// TypeCodeForOID classifies oid under the toggles in cfg. Toggles shift
// classification rather than decoding: money is Money only when a decimal
// point is configured, bytea is Bytea only when not escaped, json is JSON
// only when a decode func is configured, and any array OID collapses to
// plain Text when arrays-as-text is set. Unknown OIDs are Other.
func TypeCodeForOID(oid uint32, cfg *Config) TypeCode {
	return typeCodeForOID(oid, cfg.snapshot())
}

// ColumnTypeCodes classifies one OID per result column using a single
// config snapshot, so a concurrent setter call cannot split a result
// between two configurations.
func ColumnTypeCodes(oids []uint32, cfg *Config) []TypeCode {
	snap := cfg.snapshot()
	codes := make([]TypeCode, len(oids))
	for i, oid := range oids {
		codes[i] = typeCodeForOID(oid, snap)
	}
	return codes
}

func typeCodeForOID(oid uint32, snap config) TypeCode {
	switch oid {
	case Int2OID, Int4OID, CIDOID, OIDOID, XIDOID:
		return Int

	case Int8OID:
		return Long

	case Float4OID, Float8OID:
		return Float

	case NumericOID:
		return Decimal

	case CashOID:
		if snap.decimalPoint == 0 {
			return Text
		}
		return Money

	case BoolOID:
		return Bool

	case ByteaOID:
		if snap.byteaEscaped {
			return Text
		}
		return Bytea

	case JSONOID, JSONBOID:
		if snap.jsonFunc == nil {
			return Text
		}
		return JSON

	case BPCharOID, CharOID, TextOID, VarcharOID, NameOID, RegtypeOID:
		return Text

	case Int2ArrayOID, Int4ArrayOID, CIDArrayOID, OIDArrayOID, XIDArrayOID:
		return arrayCode(Int, snap)

	case Int8ArrayOID:
		return arrayCode(Long, snap)

	case Float4ArrayOID, Float8ArrayOID:
		return arrayCode(Float, snap)

	case NumericArrayOID:
		return arrayCode(Decimal, snap)

	case CashArrayOID:
		if snap.decimalPoint == 0 {
			return arrayCode(Text, snap)
		}
		return arrayCode(Money, snap)

	case BoolArrayOID:
		return arrayCode(Bool, snap)

	case ByteaArrayOID:
		if snap.byteaEscaped {
			return arrayCode(Text, snap)
		}
		return arrayCode(Bytea, snap)

	case JSONArrayOID, JSONBArrayOID:
		if snap.jsonFunc == nil {
			return arrayCode(Text, snap)
		}
		return arrayCode(JSON, snap)

	case BPCharArrayOID, CharArrayOID, TextArrayOID, VarcharArrayOID, NameArrayOID, RegtypeArrayOID:
		return arrayCode(Text, snap)

	default:
		return Other
	}
}

func arrayCode(base TypeCode, snap config) TypeCode {
	if snap.arrayAsText {
		return Text
	}
	return base | ArrayFlag
}
