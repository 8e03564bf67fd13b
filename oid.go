package pgcodec

// PostgreSQL type OIDs for the types with built-in decoders. Taken from
// pg_type.h; stable across server versions.
const (
	BoolOID         uint32 = 16
	ByteaOID        uint32 = 17
	CharOID         uint32 = 18
	NameOID         uint32 = 19
	Int8OID         uint32 = 20
	Int2OID         uint32 = 21
	Int4OID         uint32 = 23
	RegprocOID      uint32 = 24
	TextOID         uint32 = 25
	OIDOID          uint32 = 26
	TIDOID          uint32 = 27
	XIDOID          uint32 = 28
	CIDOID          uint32 = 29
	JSONOID         uint32 = 114
	JSONArrayOID    uint32 = 199
	Float4OID       uint32 = 700
	Float8OID       uint32 = 701
	UnknownOID      uint32 = 705
	CashOID         uint32 = 790
	CashArrayOID    uint32 = 791
	MacaddrOID      uint32 = 829
	InetOID         uint32 = 869
	BoolArrayOID    uint32 = 1000
	ByteaArrayOID   uint32 = 1001
	CharArrayOID    uint32 = 1002
	NameArrayOID    uint32 = 1003
	Int2ArrayOID    uint32 = 1005
	Int4ArrayOID    uint32 = 1007
	TextArrayOID    uint32 = 1009
	XIDArrayOID     uint32 = 1011
	CIDArrayOID     uint32 = 1012
	BPCharArrayOID  uint32 = 1014
	VarcharArrayOID uint32 = 1015
	Int8ArrayOID    uint32 = 1016
	Float4ArrayOID  uint32 = 1021
	Float8ArrayOID  uint32 = 1022
	OIDArrayOID     uint32 = 1028
	BPCharOID       uint32 = 1042
	VarcharOID      uint32 = 1043
	DateOID         uint32 = 1082
	TimeOID         uint32 = 1083
	TimestampOID    uint32 = 1114
	TimestamptzOID  uint32 = 1184
	IntervalOID     uint32 = 1186
	NumericArrayOID uint32 = 1231
	BitOID          uint32 = 1560
	VarbitOID       uint32 = 1562
	NumericOID      uint32 = 1700
	RegtypeOID      uint32 = 2206
	RegtypeArrayOID uint32 = 2211
	RecordOID       uint32 = 2249
	RecordArrayOID  uint32 = 2287
	UUIDOID         uint32 = 2950
	UUIDArrayOID    uint32 = 2951
	JSONBOID        uint32 = 3802
	JSONBArrayOID   uint32 = 3807
)
