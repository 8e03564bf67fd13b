package pgcodec

import "context"

// FieldDescription carries the per-column metadata the protocol layer
// extracts from a RowDescription message. Size and Modifier are
// informational only; Format selects between the text and binary paths.
type FieldDescription struct {
	Name     string
	OID      uint32
	Size     int32
	Modifier int32
	Format   int16
}

// FieldValue is one raw field as extracted from a DataRow message. Null is
// the transport-level null marker; when set, Bytes is ignored.
type FieldValue struct {
	Bytes []byte
	Null  bool
}

// Result assembles decoded rows from a rectangular grid of raw fields. It
// does not retain or mutate the inputs; the same Result can be decoded
// repeatedly, e.g. under different configs.
type Result struct {
	fields   []FieldDescription
	rows     [][]FieldValue
	logger   Logger
	logLevel LogLevel
}

func NewResult(fields []FieldDescription, rows [][]FieldValue) *Result {
	return &Result{fields: fields, rows: rows, logLevel: LogLevelNone}
}

// SetLogger attaches a logger used to trace per-column decode failures.
// Decoding behavior is unchanged; errors are still returned.
func (r *Result) SetLogger(logger Logger, level LogLevel) {
	r.logger = logger
	r.logLevel = level
}

// Fields returns the column metadata.
func (r *Result) Fields() []FieldDescription {
	return r.fields
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.rows)
}

// Decode decodes every row into a positional []any. The first field that
// fails to decode aborts the whole result; no partial rows are returned.
// The error wraps the original failure in a ColumnError carrying the column
// index and OID.
func (r *Result) Decode(ctx context.Context, cfg *Config) ([][]any, error) {
	snap := cfg.snapshot()
	out := make([][]any, len(r.rows))
	for i, row := range r.rows {
		values, err := r.decodeRow(ctx, row, snap)
		if err != nil {
			return nil, err
		}
		out[i] = values
	}
	return out, nil
}

// DecodeMaps decodes every row into a map keyed by column name. Columns
// with duplicate names overwrite left to right, like libpq-based drivers.
func (r *Result) DecodeMaps(ctx context.Context, cfg *Config) ([]map[string]any, error) {
	snap := cfg.snapshot()
	out := make([]map[string]any, len(r.rows))
	for i, row := range r.rows {
		values, err := r.decodeRow(ctx, row, snap)
		if err != nil {
			return nil, err
		}
		m := make(map[string]any, len(values))
		for j, v := range values {
			m[r.fields[j].Name] = v
		}
		out[i] = m
	}
	return out, nil
}

// DecodeNamed decodes every row into a NamedRow with by-name and positional
// access, the named-tuple analogue.
func (r *Result) DecodeNamed(ctx context.Context, cfg *Config) ([]NamedRow, error) {
	snap := cfg.snapshot()
	byName := make(map[string]int, len(r.fields))
	for j, fd := range r.fields {
		if fd.Name == "" {
			continue
		}
		if _, dup := byName[fd.Name]; !dup {
			byName[fd.Name] = j
		}
	}

	out := make([]NamedRow, len(r.rows))
	for i, row := range r.rows {
		values, err := r.decodeRow(ctx, row, snap)
		if err != nil {
			return nil, err
		}
		out[i] = NamedRow{fields: r.fields, byName: byName, values: values}
	}
	return out, nil
}

func (r *Result) decodeRow(ctx context.Context, row []FieldValue, snap config) ([]any, error) {
	values := make([]any, len(row))
	for j, fv := range row {
		if fv.Null {
			continue
		}
		fd := r.fields[j]
		src := fv.Bytes
		if src == nil {
			src = []byte{}
		}
		v, err := decodeField(src, fd.OID, fd.Format, snap)
		if err != nil {
			if r.logger != nil && r.logLevel >= LogLevelDebug {
				r.logger.Log(ctx, LogLevelDebug, "field decode failed", map[string]any{
					"column": j,
					"name":   fd.Name,
					"oid":    fd.OID,
					"err":    err,
				})
			}
			return nil, &ColumnError{Column: j, Name: fd.Name, OID: fd.OID, Err: err}
		}
		values[j] = v
	}
	return values, nil
}

// NamedRow is one decoded row with by-name field access. Columns whose
// names are empty or duplicated are reachable by index only.
type NamedRow struct {
	fields []FieldDescription
	byName map[string]int
	values []any
}

// Get returns the value of the named column. ok is false when no column has
// that name.
func (r NamedRow) Get(name string) (v any, ok bool) {
	j, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.values[j], true
}

// Index returns the value at column position j.
func (r NamedRow) Index(j int) any {
	return r.values[j]
}

// Values returns the positional values of the row.
func (r NamedRow) Values() []any {
	return r.values
}

// Len returns the number of columns.
func (r NamedRow) Len() int {
	return len(r.values)
}
