package pgcodec

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DecimalFunc builds a value from the verbatim digit string of a numeric or
// money field. The string never round-trips through a float.
type DecimalFunc func(s string) (any, error)

// JSONDecodeFunc decodes the text of a json or jsonb field.
type JSONDecodeFunc func(data []byte) (any, error)

// CastHookFunc casts the decoded text of a field whose OID has no built-in
// decoder. Errors it returns propagate to the caller unchanged.
type CastHookFunc func(s string, oid uint32) (any, error)

// CastFunc casts one already-unescaped array element or record field.
type CastFunc func(s string) (any, error)

// config is the immutable view a single decode call operates on.
type config struct {
	arrayAsText  bool
	boolAsText   bool
	byteaEscaped bool
	decimalPoint byte // 0 = unset: money fields come back as text
	decimalFunc  DecimalFunc
	jsonFunc     JSONDecodeFunc
	castHook     CastHookFunc
	encoding     *serverEncoding
}

// Config holds the connection-scoped decode settings. Setters may be called
// concurrently with decoding; every decode call snapshots the config once
// up front and is unaffected by later setter calls. The zero value is not
// usable; call NewConfig.
type Config struct {
	mu sync.RWMutex
	c  config
}

var defaultConfig = config{
	decimalPoint: '.',
	decimalFunc:  defaultDecimalFunc,
	encoding:     utf8ServerEncoding,
}

// NewConfig returns a Config with the defaults a fresh connection gets:
// UTF8 encoding, '.' as the money decimal point, numeric values decoded via
// github.com/shopspring/decimal, and no JSON decoding or cast hook.
func NewConfig() *Config {
	return &Config{c: defaultConfig}
}

// snapshot returns the current settings by value. A nil receiver yields the
// defaults, so the standalone parse functions accept a nil *Config.
func (c *Config) snapshot() config {
	if c == nil {
		return defaultConfig
	}
	c.mu.RLock()
	snap := c.c
	c.mu.RUnlock()
	return snap
}

// SetArrayAsText controls whether array columns bypass the array parser and
// come back as the verbatim literal text.
func (c *Config) SetArrayAsText(on bool) {
	c.mu.Lock()
	c.c.arrayAsText = on
	c.mu.Unlock()
}

func (c *Config) ArrayAsText() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.arrayAsText
}

// SetBoolAsText controls whether bool columns come back as the strings "t"
// and "f" instead of Go bools.
func (c *Config) SetBoolAsText(on bool) {
	c.mu.Lock()
	c.c.boolAsText = on
	c.mu.Unlock()
}

func (c *Config) BoolAsText() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.boolAsText
}

// SetByteaEscaped controls whether bytea columns come back as the escaped
// text the server sent, leaving unescaping to the caller.
func (c *Config) SetByteaEscaped(on bool) {
	c.mu.Lock()
	c.c.byteaEscaped = on
	c.mu.Unlock()
}

func (c *Config) ByteaEscaped() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.byteaEscaped
}

// SetDecimalPoint sets the decimal point character of the server's money
// locale. Passing 0 disables money parsing entirely; money fields are then
// returned as verbatim text.
func (c *Config) SetDecimalPoint(ch byte) {
	c.mu.Lock()
	c.c.decimalPoint = ch
	c.mu.Unlock()
}

func (c *Config) DecimalPoint() byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.decimalPoint
}

// SetDecimalFunc sets the constructor for numeric and money values. Passing
// nil makes numeric and money fields fall back to float64.
func (c *Config) SetDecimalFunc(fn DecimalFunc) {
	c.mu.Lock()
	c.c.decimalFunc = fn
	c.mu.Unlock()
}

func (c *Config) DecimalFunc() DecimalFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.decimalFunc
}

// SetJSONDecodeFunc sets the decoder applied to json and jsonb fields.
// Passing nil leaves json fields as verbatim text.
func (c *Config) SetJSONDecodeFunc(fn JSONDecodeFunc) {
	c.mu.Lock()
	c.c.jsonFunc = fn
	c.mu.Unlock()
}

func (c *Config) JSONDecodeFunc() JSONDecodeFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.jsonFunc
}

// SetCastHook sets the fallback cast applied to fields whose OID has no
// built-in decoder. Passing nil leaves such fields as text.
func (c *Config) SetCastHook(fn CastHookFunc) {
	c.mu.Lock()
	c.c.castHook = fn
	c.mu.Unlock()
}

func (c *Config) CastHook() CastHookFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.castHook
}

// SetEncoding sets the connection character encoding by its PostgreSQL name
// (e.g. "UTF8", "LATIN1", "WIN1252", "SQL_ASCII").
func (c *Config) SetEncoding(name string) error {
	enc, err := lookupServerEncoding(name)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.c.encoding = enc
	c.mu.Unlock()
	return nil
}

func (c *Config) Encoding() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.encoding.name
}

func defaultDecimalFunc(s string) (any, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, &DecodeError{Code: Decimal, Text: s}
	}
	return d, nil
}
