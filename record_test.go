package pgcodec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		source string
		codes  []TypeCode
		result Record
	}{
		{source: "()", codes: nil, result: Record{nil}},
		{source: "(1,hello)", codes: nil, result: Record{"1", "hello"}},
		{source: "(1,2)", codes: []TypeCode{Int, Long}, result: Record{int32(1), int64(2)}},
		{source: "(1,,3)", codes: []TypeCode{Int, Int, Int}, result: Record{int32(1), nil, int32(3)}},
		{source: "(,)", codes: []TypeCode{Text, Text}, result: Record{nil, nil}},
		{source: `("a b",c)`, codes: nil, result: Record{"a b", "c"}},
		{source: `("a""b")`, codes: nil, result: Record{`a"b`}},
		{source: `("a\"b")`, codes: nil, result: Record{`a"b`}},
		// quoting toggles mid-field; the segments concatenate
		{source: `(a"b c"d)`, codes: nil, result: Record{"ab cd"}},
		{source: `("")`, codes: nil, result: Record{""}},
		// NULL is only a sentinel in arrays, not records
		{source: "(NULL)", codes: nil, result: Record{"NULL"}},
		{source: ` (1,2) `, codes: nil, result: Record{"1", "2"}},
		{source: "(t,f)", codes: []TypeCode{Bool, Bool}, result: Record{true, false}},
		// array-flagged positions recurse into the array parser
		{source: `(1,"{a,b}")`, codes: []TypeCode{Int, Text | ArrayFlag}, result: Record{int32(1), []any{"a", "b"}}},
		{source: `(1,"{2,NULL}")`, codes: []TypeCode{Int, Int | ArrayFlag}, result: Record{int32(1), []any{int32(2), nil}}},
	}

	for i, tt := range tests {
		result, err := ParseRecord(tt.source, tt.codes, 0, nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(result, tt.result) {
			t.Errorf("%d: expected %#v to be parsed to %#v, but it was %#v", i, tt.source, tt.result, result)
		}
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		source string
		codes  []TypeCode
		msg    string
	}{
		{source: "", msg: "Record must start with a left parenthesis"},
		{source: "1,2", msg: "Record must start with a left parenthesis"},
		{source: "(1,2", msg: "Unexpected end of record"},
		{source: `("a)`, msg: "Unexpected end of record"},
		{source: "(1,2)x", msg: "Unexpected characters after end of record"},
		{source: "(1,2,3)", codes: []TypeCode{Int, Int}, msg: "Too many columns"},
		{source: "(1,2)", codes: []TypeCode{Int, Int, Int}, msg: "Too few columns"},
	}

	for i, tt := range tests {
		_, err := ParseRecord(tt.source, tt.codes, 0, nil)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%d: %q expected SyntaxError, got %v", i, tt.source, err)
			continue
		}
		if syntaxErr.Msg != tt.msg {
			t.Errorf("%d: %q expected %q, got %q", i, tt.source, tt.msg, syntaxErr.Msg)
		}
	}

	for _, delim := range []byte{'(', ')', '\\'} {
		_, err := ParseRecord("(1)", nil, delim, nil)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) || syntaxErr.Msg != "Invalid record delimiter" {
			t.Errorf("delimiter %q: expected Invalid record delimiter, got %v", delim, err)
		}
	}
}

func TestParseRecordFunc(t *testing.T) {
	result, err := ParseRecordFunc("(a,,c)", func(s string) (any, error) {
		return strings.ToUpper(s), nil
	}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result, Record{"A", nil, "C"}) {
		t.Fatalf("got %#v", result)
	}

	// no arity enforcement
	if _, err := ParseRecordFunc("(1,2,3,4,5)", nil, 0, nil); err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("cast failed")
	_, err = ParseRecordFunc("(a)", func(s string) (any, error) {
		return nil, sentinel
	}, 0, nil)
	if err != sentinel {
		t.Fatalf("expected sentinel error unchanged, got %v", err)
	}
}

func TestParseRecordCasts(t *testing.T) {
	casts := []CastFunc{
		func(s string) (any, error) { return strings.ToUpper(s), nil },
		nil, // passthrough text
	}
	result, err := ParseRecordCasts("(a,b)", casts, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result, Record{"A", "b"}) {
		t.Fatalf("got %#v", result)
	}

	_, err = ParseRecordCasts("(a,b,c)", casts, 0, nil)
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || syntaxErr.Msg != "Too many columns" {
		t.Fatalf("expected Too many columns, got %v", err)
	}
}
