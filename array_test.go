package pgcodec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseArray(t *testing.T) {
	tests := []struct {
		source string
		code   TypeCode
		result []any
	}{
		{source: "{}", code: Int, result: []any{}},
		{source: "{1}", code: Int, result: []any{int32(1)}},
		{source: "{1,2,3}", code: Int, result: []any{int32(1), int32(2), int32(3)}},
		{source: "{-1,+2}", code: Int, result: []any{int32(-1), int32(2)}},
		{source: " { 1 , 2 } ", code: Int, result: []any{int32(1), int32(2)}},
		{source: "{1,NULL,3}", code: Int, result: []any{int32(1), nil, int32(3)}},
		{source: "{{1,NULL},{NULL,4}}", code: Int, result: []any{[]any{int32(1), nil}, []any{nil, int32(4)}}},
		{source: "{9223372036854775807}", code: Long, result: []any{int64(9223372036854775807)}},
		{source: "{1.5,-2.25}", code: Float, result: []any{1.5, -2.25}},
		{source: "{t,f,NULL}", code: Bool, result: []any{true, false, nil}},
		{source: "{a,b}", code: Text, result: []any{"a", "b"}},
		{source: "{ a b , c }", code: Text, result: []any{"a b", "c"}},
		{source: `{""}`, code: Text, result: []any{""}},
		{source: `{"NULL"}`, code: Text, result: []any{"NULL"}},
		{source: "{NULL}", code: Text, result: []any{nil}},
		{source: "{null}", code: Text, result: []any{nil}},
		{source: "{NuLl}", code: Text, result: []any{nil}},
		{source: `{\NULL}`, code: Text, result: []any{"NULL"}},
		{source: `{"a\"b"}`, code: Text, result: []any{`a"b`}},
		{source: `{"a\\b"}`, code: Text, result: []any{`a\b`}},
		{source: `{"{",","}`, code: Text, result: []any{"{", ","}},
		{source: `{"He said, \"Hello.\""}`, code: Text, result: []any{`He said, "Hello."`}},
		{source: "{{a,b},{c,d},{e,f}}", code: Text, result: []any{[]any{"a", "b"}, []any{"c", "d"}, []any{"e", "f"}}},
		{source: "{{{a}},{{b}}}", code: Text, result: []any{[]any{[]any{"a"}}, []any{[]any{"b"}}}},
		{source: "[1:3]={1,2,3}", code: Int, result: []any{int32(1), int32(2), int32(3)}},
		{source: "[-2:-1]={a,b}", code: Text, result: []any{"a", "b"}},
		{source: "[1:2][1:2]={{a,b},{c,d}}", code: Text, result: []any{[]any{"a", "b"}, []any{"c", "d"}}},
		// array-flagged and zero codes fall back to the base / text decoders
		{source: "{1,2}", code: Int | ArrayFlag, result: []any{int32(1), int32(2)}},
		{source: "{1,2}", code: 0, result: []any{"1", "2"}},
	}

	for i, tt := range tests {
		result, err := ParseArray(tt.source, tt.code, 0, nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(result, tt.result) {
			t.Errorf("%d: expected %#v to be parsed to %#v, but it was %#v", i, tt.source, tt.result, result)
		}
	}
}

func TestParseArrayErrors(t *testing.T) {
	tests := []struct {
		source string
		msg    string
	}{
		{source: "", msg: "Array must start with a left brace"},
		{source: "1,2", msg: "Array must start with a left brace"},
		{source: "[1:2]{1,2}", msg: "Invalid array dimensions"},
		{source: "[1:]={1}", msg: "Invalid array dimensions"},
		{source: "[1:2][1:2]={1,2,3}", msg: "Array dimensions do not match content"},
		{source: "[1:2]={{1},{2}}", msg: "Array dimensions do not match content"},
		{source: "{1,2", msg: "Unexpected end of array"},
		{source: `{"a}`, msg: "Unexpected end of array"},
		{source: "{1,2}x", msg: "Unexpected characters after end of array"},
		{source: "{{1},2}", msg: "Subarray expected but not found"},
		{source: "{1,{2}}", msg: "Subarray found where not expected"},
	}

	for i, tt := range tests {
		_, err := ParseArray(tt.source, Text, 0, nil)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%d: %q expected SyntaxError, got %v", i, tt.source, err)
			continue
		}
		if syntaxErr.Msg != tt.msg {
			t.Errorf("%d: %q expected %q, got %q", i, tt.source, tt.msg, syntaxErr.Msg)
		}
	}
}

func TestParseArrayDepthLimit(t *testing.T) {
	nested := func(depth int) string {
		return strings.Repeat("{", depth) + "1" + strings.Repeat("}", depth)
	}

	result, err := ParseArray(nested(MaxArrayDepth), Int, 0, nil)
	if err != nil {
		t.Fatalf("depth %d: %v", MaxArrayDepth, err)
	}
	for i := 0; i < MaxArrayDepth-1; i++ {
		sub, ok := result[0].([]any)
		if !ok {
			t.Fatalf("level %d: expected []any, got %#v", i, result[0])
		}
		result = sub
	}
	if !reflect.DeepEqual(result, []any{int32(1)}) {
		t.Fatalf("expected innermost []any{1}, got %#v", result)
	}

	_, err = ParseArray(nested(MaxArrayDepth+1), Int, 0, nil)
	var depthErr *DepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("depth %d: expected DepthError, got %v", MaxArrayDepth+1, err)
	}
}

func TestParseArrayDelimiter(t *testing.T) {
	// box arrays delimit elements with a semicolon
	result, err := ParseArray("{(1,2),(3,4);(5,6),(7,8)}", Text, ';', nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := []any{"(1,2),(3,4)", "(5,6),(7,8)"}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf("expected %#v, got %#v", expected, result)
	}

	for _, delim := range []byte{'{', '}', '\\'} {
		_, err := ParseArray("{1}", Text, delim, nil)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) || syntaxErr.Msg != "Invalid array delimiter" {
			t.Errorf("delimiter %q: expected Invalid array delimiter, got %v", delim, err)
		}
	}
}

func TestParseArrayFunc(t *testing.T) {
	result, err := ParseArrayFunc("{a,NULL,c}", func(s string) (any, error) {
		return strings.ToUpper(s), nil
	}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result, []any{"A", nil, "C"}) {
		t.Fatalf("got %#v", result)
	}

	// nil cast leaves elements as text
	result, err = ParseArrayFunc("{1,2}", nil, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result, []any{"1", "2"}) {
		t.Fatalf("got %#v", result)
	}

	// cast errors propagate unchanged
	sentinel := errors.New("cast failed")
	_, err = ParseArrayFunc("{a}", func(s string) (any, error) {
		return nil, sentinel
	}, 0, nil)
	if err != sentinel {
		t.Fatalf("expected sentinel error unchanged, got %v", err)
	}
}

func TestParseArrayAsText(t *testing.T) {
	cfg := NewConfig()
	cfg.SetArrayAsText(true)

	result, err := ParseArray("{1,2}", Int, 0, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result, []any{"1", "2"}) {
		t.Fatalf("got %#v", result)
	}
}

func TestParseArrayElementError(t *testing.T) {
	_, err := ParseArray("{1,x}", Int, 0, nil)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Code != Int || decodeErr.Text != "x" {
		t.Fatalf("expected Int/x, got %s/%q", decodeErr.Code, decodeErr.Text)
	}
}
