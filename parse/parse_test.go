package parse_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/jsontree/parse"
	"github.com/simon-lentz/jsontree/value"
)

func mustParse(t *testing.T, input string, opts ...parse.Option) *value.Value {
	t.Helper()
	v, err := parse.String(input, opts...)
	require.NoError(t, err, "parse %q", input)
	return v
}

func parseErr(t *testing.T, input string, opts ...parse.Option) *parse.ParseError {
	t.Helper()
	_, err := parse.String(input, opts...)
	require.Error(t, err, "parse %q should fail", input)
	var perr *parse.ParseError
	require.ErrorAs(t, err, &perr, "parse %q error type", input)
	return perr
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input string
		want  *value.Value
	}{
		{`null`, value.Null()},
		{`true`, value.Bool(true)},
		{`false`, value.Bool(false)},
		{`"hi"`, value.String("hi")},
		{`""`, value.String("")},
		{`0`, value.Int(0)},
		{`-0`, value.Int(0)},
		{`42`, value.Int(42)},
		{`-17`, value.Int(-17)},
		{`0.1`, value.Float(0.1)},
		{`1e2`, value.Float(100)},
		{`1E+2`, value.Float(100)},
		{`-2.5e-1`, value.Float(-0.25)},
		{`  true  `, value.Bool(true)},
		{"\t\r\n 1 \t", value.Int(1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_NumberForms(t *testing.T) {
	tests := []struct {
		input string
		form  value.NumberForm
	}{
		{`9223372036854775807`, value.IntForm},   // max int64 stays integer
		{`-9223372036854775808`, value.IntForm},  // min int64 stays integer
		{`9223372036854775808`, value.UintForm},  // 2^63 promotes to unsigned
		{`18446744073709551615`, value.UintForm}, // max uint64
		{`18446744073709551616`, value.FloatForm},
		{`-9223372036854775809`, value.FloatForm},
		{`1.0`, value.FloatForm},
		{`1e0`, value.FloatForm},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := mustParse(t, tt.input)
			n, err := v.AsNumber()
			require.NoError(t, err)
			assert.Equal(t, tt.form, n.Form())
		})
	}
}

func TestParse_Structures(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[true,null,"x"]}`)
	obj, err := v.AsObject()
	require.NoError(t, err)
	assert.Equal(t, 2, obj.Len())

	elem := v.Resolve(value.Root().Key("b").Index(2))
	s, err := elem.AsString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	empty := mustParse(t, `[]`)
	arr, err := empty.AsArray()
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Len())

	nested := mustParse(t, `[[],{},[{"k":[]}]]`)
	assert.True(t, nested.IsArray())
}

func TestParse_DuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"k":1,"k":2}`)
	obj, err := v.AsObject()
	require.NoError(t, err)
	require.Equal(t, 2, obj.Len(), "duplicate keys must be retained")

	first, ok := obj.Get("k")
	require.True(t, ok)
	assert.True(t, first.Equal(value.Int(1)), "Get returns the first occurrence")

	var got []int64
	for k, e := range obj.All() {
		assert.Equal(t, "k", k)
		n, err := e.AsNumber()
		require.NoError(t, err)
		i, err := n.Int64()
		require.NoError(t, err)
		got = append(got, i)
	}
	assert.Equal(t, []int64{1, 2}, got, "iteration yields entries in source order")
}

func TestParse_StrictKeys(t *testing.T) {
	perr := parseErr(t, `{"k":1,"k":2}`, parse.WithStrictKeys(true))
	assert.Equal(t, parse.DuplicateKey, perr.Kind)
	assert.Equal(t, 7, perr.Offset, "offset of the repeated key")

	// Distinct keys pass under strict mode, per-object tracking.
	mustParse(t, `{"a":{"k":1},"b":{"k":2}}`, parse.WithStrictKeys(true))
}

func TestParse_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"escapes", `"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{"unicode escape", `"\u0041"`, "A"},
		{"uppercase hex", `"\u00E9"`, "\u00e9"},
		{"lowercase hex", `"\u00e9"`, "\u00e9"},
		{"embedded nul", `"\u0000"`, "\x00"},
		{"surrogate pair", `"\uD834\uDD1E"`, "\U0001D11E"},
		{"raw utf8 two byte", "\"\u00e9\"", "\u00e9"},
		{"raw utf8 four byte", "\"\U0001D11E\"", "\U0001D11E"},
		{"combining mark", "\"e\u0301\"", "e\u0301"},
		{"solidus", `"a/b"`, "a/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.input)
			s, err := v.AsString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   parse.ErrorKind
		offset int
	}{
		{"empty input", ``, parse.UnexpectedEOF, 0},
		{"whitespace only", `  `, parse.UnexpectedEOF, 2},
		{"trailing comma in array", `[1, 2, ]`, parse.UnexpectedByte, 7},
		{"bare comma", `,`, parse.UnexpectedByte, 0},
		{"unclosed array", `[1`, parse.UnexpectedEOF, 2},
		{"unclosed object", `{"a":1,`, parse.UnexpectedEOF, 7},
		{"missing colon", `{"k" 1}`, parse.UnexpectedByte, 5},
		{"bare key", `{k:1}`, parse.UnexpectedByte, 1},
		{"trailing comma in object", `{"k":1,}`, parse.UnexpectedByte, 7},
		{"truncated literal", `tru`, parse.UnexpectedEOF, 3},
		{"corrupt literal", `trux`, parse.UnexpectedByte, 3},
		{"uppercase literal", `True`, parse.UnexpectedByte, 0},
		{"trailing garbage", `{} x`, parse.TrailingGarbage, 3},
		{"two values", `1 2`, parse.TrailingGarbage, 2},
		{"leading zero", `01`, parse.InvalidNumber, 1},
		{"bare minus", `-`, parse.InvalidNumber, 1},
		{"trailing dot", `1.`, parse.InvalidNumber, 2},
		{"empty exponent", `1e`, parse.InvalidNumber, 2},
		{"exponent sign only", `1e+`, parse.InvalidNumber, 3},
		{"overflowing exponent", `1e400`, parse.InvalidNumber, 0},
		{"negative overflow", `-1e999`, parse.InvalidNumber, 0},
		{"unterminated string", `"abc`, parse.UnexpectedEOF, 4},
		{"control in string", "\"a\x01b\"", parse.UnexpectedByte, 2},
		{"raw newline in string", "\"a\nb\"", parse.UnexpectedByte, 2},
		{"bad escape", `"\x"`, parse.InvalidEscape, 1},
		{"bad hex", `"\u12g4"`, parse.InvalidEscape, 1},
		{"truncated unicode escape", `"\u12`, parse.UnexpectedEOF, 5},
		{"lone lead surrogate", `"\uD834"`, parse.InvalidSurrogate, 1},
		{"lone trail surrogate", `"\uDD1E"`, parse.InvalidSurrogate, 1},
		{"lead then non escape", `"\uD834x"`, parse.InvalidSurrogate, 1},
		{"lead then non trail escape", `"\uD834\u0041"`, parse.InvalidSurrogate, 7},
		{"invalid utf8 byte", "\"\xff\"", parse.InvalidUTF8, 1},
		{"truncated utf8", "\"\xc3\"", parse.InvalidUTF8, 1},
		{"utf8 surrogate half", "\"\xed\xa0\x80\"", parse.InvalidUTF8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.input)
			assert.Equal(t, tt.kind, perr.Kind, "kind for %q (got %v)", tt.input, perr.Kind)
			assert.Equal(t, tt.offset, perr.Offset, "offset for %q", tt.input)
			assert.False(t, perr.Pos.IsZero(), "position should be derived")
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	perr := parseErr(t, "{\n  \"a\": 1,\n  ]\n}")
	assert.Equal(t, parse.UnexpectedByte, perr.Kind)
	assert.Equal(t, 3, perr.Pos.Line)
	assert.Equal(t, 3, perr.Pos.Column)
	assert.Contains(t, perr.Error(), "3:3")
}

func TestParse_Depth(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		input := strings.Repeat("[", parse.DefaultMaxDepth) + strings.Repeat("]", parse.DefaultMaxDepth)
		mustParse(t, input)
	})

	t.Run("beyond limit", func(t *testing.T) {
		input := strings.Repeat("[", parse.DefaultMaxDepth+1)
		perr := parseErr(t, input)
		assert.Equal(t, parse.ExceededDepth, perr.Kind)
		assert.Equal(t, parse.DefaultMaxDepth, perr.Offset)
	})

	t.Run("configured limit", func(t *testing.T) {
		mustParse(t, `[[[]]]`, parse.WithMaxDepth(3))
		perr := parseErr(t, `[[[[]]]]`, parse.WithMaxDepth(3))
		assert.Equal(t, parse.ExceededDepth, perr.Kind)

		// Mixed containers count uniformly.
		perr = parseErr(t, `{"a":[{"b":1}]}`, parse.WithMaxDepth(2))
		assert.Equal(t, parse.ExceededDepth, perr.Kind)
	})
}

func TestParse_BOM(t *testing.T) {
	v, err := parse.Bytes([]byte("\xEF\xBB\xBF{\"a\":1}"))
	require.NoError(t, err)
	assert.True(t, v.IsObject())

	// A BOM anywhere else is just an invalid or unexpected byte.
	_, err = parse.Bytes([]byte("{}\xEF\xBB\xBF"))
	require.Error(t, err)
}

func TestParse_Reader(t *testing.T) {
	v, err := parse.Reader(strings.NewReader(`[1,2,3]`))
	require.NoError(t, err)
	arr, err := v.AsArray()
	require.NoError(t, err)
	assert.Equal(t, 3, arr.Len())

	t.Run("read failure is surfaced", func(t *testing.T) {
		boom := errors.New("disk on fire")
		_, err := parse.Reader(&failingReader{err: boom})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("errors carry the reader source", func(t *testing.T) {
		_, err := parse.Reader(strings.NewReader(`{`))
		var perr *parse.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "<reader>", perr.Source.String())
	})
}

func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ok":true}`), 0o644))

	v, err := parse.File(path)
	require.NoError(t, err)
	ok, err := v.Resolve(value.Root().Key("ok")).AsBool()
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("missing file", func(t *testing.T) {
		_, err := parse.File(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("errors carry the file source", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"k":}`), 0o644))
		_, err := parse.File(bad)
		var perr *parse.ParseError
		require.ErrorAs(t, err, &perr)
		assert.True(t, perr.Source.IsFilePath())
		assert.Contains(t, perr.Error(), "bad.json")
	})
}

func TestParse_Deterministic(t *testing.T) {
	const input = `{"a":[1,2.5,{"k":null}],"a":true}`
	first := mustParse(t, input)
	for i := 0; i < 3; i++ {
		assert.True(t, mustParse(t, input).Equal(first))
	}

	_, err1 := parse.String(`[1,`)
	_, err2 := parse.String(`[1,`)
	assert.Equal(t, err1, err2, "same input must produce the same error")
}

func TestParse_FloatRoundsExactly(t *testing.T) {
	v := mustParse(t, `2.2250738585072011e-308`)
	n, err := v.AsNumber()
	require.NoError(t, err)
	assert.Equal(t, 2.2250738585072011e-308, n.Float64())

	// Underflow rounds towards zero rather than failing.
	v = mustParse(t, `1e-999`)
	n, err = v.AsNumber()
	require.NoError(t, err)
	assert.Equal(t, 0.0, math.Abs(n.Float64()))
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

type rejectingConsumer struct{ nullConsumer }

func (c *rejectingConsumer) Bool(bool) error { return errors.New("no booleans today") }

// nullConsumer accepts everything; embed it to override single methods.
type nullConsumer struct{}

func (nullConsumer) BeginObject() error          { return nil }
func (nullConsumer) Key(string) error            { return nil }
func (nullConsumer) EndObject() error            { return nil }
func (nullConsumer) BeginArray() error           { return nil }
func (nullConsumer) EndArray() error             { return nil }
func (nullConsumer) Null() error                 { return nil }
func (nullConsumer) Bool(bool) error             { return nil }
func (nullConsumer) Number(value.Number) error   { return nil }
func (nullConsumer) String(string) error         { return nil }

func TestInto(t *testing.T) {
	t.Run("events arrive in order", func(t *testing.T) {
		var rec recordingConsumer
		require.NoError(t, parse.Into([]byte(`{"a":[1,true]}`), &rec))
		assert.Equal(t,
			[]string{"begin-object", "key a", "begin-array", "number 1", "bool true", "end-array", "end-object"},
			rec.calls)
	})

	t.Run("consumer error aborts verbatim", func(t *testing.T) {
		err := parse.Into([]byte(`[true]`), &rejectingConsumer{})
		require.EqualError(t, err, "no booleans today")
	})
}

type recordingConsumer struct {
	nullConsumer
	calls []string
}

func (c *recordingConsumer) BeginObject() error { c.calls = append(c.calls, "begin-object"); return nil }
func (c *recordingConsumer) EndObject() error   { c.calls = append(c.calls, "end-object"); return nil }
func (c *recordingConsumer) BeginArray() error  { c.calls = append(c.calls, "begin-array"); return nil }
func (c *recordingConsumer) EndArray() error    { c.calls = append(c.calls, "end-array"); return nil }
func (c *recordingConsumer) Key(k string) error { c.calls = append(c.calls, "key "+k); return nil }
func (c *recordingConsumer) Bool(b bool) error {
	if b {
		c.calls = append(c.calls, "bool true")
	} else {
		c.calls = append(c.calls, "bool false")
	}
	return nil
}
func (c *recordingConsumer) Number(n value.Number) error {
	c.calls = append(c.calls, "number "+n.String())
	return nil
}

func TestParse_InputNotRetained(t *testing.T) {
	data := []byte(`{"k":"v"}`)
	v, err := parse.Bytes(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 'x'
	}
	s, err := v.Resolve(value.Root().Key("k")).AsString()
	require.NoError(t, err)
	assert.Equal(t, "v", s, "parsed strings must not alias the input buffer")
}

func TestParse_WhitespaceHandling(t *testing.T) {
	// Only the four JSON whitespace bytes are whitespace.
	mustParse(t, " \t\r\n[ 1 ,\t2 ]\r\n")
	perr := parseErr(t, "\v1")
	assert.Equal(t, parse.UnexpectedByte, perr.Kind)
	assert.Equal(t, 0, perr.Offset)
}
