package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenodaguirguis/iceberg/lib/types"
	"github.com/shenodaguirguis/iceberg/lib/value"
)

func roundTrip(t *testing.T, s *Schema) *Schema {
	t.Helper()
	text, err := ToJSON(s)
	require.NoError(t, err)
	parsed, err := FromJSON([]byte(text))
	require.NoError(t, err)
	assert.True(t, Same(s, parsed), "round trip changed the schema:\n%s", text)
	return parsed
}

func TestJSONFlatSchema(t *testing.T) {
	s, err := New(
		types.Required(1, "id", types.LongType{}),
		types.Optional(2, "data", types.StringType{}).WithDoc("payload"),
	)
	require.NoError(t, err)

	text, err := ToJSON(s)
	require.NoError(t, err)
	expected := `{"type":"struct","fields":[` +
		`{"id":1,"name":"id","required":true,"type":"long"},` +
		`{"id":2,"name":"data","required":false,"type":"string","doc":"payload"}]}`
	assert.Equal(t, expected, text)

	parsed, err := FromJSON([]byte(text))
	require.NoError(t, err)
	assert.True(t, Same(s, parsed))

	// docs survive the trip
	f, ok := parsed.FindFieldByID(2)
	require.True(t, ok)
	assert.Equal(t, "payload", f.Doc)
}

func TestJSONDeeplyNested(t *testing.T) {
	// depth 3: struct -> list -> map -> struct
	leaf, err := types.StructTypeOf(
		types.Required(10, "x", types.DoubleType{}),
		types.Optional(11, "y", types.TimestampType{WithZone: true}),
	)
	require.NoError(t, err)
	inner := types.MapTypeOf(8, types.StringType{}, 9, leaf, false)
	middle := types.ListTypeOf(7, inner, true)
	s, err := New(
		types.Required(1, "id", types.LongType{}),
		types.Optional(2, "events", middle),
		types.Optional(3, "fp", types.FixedTypeOf(16)),
		types.Optional(4, "ratio", types.DecimalTypeOf(18, 4)),
	)
	require.NoError(t, err)
	parsed := roundTrip(t, s)

	f, ok := parsed.FindFieldByID(10)
	require.True(t, ok)
	assert.Equal(t, "x", f.Name)

	f, ok = parsed.FindFieldByID(4)
	require.True(t, ok)
	assert.True(t, types.Equal(types.DecimalTypeOf(18, 4), f.Type))
}

func TestJSONPrimitiveDefaults(t *testing.T) {
	dec, err := value.DecimalFromString("12.34")
	require.NoError(t, err)
	date, err := value.DateFromString("2024-03-05")
	require.NoError(t, err)
	ts, err := value.TimestampFromString("2024-03-05T10:15:30")
	require.NoError(t, err)
	u, err := value.UUIDFromString("f79c3e09-677c-4bbd-a479-3f349cb785e7")
	require.NoError(t, err)

	s, err := New(
		types.Optional(1, "b", types.BooleanType{}).WithDefault(value.Bool(true)),
		types.Optional(2, "i", types.IntType{}).WithDefault(value.Int(123)),
		types.Optional(3, "l", types.LongType{}).WithDefault(value.Long(1<<40)),
		types.Optional(4, "f", types.FloatType{}).WithDefault(value.Float(1.5)),
		types.Optional(5, "d", types.DoubleType{}).WithDefault(value.Double(-2.25)),
		types.Optional(6, "dec", types.DecimalTypeOf(9, 2)).WithDefault(dec),
		types.Optional(7, "day", types.DateType{}).WithDefault(date),
		types.Optional(8, "t", types.TimeType{}).WithDefault(value.Time(3_600_000_000)),
		types.Optional(9, "ts", types.TimestampType{}).WithDefault(ts),
		types.Optional(10, "tstz", types.TimestampType{WithZone: true}).WithDefault(ts),
		types.Optional(11, "s", types.StringType{}).WithDefault(value.String("hello")),
		types.Optional(12, "u", types.UUIDType{}).WithDefault(u),
		types.Optional(13, "fx", types.FixedTypeOf(3)).WithDefault(value.Bytes([]byte{1, 2, 3})),
		types.Optional(14, "bin", types.BinaryType{}).WithDefault(value.Bytes([]byte{9, 8})),
	)
	require.NoError(t, err)
	parsed := roundTrip(t, s)

	// spot-check a few decoded defaults beyond structural equality
	f, _ := parsed.FindFieldByID(6)
	def, ok := f.Default.Get()
	require.True(t, ok)
	assert.True(t, def.Equal(dec))

	f, _ = parsed.FindFieldByID(13)
	def, ok = f.Default.Get()
	require.True(t, ok)
	assert.True(t, def.Equal(value.Bytes([]byte{1, 2, 3})))

	f, _ = parsed.FindFieldByID(11)
	def, ok = f.Default.Get()
	require.True(t, ok)
	assert.True(t, def.Equal(value.String("hello")))
}

func TestJSONListDefaultStaysASequence(t *testing.T) {
	s, err := New(
		types.Optional(5, "tags", types.ListTypeOf(6, types.StringType{}, true)).
			WithDefault(value.NewList(value.String("x"), value.String("y"))),
	)
	require.NoError(t, err)

	text, err := ToJSON(s)
	require.NoError(t, err)
	// the default is one JSON string holding a JSON document
	assert.Contains(t, text, `"default":"[\"x\",\"y\"]"`)

	parsed, err := FromJSON([]byte(text))
	require.NoError(t, err)
	f, ok := parsed.FindFieldByID(5)
	require.True(t, ok)
	def, ok := f.Default.Get()
	require.True(t, ok)
	assert.True(t, def.Equal(value.NewList(value.String("x"), value.String("y"))),
		"expected an ordered sequence, got %s", def)
}

func TestJSONStructAndMapDefaults(t *testing.T) {
	point, err := types.StructTypeOf(
		types.Required(3, "x", types.IntType{}),
		types.Required(4, "y", types.IntType{}),
	)
	require.NoError(t, err)
	s, err := New(
		types.Optional(1, "origin", point).WithDefault(
			value.NewDict(map[string]value.Value{"x": value.Int(1), "y": value.Int(2)})),
		types.Optional(5, "counts", types.MapTypeOf(6, types.StringType{}, 7, types.LongType{}, true)).
			WithDefault(value.NewDict(map[string]value.Value{"a": value.Long(1), "b": value.Long(2)})),
		types.Optional(8, "points", types.ListTypeOf(9, point, true)).
			WithDefault(value.NewList(
				value.NewDict(map[string]value.Value{"x": value.Int(3), "y": value.Int(4)}))),
	)
	require.NoError(t, err)
	parsed := roundTrip(t, s)

	f, _ := parsed.FindFieldByID(8)
	def, ok := f.Default.Get()
	require.True(t, ok)
	list, isList := def.(value.List)
	require.True(t, isList)
	require.Len(t, list, 1)
	assert.True(t, list[0].Equal(value.NewDict(map[string]value.Value{"x": value.Int(3), "y": value.Int(4)})))
}

func TestJSONParseErrors(t *testing.T) {
	cases := map[string]string{
		"not json at all":       `what even is this`,
		"root not struct":       `"long"`,
		"unknown discriminator": `{"type":"union","fields":[]}`,
		"unknown primitive":     `{"type":"struct","fields":[{"id":1,"name":"a","required":true,"type":"varchar"}]}`,
		"field not an object":   `{"type":"struct","fields":[17]}`,
		"missing id":            `{"type":"struct","fields":[{"name":"a","required":true,"type":"int"}]}`,
		"missing name":          `{"type":"struct","fields":[{"id":1,"required":true,"type":"int"}]}`,
		"missing required":      `{"type":"struct","fields":[{"id":1,"name":"a","type":"int"}]}`,
		"missing element":       `{"type":"struct","fields":[{"id":1,"name":"a","required":true,"type":{"type":"list","element-id":2,"element-required":true}}]}`,
		"non-string default":    `{"type":"struct","fields":[{"id":1,"name":"a","required":false,"type":"int","default":5}]}`,
		"default wrong shape":   `{"type":"struct","fields":[{"id":1,"name":"a","required":false,"type":{"type":"list","element-id":2,"element":"int","element-required":true},"default":"{\"a\":1}"}]}`,
		"default bad leaf kind": `{"type":"struct","fields":[{"id":1,"name":"a","required":false,"type":{"type":"list","element-id":2,"element":"int","element-required":true},"default":"[\"x\"]"}]}`,
	}
	for name, text := range cases {
		_, err := FromJSON([]byte(text))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrParse), "%s: %v", name, err)
	}
}

func TestJSONDuplicateIDsFailAsInvalidSchema(t *testing.T) {
	text := `{"type":"struct","fields":[` +
		`{"id":1,"name":"a","required":true,"type":"int"},` +
		`{"id":1,"name":"b","required":true,"type":"int"}]}`
	_, err := FromJSON([]byte(text))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidSchema))
}
