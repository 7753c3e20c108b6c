package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveStrings(t *testing.T) {
	cases := map[string]Type{
		"boolean":      BooleanType{},
		"int":          IntType{},
		"long":         LongType{},
		"float":        FloatType{},
		"double":       DoubleType{},
		"date":         DateType{},
		"time":         TimeType{},
		"timestamp":    TimestampType{},
		"timestamptz":  TimestampType{WithZone: true},
		"string":       StringType{},
		"uuid":         UUIDType{},
		"binary":       BinaryType{},
		"decimal(9,2)": DecimalTypeOf(9, 2),
		"fixed[16]":    FixedTypeOf(16),
	}
	for text, expected := range cases {
		assert.Equal(t, text, expected.String())
		parsed, err := FromPrimitiveString(text)
		require.NoError(t, err, text)
		assert.True(t, Equal(expected, parsed), text)
	}
}

func TestFromPrimitiveStringRejectsUnknown(t *testing.T) {
	for _, text := range []string{"varchar", "struct", "decimal(9)", "fixed", "fixed[]", ""} {
		_, err := FromPrimitiveString(text)
		assert.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrInvalidSchema), text)
	}
}

func TestStructTypeOfRejectsDuplicateIDs(t *testing.T) {
	_, err := StructTypeOf(
		Required(1, "a", IntType{}),
		Optional(1, "b", StringType{}),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestStructFieldLookup(t *testing.T) {
	st, err := StructTypeOf(
		Required(1, "a", IntType{}),
		Optional(2, "b", StringType{}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Len())

	f, ok := st.Field("b")
	assert.True(t, ok)
	assert.Equal(t, int32(2), f.ID)

	_, ok = st.Field("B")
	assert.False(t, ok, "struct lookup is exact, case folding happens at the schema level")
}

func TestEqualIsStructural(t *testing.T) {
	a, err := StructTypeOf(
		Required(1, "a", IntType{}),
		Optional(2, "b", StringType{}),
	)
	require.NoError(t, err)

	// field order does not change a struct's identity
	b, err := StructTypeOf(
		Optional(2, "b", StringType{}),
		Required(1, "a", IntType{}),
	)
	require.NoError(t, err)
	assert.True(t, Equal(a, b))

	// a changed name does
	c, err := StructTypeOf(
		Required(1, "a2", IntType{}),
		Optional(2, "b", StringType{}),
	)
	require.NoError(t, err)
	assert.False(t, Equal(a, c))

	// a changed required flag does
	d, err := StructTypeOf(
		Optional(1, "a", IntType{}),
		Optional(2, "b", StringType{}),
	)
	require.NoError(t, err)
	assert.False(t, Equal(a, d))
}

func TestEqualNested(t *testing.T) {
	list1 := ListTypeOf(3, StringType{}, true)
	list2 := ListTypeOf(3, StringType{}, true)
	list3 := ListTypeOf(4, StringType{}, true)
	assert.True(t, Equal(list1, list2))
	assert.False(t, Equal(list1, list3))
	assert.False(t, Equal(list1, ListTypeOf(3, StringType{}, false)))

	map1 := MapTypeOf(5, StringType{}, 6, IntType{}, false)
	map2 := MapTypeOf(5, StringType{}, 6, IntType{}, false)
	assert.True(t, Equal(map1, map2))
	assert.False(t, Equal(map1, MapTypeOf(5, StringType{}, 6, LongType{}, false)))
	assert.False(t, Equal(map1, list1))

	assert.False(t, Equal(DecimalTypeOf(9, 2), DecimalTypeOf(9, 3)))
	assert.False(t, Equal(FixedTypeOf(8), FixedTypeOf(16)))
	assert.False(t, Equal(TimestampType{}, TimestampType{WithZone: true}))
}

func TestTypeRendering(t *testing.T) {
	st, err := StructTypeOf(Required(1, "a", IntType{}))
	require.NoError(t, err)
	assert.Equal(t, "struct<1: a: required int>", st.String())
	assert.Equal(t, "list<string>", ListTypeOf(2, StringType{}, true).String())
	assert.Equal(t, "map<string, int>", MapTypeOf(3, StringType{}, 4, IntType{}, true).String())
}
