package value

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarEquality(t *testing.T) {
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.False(t, Bool(true).Equal(Bool(false)))
	assert.True(t, Int(5).Equal(Int(5)))
	assert.False(t, Int(5).Equal(Int(6)))
	assert.True(t, Long(5).Equal(Long(5)))
	assert.True(t, String("hi").Equal(String("hi")))
	assert.False(t, String("hi").Equal(String("bye")))

	// equality is strict across kinds, even numerically equal ones
	assert.False(t, Int(5).Equal(Long(5)))
	assert.False(t, Float(1).Equal(Double(1)))
	assert.False(t, Bool(true).Equal(Int(1)))
}

func TestDecimalEquality(t *testing.T) {
	a, err := DecimalFromString("12.30")
	require.NoError(t, err)
	b, err := DecimalFromString("12.3")
	require.NoError(t, err)

	// trailing zeros do not affect value equality
	assert.True(t, a.Equal(b))

	c := NewDecimal(decimal.NewFromInt(12))
	assert.False(t, a.Equal(c))
}

func TestTemporalParsing(t *testing.T) {
	d, err := DateFromString("1970-01-02")
	require.NoError(t, err)
	assert.Equal(t, Date(1), d)
	assert.Equal(t, "1970-01-02", d.String())

	tm, err := TimeFromString("00:00:01")
	require.NoError(t, err)
	assert.Equal(t, Time(1_000_000), tm)
	assert.Equal(t, "00:00:01", tm.String())

	tm, err = TimeFromString("10:15:30.000500")
	require.NoError(t, err)
	assert.Equal(t, "10:15:30.0005", tm.String())

	ts, err := TimestampFromString("1970-01-01T00:00:01")
	require.NoError(t, err)
	assert.Equal(t, Timestamp(1_000_000), ts)
	assert.Equal(t, "1970-01-01T00:00:01", ts.String())
	assert.Equal(t, "1970-01-01T00:00:01+00:00", ts.Format(true))

	// zone-aware text normalizes to UTC
	ts, err = TimestampFromString("1970-01-01T01:00:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, Timestamp(0), ts)

	_, err = DateFromString("not a date")
	assert.Error(t, err)
	_, err = TimestampFromString("2024-13-45")
	assert.Error(t, err)
}

func TestBytesAndUUID(t *testing.T) {
	b, err := BytesFromString("AQID")
	require.NoError(t, err)
	assert.Equal(t, Bytes([]byte{1, 2, 3}), b)
	assert.Equal(t, "AQID", b.String())
	assert.True(t, b.Equal(Bytes([]byte{1, 2, 3})))
	assert.False(t, b.Equal(Bytes([]byte{1, 2})))

	id := uuid.MustParse("f79c3e09-677c-4bbd-a479-3f349cb785e7")
	u, err := UUIDFromString(id.String())
	require.NoError(t, err)
	assert.Equal(t, UUID(id), u)
	assert.Equal(t, id.String(), u.String())

	_, err = UUIDFromString("nope")
	assert.Error(t, err)
}

func TestContainerEquality(t *testing.T) {
	l1 := NewList(Int(1), String("x"))
	l2 := NewList(Int(1), String("x"))
	l3 := NewList(String("x"), Int(1))
	assert.True(t, l1.Equal(l2))
	// lists are order sensitive
	assert.False(t, l1.Equal(l3))
	assert.False(t, l1.Equal(NewList(Int(1))))

	d1 := NewDict(map[string]Value{"a": Int(1), "b": String("x")})
	d2 := NewDict(map[string]Value{"b": String("x"), "a": Int(1)})
	assert.True(t, d1.Equal(d2))
	assert.False(t, d1.Equal(NewDict(map[string]Value{"a": Int(1)})))
	assert.False(t, d1.Equal(NewDict(map[string]Value{"a": Int(2), "b": String("x")})))
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewList(Int(1))
	d := NewDict(map[string]Value{"l": inner})
	clone := d.Clone().(Dict)

	// mutating the clone's backing list must not show through
	clone["l"].(List)[0] = Int(9)
	assert.Equal(t, Int(1), d["l"].(List)[0])
}

func TestStringForms(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "123", Int(123).String())
	assert.Equal(t, "1.5", Double(1.5).String())
	assert.Equal(t, `"x"`, String("x").String())
	assert.Equal(t, `[1, "x"]`, NewList(Int(1), String("x")).String())
	assert.Equal(t, `{a: 1, b: "x"}`, NewDict(map[string]Value{"b": String("x"), "a": Int(1)}).String())
}
