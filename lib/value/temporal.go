package value

import (
	"fmt"
	"time"
)

const microsPerSecond = int64(time.Second / time.Microsecond)

// Date counts days since 1970-01-01.
type Date int32

func DateOf(t time.Time) Date {
	utc := t.UTC()
	days := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC).Unix() / (24 * 60 * 60)
	return Date(days)
}

func DateFromString(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, fmt.Errorf("can not parse date from '%s': %v", s, err)
	}
	return DateOf(t), nil
}

func (d Date) isValue() {}
func (d Date) Equal(v Value) bool {
	other, ok := v.(Date)
	return ok && other == d
}
func (d Date) String() string {
	return time.Unix(int64(d)*24*60*60, 0).UTC().Format("2006-01-02")
}
func (d Date) Clone() Value {
	return d
}

// Time counts microseconds since midnight.
type Time int64

func TimeFromString(s string) (Time, error) {
	t, err := time.Parse("15:04:05.999999", s)
	if err != nil {
		return 0, fmt.Errorf("can not parse time from '%s': %v", s, err)
	}
	micros := int64(t.Hour())*3600*microsPerSecond +
		int64(t.Minute())*60*microsPerSecond +
		int64(t.Second())*microsPerSecond +
		int64(t.Nanosecond())/1000
	return Time(micros), nil
}

func (t Time) isValue() {}
func (t Time) Equal(v Value) bool {
	other, ok := v.(Time)
	return ok && other == t
}
func (t Time) String() string {
	base := time.Unix(int64(t)/microsPerSecond, (int64(t)%microsPerSecond)*1000).UTC()
	if int64(t)%microsPerSecond == 0 {
		return base.Format("15:04:05")
	}
	return base.Format("15:04:05.999999")
}
func (t Time) Clone() Value {
	return t
}

// Timestamp counts microseconds since the unix epoch. Whether the column is
// zone-aware lives on the type, not here; timestamptz values are normalized
// to UTC before construction.
type Timestamp int64

func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UTC().UnixMicro())
}

func TimestampFromString(s string) (Timestamp, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999Z07:00",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimestampOf(t), nil
		}
	}
	return 0, fmt.Errorf("can not parse timestamp from '%s'", s)
}

func (ts Timestamp) isValue() {}
func (ts Timestamp) Equal(v Value) bool {
	other, ok := v.(Timestamp)
	return ok && other == ts
}
func (ts Timestamp) String() string {
	return ts.Format(false)
}

// Format renders the ISO-8601 text form; zone-aware values carry an explicit
// UTC offset suffix.
func (ts Timestamp) Format(withZone bool) string {
	t := time.UnixMicro(int64(ts)).UTC()
	layout := "2006-01-02T15:04:05"
	if int64(ts)%microsPerSecond != 0 {
		layout = "2006-01-02T15:04:05.999999"
	}
	if withZone {
		return t.Format(layout) + "+00:00"
	}
	return t.Format(layout)
}
func (ts Timestamp) Clone() Value {
	return ts
}
