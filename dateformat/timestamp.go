package dateformat

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// maxMillis bounds the representable range: 100,000,000 days either side of
// the epoch. Anything further out is an invalid timestamp.
const maxMillis int64 = 8_640_000_000_000_000

// Timestamp is a count of milliseconds since the Unix epoch. The zero value
// is invalid and stands for an unparseable date.
type Timestamp struct {
	ms    int64
	valid bool
}

// Epoch is what an absent date parameter resolves to.
var Epoch = FromMillis(0)

func FromMillis(ms int64) Timestamp {
	if ms > maxMillis || ms < -maxMillis {
		return Timestamp{}
	}
	return Timestamp{ms: ms, valid: true}
}

func FromTime(t time.Time) Timestamp {
	return FromMillis(t.UnixMilli())
}

func InvalidTimestamp() Timestamp {
	return Timestamp{}
}

func (ts Timestamp) Valid() bool {
	return ts.valid
}

// Millis returns the millisecond count and whether ts is valid.
func (ts Timestamp) Millis() (int64, bool) {
	return ts.ms, ts.valid
}

// ISO date forms without a time are midnight UTC.
var utcDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// ISO date-time forms without a zone are wall-clock time in the local zone.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// Parse reads a free-form date/time string. It never fails: input that cannot
// be read yields an invalid Timestamp.
func Parse(s string, loc *time.Location) Timestamp {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return InvalidTimestamp()
	}

	for _, layout := range utcDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FromTime(t)
		}
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return FromTime(t)
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}

	// dateparse reads long digit runs as Unix time; a date string never is.
	if len(s) > 4 && isDigits(s) {
		return InvalidTimestamp()
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return InvalidTimestamp()
	}
	return FromTime(t)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
