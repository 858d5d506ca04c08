package dateformat

import (
	"fmt"
	"strconv"
	"time"
)

// Order is the position of the year relative to the day in a formatted date.
type Order string

const (
	DayFirst  Order = "day_first"  // DD.MM.YYYY HH:MM
	YearFirst Order = "year_first" // YYYY.MM.DD HH:MM
)

// DayBasis selects the calendar the day of month is read from. Month, year,
// hour and minute always come from local time.
type DayBasis string

const (
	DayUTC   DayBasis = "utc"
	DayLocal DayBasis = "local"
)

// invalidToken is what every field of an invalid timestamp renders as.
const invalidToken = "NaN"

type Options struct {
	Order    Order
	DayBasis DayBasis
	// Location is the "local" time zone. Nil means time.Local.
	Location *time.Location
}

// Formatter turns epoch milliseconds into a fixed-width display string.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	order    Order
	dayBasis DayBasis
	loc      *time.Location
}

func New(opts Options) (*Formatter, error) {
	f := &Formatter{order: opts.Order, dayBasis: opts.DayBasis, loc: opts.Location}
	if f.order == "" {
		f.order = DayFirst
	}
	if f.dayBasis == "" {
		f.dayBasis = DayUTC
	}
	if f.loc == nil {
		f.loc = time.Local
	}

	switch f.order {
	case DayFirst, YearFirst:
	default:
		return nil, fmt.Errorf("unknown date order %q", f.order)
	}
	switch f.dayBasis {
	case DayUTC, DayLocal:
	default:
		return nil, fmt.Errorf("unknown day basis %q", f.dayBasis)
	}

	return f, nil
}

func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Format renders ms milliseconds since the Unix epoch.
func (f *Formatter) Format(ms int64) string {
	return f.FormatTimestamp(FromMillis(ms))
}

// FormatTimestamp renders ts. An invalid timestamp does not fail: each field
// becomes NaN and goes through the usual padding, e.g. "0NaN.0NaN.NaN 0NaN:0NaN".
func (f *Formatter) FormatTimestamp(ts Timestamp) string {
	if !ts.valid {
		return f.join(padToken(invalidToken), padToken(invalidToken), invalidToken,
			padToken(invalidToken), padToken(invalidToken))
	}

	t := time.UnixMilli(ts.ms)
	local := t.In(f.loc)

	day := local.Day()
	if f.dayBasis == DayUTC {
		day = t.UTC().Day()
	}

	return f.join(
		pad(day),
		pad(int(local.Month())),
		strconv.Itoa(local.Year()),
		pad(local.Hour()),
		pad(local.Minute()),
	)
}

func (f *Formatter) join(day, month, year, hour, minute string) string {
	if f.order == YearFirst {
		return year + "." + month + "." + day + " " + hour + ":" + minute
	}
	return day + "." + month + "." + year + " " + hour + ":" + minute
}

func pad(v int) string {
	if v > 9 {
		return strconv.Itoa(v)
	}
	return padToken(strconv.Itoa(v))
}

func padToken(s string) string {
	return "0" + s
}
