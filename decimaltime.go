// Package decimaltime converts between conventional calendar timestamps and
// "decimal time": a year, a 1-based ordinal day within that year, and the
// elapsed fraction of the day as a value in [0.0, 1.0).
//
// A DecimalTime and a time.Time denote the same physical instant under two
// representations. The conversion functions here are the only defined mapping
// between them and are mutual inverses up to microsecond resolution.
//
// All calendar arithmetic (leap years, day-of-year numbering, field
// validation) is delegated to the standard time package; nothing in this
// package carries its own month or leap-year tables.
package decimaltime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Microsecond resolution matches the precision the fraction arithmetic works
// at. A day holds 86,400,000,000 microseconds.
const microsPerDay = 86_400 * 1_000_000

// Conversion failure sentinels. Errors returned by this package wrap one of
// these; match with errors.Is.
var (
	// ErrInvalidTimestamp reports calendar components that do not form a
	// valid date or time of day (month 13, February 30, hour 25, ...).
	ErrInvalidTimestamp = errors.New("decimaltime: invalid calendar timestamp")

	// ErrInvalidDecimalTime reports a DecimalTime whose fields cannot be
	// mapped back onto the calendar (day 0, day 366 of a non-leap year,
	// fraction outside [0.0, 1.0)).
	ErrInvalidDecimalTime = errors.New("decimaltime: invalid decimal time")
)

// DecimalTime is a date/time in decimal form.
//
// The zero value is not meaningful (DayOfYear is 1-based); construct values
// with New or one of the From functions. DecimalTime is a plain value type:
// copies are independent and safe to share across goroutines.
type DecimalTime struct {
	// Year is the full proleptic Gregorian year (may be zero or negative).
	Year int

	// DayOfYear is the 1-based ordinal day within Year
	// (1..=365, or 1..=366 in leap years). January 1 is day 1.
	DayOfYear int

	// DecimalDay is the elapsed fraction of the day in [0.0, 1.0).
	// 0.0 is midnight, 0.5 is noon.
	DecimalDay float64
}

// New builds a DecimalTime from its raw fields. No validation is performed;
// out-of-range values surface as ErrInvalidDecimalTime when the value is
// converted back to a calendar timestamp.
func New(year, dayOfYear int, decimalDay float64) DecimalTime {
	return DecimalTime{
		Year:       year,
		DayOfYear:  dayOfYear,
		DecimalDay: decimalDay,
	}
}

// FromTime converts a calendar timestamp to decimal form.
//
// The wall-clock fields of t are read in t's own location; no timezone
// conversion happens here. Callers holding a non-UTC instant that should be
// interpreted as UTC must use FromTimeUTC instead.
func FromTime(t time.Time) DecimalTime {
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	micros := int64(secs)*1_000_000 + int64(t.Nanosecond())/1_000

	return DecimalTime{
		Year:       t.Year(),
		DayOfYear:  t.YearDay(),
		DecimalDay: float64(micros) / microsPerDay,
	}
}

// FromTimeUTC normalizes t to UTC and converts the resulting calendar fields
// to decimal form. The timezone tag is discarded after normalization.
func FromTimeUTC(t time.Time) DecimalTime {
	return FromTime(t.UTC())
}

// FromDate validates the given calendar components and converts them to
// decimal form. Validation is delegated to time.Date: the components are
// rejected with ErrInvalidTimestamp when time.Date has to normalize them
// (February 30 becoming March 1, and so on).
func FromDate(year int, month time.Month, day, hour, min, sec, nsec int) (DecimalTime, error) {
	t := time.Date(year, month, day, hour, min, sec, nsec, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec ||
		t.Nanosecond() != nsec {
		return DecimalTime{}, fmt.Errorf("%w: %d-%02d-%02d %02d:%02d:%02d.%09d",
			ErrInvalidTimestamp, year, month, day, hour, min, sec, nsec)
	}
	return FromTime(t), nil
}

// Now returns the current local time in decimal form.
func Now() DecimalTime {
	return FromTime(time.Now())
}

// Time converts the DecimalTime back to a calendar timestamp tagged with loc.
// The tag is attached as-is; no timezone shifting is performed.
//
// It fails with ErrInvalidDecimalTime when DayOfYear is zero or exceeds the
// number of days in Year, or when DecimalDay lies outside [0.0, 1.0).
// A DecimalDay of exactly 1.0 is rejected rather than normalized into the
// next day.
//
// The time of day is reconstructed by rounding DecimalDay to the nearest
// microsecond. Round-to-nearest keeps round-trip drift below half a
// microsecond; a rounding result that would cross midnight is capped at the
// final microsecond of the day.
func (d DecimalTime) Time(loc *time.Location) (time.Time, error) {
	if d.DayOfYear < 1 {
		return time.Time{}, fmt.Errorf("%w: day_of_year %d is not 1-based",
			ErrInvalidDecimalTime, d.DayOfYear)
	}
	if days := daysInYear(d.Year); d.DayOfYear > days {
		return time.Time{}, fmt.Errorf("%w: day_of_year %d exceeds %d days in year %d",
			ErrInvalidDecimalTime, d.DayOfYear, days, d.Year)
	}
	if d.DecimalDay < 0.0 || d.DecimalDay >= 1.0 {
		return time.Time{}, fmt.Errorf("%w: decimal_day %v outside [0.0, 1.0)",
			ErrInvalidDecimalTime, d.DecimalDay)
	}

	micros := int64(math.Round(d.DecimalDay * microsPerDay))
	if micros >= microsPerDay {
		// A fraction just under 1.0 can round up to a full day. The value
		// still belongs to the current day, so pin it to its last microsecond.
		micros = microsPerDay - 1
	}

	secs := int(micros / 1_000_000)
	nsec := int(micros%1_000_000) * 1_000

	// Build the wall clock in a single time.Date call: January DayOfYear
	// normalizes to the ordinal date, and the clock fields stay wall-clock
	// fields. Adding an absolute duration instead would shift the clock in
	// locations that change their UTC offset mid-year.
	return time.Date(d.Year, time.January, d.DayOfYear,
		secs/3600, secs/60%60, secs%60, nsec, loc), nil
}

// UTC converts the DecimalTime back to a UTC-tagged calendar timestamp.
// See Time for the validation and rounding rules.
func (d DecimalTime) UTC() (time.Time, error) {
	return d.Time(time.UTC)
}

// String renders the value as "%Y.%d %f", e.g. "2025.073 0.5".
func (d DecimalTime) String() string {
	return d.Format(DefaultLayout)
}

// daysInYear returns 365 or 366, letting the time package apply the
// Gregorian leap-year rule.
func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
