package timeutil

import (
	"math"
	"time"
)

// unixEpochJD is the Julian day of 1970-01-01 00:00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDay returns the Julian day number for the instant t.
//
// Uses the Meeus calendar formula, valid for Gregorian dates.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// FromJulianDay converts a Julian day number to a UTC instant, rounded to
// the millisecond.
func FromJulianDay(jd float64) time.Time {
	ms := math.Round((jd - unixEpochJD) * 86400000)
	return time.UnixMilli(int64(ms)).UTC()
}

// IsUTC reports whether t carries the UTC location rather than a zone that
// merely happens to have a zero offset.
func IsUTC(t time.Time) bool {
	return t.Location() == time.UTC
}
