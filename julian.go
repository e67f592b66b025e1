package astrochart

import (
	"time"

	"github.com/thurmanmarka/astrochart/internal/timeutil"
)

// JulianDate returns the Julian day number of t.
func JulianDate(t time.Time) float64 {
	return timeutil.JulianDay(t)
}

// TimeFromJulianDate converts a Julian day number to a UTC instant with
// millisecond precision.
func TimeFromJulianDate(jd float64) time.Time {
	return timeutil.FromJulianDay(jd)
}
