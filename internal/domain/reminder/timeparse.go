package reminder

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // embed zone data so Asia/Seoul loads on hosts without system tzdata
)

var ErrInvalidStartTime = errors.New("invalid start time")

// LocationName is the single fixed timezone all start times and rendered
// timestamps are interpreted in. Callers never supply a timezone.
const LocationName = "Asia/Seoul"

var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(LocationName)
	if err != nil {
		panic(fmt.Sprintf("load location %s: %v", LocationName, err))
	}
	return loc
}

// Location returns the fixed system timezone.
func Location() *time.Location {
	return location
}

// Now returns the current instant in the fixed timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// Layouts accepted for start times, tried in order.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStartTime parses a local date-time string like "2025-12-03T10:00" in
// the fixed timezone. Unparsable input yields ErrInvalidStartTime.
func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, s)
}
