package reminder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidInterval = errors.New("invalid interval format")

// IntervalUnit is the single-letter unit of a repeat interval.
type IntervalUnit string

const (
	UnitMinute IntervalUnit = "m"
	UnitHour   IntervalUnit = "h"
	UnitDay    IntervalUnit = "d"
)

// ParsedInterval is the canonical form of a repeat interval string.
type ParsedInterval struct {
	Value    int
	Unit     IntervalUnit
	Duration time.Duration
}

// The whole input must be a positive integer followed by one unit letter.
var intervalPattern = regexp.MustCompile(`^(\d+)(m|h|d)$`)

// ParseInterval parses a compact interval token like "10m", "2h" or "1d".
// Anything else, including a zero value, yields ErrInvalidInterval.
func ParseInterval(s string) (*ParsedInterval, error) {
	match := intervalPattern.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	value, err := strconv.Atoi(match[1])
	if err != nil || value <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	unit := IntervalUnit(match[2])
	var d time.Duration
	switch unit {
	case UnitMinute:
		d = time.Duration(value) * time.Minute
	case UnitHour:
		d = time.Duration(value) * time.Hour
	case UnitDay:
		d = time.Duration(value) * 24 * time.Hour
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	return &ParsedInterval{Value: value, Unit: unit, Duration: d}, nil
}

// IntervalToCron translates a duration into a five-field cron expression at
// whole-minute granularity. Sub-minute remainders are discarded, and hour/day
// recurrences fire on hour/day boundaries rather than on an offset from the
// start instant. This quantization is intentional and must stay stable.
func IntervalToCron(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("*/%d * * * *", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("0 */%d * * *", hours)
	}

	days := hours / 24
	return fmt.Sprintf("0 0 */%d * *", days)
}
