package reminder

import (
	"errors"
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in       string
		value    int
		unit     IntervalUnit
		duration time.Duration
	}{
		{"1m", 1, UnitMinute, time.Minute},
		{"10m", 10, UnitMinute, 10 * time.Minute},
		{"90m", 90, UnitMinute, 90 * time.Minute},
		{"010m", 10, UnitMinute, 10 * time.Minute}, // leading zeros are digits, the grammar allows them
		{"2h", 2, UnitHour, 2 * time.Hour},
		{"23h", 23, UnitHour, 23 * time.Hour},
		{"1d", 1, UnitDay, 24 * time.Hour},
		{"7d", 7, UnitDay, 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseInterval(tt.in)
		if err != nil {
			t.Errorf("ParseInterval(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got.Value != tt.value || got.Unit != tt.unit || got.Duration != tt.duration {
			t.Errorf("ParseInterval(%q) = %+v, want value=%d unit=%s duration=%s",
				tt.in, got, tt.value, tt.unit, tt.duration)
		}
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	inputs := []string{
		"",
		"10",     // missing unit
		"m",      // missing value
		"10s",    // unsupported unit
		"10M",    // wrong case
		"1.5h",   // decimals
		"-10m",   // negative
		"0m",     // zero value
		"0h",     // zero value
		" 10m",   // leading whitespace
		"10m ",   // trailing whitespace
		"10m10m", // extra characters
	}
	for _, in := range inputs {
		if _, err := ParseInterval(in); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("ParseInterval(%q) = %v, want ErrInvalidInterval", in, err)
		}
	}
}

func TestIntervalToCron(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{time.Minute, "*/1 * * * *"},
		{90 * time.Second, "*/1 * * * *"}, // sub-minute remainder discarded
		{10 * time.Minute, "*/10 * * * *"},
		{59 * time.Minute, "*/59 * * * *"},
		{time.Hour, "0 */1 * * *"},
		{90 * time.Minute, "0 */1 * * *"},
		{2 * time.Hour, "0 */2 * * *"},
		{23 * time.Hour, "0 */23 * * *"},
		{24 * time.Hour, "0 0 */1 * *"},
		{36 * time.Hour, "0 0 */1 * *"}, // partial day floors down
		{3 * 24 * time.Hour, "0 0 */3 * *"},
	}
	for _, tt := range tests {
		if got := IntervalToCron(tt.in); got != tt.want {
			t.Errorf("IntervalToCron(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
