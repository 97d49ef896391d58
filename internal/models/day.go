package models

import (
	"fmt"
	"strings"
	"time"
)

// Day is one of the seven fixed weekday tokens
type Day string

const (
	Sun Day = "Sun"
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
)

// Week lists all day tokens in calendar order, Sunday first
var Week = []Day{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

// DayOf maps a time.Weekday to its day token
func DayOf(wd time.Weekday) Day {
	return Week[int(wd)]
}

// ParseDay accepts a weekday name in any casing, abbreviated or full
// ("mon", "Mon", "Monday"), and returns the canonical token.
func ParseDay(s string) (Day, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 3 {
		return "", fmt.Errorf("invalid day: %q", s)
	}
	prefix := strings.ToLower(trimmed[:3])
	for _, d := range Week {
		if strings.ToLower(string(d)) == prefix {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day: %q", s)
}

// ParseDays parses a comma-separated list of weekday names, preserving
// order and dropping duplicates.
func ParseDays(s string) ([]Day, error) {
	var days []Day
	seen := make(map[Day]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDay(part)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}
