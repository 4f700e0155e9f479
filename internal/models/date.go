package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a month/day/year date such as "6/1/2023", "06/01/2023"
// or "6/1/23". Each part is read as a plain integer, so a short year is taken
// literally ("23" is the year 23).
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	invalid := fmt.Errorf("date %q is not a valid month/day/year date", value)

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return time.Time{}, invalid
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, invalid
		}
		nums[i] = n
	}
	month, day, year := nums[0], nums[1], nums[2]
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, invalid
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow such as February 30.
	if date.Day() != day {
		return time.Time{}, invalid
	}
	return date, nil
}

// FormatDate renders a date as month/day/year without zero padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
