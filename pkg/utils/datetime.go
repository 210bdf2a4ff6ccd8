package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/(\d{2}|\d{4})$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// IsValidDate reports whether s is a dd/mm/yy or dd/mm/yyyy calendar date.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsValidTime reports whether s is a 24-hour HH:MM wall-clock time.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// ComposeDateTime merges a dd/mm/yy[yy] date and an HH:MM time into a single
// naive timestamp. Two-digit years are expanded by prefixing the century
// ("24" -> 2024). No timezone conversion happens; the value is a plain wall
// clock reading pinned to a fixed reference location.
func ComposeDateTime(date, timeOfDay string) (time.Time, error) {
	if !IsValidDate(date) {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	if !IsValidTime(timeOfDay) {
		return time.Time{}, fmt.Errorf("invalid time %q", timeOfDay)
	}

	dateParts := strings.Split(date, "/")
	day, _ := strconv.Atoi(dateParts[0])
	month, _ := strconv.Atoi(dateParts[1])
	yearStr := dateParts[2]
	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}
	year, _ := strconv.Atoi(yearStr)

	timeParts := strings.Split(timeOfDay, ":")
	hour, _ := strconv.Atoi(timeParts[0])
	minute, _ := strconv.Atoi(timeParts[1])

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), nil
}

// FormatDate renders the calendar-date component of a stored timestamp back
// into the dd/mm/yyyy wire form, for recomposition on partial updates.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime renders the time-of-day component of a stored timestamp back
// into the HH:MM wire form.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
