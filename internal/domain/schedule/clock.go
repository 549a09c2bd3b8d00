package schedule

import (
	"errors"
	"strings"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ErrNotFound is returned by stores when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ParseClock parses a "15:04" time-of-day. The returned value carries the
// zero date, so clock values are directly comparable with Before/After.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}

func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DayOfWeek maps a "2006-01-02" date to the uppercase day name used to key
// availability windows ("MONDAY".."SUNDAY").
func DayOfWeek(date string) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(d.Weekday().String()), nil
}
