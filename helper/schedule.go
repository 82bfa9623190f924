package helper

import (
	"strings"
	"time"

	"dinebook/constants"
	"dinebook/model"
)

// ParseDate parses a naive calendar date. The result carries no timezone meaning.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(constants.DATE_LAYOUT, date)
}

// DayOfWeek returns the lower-case English weekday of a "YYYY-MM-DD" date.
func DayOfWeek(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(t.Weekday().String()), nil
}

func GetOpeningHours(restaurant *model.Restaurant, dayOfWeek string) *model.DayHours {
	if restaurant == nil {
		return nil
	}
	hours := restaurant.OpeningHours
	switch dayOfWeek {
	case "monday":
		return hours.Monday
	case "tuesday":
		return hours.Tuesday
	case "wednesday":
		return hours.Wednesday
	case "thursday":
		return hours.Thursday
	case "friday":
		return hours.Friday
	case "saturday":
		return hours.Saturday
	case "sunday":
		return hours.Sunday
	}
	return nil
}

// IsClosed is true when the day has no opening window or either bound is empty.
func IsClosed(hours *model.DayHours) bool {
	return hours == nil || strings.TrimSpace(hours.Open) == "" || strings.TrimSpace(hours.Close) == ""
}
