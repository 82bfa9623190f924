package helper

import (
	"fmt"
	"regexp"
	"strconv"
)

// SlotInterval is the booking granularity in minutes.
const SlotInterval = 30

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts a 24-hour "H:MM" or "HH:MM" string to minutes after midnight.
func ParseClock(value string) (int, error) {
	m := clockPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock rewrites "9:30" as "09:30". Invalid input is returned unchanged.
func NormalizeClock(value string) string {
	minutes, err := ParseClock(value)
	if err != nil {
		return value
	}
	return FormatClock(minutes)
}

// GenerateTimeSlots returns slot start times stepping SlotInterval minutes over [open, close).
// It never wraps past midnight, and yields nothing when open >= close or either bound is malformed.
func GenerateTimeSlots(open, close string) []string {
	openMinutes, err := ParseClock(open)
	if err != nil {
		return []string{}
	}
	closeMinutes, err := ParseClock(close)
	if err != nil {
		return []string{}
	}

	slots := []string{}
	for t := openMinutes; t < closeMinutes; t += SlotInterval {
		slots = append(slots, FormatClock(t))
	}
	return slots
}

// IsTimeWithinHours reports open <= t < close.
func IsTimeWithinHours(t, open, close string) bool {
	req, err := ParseClock(t)
	if err != nil {
		return false
	}
	o, err := ParseClock(open)
	if err != nil {
		return false
	}
	c, err := ParseClock(close)
	if err != nil {
		return false
	}
	return req >= o && req < c
}

// IsSlotAligned reports whether t falls on the slot grid that starts at open.
func IsSlotAligned(t, open string) bool {
	req, err := ParseClock(t)
	if err != nil {
		return false
	}
	o, err := ParseClock(open)
	if err != nil {
		return false
	}
	return req >= o && (req-o)%SlotInterval == 0
}
