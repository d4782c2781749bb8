package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// bedtimeRolloverHour is the threshold below which a bedtime is treated as a
// past-midnight continuation of the previous evening. A bedtime of exactly
// 20:00 is NOT rolled; 19:59 rolls to 43.98. The boundary artifact is kept
// on purpose so stored history keeps comparing the same way it always has.
const bedtimeRolloverHour = 20

// ParseTimeOfDay parses an "HH:MM" wall-clock string into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: invalid hour in %q", ErrInvalidInput, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: invalid minute in %q", ErrInvalidInput, s)
	}
	return hour, minute, nil
}

// TimeToNumber converts an "HH:MM" string to a real number of hours since
// midnight, e.g. "07:30" -> 7.5.
func TimeToNumber(s string) (float64, error) {
	hour, minute, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return float64(hour) + float64(minute)/60, nil
}

// NumberToTime converts a number of hours back to "HH:MM", rounding to the
// nearest minute. Values at or above 24 wrap around midnight for display.
func NumberToTime(n float64) string {
	totalMinutes := int(math.Round(n * 60))
	hour := totalMinutes / 60
	minute := totalMinutes % 60
	if hour >= 24 {
		hour -= 24
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// BedtimeToNumber converts a bedtime string to hours on a scale that orders
// overnight bedtimes correctly: times before the rollover hour are shifted by
// 24 so 23:30 (23.5) sorts before 02:00 (26.0).
func BedtimeToNumber(s string) (float64, error) {
	n, err := TimeToNumber(s)
	if err != nil {
		return 0, err
	}
	if n < bedtimeRolloverHour {
		return n + 24, nil
	}
	return n, nil
}

// ComputeSleepDuration returns the hours slept between bedtime and wake-up,
// rounded to one decimal, or nil when either input is missing. A wake time
// numerically before the bedtime means the wake happened the next calendar
// day. Implausible results are returned as computed; validation belongs to
// the caller.
func ComputeSleepDuration(bedtime, wakeUpTime *string) *float64 {
	if bedtime == nil || wakeUpTime == nil {
		return nil
	}

	bedHour, bedMin, err := ParseTimeOfDay(*bedtime)
	if err != nil {
		return nil
	}
	wakeHour, wakeMin, err := ParseTimeOfDay(*wakeUpTime)
	if err != nil {
		return nil
	}

	bedMinutes := bedHour*60 + bedMin
	wakeMinutes := wakeHour*60 + wakeMin
	if wakeMinutes < bedMinutes {
		wakeMinutes += 24 * 60
	}

	duration := math.Round(float64(wakeMinutes-bedMinutes)/60*10) / 10
	return &duration
}
