package utils

import (
	"fmt"
	"time"

	"github.com/mkessler-dev/habitkit/internal/constants"
	"github.com/mkessler-dev/habitkit/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" or empty means the system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone. This is
// the single place the wall clock is read; everything downstream takes the
// resulting instant as an explicit parameter.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// NowFromSettings returns the current time in the timezone from settings.
func NowFromSettings(settings models.Settings) (time.Time, error) {
	return NowInTimezone(settings.Timezone)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in the
// specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
