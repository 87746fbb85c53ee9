package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkessler-dev/habitkit/internal/constants"
	"github.com/mkessler-dev/habitkit/internal/period"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Periodicity period.Periodicity `json:"periodicity"`
	Goal        int                `json:"goal"` // target completions per period
	CreatedAt   time.Time          `json:"created_at"`
	ArchivedAt  *time.Time         `json:"archived_at,omitempty"`
}

// Validate checks that the habit is well-formed before it is stored.
func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if !h.Periodicity.Valid() {
		return fmt.Errorf("invalid periodicity %q", h.Periodicity)
	}
	if h.Periodicity == period.Weekly {
		if h.Goal < constants.MinWeeklyGoal || h.Goal > constants.MaxWeeklyGoal {
			return fmt.Errorf("weekly goal must be between %d and %d",
				constants.MinWeeklyGoal, constants.MaxWeeklyGoal)
		}
	}
	return nil
}

// NormalizeGoal returns the goal that should actually be stored. Daily
// habits always carry the fixed daily goal; weekly habits take the supplied
// value, defaulting to the minimum when none was given.
func NormalizeGoal(p period.Periodicity, goal int) int {
	if p == period.Daily {
		return constants.DefaultDailyGoal
	}
	if goal == 0 {
		return constants.MinWeeklyGoal
	}
	return goal
}
