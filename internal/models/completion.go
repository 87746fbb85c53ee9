package models

import "time"

// Completion is a single logged completion event for a habit. Rows are
// append-only; they are never edited, and deleting a habit removes its
// completions with it.
type Completion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
	Note        string    `json:"note,omitempty"`
}
