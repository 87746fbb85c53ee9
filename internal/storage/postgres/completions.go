package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

func (s *Store) AddCompletion(c models.Completion) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, completed_at, note)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.HabitID, c.CompletedAt, c.Note)
	return err
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, completed_at, note
		FROM completions WHERE habit_id = $1
		ORDER BY completed_at ASC`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.CompletedAt, &c.Note); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) GetLastCompletion(habitID string) (models.Completion, error) {
	var c models.Completion
	err := s.db.QueryRow(`
		SELECT id, habit_id, completed_at, note
		FROM completions WHERE habit_id = $1
		ORDER BY completed_at DESC LIMIT 1`, habitID).
		Scan(&c.ID, &c.HabitID, &c.CompletedAt, &c.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Completion{}, fmt.Errorf("completion: %w", storage.ErrNotFound)
		}
		return models.Completion{}, err
	}
	return c, nil
}
