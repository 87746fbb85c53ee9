package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

func (s *Store) AddCompletion(c models.Completion) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, completed_at, note)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.HabitID, c.CompletedAt.Format(time.RFC3339), c.Note)
	return err
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, completed_at, note
		FROM completions WHERE habit_id = ?
		ORDER BY completed_at ASC`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) GetLastCompletion(habitID string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, completed_at, note
		FROM completions WHERE habit_id = ?
		ORDER BY completed_at DESC LIMIT 1`, habitID)
	return scanCompletion(row)
}

func scanCompletion(row rowScanner) (models.Completion, error) {
	var c models.Completion
	var completedAt string

	err := row.Scan(&c.ID, &c.HabitID, &completedAt, &c.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Completion{}, fmt.Errorf("completion: %w", storage.ErrNotFound)
		}
		return models.Completion{}, err
	}

	c.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse completed_at: %w", err)
	}
	return c, nil
}
