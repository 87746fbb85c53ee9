package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

const habitColumns = "id, name, description, periodicity, goal, created_at, archived_at"

func (s *Store) AddHabit(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, periodicity, goal, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, string(habit.Periodicity),
		habit.Goal, habit.CreatedAt.Format(time.RFC3339), nullableTime(habit.ArchivedAt))
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE name = ?", name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE habits
		SET name = ?, description = ?, periodicity = ?, goal = ?, archived_at = ?
		WHERE id = ?`,
		habit.Name, habit.Description, string(habit.Periodicity), habit.Goal,
		nullableTime(habit.ArchivedAt), habit.ID)
	if err != nil {
		return err
	}
	return requireRow(res, habit.ID)
}

func (s *Store) ArchiveHabit(id string) error {
	res, err := s.db.Exec("UPDATE habits SET archived_at = ? WHERE id = ?",
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (s *Store) UnarchiveHabit(id string) error {
	res, err := s.db.Exec("UPDATE habits SET archived_at = NULL WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (s *Store) DeleteHabit(id string) error {
	// Completions go with the habit via ON DELETE CASCADE
	res, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var periodicity, createdAt string
	var archivedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.Description, &periodicity, &h.Goal, &createdAt, &archivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit: %w", storage.ErrNotFound)
		}
		return models.Habit{}, err
	}

	h.Periodicity = period.Periodicity(periodicity)
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		h.ArchivedAt = &t
	}

	return h, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
