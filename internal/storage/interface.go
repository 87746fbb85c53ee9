package storage

import (
	"errors"
	"net/url"
	"strings"

	"github.com/mkessler-dev/habitkit/internal/models"
)

// ErrNotFound is returned by lookups that match no row. Both backends map
// their driver-level "no rows" errors onto it so callers can use errors.Is.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	// DeleteHabit removes the habit and, via the schema's cascade, its
	// entire completion log.
	DeleteHabit(id string) error

	// Completions
	AddCompletion(models.Completion) error
	// GetCompletionsForHabit returns the habit's full log ordered by
	// completion time ascending.
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	GetLastCompletion(habitID string) (models.Completion, error)

	// Utils
	GetConfigPath() string
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Credentials belong in the OS keyring, the environment,
// or .pgpass, never on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") && kv[1] != "" {
			return true
		}
	}
	return false
}
