package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkessler-dev/habitkit/internal/cli"
	"github.com/mkessler-dev/habitkit/internal/keyring"
	"github.com/mkessler-dev/habitkit/internal/storage/postgres"
)

// SetConnectionCmd stores the PostgreSQL connection string in the OS keyring.
type SetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *SetConnectionCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// The keyring is encrypted, so embedded credentials are
			// acceptable here, unlike on the command line.
			fmt.Println("Note: the connection string carries credentials; it will live only in the OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	fmt.Println("habitkit will now use PostgreSQL without the --config flag.")
	return nil
}

// ClearConnectionCmd removes the stored connection string.
type ClearConnectionCmd struct{}

func (cmd *ClearConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("Connection string deleted from OS keyring.")
	return nil
}

// StatusCmd reports keyring availability and whether credentials are stored.
type StatusCmd struct{}

func (cmd *StatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available on this system")
	}
	fmt.Println("OS keyring is available.")

	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Printf("Stored connection: %s\n", maskPassword(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("No connection string stored, using SQLite.")
	default:
		return fmt.Errorf("failed to read keyring: %w", err)
	}
	return nil
}

func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		var masked []string
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}
