package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrationsFreshDatabase(t *testing.T) {
	migrationsFS := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT);")},
		"002_note.sql": {Data: []byte("ALTER TABLE habits ADD COLUMN note TEXT;")},
	}

	db := testDB(t)
	runner := NewRunner(db, migrationsFS)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Second run is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() second run failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	migrationsFS := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}

	db := testDB(t)
	runner := NewRunner(db, migrationsFS)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() expected error from bad migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 (only the good migration)", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failed migration = %d, want 1", version)
	}
}

func TestReadMigrationFilesValidation(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr bool
	}{
		{
			name: "valid files sorted by version",
			files: fstest.MapFS{
				"002_later.sql": {Data: []byte("SELECT 2;")},
				"001_first.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: false,
		},
		{
			name: "missing name part",
			files: fstest.MapFS{
				"001.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
		{
			name: "non-numeric version",
			files: fstest.MapFS{
				"abc_init.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
		{
			name: "duplicate version",
			files: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"01_b.sql":  {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
		{
			name: "non-sql files ignored",
			files: fstest.MapFS{
				"001_init.sql": {Data: []byte("SELECT 1;")},
				"README.md":    {Data: []byte("docs")},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(testDB(t), tt.files)
			migrations, err := runner.ReadMigrationFiles()
			if tt.wantErr {
				if err == nil {
					t.Error("ReadMigrationFiles() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrationFiles() failed: %v", err)
			}
			for i := 1; i < len(migrations); i++ {
				if migrations[i].Version <= migrations[i-1].Version {
					t.Error("migrations not sorted by version")
				}
			}
		})
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	migrationsFS := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
	}

	db := testDB(t)
	runner := NewRunner(db, migrationsFS)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}

	// Simulate a database touched by a newer release
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() expected error for newer database schema")
	}
}
