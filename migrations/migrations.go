// Package migrations embeds the versioned SQL schema files for both storage
// backends. The sqlite and postgres subdirectories hold parallel migration
// sequences; internal/migration applies whichever matches the active store.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
