package migrations

import "embed"

// FS contains embedded SQLite migrations for atelier storage.
//
//go:embed *.sql
var FS embed.FS
