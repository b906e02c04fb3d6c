// Package migrations embeds the SQL schema migrations applied at start-up.
package migrations

import "embed"

// FS holds the golang-migrate formatted *.up.sql / *.down.sql files.
//
//go:embed *.sql
var FS embed.FS
