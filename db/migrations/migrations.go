package migrations

import "embed"

// FS embeds the SQL migrations of the creative library schema. They are
// applied through golang-migrate's iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 2
