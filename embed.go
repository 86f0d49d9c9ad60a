package flowtrack

import "embed"

// Migrations holds the SQL migration files applied by the migrate command and
// the storage test suite.
//
//go:embed migrations/*.sql
var Migrations embed.FS
