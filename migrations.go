// Package popdash holds the embedded database migrations of the population
// dashboard.
package popdash

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
