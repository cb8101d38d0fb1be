// Package db ships the SQL migrations inside the binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsPath is the directory inside Migrations holding the SQL files.
const MigrationsPath = "migrations"
