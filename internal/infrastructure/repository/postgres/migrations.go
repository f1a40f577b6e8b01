package postgres

import "embed"

// Migrations holds the snapshot schema, read by golang-migrate through iofs.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
