package db

import "embed"

// Migrations holds the per-service SQL schema migrations. Each service
// owns its own database, so each subdirectory is applied independently.
//
//go:embed migrations
var Migrations embed.FS
