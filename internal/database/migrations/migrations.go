// Package migrations embeds the schema migration files so a binary (or a
// test) can bring any store up to date without shipping loose SQL files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
