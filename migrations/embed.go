// Package migrations embeds the goose SQL migrations so the server can
// bring the schema up at start without external tooling.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
