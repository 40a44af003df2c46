// Package migrations embeds the schema of the postgres session store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
