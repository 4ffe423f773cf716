// Package migrations embeds the goose migrations that create the identity
// store schema the bridge reads. Production stores are owned elsewhere; the
// schema is applied for development databases and tests.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
