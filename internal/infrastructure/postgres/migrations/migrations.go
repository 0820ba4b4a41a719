// Package migrations embebe las migraciones SQL de goose en el binario para
// que el esquema se aplique en el arranque sin tooling externo.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
