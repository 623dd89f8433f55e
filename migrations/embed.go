// Package migrations contém as migrações SQL do goose, embutidas no binário.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
