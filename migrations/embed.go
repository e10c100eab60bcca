// Package migrations holds the forward-only SQL schema, applied in version order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
