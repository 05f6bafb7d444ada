// Package migrations embeds the goose SQL migrations so that the server, the
// migrate tool and the repository tests all apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
