// Package uniformadmin embeds the console's templates and static files.
package uniformadmin

import "embed"

// In dev mode the router reads these from disk instead.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
