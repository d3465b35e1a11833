// Package docs bundles long-form Markdown docs with the flow binary.
package docs

import "embed"

//go:embed index.yaml *.md
var FS embed.FS
