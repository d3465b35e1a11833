// Package slugs provides slugification for generated script filenames.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Filename converts a human title to a file-safe slug.
func Filename(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}
