package scripts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flowtool/flow/internal/atomicfile"
	"github.com/flowtool/flow/internal/slugs"
)

var skeletons = map[string]string{
	".sh": `#!/usr/bin/env sh
set -eu

# %s
`,
	".py": `#!/usr/bin/env python3
"""%s"""


def main() -> int:
    return 0


if __name__ == "__main__":
    raise SystemExit(main())
`,
}

// Create writes a new executable script skeleton into root/scripts,
// named by slugifying title, and returns it. ext selects the template
// (".sh" or ".py"). Fails if the file already exists.
func Create(root, title, ext string) (Script, error) {
	template, ok := skeletons[ext]
	if !ok {
		return Script{}, fmt.Errorf("no skeleton for %q scripts", ext)
	}

	name := slugs.Filename(title)
	if name == "" {
		return Script{}, fmt.Errorf("title %q produces an empty filename", title)
	}

	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Script{}, fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+ext)
	if _, err := os.Stat(path); err == nil {
		return Script{}, fmt.Errorf("script already exists: %s", path)
	}

	content := fmt.Sprintf(template, title)
	if err := atomicfile.WriteFile(path, []byte(content), 0755); err != nil {
		return Script{}, fmt.Errorf("write %s: %w", path, err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return Script{
		Name: name,
		Path: path,
		Rel:  filepath.ToSlash(rel),
	}, nil
}
