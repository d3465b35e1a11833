package scripts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// manifestName is the optional per-project description file inside the
// scripts directory: a flat mapping of script name to a one-line
// description shown in listings.
const manifestName = "manifest.yaml"

func loadManifest(dir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", manifestName, err)
	}

	descriptions := make(map[string]string)
	if err := yaml.Unmarshal(data, &descriptions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifestName, err)
	}
	return descriptions, nil
}
