// Package scripts discovers and runs project scripts from a project's
// scripts/ directory.
package scripts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flowtool/flow/internal/catalog"
)

// Dir is the canonical scripts directory name under the project root.
const Dir = "scripts"

// excludedPrefix marks files and directories that are not runnable
// scripts (helpers, partials).
const excludedPrefix = "_"

// cacheDirs are build-cache directories skipped during the scan.
var cacheDirs = map[string]bool{
	"__pycache__": true,
	".cache":      true,
}

// Script is one runnable script file.
type Script struct {
	// Name is the file stem and the selection identifier.
	Name string
	// Path is the absolute file path.
	Path string
	// Rel is the path relative to the project root.
	Rel string
	// Description is an optional one-liner from the manifest.
	Description string
}

// Locate resolves the scripts directory and the project root that
// contains it. An explicit directory (flag or config) wins; otherwise
// the search walks upward from the working directory.
func Locate(explicit string) (root, dir string, err error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", "", err
		}
		return filepath.Dir(abs), abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	root, err = FindRoot(cwd)
	if err != nil {
		return "", "", err
	}
	return root, filepath.Join(root, Dir), nil
}

// Discover scans root/scripts and returns runnable scripts sorted by
// path.
func Discover(root string) ([]Script, error) {
	return DiscoverDir(root, filepath.Join(root, Dir))
}

// DiscoverDir scans dir for runnable scripts, with relative paths
// computed against root. Files with the excluded prefix and anything
// under a cache directory are skipped. A missing directory yields an
// empty result, not an error. When two files share a stem, the first
// in path order wins.
func DiscoverDir(root, dir string) ([]Script, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var found []Script
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, excludedPrefix) || cacheDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, excludedPrefix) || !runnable(path, d) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = append(found, Script{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: path,
			Rel:  filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Rel < found[j].Rel })

	// Duplicate stems would collide as selection identifiers; keep the
	// first in path order.
	seen := make(map[string]bool, len(found))
	unique := found[:0]
	for _, s := range found {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		unique = append(unique, s)
	}

	descriptions, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}
	for i := range unique {
		unique[i].Description = descriptions[unique[i].Name]
	}
	return unique, nil
}

// runnable reports whether the file is something we know how to execute:
// a known interpreter extension, or the executable bit set.
func runnable(path string, d fs.DirEntry) bool {
	if _, ok := interpreters[filepath.Ext(path)]; ok {
		return true
	}
	info, err := d.Info()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// FindRoot walks upward from start looking for a directory containing
// scripts/.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if info, statErr := os.Stat(filepath.Join(dir, Dir)); statErr == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s/ directory found in %s or any parent", Dir, start)
		}
		dir = parent
	}
}

// Entries converts discovered scripts to catalog entries: identifier =
// file stem, secondary label = the manifest description when present,
// the project-relative path otherwise.
func Entries(list []Script) []catalog.Entry {
	entries := make([]catalog.Entry, len(list))
	for i, s := range list {
		secondary := s.Rel
		if s.Description != "" {
			secondary = s.Description
		}
		entries[i] = catalog.Entry{
			ID:        s.Name,
			Primary:   s.Name,
			Secondary: secondary,
		}
	}
	return entries
}
