package scripts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateShellSkeleton(t *testing.T) {
	root := t.TempDir()

	script, err := Create(root, "Split MP3", ".sh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Name != "split-mp3" {
		t.Fatalf("expected slugified name, got %q", script.Name)
	}
	if script.Rel != "scripts/split-mp3.sh" {
		t.Fatalf("unexpected rel path: %q", script.Rel)
	}

	data, err := os.ReadFile(script.Path)
	if err != nil {
		t.Fatalf("read skeleton: %v", err)
	}
	if !strings.HasPrefix(string(data), "#!/usr/bin/env sh") {
		t.Fatalf("expected shell shebang, got %q", data)
	}
	if !strings.Contains(string(data), "# Split MP3") {
		t.Fatalf("expected title comment, got %q", data)
	}

	info, err := os.Stat(script.Path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Fatal("expected the skeleton to be executable")
	}
}

func TestCreatePythonSkeleton(t *testing.T) {
	root := t.TempDir()

	script, err := Create(root, "Window Titles", ".py")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(script.Path)
	if err != nil {
		t.Fatalf("read skeleton: %v", err)
	}
	if !strings.HasPrefix(string(data), "#!/usr/bin/env python3") {
		t.Fatalf("expected python shebang, got %q", data)
	}
	if !strings.Contains(string(data), `"""Window Titles"""`) {
		t.Fatalf("expected docstring, got %q", data)
	}
}

func TestCreateRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, Dir, "split-mp3.sh")
	writeFile(t, path, "existing", 0755)

	if _, err := Create(root, "Split MP3", ".sh"); err == nil {
		t.Fatal("expected error for existing script")
	}
}

func TestCreateRejectsUnknownExtension(t *testing.T) {
	if _, err := Create(t.TempDir(), "Anything", ".rb"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
