package scripts

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandFor(t *testing.T) {
	root := t.TempDir()
	exe := filepath.Join(root, "deploy")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name   string
		script Script
		want   []string
		ok     bool
	}{
		{
			name:   "python",
			script: Script{Name: "split_mp3", Path: "/p/scripts/split_mp3.py", Rel: "scripts/split_mp3.py"},
			want:   []string{"python3", "/p/scripts/split_mp3.py"},
			ok:     true,
		},
		{
			name:   "shell",
			script: Script{Name: "backup", Path: "/p/scripts/backup.sh", Rel: "scripts/backup.sh"},
			want:   []string{"sh", "/p/scripts/backup.sh"},
			ok:     true,
		},
		{
			name:   "executable",
			script: Script{Name: "deploy", Path: exe, Rel: "scripts/deploy"},
			want:   []string{exe},
			ok:     true,
		},
		{
			name:   "unknown",
			script: Script{Name: "notes", Path: "/p/scripts/notes.txt", Rel: "scripts/notes.txt"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			argv, err := commandFor(tt.script)
			if tt.ok != (err == nil) {
				t.Fatalf("expected ok=%v, got err=%v", tt.ok, err)
			}
			if err != nil {
				return
			}
			if len(argv) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, argv)
			}
			for i := range tt.want {
				if argv[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, argv)
				}
			}
		})
	}
}

func TestRunBuildsSubprocess(t *testing.T) {
	prev := runCommand
	t.Cleanup(func() { runCommand = prev })

	var captured *exec.Cmd
	runCommand = func(cmd *exec.Cmd) error {
		captured = cmd
		return nil
	}

	script := Script{Name: "backup", Path: "/p/scripts/backup.sh", Rel: "scripts/backup.sh"}
	code, err := Run(script, "/p", []string{"--fast", "target dir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if captured == nil {
		t.Fatal("expected the subprocess to be started")
	}
	if captured.Dir != "/p" {
		t.Fatalf("expected project root as cwd, got %q", captured.Dir)
	}
	got := strings.Join(captured.Args, " ")
	if !strings.HasSuffix(got, "/p/scripts/backup.sh --fast target dir") {
		t.Fatalf("unexpected argv: %v", captured.Args)
	}
}

func TestRunUnknownInterpreter(t *testing.T) {
	script := Script{Name: "notes", Path: "/p/scripts/notes.txt", Rel: "scripts/notes.txt"}
	code, err := Run(script, "/p", nil)
	if err == nil {
		t.Fatal("expected error for unknown interpreter")
	}
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
}
