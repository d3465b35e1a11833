package scripts

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// interpreters maps script extensions to the interpreter that runs them.
// Files with an executable bit and no known extension run directly.
var interpreters = map[string]string{
	".py": "python3",
	".sh": "sh",
}

var runCommand = func(cmd *exec.Cmd) error { return cmd.Run() }

// Run executes the script as a subprocess with the project root as the
// working directory and the caller's stdio attached. It blocks until
// the script exits and returns the script's exit code.
func Run(s Script, root string, args []string) (int, error) {
	argv, err := commandFor(s)
	if err != nil {
		return 1, err
	}
	argv = append(argv, args...)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := runCommand(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("run %s: %w", s.Rel, err)
	}
	return 0, nil
}

// commandFor builds the argv prefix for a script: interpreter by
// extension first, direct execution for executables.
func commandFor(s Script) ([]string, error) {
	if interp, ok := interpreters[filepath.Ext(s.Path)]; ok {
		return []string{interp, s.Path}, nil
	}
	if info, err := os.Stat(s.Path); err == nil && info.Mode().Perm()&0111 != 0 {
		return []string{s.Path}, nil
	}
	return nil, fmt.Errorf("no interpreter known for %s", s.Rel)
}
