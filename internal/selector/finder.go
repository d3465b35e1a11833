package selector

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/flowtool/flow/internal/catalog"
)

const defaultFinder = "fzf"

var (
	finderLookPath         = exec.LookPath
	finderStdinIsTerminal  = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	finderStdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
	finderRun              = runFinderProcess
)

// delegateToFinder hands the whole catalog to the external finder when
// one is installed and both ends of the terminal are interactive.
// handled is false when the finder is unavailable; the orchestrator then
// falls back to the manual prompt. Unavailability is a normal condition,
// never an error.
func delegateToFinder(cat *catalog.Catalog, opts Options) (Result, bool, error) {
	name := opts.Finder
	if name == "none" {
		return Result{}, false, nil
	}
	if name == "" {
		name = defaultFinder
	}

	if !finderStdinIsTerminal() || !finderStdoutIsTerminal() {
		return Result{}, false, nil
	}
	path, err := finderLookPath(name)
	if err != nil {
		return Result{}, false, nil
	}

	stdout, code, err := finderRun(path, cat, opts)
	if err != nil {
		return Result{}, true, fmt.Errorf("run %s: %w", name, err)
	}
	if code != 0 {
		// The user cancelled or aborted inside the finder; its exit
		// code becomes the session's cancellation signal.
		return Result{Code: code}, true, nil
	}

	line := firstLine(stdout)
	if line == "" {
		return Result{Code: 0}, true, nil
	}

	id := line
	if tab := strings.IndexByte(line, '\t'); tab >= 0 {
		id = line[:tab]
	}
	entry, ok := cat.Lookup(id)
	if !ok {
		return Result{}, true, &ProtocolError{Finder: name, ID: id}
	}
	return Result{Entry: &entry}, true, nil
}

// runFinderProcess spawns the finder with one tab-separated line per
// entry on stdin, blocks until it exits, and returns its captured
// stdout and exit code. Stdin is fully written and closed before the
// wait; there is no timeout.
func runFinderProcess(path string, cat *catalog.Catalog, opts Options) (string, int, error) {
	args := []string{
		"--height=40%",
		"--layout=reverse",
		"--no-multi",
		"--delimiter=\t",
		"--with-nth=1,2",
	}
	if strings.TrimSpace(opts.Header) != "" {
		args = append(args, "--header", opts.Header)
	}
	if strings.TrimSpace(opts.Query) != "" {
		args = append(args, "--query", opts.Query)
	}

	var input strings.Builder
	for _, e := range cat.Entries() {
		input.WriteString(e.ID)
		input.WriteByte('\t')
		input.WriteString(e.Secondary)
		input.WriteByte('\n')
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader(input.String())
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", exitErr.ExitCode(), nil
		}
		return "", 0, err
	}
	return stdout.String(), 0, nil
}

// firstLine returns the first newline-delimited line, trimmed.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
