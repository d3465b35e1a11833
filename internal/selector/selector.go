// Package selector resolves exactly one catalog entry to act on. It
// tries, in order: an initial query that narrows the catalog to a single
// candidate, delegation to an external fuzzy-finder binary, and a
// built-in line-oriented prompt loop. Sessions are single-threaded and
// blocking; a cancelled or failed session ends without retry.
package selector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/fuzzy"
)

// InterruptCode is the cancellation code reported when the user aborts
// the manual prompt with an interrupt or by closing stdin. It matches
// the code external finders report after SIGINT.
const InterruptCode = 130

// ErrEmptyCatalog is returned when there is nothing to select from.
var ErrEmptyCatalog = errors.New("nothing to select from")

// ProtocolError reports an external finder that exited successfully but
// printed an identifier not present in the catalog. Distinct from
// cancellation: the finder misbehaved, the user did not abort.
type ProtocolError struct {
	Finder string
	ID     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s returned unknown identifier %q", e.Finder, e.ID)
}

// Result is the terminal outcome of one selection session. Entry is set
// when a candidate was resolved; otherwise the session was cancelled and
// Code carries the exit-code-like signal for the caller to forward.
type Result struct {
	Entry *catalog.Entry
	Code  int
}

// Resolved reports whether the session produced a candidate.
func (r Result) Resolved() bool {
	return r.Entry != nil
}

// Options configures a selection session.
type Options struct {
	// Query optionally pre-filters candidates. When it matches exactly
	// one entry the session resolves immediately without prompting.
	Query string

	// Finder names the external fuzzy-finder binary. Empty means
	// "fzf"; "none" disables delegation.
	Finder string

	// Header describes the selection to the user, shown above the
	// external finder's list and before the manual prompt.
	Header string

	// In, Out, and Err override the prompt loop's streams. They
	// default to the process's stdin, stdout, and stderr.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Select resolves one entry from the catalog. It returns ErrEmptyCatalog
// for an empty catalog, a ProtocolError when the external finder
// misbehaves, and otherwise a Result holding either the resolved entry
// or a cancellation code.
func Select(cat *catalog.Catalog, opts Options) (Result, error) {
	if cat.Len() == 0 {
		return Result{}, ErrEmptyCatalog
	}

	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	if opts.Query != "" {
		if matched := fuzzy.Filter(opts.Query, cat); len(matched) == 1 {
			entry := matched[0]
			return Result{Entry: &entry}, nil
		}
	}

	if res, handled, err := delegateToFinder(cat, opts); handled || err != nil {
		return res, err
	}

	return runPrompt(cat, opts)
}
