package selector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/fuzzy"
	"github.com/flowtool/flow/internal/ui"
)

// displayLimit caps how many candidates the prompt lists. Entries beyond
// the limit stay selectable by typing their exact identifier.
const displayLimit = 10

// promptInterrupts installs the interrupt watch for one prompt session
// and returns the channel plus a teardown func. Swapped in tests.
var promptInterrupts = func() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch, func() { signal.Stop(ch) }
}

type lineRead struct {
	text string
	err  error
}

// runPrompt drives the built-in fallback REPL: list up to displayLimit
// candidates, read one line, and either resolve (number, exact
// identifier, empty input on a single candidate) or re-filter the full
// catalog with the line as a new query. Recoverable conditions (invalid
// index, no matches) never escape the loop; only resolution and
// cancellation do.
func runPrompt(cat *catalog.Catalog, opts Options) (Result, error) {
	// The goroutine closes lines once input is exhausted so the loop
	// still observes EOF after a final unterminated line is consumed.
	lines := make(chan lineRead)
	go func() {
		defer close(lines)
		r := bufio.NewReader(opts.In)
		for {
			text, err := r.ReadString('\n')
			lines <- lineRead{text: text, err: err}
			if err != nil {
				return
			}
		}
	}()

	interrupts, stop := promptInterrupts()
	defer stop()

	loop := &promptLoop{
		catalog:    cat,
		remaining:  fuzzy.Filter(opts.Query, cat),
		lastQuery:  opts.Query,
		lines:      lines,
		interrupts: interrupts,
		out:        opts.Out,
		errOut:     opts.Err,
		header:     opts.Header,
	}
	return loop.run(), nil
}

type promptLoop struct {
	catalog   *catalog.Catalog
	remaining []catalog.Entry
	lastQuery string

	lines      <-chan lineRead
	interrupts <-chan os.Signal
	out        io.Writer
	errOut     io.Writer
	header     string
}

func (p *promptLoop) run() Result {
	if p.header != "" {
		fmt.Fprintln(p.out, ui.Header(p.header))
	}

	for {
		p.display()

		input, ok := p.readLine()
		if !ok {
			fmt.Fprintln(p.errOut)
			return Result{Code: InterruptCode}
		}

		switch {
		case input == "":
			if len(p.remaining) == 1 {
				entry := p.remaining[0]
				return Result{Entry: &entry}
			}
			// Ambiguous; re-prompt with no state change.

		case isAllDigits(input):
			shown := len(p.remaining)
			if shown > displayLimit {
				shown = displayLimit
			}
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > shown {
				fmt.Fprintln(p.errOut, "Invalid selection. Try again.")
				continue
			}
			entry := p.remaining[n-1]
			return Result{Entry: &entry}

		default:
			// Exact identifiers resolve against the entire catalog,
			// bypassing the current filter.
			if entry, ok := p.catalog.Lookup(input); ok {
				return Result{Entry: &entry}
			}
			p.lastQuery = input
			p.remaining = fuzzy.Filter(input, p.catalog)
		}
	}
}

func (p *promptLoop) display() {
	if len(p.remaining) == 0 {
		notice := fmt.Sprintf("No matches for %q.", p.lastQuery)
		if suggestion, ok := nearestID(p.lastQuery, p.catalog); ok {
			notice += fmt.Sprintf(" Did you mean %q?", suggestion)
		}
		fmt.Fprintln(p.errOut, notice)
		return
	}

	shown := len(p.remaining)
	if shown > displayLimit {
		shown = displayLimit
	}
	for i, entry := range p.remaining[:shown] {
		line := entry.Primary
		if entry.Secondary != "" {
			line += "  " + ui.Hint("("+entry.Secondary+")")
		}
		fmt.Fprintf(p.out, "%s %s\n", ui.ListIndex(i+1), line)
	}
	if hidden := len(p.remaining) - shown; hidden > 0 {
		fmt.Fprintln(p.out, ui.Hint(fmt.Sprintf("… %d more (type an exact name to select)", hidden)))
	}
}

// readLine blocks until a full line arrives or an interrupt is
// delivered. Interrupts are only observed here, never mid-filter. A
// closed stdin counts as cancellation too.
func (p *promptLoop) readLine() (string, bool) {
	fmt.Fprint(p.out, "Enter number to run, or type a search query (Ctrl+C to cancel): ")

	select {
	case <-p.interrupts:
		return "", false
	case line, ok := <-p.lines:
		if !ok {
			return "", false
		}
		text := strings.TrimSpace(line.text)
		if line.err != nil && text == "" {
			return "", false
		}
		return text, true
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
