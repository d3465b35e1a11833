package selector

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/flowtool/flow/internal/catalog"
)

func testCatalog(t *testing.T, entries ...catalog.Entry) *catalog.Catalog {
	t.Helper()
	if len(entries) == 0 {
		entries = []catalog.Entry{
			{ID: "hello", Primary: "hello", Secondary: "Say hello"},
			{ID: "build", Primary: "build", Secondary: "Build project"},
			{ID: "bundle", Primary: "bundle", Secondary: "Bundle assets"},
		}
	}
	cat, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cat
}

// withoutFinder makes the external finder unresolvable.
func withoutFinder(t *testing.T) {
	t.Helper()
	prev := finderLookPath
	t.Cleanup(func() { finderLookPath = prev })
	finderLookPath = func(string) (string, error) {
		return "", exec.ErrNotFound
	}
}

// withFinder installs a fake finder process: interactive terminals, a
// resolvable binary, and run as the subprocess behavior.
func withFinder(t *testing.T, run func(cat *catalog.Catalog, opts Options) (string, int, error)) {
	t.Helper()
	prevLook := finderLookPath
	prevIn := finderStdinIsTerminal
	prevOut := finderStdoutIsTerminal
	prevRun := finderRun
	t.Cleanup(func() {
		finderLookPath = prevLook
		finderStdinIsTerminal = prevIn
		finderStdoutIsTerminal = prevOut
		finderRun = prevRun
	})

	finderLookPath = func(string) (string, error) { return "/usr/local/bin/fzf", nil }
	finderStdinIsTerminal = func() bool { return true }
	finderStdoutIsTerminal = func() bool { return true }
	finderRun = func(_ string, cat *catalog.Catalog, opts Options) (string, int, error) {
		return run(cat, opts)
	}
}

func TestSelectEmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out, errOut strings.Builder
	_, err = Select(cat, Options{In: strings.NewReader("1\n"), Out: &out, Err: &errOut})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompting, got %q", out.String())
	}
}

func TestSelectUniqueQueryResolvesWithoutPrompting(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		t.Fatal("finder must not run for a unique query")
		return "", 0, nil
	})

	var out strings.Builder
	res, err := Select(testCatalog(t), Options{Query: "bnd", Out: &out, Err: &out, In: strings.NewReader("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Resolved() || res.Entry.ID != "bundle" {
		t.Fatalf("expected bundle, got %+v", res)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompting, got %q", out.String())
	}
}

func TestSelectFinderEmptyOutputIsCleanCancel(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		return "", 0, nil
	})

	res, err := Select(testCatalog(t), Options{In: strings.NewReader("1\n")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Resolved() {
		t.Fatalf("expected cancellation, got %+v", res)
	}
	if res.Code != 0 {
		t.Fatalf("expected code 0, got %d", res.Code)
	}
}

func TestSelectFinderNonZeroExitPropagatesCode(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		return "", 130, nil
	})

	res, err := Select(testCatalog(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Resolved() || res.Code != 130 {
		t.Fatalf("expected Cancelled(130), got %+v", res)
	}
}

func TestSelectFinderSelection(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		return "build\tBuild project\n", 0, nil
	})

	res, err := Select(testCatalog(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Resolved() || res.Entry.ID != "build" {
		t.Fatalf("expected build, got %+v", res)
	}
}

func TestSelectFinderUnknownIdentifierIsProtocolError(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		return "ghost\twhatever\n", 0, nil
	})

	_, err := Select(testCatalog(t), Options{})
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
	if protoErr.ID != "ghost" {
		t.Fatalf("expected offending identifier, got %q", protoErr.ID)
	}
}

func TestSelectFallsBackToPromptWhenFinderMissing(t *testing.T) {
	withoutFinder(t)

	var out, errOut strings.Builder
	res, err := Select(testCatalog(t), Options{
		In:  strings.NewReader("2\n"),
		Out: &out,
		Err: &errOut,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Resolved() || res.Entry.ID != "build" {
		t.Fatalf("expected build via manual prompt, got %+v", res)
	}
}

func TestSelectSkipsFinderWithoutTerminal(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		t.Fatal("finder must not run without a terminal")
		return "", 0, nil
	})
	prev := finderStdinIsTerminal
	t.Cleanup(func() { finderStdinIsTerminal = prev })
	finderStdinIsTerminal = func() bool { return false }

	var out, errOut strings.Builder
	res, err := Select(testCatalog(t), Options{
		In:  strings.NewReader("1\n"),
		Out: &out,
		Err: &errOut,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Resolved() || res.Entry.ID != "hello" {
		t.Fatalf("expected hello via manual prompt, got %+v", res)
	}
}

func TestSelectFinderDisabledByName(t *testing.T) {
	withFinder(t, func(*catalog.Catalog, Options) (string, int, error) {
		t.Fatal("finder must not run when disabled")
		return "", 0, nil
	})

	var out, errOut strings.Builder
	res, err := Select(testCatalog(t), Options{
		Finder: "none",
		In:     strings.NewReader("1\n"),
		Out:    &out,
		Err:    &errOut,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Resolved() || res.Entry.ID != "hello" {
		t.Fatalf("expected hello via manual prompt, got %+v", res)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "build\tBuild project\nextra\n", want: "build\tBuild project"},
		{input: "  build  \n", want: "build"},
		{input: "\n\n", want: ""},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := firstLine(tt.input); got != tt.want {
			t.Fatalf("firstLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
