package fuzzy

import (
	"testing"

	"github.com/flowtool/flow/internal/catalog"
)

func buildCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Entry{
		{ID: "hello", Primary: "hello", Secondary: "Say hello"},
		{ID: "build", Primary: "build", Secondary: "Build project"},
		{ID: "bundle", Primary: "bundle", Secondary: "Bundle assets"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cat
}

func ids(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func assertIDs(t *testing.T, got []catalog.Entry, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterRanksBySpanThenIdentifier(t *testing.T) {
	cat := buildCatalog(t)

	// Both span 1, start 0: identifier breaks the tie. hello has no
	// 'b' in any field and drops out.
	assertIDs(t, Filter("b", cat), "build", "bundle")
}

func TestFilterExcludesNonSubsequences(t *testing.T) {
	cat := buildCatalog(t)

	// build has no 'n' after its 'b'.
	assertIDs(t, Filter("bnd", cat), "bundle")
}

func TestFilterEmptyQueryPreservesCatalogOrder(t *testing.T) {
	cat := buildCatalog(t)

	assertIDs(t, Filter("", cat), "hello", "build", "bundle")
}

func TestFilterIsIdempotent(t *testing.T) {
	cat := buildCatalog(t)

	first := ids(Filter("l", cat))
	second := ids(Filter("l", cat))
	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical results, got %v then %v", first, second)
		}
	}
}

// Filtering always restarts from the full catalog: a query that would
// be excluded by a previous filter still matches.
func TestFilterRestartsFromFullCatalog(t *testing.T) {
	cat := buildCatalog(t)

	assertIDs(t, Filter("bnd", cat), "bundle")
	// After narrowing to bundle, a query for hello must still work.
	assertIDs(t, Filter("hel", cat), "hello")
}

func TestFilterMatchesSecondaryField(t *testing.T) {
	cat, err := catalog.New([]catalog.Entry{
		{ID: "deploy", Primary: "deploy", Secondary: "Ship assets to production"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, Filter("ship", cat), "deploy")
}
