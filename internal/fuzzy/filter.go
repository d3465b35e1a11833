package fuzzy

import (
	"sort"

	"github.com/flowtool/flow/internal/catalog"
)

// Match pairs a catalog entry with its best span for one query.
type Match struct {
	Entry catalog.Entry
	Span  Span
}

// Filter scores query against every catalog entry and returns the
// matching entries ranked by (span length, span start, identifier).
// Filtering always starts from the full catalog; results are never
// derived from a previous filter. An empty query matches everything and
// preserves catalog order.
func Filter(query string, c *catalog.Catalog) []catalog.Entry {
	entries := c.Entries()
	if Normalize(query) == "" {
		return entries
	}

	matches := make([]Match, 0, len(entries))
	for _, e := range entries {
		span, ok := Score(query, e.Fields())
		if !ok {
			continue
		}
		matches = append(matches, Match{Entry: e, Span: span})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Span != matches[j].Span {
			return matches[i].Span.Less(matches[j].Span)
		}
		return matches[i].Entry.ID < matches[j].Entry.ID
	})

	ranked := make([]catalog.Entry, len(matches))
	for i, m := range matches {
		ranked[i] = m.Entry
	}
	return ranked
}
