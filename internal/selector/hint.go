package selector

import (
	"github.com/agnivade/levenshtein"

	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/fuzzy"
)

// nearestID returns the catalog identifier closest to query by edit
// distance over normalized text. Suggestions further than half the
// query length (plus one, so short typos still qualify) are withheld.
func nearestID(query string, cat *catalog.Catalog) (string, bool) {
	q := fuzzy.Normalize(query)
	if q == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, e := range cat.Entries() {
		d := levenshtein.ComputeDistance(q, fuzzy.Normalize(e.ID))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.ID, d
		}
	}

	if bestDist < 0 || bestDist > len(q)/2+1 {
		return "", false
	}
	return best, true
}
