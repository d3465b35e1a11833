package fuzzy

// Span is the minimal substring of a candidate field that contains the
// query as an in-order subsequence. Length is the match score (lower is
// better); Start breaks ties between equal-length spans.
type Span struct {
	Length int
	Start  int
}

// Less orders spans lexicographically by (Length, Start), both ascending.
func (s Span) Less(o Span) bool {
	if s.Length != o.Length {
		return s.Length < o.Length
	}
	return s.Start < o.Start
}

// Score matches query against a candidate's text fields and returns the
// best span across them. ok is false when no field contains the
// normalized query as an ordered subsequence. An empty normalized query
// matches everything with a zero span.
func Score(query string, fields []string) (Span, bool) {
	q := []rune(Normalize(query))
	if len(q) == 0 {
		return Span{}, true
	}

	var best Span
	found := false
	for _, field := range fields {
		span, ok := minimalSpan(q, []rune(Normalize(field)))
		if !ok {
			continue
		}
		if !found || span.Less(best) {
			best = span
			found = true
		}
	}
	return best, found
}

// minimalSpan finds the shortest window of text containing q as an
// ordered subsequence. Greedy forward matching from a fixed start yields
// the earliest possible end for that start, so scanning each viable
// start position gives the global minimum. Starts are visited in
// ascending order, which keeps the earliest span on length ties.
func minimalSpan(q, text []rune) (Span, bool) {
	var best Span
	found := false

	for start := 0; start <= len(text)-len(q); start++ {
		if text[start] != q[0] {
			continue
		}

		qi := 1
		end := start
		for i := start + 1; i < len(text) && qi < len(q); i++ {
			if text[i] == q[qi] {
				qi++
				end = i
			}
		}
		if qi < len(q) {
			// The remaining text could not complete the match;
			// later starts see strictly less of it.
			break
		}

		span := Span{Length: end - start + 1, Start: start}
		if !found || span.Less(best) {
			best = span
			found = true
		}
		if best.Length == len(q) {
			// A contiguous match cannot be beaten.
			break
		}
	}
	return best, found
}
