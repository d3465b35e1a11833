// Package catalog defines the selectable-entry model shared by the
// interactive front-ends. A catalog is built once per invocation by its
// supplier (command registry, script scan, docs index) and stays
// immutable for the duration of one selection session.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single selectable candidate.
type Entry struct {
	// ID uniquely identifies the entry within one catalog. It is the
	// stable comparison key: exact-identifier shortcuts and the final
	// ranking tie-break both use it.
	ID string

	// Primary is the display name, always shown.
	Primary string

	// Secondary is optional context shown alongside Primary: a
	// command's help text or a script's project-relative path. Empty
	// is fine; it still participates in matching.
	Secondary string
}

// Fields returns the entry's searchable text fields in display order.
func (e Entry) Fields() []string {
	return []string{e.Primary, e.Secondary}
}

// Display formats the entry as "primary  (secondary)".
func (e Entry) Display() string {
	if e.Secondary == "" {
		return e.Primary
	}
	return fmt.Sprintf("%s  (%s)", e.Primary, e.Secondary)
}

// Catalog is an immutable, ordered set of entries with unique IDs.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New builds a catalog from entries, preserving their order.
// Entries with empty or duplicate identifiers are rejected.
func New(entries []Entry) (*Catalog, error) {
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty identifier", i)
		}
		if prev, ok := byID[e.ID]; ok {
			return nil, fmt.Errorf("duplicate identifier %q (entries %d and %d)", e.ID, prev, i)
		}
		byID[e.ID] = i
	}
	return &Catalog{
		entries: append([]Entry(nil), entries...),
		byID:    byID,
	}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in catalog order. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Lookup finds an entry by its exact identifier.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// SortByID orders entries case-insensitively by identifier, the display
// order used for command catalogs.
func SortByID(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a := strings.ToLower(entries[i].ID)
		b := strings.ToLower(entries[j].ID)
		if a != b {
			return a < b
		}
		return entries[i].ID < entries[j].ID
	})
}
