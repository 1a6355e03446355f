// Package keywords turns free text into a weighted keyword map using
// fixed term dictionaries and n-gram phrase discovery.
package keywords

import (
	"strings"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// Map is an insertion-ordered keyword map. Keys are lower-cased on
// insertion so that job-description and resume maps compare with
// consistent casing. Iteration order is deterministic: entries come
// back in the order they were first added.
type Map struct {
	index   map[string]int
	entries []types.KeywordEntry
}

// NewMap returns an empty keyword map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// PutIfAbsent adds an entry unless its keyword is already present.
// Returns true if the entry was added. The keyword is lower-cased.
func (m *Map) PutIfAbsent(entry types.KeywordEntry) bool {
	key := strings.ToLower(entry.Keyword)
	if _, ok := m.index[key]; ok {
		return false
	}
	entry.Keyword = key
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry)
	return true
}

// Get returns the entry for a keyword (case-insensitive).
func (m *Map) Get(keyword string) (types.KeywordEntry, bool) {
	i, ok := m.index[strings.ToLower(keyword)]
	if !ok {
		return types.KeywordEntry{}, false
	}
	return m.entries[i], true
}

// Has reports whether a keyword is present (case-insensitive).
func (m *Map) Has(keyword string) bool {
	_, ok := m.index[strings.ToLower(keyword)]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns all entries in insertion order. The returned slice
// must not be mutated.
func (m *Map) Entries() []types.KeywordEntry {
	return m.entries
}
