// Package orderedset provides a string set that remembers insertion order.
// The classifiers rely on it to deduplicate findings while keeping the
// relative order of first occurrence.
package orderedset

// Set is an insertion-ordered string set. The zero value is not usable;
// construct one with New.
type Set struct {
	seen  map[string]struct{}
	items []string
}

// New returns an empty Set.
func New() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add inserts item unless it is already present. It reports whether the
// item was newly added.
func (s *Set) Add(item string) bool {
	if _, ok := s.seen[item]; ok {
		return false
	}

	s.seen[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// AddAll inserts every item in order, skipping duplicates.
func (s *Set) AddAll(items []string) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains reports whether item is in the set.
func (s *Set) Contains(item string) bool {
	_, ok := s.seen[item]
	return ok
}

// Len returns the number of distinct items.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the distinct items in first-seen order. The returned slice
// is a copy; mutating it does not affect the set.
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)

	return out
}

// Dedup is a convenience wrapper: it returns items with duplicates removed
// and first-seen order preserved.
func Dedup(items []string) []string {
	s := New()
	s.AddAll(items)

	return s.Items()
}
