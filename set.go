package docinventory

import "sort"

// Set is a value-deduplicated collection of strings.
// The zero value is an empty, read-only set; use NewSet before calling Add.
type Set map[string]struct{}

// NewSet returns a set holding the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the values in ascending lexicographic order.
// It never returns nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
