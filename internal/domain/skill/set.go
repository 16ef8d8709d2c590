package skill

import "sort"

// Set is a set of canonical skill phrases (a match set). Membership is what
// matters; Sorted gives a deterministic view for display.
type Set struct {
	items map[string]struct{}
}

// NewSet creates a set holding the given phrases as-is.
func NewSet(phrases ...string) Set {
	s := Set{items: make(map[string]struct{}, len(phrases))}
	for _, p := range phrases {
		s.items[p] = struct{}{}
	}
	return s
}

// Add inserts phrase into the set.
func (s *Set) Add(phrase string) {
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[phrase] = struct{}{}
}

// Has reports membership.
func (s Set) Has(phrase string) bool {
	_, ok := s.items[phrase]
	return ok
}

// Len returns the number of phrases.
func (s Set) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no phrases.
func (s Set) IsEmpty() bool { return len(s.items) == 0 }

// Intersect returns s ∩ other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := NewSet()
	for p := range small.items {
		if large.Has(p) {
			out.items[p] = struct{}{}
		}
	}
	return out
}

// Difference returns s − other.
func (s Set) Difference(other Set) Set {
	out := NewSet()
	for p := range s.items {
		if !other.Has(p) {
			out.items[p] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same phrases.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.items {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the phrases in alphabetical order. Never nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for p := range s.items {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
