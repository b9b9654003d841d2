package utils

import "strings"

// StringSet tracks seen values with case-insensitive membership. It is
// used to deduplicate city names during coordinate sampling.
type StringSet struct {
	seen map[string]struct{}
}

// NewStringSet creates an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{seen: make(map[string]struct{})}
}

// Add returns true if the value was newly added, false if already present.
func (s *StringSet) Add(v string) bool {
	k := strings.ToLower(strings.TrimSpace(v))
	if _, exists := s.seen[k]; exists {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

// Contains returns true if the value has already been added.
func (s *StringSet) Contains(v string) bool {
	_, exists := s.seen[strings.ToLower(strings.TrimSpace(v))]
	return exists
}

// Size returns the number of unique values tracked.
func (s *StringSet) Size() int {
	return len(s.seen)
}
