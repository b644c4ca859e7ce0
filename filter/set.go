package filter

// Set is an insertion-ordered collection of distinct numeric filters.
// Set is not safe for concurrent use.
type Set struct {
	index   map[Numeric]int
	filters []Numeric
}

// NewSet creates a set holding the given filters, with duplicates dropped.
func NewSet(filters ...Numeric) *Set {
	s := &Set{index: make(map[Numeric]int, len(filters))}
	for _, f := range filters {
		s.Add(f)
	}
	return s
}

// Add inserts f and reports whether it was not already present.
func (s *Set) Add(f Numeric) bool {
	if s.index == nil {
		s.index = make(map[Numeric]int)
	}

	if _, ok := s.index[f]; ok {
		return false
	}

	s.index[f] = len(s.filters)
	s.filters = append(s.filters, f)

	return true
}

// Remove deletes f and reports whether it was present.
func (s *Set) Remove(f Numeric) bool {
	i, ok := s.index[f]
	if !ok {
		return false
	}

	delete(s.index, f)
	s.filters = append(s.filters[:i], s.filters[i+1:]...)

	for j := i; j < len(s.filters); j++ {
		s.index[s.filters[j]] = j
	}

	return true
}

func (s *Set) Contains(f Numeric) bool {
	_, ok := s.index[f]
	return ok
}

func (s *Set) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in insertion order.
func (s *Set) Filters() []Numeric {
	out := make([]Numeric, len(s.filters))
	copy(out, s.filters)
	return out
}

// Strings returns the rendered filters in insertion order.
func (s *Set) Strings() []string {
	out := make([]string, len(s.filters))
	for i, f := range s.filters {
		out[i] = f.String()
	}
	return out
}
