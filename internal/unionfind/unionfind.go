package unionfind

// Set is an integer-keyed disjoint set with path compression and union by
// rank. Elements are dense indices handed out by Add.
type Set struct {
	parent []int
	rank   []int
}

func New() *Set {
	return &Set{}
}

// Add creates a new singleton element and returns its index.
func (s *Set) Add() int {
	i := len(s.parent)
	s.parent = append(s.parent, i)
	s.rank = append(s.rank, 0)
	return i
}

// Len returns the number of elements ever added.
func (s *Set) Len() int {
	return len(s.parent)
}

// Find returns the root of the set containing i, compressing the path on the
// way up.
func (s *Set) Find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// Union merges the sets containing a and b. Returns true if they were
// previously separate.
func (s *Set) Union(a, b int) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}
	return true
}
