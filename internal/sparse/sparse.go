// Package sparse provides a sparse set over small uint32 universes.
//
// The set supports O(1) insertion, membership testing and clearing, which is
// what the matcher needs to keep its end-of-input reachability walk
// cycle-safe without reallocating a visited map per call.
package sparse

// Set is a set of uint32 values below a fixed capacity. It keeps a sparse
// index array for membership testing and a dense array for fast clearing.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32
}

// New creates a set able to hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Values at or above the capacity are ignored.
func (s *Set) Insert(value uint32) bool {
	if value >= uint32(len(s.sparse)) || s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}
