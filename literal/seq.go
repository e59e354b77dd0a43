// Package literal extracts required literal runs from a compiled state
// graph.
//
// A run is a maximal sequence of consecutive unquantified literal states.
// Because the graph is a single forward chain, every accepted input must
// contain each run as a substring, in order. The prefilter package uses
// the runs to reject inputs cheaply before the machine is consulted.
package literal

import "bytes"

// Literal is one required byte sequence extracted from a pattern.
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is an ordered collection of required literals.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// push appends a literal to the sequence.
func (s *Seq) push(l Literal) {
	s.literals = append(s.literals, l)
}

// Dedupe returns a copy of the sequence with duplicate literals removed,
// preserving first-occurrence order. Duplicate runs add nothing to a
// containment prefilter, so builders call this before constructing one.
func (s *Seq) Dedupe() *Seq {
	out := NewSeq()
	for _, l := range s.literals {
		seen := false
		for _, o := range out.literals {
			if bytes.Equal(o.Bytes, l.Bytes) {
				seen = true
				break
			}
		}
		if !seen {
			out.push(l)
		}
	}
	return out
}

// FilterLen returns a copy containing only literals of at least min bytes.
// Dropping short runs weakens the filter but never breaks its soundness:
// the remaining runs are still required substrings.
func (s *Seq) FilterLen(min int) *Seq {
	out := NewSeq()
	for _, l := range s.literals {
		if l.Len() >= min {
			out.push(l)
		}
	}
	return out
}

// Longest returns the longest literal in the sequence and true, or a zero
// Literal and false when the sequence is empty. Ties keep the earliest run.
func (s *Seq) Longest() (Literal, bool) {
	if s.IsEmpty() {
		return Literal{}, false
	}
	best := s.literals[0]
	for _, l := range s.literals[1:] {
		if l.Len() > best.Len() {
			best = l
		}
	}
	return best, true
}
