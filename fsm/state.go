// Package fsm implements an explicit state-graph matcher for a restricted
// pattern language: literal bytes, '.', bracket classes with ranges, and
// the '*' and '+' quantifiers.
//
// A pattern is compiled into a small directed graph of states held in a
// single arena. Edges are state handles (StateID), kept in insertion order;
// insertion order is the tie-break when more than one edge could accept the
// same byte. Repetition is expressed without epsilon transitions: a Star or
// Plus state first tries to exit through its outgoing edges and only then
// consumes the byte itself, so the matching loop stays a deterministic
// single pass over the input.
//
// A compiled Machine can be reused across many inputs, but Plus states carry
// a mutable repetition counter, so a Machine is not safe for concurrent use.
// Callers that need concurrency should serialize calls or compile one
// Machine per goroutine (the root fsmatch package wraps a Machine in a
// mutex for this reason).
package fsm

import "fmt"

// StateID uniquely identifies a state within a Machine's arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of a state and determines which transitions
// are valid for it.
type StateKind uint8

const (
	// KindStart is the graph entry sentinel. It never consumes input and
	// exists only to anchor the first outgoing edge.
	KindStart StateKind = iota

	// KindTerm is the accepting sentinel. It never consumes input and has
	// no outgoing edges.
	KindTerm

	// KindDot consumes any single byte.
	KindDot

	// KindLiteral consumes exactly its stored byte.
	KindLiteral

	// KindClass consumes any byte in its stored set (a bracket expression
	// with ranges expanded at compile time).
	KindClass

	// KindStar is a zero-or-more repetition of a wrapped predicate.
	KindStar

	// KindPlus is a one-or-more repetition of a wrapped predicate. It
	// carries a mutable cycle counter that must be reset before each match.
	KindPlus
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindTerm:
		return "Term"
	case KindDot:
		return "Dot"
	case KindLiteral:
		return "Literal"
	case KindClass:
		return "Class"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// byteSet is a 256-bit membership set over single bytes.
type byteSet [4]uint64

func (s *byteSet) add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// addRange adds the inclusive range [lo, hi]. Reversed ranges add nothing.
func (s *byteSet) addRange(lo, hi byte) {
	for c := int(lo); c <= int(hi); c++ {
		s.add(byte(c))
	}
}

func (s *byteSet) has(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

func (s *byteSet) isEmpty() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

// State is a single node in the transition graph. The state's kind
// determines which fields are meaningful.
//
// For Star and Plus, the wrapped predicate (the base unit that preceded the
// quantifier in the pattern) is stored inline: inner is the base unit's
// kind and ch/class hold its data.
type State struct {
	kind StateKind

	// next holds the outgoing edges in insertion order. Quantifier states
	// carry a self edge as their first entry.
	next []StateID

	// For Literal (or a quantifier wrapping a literal): the byte to match.
	ch byte

	// For Class (or a quantifier wrapping a class): the allowed bytes.
	class byteSet

	// For Star/Plus: the kind of the wrapped base unit
	// (KindDot, KindLiteral or KindClass).
	inner StateKind

	// For Plus: repetitions consumed during the current match.
	// Reset to 0 before every independent match attempt.
	cycles int
}

// Kind returns the state's type.
func (s *State) Kind() StateKind {
	return s.kind
}

// Edges returns the state's outgoing edges in insertion order.
// The returned slice is shared and must not be modified.
func (s *State) Edges() []StateID {
	return s.next
}

// Literal returns the stored byte for Literal states.
// Returns (0, false) for other kinds.
func (s *State) Literal() (byte, bool) {
	if s.kind == KindLiteral {
		return s.ch, true
	}
	return 0, false
}

// Wrapped returns the wrapped predicate's kind for Star/Plus states.
// Returns (0, false) for other kinds.
func (s *State) Wrapped() (StateKind, bool) {
	if s.kind == KindStar || s.kind == KindPlus {
		return s.inner, true
	}
	return 0, false
}

// accepts reports whether the state's own predicate accepts c.
// For quantifiers this tests the wrapped predicate; sentinels never accept.
func (s *State) accepts(c byte) bool {
	kind := s.kind
	if kind == KindStar || kind == KindPlus {
		kind = s.inner
	}
	switch kind {
	case KindDot:
		return true
	case KindLiteral:
		return c == s.ch
	case KindClass:
		return s.class.has(c)
	default:
		return false
	}
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case KindLiteral:
		return fmt.Sprintf("State(Literal %q)", s.ch)
	case KindStar, KindPlus:
		return fmt.Sprintf("State(%s over %s)", s.kind, s.inner)
	default:
		return fmt.Sprintf("State(%s)", s.kind)
	}
}
