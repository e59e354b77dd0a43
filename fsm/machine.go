package fsm

import "github.com/coregx/fsmatch/internal/sparse"

// Machine is a compiled pattern: an arena of states plus the start and
// termination handles. It is produced by Compile and may be reused for any
// number of independent Check calls.
//
// Machine is NOT safe for concurrent use: Plus states mutate a repetition
// counter during matching. Serialize calls externally or compile one
// Machine per goroutine.
type Machine struct {
	pattern string
	states  []State
	start   StateID
	term    StateID

	// visited is scratch for the end-of-input reachability walk.
	visited *sparse.Set
}

// alloc appends a state to the arena and returns its handle.
func (m *Machine) alloc(s State) StateID {
	m.states = append(m.states, s)
	return StateID(len(m.states) - 1)
}

// Pattern returns the source pattern the Machine was compiled from.
func (m *Machine) Pattern() string {
	return m.pattern
}

// NumStates returns the number of states in the arena.
func (m *Machine) NumStates() int {
	return len(m.states)
}

// Start returns the entry state's handle.
func (m *Machine) Start() StateID {
	return m.start
}

// State returns the state with the given handle, or nil if the handle is
// invalid.
func (m *Machine) State(id StateID) *State {
	if int(id) >= len(m.states) {
		return nil
	}
	return &m.states[id]
}

// stepKind tags the outcome of asking a state to handle one input byte.
type stepKind uint8

const (
	// stepReject: the state cannot make progress on this byte.
	stepReject stepKind = iota

	// stepConsume: the state consumed the byte and remains current
	// (a quantifier self-loop or a simple state accepting its byte).
	stepConsume

	// stepTransfer: the byte was consumed further along the graph;
	// target is the state that finally consumed it.
	stepTransfer
)

// step is the three-way result of attemptSelf. target is meaningful only
// for stepTransfer.
type step struct {
	kind   stepKind
	target StateID
}

// attemptSelf asks the state id whether it handles the byte c.
//
// Sentinels always reject. Simple states consume iff their predicate holds.
// Star prefers exiting the repetition: it first scans its outgoing edges
// (excluding the self edge) and transfers if any successor handles c; only
// then does it test its wrapped predicate and loop. Plus behaves the same
// once at least one repetition has been consumed; before that the wrapped
// predicate is mandatory and the exit scan is not attempted.
func (m *Machine) attemptSelf(id StateID, c byte) step {
	s := &m.states[id]
	switch s.kind {
	case KindStart, KindTerm:
		return step{kind: stepReject}

	case KindDot, KindLiteral, KindClass:
		if s.accepts(c) {
			return step{kind: stepConsume}
		}
		return step{kind: stepReject}

	case KindStar:
		return m.quantifierStep(id, c)

	case KindPlus:
		if s.cycles == 0 {
			// Mandatory first repetition: no exit until satisfied.
			if s.accepts(c) {
				s.cycles++
				return step{kind: stepConsume}
			}
			return step{kind: stepReject}
		}
		return m.quantifierStep(id, c)
	}
	return step{kind: stepReject}
}

// quantifierStep is the shared exit-then-loop policy of Star, and of Plus
// once its obligation is met. Exiting wins whenever a successor can handle
// the byte; looping is the fallback.
func (m *Machine) quantifierStep(id StateID, c byte) step {
	if target, ok := m.exitScan(id, c); ok {
		return step{kind: stepTransfer, target: target}
	}
	s := &m.states[id]
	if s.accepts(c) {
		if s.kind == KindPlus {
			s.cycles++
		}
		return step{kind: stepConsume}
	}
	return step{kind: stepReject}
}

// exitScan looks for a successor of id (skipping the self edge) that does
// not reject c, and resolves chained transfers so the returned handle is
// the state that actually consumed the byte. Each transfer strictly
// advances along outgoing edges, so the chain is bounded by the graph size.
func (m *Machine) exitScan(id StateID, c byte) (StateID, bool) {
	for _, t := range m.states[id].next {
		if t == id {
			continue
		}
		switch st := m.attemptSelf(t, c); st.kind {
		case stepConsume:
			return t, true
		case stepTransfer:
			return st.target, true
		}
	}
	return InvalidState, false
}

// attemptNext scans id's outgoing edges in insertion order and returns the
// first edge target that does not reject c, together with that target's
// step. The boolean is false when no edge is viable.
func (m *Machine) attemptNext(id StateID, c byte) (StateID, step, bool) {
	for _, t := range m.states[id].next {
		if st := m.attemptSelf(t, c); st.kind != stepReject {
			return t, st, true
		}
	}
	return InvalidState, step{}, false
}

// Check reports whether the Machine accepts input as a whole-string match.
//
// Plus counters are reset first, so one compiled Machine can be reused
// across independent inputs without leaking repetition state. Any byte
// outside the ASCII range fails the match.
func (m *Machine) Check(input []byte) bool {
	m.reset()

	cur := m.start
	for _, c := range input {
		if c >= 0x80 {
			return false
		}
		t, st, ok := m.attemptNext(cur, c)
		if !ok {
			return false
		}
		switch st.kind {
		case stepConsume:
			cur = t
		case stepTransfer:
			cur = st.target
		}
	}
	return m.reachesTerm(cur)
}

// CheckString is Check for a string input.
func (m *Machine) CheckString(input string) bool {
	return m.Check([]byte(input))
}

// reset clears all Plus repetition counters. The arena doubles as the
// registry of Plus states, so this is a single linear pass.
func (m *Machine) reset() {
	for i := range m.states {
		if m.states[i].kind == KindPlus {
			m.states[i].cycles = 0
		}
	}
}

// reachesTerm reports whether the termination state is reachable from id
// without consuming input: through direct edges and through quantifiers
// whose exit is free (any Star, or a Plus whose obligation is met).
// The visited set keeps the walk finite despite self edges.
func (m *Machine) reachesTerm(id StateID) bool {
	m.visited.Clear()
	return m.freeWalk(id)
}

func (m *Machine) freeWalk(id StateID) bool {
	if !m.visited.Insert(uint32(id)) {
		return false
	}
	for _, t := range m.states[id].next {
		s := &m.states[t]
		switch s.kind {
		case KindTerm:
			return true
		case KindStar:
			if m.freeWalk(t) {
				return true
			}
		case KindPlus:
			if s.cycles > 0 && m.freeWalk(t) {
				return true
			}
		}
	}
	return false
}
