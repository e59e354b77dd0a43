package literal

import "github.com/coregx/fsmatch/fsm"

// Extract walks the compiled graph and returns the required literal runs,
// in pattern order. Quantified states break a run (their bytes are not
// required to appear) and contribute nothing themselves.
func Extract(m *fsm.Machine) *Seq {
	seq := NewSeq()
	var run []byte
	flush := func() {
		if len(run) > 0 {
			seq.push(Literal{Bytes: run})
			run = nil
		}
	}

	for id := m.Start(); ; id = forward(m, id) {
		s := m.State(id)
		if s == nil {
			break
		}
		if c, ok := s.Literal(); ok {
			run = append(run, c)
		} else {
			flush()
		}
		if s.Kind() == fsm.KindTerm {
			break
		}
	}
	flush()
	return seq
}

// MinInputLen returns the minimum number of bytes any accepted input must
// have: one per unquantified unit, one per Plus (its mandatory first
// repetition), zero for Star.
func MinInputLen(m *fsm.Machine) int {
	n := 0
	for id := m.Start(); ; id = forward(m, id) {
		s := m.State(id)
		if s == nil || s.Kind() == fsm.KindTerm {
			break
		}
		switch s.Kind() {
		case fsm.KindDot, fsm.KindLiteral, fsm.KindClass, fsm.KindPlus:
			n++
		}
	}
	return n
}

// forward returns the single non-self outgoing edge of id. The compiler
// links every state forward exactly once, so the chain always terminates
// at the termination state.
func forward(m *fsm.Machine, id fsm.StateID) fsm.StateID {
	for _, t := range m.State(id).Edges() {
		if t != id {
			return t
		}
	}
	return fsm.InvalidState
}
