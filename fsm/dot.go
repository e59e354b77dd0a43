package fsm

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz representation of the compiled graph to w.
// The termination state is drawn as a double circle and quantifier self
// loops are labelled with the wrapped predicate. The output is meant for
// debugging compiled machines (pipe it through `dot -Tsvg`).
func (m *Machine) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph fsm {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "    rankdir=LR;")
	fmt.Fprintf(w, "    _start [shape=point]; _start -> s%d;\n", m.start)

	for id := range m.states {
		s := &m.states[id]
		shape := "circle"
		if s.kind == KindTerm {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    s%d [shape=%s, label=%q];\n", id, shape, m.nodeLabel(StateID(id)))
		for _, t := range s.next {
			label := ""
			if t == StateID(id) {
				label = m.predicateLabel(StateID(id))
			}
			if _, err := fmt.Fprintf(w, "    s%d -> s%d [label=%q];\n", id, t, label); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// nodeLabel names a state for the DOT output.
func (m *Machine) nodeLabel(id StateID) string {
	s := &m.states[id]
	switch s.kind {
	case KindStart:
		return "start"
	case KindTerm:
		return "accept"
	case KindStar:
		return m.predicateLabel(id) + "*"
	case KindPlus:
		return m.predicateLabel(id) + "+"
	default:
		return m.predicateLabel(id)
	}
}

// predicateLabel names the consuming predicate of a state (for quantifiers,
// the wrapped one).
func (m *Machine) predicateLabel(id StateID) string {
	s := &m.states[id]
	kind := s.kind
	if kind == KindStar || kind == KindPlus {
		kind = s.inner
	}
	switch kind {
	case KindDot:
		return "."
	case KindLiteral:
		return string(s.ch)
	case KindClass:
		return "[" + classMembers(&s.class) + "]"
	default:
		return ""
	}
}

// classMembers renders a byte set as compact members with ranges collapsed.
func classMembers(set *byteSet) string {
	var b strings.Builder
	for c := 0; c < 256; {
		if !set.has(byte(c)) {
			c++
			continue
		}
		lo := c
		for c < 256 && set.has(byte(c)) {
			c++
		}
		hi := c - 1
		switch {
		case hi == lo:
			b.WriteByte(byte(lo))
		case hi == lo+1:
			b.WriteByte(byte(lo))
			b.WriteByte(byte(hi))
		default:
			b.WriteByte(byte(lo))
			b.WriteByte('-')
			b.WriteByte(byte(hi))
		}
	}
	return b.String()
}
