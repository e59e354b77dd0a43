package fsm

import (
	"strings"

	"github.com/coregx/fsmatch/internal/sparse"
)

// Compile builds a Machine from a pattern string.
//
// The pattern is scanned once, left to right. Each base unit (a literal
// byte, '.', or a bracket expression) produces one state; a trailing '*' or
// '+' replaces the base state with a Star or Plus state wrapping its
// predicate. Every new state is appended to the previous state's outgoing
// edges, and a termination state is linked after the last unit.
//
// Compile fails with a *PatternError (wrapping ErrEmptyPattern,
// ErrUnterminatedClass, ErrDanglingQuantifier or ErrNotASCII) if the
// pattern is malformed. No partial Machine is returned on error.
func Compile(pattern string) (*Machine, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Err: ErrEmptyPattern}
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] >= 0x80 {
			return nil, &PatternError{Pattern: pattern, Pos: i, Err: ErrNotASCII}
		}
	}

	m := &Machine{pattern: pattern}
	start := m.alloc(State{kind: KindStart})
	term := m.alloc(State{kind: KindTerm})
	m.start = start
	m.term = term

	prev := start
	i := 0
	for i < len(pattern) {
		var base State
		switch c := pattern[i]; c {
		case '*', '+':
			// A quantifier here means no base unit precedes it: either the
			// pattern starts with one, or it directly follows another
			// quantifier.
			return nil, &PatternError{Pattern: pattern, Pos: i, Err: ErrDanglingQuantifier}
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, &PatternError{Pattern: pattern, Pos: i, Err: ErrUnterminatedClass}
			}
			base = State{kind: KindClass, class: expandClass(pattern[i+1 : i+1+end])}
			i += end + 2
		case '.':
			base = State{kind: KindDot}
			i++
		default:
			base = State{kind: KindLiteral, ch: c}
			i++
		}

		st := base
		if i < len(pattern) && (pattern[i] == '*' || pattern[i] == '+') {
			kind := KindStar
			if pattern[i] == '+' {
				kind = KindPlus
			}
			st = State{kind: kind, inner: base.kind, ch: base.ch, class: base.class}
			i++
		}

		id := m.alloc(st)
		if st.kind == KindStar || st.kind == KindPlus {
			// Self edge first, so the loop is part of the ordinary edge scan.
			m.states[id].next = append(m.states[id].next, id)
		}
		m.states[prev].next = append(m.states[prev].next, id)
		prev = id
	}

	m.states[prev].next = append(m.states[prev].next, term)
	m.visited = sparse.New(uint32(len(m.states)))
	return m, nil
}

// expandClass expands the raw body of a bracket expression into a byte set.
// "x-y" spans are expanded inclusively; a '-' that is not between two
// members (first or last byte of the body) is an ordinary member. Reversed
// spans and an empty body yield a set that matches nothing.
func expandClass(raw string) byteSet {
	var set byteSet
	for j := 0; j < len(raw); {
		if j+2 < len(raw) && raw[j+1] == '-' {
			set.addRange(raw[j], raw[j+2])
			j += 3
			continue
		}
		set.add(raw[j])
		j++
	}
	return set
}
