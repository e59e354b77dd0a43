// Package fsmatch matches strings against a restricted pattern language by
// compiling the pattern into an explicit finite-state graph.
//
// The language supports literal ASCII bytes, '.', bracket classes with
// ranges (e.g. [a-z0-9]), and the '*' and '+' quantifiers. Matching is a
// whole-string accept/reject: there is no searching, no capture groups, no
// alternation and no anchors (every pattern is implicitly anchored at both
// ends).
//
// Repetition is resolved deterministically, preferring to exit a loop over
// iterating it whenever both are possible on the same byte. This makes
// matching a single bounded pass over the input (no backtracking), at the
// cost of rejecting some strings a conventional greedy engine would accept
// for ambiguous patterns such as `a*a`.
//
// Basic usage:
//
//	re, err := fsmatch.Compile("[a-z]*4[0-9]+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaa4123hi") // true
//	re.MatchString("4hi")       // false, '+' requires one repetition
//
// Compiled patterns carry a literal prefilter: runs of unquantified literal
// bytes must appear in any accepted input, so inputs missing them are
// rejected without running the machine.
package fsmatch

import (
	"io"
	"sync"

	"github.com/coregx/fsmatch/fsm"
	"github.com/coregx/fsmatch/literal"
	"github.com/coregx/fsmatch/prefilter"
)

// Regex is a compiled pattern.
//
// A Regex is safe for concurrent use: the underlying machine mutates
// repetition counters while matching, so each match holds an internal
// mutex for its full duration. Callers that want parallel matching of the
// same pattern should compile one Regex per goroutine.
type Regex struct {
	mu      sync.Mutex
	machine *fsm.Machine
	pf      prefilter.Prefilter
	pattern string
}

// Compile compiles a pattern with the default configuration.
//
// It returns a *fsm.PatternError if the pattern is malformed: empty,
// containing an unterminated bracket expression, a quantifier with no
// preceding unit, or non-ASCII bytes.
//
// Example:
//
//	re, err := fsmatch.Compile("a*4.+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("fsmatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := fsmatch.DefaultConfig()
//	config.EnablePrefilter = false // always run the machine
//	re, err := fsmatch.CompileWithConfig("[0-9]+", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	machine, err := fsm.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		machine: machine,
		pattern: pattern,
	}
	if config.EnablePrefilter {
		re.pf = buildPrefilter(machine, config)
	}
	return re, nil
}

// buildPrefilter extracts required literal runs from the compiled machine
// and constructs the cheapest applicable rejection filter.
func buildPrefilter(machine *fsm.Machine, config Config) prefilter.Prefilter {
	runs := literal.Extract(machine)
	if runs.Len() > config.MaxLiterals {
		// Too many runs to index; keep only the length check.
		runs = literal.NewSeq()
	} else if config.MinLiteralLen > 1 {
		runs = runs.FilterLen(config.MinLiteralLen)
	}
	return prefilter.NewBuilder(runs, literal.MinInputLen(machine)).Build()
}

// Match reports whether the byte slice b is accepted by the pattern as a
// whole. Bytes outside the ASCII range never match.
func (r *Regex) Match(b []byte) bool {
	if r.pf != nil && r.pf.Reject(b) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Check(b)
}

// MatchString reports whether the string s is accepted by the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// WriteDOT writes a Graphviz rendering of the compiled state graph to w,
// for debugging what a pattern compiled into.
func (r *Regex) WriteDOT(w io.Writer) error {
	return r.machine.WriteDOT(w)
}
