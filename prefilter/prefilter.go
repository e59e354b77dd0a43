// Package prefilter provides fast input rejection for the state-graph
// matcher using literal runs extracted from a compiled pattern.
//
// Every accepted input must contain each required run as a substring and
// must be at least the pattern's minimum length. A prefilter checks a
// cheap necessary condition and rejects inputs that cannot possibly match,
// so the machine only runs on plausible candidates. A prefilter never
// rejects an input the machine would accept; a passing input still has to
// be verified by the machine.
//
// The builder selects a strategy from the available runs:
//   - no runs            -> length check only
//   - one distinct run   -> substring containment (bytes.Contains)
//   - several runs       -> Aho-Corasick automaton over all runs
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/fsmatch/literal"
)

// Prefilter rejects inputs that cannot match the compiled pattern.
type Prefilter interface {
	// Reject returns true when input cannot possibly be accepted by the
	// pattern the prefilter was built from. A false result means the input
	// is a candidate and must be verified by the machine.
	Reject(input []byte) bool
}

// Builder constructs a prefilter from extracted literal runs and the
// pattern's minimum input length.
type Builder struct {
	runs   *literal.Seq
	minLen int
}

// NewBuilder creates a builder. runs may be nil or empty; minLen of zero
// disables the length check.
func NewBuilder(runs *literal.Seq, minLen int) *Builder {
	return &Builder{runs: runs, minLen: minLen}
}

// Build selects and constructs the prefilter. It returns nil when no check
// cheaper than the machine itself is available. Building never fails hard:
// if the Aho-Corasick automaton cannot be constructed, the builder falls
// back to containment of the longest run.
func (b *Builder) Build() Prefilter {
	runs := b.runs.Dedupe()

	switch {
	case runs.IsEmpty():
		if b.minLen == 0 {
			return nil
		}
		return &lengthPrefilter{min: b.minLen}

	case runs.Len() == 1:
		return &containsPrefilter{needle: runs.Get(0).Bytes, min: b.minLen}

	default:
		builder := ahocorasick.NewBuilder()
		for i := 0; i < runs.Len(); i++ {
			builder.AddPattern(runs.Get(i).Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			longest, _ := runs.Longest()
			return &containsPrefilter{needle: longest.Bytes, min: b.minLen}
		}
		return &ahoCorasickPrefilter{auto: auto, min: b.minLen}
	}
}

// lengthPrefilter rejects inputs shorter than the minimum match length.
type lengthPrefilter struct {
	min int
}

func (p *lengthPrefilter) Reject(input []byte) bool {
	return len(input) < p.min
}

// containsPrefilter rejects inputs that do not contain the single required
// run. For one-byte needles bytes.IndexByte keeps the scan branch-free.
type containsPrefilter struct {
	needle []byte
	min    int
}

func (p *containsPrefilter) Reject(input []byte) bool {
	if len(input) < p.min {
		return true
	}
	if len(p.needle) == 1 {
		return bytes.IndexByte(input, p.needle[0]) < 0
	}
	return !bytes.Contains(input, p.needle)
}

// ahoCorasickPrefilter rejects inputs containing none of the required runs.
// The automaton matches any one of the runs; since all of them are required,
// an input where none occurs can never match.
type ahoCorasickPrefilter struct {
	auto *ahocorasick.Automaton
	min  int
}

func (p *ahoCorasickPrefilter) Reject(input []byte) bool {
	if len(input) < p.min {
		return true
	}
	return !p.auto.IsMatch(input)
}
