package fsmatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/fsmatch/fsm"
)

// TestCompile tests basic compilation.
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"simple literal", "hello", nil},
		{"dot", ".", nil},
		{"star", "a*", nil},
		{"plus", "[0-9]+", nil},
		{"composite", "a*4.+hi", nil},
		{"class with ranges", "[a-zA-Z0-9]", nil},
		{"empty", "", fsm.ErrEmptyPattern},
		{"unterminated class", "[abc", fsm.ErrUnterminatedClass},
		{"dangling quantifier", "*", fsm.ErrDanglingQuantifier},
		{"non-ascii", "日本", fsm.ErrNotASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
				}
				if re == nil {
					t.Fatal("Compile() returned nil")
				}
				if re.String() != tt.pattern {
					t.Errorf("String() = %q, want %q", re.String(), tt.pattern)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
			if re != nil {
				t.Error("Compile() returned a Regex alongside an error")
			}
		})
	}
}

// TestMustCompile tests panic on invalid pattern.
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("[oops")
}

// TestMatch tests whole-string matching through the public API.
func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"literal exact", "hello", "hello", true},
		{"literal is anchored", "hello", "say hello", false},
		{"star zero", "a*", "", true},
		{"star many", "a*", "aaaa", true},
		{"plus zero", "a+", "", false},
		{"plus many", "a+", "aaa", true},
		{"class range", "[a-c]+", "abc", true},
		{"class outside", "[a-c]+", "d", false},
		{"composite accepted", "a*4.+hi", "aaa4xxxhi", true},
		{"composite plus unmet", "a*4.+hi", "a4hi", false},
		{"composite shared wildcard", "a*4.+hi", "44hi", true},
		{"non-ascii input", ".+", "héllo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)

			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestMatchReuse verifies that a Regex carries no state across calls.
func TestMatchReuse(t *testing.T) {
	re := MustCompile("a*4.+hi")
	inputs := []string{"aaa4xxxhi", "4hi", "", "44hi", "meow", "4xhi"}
	want := []bool{true, false, false, true, false, true}

	// Run the whole table twice over the same Regex.
	for round := 0; round < 2; round++ {
		for i, input := range inputs {
			if got := re.MatchString(input); got != want[i] {
				t.Errorf("round %d: MatchString(%q) = %v, want %v", round, input, got, want[i])
			}
		}
	}
}

// TestCompileWithConfig exercises prefilter toggling and config validation.
func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false
	re, err := CompileWithConfig("a*4.+hi", config)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("4xhi") || re.MatchString("meow") {
		t.Error("matching disagrees with the default configuration")
	}

	bad := DefaultConfig()
	bad.MaxLiterals = 0
	if _, err := CompileWithConfig("abc", bad); err == nil {
		t.Error("CompileWithConfig accepted MaxLiterals = 0")
	}
	var cerr *ConfigError
	_, err = CompileWithConfig("abc", Config{EnablePrefilter: true, MinLiteralLen: 99, MaxLiterals: 8})
	if !errors.As(err, &cerr) || cerr.Field != "MinLiteralLen" {
		t.Errorf("expected MinLiteralLen ConfigError, got %v", err)
	}

	// An invalid prefilter config is fine when the prefilter is off.
	off := Config{EnablePrefilter: false}
	if _, err := CompileWithConfig("abc", off); err != nil {
		t.Errorf("CompileWithConfig with prefilter off: %v", err)
	}
}

// TestConfigValidate tests the validation ranges.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantField string
	}{
		{"default is valid", DefaultConfig(), ""},
		{"min literal len low", Config{EnablePrefilter: true, MinLiteralLen: 0, MaxLiterals: 8}, "MinLiteralLen"},
		{"min literal len high", Config{EnablePrefilter: true, MinLiteralLen: 65, MaxLiterals: 8}, "MinLiteralLen"},
		{"max literals low", Config{EnablePrefilter: true, MinLiteralLen: 1, MaxLiterals: 0}, "MaxLiterals"},
		{"max literals high", Config{EnablePrefilter: true, MinLiteralLen: 1, MaxLiterals: 1_001}, "MaxLiterals"},
		{"disabled skips checks", Config{EnablePrefilter: false}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.wantField {
				t.Errorf("Validate() = %v, want ConfigError for %s", err, tt.wantField)
			}
		})
	}
}

// TestWriteDOT smoke-tests the debug rendering through the public API.
func TestWriteDOT(t *testing.T) {
	re := MustCompile("[0-9]+x")
	var b strings.Builder
	if err := re.WriteDOT(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "digraph fsm {") {
		t.Errorf("WriteDOT output missing header:\n%s", b.String())
	}
}

// BenchmarkMatch measures the public API on a composite pattern.
func BenchmarkMatch(b *testing.B) {
	re := MustCompile("[a-z]*4[0-9]+hi")
	input := []byte("abcdefghijklmnopqrstuvwxyz4123456789hi")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !re.Match(input) {
			b.Fatal("unexpected reject")
		}
	}
}

// BenchmarkMatchPrefilterReject measures the fast-reject path.
func BenchmarkMatchPrefilterReject(b *testing.B) {
	re := MustCompile("a*4.+hi")
	input := []byte(strings.Repeat("no match here ", 64))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re.Match(input) {
			b.Fatal("unexpected accept")
		}
	}
}
