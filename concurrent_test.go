package fsmatch

import (
	"sync"
	"testing"
)

// TestConcurrentMatch hammers one Regex from many goroutines. The internal
// mutex must keep Plus counters from leaking between interleaved matches,
// so every goroutine has to see the single-threaded answers.
func TestConcurrentMatch(t *testing.T) {
	re := MustCompile("[a-z]*4[0-9]+hi")
	cases := []struct {
		input string
		want  bool
	}{
		{"aaa4123hi", true},
		{"4hi", false},
		{"zzz4 123hi", false},
		{"xyz49hi", true},
		{"", false},
	}

	const goroutines = 16
	const rounds = 200

	var wg sync.WaitGroup
	errs := make(chan string, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				c := cases[(i+offset)%len(cases)]
				if got := re.MatchString(c.input); got != c.want {
					errs <- c.input
					return
				}
			}
		}(g)
	}

	wg.Wait()
	close(errs)
	for input := range errs {
		t.Errorf("concurrent MatchString(%q) disagreed with the single-threaded result", input)
	}
}
