package sparse

import "testing"

func TestSet(t *testing.T) {
	s := New(8)

	if s.Len() != 0 {
		t.Fatalf("new set Len() = %d, want 0", s.Len())
	}
	if !s.Insert(3) {
		t.Error("Insert(3) on empty set = false, want true")
	}
	if s.Insert(3) {
		t.Error("Insert(3) twice = true, want false")
	}
	if !s.Contains(3) {
		t.Error("Contains(3) = false after insert")
	}
	if s.Contains(4) {
		t.Error("Contains(4) = true, never inserted")
	}
	if s.Contains(100) {
		t.Error("Contains above capacity = true, want false")
	}

	s.Insert(0)
	s.Insert(7)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	s.Clear()
	if s.Len() != 0 || s.Contains(3) {
		t.Error("Clear() did not empty the set")
	}
	if !s.Insert(3) {
		t.Error("Insert(3) after Clear() = false, want true")
	}
}
