package buffer

import "testing"

func TestRefAliasesBackingSlice(t *testing.T) {
	s := []int{1, 2, 3}
	r := NewRef(s)
	s[0] = 99
	if r.At(0) != 99 {
		t.Fatal("Ref did not alias the backing slice")
	}
}

func TestMutWritesThroughToBackingSlice(t *testing.T) {
	s := make([]int, 3)
	m := NewMut(s)
	m.Set(1, 42)
	if s[1] != 42 {
		t.Fatal("Mut.Set did not write through to the backing slice")
	}
}

func TestMutRefSharesStorage(t *testing.T) {
	s := []int{1, 2, 3}
	m := NewMut(s)
	r := m.Ref()
	m.Set(0, 7)
	if r.At(0) != 7 {
		t.Fatal("Mut.Ref() did not share storage with the original Mut")
	}
}

func TestSliceIsView(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	r := NewRef(s).Slice(1, 4)
	if r.Len() != 3 || r.At(0) != 1 || r.At(2) != 3 {
		t.Fatalf("Slice(1,4) = %+v", r)
	}
}
