package bitset

import "testing"

func TestSet_SetTestClear(t *testing.T) {
	s := New(130) // exercise more than one word
	if s.Len() != 130 {
		t.Fatalf("Len() = %d, want 130", s.Len())
	}
	for _, i := range []int{0, 1, 63, 64, 65, 129} {
		if s.Test(i) {
			t.Errorf("bit %d should start clear", i)
		}
		s.Set(i)
		if !s.Test(i) {
			t.Errorf("bit %d should be set after Set", i)
		}
	}
	s.Clear(64)
	if s.Test(64) {
		t.Error("bit 64 should be clear after Clear")
	}
	if !s.Test(65) {
		t.Error("bit 65 should remain set")
	}
}

func TestSet_CountAndEach(t *testing.T) {
	s := New(70)
	want := []int{0, 5, 63, 64, 69}
	for _, i := range want {
		s.Set(i)
	}
	if got := s.Count(); got != len(want) {
		t.Fatalf("Count() = %d, want %d", got, len(want))
	}
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	if len(got) != len(want) {
		t.Fatalf("Each() visited %d bits, want %d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Each() order[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestSet_ClearAll(t *testing.T) {
	s := New(10)
	s.Set(3)
	s.Set(9)
	s.ClearAll()
	if s.Count() != 0 {
		t.Errorf("Count() = %d after ClearAll, want 0", s.Count())
	}
}
