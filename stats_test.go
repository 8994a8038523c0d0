package vec

import "testing"

func TestStatsEmpty(t *testing.T) {
	v := New[int](Funcs[int]{})
	s := v.Stats()
	if s.Len != 0 || s.Cap != 0 || s.Grows != 0 {
		t.Errorf("Stats() = %+v, want zero", s)
	}
	if s.Utilization != 0 {
		t.Errorf("Utilization = %f, want 0 for empty storage", s.Utilization)
	}
}

func TestStatsTracksGrowth(t *testing.T) {
	v := New[int](Funcs[int]{})
	for i := 0; i < 5; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	s := v.Stats()
	if s.Len != 5 || s.Cap != 8 {
		t.Errorf("Len/Cap = %d/%d, want 5/8", s.Len, s.Cap)
	}
	// Growth path: 0->1->2->4->8, four reallocations.
	if s.Grows != 4 {
		t.Errorf("Grows = %d, want 4", s.Grows)
	}
	// Migrated element counts: 0 + 1 + 2 + 4.
	if s.MovedDuringGrowth != 7 {
		t.Errorf("MovedDuringGrowth = %d, want 7", s.MovedDuringGrowth)
	}
	if s.CopiedDuringGrowth != 0 {
		t.Errorf("CopiedDuringGrowth = %d, want 0 for a trivially movable type", s.CopiedDuringGrowth)
	}
}

func TestStatsCopyPolicy(t *testing.T) {
	fns := Funcs[int]{Copy: func(x int) (int, error) { return x, nil }}
	v := New(fns)
	for i := 0; i < 3; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	s := v.Stats()
	if s.MovedDuringGrowth != 0 {
		t.Errorf("MovedDuringGrowth = %d, want 0 when Copy is the migration policy", s.MovedDuringGrowth)
	}
	// 0 + 1 + 2 elements copied across the three growths.
	if s.CopiedDuringGrowth != 3 {
		t.Errorf("CopiedDuringGrowth = %d, want 3", s.CopiedDuringGrowth)
	}
}

func TestUtilization(t *testing.T) {
	v := New[int](Funcs[int]{})
	if err := v.Reserve(10); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}
	if got := v.Utilization(); got != 0.5 {
		t.Errorf("Utilization() = %f, want 0.5", got)
	}
}

func TestStatsSwapFollowsStorage(t *testing.T) {
	a := New[int](Funcs[int]{})
	for i := 0; i < 5; i++ {
		if err := a.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}
	b := New[int](Funcs[int]{})

	a.Swap(b)
	if g := a.Stats().Grows; g != 0 {
		t.Errorf("after swap a.Grows = %d, want 0", g)
	}
	if g := b.Stats().Grows; g != 4 {
		t.Errorf("after swap b.Grows = %d, want 4", g)
	}
}
