package bloom

import "testing"

func TestRand_Deterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, x, y)
		}
	}
}

func TestRand_SeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 64 {
		t.Error("different seeds produced identical streams")
	}
}

func TestRand_Restore(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 17; i++ {
		r.Uint64() // advance the stream
	}

	restored := r.Restore()
	fresh := NewRand(99)
	for i := 0; i < 32; i++ {
		if x, y := restored.Uint64(), fresh.Uint64(); x != y {
			t.Fatalf("draw %d: restored stream diverged: %d != %d", i, x, y)
		}
	}

	if r.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", r.Seed())
	}
}

func TestRand_Ranges(t *testing.T) {
	r := NewRand(7)

	for i := 0; i < 1000; i++ {
		if v := r.Float32Range(-2.5, 3.5); v < -2.5 || v >= 3.5 {
			t.Fatalf("Float32Range = %v, want [-2.5, 3.5)", v)
		}
		if v := r.Float64Range(0.1, 0.2); v < 0.1 || v >= 0.2 {
			t.Fatalf("Float64Range = %v, want [0.1, 0.2)", v)
		}
		if v := r.IntRange(-3, 3); v < -3 || v > 3 {
			t.Fatalf("IntRange = %d, want [-3, 3]", v)
		}
		if v := r.Uint16Range(10, 20); v < 10 || v > 20 {
			t.Fatalf("Uint16Range = %d, want [10, 20]", v)
		}
	}

	// Degenerate single-value ranges must not panic.
	if v := r.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", v)
	}
	if v := r.Uint16Range(8, 8); v != 8 {
		t.Errorf("Uint16Range(8, 8) = %d, want 8", v)
	}
}

func TestRand_Chance(t *testing.T) {
	r := NewRand(11)

	hits := 0
	for i := 0; i < 1000; i++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	if hits < 150 || hits > 350 {
		t.Errorf("Chance(0.25) hit %d of 1000, want roughly 250", hits)
	}

	if r.Chance(0) {
		t.Error("Chance(0) returned true")
	}
}

func TestMaybe(t *testing.T) {
	locked, fresh := 0, 0
	for seed := uint64(0); seed < 64; seed++ {
		r := NewRand(seed)
		if maybe(r, func(r *Rand) int { return 1 }) != nil {
			locked++
		} else {
			fresh++
		}
	}
	if locked == 0 || fresh == 0 {
		t.Errorf("maybe never varied: %d locked, %d fresh", locked, fresh)
	}
}
