package random

import (
	"testing"
	"time"
)

func TestDeterminismUnderFixedSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 200; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("float draw %d diverged between equally seeded sources", i)
		}
		if a.IntBetween(1, 100) != b.IntBetween(1, 100) {
			t.Fatalf("int draw %d diverged between equally seeded sources", i)
		}
		if a.Normal(20, 5) != b.Normal(20, 5) {
			t.Fatalf("normal draw %d diverged between equally seeded sources", i)
		}
		if a.Poisson(5) != b.Poisson(5) {
			t.Fatalf("poisson draw %d diverged between equally seeded sources", i)
		}
		if a.Bernoulli(0.3) != b.Bernoulli(0.3) {
			t.Fatalf("bernoulli draw %d diverged between equally seeded sources", i)
		}
		if a.WeightedIndex([]float64{0.4, 0.4, 0.2}) != b.WeightedIndex([]float64{0.4, 0.4, 0.2}) {
			t.Fatalf("weighted draw %d diverged between equally seeded sources", i)
		}
		if a.Country() != b.Country() {
			t.Fatalf("country draw %d diverged between equally seeded sources", i)
		}
	}
}

func TestIntBetweenIsInclusive(t *testing.T) {
	rng := New(1)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := rng.IntBetween(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("draw %d out of [3,5]", v)
		}
		if v == 3 {
			seenLo = true
		}
		if v == 5 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Fatalf("expected both endpoints to be reachable, got lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestGeometricSupportStartsAtOne(t *testing.T) {
	rng := New(7)
	for i := 0; i < 1000; i++ {
		if k := rng.Geometric(0.9); k < 1 {
			t.Fatalf("geometric draw %d below 1", k)
		}
	}
}

func TestWeightedIndexStaysInRange(t *testing.T) {
	rng := New(3)
	weights := []float64{0.4, 0.4, 0.2}
	for i := 0; i < 1000; i++ {
		if idx := rng.WeightedIndex(weights); idx < 0 || idx >= len(weights) {
			t.Fatalf("weighted index %d out of range", idx)
		}
	}
}

func TestTimeOfDayWithinOneDay(t *testing.T) {
	rng := New(9)
	for i := 0; i < 1000; i++ {
		d := rng.TimeOfDay()
		if d < 0 || d >= 24*time.Hour {
			t.Fatalf("time of day %v outside a calendar day", d)
		}
	}
}

func TestDaysAgoBounds(t *testing.T) {
	rng := New(11)
	ref := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		d := rng.DaysAgo(ref, 1, 730)
		if !d.Before(ref) {
			t.Fatalf("expected a date strictly before the reference, got %v", d)
		}
		if d.Before(ref.AddDate(0, 0, -730)) {
			t.Fatalf("date %v older than the allowed window", d)
		}
	}
}
