package terrain

import "testing"

func TestClassifyScenario(t *testing.T) {
	cases := []struct {
		noise, water float64
		want         Kind
	}{
		{0.1, 0.5, Water},
		{0.55, 0.5, Sand},
		{0.65, 0.5, Grass},
		{0.75, 0.5, Forest},
		{0.85, 0.5, Mountain},
		{0.95, 0.5, Mountain},
		{0.5, 0.5, Sand},
		{-100, 0.5, Water},
	}
	for _, tc := range cases {
		isWater, got := Classify(tc.noise, tc.water)
		if got != tc.want {
			t.Errorf("Classify(%v, %v) kind = %v, want %v", tc.noise, tc.water, got, tc.want)
		}
		if isWater != (tc.want == Water) {
			t.Errorf("Classify(%v, %v) isWater = %v, want %v", tc.noise, tc.water, isWater, tc.want == Water)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	for _, water := range []float64{-0.3, 0, 0.4, 0.5, 1.2} {
		prev := Water
		for i := 0; i <= 400; i++ {
			n := -1 + float64(i)*0.01
			_, k := Classify(n, water)
			if k < prev {
				t.Fatalf("water=%v: Classify(%v) = %v after %v", water, n, k, prev)
			}
			prev = k
		}
	}
}

func TestThresholdsAscending(t *testing.T) {
	th := Thresholds(0.5)
	want := [KindCount]float64{0.5, 0.6, 0.7, 0.8, 0.9}
	for i := range th {
		if diff := th[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("Thresholds(0.5)[%d] = %v, want %v", i, th[i], want[i])
		}
		if i > 0 && th[i] <= th[i-1] {
			t.Fatalf("thresholds not ascending: %v", th)
		}
	}
}

func TestKindString(t *testing.T) {
	if Water.String() != "water" || Mountain.String() != "mountain" {
		t.Fatalf("unexpected names %q %q", Water, Mountain)
	}
	if Kind(9).String() != "unknown" {
		t.Fatalf("out-of-range kind should be unknown, got %q", Kind(9))
	}
}
