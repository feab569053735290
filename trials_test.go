package focusbench

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize_SampleStatistics(t *testing.T) {
	// mean = 27.5, Σd² = 4·22.5² = 2025, s = √(2025/3) ≈ 25.98
	stats, err := Summarize([]float64{5, 50, 5, 50})
	if err != nil {
		t.Fatal(err)
	}

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if stats.Mean != 27.5 {
		t.Errorf("Mean = %v, want 27.5", stats.Mean)
	}
	wantStd := math.Sqrt(2025.0 / 3.0)
	if math.Abs(stats.StdDev-wantStd) > 1e-12 {
		t.Errorf("StdDev = %v, want %v (Bessel n−1)", stats.StdDev, wantStd)
	}
	wantCV := wantStd / 27.5 * 100
	if math.Abs(stats.CVPercent-wantCV) > 1e-12 {
		t.Errorf("CVPercent = %v, want %v", stats.CVPercent, wantCV)
	}
	if stats.Min != 5 || stats.Max != 50 || stats.Range != 45 {
		t.Errorf("Min/Max/Range = %v/%v/%v, want 5/50/45",
			stats.Min, stats.Max, stats.Range)
	}

	t.Logf("✓ CV = %.2f%% on a bimodal batch", stats.CVPercent)
}

func TestSummarize_Quartiles(t *testing.T) {
	// Linear interpolation between order statistics:
	// pos(Q1) = 0.75 → 1.75, pos(median) = 1.5 → 2.5, pos(Q3) = 2.25 → 3.25.
	stats, err := Summarize([]float64{4, 1, 3, 2})
	if err != nil {
		t.Fatal(err)
	}

	if stats.Q1 != 1.75 {
		t.Errorf("Q1 = %v, want 1.75", stats.Q1)
	}
	if stats.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", stats.Median)
	}
	if stats.Q3 != 3.25 {
		t.Errorf("Q3 = %v, want 3.25", stats.Q3)
	}
}

func TestSummarize_SingleTrial(t *testing.T) {
	stats, err := Summarize([]float64{42.0})
	if err != nil {
		t.Fatal(err)
	}

	if stats.StdDev != 0 || stats.CVPercent != 0 {
		t.Errorf("n=1 StdDev/CV = %v/%v, want 0/0", stats.StdDev, stats.CVPercent)
	}
	if stats.Median != 42.0 || stats.Q1 != 42.0 || stats.Q3 != 42.0 {
		t.Errorf("n=1 quartiles = %v/%v/%v, want all 42",
			stats.Q1, stats.Median, stats.Q3)
	}
}

func TestSummarize_ZeroMean(t *testing.T) {
	stats, err := Summarize([]float64{-1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Mean != 0 {
		t.Fatalf("Mean = %v, want 0", stats.Mean)
	}
	if stats.CVPercent != 0 {
		t.Errorf("CVPercent = %v, want 0 when mean is 0", stats.CVPercent)
	}
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(nil)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Errorf("empty input: got %v, want InsufficientDataError", err)
	}

	_, err = Summarize([]float64{1, math.NaN()})
	var domain *DomainError
	if !errors.As(err, &domain) {
		t.Errorf("NaN input: got %v, want DomainError", err)
	}

	_, err = Summarize([]float64{1, math.Inf(1)})
	if !errors.As(err, &domain) {
		t.Errorf("Inf input: got %v, want DomainError", err)
	}
}

func TestAggregateBy_Material(t *testing.T) {
	outcomes := []TrialOutcome{
		{WarpageNM: 10, Material: "silicon", StiffnessSetting: 0.50},
		{WarpageNM: 12, Material: "silicon", StiffnessSetting: 0.50},
		{WarpageNM: 30, Material: "ule", StiffnessSetting: 0.50},
	}

	stats, err := AggregateBy(outcomes, ByMaterial)
	if err != nil {
		t.Fatal(err)
	}

	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
	if stats["silicon"].Count != 2 || stats["silicon"].Mean != 11 {
		t.Errorf("silicon group = %+v, want Count 2 Mean 11", stats["silicon"])
	}
	if stats["ule"].Count != 1 || stats["ule"].Mean != 30 {
		t.Errorf("ule group = %+v, want Count 1 Mean 30", stats["ule"])
	}
}

func TestAggregateBy_StiffnessKeyFormat(t *testing.T) {
	outcomes := []TrialOutcome{
		{WarpageNM: 1, StiffnessSetting: 0.5},
		{WarpageNM: 2, StiffnessSetting: 0.81},
	}

	stats, err := AggregateBy(outcomes, ByStiffnessSetting)
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"k=0.50", "k=0.81"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("missing group %q (keys: %v)", key, keysOf(stats))
		}
	}
}

func keysOf(m map[string]TrialStatistics) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// TestVarianceRatio verifies the empirical cross-zone ratio on batches with
// the same mean but very different spread. The stable batch has CV ≈ 4.08%,
// the cliff batch ≈ 94.48%, giving a ratio ≈ 23×.
func TestVarianceRatio(t *testing.T) {
	stable, err := Summarize([]float64{9.5, 10, 10, 10.5})
	if err != nil {
		t.Fatal(err)
	}
	cliff, err := Summarize([]float64{5, 50, 5, 50})
	if err != nil {
		t.Fatal(err)
	}

	ratio, err := VarianceRatio(cliff, stable)
	if err != nil {
		t.Fatal(err)
	}

	want := cliff.CVPercent / stable.CVPercent
	if ratio != want {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}
	if ratio < 20 || ratio > 30 {
		t.Errorf("ratio = %.1f, expected in [20, 30] for these batches", ratio)
	}

	t.Logf("✓ Empirical variance ratio %.1f× (CV %.2f%% vs %.2f%%)",
		ratio, cliff.CVPercent, stable.CVPercent)
}

// TestVarianceRatio_DegenerateStable verifies that a perfectly uniform
// stable batch refuses to form a ratio instead of returning infinity.
func TestVarianceRatio_DegenerateStable(t *testing.T) {
	stable, err := Summarize([]float64{10, 10, 10, 10})
	if err != nil {
		t.Fatal(err)
	}
	if stable.CVPercent != 0 {
		t.Fatalf("test premise broken: CV = %v", stable.CVPercent)
	}
	cliff, err := Summarize([]float64{5, 50, 5, 50})
	if err != nil {
		t.Fatal(err)
	}

	_, err = VarianceRatio(cliff, stable)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("got %v, want InsufficientDataError", err)
	}
	if insufficient.Group != "stable" {
		t.Errorf("Group = %q, want %q", insufficient.Group, "stable")
	}
}

func TestVarianceRatio_EmptyGroups(t *testing.T) {
	populated, err := Summarize([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	var insufficient *InsufficientDataError

	_, err = VarianceRatio(TrialStatistics{}, populated)
	if !errors.As(err, &insufficient) || insufficient.Group != "cliff" {
		t.Errorf("empty cliff: got %v, want InsufficientDataError{cliff}", err)
	}

	_, err = VarianceRatio(populated, TrialStatistics{})
	if !errors.As(err, &insufficient) || insufficient.Group != "stable" {
		t.Errorf("empty stable: got %v, want InsufficientDataError{stable}", err)
	}
}
