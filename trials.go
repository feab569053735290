package focusbench

import (
	"fmt"
	"math"
	"sort"
)

// TrialOutcome is one externally produced observation: a scalar response
// (peak-to-valley warpage, nm) plus provenance tags. Immutable; outcomes are
// aggregated, never individually mutated. The core does not validate the
// producing simulation, only the numeric shape of its output.
type TrialOutcome struct {
	WarpageNM        float64 // Peak-to-valley response [nm]
	StiffnessSetting float64 // Nominal k the case was generated at
	Material         string  // Registry key, e.g. "silicon"
	LoadPattern      string  // "scan", "uniform", "gradient_z", ...
}

// TrialStatistics summarizes one homogeneous batch of trial outcomes.
//
// Invariants: Count ≥ 1. StdDev and CVPercent are 0 when Count = 1 (no
// sample variance exists) and CVPercent is reported as 0 when the mean is 0,
// so a degenerate batch never divides by zero.
type TrialStatistics struct {
	Count     int
	Mean      float64
	StdDev    float64 // Sample standard deviation (Bessel, n−1)
	CVPercent float64 // 100 · StdDev / Mean
	Min       float64
	Max       float64
	Range     float64
	Median    float64
	Q1        float64 // First quartile, linear interpolation
	Q3        float64 // Third quartile, linear interpolation
}

// Summarize computes sample statistics over a non-empty collection of scalar
// responses. This is the single aggregation routine every statistics
// consumer goes through, so the n=1 and zero-mean edge cases behave
// identically everywhere.
//
// Returns InsufficientDataError for an empty collection and DomainError for
// non-finite values.
func Summarize(values []float64) (TrialStatistics, error) {
	if len(values) == 0 {
		return TrialStatistics{}, &InsufficientDataError{
			Group: "outcomes", Reason: "no trial values",
		}
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return TrialStatistics{}, &DomainError{
				Quantity: "trial value", Value: v, Constraint: "finite real response",
			}
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	// Bessel-corrected sample deviation; defined as 0 for a single trial.
	std := 0.0
	if n > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(n-1))
	}

	cv := 0.0
	if mean != 0 {
		cv = std / mean * 100
	}

	return TrialStatistics{
		Count:     n,
		Mean:      mean,
		StdDev:    std,
		CVPercent: cv,
		Min:       sorted[0],
		Max:       sorted[n-1],
		Range:     sorted[n-1] - sorted[0],
		Median:    quantile(sorted, 0.50),
		Q1:        quantile(sorted, 0.25),
		Q3:        quantile(sorted, 0.75),
	}, nil
}

// Aggregate summarizes the warpage responses of one homogeneous batch.
func Aggregate(outcomes []TrialOutcome) (TrialStatistics, error) {
	values := make([]float64, len(outcomes))
	for i, o := range outcomes {
		values[i] = o.WarpageNM
	}
	return Summarize(values)
}

// GroupKey extracts the partition key of an outcome, e.g. its material or
// its nominal stiffness setting.
type GroupKey func(TrialOutcome) string

// ByMaterial partitions outcomes by substrate material.
func ByMaterial(o TrialOutcome) string { return o.Material }

// ByStiffnessSetting partitions outcomes by nominal stiffness setting.
func ByStiffnessSetting(o TrialOutcome) string {
	return fmt.Sprintf("k=%.2f", o.StiffnessSetting)
}

// AggregateBy partitions outcomes with the key and summarizes each group.
// Returns InsufficientDataError if there are no outcomes at all.
func AggregateBy(outcomes []TrialOutcome, key GroupKey) (map[string]TrialStatistics, error) {
	if len(outcomes) == 0 {
		return nil, &InsufficientDataError{Group: "outcomes", Reason: "no trial values"}
	}

	groups := make(map[string][]float64)
	for _, o := range outcomes {
		k := key(o)
		groups[k] = append(groups[k], o.WarpageNM)
	}

	stats := make(map[string]TrialStatistics, len(groups))
	for k, values := range groups {
		s, err := Summarize(values)
		if err != nil {
			return nil, err
		}
		stats[k] = s
	}
	return stats, nil
}

// VarianceRatio computes the cross-zone variance ratio
// CV(cliff) / CV(stable), the empirical analogue of
// VarianceFactor(k_cliff) / VarianceFactor(k_stable). It validates the
// analytic model; it never overrides it.
//
// Returns InsufficientDataError if either group is empty, or if the stable
// group's CV is exactly 0: a perfectly uniform baseline carries no
// variability information, so no ratio can be formed. (Returning infinity
// instead would poison downstream comparisons silently.)
func VarianceRatio(cliff, stable TrialStatistics) (float64, error) {
	if cliff.Count == 0 {
		return 0, &InsufficientDataError{Group: "cliff", Reason: "no trial values"}
	}
	if stable.Count == 0 {
		return 0, &InsufficientDataError{Group: "stable", Reason: "no trial values"}
	}
	if stable.CVPercent == 0 {
		return 0, &InsufficientDataError{
			Group:  "stable",
			Reason: "zero coefficient of variation, ratio undefined",
		}
	}
	return cliff.CVPercent / stable.CVPercent, nil
}

// quantile returns the p-th quantile (0 ≤ p ≤ 1) of an already-sorted
// non-empty slice, linearly interpolating between order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
