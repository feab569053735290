package focusbench

import (
	"math"
	"testing"
)

// ModelTolerances contains thresholds for the model property assertions.
type ModelTolerances struct {
	// Continuity tolerance at the linear/quadratic branch join.
	JoinTolerance float64

	// Minimum jump size across the cliff; the measured discontinuity is
	// roughly 43× so anything near that passes comfortably.
	MinCliffJump float64

	// Floating comparison slack for monotonicity checks.
	MonotoneSlack float64
}

// DefaultModelTolerances returns conservative thresholds.
func DefaultModelTolerances() ModelTolerances {
	return ModelTolerances{
		JoinTolerance: 1e-9,
		MinCliffJump:  40,
		MonotoneSlack: 1e-12,
	}
}

// AssertBranchContinuity verifies the variance law is continuous at the
// linear/quadratic join (k = 0.65): both branches evaluate to 2.3.
func AssertBranchContinuity(t *testing.T, tol ModelTolerances) {
	t.Helper()

	below, err := VarianceFactor(PreCriticalRatio - 1e-9)
	if err != nil {
		t.Fatalf("variance factor below join: %v", err)
	}
	at, err := VarianceFactor(PreCriticalRatio)
	if err != nil {
		t.Fatalf("variance factor at join: %v", err)
	}

	if math.Abs(at-below) > tol.JoinTolerance+2e-9 {
		t.Errorf("variance law discontinuous at k = %.2f: %.12f vs %.12f\n"+
			"The linear and quadratic branches must join at 2.3.",
			PreCriticalRatio, below, at)
	}

	t.Logf("✓ Branch join continuous at k = %.2f: %.6f ≈ %.6f", PreCriticalRatio, below, at)
}

// AssertCliffJump verifies the intentional discontinuity at k = 0.81: the
// pre-critical branch stays small while the cliff branch starts at 122.
func AssertCliffJump(t *testing.T, tol ModelTolerances) {
	t.Helper()

	below, err := VarianceFactor(CliffRatio - 1e-4)
	if err != nil {
		t.Fatalf("variance factor below cliff: %v", err)
	}
	at, err := VarianceFactor(CliffRatio)
	if err != nil {
		t.Fatalf("variance factor at cliff: %v", err)
	}

	if at-below < tol.MinCliffJump {
		t.Errorf("cliff jump too small: %.2f → %.2f (minimum jump %.0f)\n"+
			"The discontinuity at k = %.2f is the documented phenomenon; it must\n"+
			"not be smoothed.", below, at, tol.MinCliffJump, CliffRatio)
	}
	if at < CliffAmplification {
		t.Errorf("cliff branch starts at %.2f, expected ≥ %.0f", at, CliffAmplification)
	}

	t.Logf("✓ Cliff jump at k = %.2f: %.2f → %.2f (%.0f×)", CliffRatio, below, at, at/below)
}

// AssertStiffnessMonotone verifies the stiffness ratio is non-decreasing in
// load and bounded by the physical ceiling.
func AssertStiffnessMonotone(t *testing.T, loads []float64, tol ModelTolerances) {
	t.Helper()

	prev := math.Inf(-1)
	for _, load := range loads {
		k := StiffnessRatio(load)
		if k < prev-tol.MonotoneSlack {
			t.Errorf("stiffness ratio decreased: k(%.0f W) = %.6f < %.6f", load, k, prev)
		}
		if k > StiffnessCeiling {
			t.Errorf("stiffness ratio exceeds ceiling: k(%.0f W) = %.6f > %.2f",
				load, k, StiffnessCeiling)
		}
		prev = k
	}

	t.Logf("✓ Stiffness ratio non-decreasing over %d loads, bounded by %.2f",
		len(loads), StiffnessCeiling)
}

// AssertSeverityMonotone verifies that for a fixed profile, increasing load
// never moves the verdict back toward STABLE.
func AssertSeverityMonotone(t *testing.T, profile MachineProfile, loads []float64) {
	t.Helper()

	prev := -1
	prevLoad := 0.0
	for _, load := range loads {
		analysis, err := AnalyzeAtLoad(profile, load)
		if err != nil {
			t.Fatalf("analysis at %.0f W: %v", load, err)
		}
		severity := analysis.Status.Severity()
		if severity < prev {
			t.Errorf("severity regressed with load: %s at %.0f W after severity %d at %.0f W",
				analysis.Status, load, prev, prevLoad)
		}
		prev = severity
		prevLoad = load
	}

	t.Logf("✓ Status severity non-decreasing across %d load points", len(loads))
}
