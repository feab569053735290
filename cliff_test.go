package focusbench

import (
	"errors"
	"math"
	"testing"
)

// TestVarianceFactor_LinearBranch verifies the stable regime: 1 + 2k,
// strictly increasing for k < 0.65.
func TestVarianceFactor_LinearBranch(t *testing.T) {
	prev := 0.0
	for _, k := range []float64{0, 0.1, 0.25, 0.4, 0.5, 0.6, 0.649} {
		got, err := VarianceFactor(k)
		if err != nil {
			t.Fatalf("VarianceFactor(%.3f): %v", k, err)
		}
		want := 1 + 2*k
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("VarianceFactor(%.3f) = %.12f, want %.12f", k, got, want)
		}
		if got <= prev && k > 0 {
			t.Errorf("linear branch not strictly increasing at k = %.3f", k)
		}
		prev = got
	}

	t.Logf("✓ Stable regime is 1 + 2k, strictly increasing")
}

// TestVarianceFactor_BranchContinuity verifies the linear and quadratic
// branches join at k = 0.65: 1 + 2·0.65 = 1 + 1.3 = 2.3 on both sides.
func TestVarianceFactor_BranchContinuity(t *testing.T) {
	AssertBranchContinuity(t, DefaultModelTolerances())

	at, err := VarianceFactor(PreCriticalRatio)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(at-2.3) > 1e-12 {
		t.Errorf("VarianceFactor(0.65) = %.12f, want 2.3", at)
	}
}

// TestVarianceFactor_CliffDiscontinuity verifies the intentional jump at
// k = 0.81. Just below the cliff the quadratic branch gives
// 2.3 + 20·(0.16)² ≈ 2.81; at the cliff the exponential branch starts at
// 122. The jump is the phenomenon, not a bug.
func TestVarianceFactor_CliffDiscontinuity(t *testing.T) {
	AssertCliffJump(t, DefaultModelTolerances())

	below, err := VarianceFactor(0.8099)
	if err != nil {
		t.Fatal(err)
	}
	if below >= 20 {
		t.Errorf("VarianceFactor(0.8099) = %.2f, want < 20", below)
	}

	at, err := VarianceFactor(CliffRatio)
	if err != nil {
		t.Fatal(err)
	}
	if at < 122 {
		t.Errorf("VarianceFactor(0.81) = %.2f, want ≥ 122", at)
	}
	// Exactly 0.81 selects the cliff branch (≥, not >).
	if math.Abs(at-122) > 1e-9 {
		t.Errorf("VarianceFactor(0.81) = %.12f, want exactly 122", at)
	}
}

// TestVarianceFactor_StabilizedPoint verifies k = 0.50 (the stabilized
// operating point) gives exactly 2.0.
func TestVarianceFactor_StabilizedPoint(t *testing.T) {
	got, err := VarianceFactor(0.50)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.0 {
		t.Errorf("VarianceFactor(0.50) = %v, want exactly 2.0", got)
	}

	t.Logf("✓ VarianceFactor(0.50) = %.1f", got)
}

// TestVarianceFactor_DeepCliff verifies k = 0.85: 122·e^(0.4) ≈ 182.03,
// well below the 1000 cap.
func TestVarianceFactor_DeepCliff(t *testing.T) {
	got, err := VarianceFactor(0.85)
	if err != nil {
		t.Fatal(err)
	}
	want := 122 * math.Exp(0.4)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("VarianceFactor(0.85) = %.6f, want %.6f", got, want)
	}
	if got > VarianceFactorCap {
		t.Errorf("VarianceFactor(0.85) = %.1f exceeds cap %.0f", got, VarianceFactorCap)
	}

	t.Logf("✓ VarianceFactor(0.85) = %.1f (uncapped)", got)
}

// TestVarianceFactor_CapPreserved verifies the numerical-stability ceiling.
// Within the k ∈ [0, 1] domain the exponential tops out at
// 122·e^(1.9) ≈ 815.7, so the cap never actually binds; it is preserved
// verbatim as a saturating ceiling regardless.
func TestVarianceFactor_CapPreserved(t *testing.T) {
	got, err := VarianceFactor(1.0)
	if err != nil {
		t.Fatal(err)
	}
	want := 122 * math.Exp(1.9)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("VarianceFactor(1.0) = %.6f, want %.6f", got, want)
	}
	if got > VarianceFactorCap {
		t.Errorf("VarianceFactor(1.0) = %.1f exceeds cap %.0f", got, VarianceFactorCap)
	}

	t.Logf("✓ In-domain maximum %.1f stays under the %.0f cap", got, VarianceFactorCap)
}

// TestVarianceFactor_DomainErrors verifies ratios outside [0, 1] are
// rejected with DomainError.
func TestVarianceFactor_DomainErrors(t *testing.T) {
	for _, k := range []float64{-0.1, 1.01, math.NaN()} {
		_, err := VarianceFactor(k)
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("VarianceFactor(%v): got %v, want DomainError", k, err)
		}
	}

	t.Logf("✓ Out-of-range stiffness ratios rejected")
}

// TestStiffnessRatio_Monotone verifies k is non-decreasing in load and
// bounded by the 0.95 ceiling.
func TestStiffnessRatio_Monotone(t *testing.T) {
	loads := []float64{0, 10, 50, 100, 200, 300, 400, 500, 750, 1000, 5000, 1e6}
	AssertStiffnessMonotone(t, loads, DefaultModelTolerances())
}

// TestStiffnessRatio_Saturation verifies the asymptote: k(0) = 0.5 and
// k → 0.9 as load → ∞, never reaching the 0.95 ceiling.
func TestStiffnessRatio_Saturation(t *testing.T) {
	if k := StiffnessRatio(0); k != 0.5 {
		t.Errorf("StiffnessRatio(0) = %v, want 0.5", k)
	}

	k := StiffnessRatio(1e9)
	if math.Abs(k-0.9) > 1e-6 {
		t.Errorf("StiffnessRatio(∞) = %.6f, want → 0.9", k)
	}
	if k > StiffnessCeiling {
		t.Errorf("StiffnessRatio exceeded ceiling: %.6f", k)
	}

	t.Logf("✓ k saturates toward 0.9, ceiling %.2f unreachable", StiffnessCeiling)
}

// TestCliffDistance verifies distance is 0.81 − k below the cliff and
// clamps to zero at and beyond it.
func TestCliffDistance(t *testing.T) {
	if d := CliffDistance(0.50); math.Abs(d-0.31) > 1e-12 {
		t.Errorf("CliffDistance(0.50) = %v, want 0.31", d)
	}
	if d := CliffDistance(0.81); d != 0 {
		t.Errorf("CliffDistance(0.81) = %v, want 0", d)
	}
	if d := CliffDistance(0.90); d != 0 {
		t.Errorf("CliffDistance(0.90) = %v, want 0", d)
	}
}
