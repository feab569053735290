package focusbench

import "math"

// The piecewise variance law below is a hand fit to FEM campaign data, not a
// first-principles derivation. The constants and branch boundaries are the
// documented phenomenon; do not clean them up.
const (
	// PreCriticalRatio is the stiffness ratio where linear scaling ends and
	// quadratic growth begins. The two branches join continuously here.
	PreCriticalRatio = 0.65

	// CliffRatio is the mode-inversion threshold. At k ≥ 0.81 the variance
	// factor jumps discontinuously to 122×. The comparison is inclusive:
	// exactly 0.81 is already on the cliff.
	CliffRatio = 0.81

	// StiffnessCeiling is the hard physical limit of the stiffness ratio.
	// StiffnessRatio saturates toward 0.9 and never exceeds this.
	StiffnessCeiling = 0.95

	// ReferenceLoadWatts is the e-folding scale of the stiffness response.
	ReferenceLoadWatts = 300.0

	// CliffAmplification is the variance factor at exactly k = 0.81.
	CliffAmplification = 122.0

	// CliffExponentRate governs exponential growth beyond the cliff.
	CliffExponentRate = 10.0

	// VarianceFactorCap bounds the cliff branch for numerical stability.
	// A saturating ceiling, not a physical limit.
	VarianceFactorCap = 1000.0
)

// StiffnessRatio computes the effective azimuthal stiffness ratio k for a
// thermal load in Watts:
//
//	k = min(0.95, 0.5 + 0.4·(1 − e^(−load/300)))
//
// As the load increases the substrate softens non-uniformly and k climbs
// toward 0.9, asymptotically; the 0.95 ceiling is never reached in practice.
// Non-decreasing in load for load ≥ 0. Behavior for negative load is
// undefined; callers validate power upstream (see TemperatureRise).
func StiffnessRatio(loadWatts float64) float64 {
	k := 0.5 + 0.4*(1-math.Exp(-loadWatts/ReferenceLoadWatts))
	return math.Min(k, StiffnessCeiling)
}

// VarianceFactor maps a stiffness ratio k ∈ [0, 1] to the variance
// amplification applied to nominal warpage. Three regimes:
//
//	k < 0.65          stable:        1 + 2k            (linear)
//	0.65 ≤ k < 0.81   pre-critical:  2.3 + 20(k−0.65)² (quadratic)
//	k ≥ 0.81          cliff:         min(1000, 122·e^(10(k−0.81)))
//
// Continuous at k = 0.65 by construction (both branches give 2.3) and
// intentionally discontinuous at k = 0.81: the jump from ~2.8 to 122 is the
// mode inversion itself, not a modelling artifact.
//
// Returns DomainError if k is outside [0, 1].
func VarianceFactor(k float64) (float64, error) {
	if math.IsNaN(k) || k < 0 || k > 1 {
		return 0, &DomainError{Quantity: "stiffness ratio", Value: k, Constraint: "k ∈ [0, 1]"}
	}

	switch {
	case k < PreCriticalRatio:
		return 1 + 2*k, nil
	case k < CliffRatio:
		d := k - PreCriticalRatio
		return 1 + 2*PreCriticalRatio + 20*d*d, nil
	default:
		factor := CliffAmplification * math.Exp(CliffExponentRate*(k-CliffRatio))
		return math.Min(factor, VarianceFactorCap), nil
	}
}

// CliffDistance returns how far below the cliff a stiffness ratio sits.
// Zero at or beyond the cliff.
func CliffDistance(k float64) float64 {
	return math.Max(0, CliffRatio-k)
}
