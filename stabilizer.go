package focusbench

import (
	"fmt"
	"math"
)

// Active stabilization operating point. The compensation factor is an
// empirical end-to-end figure (stiffness modulation plus surface-figure
// correction measured together); it is applied directly to base warpage and
// must not be re-derived from the variance model.
const (
	StabilizedRatio    = 0.50
	CompensationFactor = 54.0
)

// Improvement summarizes the stabilized configuration against its baseline.
type Improvement struct {
	// WarpageReduction is baseline effective warpage over stabilized
	// warpage. +Inf when the stabilized warpage is exactly zero (zero-load
	// baseline).
	WarpageReduction float64

	// MarginRecoveryNM is the focus margin gained, in nm.
	MarginRecoveryNM float64
}

// StabilizedAnalysis is the what-if verdict produced by SimulateStabilized.
type StabilizedAnalysis struct {
	Analysis
	Improvement Improvement
}

// SimulateStabilized models the same machine under active stabilization:
// stiffness held at k = 0.50 regardless of load, and warpage compensated
// 54× relative to the baseline's BASE warpage (not its effective warpage;
// the compensation acts on the physical surface, upstream of the variance
// amplification it eliminates).
//
// This is a comparative what-if, not a physical simulation. The status is
// OPTIMAL whenever the stabilized warpage is inside the budget; otherwise
// the ordinary ladder applies.
func SimulateStabilized(baseline Analysis) StabilizedAnalysis {
	// k = 0.50 is inside [0, 1] by construction, so the error is impossible.
	variance, _ := VarianceFactor(StabilizedRatio)

	stabilizedNM := baseline.BaseWarpageNM / CompensationFactor
	budget := baseline.FocusBudgetNM
	margin := budget - stabilizedNM

	status := StatusOptimal
	message := fmt.Sprintf("warpage reduced %.0f×: %.2f nm (margin: %+.1f nm)",
		CompensationFactor, stabilizedNM, margin)
	if stabilizedNM >= budget {
		status, message = classify(StabilizedRatio, margin, stabilizedNM, budget)
	}

	reduction := math.Inf(1)
	if stabilizedNM > 0 {
		reduction = baseline.EffectiveWarpageNM / stabilizedNM
	}

	return StabilizedAnalysis{
		Analysis: Analysis{
			Machine:            baseline.Machine + " (stabilized)",
			ThermalLoadWatts:   baseline.ThermalLoadWatts,
			TemperatureRiseC:   baseline.TemperatureRiseC,
			BaseWarpageNM:      baseline.BaseWarpageNM,
			StiffnessRatio:     StabilizedRatio,
			VarianceFactor:     variance,
			EffectiveWarpageNM: stabilizedNM,
			FocusBudgetNM:      budget,
			FocusMarginNM:      margin,
			Status:             status,
			Message:            message,
			CliffDistance:      CliffDistance(StabilizedRatio),
		},
		Improvement: Improvement{
			WarpageReduction: reduction,
			MarginRecoveryNM: margin - baseline.FocusMarginNM,
		},
	}
}
