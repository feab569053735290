package focusbench

import (
	"fmt"
	"math"
)

// Status classifies one analysis. Severity is a total order; see Severity.
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"              // Stabilized configuration within budget
	StatusStable       Status = "STABLE"               // Margin ≥ 50% of budget
	StatusWarning      Status = "WARNING"              // Margin < 50% of budget
	StatusDanger       Status = "DANGER"               // Margin < 30% of budget
	StatusFocusFailure Status = "FOCUS_FAILURE"        // Budget exceeded
	StatusCatastrophic Status = "CATASTROPHIC_FAILURE" // Cliff triggered (k ≥ 0.81)
)

// Severity returns the position of the status in the total severity order,
// 0 (OPTIMAL) through 5 (CATASTROPHIC_FAILURE). For a fixed profile,
// increasing load never decreases severity: k is monotonic in load and the
// cliff branch is sticky above 0.81.
func (s Status) Severity() int {
	switch s {
	case StatusOptimal:
		return 0
	case StatusStable:
		return 1
	case StatusWarning:
		return 2
	case StatusDanger:
		return 3
	case StatusFocusFailure:
		return 4
	case StatusCatastrophic:
		return 5
	}
	return -1
}

// Analysis is the computed verdict for one (profile, load) pair. Immutable;
// produced once per Analyze call. Lengths in nm, temperatures in °C.
type Analysis struct {
	Machine            string
	ThermalLoadWatts   float64
	TemperatureRiseC   float64
	BaseWarpageNM      float64
	StiffnessRatio     float64 // k, dimensionless, [0, 1]
	VarianceFactor     float64 // ≥ 1 below the cliff cap
	EffectiveWarpageNM float64 // BaseWarpage · √VarianceFactor
	FocusBudgetNM      float64
	FocusMarginNM      float64 // Budget − effective warpage; negative = exceeded
	Status             Status
	Message            string
	CliffDistance      float64 // max(0, 0.81 − k)
}

// Analyze performs the complete focus stability analysis for a profile at
// its nominal thermal load. Deterministic, side-effect-free, no I/O.
func Analyze(profile MachineProfile) (Analysis, error) {
	return AnalyzeAtLoad(profile, profile.ThermalLoadWatts)
}

// AnalyzeAtLoad is Analyze with an explicit load override in Watts.
//
// Pipeline: temperature rise → base warpage → stiffness ratio → variance
// factor → effective warpage → margin → status.
func AnalyzeAtLoad(profile MachineProfile, loadWatts float64) (Analysis, error) {
	if err := profile.Validate(); err != nil {
		return Analysis{}, err
	}

	deltaT, err := TemperatureRise(loadWatts,
		DefaultSubstrateRadiusM, DefaultSubstrateThicknessM, ULE.ThermalConductivity)
	if err != nil {
		return Analysis{}, err
	}

	warpageM, err := ThermalWarpage(deltaT,
		DefaultSubstrateRadiusM, DefaultSubstrateThicknessM, profile.SubstrateCTE)
	if err != nil {
		return Analysis{}, err
	}
	warpageNM := warpageM * 1e9

	k := StiffnessRatio(loadWatts)
	variance, err := VarianceFactor(k)
	if err != nil {
		return Analysis{}, err
	}

	effectiveNM := warpageNM * math.Sqrt(variance)
	budget := profile.FocusBudgetNM
	margin := budget - effectiveNM

	status, message := classify(k, margin, effectiveNM, budget)

	return Analysis{
		Machine:            profile.Name,
		ThermalLoadWatts:   loadWatts,
		TemperatureRiseC:   deltaT,
		BaseWarpageNM:      warpageNM,
		StiffnessRatio:     k,
		VarianceFactor:     variance,
		EffectiveWarpageNM: effectiveNM,
		FocusBudgetNM:      budget,
		FocusMarginNM:      margin,
		Status:             status,
		Message:            message,
		CliffDistance:      CliffDistance(k),
	}, nil
}

// classify applies the status precedence ladder. First match wins; the cliff
// outranks everything regardless of margin sign.
func classify(k, margin, effectiveNM, budget float64) (Status, string) {
	switch {
	case k >= CliffRatio:
		return StatusCatastrophic,
			fmt.Sprintf("THE CLIFF: k = %.3f ≥ %.2f triggers mode inversion", k, CliffRatio)
	case margin < 0:
		return StatusFocusFailure,
			fmt.Sprintf("warpage (%.1f nm) exceeds budget (%.1f nm)", effectiveNM, budget)
	case margin < 0.3*budget:
		return StatusDanger,
			fmt.Sprintf("margin critically low: %.1f nm remaining", margin)
	case margin < 0.5*budget:
		return StatusWarning,
			fmt.Sprintf("margin reduced: %.1f nm remaining", margin)
	default:
		return StatusStable,
			fmt.Sprintf("comfortable margin: %.1f nm", margin)
	}
}
