package focusbench

// Regime labels one branch of the variance law.
type Regime string

const (
	RegimeStable      Regime = "stable"       // k < 0.65, linear scaling
	RegimePreCritical Regime = "pre-critical" // 0.65 ≤ k < 0.81, quadratic growth
	RegimeCliff       Regime = "cliff"        // k ≥ 0.81, mode inversion
)

// RegimeForRatio classifies a stiffness ratio against the branch boundaries
// of the variance law. Both boundaries are lower-bound inclusive of the
// higher regime, matching VarianceFactor's branch selection exactly.
func RegimeForRatio(k float64) Regime {
	switch {
	case k < PreCriticalRatio:
		return RegimeStable
	case k < CliffRatio:
		return RegimePreCritical
	default:
		return RegimeCliff
	}
}

// SweepPoint is one sample of the variance law.
type SweepPoint struct {
	K              float64
	VarianceFactor float64
	Regime         Regime
}

// SweepConfig controls a stiffness-ratio sweep.
type SweepConfig struct {
	MinK  float64 // Starting ratio, inclusive
	MaxK  float64 // Ending ratio, inclusive within step rounding
	StepK float64 // Increment, > 0
}

// DefaultSweepConfig covers the interesting window around the cliff at
// chart resolution.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{MinK: 0.50, MaxK: 0.85, StepK: 0.0005}
}

// SweepVariance samples VarianceFactor over the configured range. The cliff
// discontinuity shows up as-is in the samples: two adjacent points straddle
// the 43× jump.
//
// Returns DomainError for an inverted range, a non-positive step, or bounds
// outside [0, 1].
func SweepVariance(cfg SweepConfig) ([]SweepPoint, error) {
	switch {
	case cfg.StepK <= 0:
		return nil, &DomainError{Quantity: "step", Value: cfg.StepK, Constraint: "step > 0"}
	case cfg.MinK > cfg.MaxK:
		return nil, &DomainError{Quantity: "range minimum", Value: cfg.MinK,
			Constraint: "min ≤ max"}
	case cfg.MinK < 0 || cfg.MaxK > 1:
		return nil, &DomainError{Quantity: "range bound", Value: cfg.MaxK,
			Constraint: "k ∈ [0, 1]"}
	}

	points := make([]SweepPoint, 0, int((cfg.MaxK-cfg.MinK)/cfg.StepK)+1)
	// Index-based stepping avoids accumulating float error across the range.
	steps := int((cfg.MaxK-cfg.MinK)/cfg.StepK + 0.5)
	for i := 0; i <= steps; i++ {
		k := cfg.MinK + float64(i)*cfg.StepK
		if k > cfg.MaxK {
			k = cfg.MaxK
		}
		factor, err := VarianceFactor(k)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{K: k, VarianceFactor: factor, Regime: RegimeForRatio(k)})
	}
	return points, nil
}

// LoadSweepPoint is one full analysis along a thermal-load sweep.
type LoadSweepPoint struct {
	LoadWatts float64
	Analysis  Analysis
}

// SweepLoad analyzes the profile across a load range in Watts. Produces the
// focus-drift-versus-power curve; status transitions along the sweep are
// monotone in severity because k is monotone in load.
func SweepLoad(profile MachineProfile, minW, maxW, stepW float64) ([]LoadSweepPoint, error) {
	switch {
	case stepW <= 0:
		return nil, &DomainError{Quantity: "step", Value: stepW, Constraint: "step > 0 W"}
	case minW > maxW:
		return nil, &DomainError{Quantity: "range minimum", Value: minW, Constraint: "min ≤ max"}
	case minW < 0:
		return nil, &DomainError{Quantity: "power", Value: minW, Constraint: "power ≥ 0 W"}
	}

	points := make([]LoadSweepPoint, 0, int((maxW-minW)/stepW)+1)
	steps := int((maxW-minW)/stepW + 0.5)
	for i := 0; i <= steps; i++ {
		load := minW + float64(i)*stepW
		if load > maxW {
			load = maxW
		}
		analysis, err := AnalyzeAtLoad(profile, load)
		if err != nil {
			return nil, err
		}
		points = append(points, LoadSweepPoint{LoadWatts: load, Analysis: analysis})
	}
	return points, nil
}
