package focusbench

import "math"

// Substrate geometry defaults, meters. Heat is deposited in a central
// footprint and conducted radially to edge cooling.
const (
	DefaultSubstrateRadiusM    = 0.15
	DefaultSubstrateThicknessM = 0.05

	// HeatSourceRadiusM is the fixed inner radius of the radial conduction
	// model, the approximate footprint of the deposited EUV load.
	HeatSourceRadiusM = 0.01
)

// TemperatureRise estimates the steady-state center-to-edge temperature rise
// of the substrate under a central heat load, in °C.
//
// Radial conduction model:
//
//	ΔT = P / (2π·k·t) · ln(r_outer / r_inner)
//
// Where:
//   - P: deposited power [W]
//   - k: thermal conductivity [W/(m·K)]
//   - t: substrate thickness [m]
//   - r_outer, r_inner: substrate and heat-source radii [m]
//
// Returns DomainError for negative power, radius not exceeding the heat
// source footprint, or non-positive thickness/conductivity.
func TemperatureRise(powerWatts, radiusM, thicknessM, conductivity float64) (float64, error) {
	switch {
	case powerWatts < 0 || math.IsNaN(powerWatts):
		return 0, &DomainError{Quantity: "power", Value: powerWatts, Constraint: "power ≥ 0 W"}
	case radiusM <= HeatSourceRadiusM:
		return 0, &DomainError{Quantity: "radius", Value: radiusM,
			Constraint: "radius > heat source radius (0.01 m)"}
	case thicknessM <= 0:
		return 0, &DomainError{Quantity: "thickness", Value: thicknessM, Constraint: "thickness > 0 m"}
	case conductivity <= 0:
		return 0, &DomainError{Quantity: "conductivity", Value: conductivity,
			Constraint: "conductivity > 0 W/(m·K)"}
	}

	return powerWatts / (2 * math.Pi * conductivity * thicknessM) *
		math.Log(radiusM/HeatSourceRadiusM), nil
}

// ThermalWarpage estimates peak surface warpage from a radial thermal
// gradient, in meters. Thin-plate bending:
//
//	w = α·ΔT·R² / (4·t)
//
// Monotonic increasing in ΔT and in α. This is the bimetallic-style bending
// term only; eigenmode coupling enters separately through VarianceFactor.
//
// Returns DomainError for non-positive radius or thickness.
func ThermalWarpage(deltaT, radiusM, thicknessM, cte float64) (float64, error) {
	switch {
	case radiusM <= 0:
		return 0, &DomainError{Quantity: "radius", Value: radiusM, Constraint: "radius > 0 m"}
	case thicknessM <= 0:
		return 0, &DomainError{Quantity: "thickness", Value: thicknessM, Constraint: "thickness > 0 m"}
	}

	return cte * deltaT * radiusM * radiusM / (4 * thicknessM), nil
}

// WavefrontDefocus converts surface warpage to the wavefront defocus term
// (the Z4-dominant aberration from symmetric warpage), in meters. On a
// reflective path the wavefront error is twice the surface error.
//
// The numerical aperture is accepted for API stability but currently unused:
// the baseline formula carries no aperture-dependent scaling. Known
// limitation, kept as-is rather than inventing a dependence.
func WavefrontDefocus(warpageM, numericalAperture float64) float64 {
	_ = numericalAperture
	return 2 * warpageM
}
