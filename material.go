package focusbench

// EUVWavelengthM is the EUV exposure wavelength in meters (13.5 nm).
const EUVWavelengthM = 13.5e-9

// SubstrateMaterial holds the thermo-mechanical constants of one substrate
// material. Values are process-wide, read-only, SI units throughout.
type SubstrateMaterial struct {
	Name                string
	CTE                 float64 // Coefficient of thermal expansion [1/K]
	YoungModulus        float64 // [Pa]
	PoissonRatio        float64 // dimensionless
	ThermalConductivity float64 // [W/(m·K)]
	SpecificHeat        float64 // [J/(kg·K)]
	Density             float64 // [kg/m³]

	// CliffThreshold is the material-specific stiffness ratio at which the
	// mode inversion was observed in the material-sensitivity campaigns.
	// Reference metadata for reports; the analytic model uses the silicon
	// reference value CliffRatio (0.81) regardless of material.
	CliffThreshold float64
}

// ULE is Corning ULE glass, the standard EUV substrate. Near-zero CTE is the
// whole point of the material.
var ULE = SubstrateMaterial{
	Name:                "ule",
	CTE:                 0.03e-6,
	YoungModulus:        67.6e9,
	PoissonRatio:        0.17,
	ThermalConductivity: 1.31,
	SpecificHeat:        767,
	Density:             2210,
	CliffThreshold:      0.84,
}

// Zerodur is the Schott alternative. Slightly higher CTE than ULE.
var Zerodur = SubstrateMaterial{
	Name:                "zerodur",
	CTE:                 0.05e-6,
	YoungModulus:        90.3e9,
	PoissonRatio:        0.24,
	ThermalConductivity: 1.46,
	SpecificHeat:        800,
	Density:             2530,
	CliffThreshold:      0.83,
}

// Silicon is the reference material for the cliff campaigns.
var Silicon = SubstrateMaterial{
	Name:                "silicon",
	CTE:                 2.6e-6,
	YoungModulus:        130e9,
	PoissonRatio:        0.28,
	ThermalConductivity: 150,
	SpecificHeat:        700,
	Density:             2330,
	CliffThreshold:      0.81,
}

// SiC, GaAs, InP, GaN and AlN close the remaining escape routes: every
// candidate substrate hits a cliff of its own within a few percent of the
// silicon reference.
var (
	SiC = SubstrateMaterial{
		Name: "sic", CTE: 4.0e-6, YoungModulus: 410e9, PoissonRatio: 0.14,
		ThermalConductivity: 370, SpecificHeat: 750, Density: 3210,
		CliffThreshold: 0.82,
	}
	GaAs = SubstrateMaterial{
		Name: "gaas", CTE: 5.73e-6, YoungModulus: 85.9e9, PoissonRatio: 0.31,
		ThermalConductivity: 55, SpecificHeat: 330, Density: 5320,
		CliffThreshold: 0.78,
	}
	InP = SubstrateMaterial{
		Name: "inp", CTE: 4.6e-6, YoungModulus: 61e9, PoissonRatio: 0.36,
		ThermalConductivity: 68, SpecificHeat: 310, Density: 4810,
		CliffThreshold: 0.76,
	}
	GaN = SubstrateMaterial{
		Name: "gan", CTE: 3.17e-6, YoungModulus: 300e9, PoissonRatio: 0.25,
		ThermalConductivity: 130, SpecificHeat: 490, Density: 6150,
		CliffThreshold: 0.79,
	}
	AlN = SubstrateMaterial{
		Name: "aln", CTE: 4.5e-6, YoungModulus: 310e9, PoissonRatio: 0.24,
		ThermalConductivity: 285, SpecificHeat: 740, Density: 3260,
		CliffThreshold: 0.80,
	}
)

// materials is the static registry, initialized once at process start.
// There is deliberately no mutation path: lookups copy the value out.
var materials = map[string]SubstrateMaterial{
	ULE.Name:     ULE,
	Zerodur.Name: Zerodur,
	Silicon.Name: Silicon,
	SiC.Name:     SiC,
	GaAs.Name:    GaAs,
	InP.Name:     InP,
	GaN.Name:     GaN,
	AlN.Name:     AlN,
}

// MaterialByName looks up a substrate material by its registry key
// ("ule", "zerodur", "silicon", "sic", "gaas", "inp", "gan", "aln").
func MaterialByName(name string) (SubstrateMaterial, bool) {
	m, ok := materials[name]
	return m, ok
}

// MaterialNames returns the registry keys. Order is not specified.
func MaterialNames() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	return names
}
