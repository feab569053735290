package focusbench

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// Documented physical defaults for a High-NA EUV machine profile. A
// configuration source may omit any field; the default fills the gap.
const (
	DefaultNumericalAperture = 0.55
	DefaultWavelengthNM      = 13.5
	DefaultDepthOfFocusNM    = 45.0
	DefaultFocusBudgetNM     = 20.0
	DefaultThermalLoadWatts  = 500.0
)

// MachineProfile describes one imaging apparatus. Immutable after
// construction: every analysis is a pure function of a profile and a load.
type MachineProfile struct {
	Name              string  `mapstructure:"machine_name"`
	NumericalAperture float64 `mapstructure:"numerical_aperture"`
	WavelengthNM      float64 `mapstructure:"wavelength_nm"`
	DepthOfFocusNM    float64 `mapstructure:"depth_of_focus_nm"`
	FocusBudgetNM     float64 `mapstructure:"focus_budget_nm"`
	ThermalLoadWatts  float64 `mapstructure:"thermal_load_watts"`
	SubstrateCTE      float64 `mapstructure:"substrate_cte"`
}

// DefaultProfile returns a profile with the documented physical defaults and
// a ULE substrate.
func DefaultProfile(name string) MachineProfile {
	return MachineProfile{
		Name:              name,
		NumericalAperture: DefaultNumericalAperture,
		WavelengthNM:      DefaultWavelengthNM,
		DepthOfFocusNM:    DefaultDepthOfFocusNM,
		FocusBudgetNM:     DefaultFocusBudgetNM,
		ThermalLoadWatts:  DefaultThermalLoadWatts,
		SubstrateCTE:      ULE.CTE,
	}
}

// LoadProfile reads a machine profile from a JSON, YAML or TOML file.
// Missing fields take the documented defaults; present fields are validated.
// Returns ConfigurationError for unreadable files or out-of-range values.
func LoadProfile(path string) (MachineProfile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("machine_name", "")
	v.SetDefault("numerical_aperture", DefaultNumericalAperture)
	v.SetDefault("wavelength_nm", DefaultWavelengthNM)
	v.SetDefault("depth_of_focus_nm", DefaultDepthOfFocusNM)
	v.SetDefault("focus_budget_nm", DefaultFocusBudgetNM)
	v.SetDefault("thermal_load_watts", DefaultThermalLoadWatts)
	v.SetDefault("substrate_cte", ULE.CTE)

	if err := v.ReadInConfig(); err != nil {
		return MachineProfile{}, &ConfigurationError{
			Field:  "config",
			Reason: fmt.Sprintf("cannot read %s: %v", path, err),
		}
	}

	var profile MachineProfile
	if err := v.Unmarshal(&profile); err != nil {
		return MachineProfile{}, &ConfigurationError{
			Field:  "config",
			Reason: fmt.Sprintf("cannot decode %s: %v", path, err),
		}
	}

	if err := profile.Validate(); err != nil {
		return MachineProfile{}, err
	}
	return profile, nil
}

// Validate checks the profile against its documented ranges. Returns a
// ConfigurationError naming the first violating field.
func (p MachineProfile) Validate() error {
	switch {
	case math.IsNaN(p.NumericalAperture) || p.NumericalAperture <= 0 || p.NumericalAperture > 1:
		return &ConfigurationError{
			Field:  "numerical_aperture",
			Reason: fmt.Sprintf("must be in (0, 1], got %g", p.NumericalAperture),
		}
	case math.IsNaN(p.WavelengthNM) || p.WavelengthNM <= 0:
		return &ConfigurationError{
			Field:  "wavelength_nm",
			Reason: fmt.Sprintf("must be positive, got %g", p.WavelengthNM),
		}
	case math.IsNaN(p.FocusBudgetNM) || p.FocusBudgetNM <= 0:
		return &ConfigurationError{
			Field:  "focus_budget_nm",
			Reason: fmt.Sprintf("must be positive, got %g", p.FocusBudgetNM),
		}
	case math.IsNaN(p.ThermalLoadWatts) || p.ThermalLoadWatts < 0:
		return &ConfigurationError{
			Field:  "thermal_load_watts",
			Reason: fmt.Sprintf("must be non-negative, got %g", p.ThermalLoadWatts),
		}
	case math.IsNaN(p.SubstrateCTE):
		return &ConfigurationError{
			Field:  "substrate_cte",
			Reason: "not a number",
		}
	}
	return nil
}
