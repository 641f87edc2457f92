package jsce

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorwall/internal/rebar"
)

// Constants holds the code parameters of one design run.
// The zero value is not usable; start from Default.
type Constants struct {
	// Partial safety factors
	GammaA float64 `yaml:"gamma_a"` // structural analysis factor
	GammaF float64 `yaml:"gamma_f"` // load factor
	GammaB float64 `yaml:"gamma_b"` // member factor (flexure)
	GammaS float64 `yaml:"gamma_s"` // material factor, steel
	GammaC float64 `yaml:"gamma_c"` // material factor, concrete
	GammaI float64 `yaml:"gamma_i"` // structure importance factor

	// Shear member factor applied to Vcd
	GammaV float64 `yaml:"gamma_v"`

	// Materials (N/mm²)
	Fck float64 `yaml:"fck"` // concrete design strength f'ck
	Fyk float64 `yaml:"fyk"` // characteristic steel yield strength

	ModulusRatio float64 `yaml:"modulus_ratio"` // n = Es/Ec
	Es           float64 `yaml:"es"`            // steel Young's modulus (kN/mm²)

	// Wall
	Height     float64 `yaml:"height"`      // stem height H (m)
	UnitWidth  float64 `yaml:"unit_width"`  // b (mm)
	UnitWeight float64 `yaml:"unit_weight"` // w0, concrete (kN/m³)

	// Backfill and loading
	SoilWeight     float64 `yaml:"soil_weight"`     // w1 (kN/m³)
	Beta1          float64 `yaml:"beta1"`           // wall friction angle, permanent (rad)
	Beta2          float64 `yaml:"beta2"`           // wall friction angle, seismic (rad)
	Surcharge      float64 `yaml:"surcharge"`       // q0 (kN/m²)
	K1             float64 `yaml:"k1"`              // Coulomb active coefficient, permanent
	K2             float64 `yaml:"k2"`              // Coulomb active coefficient, seismic
	SeismicCoeff   float64 `yaml:"seismic_coeff"`   // kh
	CrackAllowance float64 `yaml:"crack_allowance"` // wa = CrackAllowance * c

	// Distribution reinforcement
	DistributionBar     float64 `yaml:"distribution_bar"`     // nominal diameter (mm)
	DistributionSpacing float64 `yaml:"distribution_spacing"` // mm
}

// Default returns the constants of the reference wall.
func Default() Constants {
	return Constants{
		GammaA: 1,
		GammaF: 1.15,
		GammaB: 1.15,
		GammaS: 1,
		GammaC: 1.3,
		GammaI: 1.15,
		GammaV: 1.3,

		Fck: 30,
		Fyk: 345,

		ModulusRatio: 7.1,
		Es:           200,

		Height:     4.5,
		UnitWidth:  1000,
		UnitWeight: 24,

		SoilWeight:     17,
		Beta1:          0.5 * (1.0 / 6) * math.Pi,
		Beta2:          0,
		Surcharge:      12,
		K1:             0.321,
		K2:             0.52,
		SeismicCoeff:   0.2,
		CrackAllowance: 0.005,

		DistributionBar:     12.7,
		DistributionSpacing: 250,
	}
}

// Fcd is the design compressive strength of concrete (N/mm²).
func (c Constants) Fcd() float64 {
	return c.Fck / c.GammaC
}

// Fyd is the design yield strength of reinforcement (N/mm²).
func (c Constants) Fyd() float64 {
	return c.Fyk / c.GammaS
}

// Fbod is the design bond strength between bar and concrete (N/mm²).
func (c Constants) Fbod() float64 {
	return 0.28 * math.Pow(c.Fck, 2.0/3) / c.GammaC
}

// Fvcd is the design shear strength of concrete without web steel (N/mm²).
func (c Constants) Fvcd() float64 {
	return 0.20 * math.Pow(c.Fcd(), 1.0/3)
}

// Validate rejects constants that would make the formulas meaningless.
func (c Constants) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"gamma_a", c.GammaA},
		{"gamma_f", c.GammaF},
		{"gamma_b", c.GammaB},
		{"gamma_s", c.GammaS},
		{"gamma_c", c.GammaC},
		{"gamma_i", c.GammaI},
		{"gamma_v", c.GammaV},
		{"fck", c.Fck},
		{"fyk", c.Fyk},
		{"modulus_ratio", c.ModulusRatio},
		{"es", c.Es},
		{"height", c.Height},
		{"unit_width", c.UnitWidth},
		{"crack_allowance", c.CrackAllowance},
		{"distribution_spacing", c.DistributionSpacing},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}
	if c.SoilWeight < 0 || c.Surcharge < 0 || c.UnitWeight < 0 {
		return fmt.Errorf("unit weights and surcharge must not be negative")
	}
	if c.K1 < 0 || c.K2 < 0 || c.SeismicCoeff < 0 {
		return fmt.Errorf("earth pressure and seismic coefficients must not be negative")
	}
	if _, err := rebar.FromMM(c.DistributionBar); err != nil {
		return fmt.Errorf("distribution_bar: %w", err)
	}
	return nil
}
