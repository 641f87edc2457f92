package wall

import (
	"math"

	"github.com/alexiusacademia/gorwall/internal/jsce"
)

// Ceiling on the size and steel-ratio factors of the shear strength.
const betaMax = 1.5

// FlexuralCapacity returns the design flexural capacity Mud at x (kN·m).
func (m Model) FlexuralCapacity(d Design, x float64) float64 {
	c := m.C
	as := m.SteelArea(d, x)
	p := m.SteelRatio(d, x)
	return as * c.Fyd() * m.EffectiveDepth(d, x) * (1 - 0.6*p*(c.Fyd()/c.Fcd())) / c.GammaB / c.UnitWidth
}

// BetaD is the size-effect factor βd at x.
func (m Model) BetaD(d Design, x float64) float64 {
	return math.Min(math.Pow(1/m.EffectiveDepth(d, x), 0.25), betaMax)
}

// BetaP is the steel-ratio factor βp at x.
func (m Model) BetaP(d Design, x float64) float64 {
	return math.Min(math.Pow(100*m.SteelRatio(d, x), 1.0/3), betaMax)
}

// DiagonalCrackStrength returns fvvcd at x (N/mm²).
func (m Model) DiagonalCrackStrength(d Design, x float64) float64 {
	return m.BetaD(d, x) * m.BetaP(d, x) * m.C.Fvcd()
}

// ShearCapacity returns the design shear capacity Vcd at x (kN).
func (m Model) ShearCapacity(d Design, x float64) float64 {
	return m.DiagonalCrackStrength(d, x) * 1000 * m.EffectiveDepth(d, x) / m.C.GammaV
}

// NeutralAxisFactor returns the lever-arm factor j of the cracked
// transformed section at x.
func (m Model) NeutralAxisFactor(d Design, x float64) float64 {
	np := m.C.ModulusRatio * m.SteelRatio(d, x)
	return 1 - (-np+math.Sqrt(math.Pow(np+1, 2)-1))/3
}

// NeutralAxisRatio returns k = 3(1-j), the neutral axis depth over d.
func (m Model) NeutralAxisRatio(d Design, x float64) float64 {
	return 3 * (1 - m.NeutralAxisFactor(d, x))
}

// SteelStress returns σs under the unfactored permanent moment (kN/mm²).
func (m Model) SteelStress(d Design, x float64) float64 {
	c := m.C
	md := m.Moment(jsce.Permanent, d, x)
	return c.UnitWidth * md / (c.GammaA * c.GammaF * m.SteelArea(d, x) * 1000 * m.EffectiveDepth(d, x) * m.NeutralAxisFactor(d, x))
}

// CrackSpacing returns the crack spacing term l = 4c + 0.7(cs - φ) (mm).
func (m Model) CrackSpacing(d Design, x float64) float64 {
	return 4*d.Cover + 0.7*(m.BarSpacing(d, x)-d.Diameter.MM())
}

// CrackWidth returns the flexural crack width w at x (mm).
func (m Model) CrackWidth(d Design, x float64) float64 {
	return m.CrackSpacing(d, x) * (m.SteelStress(d, x) / m.C.Es)
}

// AllowableCrackWidth returns wa (mm).
func (m Model) AllowableCrackWidth(d Design) float64 {
	return m.C.CrackAllowance * d.Cover
}
