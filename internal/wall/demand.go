package wall

import (
	"math"

	"github.com/alexiusacademia/gorwall/internal/jsce"
)

// pressure returns the triangular (kN/m³) and uniform (kN/m²) load
// intensities acting on the stem for a load case.
func (m Model) pressure(lc jsce.LoadCase, d Design) (tri, uni float64) {
	c := m.C
	factor := c.GammaA * c.GammaF
	switch lc {
	case jsce.Seismic:
		tri = factor * 0.5 * (c.K2*c.SoilWeight*math.Cos(c.Beta2) + c.SeismicCoeff*c.UnitWeight*(d.LowerWidth-d.UpperWidth)/c.Height)
		uni = factor * (c.K2*c.Surcharge*math.Cos(c.Beta2) + c.SeismicCoeff*c.UnitWeight*d.UpperWidth)
	default:
		tri = factor * c.K1 * 0.5 * c.SoilWeight * math.Cos(c.Beta1)
		uni = factor * c.K1 * c.Surcharge * math.Cos(c.Beta1)
	}
	return tri, uni
}

// Moment returns the design bending moment Md at x (kN·m per unit width).
func (m Model) Moment(lc jsce.LoadCase, d Design, x float64) float64 {
	tri, uni := m.pressure(lc, d)
	h := m.C.Height - x
	return (1.0/3)*tri*math.Pow(h, 3) + 0.5*uni*math.Pow(h, 2)
}

// Shear returns the design shear force Vd at x (kN per unit width).
// On a tapered stem part of the moment is carried by the inclined
// compression face, which reduces the shear by taper·Md/d.
func (m Model) Shear(lc jsce.LoadCase, d Design, x float64) float64 {
	tri, uni := m.pressure(lc, d)
	h := m.C.Height - x
	return tri*math.Pow(h, 2) + uni*h - m.taper(d)*(m.Moment(lc, d, x)/m.EffectiveDepth(d, x))
}
