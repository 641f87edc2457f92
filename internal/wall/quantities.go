package wall

import (
	"github.com/alexiusacademia/gorwall/internal/rebar"
)

// Quantities are the material takeoff of a design per unit wall width.
type Quantities struct {
	Steel    float64 // Vs - main plus distribution bars (mm² basis)
	Concrete float64 // Vc - stem section less the steel (mm²)
}

// DistributionSteel returns the fixed allowance for distribution bars over
// the full stem height. The bar size is checked by jsce.Constants.Validate.
func (m Model) DistributionSteel() float64 {
	c := m.C
	bar, _ := rebar.FromMM(c.DistributionBar)
	a, _ := bar.Area()
	return a * (1000 * c.Height) / c.DistributionSpacing
}

// SteelQuantity returns Vs for a design.
func (m Model) SteelQuantity(d Design) float64 {
	c := m.C
	a, _ := d.Diameter.Area()
	main := a * (d.TransitionHeight*float64(d.LowerCount) + (c.Height-d.TransitionHeight)*float64(d.UpperCount)) / (c.UnitWidth / 1000)
	return main + m.DistributionSteel()
}

// ConcreteQuantity returns Vc for a design.
func (m Model) ConcreteQuantity(d Design) float64 {
	return 0.5*(d.LowerWidth+d.UpperWidth)*m.C.Height*1e6 - m.SteelQuantity(d)
}

// Quantities returns both material quantities of a design.
func (m Model) Quantities(d Design) Quantities {
	return Quantities{
		Steel:    m.SteelQuantity(d),
		Concrete: m.ConcreteQuantity(d),
	}
}
