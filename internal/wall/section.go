package wall

import (
	"github.com/alexiusacademia/gorwall/internal/jsce"
)

// Model evaluates designs against one set of code constants.
// A Model is a value and safe to share; it holds no mutable state.
type Model struct {
	C jsce.Constants
}

// NewModel binds the formulas to the given constants.
func NewModel(c jsce.Constants) Model {
	return Model{C: c}
}

// taper is the width lost per metre of height.
func (m Model) taper(d Design) float64 {
	return (d.LowerWidth - d.UpperWidth) / m.C.Height
}

// EffectiveDepth returns d at height x (m).
// The result is only meaningful for 0 <= x <= H and a valid design;
// it is not clamped.
func (m Model) EffectiveDepth(d Design, x float64) float64 {
	d0 := d.LowerWidth - (d.Cover+0.5*d.Diameter.MM())/1000
	return d0 - m.taper(d)*x
}

// AnchorageLength returns the basic development length ld of a main bar (mm).
func (m Model) AnchorageLength(d Design) float64 {
	return 0.25 * 0.6 * d.Diameter.MM() * (m.C.Fyd() / m.C.Fbod())
}

// TransitionPosition returns the section x1 (m) where the cut-off bars stop
// counting. The effective depth is taken once at hs - ld, not iterated.
func (m Model) TransitionPosition(d Design) float64 {
	xs := d.TransitionHeight - m.AnchorageLength(d)/1000
	return xs - m.EffectiveDepth(d, xs)
}

// BarCount returns the number of main bars active at x.
func (m Model) BarCount(d Design, x float64) int {
	if x < m.TransitionPosition(d) {
		return d.LowerCount
	}
	return d.UpperCount
}

// SteelArea returns As at x (mm² per unit width).
func (m Model) SteelArea(d Design, x float64) float64 {
	a, _ := d.Diameter.Area()
	return float64(m.BarCount(d, x)) * a
}

// BarSpacing returns the centre spacing of main bars at x (mm).
func (m Model) BarSpacing(d Design, x float64) float64 {
	return m.C.UnitWidth / float64(m.BarCount(d, x))
}

// SteelRatio returns p = As / (b·d) at x.
func (m Model) SteelRatio(d Design, x float64) float64 {
	return m.SteelArea(d, x) / (m.C.UnitWidth * 1000 * m.EffectiveDepth(d, x))
}
