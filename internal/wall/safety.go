package wall

import (
	"math"

	"github.com/alexiusacademia/gorwall/internal/jsce"
)

// Ratios are the demand-over-capacity checks at one section.
// A section is safe when every ratio is at most 1.
type Ratios struct {
	FM1 float64 // permanent moment
	FM2 float64 // seismic moment
	FV1 float64 // permanent shear
	FV2 float64 // seismic shear
	FW  float64 // crack width
}

// RatioNames are the labels of the ratios in declaration order.
var RatioNames = [5]string{"F_M1", "F_M2", "F_V1", "F_V2", "F_w"}

// Values returns the ratios in declaration order.
func (r Ratios) Values() [5]float64 {
	return [5]float64{r.FM1, r.FM2, r.FV1, r.FV2, r.FW}
}

// Max returns the largest ratio.
func (r Ratios) Max() float64 {
	v := r.Values()
	return math.Max(math.Max(math.Max(v[0], v[1]), math.Max(v[2], v[3])), v[4])
}

// Governing returns the label of the largest ratio.
func (r Ratios) Governing() string {
	v := r.Values()
	idx := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[idx] {
			idx = i
		}
	}
	return RatioNames[idx]
}

// Safe reports whether every ratio is at most 1.
func (r Ratios) Safe() bool {
	return r.Max() <= 1.0
}

// Ratios evaluates the five safety ratios at x.
func (m Model) Ratios(d Design, x float64) (Ratios, error) {
	if _, err := d.Diameter.Area(); err != nil {
		return Ratios{}, err
	}

	mud := m.FlexuralCapacity(d, x)
	vcd := m.ShearCapacity(d, x)

	r := Ratios{
		FM1: m.C.ImportanceFactor(jsce.Permanent) * m.Moment(jsce.Permanent, d, x) / mud,
		FM2: m.C.ImportanceFactor(jsce.Seismic) * m.Moment(jsce.Seismic, d, x) / mud,
		FV1: m.C.ImportanceFactor(jsce.Permanent) * m.Shear(jsce.Permanent, d, x) / vcd,
		FV2: m.C.ImportanceFactor(jsce.Seismic) * m.Shear(jsce.Seismic, d, x) / vcd,
		FW:  m.CrackWidth(d, x) / m.AllowableCrackWidth(d),
	}
	for i, v := range r.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Ratios{}, &ComputationError{Quantity: RatioNames[i], Position: x, Value: v}
		}
	}
	return r, nil
}

// IsSafe reports whether the section at x passes every check.
func (m Model) IsSafe(d Design, x float64) (bool, error) {
	r, err := m.Ratios(d, x)
	if err != nil {
		return false, err
	}
	return r.Safe(), nil
}

// CheckPoints returns the sections inspected for a design: the base,
// half the base width, 1 m, the bar cut-off section x1, then 2, 3 and 4 m.
func (m Model) CheckPoints(d Design) []float64 {
	return []float64{
		0,
		d.LowerWidth / 2,
		1,
		m.TransitionPosition(d),
		2,
		3,
		4,
	}
}

// Feasible reports whether a design is valid and safe at every check point.
// Evaluation stops at the first failing section.
func (m Model) Feasible(d Design) (bool, error) {
	if err := d.Validate(m.C); err != nil {
		return false, err
	}
	for _, x := range m.CheckPoints(d) {
		ok, err := m.IsSafe(d, x)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
