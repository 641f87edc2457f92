package wall

import (
	"github.com/alexiusacademia/gorwall/internal/jsce"
)

// SectionResult holds every intermediate value of the checks at one height.
type SectionResult struct {
	X float64 // Height above the base (m)

	// Section properties
	EffectiveDepth float64 // d (m)
	SteelArea      float64 // As (mm²)
	SteelRatio     float64 // p
	BarSpacing     float64 // cs (mm)
	BarCount       int

	// Demand (kN·m, kN)
	MomentPermanent float64
	MomentSeismic   float64
	ShearPermanent  float64
	ShearSeismic    float64

	// Flexure
	FlexuralCapacity float64 // Mud (kN·m)

	// Shear
	BetaD                 float64
	BetaP                 float64
	DiagonalCrackStrength float64 // fvvcd (N/mm²)
	ShearCapacity         float64 // Vcd (kN)

	// Serviceability
	NeutralAxisFactor   float64 // j
	NeutralAxisRatio    float64 // k
	SteelStress         float64 // σs (kN/mm²)
	CrackSpacing        float64 // l (mm)
	CrackWidth          float64 // w (mm)
	AllowableCrackWidth float64 // wa (mm)

	Ratios Ratios
	IsSafe bool
}

// Analyze evaluates the section at x and collects the intermediate values
// used by the reports.
func (m Model) Analyze(d Design, x float64) (*SectionResult, error) {
	ratios, err := m.Ratios(d, x)
	if err != nil {
		return nil, err
	}

	return &SectionResult{
		X:                     x,
		EffectiveDepth:        m.EffectiveDepth(d, x),
		SteelArea:             m.SteelArea(d, x),
		SteelRatio:            m.SteelRatio(d, x),
		BarSpacing:            m.BarSpacing(d, x),
		BarCount:              m.BarCount(d, x),
		MomentPermanent:       m.Moment(jsce.Permanent, d, x),
		MomentSeismic:         m.Moment(jsce.Seismic, d, x),
		ShearPermanent:        m.Shear(jsce.Permanent, d, x),
		ShearSeismic:          m.Shear(jsce.Seismic, d, x),
		FlexuralCapacity:      m.FlexuralCapacity(d, x),
		BetaD:                 m.BetaD(d, x),
		BetaP:                 m.BetaP(d, x),
		DiagonalCrackStrength: m.DiagonalCrackStrength(d, x),
		ShearCapacity:         m.ShearCapacity(d, x),
		NeutralAxisFactor:     m.NeutralAxisFactor(d, x),
		NeutralAxisRatio:      m.NeutralAxisRatio(d, x),
		SteelStress:           m.SteelStress(d, x),
		CrackSpacing:          m.CrackSpacing(d, x),
		CrackWidth:            m.CrackWidth(d, x),
		AllowableCrackWidth:   m.AllowableCrackWidth(d),
		Ratios:                ratios,
		IsSafe:                ratios.Safe(),
	}, nil
}

// AnalyzeAll evaluates every check point of a design.
func (m Model) AnalyzeAll(d Design) ([]*SectionResult, error) {
	points := m.CheckPoints(d)
	results := make([]*SectionResult, 0, len(points))
	for _, x := range points {
		r, err := m.Analyze(d, x)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
