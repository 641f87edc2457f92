package report

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorwall/internal/wall"
)

// Kind selects which check a table documents.
type Kind string

const (
	Moment Kind = "moment"
	Shear  Kind = "shear"
	Crack  Kind = "crack"
	Total  Kind = "total"
)

// Kinds lists every report kind.
var Kinds = []Kind{Moment, Shear, Crack, Total}

// ParseKind maps a name to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind %q (valid: moment, shear, crack, total)", s)
}

// Indices into wall.Model.CheckPoints
const (
	pointBase = iota
	pointHalfWidth
	pointOne
	pointTransition
	pointTwo
	pointThree
	pointFour
)

// points returns the check points a kind reports on. The crack table
// skips only the half-width section, which exists for shear.
func (k Kind) points() []int {
	switch k {
	case Moment:
		return []int{pointBase, pointTransition}
	case Shear:
		return []int{pointHalfWidth, pointTransition, pointTwo}
	case Crack:
		return []int{pointBase, pointOne, pointTransition, pointTwo, pointThree, pointFour}
	}
	return []int{pointBase, pointHalfWidth, pointOne, pointTransition, pointTwo, pointThree, pointFour}
}

// Format controls how a row's values are printed.
type Format int

const (
	Precision3 Format = iota // three significant digits
	Integer
)

// Row is one quantity across the reported sections.
type Row struct {
	Label  string
	TeX    string
	Format Format
	Values []float64
}

// Section is a block of rows, optionally tied to a load case.
type Section struct {
	Title string
	TeX   string
	Rows  []Row
}

// Table is a rendered check across several heights.
type Table struct {
	Kind      Kind
	Design    wall.Design
	Positions []float64
	Sections  []Section
}

// HasTitles reports whether any section carries a title column.
func (t *Table) HasTitles() bool {
	for _, s := range t.Sections {
		if s.Title != "" {
			return true
		}
	}
	return false
}

// Build evaluates a design at the sections of a kind and lays out the table.
func Build(model wall.Model, d wall.Design, kind Kind) (*Table, error) {
	all := model.CheckPoints(d)
	idx := kind.points()

	results := make([]*wall.SectionResult, 0, len(idx))
	positions := make([]float64, 0, len(idx))
	for _, i := range idx {
		r, err := model.Analyze(d, all[i])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		positions = append(positions, all[i])
	}

	row := func(label, tex string, f Format, value func(r *wall.SectionResult) float64) Row {
		values := make([]float64, len(results))
		for i, r := range results {
			values[i] = value(r)
		}
		return Row{Label: label, TeX: tex, Format: f, Values: values}
	}

	c := model.C
	gi := c.GammaI
	t := &Table{Kind: kind, Design: d, Positions: positions}

	switch kind {
	case Moment:
		t.Sections = []Section{
			{Rows: []Row{
				row("As (mm²)", `$A_s(\si{mm^2})$`, Integer, func(r *wall.SectionResult) float64 { return r.SteelArea }),
				row("d (m)", `$d(\si{m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.EffectiveDepth }),
				row("p", `$p$`, Precision3, func(r *wall.SectionResult) float64 { return r.SteelRatio }),
				row("Mud (kN·m)", `$M_{ud}(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.FlexuralCapacity }),
			}},
			{Title: "Permanent", TeX: "常時", Rows: []Row{
				row("γi·Md (kN·m)", `$\gamma_iM_d(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return gi * r.MomentPermanent }),
				row("γi·Md/Mud", `$\gamma_i\frac{M_d}{M_{ud}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FM1 }),
			}},
			{Title: "Seismic", TeX: "地震時", Rows: []Row{
				row("γi·Md (kN·m)", `$\gamma_iM_d(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.MomentSeismic }),
				row("γi·Md/Mud", `$\gamma_i\frac{M_d}{M_{ud}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FM2 }),
			}},
		}

	case Shear:
		t.Sections = []Section{
			{Rows: []Row{
				row("d (m)", `$d(\si{m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.EffectiveDepth }),
				row("βd", `$\beta_d$`, Precision3, func(r *wall.SectionResult) float64 { return r.BetaD }),
				row("βp", `$\beta_p$`, Precision3, func(r *wall.SectionResult) float64 { return r.BetaP }),
				row("fvvcd (N/mm²)", `$f_{vvcd}(\si{N\cdot{mm}^{-2}})$`, Precision3, func(r *wall.SectionResult) float64 { return r.DiagonalCrackStrength }),
				row("Vcd (kN/m)", `$V_{cd}(\si{kN\cdot m^{-1}})$`, Precision3, func(r *wall.SectionResult) float64 { return r.ShearCapacity }),
			}},
			{Title: "Permanent", TeX: "常時", Rows: []Row{
				row("Md (kN·m)", `$M_d(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.MomentPermanent }),
				row("γi·Vd (kN/m)", `$\gamma_iV_d(\si{kN\cdot m^{-1}})$`, Precision3, func(r *wall.SectionResult) float64 { return gi * r.ShearPermanent }),
				row("γi·Vd/Vcd", `$\gamma_i\frac{V_d}{V_{cd}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FV1 }),
			}},
			{Title: "Seismic", TeX: "地震時", Rows: []Row{
				row("Md (kN·m)", `$M_d(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.MomentSeismic }),
				row("γi·Vd (kN/m)", `$\gamma_iV_d(\si{kN\cdot m^{-1}})$`, Precision3, func(r *wall.SectionResult) float64 { return r.ShearSeismic }),
				row("γi·Vd/Vcd", `$\gamma_i\frac{V_d}{V_{cd}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FV2 }),
			}},
		}

	case Crack:
		n := c.ModulusRatio
		unfactor := c.GammaA * c.GammaF
		t.Sections = []Section{
			{Rows: []Row{
				row("Md (kN·m)", `$M_d(\si{kN\cdot m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.MomentPermanent / unfactor }),
			}},
			{Rows: []Row{
				row("np", `$np$`, Precision3, func(r *wall.SectionResult) float64 { return n * r.SteelRatio }),
				row("k", `$k$`, Precision3, func(r *wall.SectionResult) float64 { return r.NeutralAxisRatio }),
				row("j", `$j$`, Precision3, func(r *wall.SectionResult) float64 { return r.NeutralAxisFactor }),
				row("As (mm²)", `$A_s(\si{mm^2})$`, Integer, func(r *wall.SectionResult) float64 { return r.SteelArea }),
				row("d (m)", `$d(\si{m})$`, Precision3, func(r *wall.SectionResult) float64 { return r.EffectiveDepth }),
				row("σs (kN/mm²)", `$\sigma_s(\si{kN\cdot{mm}^{-2}})$`, Precision3, func(r *wall.SectionResult) float64 { return r.SteelStress }),
			}},
			{Rows: []Row{
				row("l (mm)", `$l(\si{mm})$`, Precision3, func(r *wall.SectionResult) float64 { return r.CrackSpacing }),
				row("w (mm)", `$w(\si{mm})$`, Precision3, func(r *wall.SectionResult) float64 { return r.CrackWidth }),
				row("w/wa", `$w/w_a$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FW }),
			}},
		}

	default:
		t.Sections = []Section{
			{Rows: []Row{
				row("Permanent γi·Md/Mud", `常時$\gamma_i\frac{M_d}{M_{ud}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FM1 }),
				row("Seismic γi·Md/Mud", `地震時$\gamma_i\frac{M_d}{M_{ud}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FM2 }),
				row("Permanent γi·Vd/Vcd", `常時$\gamma_i\frac{V_d}{V_{cd}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FV1 }),
				row("Seismic γi·Vd/Vcd", `地震時$\gamma_i\frac{V_d}{V_{cd}}$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FV2 }),
				row("w/wa", `$w/w_a$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.FW }),
			}},
			{Rows: []Row{
				row("max", `$\max$`, Precision3, func(r *wall.SectionResult) float64 { return r.Ratios.Max() }),
			}},
		}
	}

	return t, nil
}
