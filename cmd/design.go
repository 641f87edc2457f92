package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/diagram"
	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

var (
	// Geometry inputs
	designLowerWidth float64
	designUpperWidth float64
	designCover      float64
	designHs         float64

	// Reinforcement inputs
	designPhi   rebar.Diameter
	designLower int
	designUpper int
)

// addDesignFlags binds the wall design flags shared by check and points.
func addDesignFlags(c *cobra.Command) {
	c.Flags().Float64Var(&designLowerWidth, "b2", 0, "Stem width at the base (m) [required]")
	c.Flags().Float64Var(&designUpperWidth, "b4", 0, "Stem width at the crest (m) [required]")
	c.Flags().Var(&designPhi, "phi", "Main bar: 12.7, 15.9, 19.1, 22.2 or D13..D22 [required]")
	c.Flags().Float64VarP(&designCover, "cover", "c", 52, "Cover to the main bar surface (mm)")
	c.Flags().Float64Var(&designHs, "hs", 2, "Nominal bar cut-off height (m)")
	c.Flags().IntVarP(&designLower, "lower", "m", 8, "Main bars per metre below the cut-off")
	c.Flags().IntVarP(&designUpper, "upper", "n", 4, "Main bars per metre above the cut-off")

	c.MarkFlagRequired("b2")
	c.MarkFlagRequired("b4")
	c.MarkFlagRequired("phi")
}

// designFromFlags validates the flag values against the model's constants.
func designFromFlags(model wall.Model) (wall.Design, error) {
	return wall.NewDesign(model.C, designLowerWidth, designUpperWidth, designCover,
		designPhi, designHs, designLower, designUpper)
}

// wallData collects the diagram inputs for a design at every check point.
func wallData(model wall.Model, d wall.Design) (diagram.WallData, error) {
	results, err := model.AnalyzeAll(d)
	if err != nil {
		return diagram.WallData{}, err
	}

	data := diagram.WallData{
		Height:     model.C.Height,
		LowerWidth: d.LowerWidth,
		UpperWidth: d.UpperWidth,
		Diameter:   d.Diameter.String(),
		LowerCount: d.LowerCount,
		UpperCount: d.UpperCount,
		Transition: model.TransitionPosition(d),
		Names:      wall.RatioNames,
	}
	for _, r := range results {
		data.Points = append(data.Points, r.X)
		data.Ratios = append(data.Ratios, r.Ratios.Values())
	}
	return data, nil
}
