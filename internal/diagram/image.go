package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportUtilization plots every ratio against height, with the limit at
// 1.0 and the bar cut-off marked, and saves it to filename. The format
// follows the extension; anything else gets ".png" appended.
func ExportUtilization(data WallData, filename string) error {
	if len(data.Points) == 0 || len(data.Points) != len(data.Ratios) {
		return fmt.Errorf("utilization plot needs one ratio set per check point, got %d points and %d sets",
			len(data.Points), len(data.Ratios))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Stem Utilization (%s, m=%d, n=%d)", data.Diameter, data.LowerCount, data.UpperCount)
	p.X.Label.Text = "Ratio"
	p.Y.Label.Text = "Height above base (m)"
	p.X.Min = 0
	p.Y.Min = 0
	p.Y.Max = data.Height
	p.Legend.Top = true

	for k, name := range data.Names {
		pts := make(plotter.XYs, len(data.Points))
		for i, x := range data.Points {
			pts[i] = plotter.XY{X: data.Ratios[i][k], Y: x}
		}

		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(k)
		scatter.GlyphStyle.Color = plotutil.Color(k)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add(name, line)
	}

	limit, err := plotter.NewLine(plotter.XYs{{X: 1, Y: 0}, {X: 1, Y: data.Height}})
	if err != nil {
		return err
	}
	limit.LineStyle.Width = vg.Points(2)
	limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	p.Add(limit)

	maxX := 1.1
	for _, v := range data.Governing() {
		maxX = max(maxX, v*1.05)
	}
	p.X.Max = maxX

	cut, err := plotter.NewLine(plotter.XYs{{X: 0, Y: data.Transition}, {X: maxX, Y: data.Transition}})
	if err != nil {
		return err
	}
	cut.LineStyle.Width = vg.Points(1)
	cut.LineStyle.Color = color.Gray{Y: 100}
	cut.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(cut)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX * 0.7, Y: data.Transition}},
		Labels: []string{fmt.Sprintf("x1=%.2fm", data.Transition)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	width := 6 * vg.Inch
	height := 8 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
