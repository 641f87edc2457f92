package diagram

import (
	"fmt"
	"math"
	"strings"
)

// WallData holds what is needed to draw a stem and its check results
type WallData struct {
	// Geometry (m)
	Height     float64
	LowerWidth float64 // b2, at the base
	UpperWidth float64 // b4, at the crest

	// Reinforcement
	Diameter   string
	LowerCount int     // m, bars per unit width below the cut-off
	UpperCount int     // n, bars per unit width above it
	Transition float64 // x1, cut-off position above the base (m)

	// Checks, one entry per check point
	Points []float64
	Ratios [][5]float64
	Names  [5]string
}

// Governing returns the largest ratio at each check point.
func (d WallData) Governing() []float64 {
	out := make([]float64, len(d.Ratios))
	for i, r := range d.Ratios {
		out[i] = math.Inf(-1)
		for _, v := range r {
			out[i] = max(out[i], v)
		}
	}
	return out
}

// DrawASCIIElevation creates an ASCII elevation of the stem, back face on
// the left, with the bar cut-off marked
func DrawASCIIElevation(data WallData) string {
	var sb strings.Builder

	rows := 18
	baseChars := 24

	// x1 can fall outside the stem for short cut-off heights; the marker
	// then sits on the nearest edge and still reports the actual value.
	cutRow := rows - int(math.Round(data.Transition/data.Height*float64(rows)))
	cutRow = min(max(cutRow, 0), rows)

	sb.WriteString("\n")
	sb.WriteString("  STEM ELEVATION\n")
	sb.WriteString("  ──────────────\n")
	sb.WriteString(fmt.Sprintf("       b4 = %.2f m\n", data.UpperWidth))

	for i := 0; i <= rows; i++ {
		y := data.Height * float64(rows-i) / float64(rows)
		width := data.LowerWidth - (data.LowerWidth-data.UpperWidth)*y/data.Height
		chars := max(int(math.Round(width/data.LowerWidth*float64(baseChars))), 3)

		bar := "│"
		if i >= cutRow {
			bar = "┃"
		}
		fill := bar + strings.Repeat(" ", chars-1)

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", chars)))
		case i == rows:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", chars)))
		default:
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
		}

		if i == cutRow {
			sb.WriteString(strings.Repeat(" ", baseChars-chars))
			sb.WriteString(fmt.Sprintf(" ◄─ x1 = %.3f m", data.Transition))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("       b2 = %.2f m\n", data.LowerWidth))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  ┃ = %s, %d bars/m below x1\n", data.Diameter, data.LowerCount))
	sb.WriteString(fmt.Sprintf("  │ = %s, %d bars/m above x1\n", data.Diameter, data.UpperCount))
	sb.WriteString(fmt.Sprintf("  H = %.2f m\n", data.Height))

	return sb.String()
}

// DrawUtilization creates an ASCII bar chart of the governing ratio at
// each check point, with the limit at 1.0 marked
func DrawUtilization(data WallData) string {
	var sb strings.Builder

	width := 30
	gov := data.Governing()

	sb.WriteString("\n")
	sb.WriteString("  UTILIZATION (governing ratio)\n")
	sb.WriteString("  ─────────────────────────────\n\n")

	for i, x := range data.Points {
		v := gov[i]
		n := int(math.Round(math.Min(math.Max(v, 0), 1.5) * float64(width)))

		var bar string
		if n <= width {
			bar = strings.Repeat("█", n) + strings.Repeat(" ", width-n) + "│"
		} else {
			bar = strings.Repeat("█", width) + "┃" + strings.Repeat("▓", n-width)
		}

		status := "OK"
		if v > 1 {
			status = "NG"
		}
		sb.WriteString(fmt.Sprintf("  x=%5.2f  %s %.3f %s (%s)\n", x, bar, v, status, data.Names[argmax(data.Ratios[i])]))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s1.0\n", strings.Repeat(" ", width+9)))

	return sb.String()
}

func argmax(r [5]float64) int {
	best := 0
	for i, v := range r {
		if v > r[best] {
			best = i
		}
	}
	return best
}
