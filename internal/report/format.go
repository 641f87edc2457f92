package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Precision formats v with p significant digits, keeping trailing zeros
// ("2.00", "135", "0.389") and switching to exponent form outside
// [1e-6, 10^p).
func Precision(v float64, p int) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		if v == 0 {
			return strconv.FormatFloat(0, 'f', p-1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	e := int(math.Floor(math.Log10(math.Abs(v))))
	if e < -6 || e >= p {
		return strconv.FormatFloat(v, 'e', p-1, 64)
	}
	return strconv.FormatFloat(v, 'f', p-1-e, 64)
}

func (f Format) format(v float64) string {
	if f == Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return Precision(v, 3)
}

// Grid returns the table as rows of cells, header first. Section titles
// occupy the first column when any section has one.
func (t *Table) Grid() [][]string {
	titled := t.HasTitles()

	header := []string{"x (m)"}
	if titled {
		header = []string{"", "x (m)"}
	}
	for _, x := range t.Positions {
		header = append(header, Precision(x, 3))
	}

	grid := [][]string{header}
	for _, s := range t.Sections {
		for i, r := range s.Rows {
			var line []string
			if titled {
				title := ""
				if i == 0 {
					title = s.Title
				}
				line = append(line, title)
			}
			line = append(line, r.Label)
			for _, v := range r.Values {
				line = append(line, r.Format.format(v))
			}
			grid = append(grid, line)
		}
	}
	return grid
}

// WriteText renders the table as aligned plain text.
func WriteText(w io.Writer, t *Table) error {
	return WriteGrid(w, t.Grid())
}

// WriteTeX renders the table as a booktabs tabular using siunitx \num.
func WriteTeX(w io.Writer, t *Table) error {
	titled := t.HasTitles()
	labelCols := 1
	if titled {
		labelCols = 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{tabular}{%s}\n", strings.Repeat("c", len(t.Positions)+labelCols))
	b.WriteString("  \\toprule\n")

	xLabel := `$x(\si{m})$`
	if titled {
		xLabel = `\multicolumn{2}{c}{$x(\si{m})$}`
	}
	fmt.Fprintf(&b, "  %s & %s\\\\\n", xLabel, joinNum(t.Positions, Precision3))

	for _, s := range t.Sections {
		b.WriteString("  \\midrule\n")
		for i, r := range s.Rows {
			label := r.TeX
			switch {
			case !titled:
			case s.Title == "":
				label = fmt.Sprintf(`\multicolumn{2}{c}{%s}`, r.TeX)
			case i == 0:
				label = s.TeX + " & " + r.TeX
			default:
				label = " & " + r.TeX
			}
			fmt.Fprintf(&b, "  %s & %s\\\\\n", label, joinNum(r.Values, r.Format))
		}
	}

	b.WriteString("  \\bottomrule\n")
	b.WriteString("\\end{tabular}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func joinNum(values []float64, f Format) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprintf(`$\num{%s}$`, f.format(v))
	}
	return strings.Join(cells, " & ")
}
