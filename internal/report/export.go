package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorwall/internal/search"
)

// SearchHeader names the columns of SearchGrid.
var SearchHeader = []string{"", "b2 (m)", "b4 (m)", "hs (m)", "φ", "m", "n", "Vc", "Vs"}

// SearchGrid lays out the tracked designs of a search, one row each.
func SearchGrid(res *search.Result) [][]string {
	grid := [][]string{SearchHeader}
	for _, row := range res.Rows() {
		d, q := row.Design, row.Quantities
		grid = append(grid, []string{
			row.Label,
			strconv.FormatFloat(d.LowerWidth, 'f', 2, 64),
			strconv.FormatFloat(d.UpperWidth, 'f', 2, 64),
			strconv.FormatFloat(d.TransitionHeight, 'f', 2, 64),
			d.Diameter.String(),
			strconv.Itoa(d.LowerCount),
			strconv.Itoa(d.UpperCount),
			strconv.FormatFloat(q.Concrete, 'f', 1, 64),
			strconv.FormatFloat(q.Steel, 'f', 1, 64),
		})
	}
	return grid
}

// WriteGrid renders any grid as aligned plain text.
func WriteGrid(w io.Writer, grid [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, line := range grid {
		fmt.Fprintf(tw, "  %s\t\n", strings.Join(line, "\t"))
	}
	return tw.Flush()
}

// Sheet is a named grid destined for one worksheet.
type Sheet struct {
	Name string
	Grid [][]string
}

// WriteXLSX saves the sheets to a new workbook at path. Cells that parse
// as numbers are stored as numbers.
func WriteXLSX(path string, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("create sheet %q: %w", s.Name, err)
		}

		for r, line := range s.Grid {
			for c, cell := range line {
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				var value any = cell
				if v, err := strconv.ParseFloat(cell, 64); err == nil && r > 0 && c > 0 {
					value = v
				}
				if err := f.SetCellValue(s.Name, ref, value); err != nil {
					return fmt.Errorf("write %s!%s: %w", s.Name, ref, err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
