package report

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorwall/internal/jsce"
	"github.com/alexiusacademia/gorwall/internal/search"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

func buildBaseline(t *testing.T, kind Kind) *Table {
	t.Helper()
	tbl, err := Build(wall.NewModel(jsce.Default()), wall.Baseline(), kind)
	require.NoError(t, err)
	return tbl
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{2, "2.00"},
		{252.96168657600006, "253"},
		{0.38845, "0.388"},
		{0.0059003732784142105, "0.00590"},
		{1.1870578116079087, "1.19"},
		{0.045985225684851624, "0.0460"},
		{14693.1, "1.47e+04"},
		{-0.5, "-0.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Precision(tt.v, 3), "%v", tt.v)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(" " + strings.ToUpper(string(k)))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("deflection")
	assert.Error(t, err)
}

func TestBuildPositions(t *testing.T) {
	x1 := wall.NewModel(jsce.Default()).TransitionPosition(wall.Baseline())

	tests := []struct {
		kind Kind
		want []float64
	}{
		{Moment, []float64{0, x1}},
		{Shear, []float64{0.225, x1, 2}},
		{Crack, []float64{0, 1, x1, 2, 3, 4}},
		{Total, []float64{0, 0.225, 1, x1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			tbl := buildBaseline(t, tt.kind)
			assert.InDeltaSlice(t, tt.want, tbl.Positions, 1e-12)
			for _, s := range tbl.Sections {
				for _, r := range s.Rows {
					assert.Len(t, r.Values, len(tt.want), r.Label)
				}
			}
		})
	}
}

func TestMomentGrid(t *testing.T) {
	grid := buildBaseline(t, Moment).Grid()

	want := [][]string{
		{"", "x (m)", "0.00", "1.19"},
		{"", "As (mm²)", "2292", "1146"},
		{"", "d (m)", "0.388", "0.349"},
		{"", "p", "0.00590", "0.00328"},
		{"", "Mud (kN·m)", "253", "116"},
		{"Permanent", "γi·Md (kN·m)", "156", "69.2"},
		{"", "γi·Md/Mud", "0.615", "0.595"},
		{"Seismic", "γi·Md (kN·m)", "247", "111"},
		{"", "γi·Md/Mud", "0.975", "0.955"},
	}
	assert.Equal(t, want, grid)
}

func TestTotalMaxRow(t *testing.T) {
	tbl := buildBaseline(t, Total)
	assert.False(t, tbl.HasTitles())

	last := tbl.Sections[len(tbl.Sections)-1].Rows[0]
	assert.Equal(t, "max", last.Label)

	grid := tbl.Grid()
	assert.Equal(t,
		[]string{"max", "0.975", "0.870", "0.557", "0.995", "0.524", "0.182", "0.0460"},
		grid[len(grid)-1])
}

func TestShearValues(t *testing.T) {
	tbl := buildBaseline(t, Shear)

	first := tbl.Sections[0].Rows
	assert.Equal(t, "Vcd (kN/m)", first[4].Label)
	assert.InDeltaSlice(t,
		[]float64{179.29952514744485, 137.1902487234953, 132.64543071832975},
		first[4].Values, 1e-9)

	seismic := tbl.Sections[2].Rows
	assert.InDeltaSlice(t,
		[]float64{0.6329010081464495, 0.5498562801688278, 0.367691716112593},
		seismic[2].Values, 1e-9)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, buildBaseline(t, Crack)))

	out := buf.String()
	assert.Contains(t, out, "w/wa")
	assert.Contains(t, out, "σs (kN/mm²)")
	assert.Equal(t, 11, strings.Count(out, "\n"))
}

func TestWriteTeX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeX(&buf, buildBaseline(t, Moment)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\\begin{tabular}{cccc}\n  \\toprule\n"))
	assert.True(t, strings.HasSuffix(out, "  \\bottomrule\n\\end{tabular}\n"))
	assert.Equal(t, 3, strings.Count(out, `\midrule`))
	assert.Contains(t, out, `\multicolumn{2}{c}{$x(\si{m})$} & $\num{0.00}$ & $\num{1.19}$\\`)
	assert.Contains(t, out, `常時 & $\gamma_iM_d(\si{kN\cdot m})$ & $\num{156}$ & $\num{69.2}$\\`)
	assert.Contains(t, out, `\multicolumn{2}{c}{$A_s(\si{mm^2})$} & $\num{2292}$ & $\num{1146}$\\`)
}

func TestWriteTeXUntitled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeX(&buf, buildBaseline(t, Total)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\\begin{tabular}{cccccccc}\n"))
	assert.Contains(t, out, `$x(\si{m})$ & $\num{0.00}$`)
	assert.NotContains(t, out, `\multicolumn`)
}

func TestSearchGrid(t *testing.T) {
	model := wall.NewModel(jsce.Default())
	base := wall.Baseline()
	res := &search.Result{}
	c := search.Candidate{Design: base, Quantities: model.Quantities(base)}
	res.Baseline, res.Joint, res.MinConcrete, res.MinSteel = c, c, c, c

	grid := SearchGrid(res)
	require.Len(t, grid, 5)
	assert.Equal(t, SearchHeader, grid[0])
	assert.Equal(t, []string{"default", "0.45", "0.30", "2.00", "D19", "8", "4", "1677770.4", "9729.6"}, grid[1])
	assert.Equal(t, "min", grid[4][0])
}

func TestWriteXLSX(t *testing.T) {
	model := wall.NewModel(jsce.Default())
	space := search.DefaultSpace()
	space.MeanWidthMin, space.MeanWidthMax = 0.30, 0.31
	space.TransitionStep = 1
	res, err := search.Search(context.Background(), model, space, wall.Baseline())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path,
		Sheet{Name: "total", Grid: buildBaseline(t, Total).Grid()},
		Sheet{Name: "search", Grid: SearchGrid(res)},
	))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"total", "search"}, f.GetSheetList())

	label, err := f.GetCellValue("total", "A7")
	require.NoError(t, err)
	assert.Equal(t, "max", label)

	v, err := f.GetCellValue("search", "B2")
	require.NoError(t, err)
	assert.Equal(t, "0.45", v)

	assert.Error(t, WriteXLSX(path))
}
