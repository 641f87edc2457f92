package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/alexiusacademia/gorwall/internal/report"
	"github.com/alexiusacademia/gorwall/internal/search"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

var (
	// Space inputs
	searchDiameters []string
	searchCover     float64
	searchStep      float64
	searchWidthMin  float64
	searchWidthMax  float64
	searchHsMin     float64
	searchHsMax     float64
	searchHsStep    float64
	searchUpper     []int

	// Run control
	searchTimeout  time.Duration
	searchXLSXFile string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for the stem design using the least concrete and steel",
	Long: `Enumerate the discrete design space (bar size, mean width, taper,
cut-off height and bar counts) and keep, among the designs that pass every
check section, the ones with the least concrete, the least steel, and the
least of both together compared with the reference design.

Within each combination the lower bar count is raised from its minimum and
the first count that passes is kept; larger counts are not tried.

The full space on a 1 cm grid has millions of combinations. Use --step,
--hs-step and the width range to narrow it, and --timeout to bound it.
Interrupting (Ctrl-C) prints the best designs found so far.

Examples:
  # Full default space
  gorwall search

  # D16 and D19 only, 2 cm grid, widths 0.30-0.50 m, saved to Excel
  gorwall search --diameters D16,D19 --step 0.02 --width-min 0.30 --width-max 0.50 --xlsx result.xlsx`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	def := search.DefaultSpace()
	names := make([]string, len(def.Diameters))
	for i, d := range def.Diameters {
		names[i] = d.String()
	}

	// Space flags
	searchCmd.Flags().StringSliceVar(&searchDiameters, "diameters", names, "Main bars to try")
	searchCmd.Flags().Float64Var(&searchCover, "cover", def.Cover, "Cover to the main bar surface (mm)")
	searchCmd.Flags().Float64Var(&searchStep, "step", def.WidthStep, "Grid step of mean width and half taper (m)")
	searchCmd.Flags().Float64Var(&searchWidthMin, "width-min", def.MeanWidthMin, "Smallest mean width (m), 0 for the clearance limit")
	searchCmd.Flags().Float64Var(&searchWidthMax, "width-max", def.MeanWidthMax, "Mean width upper bound, exclusive (m)")
	searchCmd.Flags().Float64Var(&searchHsMin, "hs-min", def.TransitionMin, "Lowest cut-off height (m)")
	searchCmd.Flags().Float64Var(&searchHsMax, "hs-max", def.TransitionMax, "Highest cut-off height (m)")
	searchCmd.Flags().Float64Var(&searchHsStep, "hs-step", def.TransitionStep, "Cut-off height step (m)")
	searchCmd.Flags().IntSliceVar(&searchUpper, "upper", def.UpperCounts, "Bar counts per metre above the cut-off")

	// Run control flags
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 0, "Stop after this long and report the best so far (0 = no limit)")
	searchCmd.Flags().StringVar(&searchXLSXFile, "xlsx", "", "Also save the results to an Excel workbook")
}

func spaceFromFlags() (search.Space, error) {
	s := search.DefaultSpace()

	s.Diameters = s.Diameters[:0:0]
	for _, name := range searchDiameters {
		d, err := rebar.Parse(name)
		if err != nil {
			return search.Space{}, err
		}
		s.Diameters = append(s.Diameters, d)
	}

	s.Cover = searchCover
	s.WidthStep = searchStep
	s.MeanWidthMin = searchWidthMin
	s.MeanWidthMax = searchWidthMax
	s.TransitionMin = searchHsMin
	s.TransitionMax = searchHsMax
	s.TransitionStep = searchHsStep
	s.UpperCounts = searchUpper

	return s, s.Validate()
}

func runSearch(cmd *cobra.Command, args []string) error {
	model, err := loadModel()
	if err != nil {
		return err
	}
	space, err := spaceFromFlags()
	if err != nil {
		return fmt.Errorf("invalid search space: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, searchTimeout)
		defer cancel()
	}
	ctx = log.Logger.WithContext(ctx)

	res, searchErr := search.Search(ctx, model, space, wall.Baseline())
	if res == nil {
		return searchErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     RETAINING WALL STEM DESIGN SEARCH")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BEST DESIGNS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	grid := report.SearchGrid(res)
	if err := report.WriteGrid(out, grid); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STATISTICS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combinations:\t%d\n", res.Stats.Groups)
	fmt.Fprintf(w, "  Designs Checked:\t%d\n", res.Stats.Evaluated)
	fmt.Fprintf(w, "  Feasible:\t%d\n", res.Stats.Feasible)
	fmt.Fprintf(w, "  Rejected:\t%d\n", res.Stats.Rejected)
	fmt.Fprintf(w, "  Improvements:\t%d\n", res.Stats.Improvements)
	w.Flush()
	fmt.Fprintln(out)

	if searchXLSXFile != "" {
		if err := report.WriteXLSX(searchXLSXFile, report.Sheet{Name: "search", Grid: grid}); err != nil {
			return err
		}
		log.Info().Str("file", searchXLSXFile).Msg("Results saved")
	}

	if searchErr != nil {
		fmt.Fprintln(out, "  ⚠ Search stopped early; results cover the space visited so far")
		fmt.Fprintln(out)
		return fmt.Errorf("search interrupted: %w", searchErr)
	}
	return nil
}
