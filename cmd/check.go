package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/diagram"
	"github.com/alexiusacademia/gorwall/internal/report"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

var (
	checkFormat      string
	checkXLSXFile    string
	checkShowDiagram bool
	checkExportFile  string
)

var checkCmd = &cobra.Command{
	Use:   "check <moment|shear|crack|total>",
	Short: "Print a check table for a stem design",
	Long: `Evaluate a stem design and print one of the report tables:

  moment  flexural capacity at the base and the bar cut-off section
  shear   shear capacity at b2/2, the cut-off section and 2 m
  crack   crack width at 0, 1, x1, 2, 3 and 4 m
  total   every safety ratio at all seven check sections

Tables are printed as text or as a LaTeX booktabs tabular, and may also
be saved to an Excel workbook.

Examples:
  # Total check of the reference design
  gorwall check total --b2 0.45 --b4 0.30 --phi 19.1

  # Moment table as LaTeX with 10 bars below a 2.5 m cut-off
  gorwall check moment --b2 0.45 --b4 0.30 --phi D19 --hs 2.5 -m 10 -n 5 --format tex

  # Crack table with the utilization plot
  gorwall check crack --b2 0.40 --b4 0.25 --phi 15.9 -m 12 -n 4 -o crack.png`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"moment", "shear", "crack", "total"},
	RunE:      runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	addDesignFlags(checkCmd)

	// Output flags
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "Table format: text or tex")
	checkCmd.Flags().StringVar(&checkXLSXFile, "xlsx", "", "Also save the table to an Excel workbook")
	checkCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII elevation and utilization diagrams")
	checkCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export utilization plot to file (png, svg, pdf)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := report.ParseKind(args[0])
	if err != nil {
		return err
	}
	if checkFormat != "text" && checkFormat != "tex" {
		return fmt.Errorf("unknown format %q (valid: text, tex)", checkFormat)
	}

	model, err := loadModel()
	if err != nil {
		return err
	}
	d, err := designFromFlags(model)
	if err != nil {
		return err
	}

	tbl, err := report.Build(model, d, kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if checkFormat == "tex" {
		if err := report.WriteTeX(out, tbl); err != nil {
			return err
		}
	} else {
		printDesignHeader(out, model, d, strings.ToUpper(string(kind)))
		if err := report.WriteText(out, tbl); err != nil {
			return err
		}
		fmt.Fprintln(out)

		feasible, err := model.Feasible(d)
		if err != nil {
			return err
		}
		if feasible {
			fmt.Fprintln(out, "  ✓ Design is SAFE at every check section")
		} else {
			fmt.Fprintln(out, "  ✗ Design is NOT SAFE at one or more check sections")
		}
		fmt.Fprintln(out)
	}

	if checkXLSXFile != "" {
		if err := report.WriteXLSX(checkXLSXFile, report.Sheet{Name: string(kind), Grid: tbl.Grid()}); err != nil {
			return err
		}
		log.Info().Str("file", checkXLSXFile).Msg("Table saved")
	}

	if checkShowDiagram || checkExportFile != "" {
		data, err := wallData(model, d)
		if err != nil {
			return err
		}
		if checkShowDiagram {
			fmt.Fprint(out, diagram.DrawASCIIElevation(data))
			fmt.Fprint(out, diagram.DrawUtilization(data))
		}
		if checkExportFile != "" {
			if err := diagram.ExportUtilization(data, checkExportFile); err != nil {
				return fmt.Errorf("export diagram: %w", err)
			}
			log.Info().Str("file", checkExportFile).Msg("Diagram exported")
		}
	}

	return nil
}

// printDesignHeader writes the banner and the input summary.
func printDesignHeader(out io.Writer, model wall.Model, d wall.Design, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     RETAINING WALL STEM CHECK - %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stem Height (H):\t%.2f m\n", model.C.Height)
	fmt.Fprintf(w, "  Base Width (b2):\t%.2f m\n", d.LowerWidth)
	fmt.Fprintf(w, "  Crest Width (b4):\t%.2f m\n", d.UpperWidth)
	fmt.Fprintf(w, "  Cover (c):\t%.0f mm\n", d.Cover)
	fmt.Fprintf(w, "  Main Bar (φ):\t%s (%.1f mm)\n", d.Diameter, d.Diameter.MM())
	fmt.Fprintf(w, "  Bars Below Cut-off (m):\t%d /m\n", d.LowerCount)
	fmt.Fprintf(w, "  Bars Above Cut-off (n):\t%d /m\n", d.UpperCount)
	fmt.Fprintf(w, "  Nominal Cut-off (hs):\t%.2f m\n", d.TransitionHeight)
	fmt.Fprintf(w, "  Cut-off Section (x1):\t%.3f m\n", model.TransitionPosition(d))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
}
