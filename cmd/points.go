package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/wall"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print every safety ratio at every check section",
	Long: `Evaluate a stem design at the seven check sections (the base, b2/2,
1 m, the bar cut-off section x1, 2 m, 3 m and 4 m) and print the five
safety ratios, the governing one, and the verdict of each section.

Examples:
  gorwall points --b2 0.45 --b4 0.30 --phi 19.1 --hs 2 -m 8 -n 4`,
	RunE: runPoints,
}

func init() {
	rootCmd.AddCommand(pointsCmd)
	addDesignFlags(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	model, err := loadModel()
	if err != nil {
		return err
	}
	d, err := designFromFlags(model)
	if err != nil {
		return err
	}

	results, err := model.AnalyzeAll(d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printDesignHeader(out, model, d, "CHECK SECTIONS")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "  x (m)\t")
	for _, name := range wall.RatioNames {
		fmt.Fprintf(w, "%s\t", name)
	}
	fmt.Fprint(w, "governing\tstatus\t\n")

	safe := true
	for _, r := range results {
		fmt.Fprintf(w, "  %.3f\t", r.X)
		for _, v := range r.Ratios.Values() {
			fmt.Fprintf(w, "%.4f\t", v)
		}
		status := "✓"
		if !r.IsSafe {
			status = "✗"
			safe = false
		}
		fmt.Fprintf(w, "%s\t%s\t\n", r.Ratios.Governing(), status)
	}
	w.Flush()
	fmt.Fprintln(out)

	if safe {
		fmt.Fprintln(out, "  ✓ Design is SAFE at every check section")
	} else {
		fmt.Fprintln(out, "  ✗ Design is NOT SAFE at one or more check sections")
	}
	fmt.Fprintln(out)
	return nil
}
