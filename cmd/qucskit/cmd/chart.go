package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qucskit/pkg/chart"
	"qucskit/pkg/dataset"
)

var chartOut string

var chartCmd = &cobra.Command{
	Use:   "chart FILE",
	Short: "Render a solver dataset to an HTML line chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %v", args[0], err)
		}
		ds := dataset.Parse(string(raw))

		f, err := os.Create(chartOut)
		if err != nil {
			return fmt.Errorf("creating %s: %v", chartOut, err)
		}
		defer f.Close()

		if err := chart.Render(f, ds, args[0]); err != nil {
			return fmt.Errorf("rendering chart: %v", err)
		}
		if verbose {
			fmt.Printf("wrote %s\n", chartOut)
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "chart.html", "output HTML file")
	rootCmd.AddCommand(chartCmd)
}
