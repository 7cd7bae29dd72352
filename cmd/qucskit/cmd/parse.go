package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qucskit/pkg/dataset"
	"qucskit/pkg/util"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a raw solver dataset dump and print its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %v", args[0], err)
		}
		printDataset(dataset.Parse(string(raw)))
		return nil
	},
}

func printDataset(ds *dataset.Dataset) {
	fmt.Printf("status:  %s\n", ds.Status)
	if ds.Version != "" {
		fmt.Printf("version: %s\n", ds.Version)
	}
	for _, e := range ds.Errors {
		fmt.Printf("error:   %s\n", e)
	}
	for _, w := range ds.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	for _, name := range ds.VectorNames() {
		values, _ := ds.ComplexVector(name)
		tag := "dep  "
		format := util.FormatComplex
		if _, ok := ds.Independent[name]; ok {
			tag = "indep"
			format = axisFormat(name)
		}
		fmt.Printf("%s %-16s %4d values", tag, name, len(values))
		if verbose {
			fmt.Println()
			for i, v := range values {
				fmt.Printf("  [%3d] %s\n", i, format(v))
			}
			continue
		}
		if len(values) > 0 {
			fmt.Printf("  first %s", format(values[0]))
		}
		fmt.Println()
	}
}

// axisFormat picks a human-readable unit for a sweep axis by its
// conventional name.
func axisFormat(name string) func(complex128) string {
	switch name {
	case "frequency", "acfrequency", "freq":
		return func(v complex128) string { return util.FormatFrequency(real(v)) }
	case "time":
		return func(v complex128) string { return util.FormatValueFactor(real(v), "s") }
	}
	return util.FormatComplex
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
