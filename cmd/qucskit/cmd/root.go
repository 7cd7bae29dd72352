package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qucskit",
	Short: "qucskit - circuit net resolution and solver dataset tools",
	Long: `qucskit works with external circuit solver output:

  qucskit parse result.dat              # parse a raw dataset dump
  qucskit run -s qucsator circuit.net   # invoke the solver and parse its output
  qucskit chart result.dat -o out.html  # render vectors to an HTML chart`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
