package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"qucskit/pkg/solver"
)

var (
	solverBin  string
	solverArgs []string
	timeout    time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run NETLIST",
	Short: "Invoke the external solver on a netlist and print the parsed result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		ds, err := solver.New(solverBin, solverArgs...).Run(ctx, args[0])
		if err != nil {
			return err
		}
		printDataset(ds)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&solverBin, "solver", "s", "qucsator", "solver binary to invoke")
	runCmd.Flags().StringArrayVar(&solverArgs, "arg", nil, "extra solver argument (repeatable)")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "kill the solver after this duration")
	rootCmd.AddCommand(runCmd)
}
