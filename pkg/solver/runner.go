package solver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"qucskit/pkg/dataset"
)

// Runner invokes the external solver binary and captures its standard output
// for the dataset parser. It is agnostic to exit codes and working
// directories: whatever the process printed is parsed, because a failed run
// may still carry useful partial vectors.
type Runner struct {
	Command string
	Args    []string
	Dir     string
}

func New(command string, args ...string) *Runner {
	return &Runner{Command: command, Args: args}
}

// Run executes the solver on the given netlist file and parses its output.
// Process failure does not fail the call; it lands in the dataset's status
// and error list. Only context cancellation is returned as an error.
func (r *Runner) Run(ctx context.Context, netlistPath string) (*dataset.Dataset, error) {
	args := append(append([]string(nil), r.Args...), netlistPath)
	cmd := exec.CommandContext(ctx, r.Command, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	ds := dataset.Parse(stdout.String())
	if runErr != nil {
		for _, line := range strings.Split(stderr.String(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				ds.Errors = append(ds.Errors, line)
			}
		}
		ds.Errors = append(ds.Errors, fmt.Sprintf("solver %s: %v", r.Command, runErr))
		if ds.Status == dataset.Success {
			ds.Status = dataset.Error
		}
	}
	return ds, nil
}
