package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"qucskit/pkg/dataset"
)

func TestRunCapturesStdout(t *testing.T) {
	// cat stands in for the solver: it prints the "netlist" file, which here
	// is a canned result dump.
	r := New("cat")
	ds, err := r.Run(context.Background(), "testdata/ac.dat")
	if err != nil {
		t.Fatal(err)
	}
	if ds.Status != dataset.Success {
		t.Fatalf("expected success, got %s with errors %v", ds.Status, ds.Errors)
	}
	freq, err := ds.RealVector("frequency")
	if err != nil {
		t.Fatal(err)
	}
	if len(freq) != 3 || freq[0] != 1e9 {
		t.Errorf("frequency: got %v", freq)
	}
}

func TestRunFailedProcess(t *testing.T) {
	r := New("sh", "-c", "echo 'error: solver exploded' >&2; exit 3")
	ds, err := r.Run(context.Background(), "ignored.net")
	if err != nil {
		t.Fatal(err)
	}
	if !ds.HasError() {
		t.Fatalf("a failed process must surface as an error status, got %s", ds.Status)
	}
	joined := strings.Join(ds.Errors, "\n")
	if !strings.Contains(joined, "solver exploded") {
		t.Errorf("stderr should be captured as errors: %v", ds.Errors)
	}
	if !strings.Contains(joined, "exit status 3") {
		t.Errorf("the process failure itself should be recorded: %v", ds.Errors)
	}
}

func TestRunPartialOutputPreferred(t *testing.T) {
	// The process fails after printing a usable vector; the vector survives.
	r := New("sh", "-c", `printf '<Qucs Dataset 0.0.19>\n<indep freq 1>\n1e9\n</indep>\n'; exit 1`)
	ds, err := r.Run(context.Background(), "ignored.net")
	if err != nil {
		t.Fatal(err)
	}
	if ds.Status != dataset.Error {
		t.Fatalf("expected error status, got %s", ds.Status)
	}
	if _, err := ds.RealVector("freq"); err != nil {
		t.Errorf("partial vector lost: %v", err)
	}
}

func TestRunMissingBinary(t *testing.T) {
	r := New("no-such-solver-binary-for-sure")
	ds, err := r.Run(context.Background(), "ignored.net")
	if err != nil {
		t.Fatal(err)
	}
	if ds.Status != dataset.ParseError {
		t.Fatalf("nothing on stdout should parse as a parse error, got %s", ds.Status)
	}
	if len(ds.Errors) < 2 {
		t.Errorf("expected the empty-output and spawn errors, got %v", ds.Errors)
	}
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := New("sh", "-c", "sleep 10")
	_, err := r.Run(ctx, "ignored.net")
	if err == nil {
		t.Fatalf("cancellation must be returned to the caller")
	}
}
