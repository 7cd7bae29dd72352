package dataset

import (
	"fmt"
	"sort"
)

// Status classifies the outcome of a solver run as seen from its output.
type Status int

const (
	NotRun Status = iota
	Success
	Error      // solver reported errors; partial vectors may still be present
	ParseError // output was empty or carried no recognizable dataset
)

func (s Status) String() string {
	switch s {
	case NotRun:
		return "not run"
	case Success:
		return "success"
	case Error:
		return "error"
	case ParseError:
		return "parse error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Vector is one named value sequence from the solver output.
type Vector struct {
	Values       []complex128
	Dependencies []string // names of independent vectors this depends on
	Independent  bool
}

// Dataset is the parsed form of a solver's raw text output. Immutable once
// produced; re-parsing yields a fresh instance. A vector name is never
// present in both maps.
type Dataset struct {
	Status      Status
	Version     string
	Independent map[string]*Vector
	Dependent   map[string]*Vector
	Errors      []string
	Warnings    []string
	Raw         string
}

func (d *Dataset) vector(name string) (*Vector, bool) {
	if v, ok := d.Independent[name]; ok {
		return v, true
	}
	if v, ok := d.Dependent[name]; ok {
		return v, true
	}
	return nil, false
}

// VectorNames lists every known vector name, sorted.
func (d *Dataset) VectorNames() []string {
	names := make([]string, 0, len(d.Independent)+len(d.Dependent))
	for n := range d.Independent {
		names = append(names, n)
	}
	for n := range d.Dependent {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ComplexVector returns the named vector's values.
func (d *Dataset) ComplexVector(name string) ([]complex128, error) {
	v, ok := d.vector(name)
	if !ok {
		return nil, fmt.Errorf("vector %q not found, have %v", name, d.VectorNames())
	}
	return v.Values, nil
}

// RealVector returns the real parts of the named vector.
func (d *Dataset) RealVector(name string) ([]float64, error) {
	v, ok := d.vector(name)
	if !ok {
		return nil, fmt.Errorf("vector %q not found, have %v", name, d.VectorNames())
	}
	out := make([]float64, len(v.Values))
	for i, c := range v.Values {
		out[i] = real(c)
	}
	return out, nil
}

// ImagVector returns the imaginary parts of the named vector.
func (d *Dataset) ImagVector(name string) ([]float64, error) {
	v, ok := d.vector(name)
	if !ok {
		return nil, fmt.Errorf("vector %q not found, have %v", name, d.VectorNames())
	}
	out := make([]float64, len(v.Values))
	for i, c := range v.Values {
		out[i] = imag(c)
	}
	return out, nil
}

// HasError reports whether the dataset carries an error status.
func (d *Dataset) HasError() bool {
	return d.Status == Error || d.Status == ParseError
}
