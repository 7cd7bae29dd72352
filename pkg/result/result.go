package result

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"qucskit/pkg/dataset"
)

// Kind selects the vector-naming convention of one analysis type.
type Kind int

const (
	DC Kind = iota
	AC
	Transient
	SParameter
)

func (k Kind) String() string {
	switch k {
	case DC:
		return "DC"
	case AC:
		return "AC"
	case Transient:
		return "transient"
	case SParameter:
		return "S-parameter"
	}
	return "unknown"
}

// Per-analysis vector name markers: node voltages carry a trailing voltage
// marker, branch currents a trailing current marker, scattering parameters a
// bracketed port pair.
func markers(k Kind) (volt, curr string) {
	switch k {
	case DC:
		return ".V", ".I"
	case AC:
		return ".v", ".i"
	case Transient:
		return ".Vt", ".It"
	}
	return "", ""
}

var sparamRe = regexp.MustCompile(`^S\[(\d+),(\d+)\]$`)

// Result is a read-only, analysis-shaped projection of a dataset's vectors.
// Derived, never mutated; rebuild it after re-parsing.
type Result struct {
	Kind      Kind
	SweepName string
	Sweep     []complex128            // primary sweep axis, nil for a plain DC point
	Voltages  map[string][]complex128 // node name -> values
	Currents  map[string][]complex128 // component name -> values
	pairs     map[[2]int][]complex128 // scattering parameters, sparse
	points    int
}

// New builds the typed view of ds for the given analysis kind. Vectors that
// do not match the kind's naming convention are ignored, never an error.
func New(ds *dataset.Dataset, kind Kind) *Result {
	r := &Result{
		Kind:     kind,
		Voltages: make(map[string][]complex128),
		Currents: make(map[string][]complex128),
		pairs:    make(map[[2]int][]complex128),
	}

	r.SweepName, r.Sweep = sweepAxis(ds, kind)
	r.points = len(r.Sweep)

	volt, curr := markers(kind)
	for name, v := range ds.Dependent {
		switch {
		case kind == SParameter:
			if m := sparamRe.FindStringSubmatch(name); m != nil {
				i, _ := strconv.Atoi(m[1])
				j, _ := strconv.Atoi(m[2])
				r.pairs[[2]int{i, j}] = v.Values
			}
		case volt != "" && strings.HasSuffix(name, volt):
			r.Voltages[strings.TrimSuffix(name, volt)] = v.Values
		case curr != "" && strings.HasSuffix(name, curr):
			r.Currents[strings.TrimSuffix(name, curr)] = v.Values
		}
		if r.points == 0 {
			r.points = len(v.Values)
		}
	}
	if r.points == 0 {
		r.points = 1
	}
	return r
}

func NewDC(ds *dataset.Dataset) *Result        { return New(ds, DC) }
func NewAC(ds *dataset.Dataset) *Result        { return New(ds, AC) }
func NewTransient(ds *dataset.Dataset) *Result { return New(ds, Transient) }
func NewSParam(ds *dataset.Dataset) *Result    { return New(ds, SParameter) }

// Points returns the length of the sweep axis (1 for a single-point
// analysis).
func (r *Result) Points() int { return r.points }

// At returns the scattering parameter vector for the port pair (i, j). A
// missing pair is a zero vector of sweep length: topologically disconnected
// ports genuinely couple zero, so absence is data, not failure.
func (r *Result) At(i, j int) []complex128 {
	if v, ok := r.pairs[[2]int{i, j}]; ok {
		return v
	}
	return make([]complex128, r.points)
}

// Pairs lists the port pairs actually present in the dataset, sorted.
func (r *Result) Pairs() [][2]int {
	out := make([][2]int, 0, len(r.pairs))
	for p := range r.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}

// sweepAxis picks the independent vector the analysis sweeps over.
func sweepAxis(ds *dataset.Dataset, kind Kind) (string, []complex128) {
	preferred := map[Kind][]string{
		AC:         {"frequency", "acfrequency"},
		SParameter: {"frequency"},
		Transient:  {"time"},
	}
	for _, name := range preferred[kind] {
		if v, ok := ds.Independent[name]; ok {
			return name, v.Values
		}
	}

	// Fall back to the first independent vector by name.
	var names []string
	for n := range ds.Independent {
		names = append(names, n)
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return names[0], ds.Independent[names[0]].Values
}
