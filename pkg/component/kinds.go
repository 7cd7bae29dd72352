package component

import (
	"fmt"
	"sort"
)

type Resistor struct {
	BaseComponent
}

func NewResistor(name string, value float64) *Resistor {
	return &Resistor{NewBase(name, KindResistor, []string{"n1", "n2"}, value)}
}

type Capacitor struct {
	BaseComponent
}

func NewCapacitor(name string, value float64) *Capacitor {
	return &Capacitor{NewBase(name, KindCapacitor, []string{"n1", "n2"}, value)}
}

type Inductor struct {
	BaseComponent
}

func NewInductor(name string, value float64) *Inductor {
	return &Inductor{NewBase(name, KindInductor, []string{"n1", "n2"}, value)}
}

// VoltageSource reports a branch current vector under its own name. The
// internal current flows from nplus to nminus.
type VoltageSource struct {
	BaseComponent
}

func NewVoltageSource(name string, value float64) *VoltageSource {
	return &VoltageSource{NewBase(name, KindVoltageSource, []string{"nplus", "nminus"}, value)}
}

type CurrentSource struct {
	BaseComponent
}

func NewCurrentSource(name string, value float64) *CurrentSource {
	return &CurrentSource{NewBase(name, KindCurrentSource, []string{"nplus", "nminus"}, value)}
}

// Ground pins its single terminal to node 0. Every ground component in a
// circuit maps to the same virtual node whether or not they are wired
// together.
type Ground struct {
	BaseComponent
}

func NewGround(name string) *Ground {
	return &Ground{NewBase(name, KindGround, []string{"n"}, 0)}
}

// Port is a numbered measurement port for scattering-parameter analyses.
type Port struct {
	BaseComponent
	number int
}

func NewPort(name string, number int, impedance float64) *Port {
	return &Port{
		BaseComponent: NewBase(name, KindPort, []string{"nplus", "nminus"}, impedance),
		number:        number,
	}
}

func (p *Port) Number() int { return p.number }

// Generic is a parameter bag with no fixed schema. Fields whose names match
// the terminal vocabulary become terminals (in sorted order, so arity and
// ordering are deterministic); the rest become model parameters.
type Generic struct {
	BaseComponent
}

func NewGeneric(name string, fields map[string]float64) *Generic {
	var terms []string
	for f := range fields {
		if IsTerminalName(f) {
			terms = append(terms, f)
		}
	}
	sort.Strings(terms)

	g := &Generic{NewBase(name, KindGeneric, terms, 0)}
	for f, v := range fields {
		if !IsTerminalName(f) {
			g.SetParam(f, v)
		}
	}
	return g
}

// FileSource is the file-backed component: one terminal per data column plus
// a reference terminal, so N columns give N+1 terminals. Arity is fixed at
// construction.
type FileSource struct {
	BaseComponent
	path string
}

func NewFileSource(name, path string, columns int) *FileSource {
	terms := make([]string, 0, columns+1)
	for i := 1; i <= columns; i++ {
		terms = append(terms, fmt.Sprintf("n%d", i))
	}
	terms = append(terms, "ref")
	return &FileSource{
		BaseComponent: NewBase(name, KindFileSource, terms, 0),
		path:          path,
	}
}

func (f *FileSource) Path() string { return f.path }
