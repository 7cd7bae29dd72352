package result

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/cmplxs"

	"qucskit/internal/consts"
	"qucskit/pkg/circuit"
	"qucskit/pkg/component"
)

// Binder joins a resolved circuit with a typed result so callers can ask for
// "the voltage at this pin" instead of "the vector named after node 3".
type Binder struct {
	ckt *circuit.Circuit
	res *Result
}

func NewBinder(ckt *circuit.Circuit, res *Result) *Binder {
	return &Binder{ckt: ckt, res: res}
}

func (b *Binder) Result() *Result { return b.res }

// VoltageAtPin returns the voltage vector at the node the pin resolved to.
// A ground pin is a constant zero vector with no lookup. A pin that never
// went through node resolution is an error.
func (b *Binder) VoltageAtPin(comp component.Component, terminal string) ([]complex128, error) {
	node, err := b.ckt.NodeID(comp, terminal)
	if err != nil {
		return nil, err
	}
	if node == consts.GroundNode {
		return make([]complex128, b.res.Points()), nil
	}
	v, ok := b.res.Voltages[strconv.Itoa(node)]
	if !ok {
		return nil, fmt.Errorf("no voltage vector for node %d (pin %s.%s), have nodes %v",
			node, comp.Name(), terminal, voltageNodes(b.res))
	}
	return v, nil
}

// CurrentThrough returns the branch current vector reported under the
// component's own name. Only source-like components carry one.
func (b *Binder) CurrentThrough(comp component.Component) ([]complex128, error) {
	v, ok := b.res.Currents[comp.Name()]
	if !ok {
		return nil, fmt.Errorf("current not available for %s in %s result, have %v",
			comp.Name(), b.res.Kind, currentNames(b.res))
	}
	return v, nil
}

// VoltageAcross returns the element-wise difference V(a) - V(b).
func (b *Binder) VoltageAcross(comp component.Component, terminalA, terminalB string) ([]complex128, error) {
	va, err := b.VoltageAtPin(comp, terminalA)
	if err != nil {
		return nil, err
	}
	vb, err := b.VoltageAtPin(comp, terminalB)
	if err != nil {
		return nil, err
	}
	if len(va) != len(vb) {
		return nil, fmt.Errorf("component %s: voltage vectors differ in length, %d vs %d",
			comp.Name(), len(va), len(vb))
	}
	out := append([]complex128(nil), va...)
	cmplxs.Sub(out, vb)
	return out, nil
}

// CurrentIntoPin returns the current flowing into the pin from the external
// circuit. The solver reports a two-terminal source's internal branch current
// I as flowing from the first terminal to the second, so the external current
// into the first terminal is I and into the second is -I; the two always sum
// to exactly zero.
func (b *Binder) CurrentIntoPin(comp component.Component, terminal string) ([]complex128, error) {
	branch, err := b.CurrentThrough(comp)
	if err != nil {
		return nil, err
	}
	terms := comp.Terminals()
	if len(terms) != 2 {
		return nil, fmt.Errorf("component %s: pin currents are defined for two-terminal components, has %d terminals",
			comp.Name(), len(terms))
	}
	switch terminal {
	case terms[0]:
		return branch, nil
	case terms[1]:
		out := append([]complex128(nil), branch...)
		cmplxs.Scale(-1, out)
		return out, nil
	}
	return nil, fmt.Errorf("component %s (%s): no terminal %q, has %v",
		comp.Name(), comp.Kind(), terminal, terms)
}

func voltageNodes(r *Result) []string {
	names := make([]string, 0, len(r.Voltages))
	for n := range r.Voltages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func currentNames(r *Result) []string {
	names := make([]string, 0, len(r.Currents))
	for n := range r.Currents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
