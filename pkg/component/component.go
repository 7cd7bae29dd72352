package component

import (
	"github.com/google/uuid"
)

// Component is what the circuit core needs from any component kind: a stable
// instance identity, a name, the ordered list of terminal names, and the
// principal value. Model parameters are opaque to net resolution.
type Component interface {
	ID() uuid.UUID
	Name() string
	Kind() string
	Terminals() []string
	Value() float64
}

// Component kind tags, SPICE-style.
const (
	KindResistor      = "R"
	KindCapacitor     = "C"
	KindInductor      = "L"
	KindVoltageSource = "V"
	KindCurrentSource = "I"
	KindGround        = "GND"
	KindPort          = "P"
	KindGeneric       = "X"
	KindFileSource    = "F"
)

type BaseComponent struct {
	id        uuid.UUID
	name      string
	kind      string
	terminals []string
	value     float64
	params    map[string]float64
}

func NewBase(name, kind string, terminals []string, value float64) BaseComponent {
	return BaseComponent{
		id:        uuid.New(),
		name:      name,
		kind:      kind,
		terminals: terminals,
		value:     value,
	}
}

func (b *BaseComponent) ID() uuid.UUID       { return b.id }
func (b *BaseComponent) Name() string        { return b.name }
func (b *BaseComponent) Kind() string        { return b.kind }
func (b *BaseComponent) Terminals() []string { return b.terminals }
func (b *BaseComponent) Value() float64      { return b.value }

// Param returns a named model parameter, 0 if unset.
func (b *BaseComponent) Param(name string) float64 {
	return b.params[name]
}

func (b *BaseComponent) SetParam(name string, value float64) {
	if b.params == nil {
		b.params = make(map[string]float64)
	}
	b.params[name] = value
}

// HasTerminal reports whether name is one of c's declared terminals.
func HasTerminal(c Component, name string) bool {
	for _, t := range c.Terminals() {
		if t == name {
			return true
		}
	}
	return false
}

// IsGround reports whether every terminal of c belongs to the ground net.
func IsGround(c Component) bool {
	return c.Kind() == KindGround
}
