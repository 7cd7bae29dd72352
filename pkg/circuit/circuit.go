package circuit

import (
	"fmt"

	"github.com/google/uuid"

	"qucskit/internal/consts"
	"qucskit/internal/unionfind"
	"qucskit/pkg/component"
)

// Pin names one terminal of one component instance.
type Pin struct {
	Component component.Component
	Terminal  string
}

type pinKey struct {
	comp uuid.UUID
	term string
}

// Circuit is an ordered, identity-deduplicated collection of components plus
// the connection state needed to resolve electrical nets. Node ids live in a
// table owned by the circuit; components are never mutated.
type Circuit struct {
	name       string
	components []component.Component
	index      map[uuid.UUID]int
	pins       map[pinKey]int // pin -> disjoint-set element
	set        *unionfind.Set
	nodes      map[pinKey]int // filled by ResolveNodes
	nodeCount  int
	resolved   bool
}

func New(name string) *Circuit {
	return &Circuit{
		name:  name,
		index: make(map[uuid.UUID]int),
		pins:  make(map[pinKey]int),
		set:   unionfind.New(),
	}
}

func (c *Circuit) Name() string { return c.name }

// Components returns the components in insertion order.
func (c *Circuit) Components() []component.Component { return c.components }

// Add inserts comp unless a component with the same identity is already
// present. Returns the stored instance either way.
func (c *Circuit) Add(comp component.Component) component.Component {
	if i, ok := c.index[comp.ID()]; ok {
		return c.components[i]
	}
	c.index[comp.ID()] = len(c.components)
	c.components = append(c.components, comp)
	c.resolved = false
	return comp
}

// pin registers p in the disjoint set, validating the terminal name against
// the component's declared terminals. Registering twice is a no-op.
func (c *Circuit) pin(p Pin) (int, error) {
	comp := c.Add(p.Component)
	if !component.HasTerminal(comp, p.Terminal) {
		return 0, fmt.Errorf("component %s (%s): no terminal %q, has %v",
			comp.Name(), comp.Kind(), p.Terminal, comp.Terminals())
	}
	k := pinKey{comp.ID(), p.Terminal}
	if i, ok := c.pins[k]; ok {
		return i, nil
	}
	i := c.set.Add()
	c.pins[k] = i
	return i, nil
}

// Connect unions the nets of a and b, auto-adding their owning components.
// Symmetric; repeating a connection is a no-op.
func (c *Circuit) Connect(a, b Pin) error {
	ia, err := c.pin(a)
	if err != nil {
		return err
	}
	ib, err := c.pin(b)
	if err != nil {
		return err
	}
	c.set.Union(ia, ib)
	c.resolved = false
	return nil
}

// ResolveNodes recomputes the node numbering from scratch: every terminal of
// every component is registered (an isolated terminal still gets its own
// net), nets touching any ground component collapse to node 0, and the rest
// get 1..N in component insertion order.
func (c *Circuit) ResolveNodes() error {
	for _, comp := range c.components {
		for _, t := range comp.Terminals() {
			if _, err := c.pin(Pin{comp, t}); err != nil {
				return err
			}
		}
	}

	// Distinct roots, insertion order, so repeated resolution of the same
	// history assigns the same ids.
	var roots []int
	seen := make(map[int]bool)
	for _, comp := range c.components {
		for _, t := range comp.Terminals() {
			r := c.set.Find(c.pins[pinKey{comp.ID(), t}])
			if !seen[r] {
				seen[r] = true
				roots = append(roots, r)
			}
		}
	}

	// Ground is one virtual node no matter how many ground components exist
	// or whether they are wired together.
	ground := make(map[int]bool)
	for _, comp := range c.components {
		if !component.IsGround(comp) {
			continue
		}
		for _, t := range comp.Terminals() {
			ground[c.set.Find(c.pins[pinKey{comp.ID(), t}])] = true
		}
	}

	ids := make(map[int]int, len(roots))
	next := 1
	for _, r := range roots {
		if ground[r] {
			ids[r] = consts.GroundNode
			continue
		}
		ids[r] = next
		next++
	}

	c.nodes = make(map[pinKey]int, len(c.pins))
	for k, i := range c.pins {
		c.nodes[k] = ids[c.set.Find(i)]
	}
	c.nodeCount = next - 1
	c.resolved = true
	return nil
}

// NodeID returns the node id assigned to the pin by the last ResolveNodes
// call. Reading before resolution is an error, not a sentinel: an id of 0
// means ground only once resolution has run.
func (c *Circuit) NodeID(comp component.Component, terminal string) (int, error) {
	if !c.resolved {
		return consts.Unassigned, fmt.Errorf("circuit %s: nodes not resolved", c.name)
	}
	id, ok := c.nodes[pinKey{comp.ID(), terminal}]
	if !ok {
		return consts.Unassigned, fmt.Errorf("component %s: pin %q not connected", comp.Name(), terminal)
	}
	return id, nil
}

// NodeCount returns the number of non-ground nodes assigned by the last
// ResolveNodes call.
func (c *Circuit) NodeCount() int { return c.nodeCount }

// Resolved reports whether ResolveNodes has run since the last edit.
func (c *Circuit) Resolved() bool { return c.resolved }
