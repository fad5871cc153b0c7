package chain

import (
	"github.com/vk/chainstack/internal/outputs"
)

// Template is the assembled nested-stack body: the chain's children in
// declaration order plus the projected output definitions. A Template is
// rebuilt from the ChainSpec on every synthesis cycle and handed to the
// execution engine immutably; it is never mutated in place after that
// hand-off.
type Template struct {
	children []ChildSpec
	bySlot   map[string]int
	outs     []outputs.OutputDefinition
}

// Assemble collects synthesized child specs into a template. Declaration
// order is preserved in the underlying slice because consumers address
// children both positionally and by slot identifier.
func Assemble(children []ChildSpec) *Template {
	t := &Template{
		children: children,
		bySlot:   make(map[string]int, len(children)),
	}
	for i, c := range children {
		t.bySlot[c.Slot] = i
	}
	return t
}

// Len returns the number of children.
func (t *Template) Len() int {
	return len(t.children)
}

// Children returns the child specs in declaration order.
func (t *Template) Children() []ChildSpec {
	return t.children
}

// Child looks up one child by slot identifier.
func (t *Template) Child(slot string) (ChildSpec, bool) {
	i, ok := t.bySlot[slot]
	if !ok {
		return ChildSpec{}, false
	}
	return t.children[i], true
}

// Slots returns the slot identifiers in declaration order.
func (t *Template) Slots() []string {
	slots := make([]string, len(t.children))
	for i, c := range t.children {
		slots[i] = c.Slot
	}
	return slots
}

// ResourceTypes returns the declared type list, in order. Assembling a
// template and reading this back reproduces the original declaration.
func (t *Template) ResourceTypes() []string {
	types := make([]string, len(t.children))
	for i, c := range t.children {
		types[i] = c.Type
	}
	return types
}

// AddOutput appends a projected output definition.
func (t *Template) AddOutput(def outputs.OutputDefinition) {
	t.outs = append(t.outs, def)
}

// Outputs returns the projected output definitions in emission order.
func (t *Template) Outputs() []outputs.OutputDefinition {
	return t.outs
}
