package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of all chain
// declarations discovered in the loaded configuration.
type Model struct {
	// Chains maps a chain's declared name to its specification.
	Chains map[string]*ChainSpec
	// Order preserves the declaration order of chain names across files.
	Order []string
}

// ChainSpec is the user declaration for one resource chain: an ordered list
// of resource type names (duplicates allowed), a concurrency switch, and a
// single property payload shared by every child. A ChainSpec is immutable
// once loaded; synthesis never writes back into it.
type ChainSpec struct {
	Name string

	// Resources is the ordered list of resource types to instantiate, one
	// child per entry. Entries may repeat.
	Resources []string

	// Concurrent controls the dependency topology handed to the execution
	// engine. When false, each child depends on the previous one in the
	// list; when true, no dependency edges are produced.
	Concurrent bool

	// Properties is the payload passed unchanged to every child in the
	// chain. cty.NilVal when the declaration omits it.
	Properties cty.Value
}

// NewModel creates an empty, initialized Model.
func NewModel() *Model {
	return &Model{Chains: make(map[string]*ChainSpec)}
}

// AddChain records a chain declaration, preserving encounter order. A
// redeclared name replaces the earlier spec without duplicating its order
// slot.
func (m *Model) AddChain(spec *ChainSpec) {
	if _, ok := m.Chains[spec.Name]; !ok {
		m.Order = append(m.Order, spec.Name)
	}
	m.Chains[spec.Name] = spec
}
