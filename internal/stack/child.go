package stack

import (
	"github.com/vk/chainstack/internal/attrs"
	"github.com/zclconf/go-cty/cty"
)

// Child is one created resource inside the nested stack: an identity plus
// an attribute surface addressed by name and sub-path.
type Child interface {
	ID() cty.Value
	Attribute(name string, path []string) (cty.Value, error)
}

// StaticChild is a Child whose identity and attributes are fixed at
// creation time. Factories that compute everything up front (including the
// test factories) return these.
type StaticChild struct {
	id    cty.Value
	attrs cty.Value
}

// NewStaticChild builds a child from an identity string and an object value
// holding its attributes.
func NewStaticChild(id string, attributes cty.Value) *StaticChild {
	return &StaticChild{id: cty.StringVal(id), attrs: attributes}
}

// ID returns the child's resource identity.
func (c *StaticChild) ID() cty.Value {
	return c.id
}

// Attribute resolves a named attribute and descends into any sub-path.
func (c *StaticChild) Attribute(name string, path []string) (cty.Value, error) {
	return attrs.SelectPath(c.attrs, append([]string{name}, path...))
}
