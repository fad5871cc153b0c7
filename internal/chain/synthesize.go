package chain

import (
	"github.com/vk/chainstack/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// ChildSpec is the definition of one child in the nested template. Every
// child of a chain shares the same Properties value; the payload is held by
// reference, not cloned per child.
type ChildSpec struct {
	// Slot is the child's identifier within the nested template.
	Slot string
	// Type is the declared resource type for this slot.
	Type string
	// Properties is the chain-wide shared payload. cty.NilVal when the
	// declaration carries none.
	Properties cty.Value
	// DependsOn names the predecessor slot this child must wait for.
	// Empty for the first child and for every child of a concurrent chain.
	DependsOn string
}

// Synthesize builds one ChildSpec per declared resource type, in
// declaration order. In sequential mode each child after the first depends
// on the immediately preceding slot; in concurrent mode no edges are
// assigned. An empty resource list produces an empty result.
func Synthesize(spec *config.ChainSpec) []ChildSpec {
	names := SlotNames(len(spec.Resources))
	children := make([]ChildSpec, 0, len(spec.Resources))

	for i, resourceType := range spec.Resources {
		child := ChildSpec{
			Slot:       names[i],
			Type:       resourceType,
			Properties: spec.Properties,
		}
		if i > 0 && !spec.Concurrent {
			child.DependsOn = names[i-1]
		}
		children = append(children, child)
	}

	return children
}
