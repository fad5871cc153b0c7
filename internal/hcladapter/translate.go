package hcladapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/chainstack/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// chainBlock is the raw HCL shape of a `chain "<name>" { ... }` block.
type chainBlock struct {
	Name       string         `hcl:"name,label"`
	Resources  []string       `hcl:"resources"`
	Concurrent *bool          `hcl:"concurrent,optional"`
	Properties hcl.Expression `hcl:"resource_properties,optional"`
}

// translateChain converts a decoded chain block into the format-agnostic
// spec. The property payload is evaluated eagerly; chain declarations carry
// literal payloads, so no evaluation context is available to them.
func translateChain(block *chainBlock) (*config.ChainSpec, error) {
	spec := &config.ChainSpec{
		Name:       block.Name,
		Resources:  block.Resources,
		Properties: cty.NilVal,
	}

	if block.Concurrent != nil {
		spec.Concurrent = *block.Concurrent
	}

	if block.Properties != nil {
		val, diags := block.Properties.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("resource_properties: %w", diags)
		}
		if !val.IsNull() {
			spec.Properties = val
		}
	}

	return spec, nil
}
