package chain

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// childDoc is the YAML shape of one child entry in the template document.
type childDoc struct {
	Type       string `yaml:"type"`
	Properties any    `yaml:"properties,omitempty"`
	DependsOn  string `yaml:"depends_on,omitempty"`
}

// MarshalYAML renders the template as a document with an ordered
// `resources` mapping and an `outputs` mapping naming each projected
// query. yaml.Node is used directly because a plain Go map would lose the
// declaration order of the children.
func (t *Template) MarshalYAML() (any, error) {
	resources := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range t.children {
		props, err := ctyToNative(c.Properties)
		if err != nil {
			return nil, fmt.Errorf("child %s: %w", c.Slot, err)
		}
		if err := appendEntry(resources, c.Slot, childDoc{
			Type:       c.Type,
			Properties: props,
			DependsOn:  c.DependsOn,
		}); err != nil {
			return nil, err
		}
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	if err := appendEntry(root, "resources", resources); err != nil {
		return nil, err
	}

	if len(t.outs) > 0 {
		outs := &yaml.Node{Kind: yaml.MappingNode}
		for _, def := range t.outs {
			if err := appendEntry(outs, def.Name, def.Query.String()); err != nil {
				return nil, err
			}
		}
		if err := appendEntry(root, "outputs", outs); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// appendEntry adds one key/value pair to a YAML mapping node.
func appendEntry(m *yaml.Node, key string, value any) error {
	keyNode := &yaml.Node{}
	if err := keyNode.Encode(key); err != nil {
		return err
	}
	valueNode, ok := value.(*yaml.Node)
	if !ok {
		valueNode = &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return err
		}
	}
	m.Content = append(m.Content, keyNode, valueNode)
	return nil
}

// ctyToNative recursively converts a cty.Value to its most natural Go
// counterpart for document encoding.
func ctyToNative(v cty.Value) (any, error) {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			nativeVal, err := ctyToNative(val)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			keyStr := key.AsString()
			nativeVal, err := ctyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = nativeVal
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported cty type for document encoding: %s", ty.FriendlyName())
	}
}
