// Package outputs projects nested-template output definitions from the set
// of attribute keys the owning template actually references. Emission is
// lazy: output count is bounded by the referenced-key set, never by the
// attribute-name × child-count product.
package outputs

import (
	"context"
	"strings"

	"github.com/vk/chainstack/internal/attrs"
	"github.com/zclconf/go-cty/cty"
)

// Query is the value-producing expression of an output definition: an
// attribute key bound to the template's children, evaluated once by the
// execution engine after the nested stack converges.
type Query struct {
	Key      attrs.Key
	Children []string
}

// Evaluate runs the bound query through the given resolver.
func (q Query) Evaluate(ctx context.Context, r *attrs.Resolver) (cty.Value, error) {
	return r.Resolve(ctx, q.Key, q.Children)
}

// String renders the canonical dotted form of the bound key.
func (q Query) String() string {
	return q.Key.String()
}

// OutputDefinition names one output of the nested template and carries the
// query that produces its value. Definitions are created during template
// synthesis and consumed once by the execution engine; they are never
// mutated afterward.
type OutputDefinition struct {
	Name  string
	Query Query
}

// Project filters the referenced attribute keys down to the structurally
// resolvable forms and emits one output definition per survivor:
//
//   - resource.<slot>.<path...> keys, only when the key itself carries a
//     non-empty attribute path and the slot exists among the children;
//   - the reserved attributes key with a non-empty sub-path, as a
//     per-slot map;
//   - any non-reserved key, as an aggregation across all children.
//
// The bare reserved refs/attributes keys are namespace markers for direct
// queries and are never projected.
func Project(referenced []attrs.Ref, children []string) []OutputDefinition {
	slots := make(map[string]struct{}, len(children))
	for _, slot := range children {
		slots[slot] = struct{}{}
	}

	var defs []OutputDefinition
	for _, ref := range referenced {
		key := attrs.ParseKey(ref.Key)

		switch {
		case key.Kind == attrs.KindResource:
			// The key itself must name an attribute; a trailing sub-path
			// alone does not make a bare resource.<slot> key resolvable.
			if len(key.Path) == 0 {
				continue
			}
			if _, ok := slots[key.Slot]; !ok {
				continue
			}

		case key.Kind == attrs.KindAttributes:
			if len(ref.Path) == 0 {
				continue
			}

		case key.Kind == attrs.KindRefs:
			continue
		}

		defs = append(defs, OutputDefinition{
			Name: outputName(ref),
			Query: Query{
				Key:      attrs.ParseKey(ref.Key, ref.Path...),
				Children: children,
			},
		})
	}
	return defs
}

// outputName derives the output's name from the reference as written: the
// raw key alone, or the key joined with its path components.
func outputName(ref attrs.Ref) string {
	if len(ref.Path) == 0 {
		return ref.Key
	}
	return strings.Join(append([]string{ref.Key}, ref.Path...), ", ")
}
