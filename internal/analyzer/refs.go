// Package analyzer inspects the owning template's expressions and reports
// which attributes of a chain resource they reference. The reported set
// drives output projection; nothing else is ever materialized.
package analyzer

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/chainstack/internal/attrs"
	"github.com/zclconf/go-cty/cty"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// ReferencedAttrs walks the given expressions and collects every attribute
// reference rooted at the named chain resource. The result is deduplicated
// and sorted by canonical traversal string so repeated analysis of the same
// template reports the same set in the same order.
func ReferencedAttrs(exprs []hcl.Expression, chainName string) []attrs.Ref {
	byKey := make(map[string]hcl.Traversal)

	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		for _, traversal := range expr.Variables() {
			if traversal.RootName() != chainName || len(traversal) < 2 {
				continue
			}
			byKey[TraversalKey(traversal)] = traversal
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	refs := make([]attrs.Ref, 0, len(keys))
	for _, k := range keys {
		if ref, ok := refFromTraversal(byKey[k]); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// refFromTraversal converts the steps after the resource root into a raw
// attribute reference. A direct child reference keeps its full
// resource.<slot>.<attr...> spelling as the key; anything else splits into
// key plus trailing path.
func refFromTraversal(traversal hcl.Traversal) (attrs.Ref, bool) {
	steps := make([]string, 0, len(traversal)-1)
	for _, step := range traversal[1:] {
		s, ok := stepString(step)
		if !ok {
			return attrs.Ref{}, false
		}
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return attrs.Ref{}, false
	}

	if steps[0] == "resource" && len(steps) >= 3 {
		return attrs.Ref{Key: strings.Join(steps[:3], "."), Path: steps[3:]}, true
	}
	return attrs.Ref{Key: steps[0], Path: steps[1:]}, true
}

// stepString renders one traversal step as a path component. Only string
// and whole-number index keys are addressable.
func stepString(step hcl.Traverser) (string, bool) {
	switch s := step.(type) {
	case hcl.TraverseAttr:
		return s.Name, true
	case hcl.TraverseIndex:
		switch s.Key.Type() {
		case cty.String:
			return s.Key.AsString(), true
		case cty.Number:
			bf := s.Key.AsBigFloat()
			if i, acc := bf.Int64(); acc == big.Exact {
				return strconv.FormatInt(i, 10), true
			}
		}
	}
	return "", false
}
