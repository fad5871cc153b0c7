package attrs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ErrPathRequired is returned for attribute queries that need a sub-path
// but were given none. The condition is caller-visible and recoverable;
// it is never silently defaulted.
var ErrPathRequired = errors.New("attribute requires a path")

// ErrChildUnavailable distinguishes lookups against a child the nested
// stack has not created yet. Implementations of Service must wrap it so
// callers can tell the condition apart from a bad query.
var ErrChildUnavailable = errors.New("child attribute not available")

// Service is the nested-stack attribute boundary: per-child identity and
// attribute retrieval, keyed by slot identifier. The chain core performs no
// caching across calls; repeated readers cache externally.
type Service interface {
	ChildID(ctx context.Context, slot string) (cty.Value, error)
	ChildAttribute(ctx context.Context, slot, name string, path []string) (cty.Value, error)
}

// Resolver answers attribute queries for a chain by dispatching on the key
// form in a fixed priority order and delegating per-child retrieval to the
// attribute service. Resolution is pure: the same key against the same
// stack state yields the same result.
type Resolver struct {
	svc Service
}

// NewResolver creates a resolver backed by the given attribute service.
func NewResolver(svc Service) *Resolver {
	return &Resolver{svc: svc}
}

// Resolve evaluates one attribute key against the given children, in
// declaration order. The dispatch order is fixed: direct resource path,
// then refs, then attributes, then generic aggregation; it never varies
// with child count or type.
func (r *Resolver) Resolve(ctx context.Context, key Key, children []string) (cty.Value, error) {
	switch key.Kind {
	case KindResource:
		return r.resolveResource(ctx, key)
	case KindRefs:
		return r.resolveRefs(ctx, key, children)
	case KindAttributes:
		return r.resolveAttributes(ctx, key, children)
	default:
		return r.resolveGeneric(ctx, key, children)
	}
}

// resolveResource targets exactly one child, bypassing aggregation. The
// path must name the attribute to fetch.
func (r *Resolver) resolveResource(ctx context.Context, key Key) (cty.Value, error) {
	if len(key.Path) == 0 {
		return cty.NilVal, fmt.Errorf("%s: %w", key, ErrPathRequired)
	}
	return r.svc.ChildAttribute(ctx, key.Slot, key.Path[0], key.Path[1:])
}

// resolveRefs returns the ordered sequence of child identities. A sub-path
// selects uniformly into each entry; an empty sub-path returns the full
// sequence.
func (r *Resolver) resolveRefs(ctx context.Context, key Key, children []string) (cty.Value, error) {
	if len(children) == 0 {
		return cty.EmptyTupleVal, nil
	}

	vals := make([]cty.Value, 0, len(children))
	for _, slot := range children {
		id, err := r.svc.ChildID(ctx, slot)
		if err != nil {
			return cty.NilVal, err
		}
		if len(key.Path) > 0 {
			if id, err = SelectPath(id, key.Path); err != nil {
				return cty.NilVal, fmt.Errorf("child %s: %w", slot, err)
			}
		}
		vals = append(vals, id)
	}
	return cty.TupleVal(vals), nil
}

// resolveAttributes returns a slot-to-value mapping of one attribute
// fetched from every child. The sub-path naming the attribute is
// mandatory.
func (r *Resolver) resolveAttributes(ctx context.Context, key Key, children []string) (cty.Value, error) {
	if len(key.Path) == 0 {
		return cty.NilVal, fmt.Errorf("%s: %w", AttributesKey, ErrPathRequired)
	}

	if len(children) == 0 {
		return cty.EmptyObjectVal, nil
	}

	vals := make(map[string]cty.Value, len(children))
	for _, slot := range children {
		v, err := r.svc.ChildAttribute(ctx, slot, key.Path[0], key.Path[1:])
		if err != nil {
			return cty.NilVal, err
		}
		vals[slot] = v
	}
	return cty.ObjectVal(vals), nil
}

// resolveGeneric fetches a named attribute from every child and returns the
// results as an ordered sequence, one entry per child in declaration order.
func (r *Resolver) resolveGeneric(ctx context.Context, key Key, children []string) (cty.Value, error) {
	if len(children) == 0 {
		return cty.EmptyTupleVal, nil
	}

	vals := make([]cty.Value, 0, len(children))
	for _, slot := range children {
		v, err := r.svc.ChildAttribute(ctx, slot, key.Name, key.Path)
		if err != nil {
			return cty.NilVal, err
		}
		vals = append(vals, v)
	}
	return cty.TupleVal(vals), nil
}
