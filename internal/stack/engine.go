// Package stack executes an assembled chain template as a nested stack:
// it creates one child per slot honoring the template's dependency edges,
// serves attribute lookups against the converged children, and evaluates
// the template's projected outputs.
package stack

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/chainstack/internal/attrs"
	"github.com/vk/chainstack/internal/chain"
	"github.com/vk/chainstack/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/sync/errgroup"
)

// Factory creates the concrete resource for one child spec. The engine
// owns scheduling; the factory owns what a child actually is.
type Factory interface {
	Create(ctx context.Context, spec chain.ChildSpec) (Child, error)
}

// Engine converges one nested template. Children with no dependency edges
// are created in parallel; a chained template is created strictly in
// declaration order because each child waits on its predecessor.
type Engine struct {
	tmpl    *chain.Template
	factory Factory
	graph   *graph

	mu      sync.RWMutex
	created map[string]Child
}

// NewEngine builds the dependency graph for the template and validates it.
// A template synthesized by the chain package can only yield a linear chain
// or an edgeless set, but the graph is still checked for cycles so the
// engine holds its own invariant rather than trusting its caller.
func NewEngine(tmpl *chain.Template, factory Factory) (*Engine, error) {
	g := newGraph()
	for _, c := range tmpl.Children() {
		g.addNode(c.Slot)
	}
	for _, c := range tmpl.Children() {
		if c.DependsOn == "" {
			continue
		}
		if err := g.addEdge(c.DependsOn, c.Slot); err != nil {
			return nil, fmt.Errorf("child %s: %w", c.Slot, err)
		}
	}
	if err := g.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}

	return &Engine{
		tmpl:    tmpl,
		factory: factory,
		graph:   g,
		created: make(map[string]Child),
	}, nil
}

// Converge creates every child of the template, honoring dependency
// edges. A failed child cancels the remaining work; the first error is
// returned.
func (e *Engine) Converge(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Converge: starting child creation.", "children", e.tmpl.Len())

	doneCh := make(map[string]chan struct{}, e.tmpl.Len())
	for _, slot := range e.tmpl.Slots() {
		doneCh[slot] = make(chan struct{})
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, spec := range e.tmpl.Children() {
		spec := spec
		eg.Go(func() error {
			deps, err := e.graph.dependencies(spec.Slot)
			if err != nil {
				return err
			}
			for _, dep := range deps {
				select {
				case <-doneCh[dep]:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			child, err := e.factory.Create(ctx, spec)
			if err != nil {
				return fmt.Errorf("creating child %s (%s): %w", spec.Slot, spec.Type, err)
			}

			e.mu.Lock()
			e.created[spec.Slot] = child
			e.mu.Unlock()

			logger.Debug("Converge: child created.", "slot", spec.Slot, "type", spec.Type)
			close(doneCh[spec.Slot])
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Debug("Converge: all children created.")
	return nil
}

// child returns the created child for a slot, distinguishing a slot the
// template doesn't know from a child that simply hasn't converged yet.
func (e *Engine) child(slot string) (Child, error) {
	if _, ok := e.tmpl.Child(slot); !ok {
		return nil, fmt.Errorf("no child for slot %s", slot)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.created[slot]
	if !ok {
		return nil, fmt.Errorf("child %s: %w", slot, attrs.ErrChildUnavailable)
	}
	return c, nil
}

// ChildID implements attrs.Service.
func (e *Engine) ChildID(ctx context.Context, slot string) (cty.Value, error) {
	c, err := e.child(slot)
	if err != nil {
		return cty.NilVal, err
	}
	return c.ID(), nil
}

// ChildAttribute implements attrs.Service.
func (e *Engine) ChildAttribute(ctx context.Context, slot, name string, path []string) (cty.Value, error) {
	c, err := e.child(slot)
	if err != nil {
		return cty.NilVal, err
	}
	return c.Attribute(name, path)
}

// Outputs evaluates the template's projected output definitions against
// the converged stack. Each definition is evaluated exactly once per call.
func (e *Engine) Outputs(ctx context.Context) (map[string]cty.Value, error) {
	resolver := attrs.NewResolver(e)

	vals := make(map[string]cty.Value, len(e.tmpl.Outputs()))
	for _, def := range e.tmpl.Outputs() {
		v, err := def.Query.Evaluate(ctx, resolver)
		if err != nil {
			return nil, fmt.Errorf("output %q: %w", def.Name, err)
		}
		vals[def.Name] = v
	}
	return vals, nil
}
