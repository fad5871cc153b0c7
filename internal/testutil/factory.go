package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/chainstack/internal/chain"
	"github.com/vk/chainstack/internal/stack"
	"github.com/zclconf/go-cty/cty"
)

// FakeFactory implements stack.Factory for tests. Every created child gets
// the identity "id-<slot>" and a fixed attribute surface derived from its
// spec. Creation order is recorded so tests can assert on sequencing.
type FakeFactory struct {
	// FailOn, when non-empty, makes creation of that slot fail.
	FailOn string

	mu      sync.Mutex
	created []string
}

// Create implements stack.Factory.
func (f *FakeFactory) Create(ctx context.Context, spec chain.ChildSpec) (stack.Child, error) {
	if f.FailOn != "" && spec.Slot == f.FailOn {
		return nil, fmt.Errorf("injected failure for slot %s", spec.Slot)
	}

	f.mu.Lock()
	f.created = append(f.created, spec.Slot)
	f.mu.Unlock()

	attributes := cty.ObjectVal(map[string]cty.Value{
		"show":   cty.StringVal(spec.Type + "-" + spec.Slot),
		"status": cty.StringVal("COMPLETE"),
		"meta": cty.ObjectVal(map[string]cty.Value{
			"name": cty.StringVal("child-" + spec.Slot),
		}),
	})
	return stack.NewStaticChild("id-"+spec.Slot, attributes), nil
}

// CreatedOrder returns the slots in the order their children were created.
func (f *FakeFactory) CreatedOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.created))
	copy(out, f.created)
	return out
}
