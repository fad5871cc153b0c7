package registry

import (
	"context"

	"github.com/vk/chainstack/internal/config"
	"github.com/vk/chainstack/internal/ctxlog"
)

// ValidateChain checks each declared resource type against the registry.
// Unresolved names are tolerated: they may be template-defined types, which
// only the execution engine can recognize, so they are logged and deferred
// rather than rejected here.
func (r *Registry) ValidateChain(ctx context.Context, spec *config.ChainSpec) error {
	logger := ctxlog.FromContext(ctx)

	for _, name := range spec.Resources {
		if _, err := r.ResolveType(name); err != nil {
			logger.Debug("Chain resource type not registered, deferring to the engine.",
				"chain", spec.Name, "type", name)
		}
	}

	return nil
}
