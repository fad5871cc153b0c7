package app

import "github.com/vk/chainstack/internal/registry"

// coreModules is the default module set an App registers when the caller
// supplies none, as the shipped binary does. Embedders replace the set by
// passing their own modules to NewApp.
var coreModules = []registry.Module{builtins{}}

// builtins contributes the resource types the engine itself knows how to
// create, without consulting any external template catalog.
type builtins struct{}

func (builtins) Register(r *registry.Registry) {
	r.RegisterType(&registry.TypeHandle{
		Name:        "noop",
		Description: "A placeholder resource that converges immediately and exposes no attributes.",
	})
	r.RegisterType(&registry.TypeHandle{
		Name:        "value",
		Description: "A resource that echoes its properties back as attributes.",
	})
}
