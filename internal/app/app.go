package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/chainstack/internal/config"
	"github.com/vk/chainstack/internal/ctxlog"
	"github.com/vk/chainstack/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Template documents go to outW; log output goes to logW.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	reg    *registry.Registry
	model  *config.Model
	cfg    *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ChainPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded into unified model.", "chains", len(model.Chains))

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All modules registered.", "count", len(modules))

	for _, name := range model.Order {
		if err := reg.ValidateChain(ctx, model.Chains[name]); err != nil {
			return nil, fmt.Errorf("chain %q failed validation: %w", name, err)
		}
	}
	logger.Debug("Chain validation passed.")

	return &App{
		outW:   outW,
		logger: logger,
		reg:    reg,
		model:  model,
		cfg:    cfg,
	}, nil
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
