package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ChainPath points at a .hcl file or a directory of .hcl files holding
	// chain declarations.
	ChainPath string

	// TemplatePath optionally points at the owning template; its
	// expressions are analyzed for chain attribute references, which
	// drive output projection.
	TemplatePath string

	// Project lists raw attribute keys to project as nested-template
	// outputs in addition to whatever the owning template references,
	// standing in for that set when the tool runs standalone.
	Project []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ChainPath == "" {
		return nil, errors.New("ChainPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
