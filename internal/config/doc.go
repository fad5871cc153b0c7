// Package config defines the format-agnostic model for chain declarations
// and the loader seam that format-specific adapters implement.
package config
