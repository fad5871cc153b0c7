// Package chain synthesizes a nested-stack template from a chain
// declaration: one child per declared resource type, optionally linked into
// a strict sequential dependency order, all sharing one property payload.
package chain
