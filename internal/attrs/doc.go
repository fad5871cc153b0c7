// Package attrs defines the attribute key grammar a parent template uses to
// read values back from a chain's nested stack, and the resolver that
// answers those queries against the stack's attribute service.
package attrs
