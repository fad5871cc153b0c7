package attrs

import (
	"strings"
)

// Reserved attribute names understood by every chain resource.
const (
	// RefsKey resolves to the ordered list of child resource identities.
	RefsKey = "refs"
	// AttributesKey resolves to a per-slot map of one attribute's value.
	// A sub-path naming the attribute is mandatory.
	AttributesKey = "attributes"

	// resourcePrefix addresses a single child directly:
	// resource.<slot>.<attribute path>.
	resourcePrefix = "resource."
)

// Kind discriminates the four attribute key forms.
type Kind int

const (
	// KindResource targets exactly one child by slot identifier.
	KindResource Kind = iota
	// KindRefs aggregates child identities.
	KindRefs
	// KindAttributes aggregates one attribute into a per-slot map.
	KindAttributes
	// KindGeneric aggregates a named attribute into an ordered list.
	KindGeneric
)

// Key is the parsed, tagged form of an attribute query. Modeling the four
// forms as one discriminated union keeps the resolution order auditable in
// a single dispatch instead of prefix checks scattered across call sites.
type Key struct {
	Kind Kind
	// Slot is set for KindResource only.
	Slot string
	// Name is the attribute name for KindGeneric only.
	Name string
	// Path is the trailing sub-path applied after the key itself.
	Path []string
}

// ParseKey classifies a raw attribute key plus any trailing sub-path
// components. The reserved resource prefix wins over everything else, then
// the two reserved names; any other key is a generic attribute name.
func ParseKey(raw string, path ...string) Key {
	if strings.HasPrefix(raw, resourcePrefix) {
		parts := strings.SplitN(raw, ".", 3)
		key := Key{Kind: KindResource, Slot: parts[1]}
		if len(parts) == 3 && parts[2] != "" {
			key.Path = strings.Split(parts[2], ".")
		}
		key.Path = append(key.Path, path...)
		return key
	}

	switch raw {
	case RefsKey:
		return Key{Kind: KindRefs, Path: path}
	case AttributesKey:
		return Key{Kind: KindAttributes, Path: path}
	}

	return Key{Kind: KindGeneric, Name: raw, Path: path}
}

// String renders the canonical dotted form of the key.
func (k Key) String() string {
	var parts []string
	switch k.Kind {
	case KindResource:
		parts = append(parts, "resource", k.Slot)
	case KindRefs:
		parts = append(parts, RefsKey)
	case KindAttributes:
		parts = append(parts, AttributesKey)
	default:
		parts = append(parts, k.Name)
	}
	parts = append(parts, k.Path...)
	return strings.Join(parts, ".")
}

// Ref is one raw attribute reference discovered in the owning template: the
// key as written plus any further path components. The key of a direct
// child reference keeps its full resource.<slot>.<attr> spelling.
type Ref struct {
	Key  string
	Path []string
}

// ParseRef splits a bare dotted string into a reference. A direct child
// reference keeps its full spelling as the key; any other key separates
// into the key's first component plus a trailing path.
func ParseRef(raw string) Ref {
	if strings.HasPrefix(raw, resourcePrefix) {
		return Ref{Key: raw}
	}
	parts := strings.Split(raw, ".")
	if len(parts) == 1 {
		return Ref{Key: raw}
	}
	return Ref{Key: parts[0], Path: parts[1:]}
}
