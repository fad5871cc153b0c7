package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	t.Run("resource prefix wins over everything", func(t *testing.T) {
		key := ParseKey("resource.0.name")
		assert.Equal(t, KindResource, key.Kind)
		assert.Equal(t, "0", key.Slot)
		assert.Equal(t, []string{"name"}, key.Path)
	})

	t.Run("resource key merges trailing path", func(t *testing.T) {
		key := ParseKey("resource.2.meta", "name")
		assert.Equal(t, "2", key.Slot)
		assert.Equal(t, []string{"meta", "name"}, key.Path)
	})

	t.Run("bare resource slot has empty path", func(t *testing.T) {
		key := ParseKey("resource.1")
		assert.Equal(t, KindResource, key.Kind)
		assert.Equal(t, "1", key.Slot)
		assert.Empty(t, key.Path)
	})

	t.Run("reserved names", func(t *testing.T) {
		assert.Equal(t, KindRefs, ParseKey("refs").Kind)
		assert.Equal(t, KindAttributes, ParseKey("attributes").Kind)
		assert.Equal(t, []string{"status"}, ParseKey("attributes", "status").Path)
	})

	t.Run("anything else is generic", func(t *testing.T) {
		key := ParseKey("show", "value")
		assert.Equal(t, KindGeneric, key.Kind)
		assert.Equal(t, "show", key.Name)
		assert.Equal(t, []string{"value"}, key.Path)
	})
}

func TestParseRef(t *testing.T) {
	assert.Equal(t, Ref{Key: "show"}, ParseRef("show"))
	assert.Equal(t, Ref{Key: "attributes", Path: []string{"status"}}, ParseRef("attributes.status"))
	assert.Equal(t, Ref{Key: "resource.0.meta.name"}, ParseRef("resource.0.meta.name"))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "resource.0.name", ParseKey("resource.0.name").String())
	assert.Equal(t, "refs", ParseKey("refs").String())
	assert.Equal(t, "attributes.status", ParseKey("attributes", "status").String())
	assert.Equal(t, "show.value", ParseKey("show", "value").String())
}
