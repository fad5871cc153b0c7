package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestSelectPath(t *testing.T) {
	value := cty.ObjectVal(map[string]cty.Value{
		"addresses": cty.ListVal([]cty.Value{
			cty.StringVal("10.0.0.1"),
			cty.StringVal("10.0.0.2"),
		}),
		"tags": cty.MapVal(map[string]cty.Value{
			"env": cty.StringVal("prod"),
		}),
	})

	t.Run("empty path returns value unchanged", func(t *testing.T) {
		got, err := SelectPath(value, nil)
		require.NoError(t, err)
		assert.True(t, value.RawEquals(got))
	})

	t.Run("object attribute then list index", func(t *testing.T) {
		got, err := SelectPath(value, []string{"addresses", "1"})
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.2", got.AsString())
	})

	t.Run("map key", func(t *testing.T) {
		got, err := SelectPath(value, []string{"tags", "env"})
		require.NoError(t, err)
		assert.Equal(t, "prod", got.AsString())
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, err := SelectPath(value, []string{"nope"})
		assert.ErrorContains(t, err, `no attribute "nope"`)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := SelectPath(value, []string{"addresses", "9"})
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("non-numeric list index", func(t *testing.T) {
		_, err := SelectPath(value, []string{"addresses", "first"})
		assert.ErrorContains(t, err, "not a number")
	})

	t.Run("cannot descend into null", func(t *testing.T) {
		_, err := SelectPath(cty.NullVal(cty.String), []string{"x"})
		assert.ErrorContains(t, err, "null value")
	})

	t.Run("cannot descend into scalar", func(t *testing.T) {
		_, err := SelectPath(cty.StringVal("flat"), []string{"x"})
		assert.ErrorContains(t, err, "cannot select")
	})
}
