package attrs

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// fakeService serves canned per-child values and counts lookups. Tests
// needing non-scalar identities override identify.
type fakeService struct {
	children map[string]cty.Value // slot -> attribute object
	identify func(slot string) (cty.Value, error)
	lookups  int
}

func (s *fakeService) ChildID(ctx context.Context, slot string) (cty.Value, error) {
	if s.identify != nil {
		return s.identify(slot)
	}
	if _, ok := s.children[slot]; !ok {
		return cty.NilVal, fmt.Errorf("child %s: %w", slot, ErrChildUnavailable)
	}
	return cty.StringVal("id-" + slot), nil
}

func (s *fakeService) ChildAttribute(ctx context.Context, slot, name string, path []string) (cty.Value, error) {
	s.lookups++
	obj, ok := s.children[slot]
	if !ok {
		return cty.NilVal, fmt.Errorf("child %s: %w", slot, ErrChildUnavailable)
	}
	return SelectPath(obj, append([]string{name}, path...))
}

func newFakeService(slots ...string) *fakeService {
	svc := &fakeService{children: make(map[string]cty.Value)}
	for _, slot := range slots {
		svc.children[slot] = cty.ObjectVal(map[string]cty.Value{
			"show":   cty.StringVal("show-" + slot),
			"status": cty.StringVal("COMPLETE"),
			"meta": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal("child-" + slot),
			}),
		})
	}
	return svc
}

func TestResolveRefs(t *testing.T) {
	svc := newFakeService("0", "1", "2")
	r := NewResolver(svc)

	t.Run("returns identities in declaration order", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("refs"), []string{"0", "1", "2"})
		require.NoError(t, err)
		assert.True(t, cty.TupleVal([]cty.Value{
			cty.StringVal("id-0"),
			cty.StringVal("id-1"),
			cty.StringVal("id-2"),
		}).RawEquals(got))
	})

	t.Run("no children yields empty sequence", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("refs"), nil)
		require.NoError(t, err)
		assert.True(t, cty.EmptyTupleVal.RawEquals(got))
	})

	t.Run("sub-path selects into each identity", func(t *testing.T) {
		structured := &fakeService{children: map[string]cty.Value{}}
		ids := map[string]cty.Value{
			"0": cty.ObjectVal(map[string]cty.Value{
				"uuid":   cty.StringVal("uuid-0"),
				"region": cty.StringVal("east"),
			}),
			"1": cty.ObjectVal(map[string]cty.Value{
				"uuid":   cty.StringVal("uuid-1"),
				"region": cty.StringVal("west"),
			}),
		}
		structured.identify = func(slot string) (cty.Value, error) { return ids[slot], nil }

		got, err := NewResolver(structured).Resolve(context.Background(),
			ParseKey("refs", "uuid"), []string{"0", "1"})
		require.NoError(t, err)
		assert.True(t, cty.TupleVal([]cty.Value{
			cty.StringVal("uuid-0"),
			cty.StringVal("uuid-1"),
		}).RawEquals(got))
	})

	t.Run("sub-path into a scalar identity is an error", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), ParseKey("refs", "uuid"), []string{"0", "1"})
		assert.ErrorContains(t, err, "child 0")
		assert.ErrorContains(t, err, `cannot select "uuid" from string`)
	})
}

func TestResolveAttributes(t *testing.T) {
	svc := newFakeService("0", "1")
	r := NewResolver(svc)

	t.Run("missing path is an error, never defaulted", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), ParseKey("attributes"), []string{"0", "1"})
		assert.ErrorIs(t, err, ErrPathRequired)
	})

	t.Run("path yields a per-slot map", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("attributes", "status"), []string{"0", "1"})
		require.NoError(t, err)
		assert.True(t, cty.ObjectVal(map[string]cty.Value{
			"0": cty.StringVal("COMPLETE"),
			"1": cty.StringVal("COMPLETE"),
		}).RawEquals(got))
	})

	t.Run("nested path descends per child", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("attributes", "meta", "name"), []string{"0", "1"})
		require.NoError(t, err)
		assert.Equal(t, "child-1", got.GetAttr("1").AsString())
	})
}

func TestResolveResource(t *testing.T) {
	svc := newFakeService("0", "1", "2")
	r := NewResolver(svc)

	t.Run("targets exactly one child", func(t *testing.T) {
		before := svc.lookups
		got, err := r.Resolve(context.Background(), ParseKey("resource.1.show"), []string{"0", "1", "2"})
		require.NoError(t, err)
		assert.Equal(t, "show-1", got.AsString())
		assert.Equal(t, 1, svc.lookups-before)
	})

	t.Run("bare resource key requires a path", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), ParseKey("resource.1"), []string{"0", "1", "2"})
		assert.ErrorIs(t, err, ErrPathRequired)
	})
}

func TestResolveGeneric(t *testing.T) {
	svc := newFakeService("0", "1", "2")
	r := NewResolver(svc)

	t.Run("aggregates across all children in order", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("show"), []string{"0", "1", "2"})
		require.NoError(t, err)
		assert.True(t, cty.TupleVal([]cty.Value{
			cty.StringVal("show-0"),
			cty.StringVal("show-1"),
			cty.StringVal("show-2"),
		}).RawEquals(got))
	})

	t.Run("sub-path applies per child", func(t *testing.T) {
		got, err := r.Resolve(context.Background(), ParseKey("meta", "name"), []string{"0", "1"})
		require.NoError(t, err)
		assert.Equal(t, "child-0", got.Index(cty.NumberIntVal(0)).AsString())
	})
}

func TestResolvePropagatesUnavailable(t *testing.T) {
	svc := newFakeService("0") // slot 1 was never created
	r := NewResolver(svc)

	_, err := r.Resolve(context.Background(), ParseKey("show"), []string{"0", "1"})
	assert.ErrorIs(t, err, ErrChildUnavailable)
}
