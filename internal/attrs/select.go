package attrs

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// SelectPath descends into a value one path component at a time: object
// attributes and map keys by name, list and tuple elements by decimal
// index. An empty path returns the value unchanged.
func SelectPath(v cty.Value, path []string) (cty.Value, error) {
	for _, step := range path {
		if v == cty.NilVal || v.IsNull() {
			return cty.NilVal, fmt.Errorf("cannot select %q from a null value", step)
		}

		ty := v.Type()
		switch {
		case ty.IsObjectType():
			if !ty.HasAttribute(step) {
				return cty.NilVal, fmt.Errorf("value has no attribute %q", step)
			}
			v = v.GetAttr(step)

		case ty.IsMapType():
			idx := cty.StringVal(step)
			if v.HasIndex(idx).False() {
				return cty.NilVal, fmt.Errorf("map has no key %q", step)
			}
			v = v.Index(idx)

		case ty.IsListType() || ty.IsTupleType():
			i, err := strconv.Atoi(step)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %q is not a number: %w", step, err)
			}
			idx := cty.NumberIntVal(int64(i))
			if v.HasIndex(idx).False() {
				return cty.NilVal, fmt.Errorf("index %d out of range", i)
			}
			v = v.Index(idx)

		default:
			return cty.NilVal, fmt.Errorf("cannot select %q from %s", step, ty.FriendlyName())
		}
	}

	return v, nil
}
