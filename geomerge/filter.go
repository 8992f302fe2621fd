package geomerge

import (
	"fmt"
	"sort"
	"strconv"

	geojson "github.com/paulmach/go.geojson"
)

// FilterSpec maps property names to the set of accepted stringified
// values. An empty value set leaves that property unconstrained.
type FilterSpec map[string][]string

// FilterFeatures returns a new collection holding only the features that
// satisfy every active constraint. A feature missing a constrained
// property is dropped. Input order is preserved and an empty spec is the
// identity.
func FilterFeatures(fc *geojson.FeatureCollection, spec FilterSpec) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	if len(spec) == 0 {
		out.Features = append(out.Features, fc.Features...)
		return out
	}

	for _, f := range fc.Features {
		if matchesSpec(f, spec) {
			out.AddFeature(f)
		}
	}
	return out
}

func matchesSpec(f *geojson.Feature, spec FilterSpec) bool {
	for prop, values := range spec {
		if len(values) == 0 {
			continue
		}

		v, ok := f.Properties[prop]
		if !ok || !containsString(values, stringifyValue(v)) {
			return false
		}
	}
	return true
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// PropertyValues returns the sorted set of distinct stringified values a
// property takes across all features. Features without the property are
// ignored.
func PropertyValues(fc *geojson.FeatureCollection, name string) []string {
	seen := make(map[string]bool)
	for _, f := range fc.Features {
		v, ok := f.Properties[name]
		if !ok {
			continue
		}
		seen[stringifyValue(v)] = true
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// stringifyValue canonicalizes a property value to its string form. The
// same form is used when building properties from CSV cells and when
// matching filter values, so filters built from either source agree.
func stringifyValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
