// Package geo loads the ward polygon layer and resolves map interactions to
// ward identifiers.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Ward is one named polygon region from the reference layer.
type Ward struct {
	ID       string
	Geometry geom.T
}

// Layer is the immutable ward reference layer, loaded once per process.
// Features are kept in file order; the resolver's first-match semantics
// depend on that.
type Layer struct {
	idKey string
	wards []Ward
}

// LoadLayer reads a GeoJSON feature collection of ward polygons. Coordinates
// are expected in lon/lat (EPSG:4326). idProperty names the feature property
// holding the ward identifier; when empty the lexicographically first
// property key of the first feature is used for every feature.
func LoadLayer(path, idProperty string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ward layer: %w", err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing ward layer %s: %w", path, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("ward layer %s contains no features", path)
	}

	idKey := idProperty
	if idKey == "" {
		idKey = firstPropertyKey(fc.Features[0].Properties)
		if idKey == "" {
			return nil, fmt.Errorf("ward layer %s: features carry no properties", path)
		}
	}

	wards := make([]Ward, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := propertyString(f.Properties, idKey)
		if id == "" {
			return nil, fmt.Errorf("ward layer %s: feature %d has no %q property", path, i, idKey)
		}
		wards = append(wards, Ward{ID: id, Geometry: f.Geometry})
	}

	return &Layer{idKey: idKey, wards: wards}, nil
}

// NewLayer builds a layer from already-constructed wards. Used by tests and
// by callers that source geometry elsewhere.
func NewLayer(idKey string, wards []Ward) *Layer {
	return &Layer{idKey: idKey, wards: wards}
}

// IDKey returns the property key ward identifiers are read from.
func (l *Layer) IDKey() string { return l.idKey }

// Wards returns the wards in layer order.
func (l *Layer) Wards() []Ward { return l.wards }

// WardIDs returns the identifiers in layer order.
func (l *Layer) WardIDs() []string {
	ids := make([]string, len(l.wards))
	for i, w := range l.wards {
		ids[i] = w.ID
	}
	return ids
}

func firstPropertyKey(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

func propertyString(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
