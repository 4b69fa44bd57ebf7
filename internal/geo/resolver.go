package geo

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// Resolver maps a map interaction to a ward identifier.
type Resolver struct {
	layer *Layer
}

func NewResolver(layer *Layer) *Resolver {
	return &Resolver{layer: layer}
}

// Resolve determines the ward for a map event. A drawn or clicked feature
// yields its identifier property directly; a raw click is tested against
// every ward polygon in layer order and the first containing polygon wins
// (first-match, not best-match — wards are expected non-overlapping). A miss
// is not an error: the caller falls through to manual ward entry.
func (r *Resolver) Resolve(ev domain.MapEvent) (string, bool) {
	switch e := ev.(type) {
	case domain.DrawnFeature:
		id := propertyString(e.Properties, r.layer.idKey)
		return id, id != ""
	case domain.RawClick:
		return r.resolvePoint(e.Lng, e.Lat)
	case domain.NoEvent:
		return "", false
	default:
		return "", false
	}
}

func (r *Resolver) resolvePoint(lng, lat float64) (string, bool) {
	pt := geom.Coord{lng, lat}
	for _, w := range r.layer.wards {
		if containsPoint(w.Geometry, pt) {
			return w.ID, true
		}
	}
	return "", false
}

func containsPoint(g geom.T, pt geom.Coord) bool {
	switch t := g.(type) {
	case *geom.Polygon:
		return polygonContains(t, pt)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			if polygonContains(t.Polygon(i), pt) {
				return true
			}
		}
	}
	return false
}

// polygonContains tests the outer ring, then excludes holes.
func polygonContains(p *geom.Polygon, pt geom.Coord) bool {
	if p.NumLinearRings() == 0 {
		return false
	}
	if !xy.IsPointInRing(p.Layout(), pt, p.LinearRing(0).FlatCoords()) {
		return false
	}
	for i := 1; i < p.NumLinearRings(); i++ {
		if xy.IsPointInRing(p.Layout(), pt, p.LinearRing(i).FlatCoords()) {
			return false
		}
	}
	return true
}
