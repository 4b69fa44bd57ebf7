package domain

// MapEvent is the interaction payload handed to the ward resolver. Exactly
// one of the three variants is produced per interaction; consumers switch
// exhaustively instead of probing optional keys.
type MapEvent interface {
	mapEvent()
}

// DrawnFeature carries the properties of a shape the user clicked or drew
// on the map; the ward identifier is read straight from the properties.
type DrawnFeature struct {
	Properties map[string]any
}

// RawClick is a bare coordinate click with no feature attached; resolving
// it requires a point-in-polygon scan.
type RawClick struct {
	Lng float64
	Lat float64
}

// NoEvent means the interaction carried nothing usable; the caller falls
// through to manual ward entry.
type NoEvent struct{}

func (DrawnFeature) mapEvent() {}
func (RawClick) mapEvent()     {}
func (NoEvent) mapEvent()      {}
