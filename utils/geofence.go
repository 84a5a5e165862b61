// utils/geofence.go
package utils

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ParseGeofence decodes a stored GeoJSON geometry into a polygon. Accepts
// Polygon directly or the first polygon of a MultiPolygon.
func ParseGeofence(raw []byte) (orb.Polygon, error) {
	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("parse geofence: %w", err)
	}
	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		return g, nil
	case orb.MultiPolygon:
		if len(g) == 0 {
			return nil, fmt.Errorf("parse geofence: empty MultiPolygon")
		}
		return g[0], nil
	default:
		return nil, fmt.Errorf("parse geofence: geometry is %T, want Polygon", g)
	}
}

// Contains reports whether the lat/lng point falls inside the polygon.
// GeoJSON coordinate order is lng, lat.
func Contains(poly orb.Polygon, lat, lng float64) bool {
	return planar.PolygonContains(poly, orb.Point{lng, lat})
}
