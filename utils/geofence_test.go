package utils

import (
	"testing"
)

// Rough square around central Hyderabad.
var squareGeofence = []byte(`{
	"type": "Polygon",
	"coordinates": [[
		[78.40, 17.35],
		[78.50, 17.35],
		[78.50, 17.45],
		[78.40, 17.45],
		[78.40, 17.35]
	]]
}`)

func TestParseGeofence(t *testing.T) {
	poly, err := ParseGeofence(squareGeofence)
	if err != nil {
		t.Fatalf("ParseGeofence: %v", err)
	}
	if len(poly) != 1 || len(poly[0]) != 5 {
		t.Fatalf("unexpected polygon shape: %v", poly)
	}
}

func TestParseGeofenceMultiPolygon(t *testing.T) {
	raw := []byte(`{
		"type": "MultiPolygon",
		"coordinates": [[[
			[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]
		]]]
	}`)
	poly, err := ParseGeofence(raw)
	if err != nil {
		t.Fatalf("ParseGeofence: %v", err)
	}
	if len(poly) != 1 {
		t.Fatalf("expected first polygon of MultiPolygon, got %v", poly)
	}
}

func TestParseGeofenceRejectsOtherGeometries(t *testing.T) {
	for _, raw := range []string{
		`{"type": "Point", "coordinates": [78.45, 17.40]}`,
		`{"type": "LineString", "coordinates": [[0,0],[1,1]]}`,
		`not json`,
	} {
		if _, err := ParseGeofence([]byte(raw)); err == nil {
			t.Errorf("ParseGeofence(%s) expected error", raw)
		}
	}
}

func TestContains(t *testing.T) {
	poly, err := ParseGeofence(squareGeofence)
	if err != nil {
		t.Fatalf("ParseGeofence: %v", err)
	}

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"center", 17.40, 78.45, true},
		{"near edge inside", 17.351, 78.401, true},
		{"north of fence", 17.50, 78.45, false},
		{"west of fence", 17.40, 78.30, false},
		{"antipode", -17.40, -78.45, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(poly, tt.lat, tt.lng); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}
