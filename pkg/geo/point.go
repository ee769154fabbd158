package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the mean Earth radius used by every distance computation.
const EarthRadiusM = 6371000.0

// LatLng is a WGS84 position in degrees.
type LatLng struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// Pt is a shorthand constructor for LatLng.
func Pt(lat, lng float64) LatLng {
	return LatLng{Lat: lat, Lng: lng}
}

// IsZero reports whether p is the zero value (used for "no center set").
func (p LatLng) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Orb converts p to an orb.Point (X = longitude, Y = latitude).
func (p LatLng) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb converts an orb.Point back to LatLng.
func FromOrb(p orb.Point) LatLng {
	return LatLng{Lat: p.Y(), Lng: p.X()}
}

func (p LatLng) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lng)
}

// MidPoint returns the coordinate average of p and q. Only meaningful for
// nearby points.
func MidPoint(p, q LatLng) LatLng {
	return LatLng{Lat: (p.Lat + q.Lat) / 2, Lng: (p.Lng + q.Lng) / 2}
}

// Offset returns p moved northM meters north and eastM meters east.
func (p LatLng) Offset(northM, eastM float64) LatLng {
	dLat := northM / EarthRadiusM
	dLng := eastM / (EarthRadiusM * math.Cos(radians(p.Lat)))
	return LatLng{Lat: p.Lat + degrees(dLat), Lng: p.Lng + degrees(dLng)}
}

func radians(d float64) float64 { return d * math.Pi / 180 }
func degrees(r float64) float64 { return r * 180 / math.Pi }
