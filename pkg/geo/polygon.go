package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MetersPerDegree is the equatorial length of one degree of arc.
const MetersPerDegree = 111319.9

// DefaultBoundarySegments is the vertex count used by CircularBoundary when
// the caller passes a non-positive value.
const DefaultBoundarySegments = 16

// Polygon is a ring of geo points in order. The closing vertex is implicit.
type Polygon struct {
	Vertices []LatLng
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...LatLng) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// SignedArea returns the shoelace area in square degrees (x = lng, y = lat).
// Positive for counterclockwise winding.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].Lng * p.Vertices[j].Lat
		area -= p.Vertices[j].Lng * p.Vertices[i].Lat
	}
	return area / 2
}

// Area returns the approximate area in square meters. The degree area is
// scaled by MetersPerDegree² with no latitude correction, so it is only a
// rough figure for building-sized footprints.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea()) * MetersPerDegree * MetersPerDegree
}

// PolygonArea is Area over a bare point list.
func PolygonArea(pts []LatLng) float64 {
	return NewPolygon(pts...).Area()
}

// Centroid returns the vertex average.
func (p Polygon) Centroid() LatLng {
	n := len(p.Vertices)
	if n == 0 {
		return LatLng{}
	}
	var lat, lng float64
	for _, v := range p.Vertices {
		lat += v.Lat
		lng += v.Lng
	}
	return LatLng{Lat: lat / float64(n), Lng: lng / float64(n)}
}

// Ring returns the polygon as a closed orb.Ring.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		ring = append(ring, v.Orb())
	}
	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return ring
}

// BoundingBox returns the south-west and north-east corners.
func (p Polygon) BoundingBox() (LatLng, LatLng) {
	if len(p.Vertices) == 0 {
		return LatLng{}, LatLng{}
	}
	b := p.Ring().Bound()
	return FromOrb(b.Min), FromOrb(b.Max)
}

// Contains reports whether pt lies inside the polygon. Degenerate polygons
// contain nothing.
func (p Polygon) Contains(pt LatLng) bool {
	if p.IsEmpty() {
		return false
	}
	return planar.RingContains(p.Ring(), pt.Orb())
}

// CircularBoundary returns a regular polygon with the given number of
// vertices approximating a circle of radiusM meters around center.
func CircularBoundary(center LatLng, radiusM float64, segments int) []LatLng {
	if segments <= 0 {
		segments = DefaultBoundarySegments
	}
	cosLat := math.Cos(radians(center.Lat))
	pts := make([]LatLng, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		dLat := radiusM * math.Cos(theta) / EarthRadiusM
		dLng := radiusM * math.Sin(theta) / (EarthRadiusM * cosLat)
		pts[i] = LatLng{
			Lat: center.Lat + degrees(dLat),
			Lng: center.Lng + degrees(dLng),
		}
	}
	return pts
}
