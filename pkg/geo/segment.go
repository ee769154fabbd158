package geo

import "math"

// ParallelEpsilon is the determinant magnitude below which two segments are
// treated as parallel. It is applied to raw degree coordinates.
const ParallelEpsilon = 1e-6

// SegmentIntersection returns the crossing point of segments [p1,p2] and
// [p3,p4]. Latitude and longitude are treated as planar coordinates and no
// tolerance band is applied: both parameters must lie in [0,1].
func SegmentIntersection(p1, p2, p3, p4 LatLng) (LatLng, bool) {
	x1, y1 := p1.Lng, p1.Lat
	x2, y2 := p2.Lng, p2.Lat
	x3, y3 := p3.Lng, p3.Lat
	x4, y4 := p4.Lng, p4.Lat

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < ParallelEpsilon {
		return LatLng{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return LatLng{}, false
	}

	return LatLng{
		Lat: y1 + t*(y2-y1),
		Lng: x1 + t*(x2-x1),
	}, true
}
