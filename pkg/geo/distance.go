package geo

import "math"

// Distance returns the great-circle distance between a and b in meters
// using the haversine formula.
func Distance(a, b LatLng) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lng - a.Lng)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusM * c
}

// Bearing returns the initial forward azimuth from a to b in degrees [0, 360).
func Bearing(a, b LatLng) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dLambda := radians(b.Lng - a.Lng)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	brng := math.Mod(degrees(math.Atan2(y, x))+360, 360)
	if brng >= 360 {
		brng = 0
	}
	return brng
}

// PointToSegmentDistance returns the distance in meters from p to the closest
// point of the segment [start, end].
//
// The projection runs in a local equirectangular frame (longitude scaled by
// cos(latitude) of start), so it is only accurate for segments up to a few
// tens of meters. Callers use it at that scale.
func PointToSegmentDistance(p, start, end LatLng) float64 {
	scale := math.Cos(radians(start.Lat))
	dx := (end.Lng - start.Lng) * scale
	dy := end.Lat - start.Lat
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return Distance(p, start)
	}

	px := (p.Lng - start.Lng) * scale
	py := p.Lat - start.Lat
	t := (px*dx + py*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := LatLng{
		Lat: start.Lat + t*(end.Lat-start.Lat),
		Lng: start.Lng + t*(end.Lng-start.Lng),
	}
	return Distance(p, closest)
}

// PolylineLength returns the summed great-circle length of a polyline.
func PolylineLength(pts []LatLng) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
	}
	return total
}

// ClosestPair returns the indexes of the closest pair of points between a and
// b, and their distance. ok is false if either slice is empty.
func ClosestPair(a, b []LatLng) (i, j int, dist float64, ok bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0, false
	}
	dist = math.MaxFloat64
	for ai, pa := range a {
		for bi, pb := range b {
			if d := Distance(pa, pb); d < dist {
				dist, i, j = d, ai, bi
			}
		}
	}
	return i, j, dist, true
}
