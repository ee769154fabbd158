// Package proximity decides whether two spatial features are the same place.
package proximity

import (
	"math"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Default tolerances in meters.
const (
	DefaultVerticalCirculationM = 10.0
	DefaultRoadMergeM           = 20.0
	DefaultMinNewPointM         = 2.0
	DefaultIntersectionM        = 5.0
)

// Tolerances groups the distance thresholds used for fuzzy matching.
type Tolerances struct {
	// VerticalCirculationM matches elevator/stairs landmarks across floors
	// of one building.
	VerticalCirculationM float64 `yaml:"vertical_circulation_m" json:"vertical_circulation_m"`
	// RoadMergeM matches road points across the outdoor network.
	RoadMergeM float64 `yaml:"road_merge_m" json:"road_merge_m"`
	// MinNewPointM is the minimum spacing of consecutive trace points.
	MinNewPointM float64 `yaml:"min_new_point_m" json:"min_new_point_m"`
	// IntersectionM is how close a road endpoint must be to another road to
	// count as touching it.
	IntersectionM float64 `yaml:"intersection_m" json:"intersection_m"`
}

// DefaultTolerances returns the conventional thresholds.
func DefaultTolerances() Tolerances {
	return Tolerances{
		VerticalCirculationM: DefaultVerticalCirculationM,
		RoadMergeM:           DefaultRoadMergeM,
		MinNewPointM:         DefaultMinNewPointM,
		IntersectionM:        DefaultIntersectionM,
	}
}

// WithDefaults fills non-positive fields from DefaultTolerances.
func (t Tolerances) WithDefaults() Tolerances {
	d := DefaultTolerances()
	if t.VerticalCirculationM <= 0 {
		t.VerticalCirculationM = d.VerticalCirculationM
	}
	if t.RoadMergeM <= 0 {
		t.RoadMergeM = d.RoadMergeM
	}
	if t.MinNewPointM <= 0 {
		t.MinNewPointM = d.MinNewPointM
	}
	if t.IntersectionM <= 0 {
		t.IntersectionM = d.IntersectionM
	}
	return t
}

// IsNear reports whether a and b are within toleranceM meters (inclusive).
func IsNear(a, b geo.LatLng, toleranceM float64) bool {
	return geo.Distance(a, b) <= toleranceM
}

// Matcher applies a fixed set of tolerances.
type Matcher struct {
	tol Tolerances
}

// NewMatcher creates a matcher; zero tolerances fall back to defaults.
func NewMatcher(t Tolerances) *Matcher {
	return &Matcher{tol: t.WithDefaults()}
}

// Tolerances returns the effective thresholds.
func (m *Matcher) Tolerances() Tolerances {
	return m.tol
}

// SameCirculation reports whether two landmarks on different floors are the
// same elevator shaft or stairwell.
func (m *Matcher) SameCirculation(a, b model.Landmark) bool {
	if a.Kind != b.Kind {
		return false
	}
	return IsNear(a.Location, b.Location, m.tol.VerticalCirculationM)
}

// RoadsMergeable reports whether a closest-point distance is short enough to
// propose joining two roads. The comparison is strict.
func (m *Matcher) RoadsMergeable(distM float64) bool {
	return distM < m.tol.RoadMergeM
}

// Touches reports whether p lies within the intersection tolerance of any
// segment of the polyline.
func (m *Matcher) Touches(p geo.LatLng, line []geo.LatLng) bool {
	if len(line) == 1 {
		return IsNear(p, line[0], m.tol.IntersectionM)
	}
	for i := 1; i < len(line); i++ {
		if geo.PointToSegmentDistance(p, line[i-1], line[i]) <= m.tol.IntersectionM {
			return true
		}
	}
	return false
}

// SimplifyTrace drops points closer than minSpacingM to the previously kept
// point, then runs Douglas-Peucker with the same threshold converted to
// degrees. The first and last points always survive.
func SimplifyTrace(pts []geo.LatLng, minSpacingM float64) []geo.LatLng {
	if len(pts) <= 2 || minSpacingM <= 0 {
		return append([]geo.LatLng(nil), pts...)
	}

	kept := []geo.LatLng{pts[0]}
	for _, p := range pts[1 : len(pts)-1] {
		if geo.Distance(kept[len(kept)-1], p) >= minSpacingM {
			kept = append(kept, p)
		}
	}
	kept = append(kept, pts[len(pts)-1])
	if len(kept) <= 2 {
		return kept
	}

	ls := make(orb.LineString, len(kept))
	for i, p := range kept {
		ls[i] = p.Orb()
	}
	// Longitude degrees shrink with latitude; use the smaller of the two
	// degree lengths so the threshold never exceeds minSpacingM.
	thresholdDeg := minSpacingM / geo.MetersPerDegree * math.Cos(kept[0].Lat*math.Pi/180)
	out := simplify.DouglasPeucker(thresholdDeg).LineString(ls)

	res := make([]geo.LatLng, len(out))
	for i, p := range out {
		res[i] = geo.FromOrb(p)
	}
	return res
}

// SimplifyTrace applies the matcher's min-new-point tolerance.
func (m *Matcher) SimplifyTrace(pts []geo.LatLng) []geo.LatLng {
	return SimplifyTrace(pts, m.tol.MinNewPointM)
}
