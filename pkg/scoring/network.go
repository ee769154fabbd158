package scoring

import (
	"fmt"
	"math"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/graph"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/proximity"
	"github.com/google/uuid"
)

// DetectedIntersectionType tags intersections proposed by DetectIntersections.
const DetectedIntersectionType = "detected"

// CandidateConnection is a suggested join between two nearby roads.
type CandidateConnection struct {
	RoadA     string     `json:"road_a"`
	RoadB     string     `json:"road_b"`
	RoadAName string     `json:"road_a_name"`
	RoadBName string     `json:"road_b_name"`
	Point     geo.LatLng `json:"point"`
	DistanceM float64    `json:"distance_m"`
}

// NetworkAnalysis summarizes the outdoor network of a road system.
type NetworkAnalysis struct {
	SystemID           string                `json:"system_id"`
	TotalBuildings     int                   `json:"total_buildings"`
	TotalRoads         int                   `json:"total_roads"`
	ConnectedRoads     int                   `json:"connected_roads"`
	TotalIntersections int                   `json:"total_intersections"`
	TotalLandmarks     int                   `json:"total_landmarks"`
	TotalLengthM       float64               `json:"total_length_m"`
	ConnectivityPct    int                   `json:"connectivity_pct"`
	Components         int                   `json:"components"`
	Candidates         []CandidateConnection `json:"candidates"`
}

// AnalyzeRoadNetwork computes counts, connectivity and merge candidates for
// the outdoor roads of s.
//
// Every unordered road pair is compared by its closest point pair, which is
// O(R²·P²). Fine for tens of roads.
func AnalyzeRoadNetwork(s *model.RoadSystem, m *proximity.Matcher) NetworkAnalysis {
	roads := s.OutdoorRoads()
	a := NetworkAnalysis{
		SystemID:           s.ID,
		TotalBuildings:     len(s.Buildings),
		TotalRoads:         len(roads),
		TotalIntersections: len(s.Intersections),
		TotalLandmarks:     len(s.Landmarks),
		Candidates:         []CandidateConnection{},
	}

	for _, r := range roads {
		if len(r.ConnectedIntersections) > 0 {
			a.ConnectedRoads++
		}
		a.TotalLengthM += geo.PolylineLength(r.Points)
	}
	if a.TotalRoads > 0 {
		a.ConnectivityPct = int(math.Round(float64(a.ConnectedRoads) / float64(a.TotalRoads) * 100))
	}
	a.Components = len(graph.Components(roadIDs(roads), roadAdjacency(s, roads)))

	for i := 0; i < len(roads); i++ {
		for j := i + 1; j < len(roads); j++ {
			ra, rb := roads[i], roads[j]
			pi, pj, dist, ok := geo.ClosestPair(ra.Points, rb.Points)
			if !ok || !m.RoadsMergeable(dist) {
				continue
			}
			a.Candidates = append(a.Candidates, CandidateConnection{
				RoadA:     ra.ID,
				RoadB:     rb.ID,
				RoadAName: ra.Name,
				RoadBName: rb.Name,
				Point:     geo.MidPoint(ra.Points[pi], rb.Points[pj]),
				DistanceM: dist,
			})
		}
	}
	return a
}

func roadIDs(roads []model.Road) []string {
	ids := make([]string, len(roads))
	for i, r := range roads {
		ids[i] = r.ID
	}
	return ids
}

// roadAdjacency links roads that share an intersection, using both the
// intersections' road lists and the roads' intersection lists.
func roadAdjacency(s *model.RoadSystem, roads []model.Road) graph.Adjacency {
	members := map[string][]string{}
	for _, in := range s.Intersections {
		members[in.ID] = append(members[in.ID], in.ConnectedRoads...)
	}
	for _, r := range roads {
		for _, id := range r.ConnectedIntersections {
			members[id] = append(members[id], r.ID)
		}
	}

	adj := graph.Adjacency{}
	for _, in := range s.Intersections {
		linkAll(adj, members[in.ID])
		delete(members, in.ID)
	}
	// Intersections referenced by roads but absent from the system.
	for _, r := range roads {
		for _, id := range r.ConnectedIntersections {
			linkAll(adj, members[id])
			delete(members, id)
		}
	}
	return adj
}

func linkAll(adj graph.Adjacency, ids []string) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			adj.AddUndirected(ids[i], ids[j])
		}
	}
}

// DetectIntersections proposes intersections between pairs of outdoor roads.
// Segments that cross exactly count, as do road endpoints lying within the
// intersection tolerance of the other road. Points of one road pair closer
// than that tolerance are reported once. Results are not persisted.
func DetectIntersections(s *model.RoadSystem, m *proximity.Matcher) []model.Intersection {
	roads := s.OutdoorRoads()
	tol := m.Tolerances().IntersectionM
	out := []model.Intersection{}

	for i := 0; i < len(roads); i++ {
		for j := i + 1; j < len(roads); j++ {
			ra, rb := roads[i], roads[j]
			var found []geo.LatLng
			add := func(p geo.LatLng) {
				for _, q := range found {
					if proximity.IsNear(p, q, tol) {
						return
					}
				}
				found = append(found, p)
			}

			for _, p := range crossings(ra.Points, rb.Points) {
				add(p)
			}
			for _, p := range endpoints(ra.Points) {
				if m.Touches(p, rb.Points) {
					add(p)
				}
			}
			for _, p := range endpoints(rb.Points) {
				if m.Touches(p, ra.Points) {
					add(p)
				}
			}

			for _, p := range found {
				out = append(out, model.Intersection{
					ID:             detectedID(ra.ID, rb.ID, p),
					Name:           fmt.Sprintf("%s & %s", ra.Name, rb.Name),
					Point:          p,
					ConnectedRoads: []string{ra.ID, rb.ID},
					Type:           DetectedIntersectionType,
				})
			}
		}
	}
	return out
}

func crossings(a, b []geo.LatLng) []geo.LatLng {
	var pts []geo.LatLng
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if p, ok := geo.SegmentIntersection(a[i-1], a[i], b[j-1], b[j]); ok {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func endpoints(pts []geo.LatLng) []geo.LatLng {
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return pts
	}
	return []geo.LatLng{pts[0], pts[len(pts)-1]}
}

// detectedID is stable for the same road pair and location, so repeated
// detection runs yield the same identifiers.
func detectedID(a, b string, p geo.LatLng) string {
	key := fmt.Sprintf("%s|%s|%.7f|%.7f", a, b, p.Lat, p.Lng)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
