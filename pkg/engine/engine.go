// Package engine answers structural questions about a navigation snapshot:
// floor connectivity, accessibility, shortest floor paths, road network
// analysis and building validation.
//
// The engine never mutates its inputs and performs no I/O. Derived results
// are cached per building or road system ID; callers must call
// InvalidateCache after changing a building's floors, roads or landmarks.
// Cached results are shared and must be treated as read-only.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Shaloh69/UCRoadWays-sub000/internal/logger"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/floorgraph"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/graph"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/proximity"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/scoring"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/validation"
)

// ConnectivityResult is the floor connectivity of one building. Distances
// maps from → to → hop count; unreachable pairs are absent.
type ConnectivityResult struct {
	BuildingID     string                        `json:"building_id"`
	RootFloorID    string                        `json:"root_floor_id,omitempty"`
	Adjacency      graph.Adjacency               `json:"adjacency"`
	IsolatedFloors []string                      `json:"isolated_floors"`
	FullyConnected bool                          `json:"fully_connected"`
	Circulation    []floorgraph.CirculationPoint `json:"circulation"`
	Distances      map[string]map[string]int     `json:"distances"`
	Score          float64                       `json:"score"`
}

// Engine is safe for concurrent use.
type Engine struct {
	cfg     Config
	matcher *proximity.Matcher
	cache   *resultCache
	log     *slog.Logger
	rec     Recorder
}

// New creates an engine with DefaultConfig unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:   DefaultConfig(),
		cache: newResultCache(),
		rec:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.L()
	}
	e.matcher = proximity.NewMatcher(e.cfg.Tolerances)
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) cached(kind, id string, compute func() any) any {
	v, hit := e.cache.get(kind, id, func() any {
		start := time.Now()
		v := compute()
		e.rec.Computed(kind, time.Since(start))
		return v
	})
	if hit {
		e.rec.CacheHit(kind)
		e.log.Debug("cache_hit", "kind", kind, "id", id)
	} else {
		e.rec.CacheMiss(kind)
		e.log.Debug("cache_miss", "kind", kind, "id", id)
	}
	return v
}

// ComputeConnectivity returns the floor graph analysis of b.
func (e *Engine) ComputeConnectivity(b *model.Building) *ConnectivityResult {
	return e.cached(kindConnectivity, b.ID, func() any {
		nb := b.Normalize()
		return e.connectivity(&nb)
	}).(*ConnectivityResult)
}

func (e *Engine) connectivity(b *model.Building) *ConnectivityResult {
	g := floorgraph.Build(b, e.matcher, e.cfg.EscalatorLevelStep)
	ids := b.FloorIDs()
	res := &ConnectivityResult{
		BuildingID:  b.ID,
		Adjacency:   g.Adjacency,
		Circulation: g.Circulation,
		Distances:   graph.AllPairs(ids, g.Adjacency),
	}
	if root := floorgraph.Root(b); root != nil {
		res.RootFloorID = root.ID
	}
	if g.Degenerate {
		res.IsolatedFloors = []string{}
		res.FullyConnected = true
		res.Score = 1
		return res
	}

	res.IsolatedFloors = floorgraph.Isolated(b, g.Adjacency)
	res.FullyConnected = len(res.IsolatedFloors) == 0
	res.Score = scoring.ConnectivityScore(len(b.Floors), len(res.IsolatedFloors), g.TypeCount())
	return res
}

// ComputeAccessibility returns the accessibility assessment of b.
func (e *Engine) ComputeAccessibility(b *model.Building) *scoring.AccessibilityResult {
	return e.cached(kindAccessibility, b.ID, func() any {
		nb := b.Normalize()
		r := scoring.Accessibility(&nb)
		return &r
	}).(*scoring.AccessibilityResult)
}

// IsolatedFloors returns the floors of b unreachable from its root floor.
func (e *Engine) IsolatedFloors(b *model.Building) []model.Floor {
	conn := e.ComputeConnectivity(b)
	out := make([]model.Floor, 0, len(conn.IsolatedFloors))
	for _, id := range conn.IsolatedFloors {
		if f := b.FloorByID(id); f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// DistanceTable returns the all-pairs hop table of b.
func (e *Engine) DistanceTable(b *model.Building) map[string]map[string]int {
	return e.ComputeConnectivity(b).Distances
}

func requireFloors(b *model.Building, ids ...string) error {
	for _, id := range ids {
		if b.FloorByID(id) == nil {
			return fmt.Errorf("%w: %q in building %q", ErrFloorNotFound, id, b.ID)
		}
	}
	return nil
}

// ShortestPath returns the floors along a fewest-hop route from one floor to
// another, both inclusive. The result is empty if to is unreachable.
func (e *Engine) ShortestPath(b *model.Building, fromFloorID, toFloorID string) ([]model.Floor, error) {
	if err := requireFloors(b, fromFloorID, toFloorID); err != nil {
		return nil, err
	}
	conn := e.ComputeConnectivity(b)
	ids := graph.ReconstructPath(fromFloorID, toFloorID, conn.Adjacency)
	path := make([]model.Floor, 0, len(ids))
	for _, id := range ids {
		// The adjacency may predate b if the caller skipped InvalidateCache.
		f := b.FloorByID(id)
		if f == nil {
			return nil, fmt.Errorf("%w: %q in building %q (stale cached graph)", ErrFloorNotFound, id, b.ID)
		}
		path = append(path, *f)
	}
	return path, nil
}

// HopDistance returns the hop count between two floors. ok is false when to
// is unreachable from from.
func (e *Engine) HopDistance(b *model.Building, fromFloorID, toFloorID string) (hops int, ok bool, err error) {
	if err := requireFloors(b, fromFloorID, toFloorID); err != nil {
		return 0, false, err
	}
	hops, ok = e.ComputeConnectivity(b).Distances[fromFloorID][toFloorID]
	return hops, ok, nil
}

// IsReachable reports whether to can be reached from from.
func (e *Engine) IsReachable(b *model.Building, fromFloorID, toFloorID string) (bool, error) {
	_, ok, err := e.HopDistance(b, fromFloorID, toFloorID)
	return ok, err
}

// AnalyzeRoadNetwork summarizes the outdoor road network of s.
func (e *Engine) AnalyzeRoadNetwork(s *model.RoadSystem) *scoring.NetworkAnalysis {
	return e.cached(kindNetwork, s.ID, func() any {
		a := scoring.AnalyzeRoadNetwork(s, e.matcher)
		return &a
	}).(*scoring.NetworkAnalysis)
}

// DetectRoadIntersections proposes intersections between outdoor roads.
// Results are candidates only and are not cached.
func (e *Engine) DetectRoadIntersections(s *model.RoadSystem) []model.Intersection {
	return scoring.DetectIntersections(s, e.matcher)
}

// ValidateBuilding returns every structural issue found in b.
func (e *Engine) ValidateBuilding(b *model.Building) []validation.Issue {
	return e.ValidationReport(b).Issues()
}

// ValidationReport is ValidateBuilding grouped by severity.
func (e *Engine) ValidationReport(b *model.Building) *validation.Report {
	conn := e.ComputeConnectivity(b)
	nb := b.Normalize()
	return validation.ValidateBuilding(&nb, conn.IsolatedFloors)
}

// Building looks up a building of s by ID.
func (e *Engine) Building(s *model.RoadSystem, id string) (*model.Building, error) {
	b := s.BuildingByID(id)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBuildingNotFound, id)
	}
	return b, nil
}

// InvalidateCache drops every cached result for a building or road system ID.
func (e *Engine) InvalidateCache(id string) {
	removed := e.cache.invalidate(id)
	e.rec.Invalidated()
	e.log.Debug("cache_invalidate", "id", id, "removed", removed)
}

// InvalidateAll empties the cache.
func (e *Engine) InvalidateAll() {
	e.cache.clear()
	e.rec.Invalidated()
	e.log.Debug("cache_invalidate_all")
}

// ForceRecompute invalidates b and recomputes its connectivity and
// accessibility.
func (e *Engine) ForceRecompute(b *model.Building) (*ConnectivityResult, *scoring.AccessibilityResult) {
	e.InvalidateCache(b.ID)
	return e.ComputeConnectivity(b), e.ComputeAccessibility(b)
}

// CacheStats returns cache counters.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.stats()
}
