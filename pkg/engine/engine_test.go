package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/proximity"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/scoring"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = geo.Pt(33.9737, -117.3281)

func landmark(id string, kind model.LandmarkKind, at geo.LatLng) model.Landmark {
	return model.Landmark{ID: id, Kind: kind, Location: at, Accessible: true}
}

func floor(id string, level int, lms ...model.Landmark) model.Floor {
	return model.Floor{ID: id, Level: level, Landmarks: lms}
}

// gapBuilding has an elevator on levels 0 and 2 only, so level 1 is cut off.
func gapBuilding() *model.Building {
	return &model.Building{ID: "bourns", Floors: []model.Floor{
		floor("g", 0, landmark("e0", model.KindElevator, origin)),
		floor("f1", 1),
		floor("f2", 2, landmark("e2", model.KindElevator, origin.Offset(0, 9.5))),
	}}
}

// tower has a shared elevator core on four floors.
func tower() *model.Building {
	b := &model.Building{ID: "tower"}
	for i, id := range []string{"b1", "g", "f1", "f2"} {
		b.Floors = append(b.Floors, floor(id, i-1, landmark("e-"+id, model.KindElevator, origin)))
	}
	return b
}

func TestConnectivitySingleFloor(t *testing.T) {
	e := New()
	b := &model.Building{ID: "kiosk", Floors: []model.Floor{floor("g", 0)}}
	res := e.ComputeConnectivity(b)
	assert.True(t, res.FullyConnected)
	assert.Empty(t, res.IsolatedFloors)
	assert.NotNil(t, res.IsolatedFloors)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "g", res.RootFloorID)
	assert.Equal(t, 0, res.Distances["g"]["g"])
}

func TestConnectivityNoFloors(t *testing.T) {
	res := New().ComputeConnectivity(&model.Building{ID: "lot"})
	assert.True(t, res.FullyConnected)
	assert.Equal(t, 1.0, res.Score)
	assert.Empty(t, res.RootFloorID)
}

func TestConnectivityIsolatedMiddleFloor(t *testing.T) {
	e := New()
	res := e.ComputeConnectivity(gapBuilding())
	assert.Equal(t, []string{"f1"}, res.IsolatedFloors)
	assert.False(t, res.FullyConnected)
	assert.InDelta(t, 2.0/3, res.Score, 1e-9)
	assert.True(t, res.Adjacency.HasEdge("g", "f2"))
	assert.True(t, res.Adjacency.HasEdge("f2", "g"))
	assert.Len(t, res.Circulation, 2)

	isolated := e.IsolatedFloors(gapBuilding())
	require.Len(t, isolated, 1)
	assert.Equal(t, 1, isolated[0].Level)
}

func TestConnectivityCirculationBonus(t *testing.T) {
	b := tower()
	b.Floors[1].Landmarks = append(b.Floors[1].Landmarks, landmark("s0", model.KindStairs, origin.Offset(30, 0)))
	b.Floors[2].Landmarks = append(b.Floors[2].Landmarks, landmark("s1", model.KindStairs, origin.Offset(30, 0)))
	res := New().ComputeConnectivity(b)
	assert.True(t, res.FullyConnected)
	assert.Equal(t, 1.0, res.Score, "bonus is clamped")
}

func TestConnectivityToleranceBoundary(t *testing.T) {
	build := func(eastM float64) *model.Building {
		return &model.Building{ID: "hall", Floors: []model.Floor{
			floor("g", 0, landmark("a", model.KindElevator, origin)),
			floor("f1", 1, landmark("b", model.KindElevator, origin.Offset(0, eastM))),
		}}
	}
	e := New()
	assert.True(t, e.ComputeConnectivity(build(9.5)).FullyConnected)

	far := build(10.5)
	far.ID = "hall-annex"
	res := e.ComputeConnectivity(far)
	assert.False(t, res.Adjacency.HasEdge("g", "f1"))
	assert.Equal(t, []string{"f1"}, res.IsolatedFloors)
}

func TestConnectivityCustomTolerance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tolerances.VerticalCirculationM = 15
	e := New(WithConfig(cfg))
	b := &model.Building{ID: "hall", Floors: []model.Floor{
		floor("g", 0, landmark("a", model.KindElevator, origin)),
		floor("f1", 1, landmark("b", model.KindElevator, origin.Offset(0, 12))),
	}}
	assert.True(t, e.ComputeConnectivity(b).FullyConnected)
	assert.Equal(t, proximity.DefaultRoadMergeM, e.Config().Tolerances.RoadMergeM)
}

func TestHopDistanceSelfIsZero(t *testing.T) {
	e := New()
	for _, b := range []*model.Building{tower(), gapBuilding()} {
		for _, f := range b.Floors {
			hops, ok, err := e.HopDistance(b, f.ID, f.ID)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Zero(t, hops, "floor %s", f.ID)
		}
	}
}

func TestHopDistance(t *testing.T) {
	e := New()
	hops, ok, err := e.HopDistance(tower(), "b1", "f2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, hops, "a shared core links every pair")

	_, ok, err = e.HopDistance(gapBuilding(), "g", "f1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShortestPathProperties(t *testing.T) {
	b := &model.Building{ID: "stack", Floors: []model.Floor{
		floor("g", 0, landmark("s0", model.KindStairs, origin)),
		floor("f1", 1, landmark("s1", model.KindStairs, origin), landmark("x1", model.KindElevator, origin.Offset(40, 0))),
		floor("f2", 2, landmark("x2", model.KindElevator, origin.Offset(40, 0))),
	}}
	e := New()
	path, err := e.ShortestPath(b, "g", "f2")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, "g", path[0].ID)
	assert.Equal(t, "f2", path[len(path)-1].ID)

	adj := e.ComputeConnectivity(b).Adjacency
	for i := 1; i < len(path); i++ {
		assert.True(t, adj.HasEdge(path[i-1].ID, path[i].ID), "%s -> %s", path[i-1].ID, path[i].ID)
	}

	self, err := e.ShortestPath(b, "f1", "f1")
	require.NoError(t, err)
	require.Len(t, self, 1)
	assert.Equal(t, "f1", self[0].ID)
}

func TestShortestPathUnreachableIsEmpty(t *testing.T) {
	path, err := New().ShortestPath(gapBuilding(), "g", "f1")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestUnknownFloor(t *testing.T) {
	e := New()
	b := tower()

	_, err := e.ShortestPath(b, "g", "roof")
	assert.True(t, errors.Is(err, ErrFloorNotFound))
	assert.Contains(t, err.Error(), "roof")

	_, _, err = e.HopDistance(b, "nope", "g")
	assert.ErrorIs(t, err, ErrFloorNotFound)

	ok, err := e.IsReachable(b, "g", "ghost")
	assert.ErrorIs(t, err, ErrFloorNotFound)
	assert.False(t, ok)
}

func TestShortestPathStaleGraphReportsMissingFloor(t *testing.T) {
	e := New()
	chain := &model.Building{ID: "hall", Floors: []model.Floor{
		floor("g", 0, landmark("s0", model.KindStairs, origin)),
		floor("f1", 1, landmark("s1", model.KindStairs, origin), landmark("x1", model.KindElevator, origin.Offset(40, 0))),
		floor("f2", 2, landmark("x2", model.KindElevator, origin.Offset(40, 0))),
	}}
	e.ComputeConnectivity(chain)

	// Same ID, f1 removed, cache not invalidated.
	shrunk := &model.Building{ID: "hall", Floors: []model.Floor{chain.Floors[0], chain.Floors[2]}}
	var (
		path []model.Floor
		err  error
	)
	require.NotPanics(t, func() { path, err = e.ShortestPath(shrunk, "g", "f2") })
	assert.ErrorIs(t, err, ErrFloorNotFound)
	assert.Contains(t, err.Error(), "f1")
	assert.Nil(t, path)

	e.InvalidateCache("hall")
	path, err = e.ShortestPath(shrunk, "g", "f2")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestIsReachable(t *testing.T) {
	e := New()
	b := gapBuilding()
	ok, err := e.IsReachable(b, "g", "f2")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = e.IsReachable(b, "f2", "f1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEscalatorIsOneWay(t *testing.T) {
	up := landmark("esc", model.KindEscalator, origin)
	up.Direction = model.DirectionUp
	b := &model.Building{ID: "mall", Floors: []model.Floor{
		floor("g", 0, up),
		floor("f1", 1),
	}}
	e := New()
	ok, err := e.IsReachable(b, "g", "f1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = e.IsReachable(b, "f1", "g")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEscalatorDirectionFromProperties(t *testing.T) {
	esc := landmark("esc", model.KindEscalator, origin)
	esc.Properties = map[string]any{"direction": "down"}
	b := &model.Building{ID: "mall", Floors: []model.Floor{
		floor("g", 0),
		floor("f1", 1, esc),
	}}
	ok, err := New().IsReachable(b, "f1", "g")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDistanceTable(t *testing.T) {
	table := New().DistanceTable(gapBuilding())
	assert.Equal(t, 1, table["g"]["f2"])
	assert.Equal(t, 0, table["f1"]["f1"])
	_, ok := table["g"]["f1"]
	assert.False(t, ok)
}

func TestAccessibilityFullFeatures(t *testing.T) {
	b := &model.Building{ID: "lib", Floors: []model.Floor{
		floor("g", 0,
			landmark("e0", model.KindElevator, origin),
			landmark("door", model.KindEntrance, origin.Offset(20, 0)),
			landmark("ramp", model.KindRamp, origin.Offset(20, 2)),
			landmark("wc", model.KindRestroom, origin.Offset(5, 5)),
			landmark("lot", model.KindParking, origin.Offset(60, 0)),
			landmark("s0", model.KindStairs, origin.Offset(-10, 0)),
		),
		floor("f1", 1, landmark("e1", model.KindElevator, origin)),
	}}
	res := New().ComputeAccessibility(b)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, scoring.RatingExcellent, res.Rating)
}

func TestAccessibilityReadsProperties(t *testing.T) {
	door := model.Landmark{ID: "door", Kind: "Entrance", Location: origin, Properties: map[string]any{"accessible": true}}
	b := &model.Building{ID: "kiosk", Floors: []model.Floor{floor("g", 0, door)}}
	res := New().ComputeAccessibility(b)
	assert.True(t, res.HasAccessibleEntrance)
	assert.True(t, res.SingleFloor)
	assert.Equal(t, model.LandmarkKind("Entrance"), b.Floors[0].Landmarks[0].Kind, "input is not mutated")
}

func roadPair(gapM float64) *model.RoadSystem {
	a1 := origin.Offset(0, 80)
	b0 := a1.Offset(0, gapM)
	return &model.RoadSystem{
		ID: "ucr",
		Roads: []model.Road{
			{ID: "a", Name: "University Ave", Points: []geo.LatLng{origin, a1}},
			{ID: "b", Name: "Canyon Crest Dr", Points: []geo.LatLng{b0, b0.Offset(0, 80)}},
		},
	}
}

func TestAnalyzeRoadNetworkCandidates(t *testing.T) {
	e := New()
	near := e.AnalyzeRoadNetwork(roadPair(15))
	require.Len(t, near.Candidates, 1)
	assert.InDelta(t, 15, near.Candidates[0].DistanceM, 0.1)

	far := roadPair(25)
	far.ID = "ucr-far"
	assert.Empty(t, e.AnalyzeRoadNetwork(far).Candidates)
}

func TestDetectRoadIntersections(t *testing.T) {
	s := &model.RoadSystem{ID: "ucr", Roads: []model.Road{
		{ID: "ns", Name: "Aberdeen", Points: []geo.LatLng{origin.Offset(-300, 0), origin.Offset(300, 0)}},
		{ID: "ew", Name: "Linden", Points: []geo.LatLng{origin.Offset(0, -300), origin.Offset(0, 300)}},
	}}
	found := New().DetectRoadIntersections(s)
	require.Len(t, found, 1)
	assert.Equal(t, scoring.DetectedIntersectionType, found[0].Type)
	assert.ElementsMatch(t, []string{"ns", "ew"}, found[0].ConnectedRoads)
	assert.Less(t, geo.Distance(origin, found[0].Point), 1.0)
}

func TestValidateBuildingReportsIsolatedFloor(t *testing.T) {
	issues := New().ValidateBuilding(gapBuilding())
	var isolated bool
	for _, is := range issues {
		if is.FloorID == "f1" && is.Level == validation.LevelConnectivity {
			isolated = true
		}
	}
	assert.True(t, isolated, "issues: %+v", issues)
}

func TestValidationReport(t *testing.T) {
	b := tower()
	b.Floors[1].Landmarks = append(b.Floors[1].Landmarks, landmark("door", model.KindEntrance, origin.Offset(20, 0)))
	for i := range b.Floors {
		b.Floors[i].Roads = []model.Road{{ID: "hall-" + b.Floors[i].ID, FloorID: b.Floors[i].ID}}
	}
	r := New().ValidationReport(b)
	assert.True(t, r.Valid, "errors: %+v", r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestBuildingLookup(t *testing.T) {
	s := &model.RoadSystem{ID: "ucr", Buildings: []model.Building{*tower()}}
	e := New()
	b, err := e.Building(s, "tower")
	require.NoError(t, err)
	assert.Equal(t, "tower", b.ID)

	_, err = e.Building(s, "hub")
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestCacheHitAndInvalidate(t *testing.T) {
	e := New()
	b := gapBuilding()
	first := e.ComputeConnectivity(b)
	assert.Same(t, first, e.ComputeConnectivity(b))
	stats := e.CacheStats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)

	// Bridge floor 1 in; without invalidation the stale result is served.
	b.Floors[1].Landmarks = []model.Landmark{landmark("e1", model.KindElevator, origin)}
	assert.False(t, e.ComputeConnectivity(b).FullyConnected)

	e.InvalidateCache(b.ID)
	assert.True(t, e.ComputeConnectivity(b).FullyConnected)
}

func TestInvalidateDropsEveryKind(t *testing.T) {
	e := New()
	b := tower()
	e.ComputeConnectivity(b)
	e.ComputeAccessibility(b)
	require.Equal(t, 2, e.CacheStats().Entries)
	e.InvalidateCache("tower")
	assert.Zero(t, e.CacheStats().Entries)

	e.InvalidateCache("never-cached")
	assert.Zero(t, e.CacheStats().Entries)
}

func TestInvalidateAll(t *testing.T) {
	e := New()
	e.ComputeConnectivity(tower())
	e.AnalyzeRoadNetwork(roadPair(15))
	require.Equal(t, 2, e.CacheStats().Entries)
	e.InvalidateAll()
	assert.Zero(t, e.CacheStats().Entries)
}

func TestForceRecompute(t *testing.T) {
	e := New()
	b := gapBuilding()
	before := e.ComputeConnectivity(b)
	b.Floors[1].Landmarks = []model.Landmark{landmark("e1", model.KindElevator, origin)}
	conn, acc := e.ForceRecompute(b)
	assert.NotSame(t, before, conn)
	assert.True(t, conn.FullyConnected)
	assert.True(t, acc.HasElevator)
}

type countingRecorder struct {
	mu          sync.Mutex
	hits        map[string]int
	misses      map[string]int
	invalidated int
	computed    int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{hits: map[string]int{}, misses: map[string]int{}}
}

func (r *countingRecorder) CacheHit(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits[kind]++
}

func (r *countingRecorder) CacheMiss(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses[kind]++
}

func (r *countingRecorder) Invalidated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated++
}

func (r *countingRecorder) Computed(string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.computed++
}

func TestRecorderEvents(t *testing.T) {
	rec := newCountingRecorder()
	e := New(WithRecorder(rec))
	b := tower()
	e.ComputeAccessibility(b)
	e.ComputeAccessibility(b)
	e.InvalidateCache(b.ID)

	assert.Equal(t, 1, rec.misses["accessibility"])
	assert.Equal(t, 1, rec.hits["accessibility"])
	assert.Equal(t, 1, rec.computed)
	assert.Equal(t, 1, rec.invalidated)
}

func TestConcurrentQueriesShareOneResult(t *testing.T) {
	rec := newCountingRecorder()
	e := New(WithRecorder(rec))
	b := tower()

	const workers = 16
	results := make([]*ConnectivityResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.ComputeConnectivity(b)
			_, _ = e.ShortestPath(b, "b1", "f2")
		}(i)
	}
	wg.Wait()

	final := e.ComputeConnectivity(b)
	for _, r := range results {
		assert.True(t, r.FullyConnected)
		assert.Equal(t, final.Adjacency, r.Adjacency)
	}
	stats := e.CacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, uint64(2*workers+1), stats.Hits+stats.Misses)
}
