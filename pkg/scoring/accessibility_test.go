package scoring

import (
	"math"
	"testing"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/stretchr/testify/assert"
)

func floorWith(id string, level int, lms ...model.Landmark) model.Floor {
	return model.Floor{ID: id, Level: level, Landmarks: lms}
}

func mark(kind model.LandmarkKind, accessible bool) model.Landmark {
	return model.Landmark{ID: string(kind), Kind: kind, Accessible: accessible}
}

func TestRateBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Rating
	}{
		{1.0, RatingExcellent},
		{0.9, RatingExcellent},
		{0.89, RatingGood},
		{0.7, RatingGood},
		{0.5, RatingFair},
		{0.3, RatingPoor},
		{0.29, RatingVeryPoor},
		{0, RatingVeryPoor},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Rate(tc.score), "score %v", tc.score)
	}
}

func TestAccessibilityFullMarks(t *testing.T) {
	b := &model.Building{ID: "lib", Floors: []model.Floor{
		floorWith("g", 0,
			mark(model.KindElevator, false),
			mark(model.KindEntrance, true),
			mark(model.KindRamp, false),
			mark(model.KindRestroom, true),
			mark(model.KindParking, true),
			mark(model.KindStairs, false),
		),
		floorWith("f1", 1, mark(model.KindElevator, false)),
	}}
	r := Accessibility(b)
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, RatingExcellent, r.Rating)
	assert.False(t, r.StairsOnly)
	assert.Len(t, r.Features, 5)
}

func TestAccessibilityStairsOnlyBonus(t *testing.T) {
	b := &model.Building{ID: "hall", Floors: []model.Floor{
		floorWith("g", 0, mark(model.KindStairs, false), mark(model.KindEntrance, true)),
		floorWith("f1", 1, mark(model.KindStairs, false)),
	}}
	r := Accessibility(b)
	assert.True(t, r.StairsOnly)
	assert.False(t, r.HasElevator)
	assert.InDelta(t, 1.3/4, r.Score, 1e-9)
	assert.Equal(t, RatingPoor, r.Rating)
	assert.Contains(t, r.Features, "Stairs only")
}

func TestAccessibilitySingleFloorCountsAsElevator(t *testing.T) {
	b := &model.Building{ID: "kiosk", Floors: []model.Floor{
		floorWith("g", 0, mark(model.KindEntrance, true), mark(model.KindRestroom, true)),
	}}
	r := Accessibility(b)
	assert.True(t, r.SingleFloor)
	assert.InDelta(t, 3.0/4, r.Score, 1e-9)
	assert.Equal(t, RatingGood, r.Rating)
	assert.Contains(t, r.Features, "Single-level building")
}

func TestAccessibilityInaccessibleFeaturesIgnored(t *testing.T) {
	b := &model.Building{ID: "old", Floors: []model.Floor{
		floorWith("g", 0, mark(model.KindEntrance, false), mark(model.KindRestroom, false), mark(model.KindParking, false)),
		floorWith("f1", 1),
	}}
	r := Accessibility(b)
	assert.Zero(t, r.Score)
	assert.Empty(t, r.Features)
	assert.NotNil(t, r.Features)
}

func TestAccessibilityScoreAlwaysInRange(t *testing.T) {
	kinds := []model.LandmarkKind{
		model.KindElevator, model.KindStairs, model.KindEscalator, model.KindEntrance,
		model.KindRamp, model.KindRestroom, model.KindParking,
	}
	// Every subset of kinds, accessible, on a two-floor building.
	for mask := 0; mask < 1<<len(kinds); mask++ {
		var lms []model.Landmark
		for i, k := range kinds {
			if mask&(1<<i) != 0 {
				lms = append(lms, mark(k, true))
			}
		}
		b := &model.Building{Floors: []model.Floor{floorWith("g", 0, lms...), floorWith("f1", 1)}}
		s := Accessibility(b).Score
		if s < 0 || s > 1 || math.IsNaN(s) {
			t.Fatalf("mask %b: score %v out of range", mask, s)
		}
	}
}

func TestConnectivityScore(t *testing.T) {
	assert.Equal(t, 1.0, ConnectivityScore(0, 0, 0))
	assert.Equal(t, 1.0, ConnectivityScore(1, 0, 0))
	assert.InDelta(t, 2.0/3, ConnectivityScore(3, 1, 1), 1e-9)
	assert.InDelta(t, 2.0/3+0.1, ConnectivityScore(3, 1, 2), 1e-9)
	assert.InDelta(t, 0.5+0.2, ConnectivityScore(4, 2, 3), 1e-9)
	assert.InDelta(t, 2.0/3, ConnectivityScore(3, 1, 0), 1e-9, "no negative bonus")
	assert.Equal(t, 1.0, ConnectivityScore(4, 0, 3), "clamped")
}
