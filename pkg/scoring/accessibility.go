// Package scoring rates building accessibility, floor connectivity and the
// outdoor road network.
package scoring

import (
	"math"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
)

// Rubric weights. A building with every feature earns maxPoints and scores
// exactly 1; the stairs-only credit is only reachable without an elevator.
const (
	pointsElevator   = 1.0
	pointsEntrance   = 1.0
	pointsRamp       = 0.5
	pointsRestroom   = 1.0
	pointsParking    = 0.5
	pointsStairsOnly = 0.3
	// maxPoints is the divisor: the rubric total (4.0), not the five items.
	maxPoints = pointsElevator + pointsEntrance + pointsRamp + pointsRestroom + pointsParking
)

// Rating is the qualitative band of a score.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
	RatingVeryPoor  Rating = "Very Poor"
)

// Rate maps a score to its band. Lower bounds are inclusive.
func Rate(score float64) Rating {
	switch {
	case score >= 0.9:
		return RatingExcellent
	case score >= 0.7:
		return RatingGood
	case score >= 0.5:
		return RatingFair
	case score >= 0.3:
		return RatingPoor
	default:
		return RatingVeryPoor
	}
}

// AccessibilityResult is the accessibility assessment of one building.
type AccessibilityResult struct {
	BuildingID            string   `json:"building_id"`
	HasElevator           bool     `json:"has_elevator"`
	SingleFloor           bool     `json:"single_floor"`
	HasAccessibleEntrance bool     `json:"has_accessible_entrance"`
	HasRamp               bool     `json:"has_ramp"`
	HasAccessibleRestroom bool     `json:"has_accessible_restroom"`
	HasAccessibleParking  bool     `json:"has_accessible_parking"`
	StairsOnly            bool     `json:"stairs_only"`
	Score                 float64  `json:"score"`
	Rating                Rating   `json:"rating"`
	Features              []string `json:"features"`
}

// Accessibility scores a building against the fixed rubric. Landmarks must
// already be normalized so that Accessible reflects the captured attributes.
func Accessibility(b *model.Building) AccessibilityResult {
	r := AccessibilityResult{
		BuildingID:            b.ID,
		HasElevator:           b.HasLandmark(model.KindElevator, false),
		SingleFloor:           len(b.Floors) <= 1,
		HasAccessibleEntrance: b.HasLandmark(model.KindEntrance, true),
		HasRamp:               b.HasLandmark(model.KindRamp, false),
		HasAccessibleRestroom: b.HasLandmark(model.KindRestroom, true),
		HasAccessibleParking:  b.HasLandmark(model.KindParking, true),
		Features:              []string{},
	}
	r.StairsOnly = !r.SingleFloor && !r.HasElevator &&
		b.HasLandmark(model.KindStairs, false) &&
		!b.HasLandmark(model.KindEscalator, false)

	points := 0.0
	switch {
	case r.HasElevator:
		points += pointsElevator
		r.Features = append(r.Features, "Elevator access")
	case r.SingleFloor:
		points += pointsElevator
		r.Features = append(r.Features, "Single-level building")
	}
	if r.HasAccessibleEntrance {
		points += pointsEntrance
		r.Features = append(r.Features, "Accessible entrance")
	}
	if r.HasRamp {
		points += pointsRamp
		r.Features = append(r.Features, "Ramp access")
	}
	if r.HasAccessibleRestroom {
		points += pointsRestroom
		r.Features = append(r.Features, "Accessible restroom")
	}
	if r.HasAccessibleParking {
		points += pointsParking
		r.Features = append(r.Features, "Accessible parking")
	}
	if r.StairsOnly {
		points += pointsStairsOnly
		r.Features = append(r.Features, "Stairs only")
	}

	r.Score = clamp01(points / maxPoints)
	r.Rating = Rate(r.Score)
	return r
}

// ConnectivityScore rates how well a building's floors are joined: the
// fraction of floors reachable from the root plus 0.1 for each circulation
// kind beyond the first (at most +0.2). Buildings with at most one floor
// score 1.
func ConnectivityScore(totalFloors, isolatedFloors, circulationKinds int) float64 {
	if totalFloors <= 1 {
		return 1
	}
	connected := totalFloors - isolatedFloors
	score := float64(connected) / float64(totalFloors)
	if circulationKinds > 1 {
		score += math.Min(0.2, 0.1*float64(circulationKinds-1))
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
