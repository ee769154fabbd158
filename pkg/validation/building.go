package validation

import (
	"fmt"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
)

// ValidateBuilding checks a normalized building snapshot. isolated lists the
// floor IDs the connectivity graph could not reach from the root floor.
func ValidateBuilding(b *model.Building, isolated []string) *Report {
	r := NewReport()

	if len(b.Floors) == 0 {
		r.AddWarning(Issue{
			Level:      LevelStructure,
			Message:    fmt.Sprintf("building %s has no floors", b.ID),
			BuildingID: b.ID,
			Path:       "floors",
			Expected:   "at least 1 floor",
		})
		validateBoundary(b, r)
		return r
	}

	validateFloorIDs(b, r)
	validateGroundFloor(b, r)
	validateLevels(b, r)
	validateEntrance(b, r)
	validateCirculation(b, r)
	validateFloorRoads(b, r)
	validateReferences(b, r)
	validateIsolated(b, isolated, r)
	validateBoundary(b, r)

	return r
}

func validateFloorIDs(b *model.Building, r *Report) {
	seen := make(map[string]int, len(b.Floors))
	for i, f := range b.Floors {
		if f.ID == "" {
			r.AddError(Issue{
				Level:      LevelStructure,
				Message:    fmt.Sprintf("floor at index %d has empty ID", i),
				BuildingID: b.ID,
				Path:       fmt.Sprintf("floors[%d].id", i),
				Expected:   "non-empty string",
			})
			continue
		}
		if prev, exists := seen[f.ID]; exists {
			r.AddError(Issue{
				Level:       LevelStructure,
				Message:     fmt.Sprintf("duplicate floor ID %q at indices %d and %d", f.ID, prev, i),
				BuildingID:  b.ID,
				FloorID:     f.ID,
				Path:        fmt.Sprintf("floors[%d].id", i),
				ActualValue: f.ID,
			})
		}
		seen[f.ID] = i
	}
}

func validateGroundFloor(b *model.Building, r *Report) {
	if b.FloorAtLevel(0) != nil {
		return
	}
	r.AddError(Issue{
		Level:      LevelStructure,
		Message:    fmt.Sprintf("building %s has no ground floor (level 0)", b.ID),
		BuildingID: b.ID,
		Path:       "floors[].level",
		Expected:   "one floor at level 0",
		Suggestions: []string{
			"Add a ground floor or renumber levels so that street level is 0",
		},
	})
}

func validateLevels(b *model.Building, r *Report) {
	byLevel := map[int][]string{}
	var order []int
	for _, f := range b.Floors {
		if _, ok := byLevel[f.Level]; !ok {
			order = append(order, f.Level)
		}
		byLevel[f.Level] = append(byLevel[f.Level], f.ID)
	}
	for _, level := range order {
		ids := byLevel[level]
		if len(ids) < 2 {
			continue
		}
		r.AddWarning(Issue{
			Level:       LevelStructure,
			Message:     fmt.Sprintf("floors %v share level %d", ids, level),
			BuildingID:  b.ID,
			Path:        "floors[].level",
			ActualValue: level,
			Expected:    "unique level per floor",
			Suggestions: []string{"Escalator links resolve to the first floor at a level"},
		})
	}
}

func validateEntrance(b *model.Building, r *Report) {
	if b.HasLandmark(model.KindEntrance, false) {
		return
	}
	r.AddWarning(Issue{
		Level:      LevelStructure,
		Message:    fmt.Sprintf("building %s has no entrance landmark", b.ID),
		BuildingID: b.ID,
		Path:       "floors[].landmarks",
		Expected:   "at least one landmark of type entrance",
	})
}

func validateCirculation(b *model.Building, r *Report) {
	if len(b.Floors) <= 1 {
		return
	}
	for _, l := range b.Landmarks() {
		if l.Kind.IsVerticalCirculation() {
			return
		}
	}
	r.AddError(Issue{
		Level:       LevelConnectivity,
		Message:     fmt.Sprintf("building %s has %d floors but no elevator, stairs or escalator", b.ID, len(b.Floors)),
		BuildingID:  b.ID,
		Path:        "floors[].landmarks",
		ActualValue: len(b.Floors),
		Expected:    "vertical circulation in multi-floor buildings",
		Suggestions: []string{"Map elevators and stairwells on every floor they serve"},
	})
}

func validateFloorRoads(b *model.Building, r *Report) {
	for i, f := range b.Floors {
		if len(f.Landmarks) > 0 && len(f.Roads) == 0 {
			r.AddWarning(Issue{
				Level:       LevelStructure,
				Message:     fmt.Sprintf("floor %s has %d landmarks but no roads", f.ID, len(f.Landmarks)),
				BuildingID:  b.ID,
				FloorID:     f.ID,
				Path:        fmt.Sprintf("floors[%d].roads", i),
				ActualValue: len(f.Landmarks),
				Expected:    "at least one road on floors with landmarks",
			})
		}
	}
}

func validateReferences(b *model.Building, r *Report) {
	for i, f := range b.Floors {
		for _, id := range f.ConnectedFloors {
			if b.FloorByID(id) == nil {
				r.AddWarning(Issue{
					Level:       LevelConnectivity,
					Message:     fmt.Sprintf("floor %s connects to unknown floor %q", f.ID, id),
					BuildingID:  b.ID,
					FloorID:     f.ID,
					Path:        fmt.Sprintf("floors[%d].connected_floors", i),
					ActualValue: id,
					Expected:    "existing floor ID",
				})
			}
		}
		for j, l := range f.Landmarks {
			for _, id := range l.ConnectsFloors {
				if b.FloorByID(id) == nil {
					r.AddWarning(Issue{
						Level:       LevelConnectivity,
						Message:     fmt.Sprintf("landmark %s connects to unknown floor %q", l.ID, id),
						BuildingID:  b.ID,
						FloorID:     f.ID,
						Path:        fmt.Sprintf("floors[%d].landmarks[%d].connects_floors", i, j),
						ActualValue: id,
						Expected:    "existing floor ID",
					})
				}
			}
		}
	}
}

func validateIsolated(b *model.Building, isolated []string, r *Report) {
	for _, id := range isolated {
		r.AddWarning(Issue{
			Level:      LevelConnectivity,
			Message:    fmt.Sprintf("floor %s is unreachable from the root floor", id),
			BuildingID: b.ID,
			FloorID:    id,
			Suggestions: []string{
				"Check that elevator and stairs landmarks line up across floors",
				"Add an explicit connected_floors entry",
			},
		})
	}
}

func validateBoundary(b *model.Building, r *Report) {
	n := len(b.Boundary)
	if n == 0 {
		return
	}
	if n < 3 {
		r.AddWarning(Issue{
			Level:       LevelGeometry,
			Message:     fmt.Sprintf("building %s boundary has only %d points", b.ID, n),
			BuildingID:  b.ID,
			Path:        "boundary",
			ActualValue: n,
			Expected:    ">= 3 points",
		})
		return
	}
	poly := geo.NewPolygon(b.Boundary...)
	if !b.Center.IsZero() && !poly.Contains(b.Center) {
		r.AddWarning(Issue{
			Level:       LevelGeometry,
			Message:     fmt.Sprintf("building %s center %s lies outside its boundary", b.ID, b.Center),
			BuildingID:  b.ID,
			Path:        "center",
			ActualValue: b.Center,
		})
	}
	r.AddInfo(Issue{
		Level:       LevelGeometry,
		Message:     fmt.Sprintf("building %s footprint is about %.0f m²", b.ID, poly.Area()),
		BuildingID:  b.ID,
		Path:        "boundary",
		ActualValue: poly.Area(),
	})
}
