// Package floorgraph builds the floor-to-floor connectivity graph of a
// building from explicit links, matched vertical circulation and escalators.
package floorgraph

import (
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/graph"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/proximity"
)

// CirculationPoint is one elevator, stairs or escalator landmark.
type CirculationPoint struct {
	LandmarkID string             `json:"landmark_id"`
	Kind       model.LandmarkKind `json:"kind"`
	FloorID    string             `json:"floor_id"`
	Level      int                `json:"level"`
	Location   geo.LatLng         `json:"location"`
	Direction  model.Direction    `json:"direction,omitempty"`
}

// Graph is the built floor graph of one building.
type Graph struct {
	Adjacency   graph.Adjacency    `json:"adjacency"`
	Circulation []CirculationPoint `json:"circulation"`
	// Degenerate is set for buildings with at most one floor, which skip
	// construction entirely.
	Degenerate bool `json:"degenerate"`
}

// Build constructs the floor graph. levelStep is the level distance an
// escalator spans (normally 1).
//
// Elevators and stairs are matched by proximity across every pair of floors
// and produce edges in both directions. Escalators are not proximity matched:
// an "up" escalator on level L links only to the floor at L+levelStep, a
// "down" one to L-levelStep, in that direction only. Escalators without a
// valid direction add nothing.
func Build(b *model.Building, m *proximity.Matcher, levelStep int) *Graph {
	g := &Graph{
		Adjacency:   graph.Adjacency{},
		Circulation: []CirculationPoint{},
	}
	if len(b.Floors) <= 1 {
		g.Degenerate = true
		return g
	}
	if levelStep <= 0 {
		levelStep = 1
	}

	for _, f := range b.Floors {
		g.Adjacency[f.ID] = []string{}
	}

	addExplicitLinks(b, g.Adjacency)
	addSharedCirculation(b, m, g.Adjacency)
	addEscalators(b, levelStep, g.Adjacency)

	for _, f := range b.Floors {
		for _, l := range f.Landmarks {
			if !l.Kind.IsVerticalCirculation() {
				continue
			}
			g.Circulation = append(g.Circulation, CirculationPoint{
				LandmarkID: l.ID,
				Kind:       l.Kind,
				FloorID:    f.ID,
				Level:      f.Level,
				Location:   l.Location,
				Direction:  l.Direction,
			})
		}
	}
	return g
}

// addExplicitLinks seeds each floor with its declared connections. Links to
// unknown floors are dropped.
func addExplicitLinks(b *model.Building, adj graph.Adjacency) {
	for _, f := range b.Floors {
		for _, id := range f.ConnectedFloors {
			if _, known := adj[id]; !known {
				continue
			}
			adj.AddEdge(f.ID, id)
		}
	}
}

func addSharedCirculation(b *model.Building, m *proximity.Matcher, adj graph.Adjacency) {
	for i, f := range b.Floors {
		for _, l := range f.Landmarks {
			if l.Kind != model.KindElevator && l.Kind != model.KindStairs {
				continue
			}
			for j, other := range b.Floors {
				if i == j || other.ID == f.ID {
					continue
				}
				for _, ol := range other.Landmarks {
					if m.SameCirculation(l, ol) {
						adj.AddUndirected(f.ID, other.ID)
						break
					}
				}
			}
		}
	}
}

func addEscalators(b *model.Building, levelStep int, adj graph.Adjacency) {
	for _, f := range b.Floors {
		for _, l := range f.Landmarks {
			if l.Kind != model.KindEscalator {
				continue
			}
			step := l.Direction.Step()
			if step == 0 {
				continue
			}
			target := b.FloorAtLevel(f.Level + step*levelStep)
			if target == nil || target.ID == f.ID {
				continue
			}
			adj.AddEdge(f.ID, target.ID)
		}
	}
}

// TypeCount returns how many distinct circulation kinds are present.
func (g *Graph) TypeCount() int {
	seen := map[model.LandmarkKind]bool{}
	for _, c := range g.Circulation {
		seen[c.Kind] = true
	}
	return len(seen)
}

// Root returns the traversal root: the first floor at level 0 if any, else
// the first floor in building order. Nil for a building without floors.
func Root(b *model.Building) *model.Floor {
	if f := b.FloorAtLevel(0); f != nil {
		return f
	}
	if len(b.Floors) == 0 {
		return nil
	}
	return &b.Floors[0]
}

// Isolated returns the IDs of floors, in building order, that cannot be
// reached from Root over adj.
func Isolated(b *model.Building, adj graph.Adjacency) []string {
	root := Root(b)
	if root == nil {
		return []string{}
	}
	out := graph.Unvisited(root.ID, b.FloorIDs(), adj)
	if out == nil {
		out = []string{}
	}
	return out
}
