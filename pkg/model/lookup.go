package model

// Normalize returns a copy of the building with every landmark normalized
// and every floor's BuildingID filled in.
func (b Building) Normalize() Building {
	floors := make([]Floor, len(b.Floors))
	for i, f := range b.Floors {
		if f.BuildingID == "" {
			f.BuildingID = b.ID
		}
		lms := make([]Landmark, len(f.Landmarks))
		for j, l := range f.Landmarks {
			l = l.Normalize()
			if l.FloorID == "" {
				l.FloorID = f.ID
			}
			lms[j] = l
		}
		f.Landmarks = lms
		floors[i] = f
	}
	b.Floors = floors
	return b
}

// Normalize returns a copy of the system with every building and outdoor
// landmark normalized.
func (s RoadSystem) Normalize() RoadSystem {
	buildings := make([]Building, len(s.Buildings))
	for i, b := range s.Buildings {
		buildings[i] = b.Normalize()
	}
	s.Buildings = buildings
	lms := make([]Landmark, len(s.Landmarks))
	for i, l := range s.Landmarks {
		lms[i] = l.Normalize()
	}
	s.Landmarks = lms
	return s
}

// FloorByID returns the floor with the given ID, or nil if not found.
func (b *Building) FloorByID(id string) *Floor {
	for i := range b.Floors {
		if b.Floors[i].ID == id {
			return &b.Floors[i]
		}
	}
	return nil
}

// FloorAtLevel returns the first floor at the given level, or nil.
func (b *Building) FloorAtLevel(level int) *Floor {
	for i := range b.Floors {
		if b.Floors[i].Level == level {
			return &b.Floors[i]
		}
	}
	return nil
}

// FloorIDs returns floor identifiers in building order.
func (b *Building) FloorIDs() []string {
	ids := make([]string, len(b.Floors))
	for i, f := range b.Floors {
		ids[i] = f.ID
	}
	return ids
}

// Landmarks returns every landmark on every floor, in floor order.
func (b *Building) Landmarks() []Landmark {
	var out []Landmark
	for _, f := range b.Floors {
		out = append(out, f.Landmarks...)
	}
	return out
}

// HasLandmark reports whether any floor carries a landmark of kind k. If
// accessibleOnly is set, the landmark must also be flagged accessible.
func (b *Building) HasLandmark(k LandmarkKind, accessibleOnly bool) bool {
	for _, f := range b.Floors {
		for _, l := range f.Landmarks {
			if l.Kind == k && (!accessibleOnly || l.Accessible) {
				return true
			}
		}
	}
	return false
}

// BuildingByID returns the building with the given ID, or nil if not found.
func (s *RoadSystem) BuildingByID(id string) *Building {
	for i := range s.Buildings {
		if s.Buildings[i].ID == id {
			return &s.Buildings[i]
		}
	}
	return nil
}

// OutdoorRoads returns roads that belong to no floor.
func (s *RoadSystem) OutdoorRoads() []Road {
	out := make([]Road, 0, len(s.Roads))
	for _, r := range s.Roads {
		if r.IsOutdoor() {
			out = append(out, r)
		}
	}
	return out
}
