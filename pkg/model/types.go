// Package model holds the immutable snapshot of the navigation data model.
// The analysis engine reads these values and never mutates them.
package model

import "github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"

// RoadSystem is the aggregate root: buildings plus the outdoor network.
type RoadSystem struct {
	ID            string         `yaml:"id" json:"id"`
	Name          string         `yaml:"name" json:"name"`
	Center        geo.LatLng     `yaml:"center" json:"center"`
	Buildings     []Building     `yaml:"buildings" json:"buildings"`
	Roads         []Road         `yaml:"roads" json:"roads"`
	Landmarks     []Landmark     `yaml:"landmarks" json:"landmarks"`
	Intersections []Intersection `yaml:"intersections" json:"intersections"`
}

// Building is a structure with ordered floors.
type Building struct {
	ID       string       `yaml:"id" json:"id"`
	Name     string       `yaml:"name" json:"name"`
	Center   geo.LatLng   `yaml:"center" json:"center"`
	Boundary []geo.LatLng `yaml:"boundary" json:"boundary,omitempty"`
	Floors   []Floor      `yaml:"floors" json:"floors"`
}

// Floor is one level of a building. Level 0 is ground, negative is below grade.
type Floor struct {
	ID              string      `yaml:"id" json:"id"`
	Name            string      `yaml:"name" json:"name"`
	Level           int         `yaml:"level" json:"level"`
	BuildingID      string      `yaml:"building_id" json:"building_id"`
	Center          *geo.LatLng `yaml:"center,omitempty" json:"center,omitempty"`
	Roads           []Road      `yaml:"roads" json:"roads"`
	Landmarks       []Landmark  `yaml:"landmarks" json:"landmarks"`
	ConnectedFloors []string    `yaml:"connected_floors,omitempty" json:"connected_floors,omitempty"`
}

// Road is a polyline path. An empty FloorID means the road is outdoor.
type Road struct {
	ID                     string       `yaml:"id" json:"id"`
	Name                   string       `yaml:"name" json:"name"`
	Points                 []geo.LatLng `yaml:"points" json:"points"`
	Type                   string       `yaml:"type" json:"type"`
	WidthM                 float64      `yaml:"width_m" json:"width_m"`
	OneWay                 bool         `yaml:"one_way" json:"one_way"`
	FloorID                string       `yaml:"floor_id,omitempty" json:"floor_id,omitempty"`
	ConnectedIntersections []string     `yaml:"connected_intersections,omitempty" json:"connected_intersections,omitempty"`
}

// IsOutdoor reports whether the road belongs to no floor.
func (r Road) IsOutdoor() bool { return r.FloorID == "" }

// Intersection joins roads at a single point.
type Intersection struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	Point          geo.LatLng `yaml:"point" json:"point"`
	FloorID        string     `yaml:"floor_id,omitempty" json:"floor_id,omitempty"`
	ConnectedRoads []string   `yaml:"connected_roads" json:"connected_roads"`
	Type           string     `yaml:"type" json:"type"`
}
