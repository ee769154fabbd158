package model

import (
	"strings"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/geo"
)

// LandmarkKind is the category tag of a landmark.
type LandmarkKind string

const (
	KindElevator  LandmarkKind = "elevator"
	KindStairs    LandmarkKind = "stairs"
	KindEscalator LandmarkKind = "escalator"
	KindEntrance  LandmarkKind = "entrance"
	KindRamp      LandmarkKind = "ramp"
	KindRestroom  LandmarkKind = "restroom"
	KindParking   LandmarkKind = "parking"
)

// IsVerticalCirculation reports whether the kind moves people between floors.
func (k LandmarkKind) IsVerticalCirculation() bool {
	switch k {
	case KindElevator, KindStairs, KindEscalator:
		return true
	}
	return false
}

// Direction is the travel direction of an escalator.
type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection normalizes a free-form direction value. Anything other than
// "up" or "down" yields DirectionNone.
func ParseDirection(v any) Direction {
	s, ok := v.(string)
	if !ok {
		return DirectionNone
	}
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionUp:
		return DirectionUp
	case DirectionDown:
		return DirectionDown
	}
	return DirectionNone
}

// Step returns +1 for up, -1 for down and 0 otherwise.
func (d Direction) Step() int {
	switch d {
	case DirectionUp:
		return 1
	case DirectionDown:
		return -1
	}
	return 0
}

// Landmark is a point feature. An empty FloorID means the landmark is outdoor.
//
// Properties is the raw attribute map from the capture workflow. Normalize
// folds the attributes the engine understands into typed fields; scoring never
// reads Properties directly.
type Landmark struct {
	ID             string         `yaml:"id" json:"id"`
	Name           string         `yaml:"name" json:"name"`
	Kind           LandmarkKind   `yaml:"type" json:"type"`
	Location       geo.LatLng     `yaml:"location" json:"location"`
	FloorID        string         `yaml:"floor_id,omitempty" json:"floor_id,omitempty"`
	Accessible     bool           `yaml:"accessible" json:"accessible"`
	Direction      Direction      `yaml:"direction,omitempty" json:"direction,omitempty"`
	ConnectsFloors []string       `yaml:"connects_floors,omitempty" json:"connects_floors,omitempty"`
	Properties     map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Normalize returns a copy of l with typed fields populated from Properties.
// An explicit typed value wins over the property map.
func (l Landmark) Normalize() Landmark {
	l.Kind = LandmarkKind(strings.ToLower(strings.TrimSpace(string(l.Kind))))
	if l.Direction != DirectionNone {
		l.Direction = ParseDirection(string(l.Direction))
	} else {
		l.Direction = ParseDirection(l.Properties["direction"])
	}
	if !l.Accessible {
		if b, ok := l.Properties["accessible"].(bool); ok {
			l.Accessible = b
		}
	}
	return l
}
