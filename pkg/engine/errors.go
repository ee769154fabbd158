package engine

import "errors"

// Lookup errors. Check with errors.Is; returned errors carry the missing ID.
var (
	ErrBuildingNotFound = errors.New("engine: building not found")
	ErrFloorNotFound    = errors.New("engine: floor not found")
)
