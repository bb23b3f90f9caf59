package converters

import (
	"github.com/arkty/osmnx/internal/geometry"
)

// CoordinateConverter owns the actual transformation math between coordinate
// reference systems. Implementations may hold native resources, hence Cleanup.
type CoordinateConverter interface {
	Transform(sourceCRS string, targetCRS string, coords []geometry.Coordinate) ([]geometry.Coordinate, error)
	IsProjected(crs string) (bool, error)
	Cleanup()
}
