package geometry

import (
	"errors"

	"github.com/shopspring/decimal"
)

var errNoGeometries = errors.New("cannot compute the centroid of zero geometries")

// Centroid returns the mean of the centroids of the given geometries. The
// accumulation runs on decimals so that averaging very large collections does
// not drift. Note this is the centroid consumed by UTM zone selection, where
// only the average longitude matters.
func Centroid(geoms []Geometry) (Coordinate, error) {
	if len(geoms) == 0 {
		return Coordinate{}, errNoGeometries
	}
	sumX := decimal.Zero
	sumY := decimal.Zero
	for _, g := range geoms {
		c := g.Centroid()
		sumX = sumX.Add(decimal.NewFromFloat(c.X))
		sumY = sumY.Add(decimal.NewFromFloat(c.Y))
	}
	n := decimal.NewFromInt(int64(len(geoms)))
	x, _ := sumX.Div(n).Float64()
	y, _ := sumY.Div(n).Float64()
	return Coordinate{X: x, Y: y}, nil
}
