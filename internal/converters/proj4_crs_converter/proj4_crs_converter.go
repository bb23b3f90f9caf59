package proj4_crs_converter

import (
	"fmt"
	"math"

	"github.com/arkty/osmnx/internal/converters"
	"github.com/arkty/osmnx/internal/crs"
	"github.com/arkty/osmnx/internal/geometry"
	proj "github.com/xeonx/proj4"
)

const toRadians = math.Pi / 180
const toDegrees = 180 / math.Pi

type proj4CRSConverter struct {
	// cache of initialized projections keyed by the CRS identifier
	projections map[string]*proj.Proj
}

func NewProj4CRSConverter() converters.CoordinateConverter {
	return &proj4CRSConverter{
		projections: make(map[string]*proj.Proj),
	}
}

// Transform converts the given coordinates from sourceCRS to targetCRS.
// proj4 expects lat-long coordinates in radians and returns them in radians,
// so degree conversion happens around the raw transform.
func (c *proj4CRSConverter) Transform(sourceCRS string, targetCRS string, coords []geometry.Coordinate) ([]geometry.Coordinate, error) {
	src, err := c.initProjection(sourceCRS)
	if err != nil {
		return nil, err
	}
	dst, err := c.initProjection(targetCRS)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(coords))
	y := make([]float64, len(coords))
	z := make([]float64, len(coords))
	for i, coord := range coords {
		x[i] = coord.X
		y[i] = coord.Y
	}
	if src.IsLatLong() {
		scale(x, toRadians)
		scale(y, toRadians)
	}

	if err := proj.TransformRaw(src, dst, x, y, z); err != nil {
		return nil, fmt.Errorf("unable to transform coordinates from %s to %s: %w", sourceCRS, targetCRS, err)
	}

	if dst.IsLatLong() {
		scale(x, toDegrees)
		scale(y, toDegrees)
	}
	out := make([]geometry.Coordinate, len(coords))
	for i := range out {
		out[i] = geometry.Coordinate{X: x[i], Y: y[i]}
	}
	return out, nil
}

// IsProjected reports whether the CRS uses planar rather than lat-long
// coordinates.
func (c *proj4CRSConverter) IsProjected(crsID string) (bool, error) {
	p, err := c.initProjection(crsID)
	if err != nil {
		return false, err
	}
	return !p.IsLatLong(), nil
}

func (c *proj4CRSConverter) Cleanup() {
	for _, p := range c.projections {
		p.Close()
	}
	c.projections = make(map[string]*proj.Proj)
}

func (c *proj4CRSConverter) initProjection(crsID string) (*proj.Proj, error) {
	if p, ok := c.projections[crsID]; ok {
		return p, nil
	}
	p, err := proj.InitPlus(crs.ToProj4(crsID))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize CRS %q: %w", crsID, err)
	}
	c.projections[crsID] = p
	return p, nil
}

func scale(values []float64, factor float64) {
	for i := range values {
		values[i] *= factor
	}
}
