package geometry

import "math"

// A planar or geographic coordinate pair. X is longitude/easting,
// Y is latitude/northing.
type Coordinate struct {
	X float64
	Y float64
}

// TransformFunc maps a batch of coordinates into another CRS.
type TransformFunc func(coords []Coordinate) ([]Coordinate, error)

// Geometry is a shape whose coordinates can be handed as a whole to an
// external transformation routine and rebuilt with the same structure.
type Geometry interface {
	GeoJSONType() string
	Centroid() Coordinate
	Transform(fn TransformFunc) (Geometry, error)
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) GeoJSONType() string { return "Point" }

func (p Point) Centroid() Coordinate { return Coordinate{X: p.X, Y: p.Y} }

func (p Point) Transform(fn TransformFunc) (Geometry, error) {
	out, err := fn([]Coordinate{{X: p.X, Y: p.Y}})
	if err != nil {
		return nil, err
	}
	return Point{X: out[0].X, Y: out[0].Y}, nil
}

type LineString struct {
	Coordinates []Coordinate
}

func (l LineString) GeoJSONType() string { return "LineString" }

// Centroid returns the mean of the line vertices.
func (l LineString) Centroid() Coordinate {
	return meanOfCoordinates(l.Coordinates)
}

func (l LineString) Transform(fn TransformFunc) (Geometry, error) {
	out, err := fn(l.Coordinates)
	if err != nil {
		return nil, err
	}
	return LineString{Coordinates: out}, nil
}

// Polygon rings: the first ring is the exterior, the rest are holes.
type Polygon struct {
	Rings [][]Coordinate
}

func (p Polygon) GeoJSONType() string { return "Polygon" }

// Centroid returns the area centroid of the exterior ring, falling back to
// the vertex mean for degenerate rings.
func (p Polygon) Centroid() Coordinate {
	if len(p.Rings) == 0 {
		return Coordinate{}
	}
	c, area := ringCentroid(p.Rings[0])
	if area == 0 {
		return meanOfCoordinates(p.Rings[0])
	}
	return c
}

func (p Polygon) Transform(fn TransformFunc) (Geometry, error) {
	rings := make([][]Coordinate, len(p.Rings))
	for i, ring := range p.Rings {
		out, err := fn(ring)
		if err != nil {
			return nil, err
		}
		rings[i] = out
	}
	return Polygon{Rings: rings}, nil
}

type MultiPolygon struct {
	Polygons []Polygon
}

func (m MultiPolygon) GeoJSONType() string { return "MultiPolygon" }

// Centroid returns the area-weighted mean of the member centroids.
func (m MultiPolygon) Centroid() Coordinate {
	var cx, cy, total float64
	for _, p := range m.Polygons {
		if len(p.Rings) == 0 {
			continue
		}
		c, area := ringCentroid(p.Rings[0])
		area = math.Abs(area)
		if area == 0 {
			c = meanOfCoordinates(p.Rings[0])
			area = 1e-12
		}
		cx += c.X * area
		cy += c.Y * area
		total += area
	}
	if total == 0 {
		return Coordinate{}
	}
	return Coordinate{X: cx / total, Y: cy / total}
}

func (m MultiPolygon) Transform(fn TransformFunc) (Geometry, error) {
	polys := make([]Polygon, len(m.Polygons))
	for i, p := range m.Polygons {
		out, err := p.Transform(fn)
		if err != nil {
			return nil, err
		}
		polys[i] = out.(Polygon)
	}
	return MultiPolygon{Polygons: polys}, nil
}

func meanOfCoordinates(coords []Coordinate) Coordinate {
	if len(coords) == 0 {
		return Coordinate{}
	}
	var sx, sy float64
	for _, c := range coords {
		sx += c.X
		sy += c.Y
	}
	n := float64(len(coords))
	return Coordinate{X: sx / n, Y: sy / n}
}

// Shoelace centroid of a closed or unclosed ring. Also returns the signed
// area so callers can detect degenerate rings and weight multipolygon parts.
func ringCentroid(ring []Coordinate) (Coordinate, float64) {
	n := len(ring)
	if n < 3 {
		return meanOfCoordinates(ring), 0
	}
	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
		area += cross
		cx += (ring[i].X + ring[j].X) * cross
		cy += (ring[i].Y + ring[j].Y) * cross
	}
	area /= 2
	if area == 0 {
		return meanOfCoordinates(ring), 0
	}
	return Coordinate{X: cx / (6 * area), Y: cy / (6 * area)}, area
}
