package geometry

import (
	"math"
	"testing"
)

func TestPointCentroid(t *testing.T) {
	p := NewPoint(-122.4, 37.8)
	c := p.Centroid()
	if c.X != -122.4 || c.Y != 37.8 {
		t.Errorf("point centroid = %+v", c)
	}
}

func TestLineStringCentroid(t *testing.T) {
	l := LineString{Coordinates: []Coordinate{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	c := l.Centroid()
	if c.X != 1 || c.Y != 1 {
		t.Errorf("linestring centroid = %+v, want (1,1)", c)
	}
}

func TestPolygonCentroid(t *testing.T) {
	// unit square about the origin
	square := Polygon{Rings: [][]Coordinate{{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}}}
	c := square.Centroid()
	if math.Abs(c.X) > 1e-12 || math.Abs(c.Y) > 1e-12 {
		t.Errorf("square centroid = %+v, want (0,0)", c)
	}
}

func TestMultiPolygonCentroid(t *testing.T) {
	m := MultiPolygon{Polygons: []Polygon{
		{Rings: [][]Coordinate{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}},
		{Rings: [][]Coordinate{{{2, 0}, {4, 0}, {4, 2}, {2, 2}}}},
	}}
	c := m.Centroid()
	// area-weighted mean of (0.5, 0.5) at weight 1 and (3, 1) at weight 4
	if math.Abs(c.X-2.5) > 1e-12 || math.Abs(c.Y-0.9) > 1e-12 {
		t.Errorf("multipolygon centroid = %+v, want (2.5, 0.9)", c)
	}
}

func TestAggregateCentroid(t *testing.T) {
	geoms := []Geometry{NewPoint(10, 0), NewPoint(20, 10)}
	c, err := Centroid(geoms)
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 15 || c.Y != 5 {
		t.Errorf("aggregate centroid = %+v, want (15,5)", c)
	}

	if _, err := Centroid(nil); err == nil {
		t.Error("expected error for zero geometries")
	}
}

func TestTransformPreservesStructure(t *testing.T) {
	shift := func(coords []Coordinate) ([]Coordinate, error) {
		out := make([]Coordinate, len(coords))
		for i, c := range coords {
			out[i] = Coordinate{X: c.X + 1, Y: c.Y - 1}
		}
		return out, nil
	}

	poly := Polygon{Rings: [][]Coordinate{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 2}},
	}}
	g, err := poly.Transform(shift)
	if err != nil {
		t.Fatal(err)
	}
	moved, ok := g.(Polygon)
	if !ok {
		t.Fatalf("transform changed type to %T", g)
	}
	if len(moved.Rings) != 2 {
		t.Fatalf("transform dropped rings: %d", len(moved.Rings))
	}
	if moved.Rings[1][0] != (Coordinate{X: 2, Y: 0}) {
		t.Errorf("hole vertex = %+v", moved.Rings[1][0])
	}
}

func TestGeoJSONRoundTrip(t *testing.T) {
	shapes := []Geometry{
		NewPoint(2.35, 48.85),
		LineString{Coordinates: []Coordinate{{0, 0}, {1, 2}}},
		Polygon{Rings: [][]Coordinate{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}},
		MultiPolygon{Polygons: []Polygon{
			{Rings: [][]Coordinate{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}},
			{Rings: [][]Coordinate{{{2, 0}, {4, 0}, {4, 2}, {2, 2}}}},
		}},
	}
	for _, want := range shapes {
		data, err := MarshalGeoJSON(want)
		if err != nil {
			t.Fatalf("%s: %v", want.GeoJSONType(), err)
		}
		got, err := UnmarshalGeoJSON(data)
		if err != nil {
			t.Fatalf("%s: %v", want.GeoJSONType(), err)
		}
		if got.GeoJSONType() != want.GeoJSONType() {
			t.Errorf("round trip changed type %s -> %s", want.GeoJSONType(), got.GeoJSONType())
		}
		if got.Centroid() != want.Centroid() {
			t.Errorf("%s: round trip moved centroid", want.GeoJSONType())
		}
	}
}
