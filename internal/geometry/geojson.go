package geometry

import (
	"encoding/json"
	"fmt"
)

// Wire form of a GeoJSON geometry object. Coordinates stay raw until the
// type tag is known.
type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// MarshalGeoJSON encodes a geometry as a GeoJSON geometry object.
func MarshalGeoJSON(g Geometry) ([]byte, error) {
	var coords interface{}
	switch s := g.(type) {
	case Point:
		coords = []float64{s.X, s.Y}
	case LineString:
		coords = positions(s.Coordinates)
	case Polygon:
		coords = rings(s.Rings)
	case MultiPolygon:
		polys := make([][][][]float64, len(s.Polygons))
		for i, p := range s.Polygons {
			polys[i] = rings(p.Rings)
		}
		coords = polys
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
	raw, err := json.Marshal(coords)
	if err != nil {
		return nil, err
	}
	return json.Marshal(geoJSONGeometry{Type: g.GeoJSONType(), Coordinates: raw})
}

// UnmarshalGeoJSON decodes a GeoJSON geometry object.
func UnmarshalGeoJSON(data []byte) (Geometry, error) {
	var raw geoJSONGeometry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Type {
	case "Point":
		var pos []float64
		if err := json.Unmarshal(raw.Coordinates, &pos); err != nil {
			return nil, err
		}
		if len(pos) < 2 {
			return nil, fmt.Errorf("point needs 2 coordinates, got %d", len(pos))
		}
		return Point{X: pos[0], Y: pos[1]}, nil
	case "LineString":
		var pos [][]float64
		if err := json.Unmarshal(raw.Coordinates, &pos); err != nil {
			return nil, err
		}
		coords, err := coordinates(pos)
		if err != nil {
			return nil, err
		}
		return LineString{Coordinates: coords}, nil
	case "Polygon":
		var pos [][][]float64
		if err := json.Unmarshal(raw.Coordinates, &pos); err != nil {
			return nil, err
		}
		r, err := decodeRings(pos)
		if err != nil {
			return nil, err
		}
		return Polygon{Rings: r}, nil
	case "MultiPolygon":
		var pos [][][][]float64
		if err := json.Unmarshal(raw.Coordinates, &pos); err != nil {
			return nil, err
		}
		polys := make([]Polygon, len(pos))
		for i, p := range pos {
			r, err := decodeRings(p)
			if err != nil {
				return nil, err
			}
			polys[i] = Polygon{Rings: r}
		}
		return MultiPolygon{Polygons: polys}, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", raw.Type)
	}
}

func positions(coords []Coordinate) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = []float64{c.X, c.Y}
	}
	return out
}

func rings(r [][]Coordinate) [][][]float64 {
	out := make([][][]float64, len(r))
	for i, ring := range r {
		out[i] = positions(ring)
	}
	return out
}

func coordinates(pos [][]float64) ([]Coordinate, error) {
	out := make([]Coordinate, len(pos))
	for i, p := range pos {
		if len(p) < 2 {
			return nil, fmt.Errorf("position %d needs 2 coordinates, got %d", i, len(p))
		}
		out[i] = Coordinate{X: p[0], Y: p[1]}
	}
	return out, nil
}

func decodeRings(pos [][][]float64) ([][]Coordinate, error) {
	out := make([][]Coordinate, len(pos))
	for i, ring := range pos {
		coords, err := coordinates(ring)
		if err != nil {
			return nil, err
		}
		out[i] = coords
	}
	return out, nil
}
