package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arkty/osmnx/internal/geometry"
)

// Document layout used by the CLI: graph-level attributes plus flat node and
// edge records. Node records carry "id", edge records carry "u"/"v"/"key"
// and optionally a GeoJSON "geometry"; everything else is an opaque
// attribute.
type document struct {
	Graph map[string]interface{} `json:"graph"`
	Nodes []json.RawMessage      `json:"nodes"`
	Edges []json.RawMessage      `json:"edges"`
}

// ReadJSON decodes a graph document.
func ReadJSON(r io.Reader) (*MultiDiGraph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode graph document: %w", err)
	}

	g := New()
	if doc.Graph != nil {
		g.Attrs = doc.Graph
	}

	for i, raw := range doc.Nodes {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		id, err := popInt64(fields, "id")
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		attrs, err := decodeAttrs(fields)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		g.AddNode(id, attrs)
	}

	for i, raw := range doc.Edges {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		u, err := popInt64(fields, "u")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		v, err := popInt64(fields, "v")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		key := 0
		if rawKey, ok := fields["key"]; ok {
			if err := json.Unmarshal(rawKey, &key); err != nil {
				return nil, fmt.Errorf("edge %d: invalid key: %w", i, err)
			}
			delete(fields, "key")
		}
		var geom geometry.Geometry
		if rawGeom, ok := fields["geometry"]; ok {
			geom, err = geometry.UnmarshalGeoJSON(rawGeom)
			if err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
			delete(fields, "geometry")
		}
		attrs, err := decodeAttrs(fields)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if geom != nil {
			attrs["geometry"] = geom
		}
		g.SetEdge(EdgeID{U: u, V: v, Key: key}, attrs)
	}

	return g, nil
}

// WriteJSON encodes a graph document.
func WriteJSON(w io.Writer, g *MultiDiGraph) error {
	doc := document{Graph: g.Attrs}

	for _, id := range g.NodeIDs() {
		attrs, _ := g.NodeAttrs(id)
		rec, err := encodeAttrs(attrs)
		if err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		rec["id"] = id
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		doc.Nodes = append(doc.Nodes, raw)
	}

	for _, edgeID := range g.EdgeIDs() {
		attrs, _ := g.EdgeAttrs(edgeID)
		rec, err := encodeAttrs(attrs)
		if err != nil {
			return fmt.Errorf("edge %v: %w", edgeID, err)
		}
		rec["u"] = edgeID.U
		rec["v"] = edgeID.V
		rec["key"] = edgeID.Key
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("edge %v: %w", edgeID, err)
		}
		doc.Edges = append(doc.Edges, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func popInt64(fields map[string]json.RawMessage, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing %q field", name)
	}
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("invalid %q field: %w", name, err)
	}
	delete(fields, name)
	return value, nil
}

func decodeAttrs(fields map[string]json.RawMessage) (map[string]interface{}, error) {
	attrs := make(map[string]interface{}, len(fields))
	for k, raw := range fields {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("invalid %q field: %w", k, err)
		}
		attrs[k] = value
	}
	return attrs, nil
}

func encodeAttrs(attrs map[string]interface{}) (map[string]interface{}, error) {
	rec := make(map[string]interface{}, len(attrs)+3)
	for k, v := range attrs {
		if geom, ok := v.(geometry.Geometry); ok {
			raw, err := geometry.MarshalGeoJSON(geom)
			if err != nil {
				return nil, err
			}
			rec[k] = json.RawMessage(raw)
			continue
		}
		rec[k] = v
	}
	return rec, nil
}
