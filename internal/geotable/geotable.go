package geotable

import (
	"github.com/arkty/osmnx/internal/geometry"
)

// Record is one row of a GeoTable: a designated geometry plus arbitrary
// attributes, labeled with the identifier of the entity it describes.
type Record struct {
	ID       int64
	Attrs    map[string]interface{}
	Geometry geometry.Geometry
}

// GeoTable is an ordered collection of records sharing one CRS, the spatial
// table this module projects between coordinate reference systems.
type GeoTable struct {
	CRS     string
	Records []Record
}

func New(crs string) *GeoTable {
	return &GeoTable{CRS: crs}
}

func (t *GeoTable) Len() int {
	return len(t.Records)
}

func (t *GeoTable) Append(rec Record) {
	t.Records = append(t.Records, rec)
}

// Geometries returns the geometry column in row order.
func (t *GeoTable) Geometries() []geometry.Geometry {
	geoms := make([]geometry.Geometry, len(t.Records))
	for i, rec := range t.Records {
		geoms[i] = rec.Geometry
	}
	return geoms
}

// Copy duplicates the table. Attribute maps are copied one level deep;
// geometries and attribute values are treated as immutable.
func (t *GeoTable) Copy() *GeoTable {
	out := &GeoTable{CRS: t.CRS, Records: make([]Record, len(t.Records))}
	for i, rec := range t.Records {
		out.Records[i] = Record{ID: rec.ID, Attrs: CopyAttrs(rec.Attrs), Geometry: rec.Geometry}
	}
	return out
}

// CopyAttrs duplicates an attribute map one level deep.
func CopyAttrs(attrs map[string]interface{}) map[string]interface{} {
	if attrs == nil {
		return nil
	}
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
