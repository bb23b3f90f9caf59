package geotable

import (
	"testing"

	"github.com/arkty/osmnx/internal/geometry"
)

func TestAppendAndGeometries(t *testing.T) {
	table := New("EPSG:4326")
	table.Append(Record{ID: 1, Geometry: geometry.NewPoint(1, 2)})
	table.Append(Record{ID: 2, Geometry: geometry.NewPoint(3, 4)})

	if table.Len() != 2 {
		t.Fatalf("len = %d", table.Len())
	}
	geoms := table.Geometries()
	if geoms[1].(geometry.Point).X != 3 {
		t.Errorf("geometry order broken: %+v", geoms[1])
	}
}

func TestCopyIsIndependent(t *testing.T) {
	table := New("EPSG:4326")
	table.Append(Record{ID: 1, Attrs: map[string]interface{}{"name": "a"}, Geometry: geometry.NewPoint(0, 0)})

	c := table.Copy()
	c.CRS = "EPSG:3857"
	c.Records[0].Attrs["name"] = "b"

	if table.CRS != "EPSG:4326" {
		t.Error("copy shares the CRS")
	}
	if table.Records[0].Attrs["name"] != "a" {
		t.Error("copy shares attribute maps")
	}
}
