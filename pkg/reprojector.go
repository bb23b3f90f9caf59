package pkg

import (
	"errors"
	"fmt"

	"github.com/arkty/osmnx/internal/converters"
	"github.com/arkty/osmnx/internal/crs"
	"github.com/arkty/osmnx/internal/geometry"
	"github.com/arkty/osmnx/internal/geotable"
	"github.com/arkty/osmnx/internal/graph"
	"github.com/arkty/osmnx/internal/reproject"
	"github.com/golang/glog"
)

var (
	// ErrInvalidTable is raised when reprojection is attempted on a table
	// with no records or no CRS.
	ErrInvalidTable = errors.New("table cannot be empty and must have a valid CRS")

	// ErrAlreadyProjected is raised when UTM auto-detection starts from a
	// projected CRS. The UTM zone is only meaningful for lat-long data.
	ErrAlreadyProjected = errors.New("geometry must be unprojected to calculate UTM zone")

	// ErrMissingGraphCRS is raised when the graph carries no crs attribute.
	ErrMissingGraphCRS = errors.New("graph has no crs attribute")
)

type IReprojector interface {
	ProjectGeometry(geom geometry.Geometry, opts *reproject.Options) (geometry.Geometry, string, error)
	ProjectTable(table *geotable.GeoTable, opts *reproject.Options) (*geotable.GeoTable, error)
	ProjectGraph(g *graph.MultiDiGraph, opts *reproject.Options) (*graph.MultiDiGraph, error)
}

type Reprojector struct {
	converter converters.CoordinateConverter
}

func NewReprojector(converter converters.CoordinateConverter) IReprojector {
	return &Reprojector{
		converter: converter,
	}
}

// ProjectGeometry reprojects a single geometry by wrapping it in a
// one-record table, delegating to ProjectTable and unwrapping the result.
// Returns the projected geometry and the CRS it now has. When the options
// name no source CRS the default geographic CRS is assumed.
func (r *Reprojector) ProjectGeometry(geom geometry.Geometry, opts *reproject.Options) (geometry.Geometry, string, error) {
	if opts == nil {
		opts = &reproject.Options{}
	}
	sourceCRS := opts.SourceCRS
	if sourceCRS == "" {
		sourceCRS = opts.DefaultGeographicCRS()
	}

	table := geotable.New(sourceCRS)
	table.Append(geotable.Record{Geometry: geom})

	projected, err := r.ProjectTable(table, opts)
	if err != nil {
		return nil, "", err
	}
	return projected.Records[0].Geometry, projected.CRS, nil
}

// ProjectTable reprojects every geometry of the table into the destination
// CRS and returns a new table tagged with it. Destination selection, first
// match wins: the to-latlong flag projects to the default geographic CRS, an
// explicit ToCRS is used verbatim, otherwise the UTM zone of the centroid of
// the union of all geometries is detected automatically.
func (r *Reprojector) ProjectTable(table *geotable.GeoTable, opts *reproject.Options) (*geotable.GeoTable, error) {
	if opts == nil {
		opts = &reproject.Options{}
	}
	if table == nil || table.CRS == "" || table.Len() < 1 {
		return nil, ErrInvalidTable
	}
	// every record needs a geometry before the destination is picked: UTM
	// auto-detection walks all geometries to find the union centroid
	for i, rec := range table.Records {
		if rec.Geometry == nil {
			return nil, fmt.Errorf("record %d has no geometry: %w", i, ErrInvalidTable)
		}
	}

	var toCRS string
	switch {
	case opts.ToLatLong:
		toCRS = opts.DefaultGeographicCRS()
		glog.Infof("projecting table to default geographic CRS %s", toCRS)
	case opts.ToCRS != "":
		toCRS = opts.ToCRS
		glog.Infof("projecting table to %s", toCRS)
	default:
		projected, err := r.converter.IsProjected(table.CRS)
		if err != nil {
			return nil, err
		}
		if projected {
			return nil, ErrAlreadyProjected
		}
		centroid, err := geometry.Centroid(table.Geometries())
		if err != nil {
			return nil, err
		}
		zone := crs.UTMZone(centroid.X)
		toCRS = crs.UTMProj4(zone)
		glog.Infof("projecting table to UTM-%d", zone)
	}

	transform := func(coords []geometry.Coordinate) ([]geometry.Coordinate, error) {
		return r.converter.Transform(table.CRS, toCRS, coords)
	}
	out := &geotable.GeoTable{CRS: toCRS, Records: make([]geotable.Record, table.Len())}
	for i, rec := range table.Records {
		geomProj, err := rec.Geometry.Transform(transform)
		if err != nil {
			return nil, err
		}
		out.Records[i] = geotable.Record{ID: rec.ID, Attrs: geotable.CopyAttrs(rec.Attrs), Geometry: geomProj}
	}
	return out, nil
}

// ProjectGraph reprojects all node coordinates and edge geometries of the
// graph, preserving every other attribute. The graph is never mutated in
// place: a copy is cleared and rebuilt wholesale from projected node and
// edge tables, so no partially projected state is ever returned. The input
// graph is left untouched.
func (r *Reprojector) ProjectGraph(g *graph.MultiDiGraph, opts *reproject.Options) (*graph.MultiDiGraph, error) {
	if opts == nil {
		opts = &reproject.Options{}
	}
	srcCRS, ok := g.Attrs[graph.AttrCRS].(string)
	if !ok || srcCRS == "" {
		return nil, ErrMissingGraphCRS
	}

	gProj := g.Copy()
	nodeIDs := gProj.NodeIDs()

	// freeze lon/lat from current x/y only when the columns do not already
	// exist, so repeated reprojections never overwrite the originals
	freezeLonLat := false
	for _, id := range nodeIDs {
		attrs, _ := gProj.NodeAttrs(id)
		if _, ok := attrs["lon"]; !ok {
			freezeLonLat = true
		}
		if _, ok := attrs["lat"]; !ok {
			freezeLonLat = true
		}
	}

	nodeTable := geotable.New(srcCRS)
	for _, id := range nodeIDs {
		attrs, _ := gProj.NodeAttrs(id)
		rec := geotable.Record{ID: id, Attrs: geotable.CopyAttrs(attrs)}
		x, err := floatAttr(rec.Attrs, "x")
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", id, err)
		}
		y, err := floatAttr(rec.Attrs, "y")
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", id, err)
		}
		if freezeLonLat {
			rec.Attrs["lon"] = x
			rec.Attrs["lat"] = y
		}
		rec.Geometry = geometry.NewPoint(x, y)
		nodeTable.Append(rec)
	}
	glog.Infoln("created node table from graph")

	nodeOpts := &reproject.Options{ToCRS: opts.ToCRS, ToLatLong: opts.ToLatLong, DefaultCRS: opts.DefaultCRS}
	nodeTableProj, err := r.ProjectTable(nodeTable, nodeOpts)
	if err != nil {
		return nil, fmt.Errorf("unable to project graph nodes: %w", err)
	}
	glog.Infoln("projected graph nodes")

	// collect every edge carrying a geometry into its own table. Geometry
	// only exists on simplified graphs; without it the node coordinates
	// fully describe the edges and there is nothing to project.
	edgeIDs := gProj.EdgeIDs()
	edgeTable := geotable.New(srcCRS)
	for _, eid := range edgeIDs {
		attrs, _ := gProj.EdgeAttrs(eid)
		geomAttr, ok := attrs["geometry"]
		if !ok {
			continue
		}
		geomTyped, ok := geomAttr.(geometry.Geometry)
		if !ok {
			return nil, fmt.Errorf("edge (%d, %d, %d): geometry attribute has unexpected type %T", eid.U, eid.V, eid.Key, geomAttr)
		}
		edgeTable.Append(geotable.Record{
			Attrs:    map[string]interface{}{"u": eid.U, "v": eid.V, "key": eid.Key},
			Geometry: geomTyped,
		})
	}

	// the edge table must land in exactly the CRS the node table landed in
	projectedEdgeGeoms := make(map[graph.EdgeID]geometry.Geometry, edgeTable.Len())
	if edgeTable.Len() > 0 {
		edgeTableProj, err := r.ProjectTable(edgeTable, &reproject.Options{ToCRS: nodeTableProj.CRS, DefaultCRS: opts.DefaultCRS})
		if err != nil {
			return nil, fmt.Errorf("unable to project graph edges: %w", err)
		}
		for _, rec := range edgeTableProj.Records {
			eid := graph.EdgeID{U: rec.Attrs["u"].(int64), V: rec.Attrs["v"].(int64), Key: rec.Attrs["key"].(int)}
			projectedEdgeGeoms[eid] = rec.Geometry
		}
	}

	// extract final x/y from the projected points and drop the transient
	// geometry column
	for i := range nodeTableProj.Records {
		rec := &nodeTableProj.Records[i]
		pt, ok := rec.Geometry.(geometry.Point)
		if !ok {
			return nil, fmt.Errorf("node %d: projected geometry has unexpected type %T", rec.ID, rec.Geometry)
		}
		rec.Attrs["x"] = pt.X
		rec.Attrs["y"] = pt.Y
		rec.Geometry = nil
	}
	glog.Infoln("extracted projected node coordinates")

	// capture the original edges, then rebuild the cleared copy wholesale
	type edgeRecord struct {
		id    graph.EdgeID
		attrs map[string]interface{}
	}
	edges := make([]edgeRecord, 0, len(edgeIDs))
	for _, eid := range edgeIDs {
		attrs, _ := gProj.EdgeAttrs(eid)
		edges = append(edges, edgeRecord{id: eid, attrs: attrs})
	}

	gProj.Clear()
	for _, rec := range nodeTableProj.Records {
		gProj.AddNode(rec.ID, rec.Attrs)
	}
	for _, e := range edges {
		if !gProj.HasNode(e.id.U) || !gProj.HasNode(e.id.V) {
			return nil, fmt.Errorf("edge (%d, %d, %d) references a node missing from the projected node set", e.id.U, e.id.V, e.id.Key)
		}
		if _, ok := e.attrs["geometry"]; ok {
			geomProj, ok := projectedEdgeGeoms[e.id]
			if !ok {
				return nil, fmt.Errorf("no projected geometry found for edge (%d, %d, %d)", e.id.U, e.id.V, e.id.Key)
			}
			e.attrs["geometry"] = geomProj
		}
		gProj.SetEdge(e.id, e.attrs)
	}

	gProj.Attrs[graph.AttrCRS] = nodeTableProj.CRS
	if spn, ok := g.Attrs[graph.AttrStreetsPerNode]; ok {
		gProj.Attrs[graph.AttrStreetsPerNode] = spn
	}
	glog.Infoln("rebuilt projected graph")
	return gProj, nil
}

func floatAttr(attrs map[string]interface{}, name string) (float64, error) {
	v, ok := attrs[name]
	if !ok {
		return 0, fmt.Errorf("attribute %q is missing", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("attribute %q is not numeric (%T)", name, v)
}
