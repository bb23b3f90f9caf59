package io

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arkty/osmnx/internal/geometry"
	"github.com/arkty/osmnx/internal/reproject"
	"github.com/golang/glog"
)

// GeometryProjector is the part of the reprojection API a consumer needs to
// process one geometry file.
type GeometryProjector interface {
	ProjectGeometry(geom geometry.Geometry, opts *reproject.Options) (geometry.Geometry, string, error)
}

type StandardConsumer struct {
	projector GeometryProjector
}

func NewStandardConsumer(projector GeometryProjector) *StandardConsumer {
	return &StandardConsumer{
		projector: projector,
	}
}

// Output document for one projected geometry. Plain GeoJSON has no CRS slot,
// so the geometry is wrapped together with the CRS it landed in.
type projectedDocument struct {
	CRS      string          `json:"crs"`
	Geometry json.RawMessage `json:"geometry"`
}

// Continually consumes WorkUnits submitted to the work channel, reprojecting
// the corresponding files. Works until the channel is closed or an error is
// raised; errors go to the error channel before quitting.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	for {
		work, ok := <-workchan
		if !ok {
			// channel was closed by producer, quit infinite loop
			break
		}

		err := c.doWork(work)
		if err != nil {
			errchan <- err
			// drain remaining work so the producer can finish
			for range workchan {
			}
			break
		}
	}

	waitGroup.Done()
}

// Reads a GeoJSON geometry file, reprojects it and writes the result next to
// the CRS it was projected into.
func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	glog.Infoln("> reprojecting", filepath.Base(workUnit.FilePath))

	data, err := os.ReadFile(workUnit.FilePath)
	if err != nil {
		return err
	}
	geom, err := geometry.UnmarshalGeoJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", workUnit.FilePath, err)
	}

	geomProj, toCRS, err := c.projector.ProjectGeometry(geom, workUnit.Opts)
	if err != nil {
		return fmt.Errorf("%s: %w", workUnit.FilePath, err)
	}

	raw, err := geometry.MarshalGeoJSON(geomProj)
	if err != nil {
		return fmt.Errorf("%s: %w", workUnit.FilePath, err)
	}
	out, err := json.MarshalIndent(projectedDocument{CRS: toCRS, Geometry: raw}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(workUnit.OutputPath, out, 0644); err != nil {
		return err
	}
	glog.Infoln("> done reprojecting", filepath.Base(workUnit.FilePath))
	return nil
}
