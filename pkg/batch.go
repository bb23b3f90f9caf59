package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/arkty/osmnx/internal/graph"
	"github.com/arkty/osmnx/internal/io"
	"github.com/arkty/osmnx/internal/reproject"
	"github.com/arkty/osmnx/tools"
	"github.com/golang/glog"
)

type IBatchReprojector interface {
	RunGeometry(opts *reproject.Options) error
	RunGraph(opts *reproject.Options) error
}

type BatchReprojector struct {
	fileFinder  tools.FileFinder
	reprojector IReprojector
}

func NewBatchReprojector(fileFinder tools.FileFinder, reprojector IReprojector) IBatchReprojector {
	return &BatchReprojector{
		fileFinder:  fileFinder,
		reprojector: reprojector,
	}
}

// RunGeometry reprojects every GeoJSON file named by the options into the
// output folder, fanning the files out to one consumer goroutine per CPU.
func (b *BatchReprojector) RunGeometry(opts *reproject.Options) error {
	glog.Infoln("Preparing list of files to process...")

	files := b.fileFinder.GetGeoJSONFilesToProcess(opts)
	for i, filePath := range files {
		glog.Infof("geojson_file path %d [%s]", i+1, filePath)
	}
	if len(files) == 0 {
		return errors.New("no GeoJSON files found to process")
	}

	if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
		return err
	}

	numConsumers := runtime.NumCPU()

	// init channel where to submit work with a buffer 5 times greater than the number of consumers
	workChannel := make(chan *io.WorkUnit, numConsumers*5)

	// init channel where consumers can eventually submit errors that prevented them to finish the job
	errorChannel := make(chan error, numConsumers)

	var waitGroup sync.WaitGroup

	// add producer to waitgroup and launch producer goroutine
	waitGroup.Add(1)
	producer := io.NewStandardProducer(opts.Output, opts)
	go producer.Produce(workChannel, &waitGroup, files)

	// add consumers to waitgroup and launch them
	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer(b.reprojector)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	// wait for producers and consumers to finish
	waitGroup.Wait()

	// close error chan
	close(errorChannel)

	// find if there are errors in the error channel buffer
	withErrors := false
	for err := range errorChannel {
		glog.Infoln(err)
		withErrors = true
	}
	if withErrors {
		return errors.New("errors raised during execution. Check console output for details")
	}

	return nil
}

// RunGraph reads a graph JSON document, reprojects it and writes the
// projected graph to the output file.
func (b *BatchReprojector) RunGraph(opts *reproject.Options) error {
	glog.Infoln("> reading graph from", filepath.Base(opts.Input))
	file := tools.OpenFileOrFail(opts.Input)
	defer file.Close()

	g, err := graph.ReadJSON(file)
	if err != nil {
		return err
	}
	glog.Infof("graph loaded: %d nodes, %d edges", g.NumberOfNodes(), g.NumberOfEdges())

	gProj, err := b.reprojector.ProjectGraph(g, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := graph.WriteJSON(out, gProj); err != nil {
		return err
	}

	glog.Infoln("> done processing", filepath.Base(opts.Input))
	return nil
}
