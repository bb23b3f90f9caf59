package io

import (
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arkty/osmnx/internal/reproject"
)

type StandardProducer struct {
	outputFolder string
	options      *reproject.Options
}

func NewStandardProducer(outputFolder string, options *reproject.Options) *StandardProducer {
	return &StandardProducer{
		outputFolder: outputFolder,
		options:      options,
	}
}

// Submits one WorkUnit per input file to the provided work channel. Closes
// the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, filePaths []string) {
	for _, filePath := range filePaths {
		work <- &WorkUnit{
			FilePath:   filePath,
			OutputPath: path.Join(p.outputFolder, outputName(filePath)),
			Opts:       p.options,
		}
	}
	close(work)
	wg.Done()
}

func outputName(filePath string) string {
	name := filepath.Base(filePath)
	extension := filepath.Ext(name)
	return strings.TrimSuffix(name, extension) + ".projected" + extension
}
