package io

import (
	"github.com/arkty/osmnx/internal/reproject"
)

// Contains the minimal data needed to reproject a single input file: where
// to read it, where to write the result, and the projection options.
type WorkUnit struct {
	FilePath   string
	OutputPath string
	Opts       *reproject.Options
}
