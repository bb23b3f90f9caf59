package tools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arkty/osmnx/internal/reproject"
	"github.com/golang/glog"
)

type FileFinder interface {
	GetGeoJSONFilesToProcess(opts *reproject.Options) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetGeoJSONFilesToProcess(opts *reproject.Options) []string {
	// If folder processing is not enabled the input flag names a single file,
	// otherwise look for GeoJSON files in the input folder, eventually
	// excluding nested folders if the Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}
	}

	return f.getGeoJSONFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getGeoJSONFilesFromInputFolder(opts *reproject.Options) []string {
	var files = make([]string, 0)

	baseInfo, _ := os.Stat(opts.Input)
	err := filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && !opts.Recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			}
			if strings.ToLower(filepath.Ext(info.Name())) == ".geojson" {
				files = append(files, path)
			}
			return nil
		},
	)

	if err != nil {
		glog.Fatal(err)
	}

	return files
}
