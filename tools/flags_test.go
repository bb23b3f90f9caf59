package tools

import (
	"testing"
)

func TestParseFlagsForCommandGeometry(t *testing.T) {
	flags := ParseFlagsForCommandGeometry([]string{"-input", "in.geojson", "-output", "out", "-to-crs", "EPSG:32610", "-folder"})

	if *flags.Input != "in.geojson" || *flags.Output != "out" {
		t.Errorf("input/output = %q/%q", *flags.Input, *flags.Output)
	}
	if *flags.ToCRS != "EPSG:32610" {
		t.Errorf("to-crs = %q", *flags.ToCRS)
	}
	if !*flags.FolderProcessing || *flags.Recursive {
		t.Errorf("folder/recursive = %v/%v", *flags.FolderProcessing, *flags.Recursive)
	}
	if *flags.Help {
		t.Error("help defaulted to true")
	}
}

func TestParseFlagsHelp(t *testing.T) {
	geom := ParseFlagsForCommandGeometry([]string{"-help"})
	if !*geom.Help {
		t.Error("geometry -help not parsed")
	}
	if geom.flagSet == nil {
		t.Fatal("geometry flag set not retained for usage printing")
	}

	gr := ParseFlagsForCommandGraph([]string{"-h"})
	if !*gr.Help {
		t.Error("graph -h not parsed")
	}
	if gr.flagSet == nil {
		t.Fatal("graph flag set not retained for usage printing")
	}
}
