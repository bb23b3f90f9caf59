package reproject

import "github.com/arkty/osmnx/internal/crs"

// Options drives a reprojection run. Destination selection, first match
// wins: ToLatLong, then ToCRS, then automatic UTM zone detection.
type Options struct {
	SourceCRS  string // CRS of the input geometry when it carries none itself
	ToCRS      string // explicit destination CRS
	ToLatLong  bool   // project to the default geographic CRS
	DefaultCRS string // default geographic CRS, crs.DefaultGeographicCRS when empty

	Input            string // input file or folder (CLI)
	Output           string // output file or folder (CLI)
	FolderProcessing bool   // process every .geojson file in the input folder
	Recursive        bool   // recursive lookup of input files in subfolders
}

// DefaultGeographicCRS resolves the configured default geographic CRS,
// falling back to the module-wide default. Resolution happens here at the
// call site, never through global mutable state.
func (opt *Options) DefaultGeographicCRS() string {
	if opt != nil && opt.DefaultCRS != "" {
		return opt.DefaultCRS
	}
	return crs.DefaultGeographicCRS
}

func (opt *Options) Copy() *Options {
	newOpt := &Options{
		SourceCRS:        opt.SourceCRS,
		ToCRS:            opt.ToCRS,
		ToLatLong:        opt.ToLatLong,
		DefaultCRS:       opt.DefaultCRS,
		Input:            opt.Input,
		Output:           opt.Output,
		FolderProcessing: opt.FolderProcessing,
		Recursive:        opt.Recursive,
	}
	return newOpt
}
