package tools

import (
	"flag"
)

const (
	CommandGeometry = "geometry"
	CommandGraph    = "graph"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type ReprojectFlags struct {
	Input      *string `json:"input"`
	Output     *string `json:"output"`
	ToCRS      *string `json:"to_crs"`
	ToLatLong  *bool   `json:"to_latlong"`
	DefaultCRS *string `json:"default_crs"`
}

type FlagsForCommandGeometry struct {
	ReprojectFlags
	SourceCRS        *string `json:"crs"`
	FolderProcessing *bool   `json:"folder"`
	Recursive        *bool   `json:"recursive"`
	Help             *bool
	flagSet          *flag.FlagSet
}

// PrintDefaults writes the usage of every geometry command flag to stderr.
func (f FlagsForCommandGeometry) PrintDefaults() {
	f.flagSet.PrintDefaults()
}

type FlagsForCommandGraph struct {
	ReprojectFlags
	Help    *bool
	flagSet *flag.FlagSet
}

// PrintDefaults writes the usage of every graph command flag to stderr.
func (f FlagsForCommandGraph) PrintDefaults() {
	f.flagSet.PrintDefaults()
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "v", false, "Displays the version of osmnx.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func ParseFlagsForCommandGeometry(args []string) FlagsForCommandGeometry {
	flagCommand := flag.NewFlagSet("command-geometry", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input GeoJSON file/folder.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output file/folder where to write the projected data.")
	sourceCRS := defineStringFlagCommand(flagCommand, "crs", "s", "", "CRS of the input geometry. Defaults to the default geographic CRS.")
	toCRS := defineStringFlagCommand(flagCommand, "to-crs", "t", "", "Destination CRS. When omitted the local UTM zone is detected automatically.")
	toLatLong := defineBoolFlagCommand(flagCommand, "to-latlong", "l", false, "Project to the default geographic CRS instead of a named destination.")
	defaultCRS := defineStringFlagCommand(flagCommand, "default-crs", "d", "", "Overrides the default geographic CRS (EPSG:4326).")
	folder := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Processes all GeoJSON files in the input folder.")
	recursive := defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Recursive lookup of GeoJSON files in subfolders. Only used when folder processing is enabled.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")

	flagCommand.Parse(args)

	return FlagsForCommandGeometry{
		ReprojectFlags: ReprojectFlags{
			Input:      input,
			Output:     output,
			ToCRS:      toCRS,
			ToLatLong:  toLatLong,
			DefaultCRS: defaultCRS,
		},
		SourceCRS:        sourceCRS,
		FolderProcessing: folder,
		Recursive:        recursive,
		Help:             help,
		flagSet:          flagCommand,
	}
}

func ParseFlagsForCommandGraph(args []string) FlagsForCommandGraph {
	flagCommand := flag.NewFlagSet("command-graph", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input graph JSON file.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output file where to write the projected graph.")
	toCRS := defineStringFlagCommand(flagCommand, "to-crs", "t", "", "Destination CRS. When omitted the local UTM zone is detected automatically.")
	toLatLong := defineBoolFlagCommand(flagCommand, "to-latlong", "l", false, "Project to the default geographic CRS instead of a named destination.")
	defaultCRS := defineStringFlagCommand(flagCommand, "default-crs", "d", "", "Overrides the default geographic CRS (EPSG:4326).")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")

	flagCommand.Parse(args)

	return FlagsForCommandGraph{
		ReprojectFlags: ReprojectFlags{
			Input:      input,
			Output:     output,
			ToCRS:      toCRS,
			ToLatLong:  toLatLong,
			DefaultCRS: defaultCRS,
		},
		Help:    help,
		flagSet: flagCommand,
	}
}

func defineBoolFlag(name, short string, value bool, usage string) *bool {
	var v bool
	flag.BoolVar(&v, name, value, usage)
	flag.BoolVar(&v, short, value, usage+" (shorthand)")
	return &v
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name, short, value, usage string) *string {
	var v string
	flagCommand.StringVar(&v, name, value, usage)
	flagCommand.StringVar(&v, short, value, usage+" (shorthand)")
	return &v
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name, short string, value bool, usage string) *bool {
	var v bool
	flagCommand.BoolVar(&v, name, value, usage)
	flagCommand.BoolVar(&v, short, value, usage+" (shorthand)")
	return &v
}
