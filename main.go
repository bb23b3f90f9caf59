package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arkty/osmnx/internal/converters/proj4_crs_converter"
	"github.com/arkty/osmnx/internal/reproject"
	"github.com/arkty/osmnx/pkg"
	"github.com/arkty/osmnx/tools"
)

const VERSION = "0.1.0"

const logo = `
  ___  ___ _ __ ___  _ __ __  __
 / _ \/ __| '_ ' _ \| '_ \\ \/ /
| (_) \__ \ | | | | | | | |>  <
 \___/|___/_| |_| |_|_| |_/_/\_\
        a CRS reprojector for geometries, tables and street graphs
`

func main() {
	log.SetPrefix("[osmnx] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()

	if *flagsGlobal.Version {
		fmt.Println(VERSION)
		return
	}
	if *flagsGlobal.Help {
		fmt.Println(logo)
		fmt.Println("Usage: osmnx [geometry|graph] -input <file> -output <file/folder> [options]")
		flag.PrintDefaults()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a subcommand [geometry|graph].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandGeometry:
		mainCommandGeometry(args)
	case tools.CommandGraph:
		mainCommandGraph(args)
	default:
		log.Fatalf("Unrecognized command [%q]. Command must be one of [geometry|graph]", cmd)
	}
}

func mainCommandGeometry(args []string) {
	flags := tools.ParseFlagsForCommandGeometry(args)
	if *flags.Help {
		fmt.Println("Usage: osmnx geometry -input <file/folder> -output <folder> [options]")
		flags.PrintDefaults()
		return
	}
	log.Println(tools.FmtJSONString(flags))

	if *flags.Input == "" || *flags.Output == "" {
		log.Fatal("Both -input and -output must be specified.")
	}

	opts := &reproject.Options{
		SourceCRS:        *flags.SourceCRS,
		ToCRS:            *flags.ToCRS,
		ToLatLong:        *flags.ToLatLong,
		DefaultCRS:       *flags.DefaultCRS,
		Input:            *flags.Input,
		Output:           *flags.Output,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.Recursive,
	}

	converter := proj4_crs_converter.NewProj4CRSConverter()
	defer converter.Cleanup()

	runner := pkg.NewBatchReprojector(tools.NewStandardFileFinder(), pkg.NewReprojector(converter))
	if err := runner.RunGeometry(opts); err != nil {
		log.Fatal(err)
	}
}

func mainCommandGraph(args []string) {
	flags := tools.ParseFlagsForCommandGraph(args)
	if *flags.Help {
		fmt.Println("Usage: osmnx graph -input <file> -output <file> [options]")
		flags.PrintDefaults()
		return
	}
	log.Println(tools.FmtJSONString(flags))

	if *flags.Input == "" || *flags.Output == "" {
		log.Fatal("Both -input and -output must be specified.")
	}

	opts := &reproject.Options{
		ToCRS:      *flags.ToCRS,
		ToLatLong:  *flags.ToLatLong,
		DefaultCRS: *flags.DefaultCRS,
		Input:      *flags.Input,
		Output:     *flags.Output,
	}

	converter := proj4_crs_converter.NewProj4CRSConverter()
	defer converter.Cleanup()

	runner := pkg.NewBatchReprojector(tools.NewStandardFileFinder(), pkg.NewReprojector(converter))
	if err := runner.RunGraph(opts); err != nil {
		log.Fatal(err)
	}
}
