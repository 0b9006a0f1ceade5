package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"racoon-gps/rgtools/importer"
	"racoon-gps/rgtools/picker"
	t "racoon-gps/rgtools/terminal"

	"github.com/google/subcommands"
)

const (
	gpxF = "gpx"
	txtF = "txt"
)

type convertCmd struct {
	format     string
	outputFile string

	pick func() (picker.Picker, error)
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "Convert a GPS log between the gpx and txt formats." }
func (*convertCmd) Usage() string {
	return `convert [-to gpx|txt] [-output <file>] [<file.gpx|file.txt>]
	Write the positions of a GPS log in the other logger format.
  `
}

func (cc *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cc.format, "to", "", "output format (gpx, txt), default is the other format")
	f.StringVar(&cc.outputFile, "output", "", "output file (default: input file with the new extension)")
}

func (cc *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := resolvePath(f.Args(), cc.pick)
	if err != nil {
		t.Error(err, "No GPS file given")
		return subcommands.ExitFailure
	}

	return cc.run(path)
}

func (cc *convertCmd) run(path string) subcommands.ExitStatus {
	if _, err := importer.ForPath(path); err != nil {
		return unsupported(err)
	}

	// validate parameters
	format := cc.format
	if format == "" {
		format = gpxF
		if strings.HasSuffix(path, importer.GPXExt) {
			format = txtF
		}
	}
	switch format {
	case gpxF, txtF:
	default:
		t.Error(nil, "Invalid format '%s'", format)
		return subcommands.ExitUsageError
	}

	out := cc.outputFile
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
	}
	if out == path {
		t.Error(nil, "Refusing to overwrite '%s'", path)
		return subcommands.ExitUsageError
	}

	recs, err := importer.ImportFile(path)
	if err != nil {
		t.Error(err, "Failed to import '%s'", filepath.Base(path))
		return subcommands.ExitFailure
	}

	o := t.NewOperation("Writing %d positions to '%s'", len(recs), out)
	f, err := os.Create(out)
	if err != nil {
		o.Error(err, "Could not create '%s'", out)
		return subcommands.ExitFailure
	}
	defer f.Close()

	switch format {
	case gpxF:
		err = importer.WriteGPX(f, filepath.Base(path), recs)
	case txtF:
		err = importer.WriteText(f, recs)
	}
	if err != nil {
		o.Error(err, "Failed to write '%s'", out)
		return subcommands.ExitFailure
	}
	o.Success("Converted '%s' to '%s'", filepath.Base(path), out)

	return subcommands.ExitSuccess
}
