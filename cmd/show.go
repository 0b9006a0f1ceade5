package main

import (
	"context"
	"errors"
	"flag"
	"path/filepath"

	"racoon-gps/rgtools/config"
	"racoon-gps/rgtools/daynight"
	"racoon-gps/rgtools/importer"
	"racoon-gps/rgtools/picker"
	"racoon-gps/rgtools/render"
	t "racoon-gps/rgtools/terminal"

	"github.com/google/subcommands"
)

type showCmd struct {
	outputDir string
	noBrowser bool

	pick    func() (picker.Picker, error)
	display render.Displayer
}

func newShowCmd() *showCmd {
	return &showCmd{
		pick:    dialogPicker,
		display: render.Browser{},
	}
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "Show day and night positions of a GPS log on a map." }
func (*showCmd) Usage() string {
	return `show [-output-dir <dir>] [-no-browser] [<file.gpx|file.txt>]
	Plot the positions of a Racoon GPS log on an OpenStreetMap page.
	Day positions (10:00 - 18:00 by default) are red, night positions blue.
	Without file a file chooser is shown.
  `
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "output-dir", "", "directory of the generated html page (default: temp dir)")
	f.BoolVar(&c.noBrowser, "no-browser", false, "don't open the page in the browser")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	path, err := resolvePath(f.Args(), c.pick)
	if err != nil {
		t.Error(err, "No GPS file to show")
		return subcommands.ExitFailure
	}

	return c.run(cfg, path)
}

func (c *showCmd) run(cfg *config.Config, path string) subcommands.ExitStatus {
	if _, err := importer.ForPath(path); err != nil {
		return unsupported(err)
	}
	base := filepath.Base(path)

	// import the log
	o := t.NewOperation("Importing '%s'", base)
	recs, err := importer.ImportFile(path)
	if err != nil {
		o.Error(err, "Failed to import '%s'", base)
		return subcommands.ExitFailure
	}
	o.Success("Imported %d positions from '%s'", len(recs), base)

	// split in day and night
	recs.SortByTime()
	w := cfg.Window()
	day, night := daynight.Split(recs, w)
	t.Band(true, "%d day positions (%s)", len(day), w)
	t.Band(false, "%d night positions", len(night))

	// render the map
	out := render.OutputPath(c.outputDir, path)
	o = t.NewOperation("Rendering map to '%s'", out)
	if err := cfg.NewMap(base).WriteFile(out, day, night); err != nil {
		o.Error(err, "Failed to render map")
		return subcommands.ExitFailure
	}
	o.Success("Map written to '%s'", out)

	if err := c.displayer().Display(out); err != nil {
		t.Error(err, "Could not open '%s' in the browser", out)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *showCmd) displayer() render.Displayer {
	if c.noBrowser || c.display == nil {
		return render.Discard{}
	}
	return c.display
}

// unsupported reports an unknown file type, exit status 2
func unsupported(err error) subcommands.ExitStatus {
	var uerr *importer.UnsupportedError
	if errors.As(err, &uerr) {
		t.Error(nil, "Error: No importer for filetype \"%s\" ('%s')", uerr.Ext, uerr.Path)
		return subcommands.ExitUsageError
	}
	t.Error(err, "Failed to import")
	return subcommands.ExitFailure
}
