package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"racoon-gps/rgtools/config"
	c "racoon-gps/rgtools/convert"
	"racoon-gps/rgtools/daynight"
	"racoon-gps/rgtools/importer"
	"racoon-gps/rgtools/picker"
	t "racoon-gps/rgtools/terminal"
	"racoon-gps/rgtools/track"

	"github.com/google/subcommands"
)

const dateFormat = "02/01/2006 15:04:05"

type statsCmd struct {
	pick func() (picker.Picker, error)
	out  io.Writer
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Print statistics of a GPS log." }
func (*statsCmd) Usage() string {
	return `stats [<file.gpx|file.txt>]
	Print number of day and night positions, time span, distance and elevation of a GPS log.
  `
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (s *statsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	path, err := resolvePath(f.Args(), s.pick)
	if err != nil {
		t.Error(err, "No GPS file given")
		return subcommands.ExitFailure
	}

	return s.run(cfg, path)
}

func (s *statsCmd) run(cfg *config.Config, path string) subcommands.ExitStatus {
	if _, err := importer.ForPath(path); err != nil {
		return unsupported(err)
	}

	recs, err := importer.ImportFile(path)
	if err != nil {
		t.Error(err, "Failed to import '%s'", filepath.Base(path))
		return subcommands.ExitFailure
	}

	w := s.out
	if w == nil {
		w = os.Stdout
	}

	day, night := daynight.Split(recs, cfg.Window())
	st := track.New(recs).Stats()
	days, hours, mins := c.ToDaysHoursMin(st.Duration)

	fmt.Fprintf(w, "file:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "positions:  %d\n", st.Points)
	fmt.Fprintf(w, "day:        %d (%s)\n", len(day), cfg.Window())
	fmt.Fprintf(w, "night:      %d\n", len(night))
	if st.Points > 0 {
		fmt.Fprintf(w, "first:      %s\n", st.Start.Format(dateFormat))
		fmt.Fprintf(w, "last:       %s\n", st.End.Format(dateFormat))
	}
	fmt.Fprintf(w, "duration:   %dd %dh %dm\n", days, hours, mins)
	fmt.Fprintf(w, "distance:   %.2f km (%.2f mi)\n", c.ToKilometers(st.Distance), c.ToMiles(st.Distance))
	fmt.Fprintf(w, "elev. gain: %s m (%s ft)\n", c.Ftoan(st.ElevationGain), c.Ftoan(c.ToFeet(st.ElevationGain)))
	fmt.Fprintf(w, "elev. loss: %s m (%s ft)\n", c.Ftoan(st.ElevationLoss), c.Ftoan(c.ToFeet(st.ElevationLoss)))

	return subcommands.ExitSuccess
}
