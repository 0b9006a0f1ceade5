package main

import (
	"context"
	"flag"
	"os"

	"racoon-gps/rgtools/config"
	"racoon-gps/rgtools/importer"
	"racoon-gps/rgtools/picker"
	t "racoon-gps/rgtools/terminal"

	"github.com/google/subcommands"
)

const name = "racoon-gps"

var version = "0.3.0"

func main() {
	os.Exit(int(realMain(os.Args[1:])))
}

func realMain(args []string) subcommands.ExitStatus {
	t.Info("%s %s", name, version)

	cfg, err := config.Load()
	if err != nil {
		t.Error(err, "Failed to load config")
		return subcommands.ExitFailure
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, name)
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(newShowCmd(), "")
	cdr.Register(&statsCmd{pick: dialogPicker}, "")
	cdr.Register(&convertCmd{pick: dialogPicker}, "")

	if err := fs.Parse(withDefaultCommand(args)); err != nil {
		return subcommands.ExitUsageError
	}

	return cdr.Execute(context.Background(), cfg)
}

var commands = map[string]bool{
	"help":     true,
	"flags":    true,
	"commands": true,
	"show":     true,
	"stats":    true,
	"convert":  true,
}

// withDefaultCommand runs `show` when the first argument isn't a command, so
// `racoon-gps track.gpx` keeps working.
func withDefaultCommand(args []string) []string {
	if len(args) > 0 && commands[args[0]] {
		return args
	}
	return append([]string{"show"}, args...)
}

// dialogPicker asks for the file with the desktop file dialog, or in the
// terminal when there is no desktop
func dialogPicker() (picker.Picker, error) {
	p, err := picker.NewDialog(importer.GPXExt, importer.TextExt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// resolvePath returns the single positional argument, or asks for it.
func resolvePath(args []string, pick func() (picker.Picker, error)) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	p, err := pick()
	if err != nil {
		return "", err
	}
	return p.Pick()
}
