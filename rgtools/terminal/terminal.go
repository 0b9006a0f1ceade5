package terminal

import (
	"fmt"
	"io"
	"os"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	gray   = "\033[37m"
)

var out io.Writer = os.Stdout

// SetOutput redirects everything printed by the package
func SetOutput(w io.Writer) {
	out = w
}

// Error print error
func Error(err error, format string, a ...interface{}) {
	var message = format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	fmt.Fprintf(out, "%s%s%s\n", red, fmt.Sprintf(message, a...), reset)
}

// Info print an informational line
func Info(format string, a ...interface{}) {
	fmt.Fprintf(out, "%s%s%s\n", gray, fmt.Sprintf(format, a...), reset)
}

// Band prints a colored line for the day or night band
func Band(day bool, format string, a ...interface{}) {
	color := blue
	if day {
		color = red
	}
	fmt.Fprintf(out, "  %s■%s %s\n", color, reset, fmt.Sprintf(format, a...))
}
