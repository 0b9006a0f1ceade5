// Package timestamp turns the free-text date and time fields written by the
// Racoon logger into local wall-clock times.
//
// Dates are always read day first: "03/04/2018" is the 3rd of April.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Positions of the date and time tokens inside a waypoint comment,
// e.g. "GPS fix 03/04/2018 at 12:00:00".
const (
	dateToken = 2
	timeToken = 4
)

// CommentLayout is the layout used when writing waypoint comments back.
const CommentLayout = "GPS fix 02/01/2006 at 15:04:05"

// DateLayout and ClockLayout are the day-first layouts of the txt log columns.
const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04:05"
)

// dayFirstLayouts are tried before falling back to dateparse, which does not
// read dotted or dashed dates day first.
var dayFirstLayouts = []string{
	"2.1.2006 15:04:05",
	"2-1-2006 15:04:05",
	"2/1/2006 15:04:05",
	"2.1.2006 15:04",
	"2-1-2006 15:04",
	"2/1/2006 15:04",
}

// ErrShortComment is returned when a comment has no date or time token.
var ErrShortComment = errors.New("comment has fewer than 5 tokens")

// FromComment extracts the timestamp of a waypoint comment.
func FromComment(comment string) (time.Time, error) {
	tokens := strings.Fields(comment)
	if len(tokens) <= timeToken {
		return time.Time{}, fmt.Errorf("%w: %q", ErrShortComment, comment)
	}

	return Parse(tokens[dateToken], tokens[timeToken])
}

// Parse combines a date and a time of day into a local timestamp.
func Parse(date, clock string) (time.Time, error) {
	s := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	for _, layout := range dayFirstLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseIn(s, time.Local, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q: %w", s, err)
	}
	return t, nil
}

// Comment formats t the way FromComment expects it.
func Comment(t time.Time) string {
	return t.Format(CommentLayout)
}
