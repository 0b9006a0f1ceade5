// Package daynight splits fixes into a day and a night band by wall-clock
// time of day.
package daynight

import (
	"fmt"
	"racoon-gps/rgtools/track"
	"time"
)

// Clock is a time of day, as an offset from midnight.
type Clock time.Duration

// ClockOf returns the wall-clock time of day of t in its own location.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(t.Nanosecond()))
}

// ParseClock parses "15:04" or "15:04:05".
func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (c Clock) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Window is the half-open day band [Start, End). When Start is after End the
// band wraps around midnight.
type Window struct {
	Start, End Clock
}

// DefaultWindow is 10:00 to 18:00.
var DefaultWindow = Window{Start: Clock(10 * time.Hour), End: Clock(18 * time.Hour)}

// ParseWindow builds a window from two clock strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

// IsDay reports whether t falls into the day band.
func (w Window) IsDay(t time.Time) bool {
	c := ClockOf(t)
	if w.Start <= w.End {
		return c >= w.Start && c < w.End
	}
	return c >= w.Start || c < w.End
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// Split partitions recs into day and night records, keeping their order.
func Split(recs track.Records, w Window) (day, night track.Records) {
	day, night = track.Records{}, track.Records{}
	for _, r := range recs {
		if w.IsDay(r.Time) {
			day = append(day, r)
		} else {
			night = append(night, r)
		}
	}
	return day, night
}
