package importer

import (
	"fmt"
	"io"
	"io/ioutil"
	"racoon-gps/rgtools/gpxutils"
	"racoon-gps/rgtools/timestamp"
	"racoon-gps/rgtools/track"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// GPX imports the waypoints of a GPX document. The logger stores the fix time
// in the waypoint comment, not in the <time> element.
type GPX struct{}

// Import emits one record per waypoint.
func (GPX) Import(r io.Reader) (track.Records, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx: %w", err)
	}

	recs := make(track.Records, 0, len(g.Waypoints))
	for i, w := range g.Waypoints {
		t, err := timestamp.FromComment(w.Comment)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: %w", i+1, err)
		}

		recs = append(recs, track.Record{
			Longitude: w.Longitude,
			Latitude:  w.Latitude,
			Altitude:  w.Elevation,
			Time:      t,
		})
	}

	return recs, nil
}

// WriteGPX writes records as GPX waypoints readable by GPX.Import.
func WriteGPX(w io.Writer, name string, recs track.Records) error {
	var start time.Time
	if len(recs) > 0 {
		start = recs[0].Time
	}

	g := gpxutils.NewDocument(name, start)
	for _, r := range recs {
		wpt := gpxutils.NewWaypoint(r.Latitude, r.Longitude, r.Altitude, timestamp.Comment(r.Time))
		wpt.Timestamp = r.Time
		g.Waypoints = append(g.Waypoints, wpt)
	}

	b, err := gpxutils.ToXML(g)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
