package track

import (
	"math"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"
)

// Track is a time ordered series of fixes, projected on the sphere to get
// accurate distances.
type Track struct {
	Records Records

	polyline *s2.Polyline
	segment  gpx.GPXTrackSegment
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Stats track statistics
type Stats struct {
	Points        int
	Start, End    time.Time
	Duration      time.Duration
	Distance      float64 // meters, along the great circle between consecutive fixes
	ElevationGain float64
	ElevationLoss float64
}

const earthRadius = 6378100
const elevationChangeThreshold = 18

// New creates a track from the given records, sorted by time.
func New(recs Records) *Track {
	sorted := make(Records, len(recs))
	copy(sorted, recs)
	sorted.SortByTime()

	lls := make([]s2.LatLng, len(sorted))
	pts := make([]gpx.GPXPoint, len(sorted))
	for i, r := range sorted {
		lls[i] = toS2LatLng(r)
		pts[i] = gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				Elevation: r.Altitude,
			},
			Timestamp: r.Time,
		}
	}

	return &Track{
		Records:  sorted,
		polyline: s2.PolylineFromLatLngs(lls),
		segment:  gpx.GPXTrackSegment{Points: pts},
	}
}

// Len returns the number of fixes.
func (t *Track) Len() int {
	return len(t.Records)
}

// Bounds returns the boundaries of the track. An empty track has zero bounds.
func (t *Track) Bounds() Bounds {
	if t.Len() == 0 {
		return Bounds{}
	}

	r := s2.EmptyRect()
	for _, p := range *t.polyline {
		r = r.AddPoint(s2.LatLngFromPoint(p))
	}

	return Bounds{
		MinLat: r.Lo().Lat.Degrees(),
		MinLng: r.Lo().Lng.Degrees(),
		MaxLat: r.Hi().Lat.Degrees(),
		MaxLng: r.Hi().Lng.Degrees(),
	}
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	s := Stats{Points: t.Len()}
	if s.Points == 0 {
		return s
	}

	tb := t.segment.TimeBounds()
	s.Start, s.End = tb.StartTime, tb.EndTime
	s.Duration = tb.EndTime.Sub(tb.StartTime)
	s.Distance = t.polyline.Length().Radians() * earthRadius
	s.ElevationGain, s.ElevationLoss = t.elevationGainLoss(elevationChangeThreshold)

	return s
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
