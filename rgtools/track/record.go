package track

import (
	"sort"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Record is a single GPS fix of the logger.
type Record struct {
	Longitude, Latitude float64
	Altitude            gpx.NullableFloat64 // null when the source format has no elevation
	Time                time.Time
}

// Lat returns the latitude in degrees
func (r Record) Lat() float64 {
	return r.Latitude
}

// Lng returns the longitude in degrees
func (r Record) Lng() float64 {
	return r.Longitude
}

// Records is a sequence of fixes in file order.
type Records []Record

// SortByTime orders the records by timestamp, keeping file order for equal times.
func (rs Records) SortByTime() {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Time.Before(rs[j].Time)
	})
}
