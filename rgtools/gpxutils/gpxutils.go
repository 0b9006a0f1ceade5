package gpxutils

import (
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpsXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// Creator is written in the creator attribute of generated documents
const Creator = "racoon-gps"

// NewDocument creates an empty GPX 1.1 document
func NewDocument(name string, t time.Time) *gpx.GPX {
	g := gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpsXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: Creator,
		Name:    name,
	}
	if !t.IsZero() {
		g.Time = &t
	}
	return &g
}

// NewWaypoint builds a waypoint, elevation may be null
func NewWaypoint(lat, lng float64, ele gpx.NullableFloat64, comment string) gpx.GPXPoint {
	return gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  lat,
			Longitude: lng,
			Elevation: ele,
		},
		Comment: comment,
	}
}

// ToXML serializes the document with indentation
func ToXML(g *gpx.GPX) ([]byte, error) {
	return g.ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: true})
}
