// Package render draws day and night fixes as square markers on a Leaflet
// map and writes it as a standalone HTML page.
package render

import (
	_ "embed"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"racoon-gps/rgtools/track"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	//go:embed "map.html"
	mapHTML     string
	mapTemplate = template.Must(template.New("map").Parse(mapHTML))
)

// Style of the markers of one band. Overlapping translucent markers make
// dense spots look more saturated.
type Style struct {
	Name    string
	Label   string
	Color   string
	Opacity float64
}

// Marker styles of the two bands
var (
	NightStyle = Style{Name: "night", Label: "Night", Color: "blue", Opacity: 0.1}
	DayStyle   = Style{Name: "day", Label: "Day", Color: "red", Opacity: 0.5}
)

// Defaults for OpenStreetMap tiles
const (
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"
	DefaultMarkerSize  = 8
)

// boundsPadding in decimal degrees around the fixes
const boundsPadding = 0.001

// Map holds the page settings
type Map struct {
	Title       string
	TileURL     string
	Attribution string
	MarkerSize  int
}

// NewMap creates a map with OpenStreetMap tiles
func NewMap(title string) *Map {
	return &Map{
		Title:       title,
		TileURL:     DefaultTileURL,
		Attribution: DefaultAttribution,
		MarkerSize:  DefaultMarkerSize,
	}
}

type layer struct {
	Style
	Count   int
	GeoJSON string
}

type page struct {
	*Map
	Layers []layer
	Bounds *track.Bounds

	CenterLat, CenterLng float64
}

// Render writes the HTML page. Night markers are drawn first so day markers
// stay on top.
func (m *Map) Render(w io.Writer, day, night track.Records) error {
	p := page{Map: m}

	for _, l := range []struct {
		style Style
		recs  track.Records
	}{{NightStyle, night}, {DayStyle, day}} {
		data, err := FeatureCollection(l.recs).MarshalJSON()
		if err != nil {
			return err
		}
		p.Layers = append(p.Layers, layer{Style: l.style, Count: len(l.recs), GeoJSON: string(data)})
	}

	all := make(track.Records, 0, len(day)+len(night))
	all = append(append(all, night...), day...)
	b := track.New(all).Bounds()
	p.CenterLat, p.CenterLng = b.Center()
	if len(all) > 0 {
		b = b.Extend(boundsPadding)
		p.Bounds = &b
	}

	return mapTemplate.Execute(w, p)
}

// FeatureCollection converts records to GeoJSON points.
func FeatureCollection(recs track.Records) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range recs {
		f := geojson.NewFeature(orb.Point{r.Longitude, r.Latitude})
		f.Properties["time"] = r.Time.Format("2006-01-02 15:04:05")
		if r.Altitude.NotNull() {
			f.Properties["alt"] = r.Altitude.Value()
		}
		fc.Append(f)
	}
	return fc
}

// OutputPath returns where the page of the given input file is written.
func OutputPath(dir, input string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, filepath.Base(input)+".html")
}

// WriteFile renders the map to path.
func (m *Map) WriteFile(path string, day, night track.Records) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := m.Render(f, day, night); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
