package importer_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"racoon-gps/rgtools/importer"
	"racoon-gps/rgtools/track"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="racoon" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="50.2" lon="10.5">
    <ele>312.5</ele>
    <cmt>GPS fix 03/04/2018 at 12:00:00</cmt>
  </wpt>
  <wpt lat="50.3" lon="10.6">
    <cmt>GPS fix 04/04/2018 at 02:15:30 by device</cmt>
  </wpt>
</gpx>`

func TestForPath(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
		want  interface{}
		ext   string
	}{
		"gpx":        {input: "/home/me/track.gpx", want: importer.GPX{}},
		"txt":        {input: "log.txt", want: importer.Text{}},
		"csv":        {input: "track.csv", ext: ".csv"},
		"upper_case": {input: "TRACK.GPX", ext: ".GPX"},
		"no_ext":     {input: "track", ext: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			imp, err := importer.ForPath(tc.input)
			if tc.want != nil {
				require.NoError(err)
				require.Equal(tc.want, imp)
				return
			}
			var uerr *importer.UnsupportedError
			require.True(errors.As(err, &uerr))
			require.Equal(tc.ext, uerr.Ext)
			require.Contains(err.Error(), tc.ext)
		})
	}
}

func TestGPXImport(t *testing.T) {
	require := require.New(t)

	recs, err := importer.GPX{}.Import(strings.NewReader(sampleGPX))
	require.NoError(err)
	require.Len(recs, 2)

	require.Equal(10.5, recs[0].Longitude)
	require.Equal(50.2, recs[0].Latitude)
	require.True(recs[0].Altitude.NotNull())
	require.Equal(312.5, recs[0].Altitude.Value())
	require.True(time.Date(2018, time.April, 3, 12, 0, 0, 0, time.Local).Equal(recs[0].Time))

	require.True(recs[1].Altitude.Null())
	require.True(time.Date(2018, time.April, 4, 2, 15, 30, 0, time.Local).Equal(recs[1].Time))
}

func TestGPXImportErrors(t *testing.T) {
	require := require.New(t)

	tests := map[string]string{
		"not_xml":       "this is not a gpx file",
		"short_comment": `<gpx version="1.1"><wpt lat="1" lon="1"><cmt>GPS fix</cmt></wpt></gpx>`,
		"bad_date":      `<gpx version="1.1"><wpt lat="1" lon="1"><cmt>GPS fix yesterday at noon</cmt></wpt></gpx>`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := importer.GPX{}.Import(strings.NewReader(input))
			require.Error(err)
		})
	}
}

func TestTextImport(t *testing.T) {
	require := require.New(t)

	recs, err := importer.Text{}.Import(strings.NewReader("x,x,01/02/2018,x,14:30:00,10.5,50.2\n"))
	require.NoError(err)
	require.Len(recs, 1)
	require.Equal(10.5, recs[0].Longitude)
	require.Equal(50.2, recs[0].Latitude)
	require.True(recs[0].Altitude.Null())
	require.True(time.Date(2018, time.February, 1, 14, 30, 0, 0, time.Local).Equal(recs[0].Time))
}

func TestTextImportDottedDate(t *testing.T) {
	require := require.New(t)

	recs, err := importer.Text{}.Import(strings.NewReader("x,x,03.04.2018,x,14:30:00,10.5,50.2\nx,x,03-04-2018,x,14:31:00,10.5,50.2\n"))
	require.NoError(err)
	require.Len(recs, 2)
	require.True(time.Date(2018, time.April, 3, 14, 30, 0, 0, time.Local).Equal(recs[0].Time))
	require.True(time.Date(2018, time.April, 3, 14, 31, 0, 0, time.Local).Equal(recs[1].Time))
}

func TestTextImportDropsMissing(t *testing.T) {
	require := require.New(t)

	input := strings.Join([]string{
		"1,A,01/02/2018,,14:30:00,10.5,50.2",
		"2,A,01/02/2018,,14:31:00,0.0,50.2",
		"3,A,01/02/2018,,14:32:00,10.5,0.0",
		"4,A,0.0,,14:33:00,10.5,50.2",
		"5,A,01/02/2018,,0.0,10.5,50.2",
		"6,A,01/02/2018,,14:35:00,,50.2",
		"7,A,01/02/2018,,14:36:00,0,0",
		"8,0.0,01/02/2018,0.0,14:37:00,10.6,50.3",
	}, "\n")

	recs, err := importer.Text{}.Import(strings.NewReader(input))
	require.NoError(err)
	require.Len(recs, 2)
	require.Equal(14, recs[0].Time.Hour())
	require.Equal(30, recs[0].Time.Minute())
	require.Equal(10.6, recs[1].Longitude)
}

func TestTextImportErrors(t *testing.T) {
	require := require.New(t)

	tests := map[string]string{
		"short_row":       "1,A,01/02/2018,,14:30:00,10.5\n",
		"column_count":    "1,A,01/02/2018,,14:30:00,10.5,50.2\n2,A,01/02/2018,,14:30:00,10.5\n",
		"non_numeric_lon": "1,A,01/02/2018,,14:30:00,east,50.2\n",
		"bad_date":        "1,A,someday,,14:30:00,10.5,50.2\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := importer.Text{}.Import(strings.NewReader(input))
			require.Error(err)
		})
	}
}

func TestTextImportErrorLine(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
		want  string
	}{
		"after_blank_lines": {input: "1,A,01/02/2018,,14:30:00,10.5,50.2\n\n\n2,A,01/02/2018,,14:31:00,east,50.2\n", want: "line 4:"},
		"first_row":         {input: "\n1,A,01/02/2018,,14:30:00,10.5\n", want: "line 2:"},
		"bad_date":          {input: "1,A,01/02/2018,,14:30:00,10.5,50.2\n\n2,A,someday,,14:30:00,10.5,50.2\n", want: "line 3:"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := importer.Text{}.Import(strings.NewReader(tc.input))
			require.Error(err)
			require.Contains(err.Error(), tc.want)
		})
	}
}

func TestTextImportEmpty(t *testing.T) {
	require := require.New(t)

	recs, err := importer.Text{}.Import(strings.NewReader(""))
	require.NoError(err)
	require.Empty(recs)
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	base := time.Date(2018, time.April, 3, 9, 0, 0, 0, time.Local)
	recs := track.Records{
		{Longitude: 10.5, Latitude: 50.2, Altitude: *gpx.NewNullableFloat64(312), Time: base},
		{Longitude: 10.55, Latitude: 50.25, Time: base.Add(11 * time.Hour)},
		{Longitude: -3.125, Latitude: 48.75, Time: base.Add(20*time.Hour + 17*time.Second)},
	}

	tests := map[string]struct {
		write func(*bytes.Buffer) error
		imp   importer.Importer
	}{
		"gpx": {write: func(b *bytes.Buffer) error { return importer.WriteGPX(b, "track", recs) }, imp: importer.GPX{}},
		"txt": {write: func(b *bytes.Buffer) error { return importer.WriteText(b, recs) }, imp: importer.Text{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(tc.write(&buf))

			got, err := tc.imp.Import(&buf)
			require.NoError(err)
			require.ElementsMatch(triples(recs), triples(got))
		})
	}
}

func TestImportFile(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "racoon")
	require.NoError(err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "track.gpx")
	require.NoError(ioutil.WriteFile(path, []byte(sampleGPX), 0644))

	recs, err := importer.ImportFile(path)
	require.NoError(err)
	require.Len(recs, 2)

	_, err = importer.ImportFile(filepath.Join(dir, "missing.txt"))
	require.True(errors.Is(err, os.ErrNotExist))

	_, err = importer.ImportFile(filepath.Join(dir, "track.csv"))
	var uerr *importer.UnsupportedError
	require.True(errors.As(err, &uerr))
}

func triples(recs track.Records) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = strings.Join([]string{
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			r.Time.Format(time.RFC3339),
		}, "|")
	}
	sort.Strings(out)
	return out
}
