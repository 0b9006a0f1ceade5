package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"racoon-gps/rgtools/timestamp"
	"racoon-gps/rgtools/track"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
)

// Column positions of the headerless txt log.
const (
	dateCol = 2
	timeCol = 4
	lonCol  = 5
	latCol  = 6
)

// Text imports the comma separated txt log of the logger.
//
// A value of 0 (typically "0.0") or an empty value in one of the date, time,
// lon or lat columns marks the fix as missing and the row is dropped. This also
// drops real fixes on the equator or the Greenwich meridian.
type Text struct{}

type textRow struct {
	Date string `csv:"date"`
	Time string `csv:"time"`
	Lon  string `csv:"lon"`
	Lat  string `csv:"lat"`
}

// textLine is the full row layout written by WriteText.
type textLine struct {
	Seq    int    `csv:"seq"`
	Status string `csv:"status"`
	Date   string `csv:"date"`
	Spare  string `csv:"spare"`
	Time   string `csv:"time"`
	Lon    string `csv:"lon"`
	Lat    string `csv:"lat"`
}

// replayReader hands the already consumed first record back to the decoder.
type replayReader struct {
	first []string
	r     *csv.Reader
}

func (rr *replayReader) Read() ([]string, error) {
	if rr.first != nil {
		rec := rr.first
		rr.first = nil
		return rec, nil
	}
	return rr.r.Read()
}

// Import reads every row, dropping the ones with a missing value.
func (Text) Import(r io.Reader) (track.Records, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err == io.EOF {
		return track.Records{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(first) <= latCol {
		line, _ := cr.FieldPos(0)
		return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, latCol+1, len(first))
	}

	dec, err := csvutil.NewDecoder(&replayReader{first: first, r: cr}, header(len(first))...)
	if err != nil {
		return nil, err
	}

	recs := track.Records{}
	for {
		var row textRow
		err := dec.Decode(&row)
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv errors carry their own line
			return nil, err
		}
		// physical line of the record, blank lines included
		line, _ := cr.FieldPos(0)

		if missing(row.Date) || missing(row.Time) || missing(row.Lon) || missing(row.Lat) {
			continue
		}

		rec, err := row.record()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

func (row textRow) record() (track.Record, error) {
	lon, err := strconv.ParseFloat(strings.TrimSpace(row.Lon), 64)
	if err != nil {
		return track.Record{}, fmt.Errorf("invalid longitude %q", row.Lon)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(row.Lat), 64)
	if err != nil {
		return track.Record{}, fmt.Errorf("invalid latitude %q", row.Lat)
	}
	t, err := timestamp.Parse(row.Date, row.Time)
	if err != nil {
		return track.Record{}, err
	}

	return track.Record{Longitude: lon, Latitude: lat, Time: t}, nil
}

// WriteText writes records as txt log rows readable by Text.Import.
func WriteText(w io.Writer, recs track.Records) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	for i, r := range recs {
		line := textLine{
			Seq:    i + 1,
			Status: "A",
			Date:   r.Time.Format(timestamp.DateLayout),
			Time:   r.Time.Format(timestamp.ClockLayout),
			Lon:    strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			Lat:    strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// header names the n columns of a row, only the used ones matter.
func header(n int) []string {
	h := make([]string, n)
	for i := range h {
		h[i] = "col" + strconv.Itoa(i)
	}
	h[dateCol] = "date"
	h[timeCol] = "time"
	h[lonCol] = "lon"
	h[latCol] = "lat"
	return h
}

func missing(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f == 0
}
