package booking

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/csvtable"
)

var (
	ErrSourceMissing   = errors.New("bookings source not found")
	ErrMalformedSource = errors.New("bookings source could not be read")
)

// Row is the raw text of one line in the bookings table
type Row struct {
	Code       string `csv:"Code"`
	Name       string `csv:"Name"`
	Route      string `csv:"Route"`
	Pickup     string `csv:"Pickup"`
	MapLink    string `csv:"MapLink"`
	Direction  string `csv:"Direction"`
	PickupTime string `csv:"PickupTime"`
	Lat        string `csv:"Lat"`
	Lon        string `csv:"Lon"`
}

func LoadRecords(path string) ([]*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}

		return nil, err
	}
	defer file.Close()

	records, err := ParseRecords(file)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("records", len(records)).Msg("Loaded bookings")

	return records, nil
}

func ParseRecords(in io.Reader) ([]*Record, error) {
	var rows []Row

	columns, err := csvtable.Decode(in, &rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if !columns.Has("Code") {
		return nil, fmt.Errorf("%w: no Code column", ErrMalformedSource)
	}

	rows = FillCodes(rows)

	hasDirection := columns.Has("Direction")
	hasPickupTime := columns.Has("PickupTime")
	hasCoordinates := columns.HasAll("Lat", "Lon")

	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		record := &Record{
			Code:       row.Code,
			Name:       strings.TrimSpace(row.Name),
			Route:      strings.TrimSpace(row.Route),
			Pickup:     strings.TrimSpace(row.Pickup),
			Direction:  DefaultDirection,
			PickupTime: PickupTimeUnknown,
			MapLink:    csvtable.OptionalString(row.MapLink),
		}

		if hasDirection && !csvtable.IsMissing(row.Direction) {
			record.Direction = strings.TrimSpace(row.Direction)
		}
		if hasPickupTime && !csvtable.IsMissing(row.PickupTime) {
			record.PickupTime = strings.TrimSpace(row.PickupTime)
		}
		if hasCoordinates {
			record.Latitude = csvtable.ParseFloat(row.Lat)
			record.Longitude = csvtable.ParseFloat(row.Lon)
		}

		records = append(records, record)
	}

	return records, nil
}

// FillCodes carries the last non-blank Code forward onto following rows
// that leave it blank or N/A, then normalises every code. Rows before the first
// code keep an empty code and so never match a lookup.
func FillCodes(rows []Row) []Row {
	filled := make([]Row, len(rows))
	lastCode := ""

	for i, row := range rows {
		if !csvtable.IsMissing(row.Code) {
			lastCode = NormaliseCode(row.Code)
		}

		row.Code = lastCode
		filled[i] = row
	}

	return filled
}
