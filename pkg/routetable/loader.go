package routetable

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/csvtable"
)

var (
	ErrRouteNotFound  = errors.New("route not found")
	ErrMalformedRoute = errors.New("route file could not be read")
)

const (
	DefaultPrefix = "route"
	DefaultSuffix = ".csv"
)

// Files describes where route timetables live: Dir/Prefix<id>Suffix
type Files struct {
	Dir    string
	Prefix string
	Suffix string
}

func (f Files) Path(id string) string {
	prefix := f.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	suffix := f.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return filepath.Join(f.Dir, prefix+id+suffix)
}

type row struct {
	StopName string `csv:"Stop Name"`
	Time     string `csv:"Time"`
	W3W      string `csv:"W3W"`
	Lat      string `csv:"Lat"`
	Lon      string `csv:"Lon"`
}

func Load(files Files, id string) (*Route, error) {
	id = strings.TrimSpace(id)
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: invalid route id %q", ErrRouteNotFound, id)
	}

	return loadFile(files.Path(id), id)
}

func loadFile(path string, id string) (*Route, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, id)
		}

		return nil, err
	}
	defer file.Close()

	route, err := Parse(id, file)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("route", id).Int("stops", len(route.Stops)).Msg("Loaded route timetable")

	return route, nil
}

func Parse(id string, in io.Reader) (*Route, error) {
	var rows []row

	columns, err := csvtable.Decode(in, &rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoute, err)
	}
	if !columns.HasAll("Stop Name", "Time") {
		return nil, fmt.Errorf("%w: route %s needs Stop Name and Time columns", ErrMalformedRoute, id)
	}

	route := &Route{
		ID:                   id,
		Stops:                make([]*Stop, 0, len(rows)),
		HasCoordinateColumns: columns.HasAll("Lat", "Lon"),
	}
	hasWhat3Words := columns.Has("W3W")

	for _, row := range rows {
		stop := &Stop{
			Name: strings.TrimSpace(row.StopName),
			Time: strings.TrimSpace(row.Time),
		}

		if hasWhat3Words {
			stop.What3Words = csvtable.OptionalString(row.W3W)
		}
		if route.HasCoordinateColumns {
			stop.Latitude = csvtable.ParseFloat(row.Lat)
			stop.Longitude = csvtable.ParseFloat(row.Lon)
		}

		route.Stops = append(route.Stops, stop)
	}

	return route, nil
}
