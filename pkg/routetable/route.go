package routetable

import (
	"regexp"
	"strings"
)

var (
	routeNumberRegex = regexp.MustCompile(`\d+`)
	routeIDRegex     = regexp.MustCompile(`^\d+$`)
)

type Stop struct {
	Name       string  `json:"name" groups:"basic"`
	Time       string  `json:"time" groups:"basic"`
	What3Words *string `json:"what3words,omitempty" groups:"basic"`

	Latitude  *float64 `json:"latitude,omitempty" groups:"detailed"`
	Longitude *float64 `json:"longitude,omitempty" groups:"detailed"`
}

func (s *Stop) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Route is the timetable of a single coach route in running order
type Route struct {
	ID    string  `json:"id" groups:"basic"`
	Stops []*Stop `json:"stops" groups:"basic"`

	// HasCoordinateColumns is false when the file carries no Lat/Lon columns at all
	HasCoordinateColumns bool `json:"-"`
}

// LocatedStops returns the stops that can be placed on a map, in running order
func (r *Route) LocatedStops() []*Stop {
	var located []*Stop

	for _, stop := range r.Stops {
		if stop.HasLocation() {
			located = append(located, stop)
		}
	}

	return located
}

// ExtractRouteNumber returns the first run of digits in a route label,
// so "Route 12 - City" gives "12". Labels without digits have no route.
func ExtractRouteNumber(label string) (string, bool) {
	number := routeNumberRegex.FindString(label)

	return number, number != ""
}

func ValidID(id string) bool {
	return routeIDRegex.MatchString(strings.TrimSpace(id))
}
