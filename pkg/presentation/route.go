package presentation

import (
	"github.com/travigo/eventcoach/pkg/geometry"
	"github.com/travigo/eventcoach/pkg/routetable"
)

type TimetableRow struct {
	Name           string `json:"name"`
	Time           string `json:"time"`
	What3Words     string `json:"what3words,omitempty"`
	What3WordsLink string `json:"what3words_link,omitempty"`
}

type RouteView struct {
	ID        string         `json:"id"`
	Timetable []TimetableRow `json:"timetable"`

	// ShowLocations is set when any stop has a what3words address
	ShowLocations bool `json:"show_locations"`

	Centre *MapPin          `json:"centre,omitempty"`
	Pins   []MapPin         `json:"pins"`
	Line   []geometry.Point `json:"line,omitempty"`

	// LineSource says whether the line follows roads or joins stops directly
	LineSource geometry.Source `json:"line_source,omitempty"`
	LineColour string          `json:"line_colour"`

	CoordinatesMissing bool `json:"coordinates_missing"`
}

func PresentRoute(route *routetable.Route, path *geometry.Path) RouteView {
	view := RouteView{
		ID:         route.ID,
		Timetable:  make([]TimetableRow, 0, len(route.Stops)),
		Pins:       []MapPin{},
		LineColour: RouteLineColour,
	}

	for _, stop := range route.Stops {
		row := TimetableRow{
			Name: stop.Name,
			Time: stop.Time,
		}
		if stop.What3Words != nil {
			view.ShowLocations = true
			row.What3Words = *stop.What3Words
			row.What3WordsLink = What3WordsLink(*stop.What3Words)
		}
		view.Timetable = append(view.Timetable, row)

		if stop.HasLocation() {
			view.Pins = append(view.Pins, MapPin{
				Latitude:  *stop.Latitude,
				Longitude: *stop.Longitude,
				Colour:    StopPinColour,
				Popup:     stop.Name + "\nTime: " + stop.Time,
				Tooltip:   stop.Name,
			})
		}
	}

	if !route.HasCoordinateColumns || len(view.Pins) == 0 {
		view.CoordinatesMissing = true
		return view
	}

	centre := view.Pins[0]
	view.Centre = &centre

	if path.Drawable() {
		view.Line = path.Points
		view.LineSource = path.Source
	}

	return view
}
