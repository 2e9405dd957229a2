package booking

import "strings"

type Direction string

const (
	DirectionBoth      Direction = "Both"
	DirectionToVenue   Direction = "ToVenue"
	DirectionFromVenue Direction = "FromVenue"
)

const (
	// DefaultDirection is used when the bookings table has no Direction value
	DefaultDirection = "Both"
	// PickupTimeUnknown is shown when no pickup time has been set yet
	PickupTimeUnknown = "TBC"
)

// Record is a single passenger row from the bookings table.
// Several records share a Code when one booking covers many passengers.
type Record struct {
	Code       string `json:"code" groups:"basic"`
	Name       string `json:"name" groups:"basic"`
	Route      string `json:"route" groups:"basic"`
	Direction  string `json:"direction" groups:"basic"`
	Pickup     string `json:"pickup" groups:"basic"`
	PickupTime string `json:"pickup_time" groups:"basic"`

	MapLink *string `json:"map_link,omitempty" groups:"basic"`

	Latitude  *float64 `json:"latitude,omitempty" groups:"detailed"`
	Longitude *float64 `json:"longitude,omitempty" groups:"detailed"`
}

func (r *Record) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

func (r *Record) TravelDirection() Direction {
	return ClassifyDirection(r.Direction)
}

// ClassifyDirection maps the free text Direction column onto a travel leg.
// "both" wins over "to" when a value contains both substrings, anything
// else is treated as a return journey only.
func ClassifyDirection(raw string) Direction {
	lowered := strings.ToLower(raw)

	switch {
	case strings.Contains(lowered, "both"):
		return DirectionBoth
	case strings.Contains(lowered, "to"):
		return DirectionToVenue
	default:
		return DirectionFromVenue
	}
}
