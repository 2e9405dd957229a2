package presentation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/routetable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	PickupZoom = 16
	RouteZoom  = 11

	RouteLineColour = "#229971"
	StopPinColour   = "green"
)

type MapPin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Colour    string  `json:"colour"`
	Popup     string  `json:"popup"`
	Tooltip   string  `json:"tooltip,omitempty"`
}

// OpenStreetMapURL links to the pin on openstreetmap.org at the given zoom
func (p MapPin) OpenStreetMapURL(zoom int) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f#map=%d/%f/%f", p.Latitude, p.Longitude, zoom, p.Latitude, p.Longitude)
}

// Directive is everything a view needs to show one passenger
type Directive struct {
	Name   string `json:"name"`
	Pickup string `json:"pickup"`

	DirectionLabel  string `json:"direction_label"`
	TravelDirection string `json:"travel_direction"`
	BadgeColour     string `json:"badge_colour"`
	Icon            string `json:"icon"`

	ShowPickupTime   bool   `json:"show_pickup_time"`
	PickupTime       string `json:"pickup_time,omitempty"`
	ShowReturnNotice bool   `json:"show_return_notice"`

	Route        string `json:"route"`
	RouteNumber  string `json:"route_number,omitempty"`
	HasRouteLink bool   `json:"has_route_link"`

	MapLink        *string `json:"map_link,omitempty"`
	Pin            *MapPin `json:"pin,omitempty"`
	MapUnavailable bool    `json:"map_unavailable"`
}

func Present(record *booking.Record) Directive {
	rule := RuleFor(record.TravelDirection())

	directive := Directive{
		Name:             record.Name,
		Pickup:           record.Pickup,
		DirectionLabel:   rule.Label,
		TravelDirection:  cases.Title(language.English).String(record.Direction),
		BadgeColour:      rule.BadgeColour,
		Icon:             rule.Icon,
		ShowPickupTime:   rule.ShowPickupTime,
		ShowReturnNotice: rule.ShowReturnNotice,
		Route:            record.Route,
		MapLink:          record.MapLink,
	}

	if rule.ShowPickupTime {
		directive.PickupTime = record.PickupTime
	}

	directive.RouteNumber, directive.HasRouteLink = routetable.ExtractRouteNumber(record.Route)

	if record.HasLocation() {
		directive.Pin = &MapPin{
			Latitude:  *record.Latitude,
			Longitude: *record.Longitude,
			Colour:    rule.PinColour,
			Popup:     record.Pickup,
		}
	} else {
		directive.MapUnavailable = true
	}

	return directive
}

func PresentAll(records []*booking.Record) []Directive {
	directives := make([]Directive, 0, len(records))

	for _, record := range records {
		directives = append(directives, Present(record))
	}

	return directives
}

// AmendmentLink builds the mailto link a passenger uses to ask for a change
// to their booking. The first passenger on the booking is named as the contact.
func AmendmentLink(recipient string, code string, contact string) string {
	if recipient == "" {
		return ""
	}

	subject := fmt.Sprintf("Change Request: %s", code)
	body := fmt.Sprintf("Hello Transport Team,\r\n\r\nI need to request a change for booking %s (Contact: %s).", code, contact)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", recipient, mailtoEscape(subject), mailtoEscape(body))
}

// Mail clients treat + literally so spaces have to be percent encoded
func mailtoEscape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func What3WordsLink(words string) string {
	return "https://w3w.co/" + strings.ReplaceAll(strings.TrimSpace(words), "///", "")
}
