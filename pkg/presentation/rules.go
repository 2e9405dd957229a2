package presentation

import "github.com/travigo/eventcoach/pkg/booking"

// Rule is how a booking is shown for one travel direction
type Rule struct {
	Label            string
	ShowPickupTime   bool
	ShowReturnNotice bool
	BadgeColour      string
	PinColour        string
	Icon             string
}

var Rules = map[booking.Direction]Rule{
	booking.DirectionBoth: {
		Label:            "Pickup & Dropoff",
		ShowPickupTime:   true,
		ShowReturnNotice: true,
		BadgeColour:      "green",
		PinColour:        "green",
		Icon:             "🔄",
	},
	booking.DirectionToVenue: {
		Label:            "Pickup",
		ShowPickupTime:   true,
		ShowReturnNotice: false,
		BadgeColour:      "orange",
		PinColour:        "green",
		Icon:             "➡️",
	},
	booking.DirectionFromVenue: {
		Label:            "Dropoff",
		ShowPickupTime:   false,
		ShowReturnNotice: true,
		BadgeColour:      "blue",
		PinColour:        "blue",
		Icon:             "⬅️",
	},
}

func RuleFor(direction booking.Direction) Rule {
	if rule, exists := Rules[direction]; exists {
		return rule
	}

	return Rules[booking.DirectionFromVenue]
}
