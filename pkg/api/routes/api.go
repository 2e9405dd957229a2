package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/presentation"
	"github.com/travigo/eventcoach/pkg/session"
)

func HealthRouter(router fiber.Router) {
	router.Get("/", getHealth)
}

func getHealth(c *fiber.Ctx) error {
	records, err := bookingsAvailable()
	if err != nil {
		logUnavailable(err)

		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"status": "unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"bookings": records,
	})
}

func BookingsRouter(router fiber.Router, event config.Event) {
	router.Get("/:code", func(c *fiber.Ctx) error {
		return getBooking(c, event)
	})
}

func getBooking(c *fiber.Ctx, event config.Event) error {
	state, records, err := searchBookings(c.Params("code"))
	if err != nil {
		logUnavailable(err)

		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": "Bookings are unavailable",
		})
	}

	if state.Stage == session.NotFound {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Code not found",
		})
	}

	passengersReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, records)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce passengers",
		})
	}

	code := booking.NormaliseCode(state.Code)

	return c.JSON(fiber.Map{
		"code":           code,
		"passengers":     passengersReduced,
		"directives":     presentation.PresentAll(records),
		"amendment_link": presentation.AmendmentLink(event.ContactEmail, code, records[0].Name),
	})
}

func RoutesRouter(router fiber.Router) {
	router.Get("/:id", getRoute)
}

func getRoute(c *fiber.Ctx) error {
	state, route, path, err := viewRoute(c.UserContext(), session.Direct(), c.Params("id"))
	if errors.Is(err, session.ErrInvalidTransition) || state.Stage != session.RouteFound {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Route not found",
		})
	}

	routeReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, route)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce route",
		})
	}

	return c.JSON(fiber.Map{
		"route": routeReduced,
		"path":  path,
		"view":  presentation.PresentRoute(route, path),
	})
}
