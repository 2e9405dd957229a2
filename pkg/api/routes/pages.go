package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/eventcoach/pkg/api/views"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/presentation"
	"github.com/travigo/eventcoach/pkg/session"
)

func PagesRouter(router fiber.Router, event config.Event) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchPage(c, event)
	})
	router.Get("/routes/:id?", func(c *fiber.Ctx) error {
		return routePage(c, event)
	})
}

func render(c *fiber.Ctx, status int, name string, data interface{}) error {
	c.Status(status)
	c.Type("html", "utf-8")

	return views.Render(c, name, data)
}

func searchPage(c *fiber.Ctx, event config.Event) error {
	page := views.SearchPage{
		Event:      event,
		State:      session.New(),
		PickupZoom: presentation.PickupZoom,
	}

	if _, err := bookingsAvailable(); err != nil {
		logUnavailable(err)

		page.Unavailable = true
		return render(c, fiber.StatusServiceUnavailable, views.SearchTemplate, page)
	}

	if !c.Context().QueryArgs().Has("code") {
		return render(c, fiber.StatusOK, views.SearchTemplate, page)
	}

	state, records, err := searchBookings(c.Query("code"))
	page.State = state

	if err != nil {
		logUnavailable(err)

		page.Unavailable = true
		return render(c, fiber.StatusServiceUnavailable, views.SearchTemplate, page)
	}

	if state.Stage == session.Found {
		code := booking.NormaliseCode(state.Code)

		page.Directives = presentation.PresentAll(records)
		page.AmendmentLink = presentation.AmendmentLink(event.ContactEmail, code, records[0].Name)
	}

	return render(c, fiber.StatusOK, views.SearchTemplate, page)
}

func routePage(c *fiber.Ctx, event config.Event) error {
	page := views.RoutePage{
		Event:     event,
		State:     session.Resume(c.Query("code")),
		RouteZoom: presentation.RouteZoom,
	}

	state, route, path, err := viewRoute(c.UserContext(), page.State, c.Params("id"))
	if err != nil {
		page.NoRouteSelected = true
		return render(c, fiber.StatusOK, views.RouteTemplate, page)
	}

	page.State = state

	if route != nil {
		view := presentation.PresentRoute(route, path)
		page.View = &view
	}

	return render(c, fiber.StatusOK, views.RouteTemplate, page)
}
