package handlers

import (
	"time"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/view"

	"github.com/gofiber/fiber/v2"
)

// EventsHandler handles the member events pages
type EventsHandler struct {
	eventsService *services.EventsService
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventsService *services.EventsService) *EventsHandler {
	return &EventsHandler{eventsService: eventsService}
}

// List renders the events page. The filter tab is a query parameter so a
// reload keeps the selection.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	page, err := h.eventsService.Load(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	filter := c.Query("filter", view.EventsAll)
	now := time.Now()
	return c.Render("pages/events", fiber.Map{
		"Title":     "Events",
		"Active":    "events",
		"Profile":   page.Profile,
		"Events":    view.FilterEvents(page.Events, filter, now),
		"EventsErr": page.EventsErr != nil,
		"Filter":    filter,
		"Now":       now,
	}, "layouts/member")
}

// Join registers the member for an event and reloads the page.
func (h *EventsHandler) Join(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.eventsService.Join(c.Context(), sess.Token, eventID); err != nil {
		return err
	}
	return c.Redirect("/events", fiber.StatusSeeOther)
}

// Leave unregisters the member from an event and reloads the page.
func (h *EventsHandler) Leave(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.eventsService.Leave(c.Context(), sess.Token, eventID); err != nil {
		return err
	}
	return c.Redirect("/events", fiber.StatusSeeOther)
}
