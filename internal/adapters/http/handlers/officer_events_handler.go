package handlers

import (
	"errors"
	"strings"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// saveFailedMessage is the banner shown when the remote API rejects a
// write; the submitted values stay in the form.
const saveFailedMessage = "Saving failed. Please try again."

// OfficerEventsHandler handles the officer event management page
type OfficerEventsHandler struct {
	eventsService *services.EventsService
}

// NewOfficerEventsHandler creates a new officer events handler
func NewOfficerEventsHandler(eventsService *services.EventsService) *OfficerEventsHandler {
	return &OfficerEventsHandler{eventsService: eventsService}
}

// Manage renders the event management page. With ?edit=<id> the form is
// seeded from that event and posts to the update route.
func (h *OfficerEventsHandler) Manage(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	events, err := h.eventsService.OfficerList(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	extra := fiber.Map{}
	if editID := c.QueryInt("edit"); editID > 0 {
		for _, event := range events {
			if event.ID == editID {
				extra["Form"] = eventEditForm(event)
				extra["FormID"] = event.ID
				break
			}
		}
	}
	return h.renderManage(c, events, extra)
}

// eventEditForm seeds the edit form from an existing event.
func eventEditForm(event domain.Event) services.EventForm {
	return services.EventForm{
		Title:             event.Title,
		Description:       event.Description,
		Date:              event.Date,
		Location:          event.Location,
		RegistrationStart: event.RegistrationStart,
		RegistrationEnd:   event.RegistrationEnd,
	}
}

// Create handles the new-event form submission.
func (h *OfficerEventsHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update handles the edit-event form submission.
func (h *OfficerEventsHandler) Update(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	return h.save(c, eventID)
}

// save validates the form before anything leaves the server. A rejected
// form re-renders the page with the submitted values still in place.
func (h *OfficerEventsHandler) save(c *fiber.Ctx, eventID int) error {
	sess := middleware.SessionFrom(c)

	form, parseErr := parseEventForm(c)
	if parseErr == nil {
		parseErr = form.Validate(timeNow())
	}
	if parseErr != nil {
		events, err := h.eventsService.OfficerList(c.Context(), sess.Token)
		if err != nil {
			return err
		}
		return h.renderManage(c, events, fiber.Map{
			"FormError": formErrorMessage(parseErr),
			"Form":      form,
			"FormID":    eventID,
		})
	}

	image, closeImage, err := optionalUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	if _, err := h.eventsService.Save(c.Context(), sess.Token, eventID, form, image); err != nil {
		if nexus.IsUnauthorized(err) {
			return err
		}
		events, listErr := h.eventsService.OfficerList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, events, fiber.Map{
			"FormError": saveFailedMessage,
			"Form":      form,
			"FormID":    eventID,
		})
	}
	return c.Redirect("/officer-manage-events", fiber.StatusSeeOther)
}

// Delete removes an event.
func (h *OfficerEventsHandler) Delete(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.eventsService.Delete(c.Context(), sess.Token, eventID); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-events", fiber.StatusSeeOther)
}

// Participants returns the attendee list for the participants modal.
func (h *OfficerEventsHandler) Participants(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid event id")
	}

	sess := middleware.SessionFrom(c)
	participants, err := h.eventsService.Participants(c.Context(), sess.Token, eventID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load participants")
	}
	return response.Success(c, "Participants loaded", fiber.Map{"participants": participants})
}

func (h *OfficerEventsHandler) renderManage(c *fiber.Ctx, events []domain.Event, extra fiber.Map) error {
	data := fiber.Map{
		"Title":   "Manage Events",
		"Active":  "officer-manage-events",
		"Officer": middleware.OfficerFrom(c),
		"Events":  events,
	}
	for k, v := range extra {
		data[k] = v
	}
	return c.Render("pages/officer_events", data, "layouts/officer")
}

func parseEventForm(c *fiber.Ctx) (services.EventForm, error) {
	form := services.EventForm{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Location:    strings.TrimSpace(c.FormValue("location")),
	}

	if raw := c.FormValue("date"); raw != "" {
		date, err := parseLocalTime(raw)
		if err != nil {
			return form, domain.ErrInvalidInput
		}
		form.Date = date
	}

	start, err := parseOptionalLocalTime(c.FormValue("registration_start"))
	if err != nil {
		return form, domain.ErrInvalidInput
	}
	form.RegistrationStart = start

	end, err := parseOptionalLocalTime(c.FormValue("registration_end"))
	if err != nil {
		return form, domain.ErrInvalidInput
	}
	form.RegistrationEnd = end

	return form, nil
}

// formErrorMessage maps validation errors to the message shown above the
// form.
func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEventDatePast):
		return "The event date must be in the future."
	case errors.Is(err, domain.ErrWindowStartPast):
		return "Registration cannot open in the past."
	case errors.Is(err, domain.ErrWindowEndPast):
		return "Registration cannot close in the past."
	case errors.Is(err, domain.ErrWindowInverted):
		return "Registration must open before it closes."
	default:
		return "Please fill in all required fields."
	}
}
