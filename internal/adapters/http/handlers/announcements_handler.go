package handlers

import (
	"time"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/view"

	"github.com/gofiber/fiber/v2"
)

// AnnouncementsHandler handles the member announcements page
type AnnouncementsHandler struct {
	announcementsService *services.AnnouncementsService
}

// NewAnnouncementsHandler creates a new announcements handler
func NewAnnouncementsHandler(announcementsService *services.AnnouncementsService) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcementsService: announcementsService}
}

// List renders the announcements page with the selected filter tab.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	page, err := h.announcementsService.Load(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	filter := c.Query("filter", view.AnnouncementsAll)
	return c.Render("pages/announcements", fiber.Map{
		"Title":            "Announcements",
		"Active":           "announcements",
		"Profile":          page.Profile,
		"Announcements":    view.FilterAnnouncements(page.Announcements, filter, time.Now()),
		"AnnouncementsErr": page.AnnouncementsErr != nil,
		"Filter":           filter,
	}, "layouts/member")
}
