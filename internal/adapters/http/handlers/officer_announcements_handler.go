package handlers

import (
	"strings"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// OfficerAnnouncementsHandler handles the officer announcement management page
type OfficerAnnouncementsHandler struct {
	announcementsService *services.AnnouncementsService
}

// NewOfficerAnnouncementsHandler creates a new officer announcements handler
func NewOfficerAnnouncementsHandler(announcementsService *services.AnnouncementsService) *OfficerAnnouncementsHandler {
	return &OfficerAnnouncementsHandler{announcementsService: announcementsService}
}

// Manage renders the announcement management page. With ?edit=<id> the
// form is seeded from that announcement and posts to the update route.
func (h *OfficerAnnouncementsHandler) Manage(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	announcements, err := h.announcementsService.OfficerList(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	extra := fiber.Map{}
	if editID := c.QueryInt("edit"); editID > 0 {
		for _, announcement := range announcements {
			if announcement.ID == editID {
				extra["Form"] = announcementEditForm(announcement)
				extra["FormID"] = announcement.ID
				break
			}
		}
	}
	return h.renderManage(c, announcements, extra)
}

// announcementEditForm seeds the edit form from an existing announcement.
func announcementEditForm(announcement domain.Announcement) services.AnnouncementForm {
	form := services.AnnouncementForm{
		Title:       announcement.Title,
		Description: announcement.Body(),
		Location:    announcement.Location,
	}
	if announcement.Date != nil {
		form.Date = *announcement.Date
	}
	return form
}

// Create handles the new-announcement form submission.
func (h *OfficerAnnouncementsHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update handles the edit-announcement form submission.
func (h *OfficerAnnouncementsHandler) Update(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	return h.save(c, announcementID)
}

func (h *OfficerAnnouncementsHandler) save(c *fiber.Ctx, announcementID int) error {
	sess := middleware.SessionFrom(c)

	form, parseErr := parseAnnouncementForm(c)
	if parseErr == nil {
		parseErr = form.Validate()
	}
	if parseErr != nil {
		announcements, err := h.announcementsService.OfficerList(c.Context(), sess.Token)
		if err != nil {
			return err
		}
		return h.renderManage(c, announcements, fiber.Map{
			"FormError": "Please fill in all required fields.",
			"Form":      form,
			"FormID":    announcementID,
		})
	}

	image, closeImage, err := optionalUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	if _, err := h.announcementsService.Save(c.Context(), sess.Token, announcementID, form, image); err != nil {
		if nexus.IsUnauthorized(err) {
			return err
		}
		announcements, listErr := h.announcementsService.OfficerList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, announcements, fiber.Map{
			"FormError": saveFailedMessage,
			"Form":      form,
			"FormID":    announcementID,
		})
	}
	return c.Redirect("/officer-manage-announcements", fiber.StatusSeeOther)
}

// Delete removes an announcement.
func (h *OfficerAnnouncementsHandler) Delete(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.announcementsService.Delete(c.Context(), sess.Token, announcementID); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-announcements", fiber.StatusSeeOther)
}

func (h *OfficerAnnouncementsHandler) renderManage(c *fiber.Ctx, announcements []domain.Announcement, extra fiber.Map) error {
	data := fiber.Map{
		"Title":         "Manage Announcements",
		"Active":        "officer-manage-announcements",
		"Officer":       middleware.OfficerFrom(c),
		"Announcements": announcements,
	}
	for k, v := range extra {
		data[k] = v
	}
	return c.Render("pages/officer_announcements", data, "layouts/officer")
}

func parseAnnouncementForm(c *fiber.Ctx) (services.AnnouncementForm, error) {
	form := services.AnnouncementForm{
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
	return form, nil
}
