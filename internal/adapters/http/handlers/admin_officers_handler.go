package handlers

import (
	"strings"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// AdminOfficersHandler handles the admin-only officer directory page
type AdminOfficersHandler struct {
	directoryService *services.OfficerDirectoryService
}

// NewAdminOfficersHandler creates a new admin officers handler
func NewAdminOfficersHandler(directoryService *services.OfficerDirectoryService) *AdminOfficersHandler {
	return &AdminOfficersHandler{directoryService: directoryService}
}

// Manage renders the officer directory page. With ?edit=<id> the form is
// seeded from that officer and posts to the update route.
func (h *AdminOfficersHandler) Manage(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	officers, err := h.directoryService.List(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	extra := fiber.Map{}
	if editID := c.QueryInt("edit"); editID > 0 {
		for _, officer := range officers {
			if officer.ID == editID {
				extra["Form"] = officerEditForm(officer)
				extra["FormID"] = officer.ID
				break
			}
		}
	}
	return h.renderManage(c, officers, extra)
}

// officerEditForm seeds the edit form from an existing account. The
// password field starts empty; updates always set a fresh one.
func officerEditForm(officer domain.Officer) services.OfficerForm {
	return services.OfficerForm{
		FullName:      officer.FullName,
		Email:         officer.Email,
		StudentNumber: officer.StudentNumber,
		Year:          officer.Year,
		Block:         officer.Block,
		Position:      officer.Position,
	}
}

// Create handles the new-officer form submission.
func (h *AdminOfficersHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update handles the edit-officer form submission.
func (h *AdminOfficersHandler) Update(c *fiber.Ctx) error {
	officerID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	return h.save(c, officerID)
}

func (h *AdminOfficersHandler) save(c *fiber.Ctx, officerID int) error {
	sess := middleware.SessionFrom(c)

	form := parseOfficerForm(c)
	if err := form.Validate(); err != nil {
		officers, listErr := h.directoryService.List(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, officers, fiber.Map{
			"FormError": "Please fill in all required fields with a valid email.",
			"Form":      form,
			"FormID":    officerID,
		})
	}

	if _, err := h.directoryService.Save(c.Context(), sess.Token, officerID, form); err != nil {
		if nexus.IsUnauthorized(err) {
			return err
		}
		officers, listErr := h.directoryService.List(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, officers, fiber.Map{
			"FormError": saveFailedMessage,
			"Form":      form,
			"FormID":    officerID,
		})
	}
	return c.Redirect("/admin-manage-officers", fiber.StatusSeeOther)
}

// Delete removes an officer account.
func (h *AdminOfficersHandler) Delete(c *fiber.Ctx) error {
	officerID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.directoryService.Delete(c.Context(), sess.Token, officerID); err != nil {
		return err
	}
	return c.Redirect("/admin-manage-officers", fiber.StatusSeeOther)
}

// Import bulk-creates officer accounts from an uploaded spreadsheet.
func (h *AdminOfficersHandler) Import(c *fiber.Ctx) error {
	file, closeFile, err := requiredUpload(c, "file")
	if err != nil {
		return err
	}
	defer closeFile()

	sess := middleware.SessionFrom(c)
	if _, err := h.directoryService.Import(c.Context(), sess.Token, *file); err != nil {
		return err
	}
	return c.Redirect("/admin-manage-officers", fiber.StatusSeeOther)
}

func (h *AdminOfficersHandler) renderManage(c *fiber.Ctx, officers []domain.Officer, extra fiber.Map) error {
	data := fiber.Map{
		"Title":    "Manage Officers",
		"Active":   "admin-manage-officers",
		"Officer":  middleware.OfficerFrom(c),
		"Officers": officers,
	}
	for k, v := range extra {
		data[k] = v
	}
	return c.Render("pages/admin_officers", data, "layouts/officer")
}

func parseOfficerForm(c *fiber.Ctx) services.OfficerForm {
	return services.OfficerForm{
		FullName:      strings.TrimSpace(c.FormValue("full_name")),
		Email:         strings.TrimSpace(c.FormValue("email")),
		Password:      c.FormValue("password"),
		StudentNumber: strings.TrimSpace(c.FormValue("student_number")),
		Year:          strings.TrimSpace(c.FormValue("year")),
		Block:         strings.TrimSpace(c.FormValue("block")),
		Position:      strings.TrimSpace(c.FormValue("position")),
	}
}
