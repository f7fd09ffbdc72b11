package handlers

import (
	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the member dashboard and profile pages
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard renders the member dashboard with the clearance progress.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	cached := middleware.MemberFrom(c)

	page, err := h.dashboardService.Load(c.Context(), sess.Token, cached.ID)
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard", fiber.Map{
		"Title":        "Dashboard",
		"Active":       "dashboard",
		"Profile":      page.Profile,
		"Clearance":    page.Clearance,
		"ClearanceErr": page.ClearanceErr != nil,
	}, "layouts/member")
}

// Profile renders the member profile page.
func (h *DashboardHandler) Profile(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	cached := middleware.MemberFrom(c)

	page, err := h.dashboardService.Load(c.Context(), sess.Token, cached.ID)
	if err != nil {
		return err
	}

	return c.Render("pages/profile", fiber.Map{
		"Title":   "My Profile",
		"Active":  "profile",
		"Profile": page.Profile,
	}, "layouts/member")
}
