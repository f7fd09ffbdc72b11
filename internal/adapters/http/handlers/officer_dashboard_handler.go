package handlers

import (
	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// OfficerDashboardHandler handles the officer analytics dashboard
type OfficerDashboardHandler struct {
	analyticsService *services.AnalyticsService
}

// NewOfficerDashboardHandler creates a new officer dashboard handler
func NewOfficerDashboardHandler(analyticsService *services.AnalyticsService) *OfficerDashboardHandler {
	return &OfficerDashboardHandler{analyticsService: analyticsService}
}

// Dashboard renders the analytics dashboard. A failed aggregate fetch
// renders in-page so the navigation stays usable.
func (h *OfficerDashboardHandler) Dashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	officer := middleware.OfficerFrom(c)

	analytics, err := h.analyticsService.Dashboard(c.Context(), sess.Token)
	if nexus.IsUnauthorized(err) {
		return err
	}

	return c.Render("pages/officer_dashboard", fiber.Map{
		"Title":        "Officer Dashboard",
		"Active":       "officer-dashboard",
		"Officer":      officer,
		"Analytics":    analytics,
		"AnalyticsErr": err != nil,
	}, "layouts/officer")
}
