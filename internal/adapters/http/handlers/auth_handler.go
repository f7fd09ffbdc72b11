package handlers

import (
	"strings"

	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the member and officer login pages
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: store}
}

// LoginPage renders the member login form. A visitor who already holds a
// member session goes straight to the dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if _, ok := h.store.LoadMember(c); ok {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("pages/login", fiber.Map{
		"Title": "Member Login",
	}, "layouts/bare")
}

// Login handles the member login form submission.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	identifier := strings.TrimSpace(c.FormValue("identifier"))
	password := c.FormValue("password")
	if identifier == "" || password == "" {
		return h.loginFailed(c, identifier, "Email or student number and password are required.")
	}

	result, err := h.authService.LoginMember(c.Context(), identifier, password)
	if err != nil {
		return h.loginFailed(c, identifier, "Invalid credentials. Please try again.")
	}

	if err := h.store.SaveMember(c, result.Token, domain.RawProfile(result.Profile)); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, identifier, message string) error {
	return c.Status(fiber.StatusUnauthorized).Render("pages/login", fiber.Map{
		"Title":      "Member Login",
		"FormError":  message,
		"Identifier": identifier,
	}, "layouts/bare")
}

// Logout destroys the member session. The officer session, if any, stays.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.ClearMember(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// OfficerLoginPage renders the officer login form.
func (h *AuthHandler) OfficerLoginPage(c *fiber.Ctx) error {
	if _, ok := h.store.LoadOfficer(c); ok {
		return c.Redirect("/officer-dashboard", fiber.StatusSeeOther)
	}
	return c.Render("pages/officer_login", fiber.Map{
		"Title": "Officer Login",
	}, "layouts/bare")
}

// OfficerLogin handles the officer login form submission.
func (h *AuthHandler) OfficerLogin(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return h.officerLoginFailed(c, email, "Email and password are required.")
	}

	result, err := h.authService.LoginOfficer(c.Context(), email, password)
	if err != nil {
		return h.officerLoginFailed(c, email, "Invalid credentials. Please try again.")
	}

	if err := h.store.SaveOfficer(c, result.Token, domain.RawProfile(result.Profile)); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/officer-dashboard", fiber.StatusSeeOther)
}

func (h *AuthHandler) officerLoginFailed(c *fiber.Ctx, email, message string) error {
	return c.Status(fiber.StatusUnauthorized).Render("pages/officer_login", fiber.Map{
		"Title":     "Officer Login",
		"FormError": message,
		"Email":     email,
	}, "layouts/bare")
}

// OfficerLogout destroys the officer session.
func (h *AuthHandler) OfficerLogout(c *fiber.Ctx) error {
	h.store.ClearOfficer(c)
	return c.Redirect("/officer-login", fiber.StatusSeeOther)
}
