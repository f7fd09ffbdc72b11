package handlers

import (
	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles the member dues pages
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Page renders the membership page with pending and settled dues.
func (h *MembershipHandler) Page(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	cached := middleware.MemberFrom(c)

	page, err := h.membershipService.Load(c.Context(), sess.Token, cached.ID)
	if err != nil {
		return err
	}

	return c.Render("pages/membership", fiber.Map{
		"Title":          "Membership",
		"Active":         "membership",
		"Profile":        page.Profile,
		"Pending":        page.Pending,
		"Paid":           page.Paid,
		"MembershipsErr": page.MembershipsErr != nil,
	}, "layouts/member")
}

// QRCode returns the payment QR image URL for the chosen method. The
// payment modal fetches this before showing the upload step.
func (h *MembershipHandler) QRCode(c *fiber.Ctx) error {
	method, ok := domain.ParsePaymentMethod(c.Query("payment_type"))
	if !ok {
		return response.BadRequest(c, "Unknown payment method")
	}

	sess := middleware.SessionFrom(c)
	url, err := h.membershipService.PaymentQRCode(c.Context(), sess.Token, method)
	if err != nil {
		return response.InternalServerError(c, "Failed to load QR code")
	}
	return response.Success(c, "QR code ready", fiber.Map{"qr_url": url})
}

// SubmitReceipt uploads a payment receipt and attaches it to the
// membership record.
func (h *MembershipHandler) SubmitReceipt(c *fiber.Ctx) error {
	membershipID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	method, ok := domain.ParsePaymentMethod(c.FormValue("payment_type"))
	if !ok {
		return fiber.ErrBadRequest
	}
	header, err := c.FormFile("receipt")
	if err != nil {
		return fiber.ErrBadRequest
	}
	file, err := header.Open()
	if err != nil {
		return fiber.ErrBadRequest
	}
	defer file.Close()

	sess := middleware.SessionFrom(c)
	cached := middleware.MemberFrom(c)
	if _, err := h.membershipService.SubmitReceipt(c.Context(), sess.Token, membershipID, cached.ID, method, header.Filename, file); err != nil {
		return err
	}
	return c.Redirect("/membership", fiber.StatusSeeOther)
}
