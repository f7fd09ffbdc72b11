package handlers

import (
	"strconv"
	"strings"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// OfficerMembershipHandler handles the officer dues management page
type OfficerMembershipHandler struct {
	membershipService *services.MembershipService
}

// NewOfficerMembershipHandler creates a new officer membership handler
func NewOfficerMembershipHandler(membershipService *services.MembershipService) *OfficerMembershipHandler {
	return &OfficerMembershipHandler{membershipService: membershipService}
}

// Manage renders the dues management page with all membership records and
// the requirement definitions.
func (h *OfficerMembershipHandler) Manage(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	memberships, err := h.membershipService.OfficerList(c.Context(), sess.Token)
	if err != nil {
		return err
	}
	requirements, err := h.membershipService.RequirementList(c.Context(), sess.Token)
	if err != nil {
		return err
	}

	extra := fiber.Map{}
	if editID := c.QueryInt("edit"); editID > 0 {
		for _, record := range memberships {
			if record.ID == editID {
				extra["Form"] = membershipEditForm(record)
				extra["FormID"] = record.ID
				break
			}
		}
	}
	return h.renderManage(c, memberships, requirements, extra)
}

// membershipEditForm seeds the edit form from an existing record.
func membershipEditForm(record domain.Membership) services.MembershipForm {
	form := services.MembershipForm{
		UserID:        record.UserID,
		PaymentStatus: record.PaymentStatus,
		Requirement:   record.Requirement,
	}
	if record.Amount != nil {
		form.Amount = *record.Amount
	}
	return form
}

// Create handles the new-record form submission.
func (h *OfficerMembershipHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update handles the edit-record form submission.
func (h *OfficerMembershipHandler) Update(c *fiber.Ctx) error {
	membershipID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	return h.save(c, membershipID)
}

func (h *OfficerMembershipHandler) save(c *fiber.Ctx, membershipID int) error {
	sess := middleware.SessionFrom(c)

	form := parseMembershipForm(c)
	if err := form.Validate(); err != nil {
		memberships, listErr := h.membershipService.OfficerList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		requirements, listErr := h.membershipService.RequirementList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, memberships, requirements, fiber.Map{
			"FormError": "Please fill in all required fields.",
			"Form":      form,
			"FormID":    membershipID,
		})
	}

	if _, err := h.membershipService.Save(c.Context(), sess.Token, membershipID, form); err != nil {
		if nexus.IsUnauthorized(err) {
			return err
		}
		memberships, listErr := h.membershipService.OfficerList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		requirements, listErr := h.membershipService.RequirementList(c.Context(), sess.Token)
		if listErr != nil {
			return listErr
		}
		return h.renderManage(c, memberships, requirements, fiber.Map{
			"FormError": saveFailedMessage,
			"Form":      form,
			"FormID":    membershipID,
		})
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// Delete removes a membership record.
func (h *OfficerMembershipHandler) Delete(c *fiber.Ctx) error {
	membershipID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.membershipService.Delete(c.Context(), sess.Token, membershipID); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// Verify approves or denies a submitted receipt.
func (h *OfficerMembershipHandler) Verify(c *fiber.Ctx) error {
	membershipID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	action := c.FormValue("action")

	sess := middleware.SessionFrom(c)
	if _, err := h.membershipService.Verify(c.Context(), sess.Token, membershipID, action); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// CreateRequirement adds a requirement definition.
func (h *OfficerMembershipHandler) CreateRequirement(c *fiber.Ctx) error {
	requirement, amount, err := parseRequirementForm(c)
	if err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.membershipService.CreateRequirement(c.Context(), sess.Token, requirement, amount); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// UpdateRequirement changes a requirement's amount.
func (h *OfficerMembershipHandler) UpdateRequirement(c *fiber.Ctx) error {
	requirement, amount, err := parseRequirementForm(c)
	if err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.membershipService.UpdateRequirement(c.Context(), sess.Token, requirement, amount); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// DeleteRequirement removes a requirement definition.
func (h *OfficerMembershipHandler) DeleteRequirement(c *fiber.Ctx) error {
	requirement := strings.TrimSpace(c.FormValue("requirement"))
	if requirement == "" {
		return fiber.ErrBadRequest
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.membershipService.DeleteRequirement(c.Context(), sess.Token, requirement); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

// UploadRequirementQR attaches a payment QR image to a requirement.
func (h *OfficerMembershipHandler) UploadRequirementQR(c *fiber.Ctx) error {
	requirement := strings.TrimSpace(c.FormValue("requirement"))
	method, ok := domain.ParsePaymentMethod(c.FormValue("payment_type"))
	if requirement == "" || !ok {
		return fiber.ErrBadRequest
	}

	file, closeFile, err := requiredUpload(c, "file")
	if err != nil {
		return err
	}
	defer closeFile()

	sess := middleware.SessionFrom(c)
	if err := h.membershipService.UploadRequirementQR(c.Context(), sess.Token, requirement, method, *file); err != nil {
		return err
	}
	return c.Redirect("/officer-manage-membership", fiber.StatusSeeOther)
}

func (h *OfficerMembershipHandler) renderManage(c *fiber.Ctx, memberships, requirements []domain.Membership, extra fiber.Map) error {
	data := fiber.Map{
		"Title":        "Manage Membership",
		"Active":       "officer-manage-membership",
		"Officer":      middleware.OfficerFrom(c),
		"Memberships":  memberships,
		"Requirements": requirements,
	}
	for k, v := range extra {
		data[k] = v
	}
	return c.Render("pages/officer_membership", data, "layouts/officer")
}

func parseMembershipForm(c *fiber.Ctx) services.MembershipForm {
	userID, _ := strconv.Atoi(c.FormValue("user_id"))
	amount, _ := strconv.ParseFloat(c.FormValue("amount"), 64)
	return services.MembershipForm{
		UserID:        userID,
		Amount:        amount,
		PaymentStatus: strings.TrimSpace(c.FormValue("payment_status")),
		Requirement:   strings.TrimSpace(c.FormValue("requirement")),
	}
}

func parseRequirementForm(c *fiber.Ctx) (string, float64, error) {
	requirement := strings.TrimSpace(c.FormValue("requirement"))
	if requirement == "" {
		return "", 0, fiber.ErrBadRequest
	}
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount < 0 {
		return "", 0, fiber.ErrBadRequest
	}
	return requirement, amount, nil
}
