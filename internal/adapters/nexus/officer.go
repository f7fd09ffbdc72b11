package nexus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"specs-nexus-web/internal/core/domain"
)

// EventParams are the fields of the officer event create/update form.
type EventParams struct {
	Title             string
	Description       string
	Date              time.Time
	Location          string
	RegistrationStart *time.Time
	RegistrationEnd   *time.Time
}

func (p EventParams) fields() map[string]string {
	fields := map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"date":        p.Date.UTC().Format(time.RFC3339),
		"location":    p.Location,
	}
	if p.RegistrationStart != nil {
		fields["registration_start"] = p.RegistrationStart.UTC().Format(time.RFC3339)
	}
	if p.RegistrationEnd != nil {
		fields["registration_end"] = p.RegistrationEnd.UTC().Format(time.RFC3339)
	}
	return fields
}

// AnnouncementParams are the fields of the officer announcement form.
type AnnouncementParams struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

func (p AnnouncementParams) fields() map[string]string {
	return map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"date":        p.Date.UTC().Format(time.RFC3339),
		"location":    p.Location,
	}
}

// MembershipParams are the fields of the officer membership form.
type MembershipParams struct {
	UserID        int
	Amount        float64
	PaymentStatus string
	Requirement   string
}

func (p MembershipParams) fields() map[string]string {
	return map[string]string{
		"user_id":        strconv.Itoa(p.UserID),
		"amount":         strconv.FormatFloat(p.Amount, 'f', 2, 64),
		"payment_status": p.PaymentStatus,
		"requirement":    p.Requirement,
	}
}

// OfficerParams are the fields of the officer account form.
type OfficerParams struct {
	FullName      string
	Email         string
	Password      string
	StudentNumber string
	Year          string
	Block         string
	Position      string
}

func (p OfficerParams) fields() map[string]string {
	return map[string]string{
		"full_name":      p.FullName,
		"email":          p.Email,
		"password":       p.Password,
		"student_number": p.StudentNumber,
		"year":           p.Year,
		"block":          p.Block,
		"position":       p.Position,
	}
}

// OfficerLogin authenticates an officer and returns the bearer token plus
// the officer profile embedded in the response.
func (c *Client) OfficerLogin(ctx context.Context, email, password string) (string, *domain.Officer, error) {
	payload := map[string]string{"email": email, "password": password}
	var out struct {
		AccessToken string         `json:"access_token"`
		TokenType   string         `json:"token_type"`
		Officer     domain.Officer `json:"officer"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/officers/login", "", payload, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.Officer, nil
}

// OfficerEvents lists all active events for management.
func (c *Client) OfficerEvents(ctx context.Context, token string) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.doJSON(ctx, http.MethodGet, "/events/officer/list", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event, optionally uploading a banner image.
func (c *Client) CreateEvent(ctx context.Context, token string, params EventParams, image *File) error {
	return c.doMultipart(ctx, http.MethodPost, "/events/officer/create", token, params.fields(), image, nil)
}

// UpdateEvent updates an existing event.
func (c *Client) UpdateEvent(ctx context.Context, token string, eventID int, params EventParams, image *File) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/events/officer/update/%d", eventID), token, params.fields(), image, nil)
}

// DeleteEvent archives an event.
func (c *Client) DeleteEvent(ctx context.Context, token string, eventID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/events/officer/delete/%d", eventID), token, nil, nil)
}

// CreateAnnouncement creates an announcement, optionally with an image.
func (c *Client) CreateAnnouncement(ctx context.Context, token string, params AnnouncementParams, image *File) error {
	return c.doMultipart(ctx, http.MethodPost, "/announcements/officer/create", token, params.fields(), image, nil)
}

// UpdateAnnouncement updates an existing announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, token string, announcementID int, params AnnouncementParams, image *File) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/announcements/officer/update/%d", announcementID), token, params.fields(), image, nil)
}

// DeleteAnnouncement archives an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, token string, announcementID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/announcements/officer/delete/%d", announcementID), token, nil, nil)
}

// OfficerMemberships lists all active membership records.
func (c *Client) OfficerMemberships(ctx context.Context, token string) ([]domain.Membership, error) {
	var memberships []domain.Membership
	if err := c.doJSON(ctx, http.MethodGet, "/membership/officer/list", token, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// CreateMembership creates a membership record for a user.
func (c *Client) CreateMembership(ctx context.Context, token string, params MembershipParams) error {
	return c.doMultipart(ctx, http.MethodPost, "/membership/officer/create", token, params.fields(), nil, nil)
}

// UpdateMembership updates a membership record.
func (c *Client) UpdateMembership(ctx context.Context, token string, membershipID int, params MembershipParams) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/membership/officer/update/%d", membershipID), token, params.fields(), nil, nil)
}

// DeleteMembership archives a membership record.
func (c *Client) DeleteMembership(ctx context.Context, token string, membershipID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/membership/officer/delete/%d", membershipID), token, nil, nil)
}

// VerifyMembership approves or denies a membership payment. Action must be
// "approve" or "deny"; the API rejects anything else.
func (c *Client) VerifyMembership(ctx context.Context, token string, membershipID int, action string) error {
	payload := map[string]string{"action": action}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/membership/officer/verify/%d", membershipID), token, payload, nil)
}

// Requirements lists the distinct membership requirements.
func (c *Client) Requirements(ctx context.Context, token string) ([]domain.Membership, error) {
	var requirements []domain.Membership
	if err := c.doJSON(ctx, http.MethodGet, "/membership/officer/requirements", token, nil, &requirements); err != nil {
		return nil, err
	}
	return requirements, nil
}

// CreateRequirement creates a membership requirement for every user that
// does not already have it.
func (c *Client) CreateRequirement(ctx context.Context, token, requirement string, amount float64) error {
	fields := map[string]string{
		"requirement": requirement,
		"amount":      strconv.FormatFloat(amount, 'f', 2, 64),
	}
	return c.doMultipart(ctx, http.MethodPost, "/membership/officer/requirement/create", token, fields, nil, nil)
}

// UpdateRequirement updates the amount for every record of a requirement.
func (c *Client) UpdateRequirement(ctx context.Context, token, requirement string, amount float64) error {
	payload := map[string]any{"amount": amount}
	path := "/membership/officer/requirements/" + url.PathEscape(requirement)
	return c.doJSON(ctx, http.MethodPut, path, token, payload, nil)
}

// DeleteRequirement archives every record of a requirement.
func (c *Client) DeleteRequirement(ctx context.Context, token, requirement string) error {
	path := "/membership/officer/requirements/" + url.PathEscape(requirement)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

// UploadRequirementQRCode uploads a payment QR code image for a
// requirement and payment method.
func (c *Client) UploadRequirementQRCode(ctx context.Context, token, requirement string, method domain.PaymentMethod, file File) error {
	path := fmt.Sprintf("/membership/officer/requirement/upload_qrcode?requirement=%s&payment_type=%s",
		url.QueryEscape(requirement), url.QueryEscape(string(method)))
	return c.doMultipart(ctx, http.MethodPost, path, token, nil, &file, nil)
}

// Officers lists all active officer accounts.
func (c *Client) Officers(ctx context.Context, token string) ([]domain.Officer, error) {
	var officers []domain.Officer
	if err := c.doJSON(ctx, http.MethodGet, "/officers/", token, nil, &officers); err != nil {
		return nil, err
	}
	return officers, nil
}

// CreateOfficer creates an officer account.
func (c *Client) CreateOfficer(ctx context.Context, token string, params OfficerParams) error {
	return c.doMultipart(ctx, http.MethodPost, "/officers/", token, params.fields(), nil, nil)
}

// UpdateOfficer updates an officer account.
func (c *Client) UpdateOfficer(ctx context.Context, token string, officerID int, params OfficerParams) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/officers/%d", officerID), token, params.fields(), nil, nil)
}

// DeleteOfficer archives an officer account.
func (c *Client) DeleteOfficer(ctx context.Context, token string, officerID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/officers/%d", officerID), token, nil, nil)
}

// ImportOfficers uploads a spreadsheet of officer records.
func (c *Client) ImportOfficers(ctx context.Context, token string, file File) error {
	return c.doMultipart(ctx, http.MethodPost, "/officers/import", token, nil, &file, nil)
}

// DashboardAnalytics fetches the officer analytics aggregates.
func (c *Client) DashboardAnalytics(ctx context.Context, token string) (*domain.DashboardAnalytics, error) {
	var analytics domain.DashboardAnalytics
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/dashboard", token, nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
