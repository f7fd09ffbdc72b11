package nexus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"specs-nexus-web/internal/core/domain"
)

// Login authenticates a member with an email or student number and returns
// the bearer token issued by the API.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, error) {
	payload := map[string]string{
		"email_or_student_number": identifier,
		"password":                password,
	}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", payload, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Profile returns the currently authenticated member's profile.
func (c *Client) Profile(ctx context.Context, token string) (*domain.Member, error) {
	var member domain.Member
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", token, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Clearance returns the clearance checklist rows for a member.
func (c *Client) Clearance(ctx context.Context, token string, userID int) ([]domain.Clearance, error) {
	var rows []domain.Clearance
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/clearance/%d", userID), token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Events lists all active events, with the caller's participation flag set.
func (c *Client) Events(ctx context.Context, token string) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.doJSON(ctx, http.MethodGet, "/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// JoinEvent registers the member for an event.
func (c *Client) JoinEvent(ctx context.Context, token string, eventID int) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/events/join/%d", eventID), token, struct{}{}, nil)
}

// LeaveEvent cancels the member's participation in an event.
func (c *Client) LeaveEvent(ctx context.Context, token string, eventID int) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/events/leave/%d", eventID), token, struct{}{}, nil)
}

// EventParticipants lists the members registered for an event.
func (c *Client) EventParticipants(ctx context.Context, token string, eventID int) ([]domain.Participant, error) {
	var participants []domain.Participant
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/events/%d/participants", eventID), token, nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// Announcements lists all active announcements.
func (c *Client) Announcements(ctx context.Context, token string) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	if err := c.doJSON(ctx, http.MethodGet, "/announcements", token, nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// Memberships returns the membership dues records for a member.
func (c *Client) Memberships(ctx context.Context, token string, userID int) ([]domain.Membership, error) {
	var memberships []domain.Membership
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/membership/memberships/%d", userID), token, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// QRCode returns the payment QR code URL for the given payment method.
// The API historically returned container-internal "/app/static" paths;
// those are rewritten to the public "/static" prefix.
func (c *Client) QRCode(ctx context.Context, token string, method domain.PaymentMethod) (string, error) {
	var out struct {
		QRCodeURL string `json:"qr_code_url"`
	}
	path := "/membership/qrcode?payment_type=" + url.QueryEscape(string(method))
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return "", err
	}
	return strings.Replace(out.QRCodeURL, "/app/static", "/static", 1), nil
}

// UploadReceiptFile uploads a payment receipt image and returns the stored
// file path.
func (c *Client) UploadReceiptFile(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	var out struct {
		FilePath string `json:"file_path"`
	}
	file := &File{Field: "file", Name: filename, Content: content}
	if err := c.doMultipart(ctx, http.MethodPost, "/membership/upload_receipt_file", token, nil, file, &out); err != nil {
		return "", err
	}
	return out.FilePath, nil
}

// UpdateReceipt attaches an uploaded receipt to a membership record and
// moves it to the verifying state.
func (c *Client) UpdateReceipt(ctx context.Context, token string, membershipID int, method domain.PaymentMethod, receiptPath string) error {
	payload := map[string]any{
		"membership_id": membershipID,
		"payment_type":  string(method),
		"receipt_path":  receiptPath,
	}
	return c.doJSON(ctx, http.MethodPut, "/membership/update_receipt", token, payload, nil)
}

// Chat sends a free-text message to the support bot and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/", "", map[string]string{"message": message}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
