package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Member represents the profile of a logged-in student member.
// The record is owned by the remote API; the client only caches it.
type Member struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	FullName      string `json:"full_name"`
	Year          string `json:"year"`
	Block         string `json:"block"`
	IsAdmin       bool   `json:"is_admin"`
}

// Officer represents an officer account.
type Officer struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	FullName      string `json:"full_name"`
	Year          string `json:"year"`
	Block         string `json:"block"`
	Position      string `json:"position"`
}

// IsAdmin reports whether the officer's position unlocks officer
// management. Position is compared case-insensitively; this is the only
// role-based branch in the system.
func (o Officer) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(o.Position), "admin")
}

// Event represents an organization event.
type Event struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Date              time.Time  `json:"date"`
	Location          string     `json:"location"`
	ImageURL          string     `json:"image_url"`
	ParticipantCount  int        `json:"participant_count"`
	IsParticipant     bool       `json:"is_participant"`
	RegistrationStart *time.Time `json:"registration_start"`
	RegistrationEnd   *time.Time `json:"registration_end"`
}

// RegistrationStatus derives the registration window state at the given
// instant. A missing bound leaves that side of the window open.
func (e Event) RegistrationStatus(now time.Time) RegistrationStatus {
	if e.RegistrationStart != nil && now.Before(*e.RegistrationStart) {
		return RegistrationNotStarted
	}
	if e.RegistrationEnd != nil && now.After(*e.RegistrationEnd) {
		return RegistrationClosed
	}
	return RegistrationOpen
}

// Upcoming reports whether the event date is strictly after now.
func (e Event) Upcoming(now time.Time) bool {
	return e.Date.After(now)
}

// Announcement represents an organization announcement.
type Announcement struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content,omitempty"`
	ImageURL    string     `json:"image_url"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
	Featured    bool       `json:"featured"`
}

// Body returns the announcement text, preferring content over description.
func (a Announcement) Body() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

// MemberInfo is the short member projection embedded in membership records.
type MemberInfo struct {
	FullName string `json:"full_name"`
	Year     string `json:"year"`
	Block    string `json:"block"`
}

// Membership represents a membership dues record (a clearance line with
// payment tracking).
type Membership struct {
	ID            int         `json:"id"`
	UserID        int         `json:"user_id"`
	Requirement   string      `json:"requirement"`
	Amount        *float64    `json:"amount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod string      `json:"payment_method"`
	ReceiptPath   string      `json:"receipt_path"`
	QRCodeURL     string      `json:"qr_code_url"`
	Archived      bool        `json:"archived"`
	User          *MemberInfo `json:"user"`
}

// Paid reports whether the record's payment status normalizes to Paid.
func (m Membership) Paid() bool {
	return ParsePaymentStatus(m.PaymentStatus) == PaymentPaid
}

// Clearance is one requirement/status row of a member's clearance checklist.
type Clearance struct {
	ID          int    `json:"id"`
	Requirement string `json:"requirement"`
	Status      string `json:"status"`
}

// Participant is a member registered for an event.
type Participant struct {
	ID            int    `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Year          string `json:"year"`
	Block         string `json:"block"`
}

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one line of a support-chat conversation. Messages live
// only in a transient in-memory sequence; nothing is persisted.
type ChatMessage struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}

// DashboardAnalytics carries the nested aggregates from the analytics
// endpoint. The payload is rendered as-is; the client computes nothing.
type DashboardAnalytics struct {
	MembershipInsights MembershipInsights `json:"membershipInsights"`
	PaymentAnalytics   PaymentAnalytics   `json:"paymentAnalytics"`
	EventsEngagement   EventsEngagement   `json:"eventsEngagement"`
	ClearanceTracking  ClearanceTracking  `json:"clearanceTracking"`
}

// MembershipInsights summarizes paid/active/inactive member counts.
type MembershipInsights struct {
	TotalPaidMembers     int            `json:"totalPaidMembers"`
	ActiveMembers        int            `json:"activeMembers"`
	InactiveMembers      int            `json:"inactiveMembers"`
	MembersByRequirement map[string]int `json:"membersByRequirement"`
}

// PaymentMethodCount pairs a payment method with its usage count.
type PaymentMethodCount struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

// PaymentAnalytics summarizes payment status distribution.
type PaymentAnalytics struct {
	ByRequirementAndYear    map[string]map[string]map[string]int `json:"byRequirementAndYear"`
	NotPaid                 int                                  `json:"notPaid"`
	Verifying               int                                  `json:"verifying"`
	Paid                    int                                  `json:"paid"`
	PreferredPaymentMethods []PaymentMethodCount                 `json:"preferredPaymentMethods"`
}

// EventEngagement is one event's participation summary.
type EventEngagement struct {
	Title             string  `json:"title"`
	ParticipantCount  int     `json:"participant_count"`
	ParticipationRate float64 `json:"participation_rate"`
}

// EventsEngagement summarizes event participation.
type EventsEngagement struct {
	Events          []EventEngagement            `json:"events"`
	PopularEvents   []EventEngagement            `json:"popularEvents"`
	BreakdownByYear map[string][]EventEngagement `json:"breakdownByYear"`
}

// ClearanceTracking summarizes clearance completion.
type ClearanceTracking struct {
	ByRequirement    map[string]map[string]int `json:"byRequirement"`
	ComplianceByYear map[string]map[string]int `json:"complianceByYear"`
}

// RawProfile marshals a profile for caching inside a session slot.
func RawProfile(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
