package services

import (
	"context"
	"io"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"
)

// The remote API surface each service depends on, satisfied by
// *nexus.Client and by the fakes in the service tests.

// AuthAPI covers login for both principal kinds plus the profile fetch
// used to seed the session cache.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (string, error)
	Profile(ctx context.Context, token string) (*domain.Member, error)
	OfficerLogin(ctx context.Context, email, password string) (string, *domain.Officer, error)
}

// DashboardAPI covers the member dashboard page.
type DashboardAPI interface {
	Profile(ctx context.Context, token string) (*domain.Member, error)
	Clearance(ctx context.Context, token string, userID int) ([]domain.Clearance, error)
}

// EventsAPI covers the member events page and officer event management.
type EventsAPI interface {
	Profile(ctx context.Context, token string) (*domain.Member, error)
	Events(ctx context.Context, token string) ([]domain.Event, error)
	JoinEvent(ctx context.Context, token string, eventID int) error
	LeaveEvent(ctx context.Context, token string, eventID int) error
	EventParticipants(ctx context.Context, token string, eventID int) ([]domain.Participant, error)
	OfficerEvents(ctx context.Context, token string) ([]domain.Event, error)
	CreateEvent(ctx context.Context, token string, params nexus.EventParams, image *nexus.File) error
	UpdateEvent(ctx context.Context, token string, eventID int, params nexus.EventParams, image *nexus.File) error
	DeleteEvent(ctx context.Context, token string, eventID int) error
}

// AnnouncementsAPI covers the announcements page and its management.
type AnnouncementsAPI interface {
	Profile(ctx context.Context, token string) (*domain.Member, error)
	Announcements(ctx context.Context, token string) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, token string, params nexus.AnnouncementParams, image *nexus.File) error
	UpdateAnnouncement(ctx context.Context, token string, announcementID int, params nexus.AnnouncementParams, image *nexus.File) error
	DeleteAnnouncement(ctx context.Context, token string, announcementID int) error
}

// MembershipAPI covers the member dues page and officer membership
// management, including requirements and payment QR codes.
type MembershipAPI interface {
	Profile(ctx context.Context, token string) (*domain.Member, error)
	Memberships(ctx context.Context, token string, userID int) ([]domain.Membership, error)
	QRCode(ctx context.Context, token string, method domain.PaymentMethod) (string, error)
	UploadReceiptFile(ctx context.Context, token, filename string, content io.Reader) (string, error)
	UpdateReceipt(ctx context.Context, token string, membershipID int, method domain.PaymentMethod, receiptPath string) error
	OfficerMemberships(ctx context.Context, token string) ([]domain.Membership, error)
	CreateMembership(ctx context.Context, token string, params nexus.MembershipParams) error
	UpdateMembership(ctx context.Context, token string, membershipID int, params nexus.MembershipParams) error
	DeleteMembership(ctx context.Context, token string, membershipID int) error
	VerifyMembership(ctx context.Context, token string, membershipID int, action string) error
	Requirements(ctx context.Context, token string) ([]domain.Membership, error)
	CreateRequirement(ctx context.Context, token, requirement string, amount float64) error
	UpdateRequirement(ctx context.Context, token, requirement string, amount float64) error
	DeleteRequirement(ctx context.Context, token, requirement string) error
	UploadRequirementQRCode(ctx context.Context, token, requirement string, method domain.PaymentMethod, file nexus.File) error
}

// OfficerDirectoryAPI covers the admin officer management page.
type OfficerDirectoryAPI interface {
	Officers(ctx context.Context, token string) ([]domain.Officer, error)
	CreateOfficer(ctx context.Context, token string, params nexus.OfficerParams) error
	UpdateOfficer(ctx context.Context, token string, officerID int, params nexus.OfficerParams) error
	DeleteOfficer(ctx context.Context, token string, officerID int) error
	ImportOfficers(ctx context.Context, token string, file nexus.File) error
}

// AnalyticsAPI covers the officer analytics dashboard.
type AnalyticsAPI interface {
	DashboardAnalytics(ctx context.Context, token string) (*domain.DashboardAnalytics, error)
}

// ChatAPI covers the support chat bot.
type ChatAPI interface {
	Chat(ctx context.Context, message string) (string, error)
}
