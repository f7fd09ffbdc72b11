package services

import (
	"context"
	"sync"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// AnnouncementsService loads the announcements page and performs officer
// announcement management.
type AnnouncementsService struct {
	api AnnouncementsAPI
	log *zap.Logger
}

// NewAnnouncementsService creates a new announcements service
func NewAnnouncementsService(api AnnouncementsAPI, log *zap.Logger) *AnnouncementsService {
	return &AnnouncementsService{api: api, log: log}
}

// AnnouncementsPage is the announcements view data.
type AnnouncementsPage struct {
	Profile          *domain.Member
	Announcements    []domain.Announcement
	AnnouncementsErr error
}

// Load fetches the profile and the announcement list concurrently.
func (s *AnnouncementsService) Load(ctx context.Context, token string) (*AnnouncementsPage, error) {
	var (
		page       AnnouncementsPage
		profileErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		page.Profile, profileErr = s.api.Profile(ctx, token)
	}()
	go func() {
		defer wg.Done()
		page.Announcements, page.AnnouncementsErr = s.api.Announcements(ctx, token)
	}()
	wg.Wait()

	if profileErr != nil {
		s.log.Warn("profile fetch failed", zap.Error(profileErr))
		return nil, profileErr
	}
	if page.AnnouncementsErr != nil {
		s.log.Warn("announcements fetch failed", zap.Error(page.AnnouncementsErr))
	}
	return &page, nil
}

// OfficerList fetches the management view of all active announcements.
// The API serves officers from the same list endpoint.
func (s *AnnouncementsService) OfficerList(ctx context.Context, token string) ([]domain.Announcement, error) {
	return s.api.Announcements(ctx, token)
}

// Save validates the announcement form and creates or updates the
// announcement, then refetches the list.
func (s *AnnouncementsService) Save(ctx context.Context, token string, announcementID int, form AnnouncementForm, image *nexus.File) ([]domain.Announcement, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var err error
	if announcementID > 0 {
		err = s.api.UpdateAnnouncement(ctx, token, announcementID, form.params(), image)
	} else {
		err = s.api.CreateAnnouncement(ctx, token, form.params(), image)
	}
	if err != nil {
		s.log.Warn("save announcement failed", zap.Int("announcement_id", announcementID), zap.Error(err))
		return nil, err
	}
	return s.api.Announcements(ctx, token)
}

// Delete archives an announcement, then refetches the list.
func (s *AnnouncementsService) Delete(ctx context.Context, token string, announcementID int) ([]domain.Announcement, error) {
	if err := s.api.DeleteAnnouncement(ctx, token, announcementID); err != nil {
		s.log.Warn("delete announcement failed", zap.Int("announcement_id", announcementID), zap.Error(err))
		return nil, err
	}
	return s.api.Announcements(ctx, token)
}
