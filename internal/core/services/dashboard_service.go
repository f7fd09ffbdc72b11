package services

import (
	"context"
	"sync"

	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// DashboardService loads the member dashboard: the fresh profile and the
// clearance checklist.
type DashboardService struct {
	api DashboardAPI
	log *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api DashboardAPI, log *zap.Logger) *DashboardService {
	return &DashboardService{api: api, log: log}
}

// DashboardPage is the dashboard view data. Profile and clearance are
// fetched independently; a clearance failure renders as an in-page error
// while the profile still shows.
type DashboardPage struct {
	Profile      *domain.Member
	Clearance    []domain.Clearance
	ClearanceErr error
}

// Load fetches the profile and the clearance list concurrently, using the
// cached user id for the clearance call so neither fetch waits on the
// other. Both are bound to ctx: navigating away cancels them. A profile
// failure is terminal for the page.
func (s *DashboardService) Load(ctx context.Context, token string, cachedUserID int) (*DashboardPage, error) {
	var (
		page       DashboardPage
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
		page.Clearance, page.ClearanceErr = s.api.Clearance(ctx, token, cachedUserID)
	}()
	wg.Wait()

	if profileErr != nil {
		s.log.Warn("profile fetch failed", zap.Error(profileErr))
		return nil, profileErr
	}
	if page.ClearanceErr != nil {
		s.log.Warn("clearance fetch failed", zap.Int("user_id", cachedUserID), zap.Error(page.ClearanceErr))
	}
	return &page, nil
}
