package services

import (
	"context"

	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// AnalyticsService loads the officer analytics dashboard. The aggregates
// come back pre-computed; the client only renders them.
type AnalyticsService struct {
	api AnalyticsAPI
	log *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(api AnalyticsAPI, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{api: api, log: log}
}

// Dashboard fetches the analytics aggregates.
func (s *AnalyticsService) Dashboard(ctx context.Context, token string) (*domain.DashboardAnalytics, error) {
	analytics, err := s.api.DashboardAnalytics(ctx, token)
	if err != nil {
		s.log.Warn("analytics fetch failed", zap.Error(err))
		return nil, err
	}
	return analytics, nil
}
