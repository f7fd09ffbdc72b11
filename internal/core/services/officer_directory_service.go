package services

import (
	"context"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// OfficerDirectoryService manages officer accounts, admin-only.
type OfficerDirectoryService struct {
	api OfficerDirectoryAPI
	log *zap.Logger
}

// NewOfficerDirectoryService creates a new officer directory service
func NewOfficerDirectoryService(api OfficerDirectoryAPI, log *zap.Logger) *OfficerDirectoryService {
	return &OfficerDirectoryService{api: api, log: log}
}

// List fetches all active officer accounts.
func (s *OfficerDirectoryService) List(ctx context.Context, token string) ([]domain.Officer, error) {
	return s.api.Officers(ctx, token)
}

// Save validates the officer form and creates or updates the account,
// then refetches the directory.
func (s *OfficerDirectoryService) Save(ctx context.Context, token string, officerID int, form OfficerForm) ([]domain.Officer, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var err error
	if officerID > 0 {
		err = s.api.UpdateOfficer(ctx, token, officerID, form.params())
	} else {
		err = s.api.CreateOfficer(ctx, token, form.params())
	}
	if err != nil {
		s.log.Warn("save officer failed", zap.Int("officer_id", officerID), zap.Error(err))
		return nil, err
	}
	return s.api.Officers(ctx, token)
}

// Delete archives an officer account, then refetches the directory.
func (s *OfficerDirectoryService) Delete(ctx context.Context, token string, officerID int) ([]domain.Officer, error) {
	if err := s.api.DeleteOfficer(ctx, token, officerID); err != nil {
		s.log.Warn("delete officer failed", zap.Int("officer_id", officerID), zap.Error(err))
		return nil, err
	}
	return s.api.Officers(ctx, token)
}

// Import uploads a spreadsheet of officer records, then refetches the
// directory.
func (s *OfficerDirectoryService) Import(ctx context.Context, token string, file nexus.File) ([]domain.Officer, error) {
	if err := s.api.ImportOfficers(ctx, token, file); err != nil {
		s.log.Warn("import officers failed", zap.String("file", file.Name), zap.Error(err))
		return nil, err
	}
	return s.api.Officers(ctx, token)
}
