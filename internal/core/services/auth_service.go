package services

import (
	"context"

	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// AuthService handles member and officer login. Credentials pass through
// to the remote API verbatim; nothing is verified locally.
type AuthService struct {
	api AuthAPI
	log *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, log *zap.Logger) *AuthService {
	return &AuthService{api: api, log: log}
}

// MemberLoginResult is a fresh member session: the bearer token and the
// profile fetched right after login to seed the session cache.
type MemberLoginResult struct {
	Token   string
	Profile *domain.Member
}

// LoginMember authenticates a member and fetches their profile.
func (s *AuthService) LoginMember(ctx context.Context, identifier, password string) (*MemberLoginResult, error) {
	token, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		s.log.Warn("member login failed", zap.String("identifier", identifier), zap.Error(err))
		return nil, err
	}
	profile, err := s.api.Profile(ctx, token)
	if err != nil {
		s.log.Warn("profile fetch after login failed", zap.Error(err))
		return nil, err
	}
	s.log.Info("member logged in", zap.Int("user_id", profile.ID))
	return &MemberLoginResult{Token: token, Profile: profile}, nil
}

// OfficerLoginResult is a fresh officer session.
type OfficerLoginResult struct {
	Token   string
	Profile *domain.Officer
}

// LoginOfficer authenticates an officer. The officer profile rides along
// in the login response.
func (s *AuthService) LoginOfficer(ctx context.Context, email, password string) (*OfficerLoginResult, error) {
	token, officer, err := s.api.OfficerLogin(ctx, email, password)
	if err != nil {
		s.log.Warn("officer login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	s.log.Info("officer logged in", zap.Int("officer_id", officer.ID))
	return &OfficerLoginResult{Token: token, Profile: officer}, nil
}
