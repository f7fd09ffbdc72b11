package services

import (
	"context"
	"io"
	"sync"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// MembershipService loads the member dues page, runs the receipt upload
// flow, and performs officer membership and requirement management.
type MembershipService struct {
	api MembershipAPI
	log *zap.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(api MembershipAPI, log *zap.Logger) *MembershipService {
	return &MembershipService{api: api, log: log}
}

// MembershipPage is the member dues view data, with records split the way
// the page renders them.
type MembershipPage struct {
	Profile        *domain.Member
	Pending        []domain.Membership
	Paid           []domain.Membership
	MembershipsErr error
}

// Load fetches the profile and the membership records concurrently, using
// the cached user id, and splits the records into the pending
// (unpaid/verifying) and paid sections.
func (s *MembershipService) Load(ctx context.Context, token string, cachedUserID int) (*MembershipPage, error) {
	var (
		page        MembershipPage
		memberships []domain.Membership
		profileErr  error
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		page.Profile, profileErr = s.api.Profile(ctx, token)
	}()
	go func() {
		defer wg.Done()
		memberships, page.MembershipsErr = s.api.Memberships(ctx, token, cachedUserID)
	}()
	wg.Wait()

	if profileErr != nil {
		s.log.Warn("profile fetch failed", zap.Error(profileErr))
		return nil, profileErr
	}
	if page.MembershipsErr != nil {
		s.log.Warn("memberships fetch failed", zap.Int("user_id", cachedUserID), zap.Error(page.MembershipsErr))
		return &page, nil
	}

	for _, m := range memberships {
		if m.Paid() {
			page.Paid = append(page.Paid, m)
		} else {
			page.Pending = append(page.Pending, m)
		}
	}
	return &page, nil
}

// PaymentQRCode returns the payment QR code URL for the chosen method.
func (s *MembershipService) PaymentQRCode(ctx context.Context, token string, method domain.PaymentMethod) (string, error) {
	url, err := s.api.QRCode(ctx, token, method)
	if err != nil {
		s.log.Warn("qr code fetch failed", zap.String("method", string(method)), zap.Error(err))
		return "", err
	}
	return url, nil
}

// SubmitReceipt runs the two-step receipt flow: upload the file, then
// attach the stored path to the membership record. On success the member's
// records are refetched so the page shows the verifying state.
func (s *MembershipService) SubmitReceipt(ctx context.Context, token string, membershipID, userID int, method domain.PaymentMethod, filename string, content io.Reader) ([]domain.Membership, error) {
	path, err := s.api.UploadReceiptFile(ctx, token, filename, content)
	if err != nil {
		s.log.Warn("receipt upload failed", zap.Int("membership_id", membershipID), zap.Error(err))
		return nil, err
	}
	if err := s.api.UpdateReceipt(ctx, token, membershipID, method, path); err != nil {
		s.log.Warn("receipt update failed", zap.Int("membership_id", membershipID), zap.Error(err))
		return nil, err
	}
	return s.api.Memberships(ctx, token, userID)
}

// OfficerList fetches all active membership records.
func (s *MembershipService) OfficerList(ctx context.Context, token string) ([]domain.Membership, error) {
	return s.api.OfficerMemberships(ctx, token)
}

// Save validates the membership form and creates or updates the record,
// then refetches the management list.
func (s *MembershipService) Save(ctx context.Context, token string, membershipID int, form MembershipForm) ([]domain.Membership, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var err error
	if membershipID > 0 {
		err = s.api.UpdateMembership(ctx, token, membershipID, form.params())
	} else {
		err = s.api.CreateMembership(ctx, token, form.params())
	}
	if err != nil {
		s.log.Warn("save membership failed", zap.Int("membership_id", membershipID), zap.Error(err))
		return nil, err
	}
	return s.api.OfficerMemberships(ctx, token)
}

// Delete archives a membership record, then refetches the list.
func (s *MembershipService) Delete(ctx context.Context, token string, membershipID int) ([]domain.Membership, error) {
	if err := s.api.DeleteMembership(ctx, token, membershipID); err != nil {
		s.log.Warn("delete membership failed", zap.Int("membership_id", membershipID), zap.Error(err))
		return nil, err
	}
	return s.api.OfficerMemberships(ctx, token)
}

// Verify approves or denies a payment, then refetches the list.
func (s *MembershipService) Verify(ctx context.Context, token string, membershipID int, action string) ([]domain.Membership, error) {
	if action != "approve" && action != "deny" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.api.VerifyMembership(ctx, token, membershipID, action); err != nil {
		s.log.Warn("verify membership failed", zap.Int("membership_id", membershipID), zap.String("action", action), zap.Error(err))
		return nil, err
	}
	return s.api.OfficerMemberships(ctx, token)
}

// RequirementList fetches the distinct membership requirements.
func (s *MembershipService) RequirementList(ctx context.Context, token string) ([]domain.Membership, error) {
	return s.api.Requirements(ctx, token)
}

// CreateRequirement rolls a new requirement out to every user, then
// refetches the requirement list.
func (s *MembershipService) CreateRequirement(ctx context.Context, token, requirement string, amount float64) ([]domain.Membership, error) {
	if err := s.api.CreateRequirement(ctx, token, requirement, amount); err != nil {
		s.log.Warn("create requirement failed", zap.String("requirement", requirement), zap.Error(err))
		return nil, err
	}
	return s.api.Requirements(ctx, token)
}

// UpdateRequirement changes the amount on every record of a requirement,
// then refetches the requirement list.
func (s *MembershipService) UpdateRequirement(ctx context.Context, token, requirement string, amount float64) ([]domain.Membership, error) {
	if err := s.api.UpdateRequirement(ctx, token, requirement, amount); err != nil {
		s.log.Warn("update requirement failed", zap.String("requirement", requirement), zap.Error(err))
		return nil, err
	}
	return s.api.Requirements(ctx, token)
}

// DeleteRequirement archives every record of a requirement, then
// refetches the requirement list.
func (s *MembershipService) DeleteRequirement(ctx context.Context, token, requirement string) ([]domain.Membership, error) {
	if err := s.api.DeleteRequirement(ctx, token, requirement); err != nil {
		s.log.Warn("delete requirement failed", zap.String("requirement", requirement), zap.Error(err))
		return nil, err
	}
	return s.api.Requirements(ctx, token)
}

// UploadRequirementQR uploads a payment QR code for a requirement.
func (s *MembershipService) UploadRequirementQR(ctx context.Context, token, requirement string, method domain.PaymentMethod, file nexus.File) error {
	if err := s.api.UploadRequirementQRCode(ctx, token, requirement, method, file); err != nil {
		s.log.Warn("requirement qr upload failed", zap.String("requirement", requirement), zap.Error(err))
		return err
	}
	return nil
}
