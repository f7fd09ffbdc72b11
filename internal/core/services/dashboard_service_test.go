package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"specs-nexus-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDashboardAPI struct {
	profile      *domain.Member
	profileErr   error
	clearance    []domain.Clearance
	clearanceErr error

	delay    time.Duration
	inFlight int32
	overlap  int32
}

func (f *fakeDashboardAPI) track() func() {
	n := atomic.AddInt32(&f.inFlight, 1)
	if n > 1 {
		atomic.StoreInt32(&f.overlap, 1)
	}
	time.Sleep(f.delay)
	return func() { atomic.AddInt32(&f.inFlight, -1) }
}

func (f *fakeDashboardAPI) Profile(ctx context.Context, token string) (*domain.Member, error) {
	defer f.track()()
	return f.profile, f.profileErr
}

func (f *fakeDashboardAPI) Clearance(ctx context.Context, token string, userID int) ([]domain.Clearance, error) {
	defer f.track()()
	return f.clearance, f.clearanceErr
}

func TestDashboardLoad(t *testing.T) {
	api := &fakeDashboardAPI{
		profile:   &domain.Member{ID: 5, FullName: "Jamie Cruz"},
		clearance: []domain.Clearance{{Requirement: "Membership", Status: "Paid"}},
	}
	svc := NewDashboardService(api, zap.NewNop())

	page, err := svc.Load(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.Equal(t, "Jamie Cruz", page.Profile.FullName)
	assert.Len(t, page.Clearance, 1)
	assert.NoError(t, page.ClearanceErr)
}

func TestDashboardLoadFetchesConcurrently(t *testing.T) {
	api := &fakeDashboardAPI{
		profile: &domain.Member{ID: 5},
		delay:   30 * time.Millisecond,
	}
	svc := NewDashboardService(api, zap.NewNop())

	_, err := svc.Load(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.overlap),
		"profile and clearance fetches should overlap")
}

func TestDashboardClearanceFailureIsNotTerminal(t *testing.T) {
	api := &fakeDashboardAPI{
		profile:      &domain.Member{ID: 5},
		clearanceErr: errors.New("clearance down"),
	}
	svc := NewDashboardService(api, zap.NewNop())

	page, err := svc.Load(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.Error(t, page.ClearanceErr)
	assert.Empty(t, page.Clearance)
}

func TestDashboardProfileFailureIsTerminal(t *testing.T) {
	api := &fakeDashboardAPI{profileErr: errors.New("boom")}
	svc := NewDashboardService(api, zap.NewNop())

	_, err := svc.Load(context.Background(), "tok", 5)
	assert.Error(t, err)
}
