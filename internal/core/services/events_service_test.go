package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEventsAPI struct {
	mu    sync.Mutex
	calls []string

	profile    *domain.Member
	profileErr error
	events     []domain.Event
	eventsErr  error
	mutateErr  error
}

func (f *fakeEventsAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeEventsAPI) Profile(ctx context.Context, token string) (*domain.Member, error) {
	f.record("profile")
	return f.profile, f.profileErr
}

func (f *fakeEventsAPI) Events(ctx context.Context, token string) ([]domain.Event, error) {
	f.record("events")
	return f.events, f.eventsErr
}

func (f *fakeEventsAPI) JoinEvent(ctx context.Context, token string, eventID int) error {
	f.record("join")
	return f.mutateErr
}

func (f *fakeEventsAPI) LeaveEvent(ctx context.Context, token string, eventID int) error {
	f.record("leave")
	return f.mutateErr
}

func (f *fakeEventsAPI) EventParticipants(ctx context.Context, token string, eventID int) ([]domain.Participant, error) {
	f.record("participants")
	return nil, nil
}

func (f *fakeEventsAPI) OfficerEvents(ctx context.Context, token string) ([]domain.Event, error) {
	f.record("officer_events")
	return f.events, f.eventsErr
}

func (f *fakeEventsAPI) CreateEvent(ctx context.Context, token string, params nexus.EventParams, image *nexus.File) error {
	f.record("create")
	return f.mutateErr
}

func (f *fakeEventsAPI) UpdateEvent(ctx context.Context, token string, eventID int, params nexus.EventParams, image *nexus.File) error {
	f.record("update")
	return f.mutateErr
}

func (f *fakeEventsAPI) DeleteEvent(ctx context.Context, token string, eventID int) error {
	f.record("delete")
	return f.mutateErr
}

func TestEventsLoad(t *testing.T) {
	api := &fakeEventsAPI{
		profile: &domain.Member{ID: 3, FullName: "Jamie Cruz"},
		events:  []domain.Event{{ID: 1, Title: "General Assembly"}},
	}
	svc := NewEventsService(api, zap.NewNop())

	page, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Jamie Cruz", page.Profile.FullName)
	assert.Len(t, page.Events, 1)
	assert.NoError(t, page.EventsErr)
}

func TestEventsLoadProfileFailureIsTerminal(t *testing.T) {
	api := &fakeEventsAPI{profileErr: errors.New("boom")}
	svc := NewEventsService(api, zap.NewNop())

	_, err := svc.Load(context.Background(), "tok")
	assert.Error(t, err)
}

func TestEventsLoadListFailureRendersInPage(t *testing.T) {
	api := &fakeEventsAPI{
		profile:   &domain.Member{ID: 3},
		eventsErr: errors.New("events down"),
	}
	svc := NewEventsService(api, zap.NewNop())

	page, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)
	assert.Error(t, page.EventsErr)
	assert.Empty(t, page.Events)
}

func TestJoinRefetchesAfterMutation(t *testing.T) {
	api := &fakeEventsAPI{events: []domain.Event{{ID: 1, IsParticipant: true}}}
	svc := NewEventsService(api, zap.NewNop())

	events, err := svc.Join(context.Background(), "tok", 1)
	require.NoError(t, err)
	assert.True(t, events[0].IsParticipant)
	assert.Equal(t, []string{"join", "events"}, api.calls)
}

func TestJoinFailureSkipsRefetch(t *testing.T) {
	api := &fakeEventsAPI{mutateErr: errors.New("closed")}
	svc := NewEventsService(api, zap.NewNop())

	_, err := svc.Join(context.Background(), "tok", 1)
	assert.Error(t, err)
	assert.Equal(t, []string{"join"}, api.calls)
}

func TestSaveValidatesBeforeNetwork(t *testing.T) {
	api := &fakeEventsAPI{}
	svc := NewEventsService(api, zap.NewNop())

	past := time.Now().Add(-time.Hour)
	form := EventForm{Title: "t", Description: "d", Location: "l", Date: past}

	_, err := svc.Save(context.Background(), "tok", 0, form, nil)
	assert.ErrorIs(t, err, domain.ErrEventDatePast)
	assert.Empty(t, api.calls, "a rejected form must not reach the API")
}

func TestSaveCreatesThenRefetches(t *testing.T) {
	api := &fakeEventsAPI{}
	svc := NewEventsService(api, zap.NewNop())

	form := EventForm{
		Title:       "General Assembly",
		Description: "Semester kickoff",
		Location:    "Auditorium",
		Date:        time.Now().Add(48 * time.Hour),
	}

	_, err := svc.Save(context.Background(), "tok", 0, form, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "officer_events"}, api.calls)
}

func TestSaveUpdatesExisting(t *testing.T) {
	api := &fakeEventsAPI{}
	svc := NewEventsService(api, zap.NewNop())

	form := EventForm{
		Title:       "General Assembly",
		Description: "Semester kickoff",
		Location:    "Auditorium",
		Date:        time.Now().Add(48 * time.Hour),
	}

	_, err := svc.Save(context.Background(), "tok", 12, form, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"update", "officer_events"}, api.calls)
}
