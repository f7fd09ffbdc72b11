package services

import (
	"context"
	"sync"
	"time"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"go.uber.org/zap"
)

// EventsService loads the member events page and performs officer event
// management. Mutations are fire-and-refetch: the full list is re-requested
// after every successful write instead of patching locally.
type EventsService struct {
	api EventsAPI
	log *zap.Logger
}

// NewEventsService creates a new events service
func NewEventsService(api EventsAPI, log *zap.Logger) *EventsService {
	return &EventsService{api: api, log: log}
}

// EventsPage is the member events view data.
type EventsPage struct {
	Profile   *domain.Member
	Events    []domain.Event
	EventsErr error
}

// Load fetches the profile and the event list concurrently. A profile
// failure is terminal; an event-list failure renders in-page.
func (s *EventsService) Load(ctx context.Context, token string) (*EventsPage, error) {
	var (
		page       EventsPage
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
		page.Events, page.EventsErr = s.api.Events(ctx, token)
	}()
	wg.Wait()

	if profileErr != nil {
		s.log.Warn("profile fetch failed", zap.Error(profileErr))
		return nil, profileErr
	}
	if page.EventsErr != nil {
		s.log.Warn("events fetch failed", zap.Error(page.EventsErr))
	}
	return &page, nil
}

// Join registers the member for an event, then refetches the list. The
// refetch is awaited so the returned list already reflects the write.
func (s *EventsService) Join(ctx context.Context, token string, eventID int) ([]domain.Event, error) {
	if err := s.api.JoinEvent(ctx, token, eventID); err != nil {
		s.log.Warn("join event failed", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return s.api.Events(ctx, token)
}

// Leave cancels participation in an event, then refetches the list.
func (s *EventsService) Leave(ctx context.Context, token string, eventID int) ([]domain.Event, error) {
	if err := s.api.LeaveEvent(ctx, token, eventID); err != nil {
		s.log.Warn("leave event failed", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return s.api.Events(ctx, token)
}

// Participants lists the members registered for an event.
func (s *EventsService) Participants(ctx context.Context, token string, eventID int) ([]domain.Participant, error) {
	return s.api.EventParticipants(ctx, token, eventID)
}

// OfficerList fetches the management view of all active events.
func (s *EventsService) OfficerList(ctx context.Context, token string) ([]domain.Event, error) {
	return s.api.OfficerEvents(ctx, token)
}

// Save validates the event form and creates or updates the event, then
// refetches the management list. Validation failures abort before any
// network call; write failures come back with the form state untouched so
// the caller can re-render it.
func (s *EventsService) Save(ctx context.Context, token string, eventID int, form EventForm, image *nexus.File) ([]domain.Event, error) {
	if err := form.Validate(time.Now()); err != nil {
		return nil, err
	}

	var err error
	if eventID > 0 {
		err = s.api.UpdateEvent(ctx, token, eventID, form.params(), image)
	} else {
		err = s.api.CreateEvent(ctx, token, form.params(), image)
	}
	if err != nil {
		s.log.Warn("save event failed", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return s.api.OfficerEvents(ctx, token)
}

// Delete archives an event, then refetches the management list.
func (s *EventsService) Delete(ctx context.Context, token string, eventID int) ([]domain.Event, error) {
	if err := s.api.DeleteEvent(ctx, token, eventID); err != nil {
		s.log.Warn("delete event failed", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return s.api.OfficerEvents(ctx, token)
}
