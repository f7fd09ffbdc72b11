package services

import (
	"context"
	"sync"
	"time"

	"specs-nexus-web/internal/core/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	chatGreeting = "Hello! I am SPECS Assistance. How may I help you today?"
	chatFailure  = "Sorry, I'm having trouble processing your request."

	// ChatIdleTimeout is how long a conversation may sit untouched
	// before the eviction sweep drops it.
	ChatIdleTimeout = 30 * time.Minute
)

type conversation struct {
	messages   []domain.ChatMessage
	busy       bool
	lastActive time.Time
}

// ChatService keeps per-conversation state in memory. Conversations are
// transient; a restart drops them all, and idle ones are swept out by
// EvictStale so the map does not grow forever.
type ChatService struct {
	api ChatAPI
	log *zap.Logger
	now func() time.Time

	mu    sync.Mutex
	convs map[string]*conversation
}

// NewChatService creates a new chat service
func NewChatService(api ChatAPI, log *zap.Logger) *ChatService {
	return &ChatService{
		api:   api,
		log:   log,
		now:   time.Now,
		convs: make(map[string]*conversation),
	}
}

// Start opens a new conversation seeded with the assistant greeting and
// returns its id.
func (s *ChatService) Start() (string, []domain.ChatMessage) {
	id := uuid.NewString()
	conv := &conversation{
		messages:   []domain.ChatMessage{{Sender: domain.SenderBot, Text: chatGreeting}},
		lastActive: s.now(),
	}
	s.mu.Lock()
	s.convs[id] = conv
	s.mu.Unlock()
	return id, conv.messages
}

// History returns the message log for a conversation.
func (s *ChatService) History(id string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, domain.ErrConversationUnknown
	}
	out := make([]domain.ChatMessage, len(conv.messages))
	copy(out, conv.messages)
	return out, nil
}

// Send appends the user message, forwards it to the assistant backend and
// appends the reply. Only one request may be in flight per conversation;
// a second concurrent send fails with ErrChatBusy. A backend failure still
// produces a bot message so the conversation never stalls.
func (s *ChatService) Send(ctx context.Context, id, text string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	conv, ok := s.convs[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrConversationUnknown
	}
	if conv.busy {
		s.mu.Unlock()
		return nil, domain.ErrChatBusy
	}
	conv.busy = true
	conv.lastActive = s.now()
	conv.messages = append(conv.messages, domain.ChatMessage{Sender: domain.SenderUser, Text: text})
	s.mu.Unlock()

	reply, err := s.api.Chat(ctx, text)
	if err != nil {
		s.log.Warn("chat request failed", zap.Error(err))
		reply = chatFailure
	}

	s.mu.Lock()
	conv.busy = false
	conv.lastActive = s.now()
	conv.messages = append(conv.messages, domain.ChatMessage{Sender: domain.SenderBot, Text: reply})
	out := make([]domain.ChatMessage, len(conv.messages))
	copy(out, conv.messages)
	s.mu.Unlock()
	return out, nil
}

// EvictStale drops conversations idle for longer than maxAge and returns
// how many were removed. A conversation with a request in flight is never
// evicted.
func (s *ChatService) EvictStale(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, conv := range s.convs {
		if conv.busy || conv.lastActive.After(cutoff) {
			continue
		}
		delete(s.convs, id)
		evicted++
	}
	if evicted > 0 {
		s.log.Info("evicted idle chat conversations", zap.Int("count", evicted))
	}
	return evicted
}
