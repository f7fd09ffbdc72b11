package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"specs-nexus-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatAPI struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	queries []string
}

func (f *fakeChatAPI) Chat(ctx context.Context, message string) (string, error) {
	f.mu.Lock()
	f.queries = append(f.queries, message)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.reply, f.err
}

func TestChatStartSeedsGreeting(t *testing.T) {
	svc := NewChatService(&fakeChatAPI{}, zap.NewNop())

	id, messages := svc.Start()
	assert.NotEmpty(t, id)
	require.Len(t, messages, 1)
	assert.Equal(t, domain.SenderBot, messages[0].Sender)
	assert.Equal(t, "Hello! I am SPECS Assistance. How may I help you today?", messages[0].Text)

	// each conversation gets its own id
	other, _ := svc.Start()
	assert.NotEqual(t, id, other)
}

func TestChatSendAppendsUserAndReply(t *testing.T) {
	api := &fakeChatAPI{reply: "You can pay dues on the Membership page."}
	svc := NewChatService(api, zap.NewNop())

	id, _ := svc.Start()
	messages, err := svc.Send(context.Background(), id, "where do I pay?")
	require.NoError(t, err)

	require.Len(t, messages, 3)
	assert.Equal(t, domain.SenderUser, messages[1].Sender)
	assert.Equal(t, "where do I pay?", messages[1].Text)
	assert.Equal(t, domain.SenderBot, messages[2].Sender)
	assert.Equal(t, "You can pay dues on the Membership page.", messages[2].Text)
	assert.Equal(t, []string{"where do I pay?"}, api.queries)
}

func TestChatSendFailureKeepsConversationAlive(t *testing.T) {
	api := &fakeChatAPI{err: errors.New("upstream down")}
	svc := NewChatService(api, zap.NewNop())

	id, _ := svc.Start()
	messages, err := svc.Send(context.Background(), id, "hello?")
	require.NoError(t, err)

	require.Len(t, messages, 3)
	assert.Equal(t, "Sorry, I'm having trouble processing your request.", messages[2].Text)

	// the busy flag cleared, so the next message goes through
	api.err = nil
	api.reply = "back online"
	messages, err = svc.Send(context.Background(), id, "still there?")
	require.NoError(t, err)
	assert.Equal(t, "back online", messages[len(messages)-1].Text)
}

func TestChatSendRejectsConcurrentSend(t *testing.T) {
	api := &fakeChatAPI{reply: "ok", block: make(chan struct{})}
	svc := NewChatService(api, zap.NewNop())

	id, _ := svc.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Send(context.Background(), id, "first")
		assert.NoError(t, err)
	}()

	// wait for the first send to reach the API
	for {
		api.mu.Lock()
		inFlight := len(api.queries) == 1
		api.mu.Unlock()
		if inFlight {
			break
		}
	}

	_, err := svc.Send(context.Background(), id, "second")
	assert.ErrorIs(t, err, domain.ErrChatBusy)

	close(api.block)
	<-done
}

func TestChatSendUnknownConversation(t *testing.T) {
	svc := NewChatService(&fakeChatAPI{}, zap.NewNop())
	_, err := svc.Send(context.Background(), "no-such-id", "hello")
	assert.ErrorIs(t, err, domain.ErrConversationUnknown)
}

func TestChatEvictStaleDropsIdleConversations(t *testing.T) {
	svc := NewChatService(&fakeChatAPI{reply: "ok"}, zap.NewNop())

	id, _ := svc.Start()

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 1, svc.EvictStale(30*time.Minute))

	_, err := svc.Send(context.Background(), id, "anyone home?")
	assert.ErrorIs(t, err, domain.ErrConversationUnknown)
}

func TestChatEvictStaleKeepsFreshConversations(t *testing.T) {
	svc := NewChatService(&fakeChatAPI{reply: "ok"}, zap.NewNop())

	id, _ := svc.Start()
	assert.Equal(t, 0, svc.EvictStale(30*time.Minute))

	_, err := svc.Send(context.Background(), id, "still here")
	assert.NoError(t, err)
}

func TestChatEvictStaleSkipsInFlightConversations(t *testing.T) {
	api := &fakeChatAPI{reply: "ok", block: make(chan struct{})}
	svc := NewChatService(api, zap.NewNop())

	id, _ := svc.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Send(context.Background(), id, "slow one")
		assert.NoError(t, err)
	}()

	for {
		api.mu.Lock()
		inFlight := len(api.queries) == 1
		api.mu.Unlock()
		if inFlight {
			break
		}
	}

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 0, svc.EvictStale(30*time.Minute))

	close(api.block)
	<-done
}

func TestChatHistoryCopies(t *testing.T) {
	svc := NewChatService(&fakeChatAPI{reply: "hi"}, zap.NewNop())
	id, _ := svc.Start()

	history, err := svc.History(id)
	require.NoError(t, err)
	history[0].Text = "mutated"

	fresh, err := svc.History(id)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].Text)

	_, err = svc.History("missing")
	assert.ErrorIs(t, err, domain.ErrConversationUnknown)
}
