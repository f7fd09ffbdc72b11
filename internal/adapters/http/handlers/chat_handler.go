package handlers

import (
	"errors"
	"strings"

	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles the support chat widget endpoints
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a chat message request body
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// Start opens a conversation seeded with the assistant greeting.
func (h *ChatHandler) Start(c *fiber.Ctx) error {
	id, messages := h.chatService.Start()
	return response.Success(c, "Conversation started", fiber.Map{
		"conversation_id": id,
		"messages":        messages,
	})
}

// Send forwards a message to the assistant and returns the full log.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return response.BadRequest(c, "Message is required")
	}

	messages, err := h.chatService.Send(c.Context(), req.ConversationID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConversationUnknown):
			return response.BadRequest(c, "Unknown conversation")
		case errors.Is(err, domain.ErrChatBusy):
			return response.Conflict(c, "A reply is still on the way")
		default:
			return response.InternalServerError(c, "Chat is unavailable")
		}
	}

	return response.Success(c, "Message sent", fiber.Map{
		"conversation_id": req.ConversationID,
		"messages":        messages,
	})
}
