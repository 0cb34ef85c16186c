package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	reqdto "support-console/internal/handler/dto/request"
	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/handler/httperr"
	"support-console/internal/handler/middleware"
	"support-console/internal/usecase/chat"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	assistant *chat.Assistant
}

func NewChatHandler(assistant *chat.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// @Summary Send chat message
// @Description Send a message to the assistant; the reply streams back as SSE tokens
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body reqdto.ChatMessageRequest true "Chat message"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("no session in context"), "Session required", nil)
		return
	}
	var req reqdto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Scope != "" {
		s.Chat.SetScope(req.Scope)
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	err := h.assistant.Stream(c.Request.Context(), s.Chat, req.Message, func(token string) error {
		payload, mErr := json.Marshal(gin.H{"token": token})
		if mErr != nil {
			return mErr
		}
		if _, wErr := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); wErr != nil {
			return wErr
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// the stream already carries a fallback reply; log for monitoring
		slog.Warn("chat stream ended with error", "session_id", s.ID.String(), "error", err.Error())
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

// @Summary Chat history
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ChatHistoryResponse
// @Failure 401 {object} map[string]string
// @Router /chat/messages [get]
func (h *ChatHandler) History(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("no session in context"), "Session required", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversation(s.Chat))
}

// @Summary Clear chat history
// @Tags chat
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /chat/clear [post]
func (h *ChatHandler) Clear(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("no session in context"), "Session required", nil)
		return
	}
	s.Chat.Clear()
	c.Status(http.StatusNoContent)
}
