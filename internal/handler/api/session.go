package api

import (
	"net/http"

	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/handler/httperr"
	"support-console/internal/pkg/sessiontoken"
	"support-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	registry *session.Registry
	tokens   *sessiontoken.Service
}

func NewSessionHandler(registry *session.Registry, tokens *sessiontoken.Service) *SessionHandler {
	return &SessionHandler{registry: registry, tokens: tokens}
}

// @Summary Mint session
// @Description Create a new view-state session and return its bearer token
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.registry.Create()
	token, err := h.tokens.GenerateToken(s.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mint session", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.SessionResponse{Token: token})
}
