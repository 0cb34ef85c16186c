package api

import (
	"context"
	"net/http"

	reqdto "support-console/internal/handler/dto/request"
	"support-console/internal/handler/httperr"
	"support-console/internal/usecase/commands"
	"support-console/internal/usecase/queries"
	"support-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

// TicketHandler serves the ticket table view. The expansion payload is the
// ticket's refund requests with their payment amounts soft-joined in.
type TicketHandler struct {
	viewAPI[queries.TicketView, []queries.TicketRelatedRefund]
}

func NewTicketHandler(cmds commands.TicketCommands) *TicketHandler {
	h := &TicketHandler{}
	h.entity = "tickets"
	h.view = func(s *session.Session) *session.TicketTableView { return s.Tickets }
	h.submit = func(c *gin.Context, ctx context.Context, editingID string) error {
		var req reqdto.TicketFormRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return err
		}
		if editingID == "" {
			_, err := cmds.Create(ctx, req.ToForm())
			return err
		}
		return cmds.Update(ctx, editingID, req.ToForm())
	}
	return h
}
