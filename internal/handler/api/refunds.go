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

// RefundHandler serves the refund-request table view. Expansion resolves
// both soft references of a row; either side reports found=false when the
// stored id dangles.
type RefundHandler struct {
	viewAPI[queries.RefundView, session.RefundExpansion]
}

func NewRefundHandler(cmds commands.RefundCommands) *RefundHandler {
	h := &RefundHandler{}
	h.entity = "refunds"
	h.view = func(s *session.Session) *session.RefundTableView { return s.Refunds }
	h.submit = func(c *gin.Context, ctx context.Context, editingID string) error {
		var req reqdto.RefundFormRequest
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
