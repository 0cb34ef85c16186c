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

type PaymentHandler struct {
	viewAPI[queries.PaymentView, []queries.PaymentRelatedRefund]
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	h := &PaymentHandler{}
	h.entity = "payments"
	h.view = func(s *session.Session) *session.PaymentTableView { return s.Payments }
	h.submit = func(c *gin.Context, ctx context.Context, editingID string) error {
		var req reqdto.PaymentFormRequest
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
