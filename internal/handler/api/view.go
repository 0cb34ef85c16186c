package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	reqdto "support-console/internal/handler/dto/request"
	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/handler/httperr"
	"support-console/internal/handler/middleware"
	"support-console/internal/infra"
	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

// viewAPI serves the table-view endpoints for one entity. Every operation
// mutates the caller's session view and replies with the full projection, so
// the client never has to reconcile partial state. Storage failures during a
// refetch are not request errors: the projection carries them in load_error
// while the previous page stays on screen.
type viewAPI[R any, X any] struct {
	entity string
	view   func(s *session.Session) *session.View[R, X]
	submit func(c *gin.Context, ctx context.Context, editingID string) error
}

func (h *viewAPI[R, X]) respond(c *gin.Context, v *session.View[R, X]) {
	c.JSON(http.StatusOK, resdto.FromSnapshot(v.Snapshot()))
}

// respondAfterFetch logs a refetch failure and replies with the projection
// anyway; only state-machine violations abort the request.
func (h *viewAPI[R, X]) respondAfterFetch(c *gin.Context, v *session.View[R, X], err error) {
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPageOutOfRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Page out of range", nil)
			return
		case errors.Is(err, errs.ErrRecordNotOnPage):
			httperr.AbortWithError(c, http.StatusConflict, err, "Record is not on the current page", nil)
			return
		default:
			slog.Warn("view fetch failed", "entity", h.entity, "error", err.Error())
		}
	}
	h.respond(c, v)
}

func (h *viewAPI[R, X]) sessionView(c *gin.Context) (*session.View[R, X], bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Session required", nil)
		return nil, false
	}
	return h.view(s), true
}

func (h *viewAPI[R, X]) GetView(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	err := v.Load(c.Request.Context())
	h.respondAfterFetch(c, v, err)
}

func (h *viewAPI[R, X]) Filter(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := v.SetFilter(c.Request.Context(), req.Filter)
	h.respondAfterFetch(c, v, err)
}

func (h *viewAPI[R, X]) Search(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := v.SetSearch(c.Request.Context(), req.Query)
	h.respondAfterFetch(c, v, err)
}

func (h *viewAPI[R, X]) Sort(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := v.ToggleSort(c.Request.Context(), req.Column)
	h.respondAfterFetch(c, v, err)
}

func (h *viewAPI[R, X]) Page(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var err error
	switch {
	case req.Page != nil:
		err = v.SetPage(c.Request.Context(), *req.Page)
	case req.Move == "next":
		err = v.NextPage(c.Request.Context())
	case req.Move == "prev":
		err = v.PrevPage(c.Request.Context())
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("page or move required"), "Invalid request", nil)
		return
	}
	h.respondAfterFetch(c, v, err)
}

func (h *viewAPI[R, X]) Expand(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := v.ToggleExpand(c.Request.Context(), req.ID)
	if errors.Is(err, errs.ErrRecordNotOnPage) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Record is not on the current page", nil)
		return
	}
	if err != nil {
		// related-record lookup failed; the projection carries the error
		slog.Warn("expansion fetch failed", "entity", h.entity, "error", err.Error())
	}
	h.respond(c, v)
}

func (h *viewAPI[R, X]) ModalCreate(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	v.OpenCreate()
	h.respond(c, v)
}

func (h *viewAPI[R, X]) ModalEdit(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := v.OpenEdit(req.ID); err != nil {
		httperr.AbortWithError(c, http.StatusConflict, err, "Record is not on the current page", nil)
		return
	}
	h.respond(c, v)
}

func (h *viewAPI[R, X]) ModalClose(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	v.CloseModal()
	h.respond(c, v)
}

func (h *viewAPI[R, X]) Submit(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	err := v.Submit(c.Request.Context(), func(ctx context.Context, editingID string) error {
		return h.submit(c, ctx, editingID)
	})
	if err != nil {
		if c.IsAborted() {
			// the submit closure already wrote the response
			return
		}
		if errors.Is(err, errs.ErrRefetchFailed) {
			// the write applied; only the refetch failed
			h.respondAfterFetch(c, v, err)
			return
		}
		abortCommandErr(c, err, "Submit failed")
		return
	}
	h.respond(c, v)
}

func (h *viewAPI[R, X]) DeletePrompt(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	var req reqdto.DeletePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	v.PromptDelete(req.ID)
	h.respond(c, v)
}

func (h *viewAPI[R, X]) DeleteCancel(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	v.CancelDelete()
	h.respond(c, v)
}

func (h *viewAPI[R, X]) DeleteConfirm(c *gin.Context) {
	v, ok := h.sessionView(c)
	if !ok {
		return
	}
	if err := v.ConfirmDelete(c.Request.Context()); err != nil {
		if errors.Is(err, errs.ErrRefetchFailed) {
			// the delete applied; only the refetch failed
			h.respondAfterFetch(c, v, err)
			return
		}
		abortCommandErr(c, err, "Delete failed")
		return
	}
	h.respond(c, v)
}

// abortCommandErr maps write-path failures onto HTTP statuses. Modal and
// delete-confirmation state survives these failures, so the client can retry
// after a fix or a transient outage.
func abortCommandErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrModalClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "No modal is open", nil)
	case errors.Is(err, errs.ErrNoDeletePending):
		httperr.AbortWithError(c, http.StatusConflict, err, "No delete confirmation pending", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Record not found", nil)
	case infra.IsKind(err, infra.KindDBFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	default:
		// domain validation
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	}
}
