package api

import (
	"net/http"

	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/handler/httperr"
	"support-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store queries.DashboardReadStore
}

func NewDashboardHandler(store queries.DashboardReadStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// @Summary Dashboard statistics
// @Description Aggregate ticket, refund and payment statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load dashboard stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
