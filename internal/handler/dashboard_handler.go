package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/middleware"
	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context) (*models.PaymentSummary, bool, error)
}

// DashboardHandler serves the admin membership overview.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Students counted by the status of their latest payment
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PaymentSummary
// @Header 200 {string} X-Cache "HIT or MISS"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, hit, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, summary)
}
