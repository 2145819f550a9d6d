package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/middleware"
	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

type clientViews interface {
	Profile(ctx context.Context, principal models.StudentPrincipal) (*models.Student, error)
	Payments(ctx context.Context, principal models.StudentPrincipal) ([]models.Payment, error)
	Workout(ctx context.Context, principal models.StudentPrincipal) (*models.WorkoutDetail, error)
	Measurements(ctx context.Context, principal models.StudentPrincipal) ([]models.BodyMeasurement, error)
	Progress(ctx context.Context, principal models.StudentPrincipal) (*models.ProgressSummary, error)
}

// ClientHandler serves the authenticated student's own data.
type ClientHandler struct {
	client clientViews
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(client clientViews) *ClientHandler {
	return &ClientHandler{client: client}
}

// Profile godoc
// @Summary Own profile
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Student
// @Router /client/profile [get]
func (h *ClientHandler) Profile(c *gin.Context) {
	serve(c, h.client.Profile)
}

// Payments godoc
// @Summary Latest ten payments with status text
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Router /client/payments [get]
func (h *ClientHandler) Payments(c *gin.Context) {
	serve(c, h.client.Payments)
}

// Workout godoc
// @Summary Own workout; workout is null when none is assigned
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.WorkoutDetail
// @Router /client/workout [get]
func (h *ClientHandler) Workout(c *gin.Context) {
	serve(c, h.client.Workout)
}

// Measurements godoc
// @Summary Own measurement history, newest first
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BodyMeasurement
// @Router /client/measurements [get]
func (h *ClientHandler) Measurements(c *gin.Context) {
	serve(c, h.client.Measurements)
}

// Progress godoc
// @Summary First versus latest measurements and weight trend
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProgressSummary
// @Router /client/progress [get]
func (h *ClientHandler) Progress(c *gin.Context) {
	serve(c, h.client.Progress)
}

func serve[T any](c *gin.Context, view func(context.Context, models.StudentPrincipal) (T, error)) {
	student, ok := middleware.StudentFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrForbiddenRole, ""))
		return
	}
	result, err := view(c.Request.Context(), student)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
