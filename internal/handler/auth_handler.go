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

type credentialVerifier interface {
	VerifyAdmin(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error)
	VerifyStudent(ctx context.Context, req models.StudentLoginRequest) (*models.StudentLoginResponse, error)
}

type loginRecorder interface {
	RecordLogin(realm string, success bool)
}

// AuthHandler exposes the login and verify endpoints of both realms.
type AuthHandler struct {
	auth    credentialVerifier
	metrics loginRecorder
}

// NewAuthHandler creates a new handler. metrics may be nil.
func NewAuthHandler(auth credentialVerifier, metrics loginRecorder) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: metrics}
}

// AdminLogin godoc
// @Summary Administrator login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.AdminLoginResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Failure 429 {object} errors.Error
// @Router /auth/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.VerifyAdmin(c.Request.Context(), req)
	h.record(string(models.RoleAdmin), err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// StudentLogin godoc
// @Summary Student portal login with CPF or email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.StudentLoginRequest true "Credentials"
// @Success 200 {object} models.StudentLoginResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Failure 429 {object} errors.Error
// @Router /client/auth/login [post]
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req models.StudentLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.VerifyStudent(c.Request.Context(), req)
	h.record(string(models.RoleStudent), err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Verify godoc
// @Summary Validate the bearer token of the current realm
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.VerifyResponse
// @Failure 401 {object} errors.Error
// @Failure 403 {object} errors.Error
// @Router /auth/verify [get]
// @Router /client/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingToken, ""))
		return
	}
	response.JSON(c, http.StatusOK, models.VerifyResponse{Valid: true, Role: principal.Role(), User: principal})
}

func (h *AuthHandler) record(realm string, err error) {
	if h.metrics != nil {
		h.metrics.RecordLogin(realm, err == nil)
	}
}
