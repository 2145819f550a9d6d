package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

// ContextUserKey is the gin context key storing the authenticated principal.
const ContextUserKey = "currentUser"

// TokenParser decodes a bearer token into a principal.
type TokenParser interface {
	ParseToken(token string) (models.Principal, error)
}

// Authorize resolves the Authorization header into a principal of the required role.
func Authorize(parser TokenParser, header string, role models.Role) (models.Principal, error) {
	if strings.TrimSpace(header) == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingToken, "")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, "invalid authorization header")
	}

	principal, err := parser.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	if principal.Role() != role {
		return nil, appErrors.Clone(appErrors.ErrForbiddenRole, "")
	}
	return principal, nil
}

// RequireRole protects routes by requiring a valid token issued for role.
func RequireRole(parser TokenParser, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := Authorize(parser, c.GetHeader("Authorization"), role)
		if err != nil {
			response.Abort(c, err)
			return
		}
		c.Set(ContextUserKey, principal)
		c.Next()
	}
}

// RequireAdmin guards the administrator realm.
func RequireAdmin(parser TokenParser) gin.HandlerFunc {
	return RequireRole(parser, models.RoleAdmin)
}

// RequireStudent guards the student self-service realm.
func RequireStudent(parser TokenParser) gin.HandlerFunc {
	return RequireRole(parser, models.RoleStudent)
}

// PrincipalFromContext returns whatever principal the guard stored.
func PrincipalFromContext(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}

// AdminFromContext returns the administrator attached by RequireAdmin.
func AdminFromContext(c *gin.Context) (models.AdminPrincipal, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return models.AdminPrincipal{}, false
	}
	admin, ok := principal.(models.AdminPrincipal)
	return admin, ok
}

// StudentFromContext returns the student attached by RequireStudent.
func StudentFromContext(c *gin.Context) (models.StudentPrincipal, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return models.StudentPrincipal{}, false
	}
	student, ok := principal.(models.StudentPrincipal)
	return student, ok
}
