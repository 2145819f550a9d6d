package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/validation"
)

const invalidCredentialsMessage = "invalid credentials"

// placeholderHash is compared against when no account matches, so unknown logins cost one bcrypt round too.
var placeholderHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("impact-gym-placeholder"), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}
	return hash
})

type adminAccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type portalAccountRepository interface {
	FindPortalUser(ctx context.Context, login string) (*models.Student, error)
}

// AuthConfig defines configuration for token issuance.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
}

// AuthService verifies credentials for both realms and issues or parses tokens.
type AuthService struct {
	admins    adminAccountRepository
	students  portalAccountRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
	compare   func(hash, password []byte) error
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(admins adminAccountRepository, students portalAccountRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	if config.Expiration <= 0 {
		config.Expiration = 24 * time.Hour
	}
	return &AuthService{admins: admins, students: students, validator: validate, logger: logger, config: config, now: time.Now, compare: bcrypt.CompareHashAndPassword}
}

// VerifyAdmin checks administrator credentials and returns a signed admin token.
func (s *AuthService) VerifyAdmin(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if err := validation.Struct(s.validator, req, "invalid login payload"); err != nil {
		return nil, err
	}

	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.rejectUnknown(req.Password)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin")
	}
	if err := s.compare([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}

	principal := models.AdminPrincipal{ID: admin.ID, Username: admin.Username}
	token, err := s.IssueToken(principal)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	s.logger.Info("admin login", zap.String("admin_id", admin.ID))
	return &models.AdminLoginResponse{Message: "Login realizado com sucesso", Token: token, Admin: principal}, nil
}

// VerifyStudent checks portal credentials (CPF or email) and returns a signed student token.
func (s *AuthService) VerifyStudent(ctx context.Context, req models.StudentLoginRequest) (*models.StudentLoginResponse, error) {
	if err := validation.Struct(s.validator, req, "invalid login payload"); err != nil {
		return nil, err
	}

	student, err := s.students.FindPortalUser(ctx, strings.TrimSpace(req.Login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.rejectUnknown(req.Password)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	if !student.HasPortalAccess() {
		return nil, s.rejectUnknown(req.Password)
	}
	if err := s.compare([]byte(*student.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}

	token, err := s.IssueToken(models.StudentPrincipal{ID: student.ID, Name: student.Name, CPF: student.CPF})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	s.logger.Info("student login", zap.String("student_id", student.ID))
	return &models.StudentLoginResponse{
		Message: "Login realizado com sucesso",
		Token:   token,
		Student: models.StudentInfo{ID: student.ID, Name: student.Name, CPF: student.CPF, Email: student.Email},
	}, nil
}

func (s *AuthService) rejectUnknown(password string) error {
	_ = s.compare(placeholderHash(), []byte(password))
	return appErrors.Clone(appErrors.ErrInvalidCredentials, invalidCredentialsMessage)
}

// IssueToken signs an HS256 token for the principal valid for the configured expiration.
func (s *AuthService) IssueToken(principal models.Principal) (string, error) {
	issuedAt := s.now().UTC()
	claims := &models.TokenClaims{
		Role: principal.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.SubjectID(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiration)),
		},
	}
	switch p := principal.(type) {
	case models.AdminPrincipal:
		claims.Username = p.Username
	case models.StudentPrincipal:
		claims.Name = p.Name
		claims.CPF = p.CPF
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
}

// ParseToken validates signature and expiry and rebuilds the principal carried by the token.
func (s *AuthService) ParseToken(tokenString string) (models.Principal, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.Wrap(err, appErrors.ErrExpiredToken.Code, appErrors.ErrExpiredToken.Status, appErrors.ErrExpiredToken.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidToken.Code, appErrors.ErrInvalidToken.Status, appErrors.ErrInvalidToken.Message)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, "")
	}

	switch claims.Role {
	case models.RoleAdmin:
		return models.AdminPrincipal{ID: claims.Subject, Username: claims.Username}, nil
	case models.RoleStudent:
		return models.StudentPrincipal{ID: claims.Subject, Name: claims.Name, CPF: claims.CPF}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrInvalidToken, "unknown token role")
	}
}
