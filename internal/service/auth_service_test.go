package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

type fakeAdminAccounts struct {
	admins map[string]models.Admin
}

func (f *fakeAdminAccounts) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if admin, ok := f.admins[username]; ok {
		return &admin, nil
	}
	return nil, sql.ErrNoRows
}

type fakePortalAccounts struct {
	students []models.Student
	err      error
}

func (f *fakePortalAccounts) FindPortalUser(ctx context.Context, login string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.students {
		if !s.HasPortalAccess() {
			continue
		}
		if s.CPF == login || (s.Email != nil && *s.Email == login) {
			student := s
			return &student, nil
		}
	}
	return nil, sql.ErrNoRows
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	adminHash := mustHash(t, "admin123")
	studentHash := mustHash(t, "aluno123")
	email := "ana@example.com"
	admins := &fakeAdminAccounts{admins: map[string]models.Admin{"admin": {ID: "a-1", Username: "admin", PasswordHash: adminHash}}}
	students := &fakePortalAccounts{students: []models.Student{
		{ID: "s-1", Name: "Ana", CPF: "123.456.789-09", Email: &email, PasswordHash: &studentHash},
		{ID: "s-2", Name: "Bruno", CPF: "987.654.321-00"},
	}}
	return NewAuthService(admins, students, nil, nil, AuthConfig{Secret: "test-secret", Expiration: 24 * time.Hour})
}

func assertAppCode(t *testing.T, err error, want *appErrors.Error) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	assert.Equal(t, want.Code, appErr.Code)
	assert.Equal(t, want.Status, appErr.Status)
}

func TestVerifyAdminIssuesAdminToken(t *testing.T) {
	svc := newAuthFixture(t)
	resp, err := svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "a-1", resp.Admin.ID)

	principal, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AdminPrincipal{ID: "a-1", Username: "admin"}, principal)
}

func TestVerifyAdminUniformFailures(t *testing.T) {
	svc := newAuthFixture(t)
	_, unknown := svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "ghost", Password: "admin123"})
	_, wrong := svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "admin", Password: "wrong-pass"})
	assertAppCode(t, unknown, appErrors.ErrInvalidCredentials)
	assertAppCode(t, wrong, appErrors.ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())
}

func TestVerifyAdminValidation(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "", Password: "123"})
	assertAppCode(t, err, appErrors.ErrValidation)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Fields, 2)
}

func TestVerifyStudentByCPFAndEmail(t *testing.T) {
	svc := newAuthFixture(t)
	for _, login := range []string{"123.456.789-09", "ana@example.com"} {
		resp, err := svc.VerifyStudent(context.Background(), models.StudentLoginRequest{Login: login, Password: "aluno123"})
		require.NoError(t, err, login)
		assert.Equal(t, "s-1", resp.Student.ID)

		principal, err := svc.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, models.StudentPrincipal{ID: "s-1", Name: "Ana", CPF: "123.456.789-09"}, principal)
	}
}

func TestVerifyStudentWithoutPortalAccess(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.VerifyStudent(context.Background(), models.StudentLoginRequest{Login: "987.654.321-00", Password: "whatever"})
	assertAppCode(t, err, appErrors.ErrInvalidCredentials)
}

func TestVerifyStudentRepositoryFailureIsInternal(t *testing.T) {
	svc := NewAuthService(&fakeAdminAccounts{}, &fakePortalAccounts{err: errors.New("db down")}, nil, nil, AuthConfig{Secret: "s"})
	_, err := svc.VerifyStudent(context.Background(), models.StudentLoginRequest{Login: "ana@example.com", Password: "aluno123"})
	assertAppCode(t, err, appErrors.ErrInternal)
}

func TestParseTokenExpired(t *testing.T) {
	svc := newAuthFixture(t)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, err := svc.IssueToken(models.AdminPrincipal{ID: "a-1", Username: "admin"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
	_, err = svc.ParseToken(token)
	assertAppCode(t, err, appErrors.ErrExpiredToken)
}

func TestParseTokenRejectsForeignSignatureAndAlgorithm(t *testing.T) {
	svc := newAuthFixture(t)
	other := NewAuthService(nil, nil, nil, nil, AuthConfig{Secret: "other-secret"})
	token, err := other.IssueToken(models.AdminPrincipal{ID: "a-1", Username: "admin"})
	require.NoError(t, err)
	_, err = svc.ParseToken(token)
	assertAppCode(t, err, appErrors.ErrInvalidToken)

	claims := &models.TokenClaims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ParseToken(unsigned)
	assertAppCode(t, err, appErrors.ErrInvalidToken)

	_, err = svc.ParseToken("not-a-token")
	assertAppCode(t, err, appErrors.ErrInvalidToken)
}

func TestParseTokenRequiresExpiry(t *testing.T) {
	svc := newAuthFixture(t)
	claims := &models.TokenClaims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "a-1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ParseToken(token)
	assertAppCode(t, err, appErrors.ErrInvalidToken)
}

func TestUnknownAccountsStillCompareAHash(t *testing.T) {
	svc := newAuthFixture(t)
	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "ghost", Password: "admin123"})
	assertAppCode(t, err, appErrors.ErrInvalidCredentials)
	_, err = svc.VerifyStudent(context.Background(), models.StudentLoginRequest{Login: "000.000.000-00", Password: "aluno123"})
	assertAppCode(t, err, appErrors.ErrInvalidCredentials)
	_, err = svc.VerifyAdmin(context.Background(), models.AdminLoginRequest{Username: "admin", Password: "wrong-pass"})
	assertAppCode(t, err, appErrors.ErrInvalidCredentials)

	require.Len(t, compared, 3)
	assert.Equal(t, placeholderHash(), compared[0])
	assert.Equal(t, placeholderHash(), compared[1])
	assert.NotEqual(t, placeholderHash(), compared[2])
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
