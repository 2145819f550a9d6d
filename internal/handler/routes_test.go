package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/impact-gym-api/internal/middleware"
	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/service"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

const testSecret = "test-secret"

type testAPI struct {
	router   *gin.Engine
	auth     *service.AuthService
	students *fakeStudents
	payments *fakePayments
	exports  *fakeExporter
	client   *fakeClient
}

func newTestAPI(t *testing.T, checks map[string]HealthCheck) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	api := &testAPI{
		auth:     service.NewAuthService(nil, nil, nil, nil, service.AuthConfig{Secret: testSecret}),
		students: &fakeStudents{},
		payments: &fakePayments{},
		exports:  &fakeExporter{},
		client:   &fakeClient{},
	}
	api.router = gin.New()
	Register(api.router, Handlers{
		Auth:      NewAuthHandler(&fakeVerifier{}, nil),
		Students:  NewStudentHandler(api.students),
		Payments:  NewPaymentHandler(api.payments, api.exports),
		Workouts:  NewWorkoutHandler(&fakeWorkouts{}),
		Client:    NewClientHandler(api.client),
		Dashboard: NewDashboardHandler(&fakeDashboard{hit: true}),
		Metrics:   NewMetricsHandler(service.NewMetricsService(), checks),
	}, RouteOptions{
		Tokens:       api.auth,
		LoginLimiter: middleware.NewRateLimiter(1, 2).Handler(),
	})
	return api
}

func (a *testAPI) token(t *testing.T, p models.Principal) string {
	t.Helper()
	token, err := a.auth.IssueToken(p)
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T, role models.Role) string {
	t.Helper()
	issued := time.Now().Add(-48 * time.Hour)
	claims := models.TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a-1",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var payload appErrors.Error
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Code
}

var adminUser = models.AdminPrincipal{ID: "a-1", Username: "admin"}
var studentUser = models.StudentPrincipal{ID: "s-1", Name: "Ana", CPF: "123.456.789-09"}

func TestRealmGuards(t *testing.T) {
	api := newTestAPI(t, nil)
	adminToken := api.token(t, adminUser)
	studentToken := api.token(t, studentUser)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
		code   string
	}{
		{"admin lists students", http.MethodGet, "/api/students", adminToken, http.StatusOK, ""},
		{"student on admin route", http.MethodGet, "/api/students", studentToken, http.StatusForbidden, appErrors.ErrForbiddenRole.Code},
		{"student on payments", http.MethodDelete, "/api/payments/p-1", studentToken, http.StatusForbidden, appErrors.ErrForbiddenRole.Code},
		{"student verifies on admin realm", http.MethodGet, "/api/auth/verify", studentToken, http.StatusForbidden, appErrors.ErrForbiddenRole.Code},
		{"admin on client route", http.MethodGet, "/api/client/profile", adminToken, http.StatusForbidden, appErrors.ErrForbiddenRole.Code},
		{"admin verifies on client realm", http.MethodGet, "/api/client/auth/verify", adminToken, http.StatusForbidden, appErrors.ErrForbiddenRole.Code},
		{"missing token", http.MethodGet, "/api/workouts", "", http.StatusUnauthorized, appErrors.ErrMissingToken.Code},
		{"forged token", http.MethodGet, "/api/workouts", adminToken + "x", http.StatusUnauthorized, appErrors.ErrInvalidToken.Code},
		{"expired token", http.MethodGet, "/api/dashboard/summary", expiredToken(t, models.RoleAdmin), http.StatusUnauthorized, appErrors.ErrExpiredToken.Code},
		{"student reads own workout", http.MethodGet, "/api/client/workout", studentToken, http.StatusOK, ""},
		{"health is public", http.MethodGet, "/api/health", "", http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, api.router, tc.method, tc.path, tc.token, "")
			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				assert.Equal(t, tc.code, errorCode(t, w.Body.Bytes()))
			}
		})
	}
}

func TestVerifyReturnsPrincipal(t *testing.T) {
	api := newTestAPI(t, nil)

	w := doRequest(t, api.router, http.MethodGet, "/api/auth/verify", api.token(t, adminUser), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"role":"admin","user":{"id":"a-1","username":"admin"}}`, w.Body.String())

	w = doRequest(t, api.router, http.MethodGet, "/api/client/auth/verify", api.token(t, studentUser), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"role":"student","user":{"id":"s-1","name":"Ana","cpf":"123.456.789-09"}}`, w.Body.String())
}

func TestClientRoutesUseTokenSubject(t *testing.T) {
	api := newTestAPI(t, nil)
	w := doRequest(t, api.router, http.MethodGet, "/api/client/profile", api.token(t, studentUser), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s-1", api.client.seen.ID)
	assert.Equal(t, "Ana", api.client.seen.Name)
}

func TestLoginIsRateLimited(t *testing.T) {
	api := newTestAPI(t, nil)
	body := `{"username":"admin","password":"secret1"}`
	assert.Equal(t, http.StatusOK, doRequest(t, api.router, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, api.router, http.MethodPost, "/api/auth/login", "", body).Code)

	w := doRequest(t, api.router, http.MethodPost, "/api/client/auth/login", "", `{"login":"x","password":"secret1"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, appErrors.ErrRateLimited.Code, errorCode(t, w.Body.Bytes()))
}

func TestReadyReportsFailingDependency(t *testing.T) {
	api := newTestAPI(t, map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("connection refused") },
	})
	w := doRequest(t, api.router, http.MethodGet, "/ready", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"database":"up","redis":"down"}}`, w.Body.String())

	healthy := newTestAPI(t, map[string]HealthCheck{"database": func(ctx context.Context) error { return nil }})
	assert.Equal(t, http.StatusOK, doRequest(t, healthy.router, http.MethodGet, "/ready", "", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, healthy.router, http.MethodGet, "/metrics", "", "").Code)
}
