package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("MEMBERSHIP_FEE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 120.00, cfg.Billing.MembershipFee)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DashboardTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("MEMBERSHIP_FEE", "99.90")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 99.90, cfg.Billing.MembershipFee)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestBillingLocationFallback(t *testing.T) {
	assert.Equal(t, time.UTC, BillingConfig{}.Location())
	assert.Equal(t, time.UTC, BillingConfig{TimeZone: "Not/AZone"}.Location())
}
