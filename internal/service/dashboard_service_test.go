package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

type memoryCache struct {
	entries map[string][]byte
	getErr  error
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	m.deletes++
	return nil
}

type countingSummaryLister struct {
	students []models.StudentSummary
	calls    int
	err      error
}

func (c *countingSummaryLister) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentSummary, error) {
	c.calls++
	return c.students, c.err
}

func summaryRow(status models.PaymentStatus, due string) models.StudentSummary {
	d := models.MustParseDate(due)
	return models.StudentSummary{PaymentStatus: &status, NextDueDate: &d}
}

func TestSummarizeStudents(t *testing.T) {
	today := models.MustParseDate("2024-03-10")
	summary := SummarizeStudents([]models.StudentSummary{
		summaryRow(models.PaymentStatusPaid, "2024-04-01"),
		summaryRow(models.PaymentStatusPending, "2024-03-10"),
		summaryRow(models.PaymentStatusPending, "2024-03-09"),
		summaryRow(models.PaymentStatusOverdue, "2024-02-01"),
		{},
	}, today)

	assert.Equal(t, 5, summary.TotalStudents)
	assert.Equal(t, 1, summary.UpToDate)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.NoPayments)
}

func TestDashboardServiceCachesSummary(t *testing.T) {
	store := newMemoryCache()
	metrics := NewMetricsService()
	cache := NewCacheService(store, metrics, time.Minute, nil, true)
	lister := &countingSummaryLister{students: []models.StudentSummary{summaryRow(models.PaymentStatusPaid, "2024-04-01")}}
	svc := NewDashboardService(lister, fixedPolicy(t, "2024-03-10T12:00:00Z"), cache, time.Minute, nil)

	first, hit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, first.UpToDate)

	second, hit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.UpToDate, second.UpToDate)
	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("hit")))

	svc.Invalidate(context.Background())
	_, hit, err = svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, lister.calls)
}

func TestDashboardServiceDegradesWhenCacheFails(t *testing.T) {
	store := newMemoryCache()
	store.getErr = errors.New("redis: connection refused")
	cache := NewCacheService(store, nil, time.Minute, nil, true)
	lister := &countingSummaryLister{}
	svc := NewDashboardService(lister, fixedPolicy(t, "2024-03-10T12:00:00Z"), cache, time.Minute, nil)

	summary, hit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, summary.TotalStudents)
}

func TestDashboardServiceWithoutCache(t *testing.T) {
	lister := &countingSummaryLister{err: errors.New("db down")}
	svc := NewDashboardService(lister, fixedPolicy(t, "2024-03-10T12:00:00Z"), nil, 0, nil)

	_, _, err := svc.Summary(context.Background())
	assertAppCode(t, err, appErrors.ErrInternal)
	svc.Invalidate(context.Background())
}
