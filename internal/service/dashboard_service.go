package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

const dashboardSummaryKey = "dashboard:summary"

type studentSummaryLister interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentSummary, error)
}

// DashboardService aggregates membership counts for the admin home screen.
type DashboardService struct {
	students studentSummaryLister
	billing  *BillingPolicy
	cache    *CacheService
	ttl      time.Duration
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService. cache may be nil.
func NewDashboardService(students studentSummaryLister, billing *BillingPolicy, cache *CacheService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{students: students, billing: billing, cache: cache, ttl: ttl, logger: logger}
}

// Summary counts students by the status text of their latest payment. The bool reports a cache hit.
func (s *DashboardService) Summary(ctx context.Context) (*models.PaymentSummary, bool, error) {
	var cached models.PaymentSummary
	if s.cache.Get(ctx, dashboardSummaryKey, &cached) {
		return &cached, true, nil
	}

	students, err := s.students.List(ctx, models.StudentFilter{})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build dashboard summary")
	}
	summary := SummarizeStudents(students, s.billing.Today())
	summary.GeneratedAt = time.Now().UTC()

	s.cache.Set(ctx, dashboardSummaryKey, summary, s.ttl)
	return &summary, false, nil
}

// Invalidate drops the cached summary after student or payment writes.
func (s *DashboardService) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, dashboardSummaryKey)
}

// SummarizeStudents buckets students by the derived status of their latest payment.
func SummarizeStudents(students []models.StudentSummary, today models.Date) models.PaymentSummary {
	summary := models.PaymentSummary{TotalStudents: len(students)}
	for _, st := range students {
		if st.PaymentStatus == nil || st.NextDueDate == nil {
			summary.NoPayments++
			continue
		}
		switch DeriveStatusText(*st.PaymentStatus, *st.NextDueDate, today) {
		case models.StatusTextUpToDate:
			summary.UpToDate++
		case models.StatusTextExpired:
			summary.Expired++
		case models.StatusTextOverdue:
			summary.Overdue++
		default:
			summary.Pending++
		}
	}
	return summary
}
