package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/validation"
)

type paymentRepository interface {
	ListAll(ctx context.Context) ([]models.PaymentWithStudent, error)
	ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	CreateWithNextCycle(ctx context.Context, paid *models.Payment, next *models.Payment) error
	UpdateStatus(ctx context.Context, id string, status models.PaymentStatus) error
	Delete(ctx context.Context, id string) error
}

type studentLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// summaryInvalidator drops cached aggregates after billing writes.
type summaryInvalidator interface {
	Invalidate(ctx context.Context)
}

// RecordPaymentRequest is the payload for registering a received payment.
type RecordPaymentRequest struct {
	StudentID     string      `json:"student_id" validate:"required,uuid"`
	Amount        json.Number `json:"amount" validate:"required,numeric"`
	PaymentDate   string      `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string      `json:"payment_method" validate:"required,max=50"`
	Notes         string      `json:"notes"`
}

// UpdatePaymentStatusRequest changes the stored status of a payment.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid pending overdue"`
}

// PaymentService implements the payment lifecycle.
type PaymentService struct {
	repo      paymentRepository
	students  studentLookup
	billing   *BillingPolicy
	summary   summaryInvalidator
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPaymentService constructs the payment service. summary and metrics may be nil.
func NewPaymentService(repo paymentRepository, students studentLookup, billing *BillingPolicy, summary summaryInvalidator, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{repo: repo, students: students, billing: billing, summary: summary, metrics: metrics, validator: validate, logger: logger}
}

// List returns every payment with its student and derived status text.
func (s *PaymentService) List(ctx context.Context) ([]models.PaymentWithStudent, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	today := s.billing.Today()
	for i := range payments {
		payments[i].StatusText = DeriveStatusText(payments[i].Status, payments[i].DueDate, today)
	}
	if payments == nil {
		payments = []models.PaymentWithStudent{}
	}
	return payments, nil
}

// ListByStudent returns a student's payments newest first; limit <= 0 means all.
func (s *PaymentService) ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Payment, error) {
	payments, err := s.repo.ListByStudent(ctx, studentID, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student payments")
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return s.billing.Annotate(payments), nil
}

// Record stores a paid row and the next cycle's pending row.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*models.RecordedPayment, error) {
	if err := validation.Struct(s.validator, req, "invalid payment payload"); err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	paymentDate, err := models.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, fieldError("payment_date", "payment_date must be a valid date (YYYY-MM-DD)")
	}

	exists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "")
	}

	due := NextDueDate(paymentDate)
	method := strings.TrimSpace(req.PaymentMethod)
	paid := models.Payment{
		StudentID:     req.StudentID,
		Amount:        amount,
		PaymentDate:   paymentDate,
		DueDate:       due,
		Status:        models.PaymentStatusPaid,
		PaymentMethod: method,
		Notes:         req.Notes,
	}
	next := models.Payment{
		StudentID:     req.StudentID,
		Amount:        amount,
		PaymentDate:   due,
		DueDate:       due,
		Status:        models.PaymentStatusPending,
		PaymentMethod: method,
	}

	start := time.Now()
	err = s.repo.CreateWithNextCycle(ctx, &paid, &next)
	s.metrics.ObserveDBOperation("record_payment", err, time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}
	s.metrics.RecordPaymentCreated(string(models.PaymentStatusPaid))
	s.metrics.RecordPaymentCreated(string(models.PaymentStatusPending))
	s.invalidate(ctx)

	today := s.billing.Today()
	paid.StatusText = DeriveStatusText(paid.Status, paid.DueDate, today)
	next.StatusText = DeriveStatusText(next.Status, next.DueDate, today)
	s.logger.Info("payment recorded",
		zap.String("student_id", req.StudentID),
		zap.String("payment_id", paid.ID),
		zap.String("next_due_date", due.String()),
	)
	return &models.RecordedPayment{Paid: paid, NextPending: next}, nil
}

// UpdateStatus overwrites a payment's status without touching any other row.
func (s *PaymentService) UpdateStatus(ctx context.Context, id string, req UpdatePaymentStatusRequest) (*models.Payment, error) {
	if err := validation.Struct(s.validator, req, "invalid status payload"); err != nil {
		return nil, err
	}
	payment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	status := models.PaymentStatus(req.Status)
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update payment status")
	}
	s.invalidate(ctx)
	payment.Status = status
	payment.StatusText = s.billing.StatusText(payment.Status, payment.DueDate)
	return payment, nil
}

// Delete removes one payment.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete payment")
	}
	s.invalidate(ctx)
	return nil
}

func (s *PaymentService) find(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrPaymentNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	return payment, nil
}

func (s *PaymentService) invalidate(ctx context.Context) {
	if s.summary != nil {
		s.summary.Invalidate(ctx)
	}
}

// maxAmount is the largest value payments.amount (NUMERIC(10,2)) can hold.
const maxAmount = 99999999.99

// parseAmount accepts strictly positive amounts that fit the amount column.
func parseAmount(raw json.Number) (float64, error) {
	amount, err := strconv.ParseFloat(raw.String(), 64)
	if err != nil {
		return 0, fieldError("amount", "amount must be numeric")
	}
	if amount <= 0 {
		return 0, fieldError("amount", "amount must be greater than 0")
	}
	if math.Round(amount*100)/100 > maxAmount {
		return 0, fieldError("amount", "amount must be at most 99999999.99")
	}
	return amount, nil
}

func fieldError(field, message string) error {
	return appErrors.Validation("invalid payload", []appErrors.FieldError{{Field: field, Message: message}})
}
