package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

// clientPaymentsLimit caps the payment history shown in the student area.
const clientPaymentsLimit = 10

type profileReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// ClientService serves the read-only views of the authenticated student.
type ClientService struct {
	students     profileReader
	payments     *PaymentService
	workouts     *WorkoutService
	measurements measurementRepository
	logger       *zap.Logger
}

// NewClientService constructs the client area service.
func NewClientService(students profileReader, payments *PaymentService, workouts *WorkoutService, measurements measurementRepository, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{students: students, payments: payments, workouts: workouts, measurements: measurements, logger: logger}
}

// Profile returns the student's own record.
func (s *ClientService) Profile(ctx context.Context, principal models.StudentPrincipal) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return student, nil
}

// Payments returns the latest payments with their status text.
func (s *ClientService) Payments(ctx context.Context, principal models.StudentPrincipal) ([]models.Payment, error) {
	return s.payments.ListByStudent(ctx, principal.ID, clientPaymentsLimit)
}

// Workout returns the student's workout, or a null workout with no exercises.
func (s *ClientService) Workout(ctx context.Context, principal models.StudentPrincipal) (*models.WorkoutDetail, error) {
	return s.workouts.Detail(ctx, principal.ID)
}

// Measurements returns the measurement history, newest first.
func (s *ClientService) Measurements(ctx context.Context, principal models.StudentPrincipal) ([]models.BodyMeasurement, error) {
	rows, err := s.measurements.ListByStudent(ctx, principal.ID, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list measurements")
	}
	if rows == nil {
		rows = []models.BodyMeasurement{}
	}
	return rows, nil
}

// Progress compares the first and latest measurements and returns the weight trend.
func (s *ClientService) Progress(ctx context.Context, principal models.StudentPrincipal) (*models.ProgressSummary, error) {
	rows, err := s.measurements.ListByStudent(ctx, principal.ID, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute progress")
	}
	progress := BuildProgress(rows)
	return &progress, nil
}
