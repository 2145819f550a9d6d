package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/repository"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/validation"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentSummary, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID string) (bool, error)
	CreateWithEnrollment(ctx context.Context, student *models.Student, workout *models.Workout, payment *models.Payment) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type workoutReader interface {
	FindByStudent(ctx context.Context, studentID string) (*models.Workout, error)
}

type measurementRepository interface {
	ListByStudent(ctx context.Context, studentID string, newestFirst bool) ([]models.BodyMeasurement, error)
	CreateAndSnapshot(ctx context.Context, m *models.BodyMeasurement) error
}

// SnapshotInput carries optional body measurements in centimetres, kilograms and metres.
// Bounds follow the NUMERIC(5,2) and NUMERIC(3,2) columns they are stored in.
type SnapshotInput struct {
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0,lte=999.99"`
	Height             *float64 `json:"height" validate:"omitempty,gt=0,lte=9.99"`
	ChestCircumference *float64 `json:"chest_circumference" validate:"omitempty,gt=0,lte=999.99"`
	WaistCircumference *float64 `json:"waist_circumference" validate:"omitempty,gt=0,lte=999.99"`
	HipCircumference   *float64 `json:"hip_circumference" validate:"omitempty,gt=0,lte=999.99"`
	ArmCircumference   *float64 `json:"arm_circumference" validate:"omitempty,gt=0,lte=999.99"`
	ThighCircumference *float64 `json:"thigh_circumference" validate:"omitempty,gt=0,lte=999.99"`
}

func (in SnapshotInput) toModel() models.BodySnapshot {
	return models.BodySnapshot{
		Weight:             in.Weight,
		Height:             in.Height,
		ChestCircumference: in.ChestCircumference,
		WaistCircumference: in.WaistCircumference,
		HipCircumference:   in.HipCircumference,
		ArmCircumference:   in.ArmCircumference,
		ThighCircumference: in.ThighCircumference,
	}
}

// CreateStudentRequest registers a student with their first workout.
type CreateStudentRequest struct {
	Name               string  `json:"name" validate:"required,max=100"`
	CPF                string  `json:"cpf" validate:"required,cpf"`
	BirthDate          string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Phone              string  `json:"phone" validate:"required,max=20"`
	Email              *string `json:"email" validate:"omitempty,max=100,email"`
	Address            string  `json:"address"`
	StartDate          string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	Password           string  `json:"password" validate:"omitempty,min=6"`
	WorkoutName        string  `json:"workout_name" validate:"required,max=100"`
	WorkoutType        string  `json:"workout_type" validate:"required,max=50"`
	WorkoutFrequency   string  `json:"workout_frequency" validate:"required,max=50"`
	WorkoutDescription string  `json:"workout_description"`
	SnapshotInput
}

// UpdateStudentRequest edits a student. Empty start_date and password keep the stored values.
type UpdateStudentRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	CPF       string  `json:"cpf" validate:"required,cpf"`
	BirthDate string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Phone     string  `json:"phone" validate:"required,max=20"`
	Email     *string `json:"email" validate:"omitempty,max=100,email"`
	Address   string  `json:"address"`
	StartDate string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Password  string  `json:"password" validate:"omitempty,min=6"`
	SnapshotInput
}

// RecordMeasurementRequest adds a body measurement to the history.
type RecordMeasurementRequest struct {
	MeasurementDate string `json:"measurement_date" validate:"required,datetime=2006-01-02"`
	Notes           string `json:"notes"`
	SnapshotInput
}

// StudentService handles the admin student use-cases.
type StudentService struct {
	repo         studentRepository
	workouts     workoutReader
	payments     paymentRepository
	measurements measurementRepository
	billing      *BillingPolicy
	summary      summaryInvalidator
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	hashCost     int
}

// NewStudentService constructs the student service. summary and metrics may be nil.
func NewStudentService(repo studentRepository, workouts workoutReader, payments paymentRepository, measurements measurementRepository, billing *BillingPolicy, summary summaryInvalidator, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{
		repo:         repo,
		workouts:     workouts,
		payments:     payments,
		measurements: measurements,
		billing:      billing,
		summary:      summary,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		hashCost:     bcrypt.DefaultCost,
	}
}

// List returns students ordered by name with their latest payment state; search filters by name.
func (s *StudentService) List(ctx context.Context, search string) ([]models.StudentSummary, error) {
	students, err := s.repo.List(ctx, models.StudentFilter{Search: strings.TrimSpace(search)})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	if students == nil {
		return []models.StudentSummary{}, nil
	}
	today := s.billing.Today()
	for i := range students {
		if students[i].PaymentStatus == nil || students[i].NextDueDate == nil {
			continue
		}
		text := DeriveStatusText(*students[i].PaymentStatus, *students[i].NextDueDate, today)
		students[i].PaymentStatusText = &text
	}
	return students, nil
}

// Get returns the student with workout and payment history.
func (s *StudentService) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	student, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	workout, err := s.workouts.FindByStudent(ctx, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load workout")
		}
		workout = nil
	}
	payments, err := s.payments.ListByStudent(ctx, id, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payments")
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return &models.StudentDetail{Student: *student, Workout: workout, Payments: s.billing.Annotate(payments)}, nil
}

// Create registers the student, their workout and the first pending payment.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := validation.Struct(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	birth, start, err := parseStudentDates(req.BirthDate, req.StartDate)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCPFAvailable(ctx, req.CPF, ""); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:         strings.TrimSpace(req.Name),
		CPF:          req.CPF,
		BirthDate:    birth,
		Phone:        req.Phone,
		Email:        normalizeEmail(req.Email),
		Address:      req.Address,
		StartDate:    start,
		BodySnapshot: req.SnapshotInput.toModel(),
	}
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = &hash
	}
	workout := &models.Workout{
		Name:        req.WorkoutName,
		Type:        req.WorkoutType,
		Frequency:   req.WorkoutFrequency,
		Description: req.WorkoutDescription,
	}
	payment := &models.Payment{
		Amount:      s.billing.MembershipFee(),
		PaymentDate: start,
		DueDate:     NextDueDate(start),
		Status:      models.PaymentStatusPending,
	}

	began := time.Now()
	err = s.repo.CreateWithEnrollment(ctx, student, workout, payment)
	s.metrics.ObserveDBOperation("register_student", err, time.Since(began))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCPF) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateCPF, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register student")
	}
	s.metrics.RecordPaymentCreated(string(models.PaymentStatusPending))
	s.invalidate(ctx)
	s.logger.Info("student registered", zap.String("student_id", student.ID), zap.String("first_due_date", payment.DueDate.String()))
	return student, nil
}

// Update overwrites the student's editable fields.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := validation.Struct(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	student, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	birth, err := models.ParseDate(req.BirthDate)
	if err != nil {
		return nil, fieldError("birth_date", "birth_date must be a valid date (YYYY-MM-DD)")
	}
	if req.StartDate != "" {
		start, err := models.ParseDate(req.StartDate)
		if err != nil {
			return nil, fieldError("start_date", "start_date must be a valid date (YYYY-MM-DD)")
		}
		student.StartDate = start
	}
	if err := s.ensureCPFAvailable(ctx, req.CPF, id); err != nil {
		return nil, err
	}

	student.Name = strings.TrimSpace(req.Name)
	student.CPF = req.CPF
	student.BirthDate = birth
	student.Phone = req.Phone
	student.Email = normalizeEmail(req.Email)
	student.Address = req.Address
	student.BodySnapshot = req.SnapshotInput.toModel()
	student.PasswordHash = nil
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = &hash
	}

	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateCPF) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateCPF, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidate(ctx)
	return student, nil
}

// Delete removes the student together with workout, payments and measurements.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidate(ctx)
	s.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

// ListMeasurements returns the student's measurement history, newest first.
func (s *StudentService) ListMeasurements(ctx context.Context, id string) ([]models.BodyMeasurement, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.measurements.ListByStudent(ctx, id, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list measurements")
	}
	if rows == nil {
		rows = []models.BodyMeasurement{}
	}
	return rows, nil
}

// RecordMeasurement appends a measurement; the newest one feeds the student's current snapshot.
func (s *StudentService) RecordMeasurement(ctx context.Context, id string, req RecordMeasurementRequest) (*models.BodyMeasurement, error) {
	if err := validation.Struct(s.validator, req, "invalid measurement payload"); err != nil {
		return nil, err
	}
	date, err := models.ParseDate(req.MeasurementDate)
	if err != nil {
		return nil, fieldError("measurement_date", "measurement_date must be a valid date (YYYY-MM-DD)")
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	m := &models.BodyMeasurement{
		StudentID:       id,
		MeasurementDate: date,
		BodySnapshot:    req.SnapshotInput.toModel(),
		Notes:           req.Notes,
	}
	began := time.Now()
	err = s.measurements.CreateAndSnapshot(ctx, m)
	s.metrics.ObserveDBOperation("record_measurement", err, time.Since(began))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record measurement")
	}
	return m, nil
}

func (s *StudentService) find(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

func (s *StudentService) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrStudentNotFound, "")
	}
	return nil
}

func (s *StudentService) ensureCPFAvailable(ctx context.Context, cpf, excludeID string) error {
	taken, err := s.repo.ExistsByCPF(ctx, cpf, excludeID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate cpf")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrDuplicateCPF, "")
	}
	return nil
}

func (s *StudentService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	return string(hash), nil
}

func (s *StudentService) invalidate(ctx context.Context) {
	if s.summary != nil {
		s.summary.Invalidate(ctx)
	}
}

func parseStudentDates(birthRaw, startRaw string) (models.Date, models.Date, error) {
	birth, err := models.ParseDate(birthRaw)
	if err != nil {
		return models.Date{}, models.Date{}, fieldError("birth_date", "birth_date must be a valid date (YYYY-MM-DD)")
	}
	start, err := models.ParseDate(startRaw)
	if err != nil {
		return models.Date{}, models.Date{}, fieldError("start_date", "start_date must be a valid date (YYYY-MM-DD)")
	}
	return birth, start, nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
