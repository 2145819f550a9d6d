package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/repository"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

type fakeStudentRepo struct {
	students   map[string]models.Student
	summaries  []models.StudentSummary
	lastFilter models.StudentFilter
	created    *models.Student
	workout    *models.Workout
	payment    *models.Payment
	updated    *models.Student
	deleted    []string
	createErr  error
	listErr    error
	cpfTakenBy map[string]string
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[string]models.Student{}, cpfTakenBy: map[string]string{}}
	for _, s := range students {
		repo.students[s.ID] = s
		repo.cpfTakenBy[s.CPF] = s.ID
	}
	return repo
}

func (f *fakeStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentSummary, error) {
	f.lastFilter = filter
	return f.summaries, f.listErr
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentRepo) ExistsByCPF(ctx context.Context, cpf string, excludeID string) (bool, error) {
	id, ok := f.cpfTakenBy[cpf]
	return ok && id != excludeID, nil
}

func (f *fakeStudentRepo) CreateWithEnrollment(ctx context.Context, student *models.Student, workout *models.Workout, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = "new-student"
	workout.StudentID = student.ID
	payment.StudentID = student.ID
	f.created, f.workout, f.payment = student, workout, payment
	return nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	f.updated = student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeWorkoutRepo struct {
	workouts  map[string]models.Workout
	exercises map[string][]models.Exercise
	upserted  *models.Workout
	replaced  []models.Exercise
}

func newFakeWorkoutRepo(workouts ...models.Workout) *fakeWorkoutRepo {
	repo := &fakeWorkoutRepo{workouts: map[string]models.Workout{}, exercises: map[string][]models.Exercise{}}
	for _, w := range workouts {
		repo.workouts[w.StudentID] = w
	}
	return repo
}

func (f *fakeWorkoutRepo) List(ctx context.Context) ([]models.WorkoutWithStudent, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) FindByStudent(ctx context.Context, studentID string) (*models.Workout, error) {
	if w, ok := f.workouts[studentID]; ok {
		return &w, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeWorkoutRepo) ListExercises(ctx context.Context, workoutID string) ([]models.Exercise, error) {
	return f.exercises[workoutID], nil
}

func (f *fakeWorkoutRepo) Upsert(ctx context.Context, workout *models.Workout, exercises []models.Exercise) error {
	if existing, ok := f.workouts[workout.StudentID]; ok {
		workout.ID = existing.ID
	} else if workout.ID == "" {
		workout.ID = "w-" + workout.StudentID
	}
	f.workouts[workout.StudentID] = *workout
	if exercises != nil {
		f.exercises[workout.ID] = exercises
	}
	f.upserted = workout
	f.replaced = exercises
	return nil
}

func (f *fakeWorkoutRepo) DeleteByStudent(ctx context.Context, studentID string) (bool, error) {
	if _, ok := f.workouts[studentID]; !ok {
		return false, nil
	}
	delete(f.workouts, studentID)
	return true, nil
}

type fakeMeasurementRepo struct {
	rows        []models.BodyMeasurement
	newestFirst *bool
	created     *models.BodyMeasurement
}

func (f *fakeMeasurementRepo) ListByStudent(ctx context.Context, studentID string, newestFirst bool) ([]models.BodyMeasurement, error) {
	f.newestFirst = &newestFirst
	return f.rows, nil
}

func (f *fakeMeasurementRepo) CreateAndSnapshot(ctx context.Context, m *models.BodyMeasurement) error {
	m.ID = "m-new"
	f.created = m
	return nil
}

type studentFixture struct {
	svc          *StudentService
	repo         *fakeStudentRepo
	workouts     *fakeWorkoutRepo
	payments     *fakePaymentRepo
	measurements *fakeMeasurementRepo
	invalidator  *countingInvalidator
}

func newStudentFixture(t *testing.T, students ...models.Student) *studentFixture {
	t.Helper()
	f := &studentFixture{
		repo:         newFakeStudentRepo(students...),
		workouts:     newFakeWorkoutRepo(),
		payments:     newFakePaymentRepo(),
		measurements: &fakeMeasurementRepo{},
		invalidator:  &countingInvalidator{},
	}
	f.svc = NewStudentService(f.repo, f.workouts, f.payments, f.measurements, fixedPolicy(t, "2024-03-10T12:00:00Z"), f.invalidator, nil, nil, nil)
	f.svc.hashCost = bcrypt.MinCost
	return f
}

func validCreateRequest() CreateStudentRequest {
	return CreateStudentRequest{
		Name:             "Ana Souza",
		CPF:              "123.456.789-09",
		BirthDate:        "1990-05-01",
		Phone:            "11999990000",
		StartDate:        "2024-01-31",
		WorkoutName:      "Hipertrofia",
		WorkoutType:      "A/B",
		WorkoutFrequency: "3x",
	}
}

func TestStudentServiceCreateRegistersFirstPendingPayment(t *testing.T) {
	f := newStudentFixture(t)
	req := validCreateRequest()
	req.Password = "aluno123"

	student, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "new-student", student.ID)
	require.NotNil(t, f.repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*f.repo.created.PasswordHash), []byte("aluno123")))

	require.NotNil(t, f.repo.payment)
	assert.Equal(t, models.PaymentStatusPending, f.repo.payment.Status)
	assert.Equal(t, 120.0, f.repo.payment.Amount)
	assert.Equal(t, "2024-01-31", f.repo.payment.PaymentDate.String())
	assert.Equal(t, "2024-02-29", f.repo.payment.DueDate.String())
	assert.Empty(t, f.repo.payment.PaymentMethod)
	assert.Equal(t, "Hipertrofia", f.repo.workout.Name)
	assert.Equal(t, 1, f.invalidator.calls)
}

func TestStudentServiceCreateWithoutPasswordHasNoPortalAccess(t *testing.T) {
	f := newStudentFixture(t)
	_, err := f.svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.False(t, f.repo.created.HasPortalAccess())
}

func TestStudentServiceCreateDuplicateCPF(t *testing.T) {
	f := newStudentFixture(t, models.Student{ID: "s-1", CPF: "123.456.789-09"})
	_, err := f.svc.Create(context.Background(), validCreateRequest())
	assertAppCode(t, err, appErrors.ErrDuplicateCPF)
	assert.Nil(t, f.repo.created)

	race := newStudentFixture(t)
	race.repo.createErr = repository.ErrDuplicateCPF
	_, err = race.svc.Create(context.Background(), validCreateRequest())
	assertAppCode(t, err, appErrors.ErrDuplicateCPF)
	assert.Zero(t, race.invalidator.calls)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	f := newStudentFixture(t)
	req := validCreateRequest()
	req.CPF = "123"
	req.BirthDate = "01/05/1990"
	req.WorkoutName = ""
	req.Password = "123"
	negative := -3.0
	req.Weight = &negative

	_, err := f.svc.Create(context.Background(), req)
	assertAppCode(t, err, appErrors.ErrValidation)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	fields := map[string]bool{}
	for _, fe := range appErr.Fields {
		fields[fe.Field] = true
	}
	for _, name := range []string{"cpf", "birth_date", "workout_name", "password", "weight"} {
		assert.True(t, fields[name], name)
	}
}

func TestStudentServiceUpdateKeepsPasswordWhenOmitted(t *testing.T) {
	hash := "existing"
	f := newStudentFixture(t, models.Student{ID: "s-1", CPF: "123.456.789-09", StartDate: models.MustParseDate("2024-01-01"), PasswordHash: &hash})

	updated, err := f.svc.Update(context.Background(), "s-1", UpdateStudentRequest{
		Name:      "Ana Lima",
		CPF:       "123.456.789-09",
		BirthDate: "1990-05-01",
		Phone:     "11999990000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", updated.Name)
	assert.Nil(t, f.repo.updated.PasswordHash)
	assert.Equal(t, "2024-01-01", f.repo.updated.StartDate.String())
}

func TestStudentServiceUpdateErrors(t *testing.T) {
	f := newStudentFixture(t,
		models.Student{ID: "s-1", CPF: "123.456.789-09"},
		models.Student{ID: "s-2", CPF: "987.654.321-00"},
	)
	req := UpdateStudentRequest{Name: "Ana", CPF: "987.654.321-00", BirthDate: "1990-05-01", Phone: "1"}
	_, err := f.svc.Update(context.Background(), "s-1", req)
	assertAppCode(t, err, appErrors.ErrDuplicateCPF)

	_, err = f.svc.Update(context.Background(), "missing", req)
	assertAppCode(t, err, appErrors.ErrStudentNotFound)
}

func TestStudentServiceGetDetail(t *testing.T) {
	f := newStudentFixture(t, models.Student{ID: "s-1", Name: "Ana"})
	f.payments.payments["p-1"] = models.Payment{ID: "p-1", StudentID: "s-1", Status: models.PaymentStatusPaid}

	detail, err := f.svc.Get(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Nil(t, detail.Workout)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, models.StatusTextUpToDate, detail.Payments[0].StatusText)
	assert.Equal(t, 0, f.payments.lastLimit)

	_, err = f.svc.Get(context.Background(), "missing")
	assertAppCode(t, err, appErrors.ErrStudentNotFound)
}

func TestStudentServiceListDerivesStatusText(t *testing.T) {
	f := newStudentFixture(t)
	pending := models.PaymentStatusPending
	due := models.MustParseDate("2024-03-01")
	f.repo.summaries = []models.StudentSummary{
		{Student: models.Student{ID: "s-1"}, PaymentStatus: &pending, NextDueDate: &due},
		{Student: models.Student{ID: "s-2"}},
	}

	students, err := f.svc.List(context.Background(), "  ana ")
	require.NoError(t, err)
	assert.Equal(t, "ana", f.repo.lastFilter.Search)
	require.NotNil(t, students[0].PaymentStatusText)
	assert.Equal(t, models.StatusTextExpired, *students[0].PaymentStatusText)
	assert.Nil(t, students[1].PaymentStatusText)
}

func TestStudentServiceDelete(t *testing.T) {
	f := newStudentFixture(t, models.Student{ID: "s-1"})
	require.NoError(t, f.svc.Delete(context.Background(), "s-1"))
	assert.Equal(t, []string{"s-1"}, f.repo.deleted)
	assert.Equal(t, 1, f.invalidator.calls)
	assertAppCode(t, f.svc.Delete(context.Background(), "s-9"), appErrors.ErrStudentNotFound)
}

func TestStudentServiceRecordMeasurement(t *testing.T) {
	f := newStudentFixture(t, models.Student{ID: "s-1"})
	weight := 80.2
	m, err := f.svc.RecordMeasurement(context.Background(), "s-1", RecordMeasurementRequest{
		MeasurementDate: "2024-03-01",
		SnapshotInput:   SnapshotInput{Weight: &weight},
	})
	require.NoError(t, err)
	assert.Equal(t, "m-new", m.ID)
	assert.Equal(t, 80.2, *f.measurements.created.Weight)

	_, err = f.svc.RecordMeasurement(context.Background(), "s-9", RecordMeasurementRequest{MeasurementDate: "2024-03-01"})
	assertAppCode(t, err, appErrors.ErrStudentNotFound)

	rows, err := f.svc.ListMeasurements(context.Background(), "s-1")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.True(t, *f.measurements.newestFirst)
}

func TestStudentServiceCreateRejectsValuesBeyondColumnLimits(t *testing.T) {
	f := newStudentFixture(t)
	req := validCreateRequest()
	weight, height, waist := 1000.0, 10.0, 999.995
	email := "anas@" + strings.Repeat("abcdefghi.", 9) + "com.br"
	req.Weight, req.Height, req.WaistCircumference = &weight, &height, &waist
	req.Email = &email

	_, err := f.svc.Create(context.Background(), req)
	assertAppCode(t, err, appErrors.ErrValidation)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	fields := map[string]string{}
	for _, fe := range appErr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "weight must be at most 999.99", fields["weight"])
	assert.Equal(t, "height must be at most 9.99", fields["height"])
	assert.Contains(t, fields, "waist_circumference")
	assert.Equal(t, "email must be at most 100 characters", fields["email"])
	assert.Nil(t, f.repo.created)
}

func TestStudentServiceCreateAcceptsColumnMaximums(t *testing.T) {
	f := newStudentFixture(t)
	req := validCreateRequest()
	weight, height, arm := 999.99, 9.99, 999.99
	email := "ana@" + strings.Repeat("abcdefghi.", 9) + "com.br"
	req.Weight, req.Height, req.ArmCircumference = &weight, &height, &arm
	req.Email = &email

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, f.repo.created.Height)
	assert.Equal(t, 9.99, *f.repo.created.Height)
}

func TestStudentServiceRecordMeasurementRejectsOverflow(t *testing.T) {
	f := newStudentFixture(t, models.Student{ID: "s-1"})
	height := 175.0
	_, err := f.svc.RecordMeasurement(context.Background(), "s-1", RecordMeasurementRequest{
		MeasurementDate: "2024-03-01",
		SnapshotInput:   SnapshotInput{Height: &height},
	})
	assertAppCode(t, err, appErrors.ErrValidation)
	assert.Nil(t, f.measurements.created)
}
