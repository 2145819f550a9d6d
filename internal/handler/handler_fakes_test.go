package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/service"
)

type fakeVerifier struct {
	adminErr   error
	studentErr error
}

func (f *fakeVerifier) VerifyAdmin(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	return &models.AdminLoginResponse{Message: "ok", Token: "t", Admin: models.AdminPrincipal{ID: "a-1", Username: req.Username}}, nil
}

func (f *fakeVerifier) VerifyStudent(ctx context.Context, req models.StudentLoginRequest) (*models.StudentLoginResponse, error) {
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	return &models.StudentLoginResponse{Message: "ok", Token: "t", Student: models.StudentInfo{ID: "s-1", CPF: req.Login}}, nil
}

type fakeStudents struct {
	search  string
	created *service.CreateStudentRequest
	err     error
}

func (f *fakeStudents) List(ctx context.Context, search string) ([]models.StudentSummary, error) {
	f.search = search
	return []models.StudentSummary{}, f.err
}

func (f *fakeStudents) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	return &models.StudentDetail{Student: models.Student{ID: id}, Payments: []models.Payment{}}, f.err
}

func (f *fakeStudents) Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &req
	return &models.Student{ID: "s-new", Name: req.Name}, nil
}

func (f *fakeStudents) Update(ctx context.Context, id string, req service.UpdateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: id}, f.err
}

func (f *fakeStudents) Delete(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeStudents) ListMeasurements(ctx context.Context, id string) ([]models.BodyMeasurement, error) {
	return []models.BodyMeasurement{}, f.err
}

func (f *fakeStudents) RecordMeasurement(ctx context.Context, id string, req service.RecordMeasurementRequest) (*models.BodyMeasurement, error) {
	return &models.BodyMeasurement{ID: "m-1", StudentID: id}, f.err
}

type fakePayments struct {
	recorded *service.RecordPaymentRequest
	err      error
}

func (f *fakePayments) List(ctx context.Context) ([]models.PaymentWithStudent, error) {
	return []models.PaymentWithStudent{}, f.err
}

func (f *fakePayments) ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Payment, error) {
	return []models.Payment{}, f.err
}

func (f *fakePayments) Record(ctx context.Context, req service.RecordPaymentRequest) (*models.RecordedPayment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recorded = &req
	return &models.RecordedPayment{
		Paid:        models.Payment{ID: "p-1", Status: models.PaymentStatusPaid},
		NextPending: models.Payment{ID: "p-2", Status: models.PaymentStatusPending},
	}, nil
}

func (f *fakePayments) UpdateStatus(ctx context.Context, id string, req service.UpdatePaymentStatusRequest) (*models.Payment, error) {
	return &models.Payment{ID: id, Status: models.PaymentStatus(req.Status)}, f.err
}

func (f *fakePayments) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeExporter struct {
	format string
}

func (f *fakeExporter) Payments(ctx context.Context, format string) (*service.ExportFile, error) {
	f.format = format
	return &service.ExportFile{Filename: "payments-2024-03-10.csv", ContentType: "text/csv; charset=utf-8", Content: []byte("a;b\n")}, nil
}

type fakeWorkouts struct{ err error }

func (f *fakeWorkouts) List(ctx context.Context) ([]models.WorkoutWithStudent, error) {
	return []models.WorkoutWithStudent{}, f.err
}

func (f *fakeWorkouts) Get(ctx context.Context, studentID string) (*models.WorkoutDetail, error) {
	return &models.WorkoutDetail{Workout: &models.Workout{StudentID: studentID}, Exercises: []models.Exercise{}}, f.err
}

func (f *fakeWorkouts) Upsert(ctx context.Context, studentID string, req service.UpsertWorkoutRequest) (*models.WorkoutDetail, error) {
	return &models.WorkoutDetail{Workout: &models.Workout{StudentID: studentID, Name: req.Name}, Exercises: []models.Exercise{}}, f.err
}

func (f *fakeWorkouts) Delete(ctx context.Context, studentID string) error {
	return f.err
}

type fakeClient struct {
	seen models.StudentPrincipal
}

func (f *fakeClient) Profile(ctx context.Context, p models.StudentPrincipal) (*models.Student, error) {
	f.seen = p
	return &models.Student{ID: p.ID, Name: p.Name}, nil
}

func (f *fakeClient) Payments(ctx context.Context, p models.StudentPrincipal) ([]models.Payment, error) {
	f.seen = p
	return []models.Payment{}, nil
}

func (f *fakeClient) Workout(ctx context.Context, p models.StudentPrincipal) (*models.WorkoutDetail, error) {
	f.seen = p
	return &models.WorkoutDetail{Exercises: []models.Exercise{}}, nil
}

func (f *fakeClient) Measurements(ctx context.Context, p models.StudentPrincipal) ([]models.BodyMeasurement, error) {
	f.seen = p
	return []models.BodyMeasurement{}, nil
}

func (f *fakeClient) Progress(ctx context.Context, p models.StudentPrincipal) (*models.ProgressSummary, error) {
	f.seen = p
	return &models.ProgressSummary{WeightHistory: []models.WeightPoint{}}, nil
}

type fakeDashboard struct {
	hit bool
}

func (f *fakeDashboard) Summary(ctx context.Context) (*models.PaymentSummary, bool, error) {
	return &models.PaymentSummary{TotalStudents: 3, UpToDate: 2, Pending: 1}, f.hit, nil
}

func doRequest(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
