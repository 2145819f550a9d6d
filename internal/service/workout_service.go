package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/validation"
)

type workoutRepository interface {
	List(ctx context.Context) ([]models.WorkoutWithStudent, error)
	FindByStudent(ctx context.Context, studentID string) (*models.Workout, error)
	ListExercises(ctx context.Context, workoutID string) ([]models.Exercise, error)
	Upsert(ctx context.Context, workout *models.Workout, exercises []models.Exercise) error
	DeleteByStudent(ctx context.Context, studentID string) (bool, error)
}

// ExerciseInput is one entry of a workout's exercise list.
type ExerciseInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Sets        *int    `json:"sets" validate:"omitempty,gt=0,lte=1000"`
	Reps        *string `json:"reps" validate:"omitempty,max=20"`
	Weight      *string `json:"weight" validate:"omitempty,max=20"`
	RestSeconds *int    `json:"rest_seconds" validate:"omitempty,gte=0,lte=86400"`
	Notes       string  `json:"notes"`
}

// UpsertWorkoutRequest creates or replaces a student's workout. Exercises, when present, replace the stored list.
type UpsertWorkoutRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Type        string           `json:"type" validate:"required,max=50"`
	Frequency   string           `json:"frequency" validate:"required,max=50"`
	Description string           `json:"description"`
	Exercises   *[]ExerciseInput `json:"exercises" validate:"omitempty,dive"`
}

// WorkoutService manages training plans.
type WorkoutService struct {
	repo      workoutRepository
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWorkoutService constructs the workout service.
func NewWorkoutService(repo workoutRepository, students studentLookup, validate *validator.Validate, logger *zap.Logger) *WorkoutService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkoutService{repo: repo, students: students, validator: validate, logger: logger}
}

// List returns every workout with its student.
func (s *WorkoutService) List(ctx context.Context) ([]models.WorkoutWithStudent, error) {
	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list workouts")
	}
	if workouts == nil {
		workouts = []models.WorkoutWithStudent{}
	}
	return workouts, nil
}

// Get returns the student's workout and exercises or WorkoutNotFound.
func (s *WorkoutService) Get(ctx context.Context, studentID string) (*models.WorkoutDetail, error) {
	detail, err := s.Detail(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if detail.Workout == nil {
		return nil, appErrors.Clone(appErrors.ErrWorkoutNotFound, "")
	}
	return detail, nil
}

// Detail returns the student's workout, or a nil workout and empty exercise list when none exists.
func (s *WorkoutService) Detail(ctx context.Context, studentID string) (*models.WorkoutDetail, error) {
	workout, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.WorkoutDetail{Exercises: []models.Exercise{}}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load workout")
	}
	exercises, err := s.repo.ListExercises(ctx, workout.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exercises")
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	return &models.WorkoutDetail{Workout: workout, Exercises: exercises}, nil
}

// Upsert creates or updates the workout of an existing student.
func (s *WorkoutService) Upsert(ctx context.Context, studentID string, req UpsertWorkoutRequest) (*models.WorkoutDetail, error) {
	if err := validation.Struct(s.validator, req, "invalid workout payload"); err != nil {
		return nil, err
	}
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "")
	}

	workout := &models.Workout{
		StudentID:   studentID,
		Name:        req.Name,
		Type:        req.Type,
		Frequency:   req.Frequency,
		Description: req.Description,
	}
	var exercises []models.Exercise
	if req.Exercises != nil {
		exercises = make([]models.Exercise, 0, len(*req.Exercises))
		for _, in := range *req.Exercises {
			exercises = append(exercises, models.Exercise{
				Name:        in.Name,
				Sets:        in.Sets,
				Reps:        in.Reps,
				Weight:      in.Weight,
				RestSeconds: in.RestSeconds,
				Notes:       in.Notes,
			})
		}
	}
	if err := s.repo.Upsert(ctx, workout, exercises); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save workout")
	}
	s.logger.Info("workout saved", zap.String("student_id", studentID), zap.String("workout_id", workout.ID))
	return s.Detail(ctx, studentID)
}

// Delete removes the student's workout or returns WorkoutNotFound.
func (s *WorkoutService) Delete(ctx context.Context, studentID string) error {
	deleted, err := s.repo.DeleteByStudent(ctx, studentID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete workout")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrWorkoutNotFound, "")
	}
	return nil
}
