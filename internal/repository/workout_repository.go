package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/impact-gym-api/internal/models"
)

const workoutColumns = `w.id, w.student_id, w.name, w.type, w.frequency, w.description, w.created_at, w.updated_at`

// WorkoutRepository persists training plans and their exercises.
type WorkoutRepository struct {
	db *sqlx.DB
}

// NewWorkoutRepository constructs a WorkoutRepository.
func NewWorkoutRepository(db *sqlx.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// List returns every workout with its student ordered by student name.
func (r *WorkoutRepository) List(ctx context.Context) ([]models.WorkoutWithStudent, error) {
	query := `SELECT ` + workoutColumns + `, s.name AS student_name, s.cpf AS student_cpf
        FROM workouts w
        JOIN students s ON s.id = w.student_id
        ORDER BY s.name`
	var workouts []models.WorkoutWithStudent
	if err := r.db.SelectContext(ctx, &workouts, query); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// FindByStudent returns the student's workout or sql.ErrNoRows.
func (r *WorkoutRepository) FindByStudent(ctx context.Context, studentID string) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts w WHERE w.student_id = $1 ORDER BY w.created_at LIMIT 1`
	var workout models.Workout
	if err := r.db.GetContext(ctx, &workout, query, studentID); err != nil {
		return nil, mapLookupError(err)
	}
	return &workout, nil
}

// ListExercises returns a workout's exercises in their explicit order.
func (r *WorkoutRepository) ListExercises(ctx context.Context, workoutID string) ([]models.Exercise, error) {
	const query = `SELECT id, workout_id, name, sets, reps, weight, rest_seconds, notes, order_index
        FROM exercises WHERE workout_id = $1 ORDER BY order_index, id`
	var exercises []models.Exercise
	if err := r.db.SelectContext(ctx, &exercises, query, workoutID); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Upsert creates or updates the student's workout. A non-nil exercises slice replaces the stored list.
func (r *WorkoutRepository) Upsert(ctx context.Context, workout *models.Workout, exercises []models.Exercise) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin workout transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	var current struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	const selectQuery = `SELECT id, created_at FROM workouts WHERE student_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, selectQuery, workout.StudentID); err != nil {
		if err != sql.ErrNoRows {
			return fmt.Errorf("lock workout: %w", err)
		}
		if err = insertWorkout(ctx, tx, workout, now); err != nil {
			return err
		}
	} else {
		workout.ID = current.ID
		workout.CreatedAt = current.CreatedAt
		workout.UpdatedAt = now
		const updateQuery = `UPDATE workouts SET name = :name, type = :type, frequency = :frequency, description = :description,
            updated_at = :updated_at WHERE id = :id`
		if _, err = tx.NamedExecContext(ctx, updateQuery, workout); err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
	}

	if exercises != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM exercises WHERE workout_id = $1`, workout.ID); err != nil {
			return fmt.Errorf("clear exercises: %w", err)
		}
		const insertExercise = `INSERT INTO exercises (id, workout_id, name, sets, reps, weight, rest_seconds, notes, order_index)
            VALUES (:id, :workout_id, :name, :sets, :reps, :weight, :rest_seconds, :notes, :order_index)`
		for i := range exercises {
			exercises[i].ID = uuid.NewString()
			exercises[i].WorkoutID = workout.ID
			exercises[i].OrderIndex = i
			if _, err = tx.NamedExecContext(ctx, insertExercise, &exercises[i]); err != nil {
				return fmt.Errorf("insert exercise: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit workout transaction: %w", err)
	}
	return nil
}

// DeleteByStudent removes the student's workout and reports whether one existed.
func (r *WorkoutRepository) DeleteByStudent(ctx context.Context, studentID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE student_id = $1`, studentID)
	if err != nil {
		if isMalformedID(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete workout: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete workout rows: %w", err)
	}
	return affected > 0, nil
}

func insertWorkout(ctx context.Context, tx *sqlx.Tx, workout *models.Workout, now time.Time) error {
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	workout.CreatedAt = now
	workout.UpdatedAt = now
	const query = `INSERT INTO workouts (id, student_id, name, type, frequency, description, created_at, updated_at)
        VALUES (:id, :student_id, :name, :type, :frequency, :description, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, workout); err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}
