package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/impact-gym-api/internal/models"
)

const studentColumns = `s.id, s.name, s.cpf, s.birth_date, s.phone, s.email, s.address, s.start_date, s.password_hash,
        s.weight, s.height, s.chest_circumference, s.waist_circumference, s.hip_circumference, s.arm_circumference, s.thigh_circumference,
        s.created_at, s.updated_at`

// studentSummarySelect joins every student with its most recent payment by payment_date and its workout.
const studentSummarySelect = `SELECT ` + studentColumns + `,
        p.payment_date AS last_payment_date, p.status AS payment_status, p.due_date AS next_due_date,
        w.name AS workout_name, w.type AS workout_type, w.frequency AS workout_frequency
        FROM students s
        LEFT JOIN (
            SELECT student_id, payment_date, status, due_date,
                ROW_NUMBER() OVER (PARTITION BY student_id ORDER BY payment_date DESC, created_at DESC) AS rn
            FROM payments
        ) p ON p.student_id = s.id AND p.rn = 1
        LEFT JOIN workouts w ON w.student_id = s.id`

// StudentRepository manages persistence for gym members.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students ordered by name, optionally filtered by a case-insensitive name fragment.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentSummary, error) {
	query := studentSummarySelect
	args := []interface{}{}
	if filter.Search != "" {
		query += " WHERE s.name ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}
	query += " ORDER BY s.name"

	var students []models.StudentSummary
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student or returns sql.ErrNoRows.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, mapLookupError(err)
	}
	return &student, nil
}

// FindPortalUser looks a student up by CPF or email among those granted portal access.
func (r *StudentRepository) FindPortalUser(ctx context.Context, login string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s
        WHERE (s.cpf = $1 OR s.email = $1) AND s.password_hash IS NOT NULL
        ORDER BY s.created_at LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, login); err != nil {
		return nil, err
	}
	return &student, nil
}

// Exists reports whether a student with the id is present.
func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM students WHERE id = $1`, id); err != nil {
		if errors.Is(mapLookupError(err), sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}

// ExistsByCPF checks if a CPF is taken, optionally ignoring one student.
func (r *StudentRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM students WHERE cpf = $1"
	args := []interface{}{cpf}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check cpf: %w", err)
	}
	return true, nil
}

// CreateWithEnrollment inserts the student, its workout and the first pending payment atomically.
func (r *StudentRepository) CreateWithEnrollment(ctx context.Context, student *models.Student, workout *models.Workout, payment *models.Payment) (err error) {
	now := time.Now().UTC()
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	student.CreatedAt = now
	student.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin student transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertStudent = `INSERT INTO students (id, name, cpf, birth_date, phone, email, address, start_date, password_hash,
        weight, height, chest_circumference, waist_circumference, hip_circumference, arm_circumference, thigh_circumference,
        created_at, updated_at)
        VALUES (:id, :name, :cpf, :birth_date, :phone, :email, :address, :start_date, :password_hash,
        :weight, :height, :chest_circumference, :waist_circumference, :hip_circumference, :arm_circumference, :thigh_circumference,
        :created_at, :updated_at)`
	if _, err = tx.NamedExecContext(ctx, insertStudent, student); err != nil {
		err = mapStudentWriteError(err)
		if err == ErrDuplicateCPF {
			return err
		}
		return fmt.Errorf("insert student: %w", err)
	}

	if workout != nil {
		workout.StudentID = student.ID
		if err = insertWorkout(ctx, tx, workout, now); err != nil {
			return err
		}
	}

	payment.StudentID = student.ID
	if err = insertPayment(ctx, tx, payment, now); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit student transaction: %w", err)
	}
	return nil
}

// Update overwrites the editable student fields. A nil PasswordHash keeps the stored hash.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET name = :name, cpf = :cpf, birth_date = :birth_date, phone = :phone, email = :email,
        address = :address, start_date = :start_date, password_hash = COALESCE(:password_hash, password_hash),
        weight = :weight, height = :height, chest_circumference = :chest_circumference, waist_circumference = :waist_circumference,
        hip_circumference = :hip_circumference, arm_circumference = :arm_circumference, thigh_circumference = :thigh_circumference,
        updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if mapped := mapStudentWriteError(err); mapped == ErrDuplicateCPF {
			return mapped
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes the student; workouts, payments and measurements cascade.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
