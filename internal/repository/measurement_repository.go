package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/impact-gym-api/internal/models"
)

const measurementColumns = `id, student_id, measurement_date, weight, height, chest_circumference, waist_circumference,
        hip_circumference, arm_circumference, thigh_circumference, notes, created_at`

// MeasurementRepository stores the body measurement history.
type MeasurementRepository struct {
	db *sqlx.DB
}

// NewMeasurementRepository constructs a MeasurementRepository.
func NewMeasurementRepository(db *sqlx.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// ListByStudent returns the student's measurements by date, ties broken by insertion time.
func (r *MeasurementRepository) ListByStudent(ctx context.Context, studentID string, newestFirst bool) ([]models.BodyMeasurement, error) {
	order := "ASC"
	if newestFirst {
		order = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM body_measurements WHERE student_id = $1 ORDER BY measurement_date %s, created_at %s`, measurementColumns, order, order)
	var rows []models.BodyMeasurement
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		if isMalformedID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return rows, nil
}

// CreateAndSnapshot records a measurement and, unless a later-dated one exists, merges its
// non-null fields into the student's current snapshot.
func (r *MeasurementRepository) CreateAndSnapshot(ctx context.Context, m *models.BodyMeasurement) (err error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin measurement transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertQuery = `INSERT INTO body_measurements (id, student_id, measurement_date, weight, height, chest_circumference,
        waist_circumference, hip_circumference, arm_circumference, thigh_circumference, notes, created_at)
        VALUES (:id, :student_id, :measurement_date, :weight, :height, :chest_circumference,
        :waist_circumference, :hip_circumference, :arm_circumference, :thigh_circumference, :notes, :created_at)`
	if _, err = tx.NamedExecContext(ctx, insertQuery, m); err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}

	// Only the newest measurement feeds the snapshot, and absent fields keep the stored values.
	const snapshotQuery = `UPDATE students SET weight = COALESCE(:weight, weight), height = COALESCE(:height, height),
        chest_circumference = COALESCE(:chest_circumference, chest_circumference),
        waist_circumference = COALESCE(:waist_circumference, waist_circumference),
        hip_circumference = COALESCE(:hip_circumference, hip_circumference),
        arm_circumference = COALESCE(:arm_circumference, arm_circumference),
        thigh_circumference = COALESCE(:thigh_circumference, thigh_circumference), updated_at = :created_at
        WHERE id = :student_id AND NOT EXISTS (
            SELECT 1 FROM body_measurements b WHERE b.student_id = :student_id AND b.measurement_date > :measurement_date)`
	if _, err = tx.NamedExecContext(ctx, snapshotQuery, m); err != nil {
		return fmt.Errorf("update student snapshot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit measurement transaction: %w", err)
	}
	return nil
}
