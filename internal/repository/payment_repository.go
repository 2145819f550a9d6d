package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/impact-gym-api/internal/models"
)

const paymentColumns = `p.id, p.student_id, p.amount, p.payment_date, p.due_date, p.status, p.payment_method, p.notes, p.created_at`

// PaymentRepository persists billing records.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListAll returns every payment with its student, newest payment date first.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.PaymentWithStudent, error) {
	query := `SELECT ` + paymentColumns + `, s.name AS student_name, s.cpf AS student_cpf
        FROM payments p
        JOIN students s ON s.id = p.student_id
        ORDER BY p.payment_date DESC, p.created_at DESC`
	var payments []models.PaymentWithStudent
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// ListByStudent returns a student's payments newest first. A positive limit caps the result.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.student_id = $1 ORDER BY p.payment_date DESC, p.created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, studentID); err != nil {
		if isMalformedID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list student payments: %w", err)
	}
	return payments, nil
}

// FindByID fetches a payment or returns sql.ErrNoRows.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1`
	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, mapLookupError(err)
	}
	return &payment, nil
}

// CreateWithNextCycle stores the paid row and the following pending cycle in one transaction.
func (r *PaymentRepository) CreateWithNextCycle(ctx context.Context, paid *models.Payment, next *models.Payment) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin payment transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	if err = insertPayment(ctx, tx, paid, now); err != nil {
		return err
	}
	if err = insertPayment(ctx, tx, next, now); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit payment transaction: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the stored status of one payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE payments SET status = $1 WHERE id = $2`, status, id); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

// Delete removes one payment.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func insertPayment(ctx context.Context, tx *sqlx.Tx, payment *models.Payment, now time.Time) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	payment.CreatedAt = now
	const query = `INSERT INTO payments (id, student_id, amount, payment_date, due_date, status, payment_method, notes, created_at)
        VALUES (:id, :student_id, :amount, :payment_date, :due_date, :status, :payment_method, :notes, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("insert %s payment: %w", payment.Status, err)
	}
	return nil
}
