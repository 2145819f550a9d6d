package models

import "time"

// PaymentStatus is the stored state of a payment row.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// StatusText is the human facing label derived from status and due date.
type StatusText string

const (
	StatusTextUpToDate StatusText = "Em Dia"
	StatusTextPending  StatusText = "Pendente"
	StatusTextExpired  StatusText = "Vencido"
	StatusTextOverdue  StatusText = "Atrasado"
)

// Payment is one billing record. A paid row's due date marks the next cycle.
type Payment struct {
	ID            string        `db:"id" json:"id"`
	StudentID     string        `db:"student_id" json:"student_id"`
	Amount        float64       `db:"amount" json:"amount"`
	PaymentDate   Date          `db:"payment_date" json:"payment_date"`
	DueDate       Date          `db:"due_date" json:"due_date"`
	Status        PaymentStatus `db:"status" json:"status"`
	PaymentMethod string        `db:"payment_method" json:"payment_method"`
	Notes         string        `db:"notes" json:"notes"`
	StatusText    StatusText    `db:"-" json:"status_text"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// PaymentWithStudent is a payment row joined with the owning student.
type PaymentWithStudent struct {
	Payment
	StudentName string `db:"student_name" json:"student_name"`
	StudentCPF  string `db:"student_cpf" json:"student_cpf"`
}

// RecordedPayment is the result of recording a payment: the paid row and the next pending cycle.
type RecordedPayment struct {
	Paid        Payment `json:"paid"`
	NextPending Payment `json:"next_pending"`
}

// PaymentSummary counts students by the status text of their latest payment.
type PaymentSummary struct {
	TotalStudents int       `json:"total_students"`
	UpToDate      int       `json:"up_to_date"`
	Pending       int       `json:"pending"`
	Expired       int       `json:"expired"`
	Overdue       int       `json:"overdue"`
	NoPayments    int       `json:"no_payments"`
	GeneratedAt   time.Time `json:"generated_at"`
}
