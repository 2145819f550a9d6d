package models

import "time"

// BodySnapshot holds the student's current measurements.
type BodySnapshot struct {
	Weight             *float64 `db:"weight" json:"weight"`
	Height             *float64 `db:"height" json:"height"`
	ChestCircumference *float64 `db:"chest_circumference" json:"chest_circumference"`
	WaistCircumference *float64 `db:"waist_circumference" json:"waist_circumference"`
	HipCircumference   *float64 `db:"hip_circumference" json:"hip_circumference"`
	ArmCircumference   *float64 `db:"arm_circumference" json:"arm_circumference"`
	ThighCircumference *float64 `db:"thigh_circumference" json:"thigh_circumference"`
}

// Student represents a gym member. PasswordHash is set only when portal access was granted.
type Student struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	CPF          string  `db:"cpf" json:"cpf"`
	BirthDate    Date    `db:"birth_date" json:"birth_date"`
	Phone        string  `db:"phone" json:"phone"`
	Email        *string `db:"email" json:"email"`
	Address      string  `db:"address" json:"address"`
	StartDate    Date    `db:"start_date" json:"start_date"`
	PasswordHash *string `db:"password_hash" json:"-"`
	BodySnapshot
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasPortalAccess reports whether the student can log in to the client area.
func (s Student) HasPortalAccess() bool {
	return s.PasswordHash != nil && *s.PasswordHash != ""
}

// StudentSummary is a list row enriched with the latest payment and workout.
type StudentSummary struct {
	Student
	LastPaymentDate   *Date          `db:"last_payment_date" json:"last_payment_date"`
	PaymentStatus     *PaymentStatus `db:"payment_status" json:"payment_status"`
	NextDueDate       *Date          `db:"next_due_date" json:"next_due_date"`
	PaymentStatusText *StatusText    `db:"-" json:"payment_status_text"`
	WorkoutName       *string        `db:"workout_name" json:"workout_name"`
	WorkoutType       *string        `db:"workout_type" json:"workout_type"`
	WorkoutFrequency  *string        `db:"workout_frequency" json:"workout_frequency"`
}

// StudentDetail aggregates a student with workout and payment history.
type StudentDetail struct {
	Student  Student   `json:"student"`
	Workout  *Workout  `json:"workout"`
	Payments []Payment `json:"payments"`
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	Search string
}
