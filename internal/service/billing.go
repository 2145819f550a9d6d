package service

import (
	"time"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/pkg/config"
)

// BillingPolicy holds the membership fee and the calendar used to judge due dates.
type BillingPolicy struct {
	fee      float64
	location *time.Location
	now      func() time.Time
}

// NewBillingPolicy builds a policy from configuration.
func NewBillingPolicy(cfg config.BillingConfig) *BillingPolicy {
	return &BillingPolicy{fee: cfg.MembershipFee, location: cfg.Location(), now: time.Now}
}

// WithClock replaces the time source, for tests.
func (p *BillingPolicy) WithClock(now func() time.Time) *BillingPolicy {
	p.now = now
	return p
}

// MembershipFee is the amount billed for the first cycle.
func (p *BillingPolicy) MembershipFee() float64 {
	return p.fee
}

// Today is the current calendar day in the billing time zone.
func (p *BillingPolicy) Today() models.Date {
	return models.DateOf(p.now().In(p.location))
}

// StatusText derives the label of a payment as of today.
func (p *BillingPolicy) StatusText(status models.PaymentStatus, due models.Date) models.StatusText {
	return DeriveStatusText(status, due, p.Today())
}

// Annotate fills StatusText on every payment.
func (p *BillingPolicy) Annotate(payments []models.Payment) []models.Payment {
	today := p.Today()
	for i := range payments {
		payments[i].StatusText = DeriveStatusText(payments[i].Status, payments[i].DueDate, today)
	}
	return payments
}

// NextDueDate is one calendar month after d, clamped to the end of the target month.
func NextDueDate(d models.Date) models.Date {
	return d.AddMonthsClamped(1)
}

// DeriveStatusText maps a stored status and due date to the label shown to users.
func DeriveStatusText(status models.PaymentStatus, due models.Date, today models.Date) models.StatusText {
	switch status {
	case models.PaymentStatusPaid:
		return models.StatusTextUpToDate
	case models.PaymentStatusOverdue:
		return models.StatusTextOverdue
	case models.PaymentStatusPending:
		if due.Before(today) {
			return models.StatusTextExpired
		}
		return models.StatusTextPending
	default:
		return models.StatusTextPending
	}
}

// BuildProgress summarises measurements sorted oldest first.
func BuildProgress(rows []models.BodyMeasurement) models.ProgressSummary {
	summary := models.ProgressSummary{WeightHistory: []models.WeightPoint{}}
	if len(rows) == 0 {
		return summary
	}
	first, last := rows[0], rows[len(rows)-1]
	summary.Measurements = models.ProgressMeasurements{
		InitialWeight: first.Weight,
		CurrentWeight: last.Weight,
		InitialChest:  first.ChestCircumference,
		CurrentChest:  last.ChestCircumference,
		InitialWaist:  first.WaistCircumference,
		CurrentWaist:  last.WaistCircumference,
		InitialArm:    first.ArmCircumference,
		CurrentArm:    last.ArmCircumference,
	}
	for _, row := range rows {
		if row.Weight == nil {
			continue
		}
		summary.WeightHistory = append(summary.WeightHistory, models.WeightPoint{MeasurementDate: row.MeasurementDate, Weight: *row.Weight})
	}
	return summary
}
