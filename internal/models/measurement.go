package models

import "time"

// BodyMeasurement is a historical snapshot of a student's measurements.
type BodyMeasurement struct {
	ID              string `db:"id" json:"id"`
	StudentID       string `db:"student_id" json:"student_id"`
	MeasurementDate Date   `db:"measurement_date" json:"measurement_date"`
	BodySnapshot
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ProgressMeasurements pairs earliest and latest values; nil means not recorded.
type ProgressMeasurements struct {
	InitialWeight *float64 `json:"initial_weight"`
	CurrentWeight *float64 `json:"current_weight"`
	InitialChest  *float64 `json:"initial_chest"`
	CurrentChest  *float64 `json:"current_chest"`
	InitialWaist  *float64 `json:"initial_waist"`
	CurrentWaist  *float64 `json:"current_waist"`
	InitialArm    *float64 `json:"initial_arm"`
	CurrentArm    *float64 `json:"current_arm"`
}

// WeightPoint is one entry of the weight trend.
type WeightPoint struct {
	MeasurementDate Date    `json:"measurement_date"`
	Weight          float64 `json:"weight"`
}

// ProgressSummary is the student's evolution between first and last measurement.
type ProgressSummary struct {
	Measurements  ProgressMeasurements `json:"measurements"`
	WeightHistory []WeightPoint        `json:"weightHistory"`
}
