package models

import "time"

// Workout is the training plan assigned to a student.
type Workout struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"student_id"`
	Name        string    `db:"name" json:"name"`
	Type        string    `db:"type" json:"type"`
	Frequency   string    `db:"frequency" json:"frequency"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Exercise is one ordered entry of a workout.
type Exercise struct {
	ID          string  `db:"id" json:"id"`
	WorkoutID   string  `db:"workout_id" json:"workout_id"`
	Name        string  `db:"name" json:"name"`
	Sets        *int    `db:"sets" json:"sets"`
	Reps        *string `db:"reps" json:"reps"`
	Weight      *string `db:"weight" json:"weight"`
	RestSeconds *int    `db:"rest_seconds" json:"rest_seconds"`
	Notes       string  `db:"notes" json:"notes"`
	OrderIndex  int     `db:"order_index" json:"order_index"`
}

// WorkoutWithStudent is a workout row joined with its owner.
type WorkoutWithStudent struct {
	Workout
	StudentName string `db:"student_name" json:"student_name"`
	StudentCPF  string `db:"student_cpf" json:"student_cpf"`
}

// WorkoutDetail bundles a workout with its exercises.
type WorkoutDetail struct {
	Workout   *Workout   `json:"workout"`
	Exercises []Exercise `json:"exercises"`
}
