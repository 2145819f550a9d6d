package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/service"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

type workoutUseCases interface {
	List(ctx context.Context) ([]models.WorkoutWithStudent, error)
	Get(ctx context.Context, studentID string) (*models.WorkoutDetail, error)
	Upsert(ctx context.Context, studentID string, req service.UpsertWorkoutRequest) (*models.WorkoutDetail, error)
	Delete(ctx context.Context, studentID string) error
}

// WorkoutHandler exposes workout endpoints keyed by student.
type WorkoutHandler struct {
	workouts workoutUseCases
}

// NewWorkoutHandler constructs WorkoutHandler.
func NewWorkoutHandler(workouts workoutUseCases) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// List godoc
// @Summary List workouts with their students
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WorkoutWithStudent
// @Router /workouts [get]
func (h *WorkoutHandler) List(c *gin.Context) {
	workouts, err := h.workouts.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workouts)
}

// Get godoc
// @Summary Workout and exercises of a student
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Success 200 {object} models.WorkoutDetail
// @Failure 404 {object} errors.Error
// @Router /workouts/{student_id} [get]
func (h *WorkoutHandler) Get(c *gin.Context) {
	detail, err := h.workouts.Get(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Upsert godoc
// @Summary Create or replace a student's workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Param payload body service.UpsertWorkoutRequest true "Workout"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /workouts/{student_id} [put]
func (h *WorkoutHandler) Upsert(c *gin.Context) {
	var req service.UpsertWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.workouts.Upsert(c.Request.Context(), c.Param("student_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Treino atualizado com sucesso", "workout": detail.Workout, "exercises": detail.Exercises})
}

// Delete godoc
// @Summary Delete a student's workout
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /workouts/{student_id} [delete]
func (h *WorkoutHandler) Delete(c *gin.Context) {
	if err := h.workouts.Delete(c.Request.Context(), c.Param("student_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Treino deletado com sucesso")
}
