package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/service"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

type studentUseCases interface {
	List(ctx context.Context, search string) ([]models.StudentSummary, error)
	Get(ctx context.Context, id string) (*models.StudentDetail, error)
	Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id string, req service.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	ListMeasurements(ctx context.Context, id string) ([]models.BodyMeasurement, error)
	RecordMeasurement(ctx context.Context, id string, req service.RecordMeasurementRequest) (*models.BodyMeasurement, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentUseCases
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentUseCases) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students with their latest payment and workout
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Filter by name"
// @Success 200 {array} models.StudentSummary
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	h.list(c, c.Query("search"))
}

// Search godoc
// @Summary Search students by name
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param query path string true "Name fragment"
// @Success 200 {array} models.StudentSummary
// @Router /students/search/{query} [get]
func (h *StudentHandler) Search(c *gin.Context) {
	h.list(c, c.Param("query"))
}

func (h *StudentHandler) list(c *gin.Context, search string) {
	students, err := h.students.List(c.Request.Context(), search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get student with workout and payment history
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} errors.Error
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	detail, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Create godoc
// @Summary Register student, workout and first pending payment
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Error
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Aluno cadastrado com sucesso", "studentId": student.ID, "student": student})
}

// Update godoc
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param payload body service.UpdateStudentRequest true "Student payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req service.UpdateStudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Aluno atualizado com sucesso", "student": student})
}

// Delete godoc
// @Summary Delete student with workout, payments and measurements
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Aluno deletado com sucesso")
}

// ListMeasurements godoc
// @Summary Body measurement history, newest first
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} models.BodyMeasurement
// @Failure 404 {object} errors.Error
// @Router /students/{id}/measurements [get]
func (h *StudentHandler) ListMeasurements(c *gin.Context) {
	rows, err := h.students.ListMeasurements(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// RecordMeasurement godoc
// @Summary Record a body measurement and refresh the current snapshot
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param payload body service.RecordMeasurementRequest true "Measurement"
// @Success 201 {object} models.BodyMeasurement
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /students/{id}/measurements [post]
func (h *StudentHandler) RecordMeasurement(c *gin.Context) {
	var req service.RecordMeasurementRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.students.RecordMeasurement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m)
}
