package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/service"
	"github.com/noah-isme/impact-gym-api/pkg/response"
)

type paymentUseCases interface {
	List(ctx context.Context) ([]models.PaymentWithStudent, error)
	ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Payment, error)
	Record(ctx context.Context, req service.RecordPaymentRequest) (*models.RecordedPayment, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdatePaymentStatusRequest) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type paymentExporter interface {
	Payments(ctx context.Context, format string) (*service.ExportFile, error)
}

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	payments paymentUseCases
	exports  paymentExporter
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments paymentUseCases, exports paymentExporter) *PaymentHandler {
	return &PaymentHandler{payments: payments, exports: exports}
}

// List godoc
// @Summary List every payment with its student
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PaymentWithStudent
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

// ListByStudent godoc
// @Summary Payment history of one student
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} models.Payment
// @Router /payments/student/{id} [get]
func (h *PaymentHandler) ListByStudent(c *gin.Context) {
	payments, err := h.payments.ListByStudent(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

// Record godoc
// @Summary Record a payment and open the next pending cycle
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.RecordPaymentRequest true "Payment"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req service.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	recorded, err := h.payments.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{
		"message":      "Pagamento registrado com sucesso",
		"paid":         recorded.Paid,
		"next_pending": recorded.NextPending,
	})
}

// UpdateStatus godoc
// @Summary Overwrite the status of a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param payload body service.UpdatePaymentStatusRequest true "Status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.payments.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Status do pagamento atualizado com sucesso", "payment": payment})
}

// Delete godoc
// @Summary Delete a payment
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.payments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Pagamento deletado com sucesso")
}

// Export godoc
// @Summary Download every payment as CSV or PDF
// @Tags Payments
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Router /payments/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	file, err := h.exports.Payments(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
