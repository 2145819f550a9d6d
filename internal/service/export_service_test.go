package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

type stubPaymentLister []models.PaymentWithStudent

func (s stubPaymentLister) List(ctx context.Context) ([]models.PaymentWithStudent, error) {
	return s, nil
}

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	payments := stubPaymentLister{{
		Payment: models.Payment{
			Amount:        120,
			PaymentDate:   models.MustParseDate("2024-02-01"),
			DueDate:       models.MustParseDate("2024-03-01"),
			Status:        models.PaymentStatusPaid,
			StatusText:    models.StatusTextUpToDate,
			PaymentMethod: "pix",
		},
		StudentName: "João",
		StudentCPF:  "123.456.789-09",
	}}
	return NewExportService(payments, fixedPolicy(t, "2024-03-10T12:00:00Z"), nil, nil, nil)
}

func TestExportServiceCSV(t *testing.T) {
	file, err := newExportFixture(t).Payments(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "payments-2024-03-10.csv", file.Filename)
	assert.True(t, strings.HasPrefix(file.ContentType, "text/csv"))
	assert.Contains(t, string(file.Content), "João;123.456.789-09;120.00;2024-02-01;2024-03-01;paid;Em Dia;pix;")
}

func TestExportServicePDF(t *testing.T) {
	file, err := newExportFixture(t).Payments(context.Background(), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	_, err := newExportFixture(t).Payments(context.Background(), "xlsx")
	assertAppCode(t, err, appErrors.ErrValidation)
}
