package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/impact-gym-api/internal/models"
	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
	"github.com/noah-isme/impact-gym-api/pkg/export"
)

// ExportFormat selects the rendered document type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

type paymentLister interface {
	List(ctx context.Context) ([]models.PaymentWithStudent, error)
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders the payment ledger as CSV or PDF.
type ExportService struct {
	payments paymentLister
	billing  *BillingPolicy
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService; nil renderers fall back to the defaults.
func NewExportService(payments paymentLister, billing *BillingPolicy, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter(0)
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{payments: payments, billing: billing, csv: csv, pdf: pdf, logger: logger}
}

var paymentExportHeaders = []string{"Aluno", "CPF", "Valor", "Data pagamento", "Vencimento", "Status", "Situação", "Forma", "Observações"}

// Payments renders every payment in the requested format.
func (s *ExportService) Payments(ctx context.Context, format string) (*ExportFile, error) {
	kind := ExportFormat(strings.ToLower(strings.TrimSpace(format)))
	if kind == "" {
		kind = ExportFormatCSV
	}
	if kind != ExportFormatCSV && kind != ExportFormatPDF {
		return nil, fieldError("format", "format must be one of: csv, pdf")
	}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	dataset := export.Dataset{Headers: paymentExportHeaders, Rows: make([]map[string]string, 0, len(payments))}
	for _, p := range payments {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Aluno":          p.StudentName,
			"CPF":            p.StudentCPF,
			"Valor":          strconv.FormatFloat(p.Amount, 'f', 2, 64),
			"Data pagamento": p.PaymentDate.String(),
			"Vencimento":     p.DueDate.String(),
			"Status":         string(p.Status),
			"Situação":       string(p.StatusText),
			"Forma":          p.PaymentMethod,
			"Observações":    p.Notes,
		})
	}

	today := s.billing.Today().String()
	filename := fmt.Sprintf("payments-%s.%s", today, kind)
	var file *ExportFile
	switch kind {
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Pagamentos", "Gerado em "+today)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		file = &ExportFile{Filename: filename, ContentType: "application/pdf", Content: content}
	default:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		file = &ExportFile{Filename: filename, ContentType: "text/csv; charset=utf-8", Content: content}
	}
	s.logger.Info("payments exported", zap.String("format", string(kind)), zap.Int("rows", len(payments)))
	return file, nil
}
