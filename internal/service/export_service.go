package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
	"github.com/noah-isme/doubt-tracker-api/pkg/export"
)

type exportDoubtLister interface {
	ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error)
}

// ExportFile is a rendered report ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders doubt reports for admin download.
type ExportService struct {
	doubts exportDoubtLister
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService instance.
func NewExportService(doubts exportDoubtLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{doubts: doubts, logger: logger, now: time.Now}
}

// DoubtsReport renders the full doubt list in the requested format.
// Format defaults to csv; pdf is the only alternative. Safe on a nil
// receiver, which stands for exports being disabled.
func (s *ExportService) DoubtsReport(ctx context.Context, status, format string) (*ExportFile, error) {
	if s == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Exports are disabled")
	}
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	doubts, err := s.doubts.ListAll(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list doubts")
	}

	report := export.Report{
		Title:   "Doubt Report",
		Columns: []string{"ID", "Student", "Subject", "Doubt", "Status", "Created"},
	}
	for _, d := range doubts {
		report.Rows = append(report.Rows, []string{
			fmt.Sprintf("%d", d.ID),
			d.StudentName,
			d.Subject,
			d.DoubtText,
			string(d.Status),
			d.CreatedAt.Format(time.RFC3339),
		})
	}

	stamp := s.now().Format("20060102-150405")
	file := &ExportFile{}
	switch format {
	case "pdf":
		data, err := export.RenderPDF(report)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		file.Data = data
		file.ContentType = "application/pdf"
		file.Filename = fmt.Sprintf("doubts-%s.pdf", stamp)
	default:
		data, err := export.RenderCSV(report)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		file.Data = data
		file.ContentType = "text/csv"
		file.Filename = fmt.Sprintf("doubts-%s.csv", stamp)
	}

	s.logger.Info("doubt report rendered", zap.String("format", format), zap.Int("rows", len(report.Rows)))
	return file, nil
}
