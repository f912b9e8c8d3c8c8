package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/review"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/export"
)

type maintenanceLister interface {
	MyMaintenance(ctx context.Context, sess *upstream.Session) ([]models.MaintenanceRecord, error)
	ListScheduledMaintenance(ctx context.Context, sess *upstream.Session) ([]models.MaintenanceRecord, error)
}

// ExportConfig tunes report generation.
type ExportConfig struct {
	Enabled bool
	MaxRows int
}

// ExportFile is one rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders maintenance reports for download. Files are
// built per request and streamed back; nothing is persisted locally.
type ExportService struct {
	client maintenanceLister
	cfg    ExportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(client maintenanceLister, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 5000
	}
	return &ExportService{client: client, cfg: cfg, logger: logger, now: time.Now}
}

// MaintenanceReport renders the caller's maintenance list in the
// requested format.
func (s *ExportService) MaintenanceReport(ctx context.Context, sess *upstream.Session, format export.Format) (*ExportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled")
	}
	records, err := s.client.MyMaintenance(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.render("mantenimientos", s.maintenanceDataset(records), format)
}

// ScheduleReport renders the scheduled-maintenance table in the
// requested format.
func (s *ExportService) ScheduleReport(ctx context.Context, sess *upstream.Session, format export.Format) (*ExportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled")
	}
	records, err := s.client.ListScheduledMaintenance(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.render("mantenimientos-programados", s.scheduleDataset(records), format)
}

func (s *ExportService) render(name string, dataset export.Dataset, format export.Format) (*ExportFile, error) {
	exporter := export.For(format)
	payload, err := exporter.Render(dataset)
	if err != nil {
		s.logger.Error("export render failed", zap.String("report", name), zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrInternal, "no se pudo generar el reporte")
	}
	stamp := s.now().UTC().Format("20060102-150405")
	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", name, stamp, format),
		ContentType: exporter.ContentType(),
		Payload:     payload,
	}, nil
}

func (s *ExportService) maintenanceDataset(records []models.MaintenanceRecord) export.Dataset {
	headers := []string{"Código", "Prioridad", "Estado", "Descripción", "Motivo de rechazo"}
	rows := make([]map[string]string, 0, len(records))
	for i, rec := range records {
		if i >= s.cfg.MaxRows {
			break
		}
		rows = append(rows, map[string]string{
			"Código":            rec.Code,
			"Prioridad":         string(rec.Priority),
			"Estado":            string(rec.Status),
			"Descripción":       rec.Description,
			"Motivo de rechazo": rec.RejectionReason,
		})
	}
	return export.Dataset{Title: "Reporte de mantenimientos", Headers: headers, Rows: rows}
}

func (s *ExportService) scheduleDataset(records []models.MaintenanceRecord) export.Dataset {
	headers := []string{"Código", "Frecuencia", "Próximo mantenimiento", "Estado"}
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		if !rec.Scheduled() {
			continue
		}
		if len(rows) >= s.cfg.MaxRows {
			break
		}
		var next string
		if rec.NextMaintenanceDate != nil {
			next = rec.NextMaintenanceDate.UTC().Format("2006-01-02")
		}
		rows = append(rows, map[string]string{
			"Código":                rec.Code,
			"Frecuencia":            review.FrequencyLabel(rec.FrequencyValue, rec.FrequencyType),
			"Próximo mantenimiento": next,
			"Estado":                string(rec.Status),
		})
	}
	return export.Dataset{Title: "Mantenimientos programados", Headers: headers, Rows: rows}
}
