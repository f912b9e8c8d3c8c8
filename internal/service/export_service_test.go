package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/export"
)

type maintenanceListerStub struct {
	records []models.MaintenanceRecord
}

func (s maintenanceListerStub) MyMaintenance(ctx context.Context, sess *upstream.Session) ([]models.MaintenanceRecord, error) {
	return s.records, nil
}

func (s maintenanceListerStub) ListScheduledMaintenance(ctx context.Context, sess *upstream.Session) ([]models.MaintenanceRecord, error) {
	return s.records, nil
}

func testRecords() []models.MaintenanceRecord {
	next := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []models.MaintenanceRecord{
		{
			ID:                  "rec-1",
			Code:                "SRV-001",
			Priority:            models.PriorityHigh,
			Status:              models.StatusPending,
			Description:         "Cambio de filtros",
			FrequencyType:       models.FrequencyMonthly,
			FrequencyValue:      3,
			NextMaintenanceDate: &next,
		},
		{
			ID:              "rec-2",
			Code:            "SRV-002",
			Priority:        models.PriorityLow,
			Status:          models.StatusRejected,
			RejectionReason: "trabajo incompleto",
		},
	}
}

func TestMaintenanceReportCSV(t *testing.T) {
	svc := NewExportService(maintenanceListerStub{records: testRecords()}, ExportConfig{Enabled: true}, zap.NewNop())

	file, err := svc.MaintenanceReport(context.Background(), nil, export.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", file.ContentType)
	require.True(t, strings.HasSuffix(file.Filename, ".csv"), file.Filename)

	body := string(file.Payload)
	require.Contains(t, body, "SRV-001")
	require.Contains(t, body, "trabajo incompleto")
	require.Contains(t, body, "PENDING")
}

func TestMaintenanceReportPDF(t *testing.T) {
	svc := NewExportService(maintenanceListerStub{records: testRecords()}, ExportConfig{Enabled: true}, zap.NewNop())

	file, err := svc.MaintenanceReport(context.Background(), nil, export.FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", file.ContentType)
	require.NotEmpty(t, file.Payload)
}

func TestScheduleReportRendersFrequencyLabel(t *testing.T) {
	svc := NewExportService(maintenanceListerStub{records: testRecords()}, ExportConfig{Enabled: true}, zap.NewNop())

	file, err := svc.ScheduleReport(context.Background(), nil, export.FormatCSV)
	require.NoError(t, err)
	require.Contains(t, string(file.Payload), "Cada: 3 meses")
	require.Contains(t, string(file.Payload), "2027-03-01")
}

func TestScheduleReportSkipsNonRecurringRecords(t *testing.T) {
	svc := NewExportService(maintenanceListerStub{records: testRecords()}, ExportConfig{Enabled: true}, zap.NewNop())

	file, err := svc.ScheduleReport(context.Background(), nil, export.FormatCSV)
	require.NoError(t, err)
	require.Contains(t, string(file.Payload), "SRV-001")
	require.NotContains(t, string(file.Payload), "SRV-002")
}

func TestExportsDisabled(t *testing.T) {
	svc := NewExportService(maintenanceListerStub{}, ExportConfig{Enabled: false}, zap.NewNop())

	_, err := svc.MaintenanceReport(context.Background(), nil, export.FormatCSV)
	require.Error(t, err)
}

func TestExportRespectsMaxRows(t *testing.T) {
	records := make([]models.MaintenanceRecord, 10)
	for i := range records {
		records[i] = models.MaintenanceRecord{Code: "SRV", Status: models.StatusApproved}
	}
	svc := NewExportService(maintenanceListerStub{records: records}, ExportConfig{Enabled: true, MaxRows: 4}, zap.NewNop())

	file, err := svc.MaintenanceReport(context.Background(), nil, export.FormatCSV)
	require.NoError(t, err)
	// header plus four rows
	require.Len(t, strings.Split(strings.TrimSpace(string(file.Payload)), "\n"), 5)
}
