package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Mantenimientos",
		Headers: []string{"Código", "Estado"},
		Rows: []map[string]string{
			{"Código": "SRV-001", "Estado": "PENDING"},
			{"Código": "SRV-002", "Estado": "REJECTED"},
		},
	}
}

func TestForSelectsExporter(t *testing.T) {
	require.Equal(t, "text/csv", For(FormatCSV).ContentType())
	require.Equal(t, "application/pdf", For(FormatPDF).ContentType())
	require.Equal(t, "text/csv", For(Format("xlsx")).ContentType())
}

func TestCSVRenderKeepsColumnOrder(t *testing.T) {
	payload, err := (&CSVExporter{}).Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Código,Estado", lines[0])
	require.Equal(t, "SRV-001,PENDING", lines[1])
	require.Equal(t, "SRV-002,REJECTED", lines[2])
}

func TestCSVRenderBlanksMissingCells(t *testing.T) {
	data := sampleDataset()
	data.Rows = append(data.Rows, map[string]string{"Código": "SRV-003"})

	payload, err := (&CSVExporter{}).Render(data)
	require.NoError(t, err)
	require.Contains(t, string(payload), "SRV-003,\n")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := (&CSVExporter{}).Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRenderProducesDocument(t *testing.T) {
	payload, err := (&PDFExporter{}).Render(sampleDataset())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}
