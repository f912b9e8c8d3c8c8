package export

// Format identifies a supported download format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Dataset defines tabular export content. Headers fixes the column order;
// each row maps header → cell value.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Exporter renders a dataset into downloadable bytes.
type Exporter interface {
	Render(data Dataset) ([]byte, error)
	ContentType() string
}

// For returns the exporter matching the requested format, defaulting to CSV.
func For(format Format) Exporter {
	if format == FormatPDF {
		return &PDFExporter{}
	}
	return &CSVExporter{}
}
