package reports

import (
	"fmt"
	"time"

	"esteticar/internal/core/apperror"
)

// ExportFormat is a requested artifact type.
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
	FormatCSV   ExportFormat = "csv"
)

// extension maps the format to the artifact file extension.
func (f ExportFormat) extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// ExportConfig carries presentation options for a future renderer. The
// stub validates and echoes them without interpreting anything.
type ExportConfig struct {
	IncludeCharts  bool   `json:"includeCharts"`
	IncludeTables  bool   `json:"includeTables"`
	IncludeSummary bool   `json:"includeSummary"`
	ChartType      string `json:"chartType,omitempty"`
	PageSize       string `json:"pageSize,omitempty"`
	Orientation    string `json:"orientation,omitempty"`
}

// Artifact describes a requested export. Content rendering is not
// implemented; Render always says so explicitly rather than fabricating
// output.
type Artifact struct {
	Filename string       `json:"filename"`
	Format   ExportFormat `json:"format"`
	Config   ExportConfig `json:"config"`
}

// NewArtifact validates the format and names the artifact
// relatorio_{ISO-date}.{ext}.
func NewArtifact(format ExportFormat, cfg ExportConfig, when time.Time) (Artifact, error) {
	switch format {
	case FormatPDF, FormatExcel, FormatCSV:
	default:
		return Artifact{}, apperror.NewValidation("unknown export format").
			WithDetail("field", "format").
			WithDetail("value", string(format))
	}

	return Artifact{
		Filename: fmt.Sprintf("relatorio_%s.%s", when.Format("2006-01-02"), format.extension()),
		Format:   format,
		Config:   cfg,
	}, nil
}

// Render is the content stub.
func (a Artifact) Render(report GeneralReport) ([]byte, error) {
	return nil, apperror.NewNotImplemented("report rendering").
		WithDetail("filename", a.Filename).
		WithDetail("format", string(a.Format))
}
