package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
)

func TestNewArtifact_Filenames(t *testing.T) {
	when := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		format ExportFormat
		want   string
	}{
		{FormatPDF, "relatorio_2026-08-29.pdf"},
		{FormatExcel, "relatorio_2026-08-29.xlsx"},
		{FormatCSV, "relatorio_2026-08-29.csv"},
	}

	for _, tt := range tests {
		a, err := NewArtifact(tt.format, ExportConfig{}, when)
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.Filename)
	}
}

func TestNewArtifact_UnknownFormat(t *testing.T) {
	_, err := NewArtifact("docx", ExportConfig{}, time.Now())
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestNewArtifact_KeepsConfig(t *testing.T) {
	cfg := ExportConfig{
		IncludeCharts: true,
		ChartType:     "bar",
		PageSize:      "A4",
		Orientation:   "landscape",
	}
	a, err := NewArtifact(FormatPDF, cfg, time.Now())
	require.NoError(t, err)
	assert.Equal(t, cfg, a.Config)
}

func TestRender_IsExplicitlyNotImplemented(t *testing.T) {
	a, err := NewArtifact(FormatPDF, ExportConfig{}, time.Now())
	require.NoError(t, err)

	content, err := a.Render(GeneralReport{})
	assert.Nil(t, content)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotImplemented, appErr.Code)
	assert.Equal(t, a.Filename, appErr.Details["filename"])
}
