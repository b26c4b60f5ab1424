package dto

import (
	"esteticar/internal/domain/reports"
)

// ExportReportRequest asks for a downloadable report artifact.
type ExportReportRequest struct {
	Format      string               `json:"format" binding:"required"`
	Granularity string               `json:"granularity"`
	From        *string              `json:"from"`
	To          *string              `json:"to"`
	Config      reports.ExportConfig `json:"config"`
}

// ExportReportResponse echoes the accepted artifact description.
type ExportReportResponse struct {
	Artifact reports.Artifact `json:"artifact"`
	Status   string           `json:"status"`
}
