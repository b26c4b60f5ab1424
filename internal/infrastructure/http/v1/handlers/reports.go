package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esteticar/internal/core/apperror"
	"esteticar/internal/domain/reports"
	"esteticar/internal/infrastructure/http/v1/dto"
)

// ReportHandler serves the reporting endpoints.
type ReportHandler struct {
	*BaseHandler
	svc *reports.Service
}

// NewReportHandler creates the report handler.
func NewReportHandler(base *BaseHandler, svc *reports.Service) *ReportHandler {
	return &ReportHandler{BaseHandler: base, svc: svc}
}

// parseReportRequest reads granularity/from/to query params. Dates accept
// date-only or RFC3339 values.
func (h *ReportHandler) parseReportRequest(c *gin.Context) (reports.Request, bool) {
	req := reports.Request{
		Granularity: c.DefaultQuery("granularity", "monthly"),
	}

	from, ok := h.parseDateQuery(c, "from")
	if !ok {
		return req, false
	}
	to, ok := h.parseDateQuery(c, "to")
	if !ok {
		return req, false
	}

	if (from == nil) != (to == nil) {
		h.Error(c, apperror.NewValidation("from and to must be provided together"))
		return req, false
	}
	req.From = from
	req.To = to
	return req, true
}

func (h *ReportHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := parseDate(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date").
			WithDetail("field", key).
			WithDetail("value", raw))
		return nil, false
	}
	return &t, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// Sales handles GET /reports/sales.
func (h *ReportHandler) Sales(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	summary, err := h.svc.Sales(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// Services handles GET /reports/services.
func (h *ReportHandler) Services(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	summary, err := h.svc.Services(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// Customers handles GET /reports/customers.
func (h *ReportHandler) Customers(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	summary, err := h.svc.Customers(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// Stock handles GET /reports/stock. Stock has no date dimension.
func (h *ReportHandler) Stock(c *gin.Context) {
	summary, err := h.svc.Stock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// Financial handles GET /reports/financial.
func (h *ReportHandler) Financial(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	summary, err := h.svc.Financial(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// CashFlow handles GET /reports/cash-flow.
func (h *ReportHandler) CashFlow(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	flow, err := h.svc.CashFlow(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, flow)
}

// General handles GET /reports/general.
func (h *ReportHandler) General(c *gin.Context) {
	req, ok := h.parseReportRequest(c)
	if !ok {
		return
	}
	report, err := h.svc.General(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Export handles POST /reports/export. Rendering is not implemented;
// the endpoint validates the request and describes the artifact it
// would produce.
func (h *ReportHandler) Export(c *gin.Context) {
	var req dto.ExportReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	artifact, err := reports.NewArtifact(reports.ExportFormat(req.Format), req.Config, time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ExportReportResponse{
		Artifact: artifact,
		Status:   "accepted",
	})
}
