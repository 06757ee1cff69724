package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"ecoroute/internal/services"
	"ecoroute/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportHandler struct {
	reportService services.ReportService
	fleetService  services.FleetService
}

func NewReportHandler(reportService services.ReportService, fleetService services.FleetService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		fleetService:  fleetService,
	}
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	reports := h.reportService.ListReports(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Reports retrieved successfully", reports, &utils.Meta{Count: len(reports)})
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	utils.SuccessResponse(c, "Report summary retrieved successfully", h.reportService.Summary(c.Request.Context()))
}

// ExportReports streams the report log as CSV (default) or XLSX.
func (h *ReportHandler) ExportReports(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "csv"))

	var (
		buf         bytes.Buffer
		err         error
		contentType string
	)
	switch format {
	case "csv":
		contentType = contentTypeCSV
		err = h.reportService.ExportCSV(c.Request.Context(), &buf)
	case "xlsx":
		contentType = contentTypeXLSX
		err = h.reportService.ExportXLSX(c.Request.Context(), &buf)
	default:
		utils.BadRequestResponse(c, "Unsupported export format: "+format)
		return
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "REPORT_EXPORT_FAILED", "Failed to export reports: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, services.ReportFileBase, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	dashboard := h.reportService.Dashboard(ctx, h.fleetService.CountVehicles(ctx))
	utils.SuccessResponse(c, "Dashboard retrieved successfully", dashboard)
}
