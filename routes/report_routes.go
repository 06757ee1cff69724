package routes

import (
	"ecoroute/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes sets up sustainability report and dashboard routes
func SetupReportRoutes(r *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := r.Group("/reports")
	{
		reports.GET("", reportHandler.ListReports)
		reports.GET("/summary", reportHandler.GetSummary)
		reports.GET("/export", reportHandler.ExportReports)
	}

	r.GET("/dashboard", reportHandler.GetDashboard)
}
