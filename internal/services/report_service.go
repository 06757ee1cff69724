package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"ecoroute/internal/models"
	"ecoroute/internal/utils"
	"ecoroute/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const (
	ReportSheetName   = "Sustainability"
	ReportFileBase    = "sustainability_reports"
	chartDateLayout   = "Jan 2"
	reportDateLayout  = "2006-01-02"
	metricDecimals    = 1
	reportColumnWidth = 22
)

// ReportColumns is the header row of every report export.
var ReportColumns = []string{"Date", "Route Name", "Fuel Saved (L)", "CO2 Reduced (kg)", "Avg. Efficiency (km/L)"}

// ReportService serves the read-only sustainability log and the dashboard
// figures derived from it.
type ReportService interface {
	ListReports(ctx context.Context) []models.ReportEntry
	Summary(ctx context.Context) *models.ReportSummary
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportXLSX(ctx context.Context, w io.Writer) error
	Dashboard(ctx context.Context, vehicleCount int) *models.Dashboard
}

type reportService struct {
	reports []models.ReportEntry
	logger  *logger.Logger
}

// InitialReports is the sample log shown until real route history exists.
func InitialReports() []models.ReportEntry {
	return []models.ReportEntry{
		{ID: "1", Date: "2024-07-15", RouteName: "Downtown Delivery Loop", FuelSaved: 15.5, CO2Reduced: 40.2, AverageEfficiency: 8.2},
		{ID: "2", Date: "2024-07-16", RouteName: "Intercity Express", FuelSaved: 45.0, CO2Reduced: 117.0, AverageEfficiency: 6.5},
		{ID: "3", Date: "2024-07-17", RouteName: "Suburb Logistics Run", FuelSaved: 22.3, CO2Reduced: 58.0, AverageEfficiency: 7.1},
	}
}

func NewReportService(reports []models.ReportEntry, log *logger.Logger) ReportService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &reportService{
		reports: append([]models.ReportEntry(nil), reports...),
		logger:  log,
	}
}

func (s *reportService) ListReports(ctx context.Context) []models.ReportEntry {
	return append([]models.ReportEntry(nil), s.reports...)
}

func (s *reportService) Summary(ctx context.Context) *models.ReportSummary {
	summary := &models.ReportSummary{Entries: len(s.reports)}
	var efficiency float64
	for _, r := range s.reports {
		summary.TotalFuelSaved += r.FuelSaved
		summary.TotalCO2Reduced += r.CO2Reduced
		efficiency += r.AverageEfficiency
	}
	if len(s.reports) > 0 {
		summary.AverageEfficiency = efficiency / float64(len(s.reports))
	}

	summary.TotalFuelSaved = utils.RoundTo(summary.TotalFuelSaved, metricDecimals)
	summary.TotalCO2Reduced = utils.RoundTo(summary.TotalCO2Reduced, metricDecimals)
	summary.AverageEfficiency = utils.RoundTo(summary.AverageEfficiency, metricDecimals)
	return summary
}

func (s *reportService) ExportCSV(ctx context.Context, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ReportColumns); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, r := range s.reports {
		record := []string{
			r.Date,
			r.RouteName,
			formatReportNumber(r.FuelSaved),
			formatReportNumber(r.CO2Reduced),
			formatReportNumber(r.AverageEfficiency),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write report %s: %w", r.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report csv: %w", err)
	}

	s.logger.WithContext(ctx).WithField("rows", len(s.reports)).Info("Report exported as CSV")
	return nil
}

func (s *reportService) ExportXLSX(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ReportSheetName)
	if err != nil {
		return fmt.Errorf("create report sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range ReportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(ReportSheetName, cell, header); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2F0D9"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(ReportSheetName, 1, 1, headerStyle)
	}

	for i, r := range s.reports {
		values := []interface{}{r.Date, r.RouteName, r.FuelSaved, r.CO2Reduced, r.AverageEfficiency}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ReportSheetName, cell, value); err != nil {
				return fmt.Errorf("write report %s: %w", r.ID, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(ReportColumns))
	if err != nil {
		return err
	}
	_ = f.SetColWidth(ReportSheetName, "A", lastCol, reportColumnWidth)

	if f.GetSheetName(0) != ReportSheetName {
		_ = f.DeleteSheet("Sheet1")
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write report workbook: %w", err)
	}

	s.logger.WithContext(ctx).WithField("rows", len(s.reports)).Info("Report exported as XLSX")
	return nil
}

func (s *reportService) Dashboard(ctx context.Context, vehicleCount int) *models.Dashboard {
	summary := s.Summary(ctx)

	dashboard := &models.Dashboard{
		Metrics: []models.DashboardMetric{
			{ID: "vehicles", Title: "Total Vehicles", Value: strconv.Itoa(vehicleCount)},
			{ID: "routes", Title: "Optimized Routes", Value: strconv.Itoa(summary.Entries)},
			{ID: "fuel_saved", Title: "Est. Fuel Saved", Value: utils.FormatFixed(summary.TotalFuelSaved, metricDecimals), Unit: "Liters/kWh"},
			{ID: "co2_reduced", Title: "Est. CO2 Reduced", Value: utils.FormatFixed(summary.TotalCO2Reduced, metricDecimals), Unit: "kg"},
		},
		Chart: make([]models.ChartPoint, 0, len(s.reports)),
	}

	for _, r := range s.reports {
		label := r.Date
		if day, err := time.Parse(reportDateLayout, r.Date); err == nil {
			label = day.Format(chartDateLayout)
		}
		dashboard.Chart = append(dashboard.Chart, models.ChartPoint{
			Date:       label,
			FuelSaved:  r.FuelSaved,
			CO2Reduced: r.CO2Reduced,
		})
	}

	return dashboard
}

func formatReportNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
