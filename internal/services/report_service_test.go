package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_Summary(t *testing.T) {
	svc := NewReportService(InitialReports(), nil)

	summary := svc.Summary(context.Background())

	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, 82.8, summary.TotalFuelSaved)
	assert.Equal(t, 215.2, summary.TotalCO2Reduced)
	assert.Equal(t, 7.3, summary.AverageEfficiency)
}

func TestReportService_EmptySummary(t *testing.T) {
	summary := NewReportService(nil, nil).Summary(context.Background())
	assert.Zero(t, summary.Entries)
	assert.Zero(t, summary.AverageEfficiency)
}

func TestReportService_ExportCSV(t *testing.T) {
	svc := NewReportService(InitialReports(), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	want := "Date,Route Name,Fuel Saved (L),CO2 Reduced (kg),Avg. Efficiency (km/L)\n" +
		"2024-07-15,Downtown Delivery Loop,15.5,40.2,8.2\n" +
		"2024-07-16,Intercity Express,45,117,6.5\n" +
		"2024-07-17,Suburb Logistics Run,22.3,58,7.1\n"
	assert.Equal(t, want, buf.String())
}

func TestReportService_ExportXLSX(t *testing.T) {
	svc := NewReportService(InitialReports(), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ReportSheetName}, f.GetSheetList())
	rows, err := f.GetRows(ReportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, ReportColumns, rows[0])
	assert.Equal(t, "Intercity Express", rows[2][1])
	assert.Equal(t, "45", rows[2][2])
}

func TestReportService_Dashboard(t *testing.T) {
	svc := NewReportService(InitialReports(), nil)

	dashboard := svc.Dashboard(context.Background(), 3)

	values := map[string]string{}
	for _, m := range dashboard.Metrics {
		values[m.ID] = m.Value
	}
	assert.Equal(t, map[string]string{
		"vehicles":    "3",
		"routes":      "3",
		"fuel_saved":  "82.8",
		"co2_reduced": "215.2",
	}, values)

	require.Len(t, dashboard.Chart, 3)
	assert.Equal(t, "Jul 15", dashboard.Chart[0].Date)
	assert.Equal(t, 45.0, dashboard.Chart[1].FuelSaved)
}
