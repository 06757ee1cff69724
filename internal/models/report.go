package models

// ReportEntry is one line of the sustainability log.
type ReportEntry struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"` // YYYY-MM-DD
	RouteName         string  `json:"routeName"`
	FuelSaved         float64 `json:"fuelSaved"`         // liters or kWh
	CO2Reduced        float64 `json:"co2Reduced"`        // kg
	AverageEfficiency float64 `json:"averageEfficiency"` // km/l or km/kWh
}

type ReportSummary struct {
	TotalFuelSaved    float64 `json:"totalFuelSaved"`
	TotalCO2Reduced   float64 `json:"totalCo2Reduced"`
	AverageEfficiency float64 `json:"averageEfficiency"`
	Entries           int     `json:"entries"`
}

type DashboardMetric struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

type ChartPoint struct {
	Date       string  `json:"date"`
	FuelSaved  float64 `json:"fuelSaved"`
	CO2Reduced float64 `json:"co2Reduced"`
}

type Dashboard struct {
	Metrics []DashboardMetric `json:"metrics"`
	Chart   []ChartPoint      `json:"chart"`
}
