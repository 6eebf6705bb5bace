package monitoring

import (
	"github.com/guregu/null/v6"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

// IMonitor is the single sink the simulator records readings and raises alerts through.
type IMonitor interface {
	RecordReadings(timestamp float64, readings map[string]float64)
	AddAlert(timestamp float64, severity models.AlertSeverity, message, parameter string, value float64)
	RecentAlerts(windowHours float64) []models.Alert
	ClearOldData(retentionHours float64)
	Metrics() models.PerformanceMetrics
	ExportData() map[string][]models.Reading
	Alerts() []models.Alert
	GeneratePerformanceReport() string
}

// IQuery is the read side used by reports and tests.
type IQuery interface {
	LatestReading(parameter string) (models.Reading, bool)
	ReadingsFor(parameter string) ([]models.Reading, bool)
	Average(parameter string) null.Float
	Trend(parameter string) null.Float
	AlertsBySeverity(severity models.AlertSeverity) []models.Alert
}

const EfficiencyTrendCapacity = 100

var parameterUnits = map[string]string{
	models.ParamTurbinePowerMW:      "MW",
	models.ParamGeneratorPowerMW:    "MW",
	models.ParamReservoirLevel:      "%",
	models.ParamReservoirInflow:     "m³/s",
	models.ParamWaterFlow:           "m³/s",
	models.ParamWaterPressure:       "Pa",
	models.ParamHeadHeight:          "m",
	models.ParamTurbineEfficiency:   "",
	models.ParamGeneratorEfficiency: "",
}

// UnitFor returns the display unit of a parameter; unknown parameters have none.
func UnitFor(parameter string) string {
	return parameterUnits[parameter]
}

// System records named time series, keeps the alert log and maintains the performance metrics.
// It is not safe for concurrent use.
type System struct {
	readings map[string][]models.Reading
	alerts   []models.Alert
	metrics  models.PerformanceMetrics

	clock    float64
	hasClock bool

	powerSamples   int
	poweredSamples int
	lastPowerTs    float64
}

func NewSystem() *System {
	return &System{
		readings: make(map[string][]models.Reading),
		metrics: models.PerformanceMetrics{
			EfficiencyTrend:  make([]float64, 0, EfficiencyTrendCapacity),
			UptimePercentage: 100,
		},
	}
}

var (
	_ IMonitor = (*System)(nil)
	_ IQuery   = (*System)(nil)
)

// Clock is the latest timestamp seen through RecordReadings or AddAlert.
func (m *System) Clock() (float64, bool) {
	return m.clock, m.hasClock
}

func (m *System) advanceClock(timestamp float64) {
	if !m.hasClock || timestamp > m.clock {
		m.clock = timestamp
		m.hasClock = true
	}
}

func (m *System) Metrics() models.PerformanceMetrics {
	metrics := m.metrics
	metrics.EfficiencyTrend = append([]float64(nil), m.metrics.EfficiencyTrend...)
	return metrics
}
