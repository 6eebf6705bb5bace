package monitoring

import (
	"fmt"
	"strings"

	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

func (m *System) GeneratePerformanceReport() string {
	return RenderPerformanceReport(m.metrics, m.readings, m.AlertCounts())
}

// RenderPerformanceReport formats the metrics, series and retained alert counts. A line is only written when the
// value behind it can be computed.
func RenderPerformanceReport(
	metrics models.PerformanceMetrics,
	series map[string][]models.Reading,
	alertCounts map[models.AlertSeverity]int,
) string {
	var b strings.Builder
	b.WriteString("Performance Report\n")
	b.WriteString("==================\n")

	power := series[models.ParamGeneratorPowerMW]
	if avg := seriesAverage(power); avg.Valid {
		fmt.Fprintf(&b, "Average Power Output: %.1f MW\n", avg.Float64)
	}
	if len(power) > 0 {
		fmt.Fprintf(&b, "Peak Power Output: %.1f MW\n", metrics.PeakPowerMW)
	}
	if sd := seriesStdDev(power); sd.Valid {
		fmt.Fprintf(&b, "Power Output Std Dev: %.2f MW\n", sd.Float64)
	}

	if avg := seriesAverage(series[models.ParamTurbineEfficiency]); avg.Valid {
		fmt.Fprintf(&b, "Average Turbine Efficiency: %.1f%%\n", avg.Float64*100)
	}
	if avg := seriesAverage(series[models.ParamGeneratorEfficiency]); avg.Valid {
		fmt.Fprintf(&b, "Average Generator Efficiency: %.1f%%\n", avg.Float64*100)
	}
	if avg := seriesAverage(series[models.ParamReservoirLevel]); avg.Valid {
		fmt.Fprintf(&b, "Average Reservoir Level: %.1f%%\n", avg.Float64)
	}
	if avg := seriesAverage(series[models.ParamWaterFlow]); avg.Valid {
		fmt.Fprintf(&b, "Average Water Flow: %.1f m³/s\n", avg.Float64)
	}

	fmt.Fprintf(&b, "Total Alerts: %d\n", metrics.TotalAlerts)
	if breakdown := severityBreakdown(alertCounts); breakdown != "" {
		fmt.Fprintf(&b, "Alerts by Severity: %s\n", breakdown)
	}

	if trend := seriesTrend(power); trend.Valid {
		fmt.Fprintf(&b, "Power Trend: %s\n", TrendDirection(trend.Float64))
	}

	return b.String()
}

var severityOrder = []models.AlertSeverity{
	models.AlertSeverityCritical,
	models.AlertSeverityWarning,
	models.AlertSeverityInfo,
}

func severityBreakdown(counts map[models.AlertSeverity]int) string {
	parts := []string{}
	for _, severity := range severityOrder {
		if n := counts[severity]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", severity, n))
		}
	}
	return strings.Join(parts, ", ")
}

func TrendDirection(slope float64) string {
	switch {
	case slope > 0:
		return "Increasing"
	case slope < 0:
		return "Decreasing"
	default:
		return "Stable"
	}
}
