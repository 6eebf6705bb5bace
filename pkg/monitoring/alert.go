package monitoring

import (
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

// AddAlert appends to the alert log. Identical conditions are not deduplicated.
func (m *System) AddAlert(timestamp float64, severity models.AlertSeverity, message, parameter string, value float64) {
	alert := models.Alert{
		Timestamp: timestamp,
		Severity:  severity,
		Message:   message,
		Parameter: parameter,
		Value:     value,
	}

	m.alerts = append(m.alerts, alert)
	m.metrics.TotalAlerts++
	m.advanceClock(timestamp)

	logger := common.GetCategoryLogger(common.LoggerNameMonitoring, common.LoggerCategoryAlert)
	if severity == models.AlertSeverityCritical {
		logger.Warn("Alert raised", zap.Reflect("alert", alert))
	} else {
		logger.Info("Alert raised", zap.Reflect("alert", alert))
	}
}

func (m *System) Alerts() []models.Alert {
	return append([]models.Alert(nil), m.alerts...)
}

func (m *System) AlertsBySeverity(severity models.AlertSeverity) []models.Alert {
	return m.filterAlerts(func(a models.Alert) bool { return a.Severity == severity })
}

// RecentAlerts returns the alerts raised within windowHours of the monitoring clock.
func (m *System) RecentAlerts(windowHours float64) []models.Alert {
	if len(m.alerts) == 0 {
		return []models.Alert{}
	}
	cutoff := m.clock - windowHours
	return m.filterAlerts(func(a models.Alert) bool { return a.Timestamp >= cutoff })
}

// AlertCounts tallies the retained log by severity.
func (m *System) AlertCounts() map[models.AlertSeverity]int {
	return common.Reducer(m.alerts, func(acc map[models.AlertSeverity]int, a models.Alert) map[models.AlertSeverity]int {
		acc[a.Severity]++
		return acc
	}, map[models.AlertSeverity]int{})
}

func (m *System) filterAlerts(keep func(models.Alert) bool) []models.Alert {
	out := []models.Alert{}
	for _, alert := range m.alerts {
		if keep(alert) {
			out = append(out, alert)
		}
	}
	return out
}
