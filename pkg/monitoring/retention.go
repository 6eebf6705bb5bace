package monitoring

import (
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
)

// ClearOldData drops readings and alerts older than retentionHours before the monitoring clock.
// Nothing happens until something has been recorded. The alert counter in the metrics is kept.
func (m *System) ClearOldData(retentionHours float64) {
	if !m.hasClock {
		return
	}
	cutoff := m.clock - retentionHours

	prunedReadings := 0
	for parameter, series := range m.readings {
		kept := series[:0]
		for _, reading := range series {
			if reading.Timestamp >= cutoff {
				kept = append(kept, reading)
			}
		}
		prunedReadings += len(series) - len(kept)
		m.readings[parameter] = kept
	}

	keptAlerts := m.alerts[:0]
	for _, alert := range m.alerts {
		if alert.Timestamp >= cutoff {
			keptAlerts = append(keptAlerts, alert)
		}
	}
	prunedAlerts := len(m.alerts) - len(keptAlerts)
	m.alerts = keptAlerts

	if prunedReadings > 0 || prunedAlerts > 0 {
		common.GetCategoryLogger(common.LoggerNameMonitoring, common.LoggerCategoryRetention).
			Debug("Old data cleared",
				zap.Float64("cutoff", cutoff),
				zap.Int("readings", prunedReadings),
				zap.Int("alerts", prunedAlerts),
			)
	}
}
