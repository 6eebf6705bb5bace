package simulator

import (
	"fmt"

	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

const (
	LowReservoirLevelPercent = 20.0
	HighOutputRatio          = 0.95
	LowEfficiency            = 0.7
)

// alertRule.evaluate returns the observed value and whether the rule fires.
type alertRule struct {
	parameter string
	severity  models.AlertSeverity
	evaluate  func(s *Simulator) (float64, bool)
	message   func(value float64) string
}

var alertRules = []alertRule{
	{
		parameter: models.ParamReservoirLevel,
		severity:  models.AlertSeverityWarning,
		evaluate: func(s *Simulator) (float64, bool) {
			level := s.reservoir.WaterLevelPercentage()
			return level, level < LowReservoirLevelPercent
		},
		message: func(v float64) string { return fmt.Sprintf("Low reservoir level: %.1f%%", v) },
	},
	{
		parameter: models.ParamGeneratorPowerMW,
		severity:  models.AlertSeverityWarning,
		evaluate: func(s *Simulator) (float64, bool) {
			power := s.generator.CurrentPowerMW()
			return power, power > s.generator.MaxPowerMW()*HighOutputRatio
		},
		message: func(v float64) string { return fmt.Sprintf("High power output: %.1f MW", v) },
	},
	{
		parameter: models.ParamWaterFlow,
		severity:  models.AlertSeverityCritical,
		evaluate: func(s *Simulator) (float64, bool) {
			return s.waterFlow.FlowRateM3s(), !s.waterFlow.IsFlowSafe()
		},
		message: func(float64) string { return "Unsafe water flow detected" },
	},
	{
		parameter: models.ParamTurbineEfficiency,
		severity:  models.AlertSeverityWarning,
		evaluate: func(s *Simulator) (float64, bool) {
			efficiency := s.turbine.Efficiency()
			return efficiency, efficiency < LowEfficiency
		},
		message: func(float64) string { return "Low turbine efficiency detected" },
	},
}

// checkAlerts evaluates every rule against the current plant state and forwards
// each firing rule to the monitor, stamped with the current simulated hour.
func (s *Simulator) checkAlerts() {
	for _, rule := range alertRules {
		if value, fired := rule.evaluate(s); fired {
			s.monitor.AddAlert(s.currentHours, rule.severity, rule.message(value), rule.parameter, value)
		}
	}
}
