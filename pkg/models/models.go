package models

import "time"

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Parameter names forwarded by the simulator on every step.
const (
	ParamTurbinePowerMW      = "turbine_power_mw"
	ParamGeneratorPowerMW    = "generator_power_mw"
	ParamReservoirLevel      = "reservoir_level_percent"
	ParamReservoirInflow     = "reservoir_inflow_m3s"
	ParamWaterFlow           = "water_flow_m3s"
	ParamWaterPressure       = "water_pressure_pa"
	ParamHeadHeight          = "head_height_m"
	ParamTurbineEfficiency   = "turbine_efficiency"
	ParamGeneratorEfficiency = "generator_efficiency"
)

// Reading is one observation of a named parameter. Timestamp is simulated hours.
type Reading struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index"`
	Parameter string `gorm:"index"`
	Timestamp float64
	Value     float64
	Unit      string
}

type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index"`
	Timestamp float64
	Severity  AlertSeverity `gorm:"type:varchar(20);check:severity IN ('info','warning','critical')"`
	Message   string
	Parameter string
	Value     float64
}

type PerformanceMetrics struct {
	TotalEnergyMWh   float64
	PeakPowerMW      float64
	AveragePowerMW   float64
	EfficiencyTrend  []float64
	UptimePercentage float64
	TotalAlerts      uint32
}

// Run is the archived summary of one finished simulation.
type Run struct {
	ID             string `gorm:"primaryKey"`
	StartedAt      time.Time
	Steps          int
	TotalHours     float64
	TotalEnergyMWh float64

	Readings []Reading `gorm:"foreignKey:RunID;references:ID"`
	Alerts   []Alert   `gorm:"foreignKey:RunID;references:ID"`
}
