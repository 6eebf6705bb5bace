package plant

import (
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
)

type turbineInput struct {
	Name       string
	MaxPowerMW float64
	Efficiency float64
}

var turbineSchema = z.Struct(z.Shape{
	"Name":       z.String().Required(),
	"MaxPowerMW": z.Float64().Required().GT(0, z.Message("must be positive")),
	"Efficiency": z.Float64().Required().GT(0).LTE(1, z.Message("must be within (0, 1]")),
})

var efficiencySchema = z.Struct(z.Shape{
	"Efficiency": z.Float64().Required().GT(0).LTE(1, z.Message("must be within (0, 1]")),
})

// Turbine converts water flow and head into mechanical power (MW).
type Turbine struct {
	name            string
	maxPowerMW      float64
	efficiency      float64
	currentPowerMW  float64
	operational     bool
	lastMaintenance time.Time
}

func NewTurbine(name string, maxPowerMW, efficiency float64) (*Turbine, error) {
	if err := validate(turbineSchema, &turbineInput{Name: name, MaxPowerMW: maxPowerMW, Efficiency: efficiency}); err != nil {
		return nil, err
	}
	return &Turbine{
		name:            name,
		maxPowerMW:      maxPowerMW,
		efficiency:      efficiency,
		operational:     true,
		lastMaintenance: time.Now(),
	}, nil
}

func (t *Turbine) Name() string               { return t.name }
func (t *Turbine) MaxPowerMW() float64        { return t.maxPowerMW }
func (t *Turbine) Efficiency() float64        { return t.efficiency }
func (t *Turbine) CurrentPowerMW() float64    { return t.currentPowerMW }
func (t *Turbine) IsOperational() bool        { return t.operational }
func (t *Turbine) LastMaintenance() time.Time { return t.lastMaintenance }

// ComputePower evaluates P = η·ρ·g·Q·H, converts it to MW and clamps it into [0, max].
// A stopped turbine produces nothing regardless of its inputs.
func (t *Turbine) ComputePower(flowRate, headHeight float64) float64 {
	if !t.operational {
		t.currentPowerMW = 0
		return 0
	}

	theoretical := WaterDensity * Gravity * flowRate * headHeight
	t.currentPowerMW = clamp(theoretical*t.efficiency/WattsPerMW, 0, t.maxPowerMW)
	return t.currentPowerMW
}

// SetEfficiency models wear or a refurbishment.
func (t *Turbine) SetEfficiency(efficiency float64) error {
	if err := validate(efficiencySchema, &turbineInput{Efficiency: efficiency}); err != nil {
		return err
	}
	t.efficiency = efficiency
	return nil
}

func (t *Turbine) Shutdown() {
	t.operational = false
	t.currentPowerMW = 0
	common.GetCategoryLogger(common.LoggerNamePlant, common.LoggerCategoryTurbine).
		Info("Turbine shutdown", zap.String("turbine", t.name))
}

func (t *Turbine) Startup() {
	t.operational = true
	common.GetCategoryLogger(common.LoggerNamePlant, common.LoggerCategoryTurbine).
		Info("Turbine startup", zap.String("turbine", t.name))
}

// ScheduleMaintenance only records the wall-clock time; operation is unaffected.
func (t *Turbine) ScheduleMaintenance() {
	t.lastMaintenance = time.Now()
	common.GetCategoryLogger(common.LoggerNamePlant, common.LoggerCategoryTurbine).
		Info("Turbine maintenance recorded",
			zap.String("turbine", t.name),
			zap.Time("last_maintenance", t.lastMaintenance),
		)
}
