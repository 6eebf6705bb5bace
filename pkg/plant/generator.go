package plant

import (
	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
)

const (
	DefaultGeneratorVoltageKV   = 11.0
	DefaultGeneratorFrequencyHz = 50.0
)

type generatorInput struct {
	Name       string
	MaxPowerMW float64
	Efficiency float64
}

var generatorSchema = z.Struct(z.Shape{
	"Name":       z.String().Required(),
	"MaxPowerMW": z.Float64().Required().GT(0, z.Message("must be positive")),
	"Efficiency": z.Float64().Required().GT(0).LTE(1, z.Message("must be within (0, 1]")),
})

// Generator converts mechanical power into electrical power. It starts unsynchronized.
type Generator struct {
	name           string
	maxPowerMW     float64
	efficiency     float64
	currentPowerMW float64
	voltageKV      float64
	frequencyHz    float64
	synchronized   bool
}

func NewGenerator(name string, maxPowerMW, efficiency float64) (*Generator, error) {
	if err := validate(generatorSchema, &generatorInput{Name: name, MaxPowerMW: maxPowerMW, Efficiency: efficiency}); err != nil {
		return nil, err
	}
	return &Generator{
		name:        name,
		maxPowerMW:  maxPowerMW,
		efficiency:  efficiency,
		voltageKV:   DefaultGeneratorVoltageKV,
		frequencyHz: DefaultGeneratorFrequencyHz,
	}, nil
}

func (g *Generator) Name() string            { return g.name }
func (g *Generator) MaxPowerMW() float64     { return g.maxPowerMW }
func (g *Generator) Efficiency() float64     { return g.efficiency }
func (g *Generator) CurrentPowerMW() float64 { return g.currentPowerMW }
func (g *Generator) VoltageKV() float64      { return g.voltageKV }
func (g *Generator) FrequencyHz() float64    { return g.frequencyHz }
func (g *Generator) IsSynchronized() bool    { return g.synchronized }

func (g *Generator) GeneratePower(mechanicalPowerMW float64) float64 {
	if !g.synchronized {
		g.currentPowerMW = 0
		return 0
	}

	g.currentPowerMW = clamp(mechanicalPowerMW*g.efficiency, 0, g.maxPowerMW)
	return g.currentPowerMW
}

func (g *Generator) Synchronize() {
	g.synchronized = true
	common.GetCategoryLogger(common.LoggerNamePlant, common.LoggerCategoryGenerator).
		Info("Generator synchronized to grid", zap.String("generator", g.name))
}

func (g *Generator) Desynchronize() {
	g.synchronized = false
	g.currentPowerMW = 0
	common.GetCategoryLogger(common.LoggerNamePlant, common.LoggerCategoryGenerator).
		Info("Generator desynchronized", zap.String("generator", g.name))
}

// AdjustFrequency is informational only; power output does not depend on it.
func (g *Generator) AdjustFrequency(targetHz float64) {
	g.frequencyHz = targetHz
}
