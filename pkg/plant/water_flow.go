package plant

import (
	"fmt"

	z "github.com/Oudwins/zog"
)

const (
	AtmosphericPressurePa = 101325.0
	DefaultWaterTempC     = 15.0
)

type waterFlowInput struct {
	FlowRateM3s  float64
	TurbidityNTU float64
}

var waterFlowSchema = z.Struct(z.Shape{
	"FlowRateM3s":  nonNegativeSchema,
	"TurbidityNTU": nonNegativeSchema,
})

// WaterFlow is the flow/pressure state delivered to the turbine.
type WaterFlow struct {
	flowRateM3s  float64
	pressurePa   float64
	temperatureC float64
	turbidityNTU float64
}

func NewWaterFlow(flowRateM3s, turbidityNTU float64) (*WaterFlow, error) {
	if err := validate(waterFlowSchema, &waterFlowInput{FlowRateM3s: flowRateM3s, TurbidityNTU: turbidityNTU}); err != nil {
		return nil, err
	}
	return &WaterFlow{
		flowRateM3s:  flowRateM3s,
		pressurePa:   AtmosphericPressurePa,
		temperatureC: DefaultWaterTempC,
		turbidityNTU: turbidityNTU,
	}, nil
}

func (w *WaterFlow) FlowRateM3s() float64  { return w.flowRateM3s }
func (w *WaterFlow) PressurePa() float64   { return w.pressurePa }
func (w *WaterFlow) TemperatureC() float64 { return w.temperatureC }
func (w *WaterFlow) TurbidityNTU() float64 { return w.turbidityNTU }

func (w *WaterFlow) AdjustFlowRate(rateM3s float64) error {
	if err := validateRate(rateM3s); err != nil {
		return fmt.Errorf("flow: %w", err)
	}
	w.flowRateM3s = rateM3s
	return nil
}

// CalculatePressure sets the hydrostatic pressure ρ·g·h; dynamic and friction losses are ignored.
func (w *WaterFlow) CalculatePressure(headHeightM float64) {
	w.pressurePa = WaterDensity * Gravity * headHeightM
}

func (w *WaterFlow) IsFlowSafe() bool {
	return w.flowRateM3s > 0 && w.flowRateM3s <= MaxSafeFlowRate
}
