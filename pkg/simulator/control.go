package simulator

import (
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
)

// AdjustWaterFlow sets the reservoir outflow that feeds the turbine from the next step on.
func (s *Simulator) AdjustWaterFlow(rateM3s float64) error {
	if err := s.reservoir.SetOutflowRate(rateM3s); err != nil {
		return err
	}

	common.GetCategoryLogger(common.LoggerNameSimulator, common.LoggerCategoryControl).
		Info("Water flow adjusted", zap.Float64("flow_m3s", rateM3s), zap.Int("step", s.step))
	fmt.Fprintf(s.out, "Water flow adjusted to %.1f m³/s\n", rateM3s)
	return nil
}

// SetStepRate changes the pacing of the remaining steps; 0 or less runs unpaced.
func (s *Simulator) SetStepRate(stepsPerSecond float64) {
	s.pacer.SetRate(stepsPerSecond)
	common.GetCategoryLogger(common.LoggerNameSimulator, common.LoggerCategoryControl).
		Info("Step rate changed", zap.Float64("steps_per_second", stepsPerSecond), zap.Int("step", s.step))
}

func (s *Simulator) ShutdownTurbine() {
	s.turbine.Shutdown()
	fmt.Fprintln(s.out, "Turbine shut down")
}

func (s *Simulator) StartupTurbine() {
	s.turbine.Startup()
	fmt.Fprintln(s.out, "Turbine started up")
}

// CurrentPower is the generator's electrical output in MW.
func (s *Simulator) CurrentPower() float64 {
	return s.generator.CurrentPowerMW()
}

func (s *Simulator) ReservoirLevel() float64 {
	return s.reservoir.WaterLevelPercentage()
}
