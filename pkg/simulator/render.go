package simulator

import (
	"fmt"
	"io"

	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

// Status is what one step's status block shows.
type Status struct {
	Step                int
	Hour                float64
	TurbinePowerMW      float64
	TurbineEfficiency   float64
	TurbineOperational  bool
	GeneratorPowerMW    float64
	GeneratorEfficiency float64
	ReservoirLevel      float64
	ReservoirVolumeM3   float64
	WaterFlowM3s        float64
	HeadHeightM         float64
	Alerts              []models.Alert
}

type FinalReport struct {
	TotalHours          float64
	TotalEnergyMWh      float64
	ReservoirLevel      float64
	TurbineEfficiency   float64
	GeneratorEfficiency float64
	AlertCount          uint32
}

// AveragePowerMW is zero for an empty run.
func (r FinalReport) AveragePowerMW() float64 {
	if r.TotalHours <= 0 {
		return 0
	}
	return r.TotalEnergyMWh / r.TotalHours
}

func RenderStatus(w io.Writer, st Status) {
	fmt.Fprintf(w, "\nTime Step %d (Hour %.1f)\n", st.Step, st.Hour)
	fmt.Fprintln(w, "Current Status:")

	turbineState := ""
	if !st.TurbineOperational {
		turbineState = " [offline]"
	}
	fmt.Fprintf(w, "  Turbine: %.1f MW (Efficiency: %.1f%%)%s\n",
		st.TurbinePowerMW, st.TurbineEfficiency*100, turbineState)
	fmt.Fprintf(w, "  Generator: %.1f MW (Efficiency: %.1f%%)\n",
		st.GeneratorPowerMW, st.GeneratorEfficiency*100)
	fmt.Fprintf(w, "  Reservoir: %.1f%% full (%.0f m³)\n", st.ReservoirLevel, st.ReservoirVolumeM3)
	fmt.Fprintf(w, "  Water Flow: %.1f m³/s\n", st.WaterFlowM3s)
	fmt.Fprintf(w, "  Head Height: %.1f m\n", st.HeadHeightM)

	if len(st.Alerts) > 0 {
		fmt.Fprintln(w, "  Alerts:")
		for _, alert := range st.Alerts {
			fmt.Fprintf(w, "    [%s] %s\n", alert.Severity, alert.Message)
		}
	}
}

// RenderFinalReport writes the run summary followed by the monitoring performance report.
func RenderFinalReport(w io.Writer, report FinalReport, performanceReport string) {
	fmt.Fprintln(w, "\nSimulation Complete")
	fmt.Fprintln(w, "===================")
	fmt.Fprintf(w, "Total Simulation Time: %.0f hours\n", report.TotalHours)
	fmt.Fprintf(w, "Total Energy Generated: %.1f MWh\n", report.TotalEnergyMWh)
	fmt.Fprintf(w, "Average Power Output: %.1f MW\n", report.AveragePowerMW())
	fmt.Fprintf(w, "Final Reservoir Level: %.1f%%\n", report.ReservoirLevel)
	fmt.Fprintf(w, "Turbine Efficiency: %.1f%%\n", report.TurbineEfficiency*100)
	fmt.Fprintf(w, "Generator Efficiency: %.1f%%\n", report.GeneratorEfficiency*100)
	if report.AlertCount > 0 {
		fmt.Fprintf(w, "Alerts Generated: %d\n", report.AlertCount)
	}

	if performanceReport != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, performanceReport)
	}
}

func (s *Simulator) status() Status {
	return Status{
		Step:                s.step,
		Hour:                s.currentHours,
		TurbinePowerMW:      s.turbine.CurrentPowerMW(),
		TurbineEfficiency:   s.turbine.Efficiency(),
		TurbineOperational:  s.turbine.IsOperational(),
		GeneratorPowerMW:    s.generator.CurrentPowerMW(),
		GeneratorEfficiency: s.generator.Efficiency(),
		ReservoirLevel:      s.reservoir.WaterLevelPercentage(),
		ReservoirVolumeM3:   s.reservoir.VolumeM3(),
		WaterFlowM3s:        s.waterFlow.FlowRateM3s(),
		HeadHeightM:         s.reservoir.AvailableHead(),
		Alerts:              s.monitor.RecentAlerts(0),
	}
}

func (s *Simulator) finalReport() FinalReport {
	return FinalReport{
		TotalHours:          s.currentHours,
		TotalEnergyMWh:      s.totalEnergyMWh,
		ReservoirLevel:      s.reservoir.WaterLevelPercentage(),
		TurbineEfficiency:   s.turbine.Efficiency(),
		GeneratorEfficiency: s.generator.Efficiency(),
		AlertCount:          s.monitor.Metrics().TotalAlerts,
	}
}
