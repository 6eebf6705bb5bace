// Package simulator drives the hydro plant one time step at a time. It owns the physical
// components and pushes every reading and alert through a single monitoring sink.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/db"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
	"liyu1981.xyz/hydro-plant-simulator/pkg/monitoring"
	"liyu1981.xyz/hydro-plant-simulator/pkg/plant"
)

const (
	DefaultInitialOutflowM3s = 50.0
	DefaultBaseInflowM3s     = 30.0
	DiurnalInflowAmplitude   = 0.2
	HoursPerDay              = 24.0
)

var (
	ErrAlreadyRun       = errors.New("simulation already run")
	ErrInvalidSteps     = errors.New("number of steps must be at least 1")
	ErrInvalidTimeStep  = errors.New("time step must be a positive whole number of hours")
	ErrMissingComponent = errors.New("missing plant component")
)

type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateRunning
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Components struct {
	Turbine   *plant.Turbine
	Generator *plant.Generator
	Reservoir *plant.Reservoir
	WaterFlow *plant.WaterFlow
}

type Options struct {
	TimeStep          time.Duration // whole hours, default one hour
	InitialOutflowM3s float64
	BaseInflowM3s     float64
	RetentionHours    float64 // 0 keeps everything
	StepsPerSecond    float64 // 0 runs unpaced
	Output            io.Writer
	Archive           *db.DB

	// OnStep runs after each rendered step; it is the hook for the external controls.
	OnStep func(step int, sim *Simulator)
}

func DefaultOptions() Options {
	return Options{
		TimeStep:          time.Hour,
		InitialOutflowM3s: DefaultInitialOutflowM3s,
		BaseInflowM3s:     DefaultBaseInflowM3s,
		Output:            os.Stdout,
	}
}

type Simulator struct {
	turbine   *plant.Turbine
	generator *plant.Generator
	reservoir *plant.Reservoir
	waterFlow *plant.WaterFlow
	monitor   monitoring.IMonitor

	opts  Options
	out   io.Writer
	pacer *StepPacer

	state          State
	runID          string
	step           int
	currentHours   float64
	totalEnergyMWh float64
}

func New(components Components, monitor monitoring.IMonitor, opts Options) (*Simulator, error) {
	if components.Turbine == nil || components.Generator == nil ||
		components.Reservoir == nil || components.WaterFlow == nil || monitor == nil {
		return nil, ErrMissingComponent
	}

	if opts.TimeStep == 0 {
		opts.TimeStep = time.Hour
	}
	if opts.TimeStep < 0 || opts.TimeStep%time.Hour != 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeStep, opts.TimeStep)
	}
	for _, v := range []float64{opts.InitialOutflowM3s, opts.BaseInflowM3s, opts.RetentionHours} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: flows and retention must be finite and not negative", plant.ErrOutOfRange)
		}
	}

	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	return &Simulator{
		turbine:   components.Turbine,
		generator: components.Generator,
		reservoir: components.Reservoir,
		waterFlow: components.WaterFlow,
		monitor:   monitor,
		opts:      opts,
		out:       out,
		pacer:     NewStepPacer(opts.StepsPerSecond),
	}, nil
}

func (s *Simulator) State() State            { return s.state }
func (s *Simulator) RunID() string           { return s.runID }
func (s *Simulator) Step() int               { return s.step }
func (s *Simulator) CurrentHours() float64   { return s.currentHours }
func (s *Simulator) TotalEnergyMWh() float64 { return s.totalEnergyMWh }
func (s *Simulator) stepHours() float64      { return s.opts.TimeStep.Hours() }

// Run initializes the plant, advances it numSteps times and renders the final report.
// A simulator runs once; cancelling ctx aborts the whole run.
func (s *Simulator) Run(ctx context.Context, numSteps int) error {
	if s.state != StateUninitialized {
		return ErrAlreadyRun
	}
	if numSteps < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, numSteps)
	}

	logger := common.GetCategoryLogger(common.LoggerNameSimulator, common.LoggerCategoryStep)

	s.runID = uuid.NewString()
	startedAt := time.Now()
	logger.Info("Simulation started",
		zap.String("run_id", s.runID),
		zap.Int("steps", numSteps),
		zap.Float64("step_rate", float64(s.pacer.Limit())),
	)

	fmt.Fprintf(s.out, "Starting simulation for %d time steps (%.0f hours)\n",
		numSteps, float64(numSteps)*s.stepHours())

	if err := s.initialize(); err != nil {
		s.state = StateFinalized
		return fmt.Errorf("initialize plant: %w", err)
	}

	s.state = StateRunning
	for step := 1; step <= numSteps; step++ {
		if err := s.pacer.Wait(ctx); err != nil {
			s.state = StateFinalized
			logger.Warn("Simulation aborted", zap.String("run_id", s.runID), zap.Int("step", step), zap.Error(err))
			return fmt.Errorf("simulation aborted before step %d: %w", step, err)
		}

		if err := s.advance(); err != nil {
			s.state = StateFinalized
			return fmt.Errorf("step %d: %w", step, err)
		}

		RenderStatus(s.out, s.status())

		if s.opts.OnStep != nil {
			s.opts.OnStep(step, s)
		}
	}

	s.state = StateFinalized
	RenderFinalReport(s.out, s.finalReport(), s.monitor.GeneratePerformanceReport())

	logger.Info("Simulation finished",
		zap.String("run_id", s.runID),
		zap.Float64("total_hours", s.currentHours),
		zap.Float64("total_energy_mwh", s.totalEnergyMWh),
	)

	if s.opts.Archive != nil {
		if err := s.archiveRun(s.opts.Archive, startedAt, numSteps); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) initialize() error {
	s.state = StateInitializing
	fmt.Fprintln(s.out, "Initializing power plant components...")

	s.generator.Synchronize()
	fmt.Fprintln(s.out, "Generator synchronized to grid")

	if err := s.reservoir.SetOutflowRate(s.opts.InitialOutflowM3s); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Water flow initialized at %.1f m³/s\n", s.waterFlow.FlowRateM3s())

	if err := s.reservoir.SetInflowRate(s.opts.BaseInflowM3s); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Reservoir inflow set to %.1f m³/s\n", s.reservoir.InflowRateM3s())
	return nil
}

func (s *Simulator) advance() error {
	s.step++
	s.currentHours += s.stepHours()

	if err := s.updateReservoir(); err != nil {
		return err
	}

	head := s.reservoir.AvailableHead()
	if err := s.waterFlow.AdjustFlowRate(s.reservoir.OutflowRateM3s()); err != nil {
		return err
	}
	s.waterFlow.CalculatePressure(head)

	mechanical := s.turbine.ComputePower(s.waterFlow.FlowRateM3s(), head)
	electrical := s.generator.GeneratePower(mechanical)
	s.totalEnergyMWh += electrical * s.stepHours()

	s.monitor.RecordReadings(s.currentHours, s.readings())
	s.checkAlerts()

	if s.opts.RetentionHours > 0 {
		s.monitor.ClearOldData(s.opts.RetentionHours)
	}

	common.GetCategoryLogger(common.LoggerNameSimulator, common.LoggerCategoryStep).
		Debug("Step completed",
			zap.Int("step", s.step),
			zap.Float64("hour", s.currentHours),
			zap.Float64("generator_power_mw", electrical),
			zap.Float64("reservoir_level_percent", s.reservoir.WaterLevelPercentage()),
		)
	return nil
}

// updateReservoir integrates the previous inflow, then applies the diurnal inflow model
// inflow = base × (1 + 0.2 × sin(2π × time of day)).
func (s *Simulator) updateReservoir() error {
	s.reservoir.UpdateVolume(s.opts.TimeStep)

	timeOfDay := math.Mod(s.currentHours, HoursPerDay) / HoursPerDay
	inflow := s.opts.BaseInflowM3s * (1 + DiurnalInflowAmplitude*math.Sin(2*math.Pi*timeOfDay))
	return s.reservoir.SetInflowRate(inflow)
}

func (s *Simulator) readings() map[string]float64 {
	return map[string]float64{
		models.ParamTurbinePowerMW:      s.turbine.CurrentPowerMW(),
		models.ParamGeneratorPowerMW:    s.generator.CurrentPowerMW(),
		models.ParamReservoirLevel:      s.reservoir.WaterLevelPercentage(),
		models.ParamReservoirInflow:     s.reservoir.InflowRateM3s(),
		models.ParamWaterFlow:           s.waterFlow.FlowRateM3s(),
		models.ParamWaterPressure:       s.waterFlow.PressurePa(),
		models.ParamHeadHeight:          s.reservoir.AvailableHead(),
		models.ParamTurbineEfficiency:   s.turbine.Efficiency(),
		models.ParamGeneratorEfficiency: s.generator.Efficiency(),
	}
}
