package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
	"liyu1981.xyz/hydro-plant-simulator/pkg/plant"
)

func TestTurbineShutdownMidRun(t *testing.T) {
	common.SetTestLoggerNop()

	sim, monitor, out := newTestSimulator(t, referencePlant, func(o *Options) {
		o.OnStep = func(step int, sim *Simulator) {
			switch step {
			case 1:
				sim.ShutdownTurbine()
			case 2:
				assert.Zero(t, sim.CurrentPower())
				sim.StartupTurbine()
			}
		}
	})
	require.NoError(t, sim.Run(context.Background(), 3))

	power, ok := monitor.ReadingsFor(models.ParamGeneratorPowerMW)
	require.True(t, ok)
	require.Len(t, power, 3)
	assert.Positive(t, power[0].Value)
	assert.Zero(t, power[1].Value)
	assert.Positive(t, power[2].Value)

	assert.InDelta(t, 200.0/3, monitor.Metrics().UptimePercentage, 1e-9)
	assert.Contains(t, out.String(), "Turbine shut down")
	assert.Contains(t, out.String(), "[offline]")
}

func TestAdjustWaterFlow(t *testing.T) {
	common.SetTestLoggerNop()

	sim, monitor, out := newTestSimulator(t, referencePlant, func(o *Options) {
		o.OnStep = func(step int, sim *Simulator) {
			if step == 1 {
				require.NoError(t, sim.AdjustWaterFlow(105))
			}
		}
	})
	require.NoError(t, sim.Run(context.Background(), 2))

	flow, ok := monitor.ReadingsFor(models.ParamWaterFlow)
	require.True(t, ok)
	assert.Equal(t, 50.0, flow[0].Value)
	assert.Equal(t, 105.0, flow[1].Value)

	critical := monitor.AlertsBySeverity(models.AlertSeverityCritical)
	require.Len(t, critical, 1)
	assert.Equal(t, 2.0, critical[0].Timestamp)
	assert.Contains(t, out.String(), "Water flow adjusted to 105.0 m³/s")
}

func TestAdjustWaterFlowRejectsNegative(t *testing.T) {
	common.SetTestLoggerNop()

	sim, _, _ := newTestSimulator(t, referencePlant, nil)
	assert.ErrorIs(t, sim.AdjustWaterFlow(-5), plant.ErrOutOfRange)
}

func TestReservoirLevelControl(t *testing.T) {
	common.SetTestLoggerNop()

	sim, _, _ := newTestSimulator(t, referencePlant, nil)
	assert.Equal(t, 90.0, sim.ReservoirLevel())
	assert.Zero(t, sim.CurrentPower())
}

func TestSetStepRate(t *testing.T) {
	common.SetTestLoggerNop()

	sim, _, _ := newTestSimulator(t, referencePlant, func(o *Options) { o.StepsPerSecond = 5 })
	assert.Equal(t, rate.Limit(5), sim.pacer.Limit())

	sim.SetStepRate(0)
	assert.Equal(t, rate.Inf, sim.pacer.Limit())

	start := time.Now()
	require.NoError(t, sim.Run(context.Background(), 20))
	assert.Less(t, time.Since(start), 2*time.Second, "unpaced run is not throttled to 5 steps/s")
}
