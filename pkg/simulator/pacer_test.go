package simulator

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
)

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}
}

func TestStepPacer_Unpaced(t *testing.T) {
	pacer := NewStepPacer(0)
	assert.Equal(t, rate.Inf, pacer.Limit())

	start := time.Now()
	for range 1000 {
		assert.NoError(t, pacer.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestStepPacer_SetRate(t *testing.T) {
	pacer := NewStepPacer(0)
	pacer.SetRate(5)
	assert.Equal(t, rate.Limit(5), pacer.Limit())

	pacer.SetRate(-1)
	assert.Equal(t, rate.Inf, pacer.Limit())
}

func TestStepPacer_Paces(t *testing.T) {
	skipUnlessIntegration(t)

	pacer := NewStepPacer(20)

	start := time.Now()
	for range 3 {
		assert.NoError(t, pacer.Wait(context.Background()))
	}
	// first token is free, the next two cost 50ms each
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestStepPacer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewStepPacer(0).Wait(ctx), context.Canceled)
	assert.ErrorIs(t, NewStepPacer(1).Wait(ctx), context.Canceled)
}

func TestPacedRun(t *testing.T) {
	skipUnlessIntegration(t)
	common.SetTestLoggerNop()

	sim, _, _ := newTestSimulator(t, referencePlant, func(o *Options) { o.StepsPerSecond = 50 })

	start := time.Now()
	require.NoError(t, sim.Run(context.Background(), 11))
	assert.GreaterOrEqual(t, time.Since(start), 190*time.Millisecond)
}

func TestPacedRunCancelledMidway(t *testing.T) {
	skipUnlessIntegration(t)
	common.SetTestLoggerNop()

	sim, _, _ := newTestSimulator(t, referencePlant, func(o *Options) { o.StepsPerSecond = 10 })

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	err := sim.Run(ctx, 100)
	assert.Error(t, err)
	assert.Less(t, sim.Step(), 100)
	assert.Equal(t, StateFinalized, sim.State())
}
