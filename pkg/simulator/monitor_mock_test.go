package simulator

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
	"liyu1981.xyz/hydro-plant-simulator/pkg/monitoring/mocks"
)

func TestUnsafeFlowReachesMonitorAsCritical(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	monitor := mocks.NewMockIMonitor(ctrl)

	cfg := referencePlant
	cfg.generatorMaxMW = 200

	opts := DefaultOptions()
	opts.InitialOutflowM3s = 120
	out := &bytes.Buffer{}
	opts.Output = out

	sim, err := New(newComponents(t, cfg), monitor, opts)
	require.NoError(t, err)

	unsafe := models.Alert{
		Timestamp: 1,
		Severity:  models.AlertSeverityCritical,
		Message:   "Unsafe water flow detected",
		Parameter: models.ParamWaterFlow,
		Value:     120,
	}

	gomock.InOrder(
		monitor.EXPECT().
			RecordReadings(1.0, gomock.Any()).
			Do(func(_ float64, readings map[string]float64) {
				assert.Len(t, readings, 9)
				assert.Equal(t, 120.0, readings[models.ParamWaterFlow])
			}),
		monitor.EXPECT().
			AddAlert(1.0, models.AlertSeverityCritical, "Unsafe water flow detected", models.ParamWaterFlow, 120.0),
		monitor.EXPECT().RecentAlerts(0.0).Return([]models.Alert{unsafe}),
	)
	monitor.EXPECT().Metrics().Return(models.PerformanceMetrics{TotalAlerts: 1})
	monitor.EXPECT().GeneratePerformanceReport().Return("Performance Report\n")

	require.NoError(t, sim.Run(context.Background(), 1))

	assert.Contains(t, out.String(), "[critical] Unsafe water flow detected")
	assert.Contains(t, out.String(), "Alerts Generated: 1")
}

func TestRetentionDelegatedToMonitor(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	monitor := mocks.NewMockIMonitor(ctrl)

	opts := DefaultOptions()
	opts.Output = nil
	opts.RetentionHours = 12

	sim, err := New(newComponents(t, referencePlant), monitor, opts)
	require.NoError(t, err)

	monitor.EXPECT().RecordReadings(gomock.Any(), gomock.Any()).Times(2)
	monitor.EXPECT().ClearOldData(12.0).Times(2)
	monitor.EXPECT().RecentAlerts(0.0).Return(nil).Times(2)
	monitor.EXPECT().Metrics().Return(models.PerformanceMetrics{})
	monitor.EXPECT().GeneratePerformanceReport().Return("")

	require.NoError(t, sim.Run(context.Background(), 2))
}
