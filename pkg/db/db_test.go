package db

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
	_ "liyu1981.xyz/hydro-plant-simulator/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"runs", "readings", "alerts"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	common.SetTestLoggerNop()

	archive := GetInstance(UseMemorySqliteDialector())
	runID := uuid.NewString()

	run := &models.Run{
		ID:             runID,
		StartedAt:      time.Now().Truncate(time.Second),
		Steps:          2,
		TotalHours:     2,
		TotalEnergyMWh: 80,
		Readings: []models.Reading{
			{Parameter: models.ParamGeneratorPowerMW, Timestamp: 2, Value: 30, Unit: "MW"},
			{Parameter: models.ParamGeneratorPowerMW, Timestamp: 1, Value: 50, Unit: "MW"},
			{Parameter: models.ParamWaterFlow, Timestamp: 1, Value: 50, Unit: "m³/s"},
		},
		Alerts: []models.Alert{
			{Timestamp: 2, Severity: models.AlertSeverityCritical, Message: "Unsafe water flow detected", Parameter: models.ParamWaterFlow, Value: 120},
		},
	}
	require.NoError(t, archive.SaveRun(run))

	loaded, err := archive.LoadRun(runID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Steps)
	assert.Equal(t, 80.0, loaded.TotalEnergyMWh)
	require.Len(t, loaded.Readings, 3)
	assert.Equal(t, 1.0, loaded.Readings[0].Timestamp)
	assert.Equal(t, runID, loaded.Readings[0].RunID)
	require.Len(t, loaded.Alerts, 1)
	assert.Equal(t, models.AlertSeverityCritical, loaded.Alerts[0].Severity)

	avg, err := archive.ParameterAverage(runID, models.ParamGeneratorPowerMW)
	require.NoError(t, err)
	require.True(t, avg.Valid)
	assert.Equal(t, 40.0, avg.Float64)

	avg, err = archive.ParameterAverage(runID, "unknown")
	require.NoError(t, err)
	assert.False(t, avg.Valid)
}

func TestSaveRun_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	archive := GetInstance(UseMemorySqliteDialector())

	assert.Error(t, archive.SaveRun(&models.Run{}), "run id is required")

	// a run without readings or alerts is still archived
	runID := uuid.NewString()
	require.NoError(t, archive.SaveRun(&models.Run{ID: runID, Steps: 1}))
	loaded, err := archive.LoadRun(runID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Readings)

	// duplicate run ids are rejected and nothing partial is written
	dup := &models.Run{
		ID:       runID,
		Readings: []models.Reading{{Parameter: "p", Timestamp: 1, Value: 1}},
	}
	assert.Error(t, archive.SaveRun(dup))
	var count int64
	require.NoError(t, archive.Conn.Model(&models.Reading{}).Where("run_id = ?", runID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err = archive.LoadRun(uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
