package simulator

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/db"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

func (s *Simulator) archiveRun(archive *db.DB, startedAt time.Time, steps int) error {
	run := &models.Run{
		ID:             s.runID,
		StartedAt:      startedAt,
		Steps:          steps,
		TotalHours:     s.currentHours,
		TotalEnergyMWh: s.totalEnergyMWh,
		Readings:       flattenReadings(s.monitor.ExportData()),
		Alerts:         s.monitor.Alerts(),
	}

	if err := archive.SaveRun(run); err != nil {
		return err
	}

	avgPower, err := archive.ParameterAverage(run.ID, models.ParamGeneratorPowerMW)
	if err != nil {
		return err
	}
	common.GetCategoryLogger(common.LoggerNameSimulator, common.LoggerCategoryReport).
		Info("Archived run summary",
			zap.String("run_id", run.ID),
			zap.Int("readings", len(run.Readings)),
			zap.Float64p("avg_generator_power_mw", avgPower.Ptr()),
		)
	return nil
}

// flattenReadings orders readings by timestamp, then parameter name.
func flattenReadings(series map[string][]models.Reading) []models.Reading {
	var readings []models.Reading
	for _, values := range series {
		readings = append(readings, values...)
	}
	sort.SliceStable(readings, func(i, j int) bool {
		if readings[i].Timestamp != readings[j].Timestamp {
			return readings[i].Timestamp < readings[j].Timestamp
		}
		return readings[i].Parameter < readings[j].Parameter
	})
	return readings
}
