package db

import (
	"fmt"

	"github.com/guregu/null/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

const archiveBatchSize = 500

// SaveRun writes the run summary with its readings and alerts in one transaction.
func (d *DB) SaveRun(run *models.Run) error {
	if run.ID == "" {
		return fmt.Errorf("run id is required")
	}

	logger := common.GetLoggerWith(common.LoggerNameArchive)

	for i := range run.Readings {
		run.Readings[i].RunID = run.ID
	}
	for i := range run.Alerts {
		run.Alerts[i].RunID = run.ID
	}

	err := d.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(run).Error; err != nil {
			return err
		}
		if len(run.Readings) > 0 {
			if err := tx.CreateInBatches(&run.Readings, archiveBatchSize).Error; err != nil {
				return err
			}
		}
		if len(run.Alerts) > 0 {
			if err := tx.CreateInBatches(&run.Alerts, archiveBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("archive run %s: %w", run.ID, err)
	}

	logger.Info("Run archived",
		zap.String("run_id", run.ID),
		zap.Int("readings", len(run.Readings)),
		zap.Int("alerts", len(run.Alerts)),
	)
	return nil
}

func (d *DB) LoadRun(runID string) (*models.Run, error) {
	var run models.Run
	err := d.Conn.
		Preload("Readings", func(tx *gorm.DB) *gorm.DB { return tx.Order("timestamp, id") }).
		Preload("Alerts", func(tx *gorm.DB) *gorm.DB { return tx.Order("timestamp, id") }).
		First(&run, "id = ?", runID).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ParameterAverage is computed by sqlite over the archived series of one run.
func (d *DB) ParameterAverage(runID, parameter string) (null.Float, error) {
	var avg null.Float
	row := d.Conn.Model(&models.Reading{}).
		Select("AVG(value)").
		Where("run_id = ? AND parameter = ?", runID, parameter).
		Row()
	if err := row.Scan(&avg); err != nil {
		return null.Float{}, err
	}
	return avg, nil
}
