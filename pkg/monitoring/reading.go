package monitoring

import (
	"sort"

	"github.com/guregu/null/v6"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/models"
)

func (m *System) RecordReadings(timestamp float64, readings map[string]float64) {
	parameters := make([]string, 0, len(readings))
	for parameter := range readings {
		parameters = append(parameters, parameter)
	}
	sort.Strings(parameters)

	for _, parameter := range parameters {
		value := readings[parameter]
		m.readings[parameter] = append(m.readings[parameter], models.Reading{
			Parameter: parameter,
			Timestamp: timestamp,
			Value:     value,
			Unit:      UnitFor(parameter),
		})
		m.updatePerformanceMetrics(parameter, timestamp, value)
	}
	m.advanceClock(timestamp)

	common.GetCategoryLogger(common.LoggerNameMonitoring, common.LoggerCategoryReading).
		Debug("Readings recorded", zap.Float64("timestamp", timestamp), zap.Int("count", len(parameters)))
}

func (m *System) updatePerformanceMetrics(parameter string, timestamp, value float64) {
	switch parameter {
	case models.ParamGeneratorPowerMW:
		if value > m.metrics.PeakPowerMW {
			m.metrics.PeakPowerMW = value
		}

		m.powerSamples++
		if value > 0 {
			m.poweredSamples++
		}
		m.metrics.AveragePowerMW += (value - m.metrics.AveragePowerMW) / float64(m.powerSamples)
		m.metrics.UptimePercentage = float64(m.poweredSamples) / float64(m.powerSamples) * 100

		if dt := timestamp - m.lastPowerTs; dt > 0 {
			m.metrics.TotalEnergyMWh += value * dt
			m.lastPowerTs = timestamp
		}
	case models.ParamTurbineEfficiency:
		trend := append(m.metrics.EfficiencyTrend, value)
		if len(trend) > EfficiencyTrendCapacity {
			trend = append(trend[:0:0], trend[len(trend)-EfficiencyTrendCapacity:]...)
		}
		m.metrics.EfficiencyTrend = trend
	}
}

func (m *System) LatestReading(parameter string) (models.Reading, bool) {
	series := m.readings[parameter]
	if len(series) == 0 {
		return models.Reading{}, false
	}
	return series[len(series)-1], true
}

func (m *System) ReadingsFor(parameter string) ([]models.Reading, bool) {
	series, ok := m.readings[parameter]
	if !ok {
		return nil, false
	}
	return append([]models.Reading(nil), series...), true
}

// Average is the arithmetic mean over the retained series.
func (m *System) Average(parameter string) null.Float {
	return seriesAverage(m.readings[parameter])
}

// Trend is the two-point slope between the first and last retained readings, per hour.
func (m *System) Trend(parameter string) null.Float {
	return seriesTrend(m.readings[parameter])
}

// ExportData returns a deep copy of every retained series.
func (m *System) ExportData() map[string][]models.Reading {
	out := make(map[string][]models.Reading, len(m.readings))
	for parameter, series := range m.readings {
		out[parameter] = append([]models.Reading(nil), series...)
	}
	return out
}

func seriesValues(series []models.Reading) []float64 {
	return common.Mapper(series, func(r models.Reading) float64 { return r.Value })
}

func seriesAverage(series []models.Reading) null.Float {
	if len(series) == 0 {
		return null.Float{}
	}
	return null.FloatFrom(stat.Mean(seriesValues(series), nil))
}

func seriesTrend(series []models.Reading) null.Float {
	if len(series) < 2 {
		return null.Float{}
	}
	first, last := series[0], series[len(series)-1]
	span := last.Timestamp - first.Timestamp
	if span <= 0 {
		return null.Float{}
	}
	return null.FloatFrom((last.Value - first.Value) / span)
}

func seriesStdDev(series []models.Reading) null.Float {
	if len(series) < 2 {
		return null.Float{}
	}
	return null.FloatFrom(stat.StdDev(seriesValues(series), nil))
}
