package monitoring

import (
	"bufio"
	"encoding/json"
	"io"
)

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func recordSeries(m *System, parameter string, values ...float64) {
	for i, v := range values {
		m.RecordReadings(float64(i+1), map[string]float64{parameter: v})
	}
}
