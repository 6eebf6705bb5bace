package simulator

import (
	"bufio"
	"encoding/json"
	"io"
)

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
