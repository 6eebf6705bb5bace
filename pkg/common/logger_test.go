package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/hydro-plant-simulator/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestCategoryLogger(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetCategoryLogger(LoggerNamePlant, LoggerCategoryTurbine).Info("Turbine shutdown")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected a json log line, got: %s", buf.String())
	}
	if line["logger"] != "plant" || line["category"] != "turbine" || line["msg"] != "Turbine shutdown" {
		t.Errorf("unexpected log line: %v", line)
	}
}

func TestLoggingBelowLevelDropped(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.WarnLevel)

	GetLogger().Info("quiet")

	if buf.Len() != 0 {
		t.Errorf("expected info log to be dropped at warn level, got: %s", buf.String())
	}
}

func TestSetLoggerNop(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.DebugLevel)

	SetLoggerNop()
	GetCategoryLogger(LoggerNameSimulator, LoggerCategoryStep).Error("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLoggerNop, got: %s", buf.String())
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop core to be disabled at every level")
	}
}
