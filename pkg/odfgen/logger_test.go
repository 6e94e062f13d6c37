package odfgen

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogWarn)

	logger.Info("hidden")
	logger.Warn("shown", "element", "office:scripts")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "element=office:scripts") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "odfgen") {
		t.Errorf("output lacks prefix: %q", out)
	}
}

func TestLogOffSilences(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogOff)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LogOff logger wrote %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug": LogDebug,
		"info":  LogInfo,
		"warn":  LogWarn,
		"error": LogError,
		"off":   LogOff,
		"bogus": LogInfo,
	}
	for input, want := range tests {
		if got := ParseLogLevel(input); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetLogger(t *testing.T) {
	previous := GetLogger()
	defer SetLogger(previous)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LogDebug))
	GetLogger().Debug("via package logger")

	if !strings.Contains(buf.String(), "via package logger") {
		t.Errorf("package logger not replaced: %q", buf.String())
	}
}
