/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"}, // Invalid level
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"trace", TraceLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}
	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestLoggerInitialization(t *testing.T) {
	config := Config{
		Level:     InfoLevel,
		UseColor:  false,
		JSON:      false,
		Component: "test",
	}

	err := Initialize(config)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if defaultLogger == nil {
		t.Fatal("Initialize() did not set defaultLogger")
	}

	if defaultLogger.config.Component != "test" {
		t.Errorf("Initialize() did not set config correctly, got component: %s", defaultLogger.config.Component)
	}
}

func TestLoggerPrettyFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: InfoLevel, Component: "licet"},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "wrote report", String("format", "json"))

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("pretty output missing level: %s", out)
	}
	if !strings.Contains(out, "licet:") {
		t.Errorf("pretty output missing component: %s", out)
	}
	if !strings.Contains(out, "wrote report") {
		t.Errorf("pretty output missing message: %s", out)
	}
	if !strings.Contains(out, "format=json") {
		t.Errorf("pretty output missing field: %s", out)
	}
}

func TestLoggerJSONFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: InfoLevel, JSON: true, Component: "licet"},
		logger: log.New(&buf, "", 0),
	}

	l.Log(WarnLevel, "slow render", Int("bytes", 42))

	var entry LogEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("JSON output not parseable: %v (%s)", err, buf.String())
	}
	if entry.Level != "WARN" || entry.Message != "slow render" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["bytes"] != float64(42) {
		t.Errorf("field not carried: %v", entry.Fields)
	}
	if time.Since(entry.Time) > time.Minute {
		t.Errorf("timestamp looks wrong: %v", entry.Time)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: WarnLevel},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "should be filtered")
	if buf.Len() != 0 {
		t.Errorf("info message emitted at warn level: %s", buf.String())
	}

	l.Log(ErrorLevel, "should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("error message missing: %s", buf.String())
	}
}

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String field = %+v", f)
	}
	if f := Int("n", 7); f.Value != 7 {
		t.Errorf("Int field = %+v", f)
	}
	if f := Bool("b", true); f.Value != true {
		t.Errorf("Bool field = %+v", f)
	}
}
