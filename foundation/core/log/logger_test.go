// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutable copies, level
//              filtering and structured error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial logger tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/expar/foundation/core/error"
)

func jsonLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line %q is not JSON: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != LevelInfo {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), LevelInfo)
	}
	if _, ok := logger.formatter.(*TextFormatter); !ok {
		t.Errorf("New() formatter = %T, want *TextFormatter", logger.formatter)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelWarn)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d entries, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["message"] != "w" || lines[1]["message"] != "e" {
		t.Errorf("unexpected entries: %v", lines)
	}
	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled(info) should be false at warn")
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := jsonLogger(&buf, LevelDebug)
	parser := base.WithField("component", "expar-parser")

	base.Info("base")
	parser.Info("parser", Fields{"input": "1+2"})

	lines := decodeLines(t, &buf)
	if _, ok := lines[0]["component"]; ok {
		t.Error("WithField must not change the original logger")
	}
	if lines[1]["component"] != "expar-parser" || lines[1]["input"] != "1+2" {
		t.Errorf("parser entry = %v", lines[1])
	}
}

func TestWithNameAndCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo).
		WithName("expar").
		WithCorrelationID("id-7").
		WithFields(Fields{"a": 1})

	logger.Info("hello")

	line := decodeLines(t, &buf)[0]
	if line["logger"] != "expar" || line["correlation_id"] != "id-7" || line["a"] != float64(1) {
		t.Errorf("entry = %v", line)
	}
}

func TestWithLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelError).WithLevel(LevelDebug).WithFormat(FormatText)

	logger.Debug("visible")
	if !strings.Contains(buf.String(), "[DBG] visible") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogErrorSeverityLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("empty expression").WithCode(mdwerror.CodeExparSyntax), "info"},
		{"medium severity", mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig), "warn"},
		{"high severity", mdwerror.New("scope never closed").WithCode(mdwerror.CodeExparStructural), "error"},
		{"plain error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			jsonLogger(&buf, LevelTrace).LogError(tt.err)

			line := decodeLines(t, &buf)[0]
			if line["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", line["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	var buf bytes.Buffer
	err := mdwerror.New("no binary operator matches").
		WithCode(mdwerror.CodeExparDisambiguation).
		WithOperation("lower").
		WithDetail("tokens", "=<=").
		WithCorrelationID("abc")

	jsonLogger(&buf, LevelTrace).LogError(err)

	line := decodeLines(t, &buf)[0]
	want := map[string]interface{}{
		"error_code":      "EXPAR_DISAMBIGUATION",
		"error_severity":  "low",
		"error_operation": "lower",
		"error_tokens":    "=<=",
		"correlation_id":  "abc",
	}
	for k, v := range want {
		if line[k] != v {
			t.Errorf("%s = %v, want %v", k, line[k], v)
		}
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, LevelTrace).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() should disable every level")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(jsonLogger(&buf, LevelInfo))
	GetDefault().Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) must keep the previous logger")
	}
}

func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("worker", n).Info("parsed")
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, &buf)); got != 20 {
		t.Errorf("got %d entries, want 20", got)
	}
}
