package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStreamLogger_EmitsJSONLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf, "test-component", false)

	logger.Info("hello", Field{Key: "url", Value: "http://example.com"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (line=%q)", err, line)
	}
	if entry["level"] != "info" {
		t.Errorf("expected level info, got %v", entry["level"])
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", entry["msg"])
	}
	if entry["component"] != "test-component" {
		t.Errorf("expected component test-component, got %v", entry["component"])
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["url"] != "http://example.com" {
		t.Errorf("expected url field, got %v", entry["fields"])
	}
}

func TestStreamLogger_DebugDroppedUnlessVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf, "", false)

	logger.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output for debug without verbose, got %q", buf.String())
	}

	verbose := NewStreamLogger(&buf, "", true)
	verbose.Debug("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected debug output with verbose, got %q", buf.String())
	}
}

func TestStreamLogger_WithComponentOverride(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf, "parent", false)

	child := logger.With(Field{Key: "component", Value: "child"})
	child.Info("from child")

	if !strings.Contains(buf.String(), `"component":"child"`) {
		t.Errorf("expected child component in output, got %q", buf.String())
	}
}
