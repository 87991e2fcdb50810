package logtail

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	lines := []string{
		`{"level":"info","time":"2026-01-02T15:04:05Z","message":"carousel ready","slides":4}`,
		"",
		"not json at all",
		`{"level":"error","error":"boom","message":"image load failed"}`,
	}

	var buf bytes.Buffer
	if err := Format(&buf, lines, false); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(out) != 3 {
		t.Fatalf("Format() wrote %d lines, want 3: %q", len(out), buf.String())
	}
	if !strings.Contains(out[0], "INF") || !strings.Contains(out[0], "carousel ready") || !strings.Contains(out[0], "slides=4") {
		t.Errorf("line 0 = %q", out[0])
	}
	if out[1] != "not json at all" {
		t.Errorf("line 1 = %q, want passthrough", out[1])
	}
	if !strings.Contains(out[2], "ERR") || !strings.Contains(out[2], "boom") {
		t.Errorf("line 2 = %q", out[2])
	}
}
