package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestReadFrom_StartsAtEndThenReadsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitrine.log")
	if err := os.WriteFile(path, []byte("{\"level\":\"info\",\"message\":\"old\"}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	offset, err := readFrom(path, -1, &buf, false)
	if err != nil {
		t.Fatalf("readFrom: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("first read printed %q, want nothing", buf.String())
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	_, _ = f.WriteString("{\"level\":\"warn\",\"message\":\"new\"}\npartial")
	_ = f.Close()

	offset, err = readFrom(path, offset, &buf, false)
	if err != nil {
		t.Fatalf("readFrom: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "new") || strings.Contains(out, "old") || strings.Contains(out, "partial") {
		t.Fatalf("second read printed %q", out)
	}

	info, _ := os.Stat(path)
	if want := info.Size() - int64(len("partial")); offset != want {
		t.Fatalf("offset = %d, want %d", offset, want)
	}
}

func TestReadFrom_TruncatedFileRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitrine.log")
	if err := os.WriteFile(path, []byte("fresh\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	offset, err := readFrom(path, 1000, &buf, false)
	if err != nil {
		t.Fatalf("readFrom: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "fresh" || offset != 6 {
		t.Fatalf("readFrom = %q, %d", buf.String(), offset)
	}
}

func TestReadFrom_MissingFile(t *testing.T) {
	_, err := readFrom(filepath.Join(t.TempDir(), "absent.log"), 0, &bytes.Buffer{}, false)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath("")
	if err != nil {
		t.Fatalf("ResolveLogPath: %v", err)
	}
	if want := filepath.Join(home, ".local", "state", "vitrine", "vitrine.log"); got != want {
		t.Fatalf("ResolveLogPath = %q, want %q", got, want)
	}
}
