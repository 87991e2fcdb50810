package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/five82/vitrine/internal/logtail"
)

const (
	defaultFollowInterval = 500 * time.Millisecond
	maxBackoff            = 30 * time.Second
)

// Follow prints lines appended to the log at path until ctx is cancelled,
// like tail -f. Reading starts at the current end of the file. A missing
// or unreadable file is retried with exponential backoff.
func Follow(ctx context.Context, path string, interval time.Duration, w io.Writer, color bool) error {
	if interval <= 0 {
		interval = defaultFollowInterval
	}

	offset := int64(-1) // -1 means "seek to end on first open"
	failures := 0
	for {
		next, err := readFrom(path, offset, w, color)
		wait := interval
		if err != nil {
			failures++
			wait = calculateBackoff(failures, interval)
		} else {
			failures = 0
			offset = next
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// readFrom writes complete lines after offset and returns the offset just
// past the last one. A shrunken file is read again from the start.
func readFrom(path string, offset int64, w io.Writer, color bool) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return offset, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat log: %w", err)
	}
	size := info.Size()
	switch {
	case offset < 0:
		return size, nil
	case size < offset:
		offset = 0
	case size == offset:
		return offset, nil
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log: %w", err)
	}

	reader := bufio.NewReader(file)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			// Partial line; pick it up once it is terminated.
			break
		}
		if err != nil {
			return offset, fmt.Errorf("read log: %w", err)
		}
		offset += int64(len(line))
		lines = append(lines, line[:len(line)-1])
	}

	if err := logtail.Format(w, lines, color); err != nil {
		return offset, err
	}
	return offset, nil
}

// calculateBackoff doubles base per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
