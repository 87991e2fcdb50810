// Package imagery loads slide images from disk or http(s) and renders them
// as half-block terminal art.
package imagery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/webp" // register decoder
)

const (
	fetchTimeout = 10 * time.Second
	maxFetchSize = 32 << 20
	maxPixels    = 40_000_000
	userAgent    = "vitrine/0.1"
)

var (
	// ErrEmptySource is returned when asked to load an empty source.
	ErrEmptySource = errors.New("image source is empty")

	// ErrTooLarge is returned for images whose declared dimensions exceed
	// maxPixels.
	ErrTooLarge = errors.New("image too large")
)

// Loader decodes images and keeps them in memory. Concurrent loads of the
// same source share one fetch.
type Loader struct {
	baseDir string
	http    *http.Client

	memory  sync.Map // source -> image.Image
	loading sync.Map // source -> *loadEntry
}

type loadEntry struct {
	done chan struct{}
	img  image.Image
	err  error
}

// NewLoader resolves relative paths against baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		baseDir: baseDir,
		http:    &http.Client{Timeout: fetchTimeout},
	}
}

// Get returns a cached image without loading.
func (l *Loader) Get(source string) (image.Image, bool) {
	if v, ok := l.memory.Load(source); ok {
		return v.(image.Image), true
	}
	return nil, false
}

// Load returns the decoded image for source, fetching it if needed.
func (l *Loader) Load(ctx context.Context, source string) (image.Image, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrEmptySource
	}
	if img, ok := l.Get(source); ok {
		return img, nil
	}

	entry := &loadEntry{done: make(chan struct{})}
	if existing, loaded := l.loading.LoadOrStore(source, entry); loaded {
		other := existing.(*loadEntry)
		select {
		case <-other.done:
			return other.img, other.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	entry.img, entry.err = l.decode(ctx, source)
	if entry.err == nil {
		l.memory.Store(source, entry.img)
	}
	l.loading.Delete(source)
	close(entry.done)
	return entry.img, entry.err
}

func (l *Loader) decode(ctx context.Context, source string) (image.Image, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, maxFetchSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	// The header is checked first so a tiny file cannot declare a huge
	// canvas.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrTooLarge, source, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if IsRemote(source) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		resp, err := l.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
		}
		return resp.Body, nil
	}

	file, err := os.Open(l.Resolve(source))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return file, nil
}

// Resolve returns the on-disk path for a local source.
func (l *Loader) Resolve(source string) string {
	if IsRemote(source) || filepath.IsAbs(source) || l.baseDir == "" {
		return source
	}
	return filepath.Join(l.baseDir, source)
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
