package imagery

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoader_LocalRelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "a.png"), testPNG(t, 8, 4), 0o644))

	l := NewLoader(dir)
	_, ok := l.Get("img/a.png")
	require.False(t, ok)

	img, err := l.Load(context.Background(), "img/a.png")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	cached, ok := l.Get("img/a.png")
	require.True(t, ok)
	require.Equal(t, img, cached)
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644))
	l := NewLoader(dir)

	_, err := l.Load(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptySource)

	_, err = l.Load(context.Background(), "missing.png")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.Load(context.Background(), "bad.png")
	require.Error(t, err)
	_, ok := l.Get("bad.png")
	require.False(t, ok)
}

// oversizedPNG returns a valid small PNG whose header claims w x h pixels.
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := testPNG(t, 2, 2)
	// Signature (8), IHDR length (4), "IHDR" (4), then width and height.
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	// CRC covers the chunk type and its 13 data bytes.
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestLoader_RejectsHugeDimensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "huge.png"), oversizedPNG(t, 100_000, 100_000), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.png"), testPNG(t, 16, 16), 0o644))

	l := NewLoader(dir)
	_, err := l.Load(context.Background(), "huge.png")
	require.ErrorIs(t, err, ErrTooLarge)
	_, ok := l.Get("huge.png")
	require.False(t, ok)

	_, err = l.Load(context.Background(), "ok.png")
	require.NoError(t, err)
}

func TestLoader_RemoteDedupesConcurrentFetches(t *testing.T) {
	payload := testPNG(t, 4, 4)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	l := NewLoader("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Load(context.Background(), srv.URL+"/a.png")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err := l.Load(context.Background(), srv.URL+"/a.png")
	require.NoError(t, err)
	require.LessOrEqual(t, hits.Load(), int32(8))

	_, err = l.Load(context.Background(), srv.URL+"/missing.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestResolveAndIsRemote(t *testing.T) {
	l := NewLoader("/srv/show")
	require.Equal(t, filepath.Join("/srv/show", "a.png"), l.Resolve("a.png"))
	require.Equal(t, "/abs/a.png", l.Resolve("/abs/a.png"))
	require.Equal(t, "HTTPS://x/a.png", l.Resolve("HTTPS://x/a.png"))
	require.True(t, IsRemote("http://x"))
	require.False(t, IsRemote("img/http.png"))
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		src        image.Rectangle
		cols, rows int
		w, h       int
	}{
		{"wide image bound by width", image.Rect(0, 0, 200, 100), 40, 20, 40, 20},
		{"tall image bound by height", image.Rect(0, 0, 100, 400), 40, 10, 5, 20},
		{"empty area", image.Rect(0, 0, 10, 10), 0, 5, 0, 0},
		{"empty image", image.Rectangle{}, 10, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Fit(tt.src, tt.cols, tt.rows)
			require.Equal(t, tt.w, w)
			require.Equal(t, tt.h, h)
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(testPNG(t, 20, 10)))
	require.NoError(t, err)

	out := Render(img, 10, 10, "#000000")
	lines := strings.Split(out, "\n")
	// 20x10 fits as 10x5 pixels: three rows, the last half filled.
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, 10, lipgloss.Width(line))
	}

	require.Empty(t, Render(nil, 10, 10, ""))
	require.Empty(t, Render(img, 0, 10, ""))
}
