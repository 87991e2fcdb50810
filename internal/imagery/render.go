package imagery

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// Fit returns the pixel size that fits src inside cols x rows cells while
// keeping its aspect ratio. Each cell holds two vertical pixels.
func Fit(src image.Rectangle, cols, rows int) (w, h int) {
	if cols <= 0 || rows <= 0 || src.Dx() <= 0 || src.Dy() <= 0 {
		return 0, 0
	}
	maxW, maxH := cols, rows*2
	w = maxW
	h = src.Dy() * maxW / src.Dx()
	if h > maxH {
		h = maxH
		w = src.Dx() * maxH / src.Dy()
	}
	return max(w, 1), max(h, 1)
}

// Render scales img to fit cols x rows and draws it with half blocks, the
// upper pixel as foreground and the lower as background. bg fills the
// bottom half of the last row when the height is odd.
func Render(img image.Image, cols, rows int, bg string) string {
	if img == nil {
		return ""
	}
	w, h := Fit(img.Bounds(), cols, rows)
	if w == 0 || h == 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var b strings.Builder
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(dst.RGBAAt(x, y))))
			if y+1 < h {
				style = style.Background(lipgloss.Color(hex(dst.RGBAAt(x, y+1))))
			} else if bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			b.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
