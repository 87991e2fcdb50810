package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/lightbox"
)

const lightboxCloseLabel = "[x]"

func initLightbox(m *Model, _ Options) tea.Cmd {
	m.lightbox = lightbox.New(m.scroll)
	return nil
}

// lightboxBox is the on-screen geometry of the lightbox modal.
type lightboxBox struct {
	x, y          int // top-left corner, border included
	width, height int // border included
	innerWidth    int
	imageRows     int
	close         cellSpan
	closeRow      int
}

func (m Model) lightboxGeometry() lightboxBox {
	w := max(min(m.width-4, 120), 12)
	h := max(min(m.height-2, 40), 7)
	b := lightboxBox{
		x:      max((m.width-w)/2, 0),
		y:      max((m.height-h)/2, 0),
		width:  w,
		height: h,
	}
	// Border on each side, one column of padding inside it.
	b.innerWidth = w - 4
	// Close row, caption row and alt row sit around the image.
	b.imageRows = max(h-2-3, 1)
	b.closeRow = b.y + 1
	b.close = cellSpan{x: b.x + 2 + b.innerWidth - len(lightboxCloseLabel), width: len(lightboxCloseLabel)}
	return b
}

// lightboxTarget classifies a click at x, y.
func (m Model) lightboxTarget(x, y int) lightbox.Target {
	b := m.lightboxGeometry()
	if y == b.closeRow && b.close.contains(x) {
		return lightbox.TargetCloseButton
	}
	if x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height {
		return lightbox.TargetContent
	}
	return lightbox.TargetOverlay
}

// renderLightbox renders the open image centered over a blank page.
func (m Model) renderLightbox() string {
	b := m.lightboxGeometry()
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	img := m.lightbox.Image()

	row := func(s string, align lipgloss.Position) string {
		return lipgloss.PlaceHorizontal(b.innerWidth, align, s,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Surface)))
	}

	lines := []string{row(styles.DangerText.Render(lightboxCloseLabel), lipgloss.Right)}
	art := m.renderArt(img.Source, img.Alt, b.innerWidth, b.imageRows, m.theme.Surface)
	lines = append(lines, strings.Split(art, "\n")...)
	lines = append(lines,
		row(styles.Text.Bold(true).Render(truncate(img.Caption, b.innerWidth)), lipgloss.Center),
		row(styles.FaintText.Render(truncate(img.Alt, b.innerWidth)), lipgloss.Center),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		BorderBackground(lipgloss.Color(m.theme.Surface)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(b.width - 2).
		Height(b.height - 2).
		MaxHeight(b.height).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
