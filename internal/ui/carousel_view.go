package ui

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/carousel"
	"github.com/five82/vitrine/internal/config"
	"github.com/five82/vitrine/internal/imagery"
)

const (
	indicatorWidth      = 3
	thumbnailMaxWidth   = 20
	progressMarkerWidth = 12
)

// carouselState is the UI side of the carousel.
type carouselState struct {
	ctl         *carousel.Controller
	slides      []config.Slide
	changes     chan carousel.Change
	unsubscribe func()

	indicators bool
	thumbnails bool
	cellWidth  float64
	threshold  float64

	// Pointer tracking
	hovering bool
	pressed  bool
	pressX   int

	bar     progress.Model
	percent float64

	images   map[string]*imageEntry
	rendered map[renderKey]string
}

type imageEntry struct {
	img     image.Image
	err     error
	pending bool
}

type renderKey struct {
	source string
	cols   int
	rows   int
	bg     string
}

// changeMsg carries a carousel change notification into the update loop.
type changeMsg carousel.Change

type imageLoadedMsg struct {
	source string
	img    image.Image
	err    error
}

func initCarousel(m *Model, opts Options) tea.Cmd {
	cfg := m.showcase.Carousel
	m.slides = carouselState{
		slides:     cfg.Slides,
		indicators: cfg.HasIndicators(),
		thumbnails: cfg.HasThumbnails(),
		cellWidth:  cfg.CellWidth(),
		threshold:  cfg.SwipeThreshold(),
		images:     make(map[string]*imageEntry),
		rendered:   make(map[renderKey]string),
	}
	if m.slides.threshold <= 0 {
		m.slides.threshold = carousel.DefaultSwipeThreshold
	}

	structure := carousel.Structure{
		Slides:     len(cfg.Slides),
		HasTrack:   true,
		HasButtons: cfg.HasButtons(),
	}
	if m.slides.indicators {
		structure.Indicators = len(cfg.Slides)
	}
	if m.slides.thumbnails {
		structure.Thumbnails = len(cfg.Slides)
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = carousel.NewTickerScheduler(m.ctx)
	}

	ctl, err := carousel.New(structure, carousel.Options{
		Interval:        cfg.Interval(),
		SwipeThreshold:  m.slides.threshold,
		DisableAutoPlay: opts.DisableAutoPlay || !cfg.AutoPlayEnabled(),
		Scheduler:       scheduler,
	})
	if err != nil {
		m.log.With("slides", len(cfg.Slides)).Warn("carousel init declined: " + err.Error())
		return nil
	}

	m.slides.ctl = ctl
	m.slides.changes, m.slides.unsubscribe = subscribeChanges(ctl)
	m.slides.percent = carousel.Change{Current: ctl.Current(), Total: ctl.Total()}.Progress()
	m.slides.bar = progress.New(progress.WithSolidFill(m.theme.Accent), progress.WithoutPercentage())
	m.applyThemeToProgress()
	m.log.WithFields(map[string]any{
		"slides":   ctl.Total(),
		"autoplay": ctl.AutoPlayEnabled(),
	}).Info("carousel ready")

	cmds := []tea.Cmd{waitForChange(m.slides.changes)}
	for _, slide := range cfg.Slides {
		if _, seen := m.slides.images[slide.Image]; seen {
			continue
		}
		m.slides.images[slide.Image] = &imageEntry{pending: true}
		cmds = append(cmds, loadImageCmd(m.ctx, m.images, slide.Image))
	}
	return tea.Batch(cmds...)
}

// subscribeChanges bridges controller notifications, which may fire on a
// timer goroutine, into a channel the update loop drains. A full buffer
// drops the oldest change so the newest always gets through.
func subscribeChanges(ctl *carousel.Controller) (chan carousel.Change, func()) {
	ch := make(chan carousel.Change, changeBuffer)
	unsubscribe := ctl.Subscribe(func(c carousel.Change) {
		select {
		case ch <- c:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- c:
		default:
		}
	})
	return ch, unsubscribe
}

func waitForChange(ch <-chan carousel.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return changeMsg(<-ch)
	}
}

func loadImageCmd(ctx context.Context, loader *imagery.Loader, source string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(ctx, source)
		return imageLoadedMsg{source: source, img: img, err: err}
	}
}

func (m *Model) handleChange(c carousel.Change) {
	m.slides.percent = c.Progress()
	m.log.WithFields(map[string]any{
		"current":   c.Current,
		"direction": c.Direction.String(),
	}).Debug("slide changed")
}

func (m *Model) handleImageLoaded(msg imageLoadedMsg) {
	entry := &imageEntry{img: msg.img, err: msg.err}
	m.slides.images[msg.source] = entry
	if msg.err != nil {
		m.log.With("source", msg.source).Error(msg.err, "image load failed")
	}
}

func (m *Model) applyThemeToProgress() {
	m.slides.bar.FullColor = m.theme.Accent
	m.slides.bar.EmptyColor = m.theme.BorderMuted
}

// currentSlide returns the active slide config.
func (m Model) currentSlide() (config.Slide, bool) {
	if m.slides.ctl == nil {
		return config.Slide{}, false
	}
	i := m.slides.ctl.Current()
	if i < 0 || i >= len(m.slides.slides) {
		return config.Slide{}, false
	}
	return m.slides.slides[i], true
}

// openLightbox shows the active slide in the lightbox.
func (m *Model) openLightbox() {
	slide, ok := m.currentSlide()
	if !ok {
		return
	}
	m.closeMenu()
	m.lightbox.Open(slide.Image, slide.Alt, slide.Caption)
}

// slideArtWidth is the width between the prev and next buttons.
func (m Model) slideArtWidth() int {
	return max(m.width-2*carouselButtonWidth, 1)
}

// renderArt draws source at cols x rows, or a placeholder.
func (m Model) renderArt(source, alt string, cols, rows int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	place := func(s string) string {
		return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, s,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
	}

	entry := m.slides.images[source]
	switch {
	case entry == nil || entry.pending:
		return place(styles.FaintText.Render("loading " + truncate(alt, cols-8) + "…"))
	case entry.err != nil:
		return place(styles.MutedText.Render("[" + truncate(alt, cols-4) + "]"))
	}

	key := renderKey{source: source, cols: cols, rows: rows, bg: bgColor}
	if art, ok := m.slides.rendered[key]; ok {
		return art
	}
	art := place(imagery.Render(entry.img, cols, rows, bgColor))
	m.slides.rendered[key] = art
	return art
}

// renderCarousel renders the carousel rows from carouselTop down.
func (m Model) renderCarousel(l screenLayout) []string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	frame := m.slides.ctl.Snapshot()
	slide, _ := m.currentSlide()

	var lines []string

	// Slide rows with prev/next buttons
	cols := m.slideArtWidth()
	art := strings.Split(m.renderArt(slide.Image, slide.Alt, cols, l.slideHeight, m.theme.Surface), "\n")
	mid := l.slideHeight / 2
	for row := 0; row < l.slideHeight; row++ {
		prev, next := bg.Spaces(carouselButtonWidth), bg.Spaces(carouselButtonWidth)
		if row == mid {
			prev = styles.AccentText.Bold(true).Width(carouselButtonWidth).Align(lipgloss.Center).Render("‹")
			next = styles.AccentText.Bold(true).Width(carouselButtonWidth).Align(lipgloss.Center).Render("›")
		}
		content := ""
		if row < len(art) {
			content = art[row]
		}
		lines = append(lines, prev+bg.FillLine(content, cols)+next)
	}

	// Caption
	caption := fmt.Sprintf("%d/%d", frame.Current+1, frame.Total)
	if slide.Caption != "" {
		caption = slide.Caption + "  " + caption
	}
	lines = append(lines, bg.FillLine(
		styles.MutedText.Width(m.width).Align(lipgloss.Center).Render(truncate(caption, m.width)), m.width))

	if l.indicatorRow >= 0 {
		lines = append(lines, m.renderIndicators(frame, styles, bg))
	}
	if l.thumbnailRow >= 0 {
		lines = append(lines, m.renderThumbnails(frame, styles, bg))
	}

	lines = append(lines, m.renderProgress(styles, bg))
	return lines
}

func (m Model) indicatorSpans() []cellSpan {
	return centeredSpans(m.width, len(m.slides.slides), indicatorWidth)
}

func (m Model) renderIndicators(frame carousel.Frame, styles Styles, bg BgStyle) string {
	var b strings.Builder
	spans := m.indicatorSpans()
	if len(spans) > 0 {
		b.WriteString(bg.Spaces(spans[0].x))
	}
	for i := range spans {
		dot, style := "○", styles.FaintText
		if i < len(frame.Indicators) && frame.Indicators[i] {
			dot, style = "●", styles.AccentText
		}
		b.WriteString(style.Width(indicatorWidth).Align(lipgloss.Center).Render(dot))
	}
	return bg.FillLine(b.String(), m.width)
}

func (m Model) thumbnailSpans() []cellSpan {
	n := len(m.slides.slides)
	if n == 0 {
		return nil
	}
	w := min(thumbnailMaxWidth, max(m.width/n, 3))
	return centeredSpans(m.width, n, w)
}

func (m Model) renderThumbnails(frame carousel.Frame, styles Styles, bg BgStyle) string {
	var b strings.Builder
	spans := m.thumbnailSpans()
	if len(spans) > 0 {
		b.WriteString(bg.Spaces(spans[0].x))
	}
	for i, span := range spans {
		label := fmt.Sprintf("%d", i+1)
		if alt := m.slides.slides[i].Alt; alt != "" {
			label += " " + alt
		}
		style := styles.MutedText
		if i < len(frame.Thumbnails) && frame.Thumbnails[i] {
			style = styles.Selected
		}
		b.WriteString(style.Width(span.width).MaxWidth(span.width).Align(lipgloss.Center).
			Render(truncate(label, span.width-2)))
	}
	return bg.FillLine(b.String(), m.width)
}

func (m Model) renderProgress(styles Styles, bg BgStyle) string {
	ctl := m.slides.ctl
	marker := styles.FaintText.Render("❚❚ paused")
	switch {
	case ctl.Dragging():
		marker = styles.WarningText.Render("⇆ dragging")
	case ctl.AutoPlaying():
		marker = styles.SuccessText.Render("▶ autoplay")
	case ctl.AutoPlayEnabled():
		marker = styles.MutedText.Render("❚❚ on hold")
	}
	line := bg.Space() + m.slides.bar.ViewAs(m.slides.percent) + bg.Space() +
		lipgloss.NewStyle().Width(progressMarkerWidth).Render(marker)
	return bg.FillLine(line, m.width)
}
