package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/effects"
)

// pageState holds the scrollable page and its effects.
type pageState struct {
	viewport viewport.Model

	// banner is the figlet title, nil when unavailable.
	banner []string

	// spans locates each section in the page content.
	spans []effects.Span

	typewriter effects.Typewriter
	reveal     effects.Reveal
	counters   [][]effects.Counter // per section, per stat

	// counterTicking is set while a counter tick is in flight so at most
	// one tick chain runs.
	counterTicking bool

	// Smooth scroll target; scrollGen invalidates older ticks.
	scrollTarget int
	scrollGen    int
}

type typeMsg struct{}

type counterTickMsg struct{}

type scrollTickMsg struct{ gen int }

func typeCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeMsg{} })
}

func counterTickCmd() tea.Cmd {
	return tea.Tick(CounterFrame, func(time.Time) tea.Msg { return counterTickMsg{} })
}

func scrollTickCmd(gen int) tea.Cmd {
	return tea.Tick(ScrollFrame, func(time.Time) tea.Msg { return scrollTickMsg{gen: gen} })
}

func initTypewriter(m *Model, _ Options) tea.Cmd {
	hero := m.showcase.Hero
	m.page.typewriter = effects.NewTypewriter(hero.Texts, effects.TypewriterOptions{
		TypeDelay:   hero.TypeDelay(),
		DeleteDelay: hero.DeleteDelay(),
		Hold:        hero.Hold(),
		Pause:       hero.Pause(),
		StartDelay:  hero.StartDelay(),
	})
	if m.page.typewriter.Done() {
		return nil
	}
	return typeCmd(m.page.typewriter.StartDelay())
}

func initReveal(m *Model, _ Options) tea.Cmd {
	m.page.viewport = viewport.New(0, 0)
	m.page.reveal = effects.NewReveal(len(m.showcase.Sections), effects.DefaultRevealThreshold)
	return nil
}

func initCounters(m *Model, _ Options) tea.Cmd {
	m.page.counters = make([][]effects.Counter, len(m.showcase.Sections))
	for i, section := range m.showcase.Sections {
		for _, stat := range section.Stats {
			m.page.counters[i] = append(m.page.counters[i], effects.NewCounter(stat.Value, effects.DefaultCounterDuration))
		}
	}
	return nil
}

func (m Model) handleType() (tea.Model, tea.Cmd) {
	next, ok := m.page.typewriter.Step()
	m.refreshPage()
	if !ok {
		return m, nil
	}
	return m, typeCmd(next)
}

func (m Model) handleCounterTick() (tea.Model, tea.Cmd) {
	running := false
	for i := range m.page.counters {
		for j := range m.page.counters[i] {
			m.page.counters[i][j].Advance(CounterFrame)
			running = running || m.page.counters[i][j].Running()
		}
	}
	m.refreshPage()
	if !running {
		m.page.counterTicking = false
		return m, nil
	}
	return m, counterTickCmd()
}

// observeReveal reveals sections that scrolled into view and starts their
// counters.
func (m *Model) observeReveal() tea.Cmd {
	vp := m.page.viewport
	if vp.Height <= 0 {
		return nil
	}
	newly := m.page.reveal.Observe(m.page.spans, vp.YOffset, vp.Height)
	if len(newly) == 0 {
		return nil
	}

	for _, i := range newly {
		for j := range m.page.counters[i] {
			m.page.counters[i][j].Start()
		}
	}
	m.refreshPage()

	if m.page.counterTicking || !m.countersRunning() {
		return nil
	}
	m.page.counterTicking = true
	return counterTickCmd()
}

func (m Model) countersRunning() bool {
	for _, stats := range m.page.counters {
		for _, c := range stats {
			if c.Running() {
				return true
			}
		}
	}
	return false
}

// scrollBy moves the page by delta lines unless scrolling is locked.
func (m *Model) scrollBy(delta int) tea.Cmd {
	if m.scroll.Locked() || delta == 0 {
		return nil
	}
	m.page.scrollGen++ // cancel any smooth scroll
	if delta < 0 {
		m.page.viewport.ScrollUp(-delta)
	} else {
		m.page.viewport.ScrollDown(delta)
	}
	return m.observeReveal()
}

// selectSection closes the menu and smooth-scrolls to section i.
func (m *Model) selectSection(i int) tea.Cmd {
	if i < 0 || i >= len(m.page.spans) {
		return nil
	}
	m.closeMenu()
	if m.scroll.Locked() {
		return nil
	}

	vp := m.page.viewport
	maxOffset := max(vp.TotalLineCount()-vp.Height, 0)
	m.page.scrollTarget = min(m.page.spans[i].Start, maxOffset)
	m.page.scrollGen++
	if m.page.scrollTarget == vp.YOffset {
		return m.observeReveal()
	}
	return scrollTickCmd(m.page.scrollGen)
}

func (m Model) handleScrollTick(msg scrollTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.page.scrollGen {
		return m, nil
	}
	offset := m.page.viewport.YOffset
	diff := m.page.scrollTarget - offset
	step := diff / 3
	if step == 0 {
		step = diff
	}
	m.page.viewport.SetYOffset(offset + step)
	cmd := m.observeReveal()

	if m.page.viewport.YOffset == offset || m.page.viewport.YOffset == m.page.scrollTarget {
		return m, cmd
	}
	return m, tea.Batch(cmd, scrollTickCmd(msg.gen))
}

// resize fits the page viewport between header and carousel.
func (m *Model) resize() {
	l := m.layout()
	m.page.viewport.Width = m.width
	m.page.viewport.Height = l.pageHeight
	m.slides.bar.Width = max(m.width-progressMarkerWidth-2, 1)
	m.refreshPage()
}

// refreshPage rebuilds the page content and section spans.
func (m *Model) refreshPage() {
	if m.width <= 0 {
		return
	}
	content, spans := m.renderPageContent(m.width)
	m.page.spans = spans
	m.page.viewport.SetContent(content)
}

// renderPageContent lays out hero and sections at width.
func (m Model) renderPageContent(width int) (string, []effects.Span) {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	inner := max(width-4, 10)
	indent := bg.Spaces(2)

	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add("")
	if len(m.page.banner) > 0 && bannerWidth(m.page.banner)+4 <= width {
		for _, line := range m.page.banner {
			add(indent + styles.Logo.Render(line))
		}
	} else {
		add(indent + styles.Logo.Render(m.showcase.Title))
	}
	if m.showcase.Tagline != "" {
		add(indent + styles.MutedText.Render(m.showcase.Tagline))
	}
	if len(m.showcase.Hero.Texts) > 0 {
		add(indent + styles.AccentText.Render("> "+m.page.typewriter.Text()+"▌"))
	}
	add("")

	spans := make([]effects.Span, len(m.showcase.Sections))
	for i, section := range m.showcase.Sections {
		revealed := m.page.reveal.Revealed(i)
		title := styles.AccentText.Bold(true)
		body := styles.Text
		if !revealed {
			title = styles.FaintText
			body = styles.FaintText
		}

		start := len(lines)
		add(indent + title.Render(fmt.Sprintf("%d. %s", i+1, section.Title)))
		if section.Body != "" {
			wrapped := lipgloss.NewStyle().Width(inner).Render(section.Body)
			for _, line := range strings.Split(wrapped, "\n") {
				add(indent + body.Render(strings.TrimRight(line, " ")))
			}
		}
		if len(section.Stats) > 0 {
			add("")
			add(indent + m.renderStats(i, revealed))
		}
		spans[i] = effects.Span{Start: start, Height: len(lines) - start}
		add("")
	}

	return strings.Join(lines, "\n"), spans
}

// renderStats draws the counters of section i on one line.
func (m Model) renderStats(i int, revealed bool) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	value := styles.WarningText.Bold(true)
	label := styles.MutedText
	if !revealed {
		value = styles.FaintText
		label = styles.FaintText
	}

	parts := make([]string, 0, len(m.showcase.Sections[i].Stats))
	for j, stat := range m.showcase.Sections[i].Stats {
		n := 0
		if j < len(m.page.counters[i]) {
			n = m.page.counters[i][j].Value()
		}
		parts = append(parts, value.Render(fmt.Sprintf("%d%s", n, stat.Suffix))+bg.Space()+bg.Render(stat.Label, label))
	}
	return bg.Join(parts, "    ")
}

// renderPageArea returns exactly pageHeight lines: the viewport with the
// menu dropdown drawn over its top rows.
func (m Model) renderPageArea(l screenLayout) []string {
	lines := strings.Split(m.page.viewport.View(), "\n")
	for len(lines) < l.pageHeight {
		lines = append(lines, "")
	}
	lines = lines[:l.pageHeight]

	if m.menuVisible() {
		for i, line := range m.renderMenu() {
			if i < len(lines) {
				lines[i] = line
			}
		}
	}
	return lines
}
