package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxNavLinks is how many sections get a nav link (keys 1-9).
const maxNavLinks = 9

// menuState tracks the collapsed navigation menu.
type menuState struct {
	open bool

	// resizeGen is bumped on every resize; only the latest debounce tick
	// acts.
	resizeGen int
}

type resizeSettledMsg struct{ gen int }

func resizeSettledCmd(gen int) tea.Cmd {
	return tea.Tick(ResizeDebounce, func(time.Time) tea.Msg { return resizeSettledMsg{gen: gen} })
}

func initMenu(m *Model, _ Options) tea.Cmd {
	m.menu = menuState{}
	return nil
}

// compact reports whether nav links collapse behind the menu toggle.
func (m Model) compact() bool {
	return m.width < LayoutCompactWidth
}

func (m Model) menuVisible() bool {
	return m.menu.open && m.compact()
}

func (m *Model) toggleMenu() {
	if !m.compact() {
		return
	}
	m.menu.open = !m.menu.open
}

func (m *Model) closeMenu() {
	m.menu.open = false
}

func (m *Model) handleResizeSettled(msg resizeSettledMsg) {
	if msg.gen != m.menu.resizeGen {
		return
	}
	if !m.compact() {
		m.closeMenu()
	}
}

// navLinks returns the section titles that get nav entries.
func (m Model) navLinks() []string {
	n := min(len(m.showcase.Sections), maxNavLinks)
	links := make([]string, n)
	for i := 0; i < n; i++ {
		links[i] = fmt.Sprintf("%d %s", i+1, m.showcase.Sections[i].Title)
	}
	return links
}

// segment is a clickable piece of the header line.
type segment struct {
	text   string
	style  lipgloss.Style
	target hitTarget
	x      int
	width  int
}

// headerSegments lays the header out left to right. Render and hit tests
// both use it so they agree on positions.
func (m Model) headerSegments() []segment {
	styles := m.theme.Styles().WithBackground(m.headerBackground())

	var left []segment
	left = append(left, segment{text: " ◆ " + m.showcase.Title + " ", style: styles.Logo})

	if m.compact() {
		label := " ≡ menu "
		style := styles.MutedText
		if m.menu.open {
			label = " ✕ menu "
			style = styles.AccentText
		}
		left = append(left, segment{text: label, style: style, target: hitTarget{kind: hitMenuToggle}})
	} else {
		for i, link := range m.navLinks() {
			left = append(left, segment{
				text:   " " + link + " ",
				style:  styles.Text,
				target: hitTarget{kind: hitNavLink, index: i},
			})
		}
	}

	right := []segment{
		{text: " ? help ", style: styles.FaintText},
		{text: " " + m.theme.Icon + " " + m.theme.Name + " ", style: styles.Badge, target: hitTarget{kind: hitThemeBadge}},
	}

	x := 0
	for i := range left {
		left[i].x = x
		left[i].width = lipgloss.Width(left[i].text)
		x += left[i].width
	}

	rightWidth := 0
	for _, s := range right {
		rightWidth += lipgloss.Width(s.text)
	}
	rx := max(m.width-rightWidth, x)
	for i := range right {
		right[i].x = rx
		right[i].width = lipgloss.Width(right[i].text)
		rx += right[i].width
	}

	return append(left, right...)
}

// headerRaised reports whether the page has scrolled far enough for the
// header to lift off it.
func (m Model) headerRaised() bool {
	return m.page.viewport.YOffset > HeaderScrollLines
}

// headerBackground blends into the page at the top and switches to the
// surface color once raised.
func (m Model) headerBackground() string {
	if m.headerRaised() {
		return m.theme.Surface
	}
	return m.theme.Background
}

// renderHeader renders the top bar.
func (m Model) renderHeader() string {
	bg := NewBgStyle(m.headerBackground())

	var b strings.Builder
	x := 0
	for _, s := range m.headerSegments() {
		if s.x > x {
			b.WriteString(bg.Spaces(s.x - x))
			x = s.x
		}
		b.WriteString(s.style.Render(s.text))
		x += s.width
	}
	return bg.FillLine(b.String(), m.width)
}

// menuWidth is the dropdown width, sized to the longest link.
func (m Model) menuWidth() int {
	w := 0
	for _, link := range m.navLinks() {
		w = max(w, lipgloss.Width(link))
	}
	return w + 4
}

// renderMenu renders the dropdown rows shown under the header.
func (m Model) renderMenu() []string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Background)
	width := m.menuWidth()

	links := m.navLinks()
	lines := make([]string, len(links))
	for i, link := range links {
		item := styles.Text.Width(width).Render("  " + link)
		lines[i] = item + bg.Spaces(m.width-width)
	}
	return lines
}
