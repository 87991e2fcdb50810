package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/carousel"
	"github.com/five82/vitrine/internal/config"
	"github.com/five82/vitrine/internal/imagery"
	"github.com/five82/vitrine/internal/lightbox"
	"github.com/five82/vitrine/internal/logger"
	"github.com/five82/vitrine/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Showcase  config.Showcase
	ThemeName string
	PrefsPath string
	Logger    *logger.Logger

	// Images loads slide images; nil uses a loader rooted at the showcase
	// directory.
	Images *imagery.Loader

	// Scheduler drives carousel autoplay; nil uses a ticker bound to
	// Context.
	Scheduler       carousel.Scheduler
	DisableAutoPlay bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	showcase  config.Showcase
	prefsPath string
	log       *logger.Logger
	images    *imagery.Loader
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	page     pageState
	menu     menuState
	slides   carouselState
	lightbox *lightbox.Controller
	scroll   *lightbox.PageScroll

	// startup holds the commands produced by the initializers.
	startup []tea.Cmd
}

// New creates a new Bubble Tea model and runs the page initializers.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	images := opts.Images
	if images == nil {
		images = imagery.NewLoader(opts.Showcase.BaseDir())
	}

	m := Model{
		ctx:       ctx,
		showcase:  opts.Showcase,
		prefsPath: prefsPath,
		log:       log,
		images:    images,
		keys:      DefaultKeyMap(),
		scroll:    &lightbox.PageScroll{},
	}

	for _, in := range initializers {
		if cmd := in.run(&m, opts); cmd != nil {
			m.startup = append(m.startup, cmd)
		}
		m.log.With("initializer", in.name).Debug("initialized")
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startup...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		if m.slides.ctl != nil {
			_, _ = m.slides.ctl.Dispatch(carousel.Resize())
		}
		m.menu.resizeGen++
		return m, tea.Batch(m.observeReveal(), resizeSettledCmd(m.menu.resizeGen))

	case resizeSettledMsg:
		m.handleResizeSettled(msg)
		return m, nil

	case tea.FocusMsg:
		m.setVisible(true)
		return m, nil

	case tea.BlurMsg:
		m.setVisible(false)
		return m, nil

	case changeMsg:
		m.handleChange(carousel.Change(msg))
		return m, waitForChange(m.slides.changes)

	case typeMsg:
		return m.handleType()

	case counterTickMsg:
		return m.handleCounterTick()

	case scrollTickMsg:
		return m.handleScrollTick(msg)

	case imageLoadedMsg:
		m.handleImageLoaded(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.lightbox.IsOpen() {
		return m.renderLightbox()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The lightbox swallows everything but escape and quit
	if m.lightbox.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape):
			m.lightbox.HandleEscape()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMenu):
		m.toggleMenu()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.closeMenu()
		return m, nil

	case key.Matches(msg, m.keys.Section):
		return m, m.selectSection(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.keys.Up):
		return m, m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.scrollBy(-m.page.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.scrollBy(m.page.viewport.Height)
	case key.Matches(msg, m.keys.HalfPageUp):
		return m, m.scrollBy(-m.page.viewport.Height / 2)
	case key.Matches(msg, m.keys.HalfPageDown):
		return m, m.scrollBy(m.page.viewport.Height / 2)
	case key.Matches(msg, m.keys.Top):
		return m, m.scrollBy(-m.page.viewport.TotalLineCount())
	case key.Matches(msg, m.keys.Bottom):
		return m, m.scrollBy(m.page.viewport.TotalLineCount())

	case key.Matches(msg, m.keys.Open):
		m.openLightbox()
		return m, nil
	}

	if k := m.carouselKey(msg); k != carousel.KeyOther && m.slides.ctl != nil {
		_, _ = m.slides.ctl.Dispatch(carousel.KeyDown(k))
	}
	return m, nil
}

// carouselKey maps a key press to the carousel's key set.
func (m Model) carouselKey(msg tea.KeyMsg) carousel.Key {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return carousel.KeyLeft
	case key.Matches(msg, m.keys.Next):
		return carousel.KeyRight
	case key.Matches(msg, m.keys.First):
		return carousel.KeyHome
	case key.Matches(msg, m.keys.Last):
		return carousel.KeyEnd
	case key.Matches(msg, m.keys.AutoPlay):
		return carousel.KeySpace
	}
	return carousel.KeyOther
}

// toggleTheme flips between light and dark and persists the choice.
func (m *Model) toggleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyThemeToProgress()
	m.refreshPage()
	m.log.With("theme", m.theme.Name).Debug("theme changed")

	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.With("path", m.prefsPath).Error(err, "save preferences")
	}
}

// setVisible maps terminal focus to page visibility.
func (m *Model) setVisible(visible bool) {
	if m.slides.ctl == nil {
		return
	}
	_, _ = m.slides.ctl.Dispatch(carousel.VisibilityChange(!visible))
}

// shutdown tears down the carousel before the program exits.
func (m *Model) shutdown() {
	if m.slides.unsubscribe != nil {
		m.slides.unsubscribe()
	}
	if m.slides.ctl != nil {
		m.slides.ctl.Destroy()
	}
}

// renderMain renders the page: header, scrollable content, carousel.
func (m Model) renderMain() string {
	bg := NewBgStyle(m.theme.Background)
	l := m.layout()

	var b strings.Builder
	b.WriteString(m.renderHeader())

	for _, line := range m.renderPageArea(l) {
		b.WriteString("\n")
		b.WriteString(bg.FillLine(line, m.width))
	}

	if l.carouselTop >= 0 {
		for _, line := range m.renderCarousel(l) {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(opts.Context),
	)
	_, err := p.Run()
	m.shutdown()
	if err != nil && opts.Context.Err() != nil {
		// Cancelled from outside; not a failure.
		return nil
	}
	return err
}
