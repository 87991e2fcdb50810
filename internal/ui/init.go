package ui

import tea "github.com/charmbracelet/bubbletea"

// initializer sets up one page feature. The returned command, if any, is
// run when the program starts.
type initializer struct {
	name string
	run  func(m *Model, opts Options) tea.Cmd
}

// initializers run once, in this order, from New.
var initializers = []initializer{
	{name: "theme", run: initTheme},
	{name: "menu", run: initMenu},
	{name: "banner", run: initBanner},
	{name: "typewriter", run: initTypewriter},
	{name: "reveal", run: initReveal},
	{name: "counters", run: initCounters},
	{name: "carousel", run: initCarousel},
	{name: "lightbox", run: initLightbox},
}

func initTheme(m *Model, opts Options) tea.Cmd {
	m.theme = GetTheme(opts.ThemeName)
	return nil
}
