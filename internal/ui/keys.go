package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	ToggleMenu  key.Binding
	Escape      key.Binding
	Section     key.Binding

	// Page scrolling
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	Top          key.Binding
	Bottom       key.Binding

	// Carousel
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	AutoPlay key.Binding
	Open     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle light/dark"),
		),
		ToggleMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle menu"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close menu/lightbox"),
		),
		Section: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to section"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "Go to bottom"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last slide"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle autoplay"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open in lightbox"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Section, k.ToggleMenu, k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Prev, k.Next, k.First, k.Last, k.AutoPlay, k.Open},
		{k.ToggleTheme, k.Escape, k.Help, k.Quit},
	}
}
