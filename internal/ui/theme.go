package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is one page color scheme.
type Theme struct {
	Name string
	Icon string // shown on the header badge; hints at the other theme

	// Page background and the header/carousel band.
	Background string
	Surface    string

	// Active thumbnail.
	SelectionBg   string
	SelectionText string

	// Lightbox frame and empty progress track.
	BorderMuted string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Logo     lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Background: fg(t.Text).Background(lipgloss.Color(t.Background)),
		Surface:    fg(t.Text).Background(lipgloss.Color(t.Surface)),

		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Logo: fg(t.Accent).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
	}
}

// WithBackground paints every text style onto bgColor. Selected and Badge
// keep their own fill.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Background, &out.Surface,
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText,
		&out.Logo,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themes = map[string]Theme{
	"Light": lightTheme(),
	"Dark":  darkTheme(),
}

var themeOrder = []string{"Light", "Dark"}

// GetTheme returns a theme by name, falling back to Light.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return lightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// Tailwind zinc with violet accents.
func lightTheme() Theme {
	return Theme{
		Name: "Light",
		Icon: "☾",

		Background: "#fafafa", // zinc-50
		Surface:    "#f4f4f5", // zinc-100

		SelectionBg:   "#7c3aed", // violet-600
		SelectionText: "#ffffff",

		BorderMuted: "#e4e4e7", // zinc-200
		BorderFocus: "#8b5cf6", // violet-500

		Text:    "#18181b", // zinc-900
		Muted:   "#52525b", // zinc-600
		Faint:   "#a1a1aa", // zinc-400
		Accent:  "#7c3aed", // violet-600
		Success: "#059669", // emerald-600
		Warning: "#ea580c", // orange-600
		Danger:  "#e11d48", // rose-600
	}
}

// Tailwind zinc with amber accents.
func darkTheme() Theme {
	return Theme{
		Name: "Dark",
		Icon: "☀",

		Background: "#09090b", // zinc-950
		Surface:    "#18181b", // zinc-900

		SelectionBg:   "#f59e0b", // amber-500
		SelectionText: "#09090b",

		BorderMuted: "#27272a", // zinc-800
		BorderFocus: "#fbbf24", // amber-400

		Text:    "#f4f4f5", // zinc-100
		Muted:   "#a1a1aa", // zinc-400
		Faint:   "#71717a", // zinc-500
		Accent:  "#fbbf24", // amber-400
		Success: "#34d399", // emerald-400
		Warning: "#fb923c", // orange-400
		Danger:  "#fb7185", // rose-400
	}
}
