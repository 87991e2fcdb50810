package ui

import (
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxBannerWidth is the widest figlet banner used before falling back to
// the plain title.
const maxBannerWidth = 80

// createBanner renders title with figlet when it is installed. It returns
// nil when figlet is missing or the banner would be too wide.
func createBanner(title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	output, err := exec.Command("figlet", "-f", "slant", title).Output()
	if err != nil || len(output) == 0 {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len([]rune(line)) > maxBannerWidth {
			return nil
		}
		lines = append(lines, line)
	}
	return lines
}

func initBanner(m *Model, _ Options) tea.Cmd {
	m.page.banner = createBanner(m.showcase.Title)
	return nil
}

func bannerWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	return w
}
