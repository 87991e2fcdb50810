package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Showcase describes the page vitrine renders.
type Showcase struct {
	Title    string    `toml:"title" yaml:"title" validate:"required"`
	Tagline  string    `toml:"tagline" yaml:"tagline"`
	Hero     Hero      `toml:"hero" yaml:"hero"`
	Sections []Section `toml:"sections" yaml:"sections" validate:"dive"`
	Carousel Carousel  `toml:"carousel" yaml:"carousel"`

	// Path is the file the showcase came from; empty for the built-in demo.
	Path string `toml:"-" yaml:"-"`
}

// Hero configures the typewriter line at the top of the page.
type Hero struct {
	Texts         []string `toml:"texts" yaml:"texts" validate:"dive,required"`
	TypeDelayMS   int      `toml:"type_delay_ms" yaml:"type_delay_ms" validate:"gte=0"`
	DeleteDelayMS int      `toml:"delete_delay_ms" yaml:"delete_delay_ms" validate:"gte=0"`
	HoldMS        int      `toml:"hold_ms" yaml:"hold_ms" validate:"gte=0"`
	PauseMS       int      `toml:"pause_ms" yaml:"pause_ms" validate:"gte=0"`
	StartDelayMS  int      `toml:"start_delay_ms" yaml:"start_delay_ms" validate:"gte=0"`
}

// Section is one navigable block of the page.
type Section struct {
	ID    string `toml:"id" yaml:"id" validate:"required,section_id"`
	Title string `toml:"title" yaml:"title" validate:"required"`
	Body  string `toml:"body" yaml:"body"`
	Stats []Stat `toml:"stats" yaml:"stats" validate:"dive"`
}

// Stat is an animated counter shown inside a section.
type Stat struct {
	Label  string `toml:"label" yaml:"label" validate:"required"`
	Value  int    `toml:"value" yaml:"value" validate:"gte=0"`
	Suffix string `toml:"suffix" yaml:"suffix"`
}

// Carousel configures the image carousel. Pointer fields default to true
// when omitted.
type Carousel struct {
	AutoPlay         *bool   `toml:"autoplay" yaml:"autoplay"`
	IntervalMS       int     `toml:"interval_ms" yaml:"interval_ms" validate:"omitempty,gte=500"`
	SwipeThresholdPX float64 `toml:"swipe_threshold_px" yaml:"swipe_threshold_px" validate:"omitempty,gte=1"`
	CellWidthPX      float64 `toml:"cell_width_px" yaml:"cell_width_px" validate:"omitempty,gt=0"`
	Buttons          *bool   `toml:"buttons" yaml:"buttons"`
	Indicators       *bool   `toml:"indicators" yaml:"indicators"`
	Thumbnails       *bool   `toml:"thumbnails" yaml:"thumbnails"`
	Slides           []Slide `toml:"slides" yaml:"slides" validate:"dive"`
}

// Slide is one carousel image.
type Slide struct {
	Image   string `toml:"image" yaml:"image" validate:"required"`
	Alt     string `toml:"alt" yaml:"alt"`
	Caption string `toml:"caption" yaml:"caption"`
}

const (
	defaultShowcasePath = "~/.config/vitrine/showcase.toml"
	defaultCellWidthPX  = 8.0
)

//go:embed showcase.toml
var demoShowcase []byte

// DefaultPath returns the default showcase location.
func DefaultPath() string {
	return defaultShowcasePath
}

// Load reads the showcase at path. An empty path uses the default location
// and falls back to the built-in demo when that file does not exist; an
// explicit path must exist.
func Load(path string) (Showcase, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultShowcasePath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return Showcase{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Demo()
		}
		return Showcase{}, fmt.Errorf("read showcase: %w", err)
	}

	sc, err := Parse(data, formatFor(resolved))
	if err != nil {
		return Showcase{}, fmt.Errorf("%s: %w", resolved, err)
	}
	sc.Path = resolved
	return sc, nil
}

// Demo returns the built-in showcase.
func Demo() (Showcase, error) {
	sc, err := Parse(demoShowcase, FormatTOML)
	if err != nil {
		return Showcase{}, fmt.Errorf("built-in showcase: %w", err)
	}
	return sc, nil
}

// Format is a showcase file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes and validates a showcase.
func Parse(data []byte, format Format) (Showcase, error) {
	var sc Showcase
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return Showcase{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &sc); err != nil {
			return Showcase{}, fmt.Errorf("parse toml: %w", err)
		}
	}

	sc.normalize()
	if err := Validate(&sc); err != nil {
		return Showcase{}, err
	}
	return sc, nil
}

func (s *Showcase) normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Tagline = strings.TrimSpace(s.Tagline)
	for i := range s.Sections {
		s.Sections[i].ID = strings.TrimSpace(s.Sections[i].ID)
		s.Sections[i].Title = strings.TrimSpace(s.Sections[i].Title)
		s.Sections[i].Body = strings.TrimSpace(s.Sections[i].Body)
	}
	for i := range s.Carousel.Slides {
		s.Carousel.Slides[i].Image = strings.TrimSpace(s.Carousel.Slides[i].Image)
		s.Carousel.Slides[i].Caption = strings.TrimSpace(s.Carousel.Slides[i].Caption)
	}
}

// BaseDir is the directory relative image paths resolve against.
func (s Showcase) BaseDir() string {
	if s.Path == "" {
		return ""
	}
	return filepath.Dir(s.Path)
}

// AutoPlayEnabled reports whether the carousel starts playing.
func (c Carousel) AutoPlayEnabled() bool {
	return boolOr(c.AutoPlay, true)
}

// HasButtons reports whether prev/next buttons are rendered.
func (c Carousel) HasButtons() bool {
	return boolOr(c.Buttons, true)
}

// HasIndicators reports whether indicator dots are rendered.
func (c Carousel) HasIndicators() bool {
	return boolOr(c.Indicators, true)
}

// HasThumbnails reports whether the thumbnail strip is rendered.
func (c Carousel) HasThumbnails() bool {
	return boolOr(c.Thumbnails, true)
}

// Interval returns the autoplay period; zero means the carousel default.
func (c Carousel) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// SwipeThreshold returns the swipe distance in pixels; zero means the
// carousel default.
func (c Carousel) SwipeThreshold() float64 {
	return c.SwipeThresholdPX
}

// CellWidth returns the nominal pixel width of one terminal column.
func (c Carousel) CellWidth() float64 {
	if c.CellWidthPX <= 0 {
		return defaultCellWidthPX
	}
	return c.CellWidthPX
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// TypeDelay and friends return the hero timings; zero means the default.
func (h Hero) TypeDelay() time.Duration   { return millis(h.TypeDelayMS) }
func (h Hero) DeleteDelay() time.Duration { return millis(h.DeleteDelayMS) }
func (h Hero) Hold() time.Duration        { return millis(h.HoldMS) }
func (h Hero) Pause() time.Duration       { return millis(h.PauseMS) }
func (h Hero) StartDelay() time.Duration  { return millis(h.StartDelayMS) }

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
