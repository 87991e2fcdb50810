// Package config loads the showcase file that describes the page vitrine
// renders.
//
// # Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it; a missing file is an error
//  2. Otherwise, use ~/.config/vitrine/showcase.toml
//  3. If the default file doesn't exist, use the built-in demo showcase
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
//
// # Validation
//
// Showcases are checked with struct tags after decoding. Section ids must be
// lowercase slugs and unique, every slide needs an image, and the autoplay
// interval may not be shorter than 500ms. Failures are reported as
// *ValidationError and match ErrInvalidConfig with errors.Is.
//
// # Defaults
//
// Carousel switches (autoplay, buttons, indicators, thumbnails) default to
// on when omitted. Zero timings mean "use the component default"; see the
// carousel and effects packages for the values.
package config
