package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Light" || names[1] != "Dark" {
		t.Fatalf("ThemeNames() = %v, want [Light Dark]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Light"); got != "Dark" {
		t.Fatalf("NextTheme(Light) = %q, want Dark", got)
	}
	if got := NextTheme("Dark"); got != "Light" {
		t.Fatalf("NextTheme(Dark) = %q, want Light", got)
	}
	if got := NextTheme("Unknown"); got != "Light" {
		t.Fatalf("NextTheme(Unknown) = %q, want Light", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Dark"); got.Name != "Dark" || got.Icon != "☀" {
		t.Fatalf("GetTheme(Dark) = %q/%q, want Dark/☀", got.Name, got.Icon)
	}
	if got := GetTheme("Unknown"); got.Name != "Light" || got.Icon != "☾" {
		t.Fatalf("GetTheme(Unknown) = %q/%q, want Light/☾ (fallback)", got.Name, got.Icon)
	}
}
