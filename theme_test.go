package slides

import (
	"slices"
	"testing"
)

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"dracula",
		"nord",
		"solarized-dark",
		"github-light",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	available := AvailableThemes()
	if !slices.IsSorted(available) {
		t.Fatalf("themes not sorted: %v", available)
	}
	for _, name := range expected {
		if !slices.Contains(available, name) {
			t.Fatalf("expected theme %q in available list", name)
		}
	}
	if th, ok := ThemeByName("  Nord "); !ok || th.Name() != "nord" {
		t.Fatalf("theme lookup should ignore case and spaces")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("unexpected theme for unknown name")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	s := BoringTheme().Styles()
	for _, prefix := range []string{s.Text.Prefix, s.Kind.Prefix, s.Rule.Prefix, s.ListMarker.Prefix, s.Image.Prefix, s.Path.Prefix, s.Directive.Prefix} {
		if prefix != "" {
			t.Fatalf("expected empty prefix, got %q", prefix)
		}
	}
}
