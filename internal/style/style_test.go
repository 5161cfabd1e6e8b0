package style

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		cat  string
		want Family
	}{
		{"Cc", FamilyControl},
		{"Cf", FamilyControl},
		{"Cs", FamilySurrogate},
		{"Co", FamilyPrivateUse},
		{"Cn", FamilyUnassigned},
		{"Cx", FamilyControl},
		{"C", FamilyControl},
		{"Zs", FamilySeparator},
		{"Z", FamilySeparator},
		{"Nd", FamilyNumber},
		{"Po", FamilyPunctuation},
		{"Sm", FamilySymbol},
		{"Mn", FamilyMark},
		{"--", FamilyInvalid},
		{"Lu", FamilyLetter},
		{"L", FamilyLetter},
		{"", FamilyLetter},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.cat); got != tt.want {
			t.Fatalf("FamilyOf(%q) = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"":        ColorAuto,
		"auto":    ColorAuto,
		" Always": ColorAlways,
		"never":   ColorNever,
		"off":     ColorNever,
	}
	for in, want := range tests {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); !errors.Is(err, ErrUnknownColorMode) {
		t.Fatalf("ParseColorMode error = %v, want ErrUnknownColorMode", err)
	}
}

func TestGetThemeFallsBackToDefault(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "kanagawa" {
		t.Fatalf("GetTheme(Kanagawa) = %q, want kanagawa", got)
	}
	if got := GetTheme("missing").Name; got != "default" {
		t.Fatalf("GetTheme(missing) = %q, want default", got)
	}
	if HasTheme("missing") {
		t.Fatalf("HasTheme(missing) = true")
	}
	for _, name := range ThemeNames() {
		if !HasTheme(name) {
			t.Fatalf("listed theme %q is not registered", name)
		}
	}
}

func TestStylerNeverIsPlain(t *testing.T) {
	s := New(&bytes.Buffer{}, ColorNever, GetTheme("nightfox"))
	if s.Colored() {
		t.Fatalf("ColorNever styler reports colour")
	}
	if got := s.RenderCategory("Cc", "x"); got != "x" {
		t.Fatalf("RenderCategory = %q, want plain x", got)
	}
	if got := s.Render(Highlight, "12"); got != "12" {
		t.Fatalf("Render = %q, want plain 12", got)
	}
	if got := s.Render(Index, ""); got != "" {
		t.Fatalf("Render of empty text = %q", got)
	}
}

func TestStylerAlwaysEmitsEscapes(t *testing.T) {
	s := New(&bytes.Buffer{}, ColorAlways, GetTheme("default"))
	if !s.Colored() {
		t.Fatalf("ColorAlways styler reports no colour")
	}
	got := s.RenderCategory("Nd", "7")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("RenderCategory = %q, want escape sequences", got)
	}
	if plain := ansi.Strip(got); plain != "7" {
		t.Fatalf("stripped = %q, want 7", plain)
	}
}

func TestScaleUsesBackgroundColour(t *testing.T) {
	s := New(&bytes.Buffer{}, ColorAlways, GetTheme("default"))
	cat := s.Category("Co")
	scale := s.Scale("Co")
	if scale.GetForeground() != cat.GetBackground() {
		t.Fatalf("scale foreground = %v, want category background %v", scale.GetForeground(), cat.GetBackground())
	}
	if s.Scale("Nd").GetForeground() != s.Category("Nd").GetForeground() {
		t.Fatalf("scale of a foreground-only family should keep its colour")
	}
}
