package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Element names a fixed piece of the table that is not styled by category.
type Element int

const (
	Index Element = iota
	IndexZeros
	IndexPrefix
	CodePrefix
	Raw
	RawPrefix
	Glyph
	Invalid
	Plain
	Highlight
	ControlOverride
	SeparatorOverride
)

// Styler renders text fragments for one output stream.
type Styler struct {
	r        *lipgloss.Renderer
	theme    Theme
	elements map[Element]lipgloss.Style
	families map[Family]lipgloss.Style
}

// New builds a Styler writing to w. ColorAlways forces 256 colours and
// ColorNever plain text; ColorAuto lets termenv inspect w and the
// environment (NO_COLOR, CLICOLOR_FORCE).
func New(w io.Writer, mode ColorMode, theme Theme) *Styler {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	s := &Styler{r: r, theme: theme}
	s.build()
	return s
}

// NewPlain returns a Styler that never emits escape sequences.
func NewPlain() *Styler {
	return New(io.Discard, ColorNever, defaultTheme())
}

func (s *Styler) build() {
	t := s.theme
	fg := func(c string) lipgloss.Style {
		return s.r.NewStyle().Foreground(lipgloss.Color(c))
	}
	fgbg := func(c, bg string) lipgloss.Style {
		return fg(c).Background(lipgloss.Color(bg))
	}

	s.elements = map[Element]lipgloss.Style{
		Index:             fgbg(t.Index, t.IndexBg),
		IndexZeros:        fgbg(t.IndexZeros, t.IndexBg),
		IndexPrefix:       fgbg(t.IndexPrefix, t.IndexBg),
		CodePrefix:        fg(t.IndexPrefix),
		Raw:               fgbg(t.Index, t.IndexBg),
		RawPrefix:         fgbg(t.IndexPrefix, t.IndexBg),
		Glyph:             fgbg(t.Glyph, t.GlyphBg),
		Invalid:           fg(t.Faint),
		Plain:             fg(t.Plain),
		Highlight:         fg(t.Highlight).Bold(true),
		ControlOverride:   fg(t.ControlAlt),
		SeparatorOverride: fg(t.SeparatorAlt),
	}
	s.families = map[Family]lipgloss.Style{
		FamilyLetter:      s.r.NewStyle(),
		FamilyControl:     fg(t.Control),
		FamilySurrogate:   fgbg(t.Surrogate, t.SurrogateBg),
		FamilyPrivateUse:  fgbg(t.PrivateUse, t.PrivateUseBg),
		FamilyUnassigned:  fg(t.Unassigned),
		FamilySeparator:   fg(t.Separator),
		FamilyNumber:      fg(t.Number),
		FamilyPunctuation: fg(t.Punctuation),
		FamilySymbol:      fg(t.Symbol),
		FamilyMark:        fg(t.Mark),
		FamilyInvalid:     fg(t.Invalid),
	}
}

// Theme returns the theme the styler was built with.
func (s *Styler) Theme() Theme { return s.theme }

// Colored reports whether rendered output carries escape sequences.
func (s *Styler) Colored() bool {
	return s.r.ColorProfile() != termenv.Ascii
}

// Element returns the style of a fixed table element.
func (s *Styler) Element(e Element) lipgloss.Style {
	if st, ok := s.elements[e]; ok {
		return st
	}
	return s.r.NewStyle()
}

// Category returns the style for a general category code.
func (s *Styler) Category(cat string) lipgloss.Style {
	return s.families[FamilyOf(cat)]
}

// Scale returns the bar style for a category. Families drawn on a coloured
// background use that background as the bar colour.
func (s *Styler) Scale(cat string) lipgloss.Style {
	st := s.Category(cat)
	if bg := st.GetBackground(); !isNoColor(bg) {
		return s.r.NewStyle().Foreground(bg)
	}
	return st
}

// GlyphStyle layers a category or override style over the glyph cell base.
func (s *Styler) GlyphStyle(st lipgloss.Style) lipgloss.Style {
	return st.Inherit(s.elements[Glyph])
}

// Render applies a fixed element style.
func (s *Styler) Render(e Element, text string) string {
	if text == "" {
		return ""
	}
	return s.Element(e).Render(text)
}

// RenderCategory applies the family style of cat.
func (s *Styler) RenderCategory(cat, text string) string {
	if text == "" {
		return ""
	}
	return s.Category(cat).Render(text)
}

func isNoColor(c lipgloss.TerminalColor) bool {
	_, ok := c.(lipgloss.NoColor)
	return c == nil || ok
}
