package render

import (
	"slices"

	"github.com/five82/runetab/internal/charinfo"
	"github.com/five82/runetab/internal/style"
)

const (
	// Placeholder stands in for code points that have no visible glyph.
	Placeholder = "▯"

	cellOpen  = "▕"
	cellClose = "▏"
	// Resets the bidi direction after a right-to-left glyph.
	ltrMark = "\u200e"
)

type override struct {
	glyph string
	elem  style.Element
}

// Visible stand-ins for whitespace and the common C0 controls.
var overrides = map[rune]override{
	0x00: {"Ø", style.ControlOverride},
	0x08: {"←", style.ControlOverride},
	0x09: {"⇥", style.ControlOverride},
	0x0A: {"↵", style.ControlOverride},
	0x0B: {"⤓", style.ControlOverride},
	0x0C: {"↡", style.ControlOverride},
	0x0D: {"⇤", style.ControlOverride},
	0x1B: {"ə", style.ControlOverride},
	0x1C: {"⁜", style.ControlOverride},
	0x1D: {"⋮", style.ControlOverride},
	0x1E: {"∻", style.ControlOverride},
	0x1F: {"·", style.ControlOverride},
	0x7F: {"→", style.ControlOverride},
	0x20: {"␣", style.SeparatorOverride},
	0xA0: {"⇋", style.SeparatorOverride},
}

// Override returns the stand-in glyph for u, if it has one.
func Override(u charinfo.Unit) (string, bool) {
	if u.IsInvalid() || u.IsZero() {
		return "", false
	}
	o, ok := overrides[u.Value()]
	return o.glyph, ok
}

// OverriddenRunes lists the code points with stand-in glyphs, in ascending order.
func OverriddenRunes() []rune {
	out := make([]rune, 0, len(overrides))
	for r := range overrides {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (r *Renderer) renderChar(u charinfo.Unit) string {
	if r.opt.GroupCats() {
		return ""
	}
	if r.opt.CharOnly() {
		return r.renderBareChar(u)
	}

	catStyle := r.st.Category(u.Category())
	glyphStyle := catStyle
	value, pad, w := "", "", 1

	o, hasOverride := overrides[u.Value()]
	hasOverride = hasOverride && !u.IsInvalid() && !r.opt.NoOverride
	switch {
	case hasOverride:
		value = o.glyph
		glyphStyle = r.st.Element(o.elem)
	case u.NeedsPlaceholder():
		value = Placeholder
	default:
		value = u.Text()
		w = cells.StringWidth(value)
		if u.IsCombining() {
			pad = " "
			w++
		}
	}
	if u.IsASCIILetter() {
		glyphStyle = r.st.Element(style.Plain)
	}

	prefix := cellOpen + r.st.Render(style.Glyph, spaces(2-max(-1, w)))
	suffix := r.st.Render(style.Glyph, " ") + cellClose + ltrMark
	return prefix + r.st.GlyphStyle(glyphStyle).Render(pad+value) + suffix + ColumnSeparator
}

// Char-only output keeps the text flowing: ASCII controls pass through so
// line structure survives, everything else is coloured by category.
func (r *Renderer) renderBareChar(u charinfo.Unit) string {
	if u.IsASCIIC0() {
		return u.Text()
	}
	value := u.Text()
	if u.IsSurrogate() || u.IsInvalid() {
		value = Placeholder
	}
	if u.IsCombining() {
		value = " " + value
	}
	st := r.st.Category(u.Category())
	if u.IsASCIILetter() {
		st = r.st.Element(style.Plain)
	}
	return st.Render(value)
}
