package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/runetab/internal/charinfo"
	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/style"
)

// Widest cell, prefix included, for the raw and number columns.
const (
	rawMaxCompact    = 9
	rawMaxRigid      = 14
	numberMaxCompact = 6
	numberMaxRigid   = 8

	nameMinWidth = 16
	fitWidth     = 16

	rawPrefix       = " 0x "
	numberPrefix    = "U+"
	invalidNumber   = " -- "
	invalidPrefix   = "  "
	binaryCategory  = "Binary"
	countSuffix     = "×"
	hexOffsetPrefix = " "
	decOffsetPrefix = "⏨"
	indexPrefix     = "#"
)

func itoa(n int) string { return strconv.Itoa(n) }

func (r *Renderer) formatOffset(off int) string {
	if r.opt.DecimalOffset {
		return itoa(off)
	}
	s := strconv.FormatInt(int64(off), 16)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return s
}

func addressSuffix(row layout.Row) string {
	if row.DupCount > 0 {
		return "+"
	}
	return " "
}

func (r *Renderer) renderAddress(prefix, value string, row layout.Row) string {
	zeros, digits := splitZeros(value)
	return r.st.Render(style.IndexPrefix, prefix) +
		r.st.Render(style.IndexZeros, zeros) +
		r.st.Render(style.Index, digits+addressSuffix(row)) +
		ColumnSeparator
}

func (r *Renderer) renderOffset(row layout.Row, w int) string {
	if r.opt.Grouping() {
		return ""
	}
	if r.opt.DecimalOffset {
		return r.renderAddress(decOffsetPrefix, padLeft(itoa(row.Offset), w), row)
	}
	s := r.formatOffset(row.Offset)
	if n := w - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return r.renderAddress(hexOffsetPrefix, s, row)
}

func (r *Renderer) renderIndex(row layout.Row, w int) string {
	if r.opt.Grouping() {
		return ""
	}
	return r.renderAddress(indexPrefix, padLeft(itoa(row.Index), w), row)
}

// Short sequences keep a space between bytes; a compact four byte sequence
// drops it to stay within the column.
func (r *Renderer) formatRaw(u charinfo.Unit) string {
	raw := u.Bytes()
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	sep := ""
	if len(raw) < 4 || r.opt.IsRigid() {
		sep = " "
	}
	return padLeft(strings.Join(parts, sep), 2)
}

func (r *Renderer) renderRaw(u charinfo.Unit, w int) string {
	if r.opt.GroupCats() {
		return ""
	}
	value := strings.TrimSpace(r.formatRaw(u))
	limit := rawMaxCompact
	if r.opt.IsRigid() {
		limit = rawMaxRigid
	}
	maxCol := min(limit, w+len(rawPrefix))
	prefix := fitRight(rawPrefix, maxCol-len(value))
	return r.st.Render(style.RawPrefix, prefix) + r.st.Render(style.Raw, value) + ColumnSeparator
}

func formatNumber(u charinfo.Unit) string {
	if u.IsInvalid() {
		return ""
	}
	return padLeft(fmt.Sprintf("%X", u.Value()), 2)
}

func (r *Renderer) renderNumber(u charinfo.Unit, w int) string {
	if r.opt.GroupCats() {
		return ""
	}
	prefix, value := numberPrefix, strings.TrimSpace(formatNumber(u))
	if u.IsInvalid() {
		prefix, value = invalidPrefix, invalidNumber
	}
	limit := numberMaxCompact
	if r.opt.IsRigid() {
		limit = numberMaxRigid
	}
	maxCol := min(limit, w+len(prefix))
	prefix = r.st.Render(style.CodePrefix, fitRight(prefix, maxCol-len(value)))
	if u.IsInvalid() {
		return prefix + r.st.Render(style.Invalid, value) + ColumnSeparator
	}
	return prefix + value + ColumnSeparator
}

func (r *Renderer) formatCount(row layout.Row) string {
	if row.DupCount > 0 || r.opt.Grouping() {
		return itoa(row.Count())
	}
	return " "
}

func (r *Renderer) renderCount(row layout.Row, w int, groups *layout.Groups) string {
	if !r.opt.Merging() {
		return ""
	}
	value := r.formatCount(row)
	formatted := padLeft(value, w)
	if strings.TrimSpace(value) == "" && !r.opt.Grouping() {
		return spaces(textWidth(formatted)+1) + ColumnSeparator
	}
	lead, digits := formatted[:len(formatted)-len(value)], value
	s := lead + r.st.Render(style.Highlight, digits) + countSuffix + ColumnSeparator
	if r.opt.Grouping() && groups != nil && groups.Sum() > 0 {
		s = r.renderScale(row, groups) + s
	}
	return s
}

func (r *Renderer) renderScale(row layout.Row, groups *layout.Groups) string {
	length := scaleWidthUnits
	if r.opt.GroupCats() {
		length = scaleWidthCats
	}
	count := float64(row.Count())
	bar, fill := scaleBar(count/float64(groups.Max()), length)
	label := " " + formatRatio(count/float64(groups.Sum())) + " "
	return label + r.st.Scale(row.Unit.Category()).Render(bar) + fill + ColumnSeparator
}

func (r *Renderer) name(u charinfo.Unit) string {
	if r.opt.AltCC && u.IsASCIIControl() {
		if cc, err := charinfo.ResolveControlCode(u.Value()); err == nil {
			page := "C0"
			if u.IsASCIIC1() {
				page = "C1"
			}
			return fmt.Sprintf("ASCII %s [%s] %s", page, cc.Alt, cc.Name)
		}
	}
	return u.Name()
}

func (r *Renderer) renderName(u charinfo.Unit, w int) string {
	if r.opt.GroupCats() {
		return ""
	}
	formatted := padRight(r.name(u), max(w, nameMinWidth))
	if u.IsInvalid() {
		return r.st.Render(style.Invalid, formatted) + ColumnSeparator
	}
	return formatted + ColumnSeparator
}

func (r *Renderer) category(u charinfo.Unit) string {
	return r.opt.EffectiveCategory(u.Category())
}

func (r *Renderer) categoryName(u charinfo.Unit) string {
	c, err := charinfo.ResolveCategory(r.category(u))
	if err != nil {
		return binaryCategory
	}
	return c.Name
}

func (r *Renderer) renderCat(u charinfo.Unit, w int) string {
	cat := r.category(u)
	if !r.opt.ShowNames() {
		return r.st.RenderCategory(cat, cat) + ColumnSeparator
	}
	formatted := padRight(r.categoryName(u), max(w, 2))
	if !r.opt.IsRigid() {
		formatted = fitRight(strings.TrimSpace(formatted), fitWidth)
	}
	return r.st.RenderCategory(cat, formatted) + ColumnSeparator
}

func blockName(u charinfo.Unit) string {
	if b, ok := u.Block(); ok {
		return b.Name
	}
	return charinfo.NoValue
}

func (r *Renderer) renderBlock(u charinfo.Unit, w int) string {
	if r.opt.GroupCats() {
		return ""
	}
	b, ok := u.Block()
	elem := style.Invalid
	if ok {
		elem = style.Plain
	}
	if !r.opt.ShowNames() {
		abbr := charinfo.NoValue
		if ok {
			abbr = b.Abbr
		}
		return r.st.Render(elem, padRight(abbr, charinfo.MaxBlockAbbrLen())) + ColumnSeparator
	}
	formatted := padLeft(blockName(u), max(w, 2))
	if !r.opt.IsRigid() {
		formatted = fitLeft(strings.TrimSpace(formatted), fitWidth)
	}
	return r.st.Render(elem, formatted) + ColumnSeparator
}
