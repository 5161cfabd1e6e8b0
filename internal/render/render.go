package render

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/five82/runetab/internal/charinfo"
	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/style"
)

// ColumnSeparator follows every rendered fragment.
const ColumnSeparator = " "

const fragmentCacheSize = 256

type fragmentKey struct {
	unit  charinfo.Unit
	width int
	dup   int
	sum   int
	peak  int
}

// Renderer turns rows into styled text. It is not safe for concurrent use.
type Renderer struct {
	opt    layout.Options
	st     *style.Styler
	caches map[layout.Attribute]*lru.Cache[fragmentKey, string]

	hits, misses uint64
}

// New returns a Renderer for one run.
func New(opt layout.Options, st *style.Styler) *Renderer {
	if st == nil {
		st = style.NewPlain()
	}
	r := &Renderer{
		opt:    opt,
		st:     st,
		caches: make(map[layout.Attribute]*lru.Cache[fragmentKey, string]),
	}
	for _, a := range layout.Attributes() {
		if a == layout.Offset || a == layout.Index {
			continue // unique per row
		}
		c, err := lru.New[fragmentKey, string](fragmentCacheSize)
		if err != nil {
			panic(err)
		}
		r.caches[a] = c
	}
	return r
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() layout.Options { return r.opt }

// Invalidate drops cached fragments of a. Call it whenever the column widens.
func (r *Renderer) Invalidate(a layout.Attribute) {
	if c, ok := r.caches[a]; ok {
		c.Purge()
	}
}

// CacheStats returns fragment cache hits and misses since New.
func (r *Renderer) CacheStats() (hits, misses uint64) {
	return r.hits, r.misses
}

// Format returns the plain text a row contributes to the width of col, or ""
// when the attribute has no measurable value for the row.
func (r *Renderer) Format(a layout.Attribute, row layout.Row) string {
	u := row.Unit
	if u.IsZero() {
		return ""
	}
	switch a {
	case layout.Offset:
		return r.formatOffset(row.Offset)
	case layout.Index:
		return itoa(row.Index)
	case layout.Raw:
		return r.formatRaw(u)
	case layout.Number:
		return formatNumber(u)
	case layout.Count:
		return r.formatCount(row)
	case layout.Name:
		return padRight(r.name(u), nameMinWidth)
	case layout.Cat:
		if !r.opt.ShowNames() {
			return ""
		}
		return padRight(r.categoryName(u), 2)
	case layout.Block:
		if !r.opt.ShowNames() {
			return ""
		}
		return padLeft(blockName(u), 2)
	}
	return ""
}

// Render returns the styled fragment of a, including its trailing separator.
// Columns suppressed by the current mode render as "".
func (r *Renderer) Render(a layout.Attribute, row layout.Row, col *layout.Column, groups *layout.Groups) string {
	if row.Unit.IsZero() {
		return ""
	}
	w := 0
	if col != nil {
		w = col.MaxWidth
	}
	switch a {
	case layout.Offset:
		return r.renderOffset(row, w)
	case layout.Index:
		return r.renderIndex(row, w)
	}

	key := fragmentKey{unit: row.Unit, width: w, dup: row.DupCount}
	if a == layout.Count && groups != nil {
		key.sum, key.peak = groups.Sum(), groups.Max()
	}
	cache := r.caches[a]
	if cache != nil {
		if s, ok := cache.Get(key); ok {
			r.hits++
			return s
		}
	}
	r.misses++

	var s string
	switch a {
	case layout.Raw:
		s = r.renderRaw(row.Unit, w)
	case layout.Number:
		s = r.renderNumber(row.Unit, w)
	case layout.Char:
		s = r.renderChar(row.Unit)
	case layout.Count:
		s = r.renderCount(row, w, groups)
	case layout.Cat:
		s = r.renderCat(row.Unit, w)
	case layout.Name:
		s = r.renderName(row.Unit, w)
	case layout.Block:
		s = r.renderBlock(row.Unit, w)
	}
	if cache != nil {
		cache.Add(key, s)
	}
	return s
}

// RenderRow composes a full line, without the line break, in column order.
func (r *Renderer) RenderRow(row layout.Row, t *layout.Table, groups *layout.Groups) string {
	var b strings.Builder
	for _, col := range t.Columns() {
		b.WriteString(r.Render(col.Attr, row, col, groups))
	}
	return b.String()
}
