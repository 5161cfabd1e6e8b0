package layout

import "github.com/five82/runetab/internal/charinfo"

// Row is one reportable line. The zero Unit marks the end of the stream.
type Row struct {
	Unit     charinfo.Unit
	Offset   int
	Index    int
	DupCount int // repeats folded into this row, 0 for a singleton
}

// Count returns how many input units the row stands for.
func (r Row) Count() int { return 1 + r.DupCount }

// HasNumber reports whether the row carries a valid code point.
func (r Row) HasNumber() bool { return !r.Unit.IsZero() && !r.Unit.IsInvalid() }

// Column tracks the running maximum value and rendered width of one attribute.
// Both only ever grow during a run.
type Column struct {
	Attr     Attribute
	MaxVal   int
	MaxWidth int
}

// UpdateVal records val and returns the current maximum.
func (c *Column) UpdateVal(val int) int {
	c.MaxVal = max(c.MaxVal, val)
	return c.MaxVal
}

// UpdateWidth records width and reports whether the column grew.
func (c *Column) UpdateWidth(width int) bool {
	if width <= c.MaxWidth {
		return false
	}
	c.MaxWidth = width
	return true
}

// Streaming runs cannot look ahead, so columns start at these widths.
var defaultWidths = map[Attribute]int{
	Offset: 4,
	Index:  4,
	Count:  4,
	Raw:    8,
	Number: 6,
	Name:   16,
	Cat:    2,
	Block:  4,
}

// DefaultWidth returns the streaming-mode starting width of a.
func DefaultWidth(a Attribute) int {
	return defaultWidths[a]
}

// Table holds the columns of one run together with the running position.
type Table struct {
	columns []*Column
	byAttr  map[Attribute]*Column

	// Offset and Index advance when a row is finalized.
	Offset int
	Index  int

	// OnWiden is called after a column grows.
	OnWiden func(Attribute)
}

// NewTable creates one column per attribute, preserving order.
func NewTable(attrs []Attribute) *Table {
	t := &Table{byAttr: make(map[Attribute]*Column, len(attrs))}
	for _, a := range attrs {
		if _, dup := t.byAttr[a]; dup {
			continue
		}
		col := &Column{Attr: a}
		t.columns = append(t.columns, col)
		t.byAttr[a] = col
	}
	return t
}

// Columns returns the columns in output order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns the column for a, or nil if it is not shown.
func (t *Table) Column(a Attribute) *Column {
	return t.byAttr[a]
}

// Widen records width for a and fires OnWiden if the column grew.
func (t *Table) Widen(a Attribute, width int) {
	col := t.byAttr[a]
	if col == nil {
		return
	}
	if col.UpdateWidth(width) && t.OnWiden != nil {
		t.OnWiden(a)
	}
}

// SetDefaults seeds every column with its streaming width.
func (t *Table) SetDefaults() {
	for _, col := range t.columns {
		t.Widen(col.Attr, DefaultWidth(col.Attr))
	}
}

// Advance moves the running position past row and returns it stamped with
// the position it started at.
func (t *Table) Advance(row Row) Row {
	row.Offset = t.Offset
	row.Index = t.Index
	t.Offset += row.Count() * row.Unit.Size()
	t.Index += row.Count()
	return row
}
