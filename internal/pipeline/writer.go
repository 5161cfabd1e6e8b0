package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/runetab/internal/charinfo"
	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/render"
	"github.com/five82/runetab/internal/stats"
)

// RunStats counts what a Write consumed and produced.
type RunStats struct {
	Bytes int
	Units int
	Rows  int
}

// Writer turns a unit stream into table rows. A Writer serves one run.
type Writer struct {
	opt      layout.Options
	buffered bool
	out      io.Writer
	r        *render.Renderer

	table  *layout.Table
	groups *layout.Groups
	rows   []layout.Row
	store  *stats.Store

	stats RunStats
	err   error
}

// NewWriter prepares a run. Grouping always buffers since the ranking is only
// known at the end. A nil renderer renders plain text.
func NewWriter(opt layout.Options, buffered bool, out io.Writer, r *render.Renderer) *Writer {
	if opt.Grouping() {
		buffered = true
	}
	if r == nil {
		r = render.New(opt, nil)
	}
	w := &Writer{
		opt:      opt,
		buffered: buffered,
		out:      out,
		r:        r,
		table:    layout.NewTable(opt.EffectiveColumns()),
		groups:   layout.NewGroups(),
	}
	w.table.OnWiden = r.Invalidate
	if !buffered {
		w.table.SetDefaults()
	}
	return w
}

// WithStats publishes progress to store after every finalized row.
func (w *Writer) WithStats(store *stats.Store) *Writer {
	w.store = store
	return w
}

// Buffered reports whether rows are held until the input ends.
func (w *Writer) Buffered() bool { return w.buffered }

// Table returns the run's columns.
func (w *Writer) Table() *layout.Table { return w.table }

// Rows returns the finalized rows of a buffered run.
func (w *Writer) Rows() []layout.Row { return w.rows }

// Groups returns the aggregation of a grouping run.
func (w *Writer) Groups() *layout.Groups { return w.groups }

// Write consumes units until the sequence ends and prints the table. It
// returns the first error from the output writer.
func (w *Writer) Write(units iter.Seq[charinfo.Unit]) (RunStats, error) {
	out := w.out
	var bw *bufio.Writer
	if w.buffered {
		bw = bufio.NewWriter(w.out)
		w.out = bw
		defer func() { w.out = out }()
	}

	var prev charinfo.Unit
	dup := 0
	for u := range units {
		if u.IsZero() {
			continue
		}
		if w.opt.Oneline && !u.IsInvalid() && u.Value() == '\n' {
			continue
		}
		w.stats.Units++
		w.stats.Bytes += u.Size()

		switch {
		case w.opt.Grouping():
			w.groups.Add(w.groupKey(u), u)
		case !w.opt.Merging():
			w.makeRow(u, 0)
		case prev.IsZero():
		case prev == u:
			dup++
		default:
			w.makeRow(prev, dup)
			dup = 0
		}
		prev = u
		if w.err != nil {
			return w.stats, w.err
		}
	}
	if w.opt.Merging() && !w.opt.Grouping() && !prev.IsZero() {
		w.makeRow(prev, dup)
	}

	if w.buffered {
		if w.opt.Grouping() {
			for _, g := range w.groups.Sorted() {
				w.makeRow(g.Sample, g.Count-1)
			}
		}
		for _, row := range w.rows {
			w.print(row)
		}
		if w.err == nil {
			if err := bw.Flush(); err != nil {
				w.err = fmt.Errorf("write output: %w", err)
			}
		}
	}
	w.publish(true)
	return w.stats, w.err
}

func (w *Writer) groupKey(u charinfo.Unit) layout.GroupKey {
	if w.opt.GroupCats() {
		return layout.GroupKey{Category: w.opt.EffectiveCategory(u.Category())}
	}
	return layout.GroupKey{Unit: u}
}

// makeRow finalizes a row: it takes the current position, updates the
// columns and either prints or holds it.
func (w *Writer) makeRow(u charinfo.Unit, dup int) {
	row := w.table.Advance(layout.Row{Unit: u, DupCount: dup})
	w.stats.Rows++
	w.measure(row)
	if w.buffered {
		w.rows = append(w.rows, row)
	} else {
		w.print(row)
		w.publish(false)
	}
}

func (w *Writer) measure(row layout.Row) {
	for _, col := range w.table.Columns() {
		switch col.Attr {
		case layout.Offset:
			col.UpdateVal(row.Offset)
		case layout.Index:
			col.UpdateVal(row.Index)
		case layout.Count:
			col.UpdateVal(row.Count())
		}
		s := w.r.Format(col.Attr, row)
		if s == "" {
			continue
		}
		w.table.Widen(col.Attr, ansi.StringWidth(s))
	}
}

func (w *Writer) print(row layout.Row) {
	if w.err != nil || row.Unit.IsZero() {
		return
	}
	line := w.r.RenderRow(row, w.table, w.groups)
	if !w.opt.CharOnly() {
		line += "\n"
	}
	if _, err := io.WriteString(w.out, line); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
	}
}

// Widths are copied on the first row, every 64th row and at the end.
func (w *Writer) publish(final bool) {
	if w.store == nil {
		return
	}
	var widths map[string]int
	if final || w.stats.Rows%64 == 1 {
		widths = make(map[string]int, len(w.table.Columns()))
		for _, col := range w.table.Columns() {
			widths[col.Attr.String()] = col.MaxWidth
		}
	}
	w.store.Update(w.stats.Bytes, w.stats.Units, w.stats.Rows, widths)
}
