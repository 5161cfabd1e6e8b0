package app

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/five82/runetab/internal/config"
	"github.com/five82/runetab/internal/decode"
	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/pipeline"
	"github.com/five82/runetab/internal/render"
	"github.com/five82/runetab/internal/style"
)

const legendIndent = "  "

// categorySamples holds one input sequence per general category, in the
// order the legend lists them. The surrogate is encoded the way lenient
// encoders emit it and the last entry is a byte that is never valid UTF-8.
var categorySamples = []string{
	// Lu Ll Lt Lm Lo
	"A", "a", "\u01c5", "\u02b0", "\u0627",
	// Mn Mc Me
	"\u0301", "\u0903", "\u20dd",
	// Nd Nl No
	"1", "\u216b", "\u00bd",
	// Pc Pd Ps Pe Pi Pf Po
	"_", "-", "(", ")", "\u00ab", "\u00bb", "!",
	// Sm Sc Sk So
	"+", "$", "^", "\u00a9",
	// Zs Zl Zp
	"\u2003", "\u2028", "\u2029",
	// Cc Cf Cs Co Cn
	"\u0085", "\u200b", "\xed\xa0\x80", "\ue000", "\u0378",
	"\xff",
}

func legendOptions() layout.Options {
	return layout.Options{
		Columns: []layout.Attribute{layout.Cat, layout.Char, layout.Number, layout.Name},
		Rigid:   true,
		Names:   true,
	}
}

// Legend prints the glyph overrides and one example per category using the
// color and theme settings of opts.
func Legend(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	out := opts.stdout()
	st, err := buildStyler(opts, cfg, out)
	if err != nil {
		return err
	}
	return WriteLegend(out, st)
}

// WriteLegend prints the legend to w. A nil styler prints plain text.
func WriteLegend(w io.Writer, st *style.Styler) error {
	if st == nil {
		st = style.NewPlain()
	}
	var overrides strings.Builder
	for _, r := range render.OverriddenRunes() {
		overrides.WriteRune(r)
	}

	bw := bufio.NewWriter(w)
	sections := []struct {
		title string
		input string
	}{
		{"SPECIAL OVERRIDES", overrides.String()},
		{"CODE POINT CATEGORY EXAMPLES", strings.Join(categorySamples, "")},
	}
	for i, s := range sections {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(st.Render(style.Highlight, s.title))
		bw.WriteString("\n\n")
		if err := writeLegendTable(bw, st, s.input); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write legend: %w", err)
	}
	return nil
}

func writeLegendTable(w io.Writer, st *style.Styler, input string) error {
	opt := legendOptions()
	var table bytes.Buffer
	pw := pipeline.NewWriter(opt, true, &table, render.New(opt, st))
	dec := decode.New(strings.NewReader(input), decode.BufferChunkSize)
	if _, err := pw.Write(dec.Units()); err != nil {
		return err
	}
	for _, line := range strings.SplitAfter(table.String(), "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(w, legendIndent+line); err != nil {
			return fmt.Errorf("write legend: %w", err)
		}
	}
	return nil
}

// Formats lists the column names accepted by the format option.
func Formats(w io.Writer) error {
	width := 0
	for _, a := range layout.Attributes() {
		width = max(width, utf8.RuneCountInString(a.String()))
	}
	bw := bufio.NewWriter(w)
	for _, a := range layout.Attributes() {
		fmt.Fprintf(bw, "%s%-*s  %s\n", legendIndent, width, a.String(), a.Description())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write formats: %w", err)
	}
	return nil
}
