package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/render"
)

func TestWriteLegend(t *testing.T) {
	var out bytes.Buffer
	if err := WriteLegend(&out, nil); err != nil {
		t.Fatalf("WriteLegend returned error: %v", err)
	}
	text := out.String()

	overrides := strings.Index(text, "SPECIAL OVERRIDES")
	examples := strings.Index(text, "CODE POINT CATEGORY EXAMPLES")
	if overrides != 0 || examples <= overrides {
		t.Fatalf("unexpected section order:\n%s", text)
	}

	for _, want := range []string{"↵", "␣", "⇋", "U+A0", "U+20"} {
		if !strings.Contains(text[:examples], want) {
			t.Errorf("overrides section missing %q", want)
		}
	}
	for _, want := range []string{"Uppercase_Letter", "Private_Use", "Surrogate", "Binary", "U+D800", "U+E000", " -- "} {
		if !strings.Contains(text[examples:], want) {
			t.Errorf("examples section missing %q", want)
		}
	}

	rows := 0
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" || strings.HasSuffix(line, "OVERRIDES") || strings.HasSuffix(line, "EXAMPLES") {
			continue
		}
		rows++
		if !strings.HasPrefix(line, legendIndent) {
			t.Errorf("row not indented: %q", line)
		}
	}
	if want := len(render.OverriddenRunes()) + len(categorySamples); rows != want {
		t.Errorf("legend has %d rows, want %d", rows, want)
	}
}

func TestFormats(t *testing.T) {
	var out bytes.Buffer
	if err := Formats(&out); err != nil {
		t.Fatalf("Formats returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(layout.Attributes()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(layout.Attributes()))
	}
	if !strings.HasPrefix(lines[0], "  offset  ") {
		t.Errorf("first line = %q", lines[0])
	}
}
