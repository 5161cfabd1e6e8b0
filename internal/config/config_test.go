package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.Color != defaultColor {
		t.Fatalf("Color = %q, want %q", cfg.Color, defaultColor)
	}
	if cfg.StreamChunk != defaultStreamChunk || cfg.BufferChunk != defaultBufferChunk {
		t.Fatalf("chunks = %d/%d, want %d/%d", cfg.StreamChunk, cfg.BufferChunk, defaultStreamChunk, defaultBufferChunk)
	}
	if cfg.Format != nil {
		t.Fatalf("Format = %v, want nil", cfg.Format)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "runetab")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = \"kanagawa\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "kanagawa" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "kanagawa")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
format = [" offset", "char ", "", "name"]
theme = "  nightfox  "
color = " NEVER "
stream_chunk = 16
decimal = true
names = true
merge = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := []string{"offset", "char", "name"}; !slices.Equal(cfg.Format, want) {
		t.Fatalf("Format = %v, want %v", cfg.Format, want)
	}
	if cfg.Theme != "nightfox" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "nightfox")
	}
	if cfg.Color != "never" {
		t.Fatalf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.StreamChunk != 16 || cfg.BufferChunk != defaultBufferChunk {
		t.Fatalf("chunks = %d/%d, want 16/%d", cfg.StreamChunk, cfg.BufferChunk, defaultBufferChunk)
	}
	if !cfg.Decimal || !cfg.Names || !cfg.Merge || cfg.Rigid || cfg.Oneline {
		t.Fatalf("switches = %+v", cfg)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "   "
color = ""
stream_chunk = 0
buffer_chunk = -1
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme || cfg.Color != defaultColor {
		t.Fatalf("Theme/Color = %q/%q, want defaults", cfg.Theme, cfg.Color)
	}
	if cfg.StreamChunk != defaultStreamChunk || cfg.BufferChunk != defaultBufferChunk {
		t.Fatalf("chunks = %d/%d, want defaults", cfg.StreamChunk, cfg.BufferChunk)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestSave_RoundTripsAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	in := Config{
		Format:  []string{"char", "count"},
		Theme:   "kanagawa",
		Color:   "always",
		Rigid:   true,
		Oneline: true,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !slices.Equal(out.Format, in.Format) || out.Theme != in.Theme || out.Color != in.Color {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
	if !out.Rigid || !out.Oneline || out.Merge {
		t.Fatalf("switches = %+v", out)
	}
	if out.StreamChunk != defaultStreamChunk {
		t.Fatalf("StreamChunk = %d, want default filled in", out.StreamChunk)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
