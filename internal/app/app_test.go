package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/five82/runetab/internal/config"
	"github.com/five82/runetab/internal/decode"
	"github.com/five82/runetab/internal/layout"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func baseOptions(t *testing.T, out io.Writer) Options {
	t.Helper()
	return Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Stdout:     out,
		Color:      "never",
	}
}

func TestRunFile(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions(t, &out)
	opts.Input = writeInput(t, "ab")
	opts.Format = "number"

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := strings.Fields(out.String())
	want := []string{"U+61", "U+62"}
	if !slices.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunStdinDash(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions(t, &out)
	opts.Input = StdinName
	opts.Stdin = strings.NewReader("aab")
	opts.Format = "count,number"
	opts.Merge = true

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := strings.Fields(out.String())
	want := []string{"2×", "U+61", "U+62"}
	if !slices.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunNoInputOnTerminal(t *testing.T) {
	orig := stdinIsTerminal
	stdinIsTerminal = func(io.Reader) bool { return true }
	t.Cleanup(func() { stdinIsTerminal = orig })

	opts := baseOptions(t, io.Discard)
	opts.Stdin = strings.NewReader("x")
	err := Run(context.Background(), opts)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("Run error = %v, want ErrNoInput", err)
	}
}

func TestRunPipedStdinWithoutInput(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions(t, &out)
	opts.Stdin = strings.NewReader("z")
	opts.Format = "char"

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.String() != "z" {
		t.Fatalf("output = %q, want %q", out.String(), "z")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		check  func(error) bool
	}{
		{"bad format", func(o *Options) { o.Format = "number,bogus" }, func(err error) bool {
			return errors.Is(err, layout.ErrUnknownAttribute) && strings.Contains(err.Error(), "parse format")
		}},
		{"bad theme", func(o *Options) { o.Theme = "solarized" }, func(err error) bool {
			return errors.Is(err, ErrUnknownTheme)
		}},
		{"bad color", func(o *Options) { o.Color = "sometimes" }, func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "sometimes")
		}},
		{"missing file", func(o *Options) { o.Input = filepath.Join(t.TempDir(), "nope") }, func(err error) bool {
			return errors.Is(err, os.ErrNotExist)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions(t, io.Discard)
			opts.Input = StdinName
			opts.Stdin = strings.NewReader("a")
			tt.mutate(&opts)
			if err := Run(context.Background(), opts); !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := config.Default()
	cfg.Format = []string{"count", "number"}
	cfg.Merge = true
	cfg.Color = "never"
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	var out bytes.Buffer
	opts := Options{
		ConfigPath: cfgPath,
		Input:      writeInput(t, "xxx"),
		Stdout:     &out,
	}
	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := strings.Fields(out.String())
	want := []string{"3×", "U+78"}
	if !slices.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	opts := baseOptions(t, &out)
	opts.Input = writeInput(t, "abc")
	if err := Run(ctx, opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no rows after cancellation, got %q", out.String())
	}
}

func TestBuildOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Format = []string{"name"}
	cfg.Decimal = true

	tests := []struct {
		name string
		opts Options
		want layout.Options
	}{
		{"config format", Options{}, layout.Options{
			Columns:       []layout.Attribute{layout.Name},
			DecimalOffset: true,
		}},
		{"flag format wins", Options{Format: "char, number"}, layout.Options{
			Columns:       []layout.Attribute{layout.Char, layout.Number},
			DecimalOffset: true,
		}},
		{"group clamped high", Options{Group: 7}, layout.Options{
			Columns:       []layout.Attribute{layout.Name},
			GroupLevel:    layout.MaxGroupLevel,
			DecimalOffset: true,
		}},
		{"group clamped low", Options{Group: -2, Rigid: true, AltCC: true}, layout.Options{
			Columns:       []layout.Attribute{layout.Name},
			AltCC:         true,
			DecimalOffset: true,
			Rigid:         true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildOptions(tt.opts, cfg)
			if err != nil {
				t.Fatalf("buildOptions returned error: %v", err)
			}
			if !slices.Equal(got.Columns, tt.want.Columns) {
				t.Errorf("Columns = %v, want %v", got.Columns, tt.want.Columns)
			}
			got.Columns, tt.want.Columns = nil, nil
			if got.GroupLevel != tt.want.GroupLevel || got.AltCC != tt.want.AltCC ||
				got.DecimalOffset != tt.want.DecimalOffset || got.Rigid != tt.want.Rigid {
				t.Errorf("options = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChunkSize(t *testing.T) {
	cfg := config.Default()
	if got := chunkSize(Options{}, cfg, false); got != decode.StreamChunkSize {
		t.Errorf("streaming chunk = %d, want %d", got, decode.StreamChunkSize)
	}
	if got := chunkSize(Options{}, cfg, true); got != decode.BufferChunkSize {
		t.Errorf("buffered chunk = %d, want %d", got, decode.BufferChunkSize)
	}
	if got := chunkSize(Options{ChunkSize: 17}, cfg, true); got != 17 {
		t.Errorf("explicit chunk = %d, want 17", got)
	}
	if got := chunkSize(Options{}, config.Config{}, true); got != decode.BufferChunkSize {
		t.Errorf("zero config chunk = %d, want %d", got, decode.BufferChunkSize)
	}
}

func TestOpenInput(t *testing.T) {
	path := writeInput(t, "data")
	in, fromFile, err := openInput(path, nil)
	if err != nil {
		t.Fatalf("openInput returned error: %v", err)
	}
	defer in.Close()
	if !fromFile {
		t.Error("expected a named file to report fromFile")
	}

	in, fromFile, err = openInput(StdinName, strings.NewReader("x"))
	if err != nil || fromFile {
		t.Fatalf("openInput(-) = fromFile %v, err %v", fromFile, err)
	}
	if err := in.Close(); err != nil {
		t.Errorf("closing wrapped stdin: %v", err)
	}
}
