package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/five82/runetab/internal/charinfo"
	"github.com/five82/runetab/internal/config"
	"github.com/five82/runetab/internal/decode"
	"github.com/five82/runetab/internal/layout"
	"github.com/five82/runetab/internal/pipeline"
	"github.com/five82/runetab/internal/render"
	"github.com/five82/runetab/internal/stats"
	"github.com/five82/runetab/internal/style"
)

var (
	// ErrNoInput is returned when no input was named and stdin is a terminal.
	ErrNoInput = errors.New("no input: specify a file or '-' to read from stdin")
	// ErrUnknownTheme is returned for theme names that are not built in.
	ErrUnknownTheme = errors.New("unknown theme")
)

// StdinName selects standard input as the input file.
const StdinName = "-"

// Options configure one runetab invocation. Zero values defer to the config
// file; the boolean switches can only turn features on.
type Options struct {
	ConfigPath string
	Input      string // file path, "-" for stdin, empty for stdin when piped

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout

	Format     string // comma-separated attribute list
	All        bool
	Merge      bool
	Group      int
	AltCC      bool
	Decimal    bool
	Rigid      bool
	Oneline    bool
	Names      bool
	NoOverride bool

	Buffered  *bool // nil picks buffered for files and streaming for stdin
	Color     string
	Theme     string
	ChunkSize int           // zero uses the configured size for the mode
	Progress  time.Duration // zero disables periodic progress logging
}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run dumps the input named by opts until it ends or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lopt, err := buildOptions(opts, cfg)
	if err != nil {
		return err
	}
	stdout := opts.stdout()
	st, err := buildStyler(opts, cfg, stdout)
	if err != nil {
		return err
	}

	in, fromFile, err := openInput(opts.Input, opts.stdin())
	if err != nil {
		return err
	}
	defer in.Close()

	buffered := fromFile
	if opts.Buffered != nil {
		buffered = *opts.Buffered
	}
	chunk := chunkSize(opts, cfg, buffered || lopt.Grouping())

	r := render.New(lopt, st)
	store := &stats.Store{}
	store.Start()
	stop := StartWatcher(ctx, store, in, opts.Progress)
	defer stop()

	dec := decode.New(in, chunk).WithContext(ctx)
	w := pipeline.NewWriter(lopt, buffered, stdout, r).WithStats(store)
	slog.Debug("dump started",
		"input", inputName(opts.Input),
		"buffered", w.Buffered(),
		"chunk", chunk,
		"columns", columnNames(w.Table()),
		"colored", st.Colored(),
	)

	rs, err := w.Write(dec.Units())
	if derr := dec.Err(); derr != nil {
		if ctx.Err() != nil {
			slog.Debug("input closed after interrupt", "error", derr)
		} else {
			slog.Warn("input read failed", "error", derr)
			store.Fail(derr)
		}
	}
	if err != nil {
		store.Fail(err)
		return fmt.Errorf("write table: %w", err)
	}
	store.Finish()

	snap := store.Snapshot()
	chits, cmisses := charinfo.CacheStats()
	rhits, rmisses := r.CacheStats()
	slog.Debug("dump finished",
		"summary", snap.String(),
		"bytes", rs.Bytes,
		"units", rs.Units,
		"rows", rs.Rows,
		"decoded_bytes", dec.BytesRead(),
		"classifier_hits", chits,
		"classifier_misses", cmisses,
		"fragment_hits", rhits,
		"fragment_misses", rmisses,
	)
	return nil
}

// buildOptions merges flags over config into layout options.
func buildOptions(opts Options, cfg config.Config) (layout.Options, error) {
	format := opts.Format
	if format == "" && len(cfg.Format) > 0 {
		format = strings.Join(cfg.Format, ",")
	}
	cols, err := layout.ParseAttributes(format)
	if err != nil {
		return layout.Options{}, fmt.Errorf("parse format: %w", err)
	}

	lopt := layout.Options{
		Columns:       cols,
		AllColumns:    opts.All,
		Merge:         opts.Merge || cfg.Merge,
		GroupLevel:    min(max(opts.Group, 0), layout.MaxGroupLevel),
		AltCC:         opts.AltCC,
		DecimalOffset: opts.Decimal || cfg.Decimal,
		Rigid:         opts.Rigid || cfg.Rigid,
		Oneline:       opts.Oneline || cfg.Oneline,
		Names:         opts.Names || cfg.Names,
		NoOverride:    opts.NoOverride,
	}
	if err := lopt.Validate(); err != nil {
		return layout.Options{}, err
	}
	return lopt, nil
}

func buildStyler(opts Options, cfg config.Config, out io.Writer) (*style.Styler, error) {
	mode, err := style.ParseColorMode(firstNonEmpty(opts.Color, cfg.Color))
	if err != nil {
		return nil, err
	}
	name := firstNonEmpty(opts.Theme, cfg.Theme)
	if !style.HasTheme(name) {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(style.ThemeNames(), ", "))
	}
	return style.New(out, mode, style.GetTheme(name)), nil
}

// openInput resolves the input argument. fromFile reports a named file,
// which defaults the run to buffered output.
func openInput(name string, stdin io.Reader) (in io.ReadCloser, fromFile bool, err error) {
	switch name {
	case "":
		if stdinIsTerminal(stdin) {
			return nil, false, ErrNoInput
		}
		return readCloser(stdin), false, nil
	case StdinName:
		return readCloser(stdin), false, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, false, fmt.Errorf("open input: %w", err)
	}
	return f, true, nil
}

func readCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func chunkSize(opts Options, cfg config.Config, buffered bool) int {
	if opts.ChunkSize > 0 {
		return opts.ChunkSize
	}
	size := cfg.StreamChunk
	if buffered {
		size = cfg.BufferChunk
	}
	if size <= 0 {
		if buffered {
			return decode.BufferChunkSize
		}
		return decode.StreamChunkSize
	}
	return size
}

func (o Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func inputName(name string) string {
	if name == "" || name == StdinName {
		return "<stdin>"
	}
	return name
}

func columnNames(t *layout.Table) []string {
	cols := t.Columns()
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Attr.String())
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
