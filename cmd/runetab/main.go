package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/runetab/internal/app"
	"github.com/five82/runetab/internal/config"
	"github.com/five82/runetab/internal/logging"
)

// version is set at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("runetab", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: runetab [options] [INPUT | -]\n\n")
		fs.PrintDefaults()
	}

	var opts app.Options
	fs.StringVar(&opts.ConfigPath, "config", "", "config path (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.Format, "f", "", "comma-separated columns to print (see -formats)")
	fs.BoolVar(&opts.All, "F", false, "print all columns")
	fs.BoolVar(&opts.Merge, "m", false, "merge repeated consecutive code points")
	fs.IntVar(&opts.Group, "g", 0, "group level: 1 code point, 2 category, 3 category family")
	fs.BoolVar(&opts.Oneline, "o", false, "skip line feeds")
	fs.BoolVar(&opts.Names, "n", false, "show category and block names")
	fs.BoolVar(&opts.Rigid, "r", false, "use fixed column widths")
	fs.BoolVar(&opts.Decimal, "decimal", false, "print offsets in decimal")
	fs.BoolVar(&opts.AltCC, "altcc", false, "show caret notation in control code names")
	fs.BoolVar(&opts.NoOverride, "no-override", false, "print control and space glyphs without stand-ins")
	fs.StringVar(&opts.Color, "color", "", "color mode: auto, always or never")
	fs.StringVar(&opts.Theme, "theme", "", "color theme")
	fs.IntVar(&opts.ChunkSize, "chunk", 0, "read chunk size in bytes (optional)")
	fs.DurationVar(&opts.Progress, "progress", 0, "log progress at this interval (with -v)")
	buffered := fs.Bool("b", false, "buffer the whole input before printing")
	unbuffered := fs.Bool("u", false, "print rows as soon as they are known")
	legend := fs.Bool("legend", false, "print the glyph and category legend and exit")
	formats := fs.Bool("formats", false, "list column names and exit")
	writeConfig := fs.Bool("write-config", false, "write the default config file, replacing any existing one, and exit")
	verbose := fs.Bool("v", false, "log debug information to stderr")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	showVersion := fs.Bool("V", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logging.Setup(os.Stderr, level, *logFormat)

	switch {
	case *buffered && *unbuffered:
		fmt.Fprintln(os.Stderr, "runetab: -b and -u are mutually exclusive")
		return 2
	case *buffered:
		opts.Buffered = buffered
	case *unbuffered:
		b := false
		opts.Buffered = &b
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "runetab: at most one input may be given")
		return 2
	}
	opts.Input = fs.Arg(0)

	var err error
	switch {
	case *showVersion:
		fmt.Printf("runetab %s\n", version)
	case *formats:
		err = app.Formats(os.Stdout)
	case *legend:
		err = app.Legend(opts)
	case *writeConfig:
		err = config.Save(opts.ConfigPath, config.Default())
	default:
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		err = app.Run(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "runetab: %v\n", err)
		return 1
	}
	return 0
}
