// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// overlay-demo is an interactive terminal workbench for the overlay
// packages: a menubar with nested submenus, and select, combobox, and
// multiselect fields over a scrollable page.
//
// Overlay behavior comes from an optional configuration file (YAML or
// JSONC, see lib/config). With --trace every open-change is recorded
// to a CBOR trace file, optionally zstd-compressed, which --read-trace
// prints back.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/overlay/lib/config"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/trace"
	"github.com/bureau-foundation/overlay/lib/tui"
	"github.com/bureau-foundation/overlay/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// usageError is a command-line mistake. It exits with status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
func (e usageError) ExitCode() int { return 2 }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// flags holds the parsed command line.
type flags struct {
	configPath    string
	rtl           bool
	tracePath     string
	traceCompress bool
	readTrace     string
	raw           bool
	logOutput     string
	showVersion   bool
	showHelp      bool
}

func parseFlags(args []string) (flags, *pflag.FlagSet, error) {
	var parsed flags
	flagSet := pflag.NewFlagSet("overlay-demo", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&parsed.configPath, "config", "c", "", "overlay configuration file (.yaml, .yml, .json, .jsonc)")
	flagSet.BoolVar(&parsed.rtl, "rtl", false, "lay surfaces out right-to-left, overriding the configuration")
	flagSet.StringVar(&parsed.tracePath, "trace", "", "record every open-change to this CBOR trace file")
	flagSet.BoolVar(&parsed.traceCompress, "trace-compress", false, "zstd-compress the trace (and read --read-trace as compressed)")
	flagSet.StringVar(&parsed.readTrace, "read-trace", "", "print the records of a trace file and exit")
	flagSet.BoolVar(&parsed.raw, "raw", false, "with --read-trace, print each record in CBOR diagnostic notation")
	flagSet.StringVar(&parsed.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status line)")
	flagSet.BoolVar(&parsed.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&parsed.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			parsed.showHelp = true
			return parsed, flagSet, nil
		}
		return parsed, flagSet, usageError{err}
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return parsed, flagSet, usageErrorf("unexpected argument: %s", rest[0])
	}
	return parsed, flagSet, nil
}

func run(args []string) (returned error) {
	parsed, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	switch {
	case parsed.showHelp:
		printHelp(flagSet)
		return nil
	case parsed.showVersion:
		version.Print("overlay-demo")
		return nil
	case parsed.readTrace != "":
		return printTrace(os.Stdout, parsed.readTrace, parsed.traceCompress, parsed.raw)
	case parsed.raw:
		return usageErrorf("--raw requires --read-trace")
	}

	settings := config.Default()
	if parsed.configPath != "" {
		settings, err = config.LoadFile(parsed.configPath)
		if err != nil {
			return err
		}
	}
	if parsed.rtl {
		settings.Overlay.RTL = true
	}

	stdout := int(os.Stdout.Fd())
	if !term.IsTerminal(stdout) {
		return errors.New("overlay-demo needs a terminal on stdout")
	}
	width, _, err := term.GetSize(stdout)
	if err != nil {
		width = 80
	}

	statusHandler := tui.NewStatusHandler(slog.LevelWarn)
	var handler slog.Handler = statusHandler
	if parsed.logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(parsed.logOutput)
		if err != nil {
			return usageErrorf("cannot open log file %s: %w", parsed.logOutput, err)
		}
		defer closeFile()
		handler = fanoutHandler{statusHandler, fileHandler}
	}
	logger := slog.New(handler)

	loop := tui.NewLoopClock()
	tree := overlay.NewTree(overlay.WithClock(loop), overlay.WithLogger(logger))

	var hook func(overlay.OpenChange)
	if parsed.tracePath != "" {
		recorder, closeTrace, err := openTrace(parsed.tracePath, parsed.traceCompress, loop)
		if err != nil {
			return err
		}
		defer func() {
			count := recorder.Count()
			if err := closeTrace(); err != nil {
				returned = errors.Join(returned, err)
				return
			}
			fmt.Fprintf(os.Stderr, "wrote %d trace records to %s\n", count, parsed.tracePath)
		}()
		hook = recorder.Hook(tree, nil)
	}

	theme := tui.NewTheme(settings.Theme, termenv.NewOutput(os.Stdout))
	bench := newWorkbench(tree, settings.Overlay, theme, logger, hook, width)
	host := tui.NewHost(tree, loop, tui.HostOptions{
		Theme:     theme,
		Keys:      tui.DefaultKeyMap,
		Base:      bench.Render,
		OnScroll:  bench.Scroll,
		Intercept: bench.InterceptKey,
		Logger:    logger,
	})
	host.Add(bench.Layers()...)

	program := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	statusHandler.SetSender(program)
	_, err = program.Run()
	return err
}

// openTrace creates the trace file and a recorder writing to it. The
// returned function flushes the recorder and closes the file.
func openTrace(path string, compress bool, loop *tui.LoopClock) (*trace.Recorder, func() error, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating trace file: %w", err)
	}
	recorder, err := trace.NewRecorder(file, compress, trace.WithClock(loop))
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return recorder, func() error {
		return errors.Join(recorder.Close(), file.Close())
	}, nil
}

// printTrace writes one line per record of the trace at path. Raw
// output is the diagnostic notation of each record as stored.
func printTrace(w io.Writer, path string, compressed, raw bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer file.Close()

	if raw {
		items, err := trace.Dump(file, compressed)
		for _, item := range items {
			fmt.Fprintln(w, item)
		}
		return err
	}

	records, readErr := trace.ReadAll(file, compressed)
	for _, record := range records {
		state := "close"
		if record.Open {
			state = "open"
		}
		parent := record.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(w, "%4d  %s  %-10s  parent=%-10s  %-5s  %s\n",
			record.Sequence, record.Time.Format("15:04:05.000"), record.Node, parent, state, record.Reason)
	}
	return readErr
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `overlay-demo: interactive workbench for overlay menus and selects.

The top row is a menubar with nested submenus. Below it, select,
combobox, and multiselect fields open floating surfaces. Scroll the
page with the wheel to watch surfaces follow their triggers.

Usage:
  overlay-demo [flags]

Examples:
  # Right-to-left layout with default settings
  overlay-demo --rtl

  # Load settings and record a compressed trace
  overlay-demo --config overlay.yaml --trace session.cbor --trace-compress

  # Print a recorded trace
  overlay-demo --read-trace session.cbor --trace-compress

  # Show the stored fields of each record
  overlay-demo --read-trace session.cbor --raw

Keys:
  tab        move between triggers
  ↑ ↓        open a surface, move through items
  → ←        open and close submenus
  enter      choose       space  toggle (multiselect)
  esc        close        ctrl+c quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
