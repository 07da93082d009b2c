package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Tiliavir/dial/internal/app"
	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/render"
	"github.com/Tiliavir/dial/internal/storage"
	"github.com/Tiliavir/dial/internal/timecalc"
	"github.com/Tiliavir/dial/internal/tzlookup"
)

// Pixel size assumed for one terminal cell with --fit-terminal.
const (
	cellWidth  = 8
	cellHeight = 16
)

var (
	watchFormat      string
	watchOut         string
	watchViewport    string
	watchBusy        []string
	watchBusyFile    string
	watchGlyphs      bool
	watchTimezone    string
	watchFitTerminal bool
	watchExitOnEOF   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the live clock, re-rendering every second",
	Long: `watch keeps --out up to date with the current time, once per second.
Busy intervals can be edited on stdin:

` + busy.Help,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "Output format: svg, png (default from --out or config)")
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output file (default ~/.dial/clock.<format>)")
	watchCmd.Flags().StringVar(&watchViewport, "viewport", "", "Initial container size WIDTHxHEIGHT (default from config)")
	watchCmd.Flags().StringArrayVar(&watchBusy, "busy", nil, `Initial busy interval "HH:MM-HH:MM=color" (repeatable)`)
	watchCmd.Flags().StringVar(&watchBusyFile, "busy-file", "", "YAML file with initial busy intervals")
	watchCmd.Flags().BoolVar(&watchGlyphs, "glyphs", false, "Draw the decorative glyphs")
	watchCmd.Flags().StringVar(&watchTimezone, "timezone", "", "Timezone: utc, local, auto or an IANA name")
	watchCmd.Flags().BoolVar(&watchFitTerminal, "fit-terminal", false, "Follow the terminal size as the viewport")
	watchCmd.Flags().BoolVar(&watchExitOnEOF, "exit-on-eof", false, "Stop when stdin is closed")
}

func runWatch(cmd *cobra.Command, args []string) error {
	vp, err := pickViewport(watchViewport, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	format := pickFormat(watchFormat, watchOut, cfg)
	enc, err := render.ForFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	intervals, err := collectBusy(watchBusyFile, watchBusy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := watchOut
	if out == "" {
		base, err := storage.BaseDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		out = filepath.Join(base, "clock"+render.Extension(format))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver, err := tzlookup.FromConfig(ctx, cfg.Timezone, watchTimezone)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	events := make(chan app.Event)
	go readCommands(ctx, os.Stdin, events, func() {
		if watchExitOnEOF {
			stop()
		}
	})
	if watchFitTerminal {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			fmt.Fprintln(os.Stderr, "--fit-terminal requires stdout to be a terminal")
			os.Exit(1)
		}
		go followTerminal(ctx, fd, events)
	}

	initial := app.NewState(vp, cfg.Render.Margin)
	initial.Busy = intervals

	opts := frameOptions(cfg, watchGlyphs)
	loop := &app.Loop{
		Resolver: resolver,
		Sink:     fileSink(out, enc, opts, os.Stdout),
		Log:      logger,
	}
	logger.Info("watching", zap.String("path", out), zap.String("format", format))
	final := loop.Run(ctx, initial, events)
	logger.Info("stopped", zap.Int("busy", len(final.Busy)), zap.String("time", final.Time.String()))
	return nil
}

// fileSink writes every frame to path and echoes event messages to msgs.
func fileSink(path string, enc render.Encoder, opts geometry.Options, msgs io.Writer) app.Sink {
	return app.SinkFunc(func(ctx context.Context, s app.State) error {
		if s.Message != "" {
			fmt.Fprintln(msgs, s.Message)
		}
		data, err := encodeFrame(enc, s.Scene(opts), s.Size)
		if err != nil {
			return err
		}
		return storage.WriteAtomic(path, data)
	})
}

// readCommands turns stdin lines into events until r is exhausted or ctx
// is done. onEOF runs when r ends.
func readCommands(ctx context.Context, r io.Reader, events chan<- app.Event, onEOF func()) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		ev, err := commandEvent(sc.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if ev == nil {
			fmt.Println(busy.Help)
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		logger.Warn("reading commands", zap.Error(err))
	}
	onEOF()
}

// commandEvent maps one command line to an event. Help yields a nil event.
func commandEvent(line string) (app.Event, error) {
	c, err := busy.ParseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.Verb {
	case busy.VerbAdd:
		return app.AddBusy{Input: c.Input}, nil
	case busy.VerbRemove:
		return app.RemoveBusy{Input: c.Input}, nil
	case busy.VerbList:
		return app.ListBusy{}, nil
	case busy.VerbResize:
		vp, err := resizeViewport(c.Args)
		if err != nil {
			return nil, err
		}
		return app.Resize{Viewport: vp}, nil
	default:
		return nil, nil
	}
}

func resizeViewport(args []string) (model.Viewport, error) {
	if len(args) != 2 {
		return model.Viewport{}, fmt.Errorf("resize needs WIDTH and HEIGHT")
	}
	return timecalc.ParseViewport(args[0] + "x" + args[1])
}

// terminalViewport converts the terminal size in cells to pixels.
func terminalViewport(fd int) (model.Viewport, error) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return model.Viewport{}, fmt.Errorf("reading terminal size: %w", err)
	}
	return cellsToViewport(cols, rows)
}

func cellsToViewport(cols, rows int) (model.Viewport, error) {
	if cols <= 0 || rows <= 0 {
		return model.Viewport{}, fmt.Errorf("terminal reports %dx%d cells", cols, rows)
	}
	return model.Viewport{Width: cols * cellWidth, Height: rows * cellHeight}, nil
}

// sendTerminalSize queues a Resize for the current terminal size.
func sendTerminalSize(ctx context.Context, fd int, events chan<- app.Event) {
	vp, err := terminalViewport(fd)
	if err != nil {
		logger.Warn("terminal size unavailable", zap.Error(err))
		return
	}
	select {
	case events <- app.Resize{Viewport: vp}:
	case <-ctx.Done():
	}
}
