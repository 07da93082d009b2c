package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/render"
	"github.com/Tiliavir/dial/internal/storage"
	"github.com/Tiliavir/dial/internal/timecalc"
)

var (
	renderAt       string
	renderFormat   string
	renderOut      string
	renderViewport string
	renderBusy     []string
	renderBusyFile string
	renderGlyphs   bool
	renderTimezone string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single clock frame",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderAt, "at", "", "Time to show (HH:MM[:SS]); defaults to now")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "Output format: svg, png (default from --out or config)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().StringVar(&renderViewport, "viewport", "", "Container size WIDTHxHEIGHT (default from config)")
	renderCmd.Flags().StringArrayVar(&renderBusy, "busy", nil, `Busy interval "HH:MM-HH:MM=color" (repeatable)`)
	renderCmd.Flags().StringVar(&renderBusyFile, "busy-file", "", "YAML file with busy intervals")
	renderCmd.Flags().BoolVar(&renderGlyphs, "glyphs", false, "Draw the decorative glyphs")
	renderCmd.Flags().StringVar(&renderTimezone, "timezone", "", "Timezone: utc, local, auto or an IANA name")
}

func runRender(cmd *cobra.Command, args []string) error {
	vp, err := pickViewport(renderViewport, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	format := pickFormat(renderFormat, renderOut, cfg)
	enc, err := render.ForFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var at model.TimeOfDay
	if renderAt != "" {
		at, err = timecalc.ParseClock(renderAt)
	} else {
		at, err = currentTime(context.Background(), cfg, renderTimezone, time.Now())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	intervals, err := collectBusy(renderBusyFile, renderBusy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	size := geometry.RenderSize(vp, cfg.Render.Margin)
	scene := frameOptions(cfg, renderGlyphs).Compose(at, intervals)
	data, err := encodeFrame(enc, scene, size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if renderOut == "" || renderOut == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return nil
	}
	if err := storage.WriteAtomic(renderOut, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Info("frame written",
		zap.String("path", renderOut),
		zap.String("time", at.String()),
		zap.Int("size", size),
		zap.Int("busy", len(intervals)),
	)
	return nil
}
