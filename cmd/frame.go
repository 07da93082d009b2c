package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/config"
	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/render"
	"github.com/Tiliavir/dial/internal/storage"
	"github.com/Tiliavir/dial/internal/timecalc"
	"github.com/Tiliavir/dial/internal/tzlookup"
)

// frameOptions returns the composer options from the loaded config.
func frameOptions(c config.Config, glyphs bool) geometry.Options {
	return geometry.Options{
		Theme: geometry.Theme{
			Face:        c.Theme.Face,
			Ink:         c.Theme.Ink,
			Second:      c.Theme.Second,
			BusyOpacity: c.Theme.BusyOpacity,
		},
		Glyphs: glyphs || c.Render.Glyphs,
	}
}

// pickViewport prefers the flag over the configured default.
func pickViewport(flag string, c config.Config) (model.Viewport, error) {
	if flag != "" {
		return timecalc.ParseViewport(flag)
	}
	return timecalc.ParseViewport(c.Render.Viewport)
}

// pickFormat prefers the flag, then the extension of out, then the config.
func pickFormat(flag, out string, c config.Config) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg", ".png":
		return ext[1:]
	}
	return c.Render.Format
}

// collectBusy loads the busy file first, then the --busy specs, keeping the
// given order.
func collectBusy(file string, specs []string) ([]model.BusyInterval, error) {
	var out []model.BusyInterval
	if file != "" {
		fromFile, err := storage.LoadBusyFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	for _, s := range specs {
		iv, err := busy.ParseSpec(s)
		if err != nil {
			return nil, fmt.Errorf("--busy %q: %w", s, err)
		}
		out = append(out, iv)
	}
	return out, nil
}

// currentTime resolves the display timezone once and reads the clock.
// A failed lookup falls back to UTC.
func currentTime(ctx context.Context, c config.Config, override string, now time.Time) (model.TimeOfDay, error) {
	resolver, err := tzlookup.FromConfig(ctx, c.Timezone, override)
	if err != nil {
		return model.TimeOfDay{}, err
	}
	loc, err := resolver.Resolve(ctx)
	if err != nil {
		logger.Debug("timezone lookup failed, using UTC", zap.Error(err))
		loc = time.UTC
	}
	return timecalc.FromTime(now, loc), nil
}

// encodeFrame renders scene into memory. Nothing reaches the output when
// encoding fails.
func encodeFrame(enc render.Encoder, scene geometry.Group, size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc(&buf, scene, size); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
