package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/timecalc"
)

var (
	inspectAt       string
	inspectViewport string
	inspectBusy     []string
	inspectBusyFile string
	inspectTimezone string
	inspectFormat   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print hand angles and busy arc parameters",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectAt, "at", "", "Time to inspect (HH:MM[:SS]); defaults to now")
	inspectCmd.Flags().StringVar(&inspectViewport, "viewport", "", "Container size WIDTHxHEIGHT (default from config)")
	inspectCmd.Flags().StringArrayVar(&inspectBusy, "busy", nil, `Busy interval "HH:MM-HH:MM=color" (repeatable)`)
	inspectCmd.Flags().StringVar(&inspectBusyFile, "busy-file", "", "YAML file with busy intervals")
	inspectCmd.Flags().StringVar(&inspectTimezone, "timezone", "", "Timezone: utc, local, auto or an IANA name")
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "table", "Output format: table, csv, json")
}

func runInspect(cmd *cobra.Command, args []string) error {
	vp, err := pickViewport(inspectViewport, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var at model.TimeOfDay
	if inspectAt != "" {
		at, err = timecalc.ParseClock(inspectAt)
	} else {
		at, err = currentTime(context.Background(), cfg, inspectTimezone, time.Now())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	intervals, err := collectBusy(inspectBusyFile, inspectBusy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	in := inspect(at, vp, cfg.Render.Margin, intervals)
	switch inspectFormat {
	case "json":
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "csv":
		printCSV(os.Stdout, in)
	default: // table
		printTable(os.Stdout, in)
	}
	return nil
}

// inspection is the geometry of one frame.
type inspection struct {
	Time        string    `json:"time"`
	HourUnit    int       `json:"hour_unit"`
	HourAngle   float64   `json:"hour_angle"`
	MinuteAngle float64   `json:"minute_angle"`
	SecondAngle float64   `json:"second_angle"`
	Viewport    string    `json:"viewport"`
	Margin      int       `json:"margin"`
	RenderSize  int       `json:"render_size"`
	Busy        []busyArc `json:"busy"`
}

type busyArc struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Color           string `json:"color"`
	HourSpan        int    `json:"hour_span"`
	LargeArc        bool   `json:"large_arc"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func inspect(at model.TimeOfDay, vp model.Viewport, margin int, intervals []model.BusyInterval) inspection {
	in := inspection{
		Time:        at.String(),
		HourUnit:    geometry.HourUnit(at.Hour, at.Minute),
		HourAngle:   geometry.HourHandAngle(at),
		MinuteAngle: geometry.MinuteHandAngle(at),
		SecondAngle: geometry.SecondHandAngle(at),
		Viewport:    vp.String(),
		Margin:      margin,
		RenderSize:  geometry.RenderSize(vp, margin),
		Busy:        []busyArc{},
	}
	for _, iv := range intervals {
		in.Busy = append(in.Busy, busyArc{
			Start:           fmt.Sprintf("%02d:%02d", iv.Start.Hour, iv.Start.Minute),
			End:             fmt.Sprintf("%02d:%02d", iv.End.Hour, iv.End.Minute),
			Color:           iv.Color,
			HourSpan:        geometry.HourSpan(iv.Start, iv.End),
			LargeArc:        geometry.LargeArc(iv.Start, iv.End),
			DurationSeconds: timecalc.SpanSeconds(iv.Start, iv.End),
		})
	}
	return in
}

// printTable writes in as aligned text.
func printTable(w io.Writer, in inspection) {
	fmt.Fprintf(w, "%-12s %s\n", "time", in.Time)
	fmt.Fprintf(w, "%-12s %d\n", "hour unit", in.HourUnit)
	fmt.Fprintf(w, "%-12s %s°\n", "hour hand", geometry.FormatNumber(in.HourAngle))
	fmt.Fprintf(w, "%-12s %s°\n", "minute hand", geometry.FormatNumber(in.MinuteAngle))
	fmt.Fprintf(w, "%-12s %s°\n", "second hand", geometry.FormatNumber(in.SecondAngle))
	fmt.Fprintf(w, "%-12s %d (%s, margin %d)\n", "render size", in.RenderSize, in.Viewport, in.Margin)

	if len(in.Busy) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-11s  %-12s  %4s  %-5s  %s\n", "interval", "color", "span", "arc", "duration")
	for _, b := range in.Busy {
		arc := "short"
		if b.LargeArc {
			arc = "large"
		}
		fmt.Fprintf(w, "%s-%s  %-12s  %4d  %-5s  %s\n",
			b.Start, b.End, b.Color, b.HourSpan, arc, timecalc.FormatDuration(b.DurationSeconds))
	}
}

// printCSV writes one row per busy interval.
func printCSV(w io.Writer, in inspection) {
	fmt.Fprintln(w, "start,end,color,hour_span,large_arc,duration_minutes")
	for _, b := range in.Busy {
		fmt.Fprintf(w, "%s,%s,%s,%d,%t,%d\n",
			b.Start,
			b.End,
			csvEscape(b.Color),
			b.HourSpan,
			b.LargeArc,
			b.DurationSeconds/60,
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
