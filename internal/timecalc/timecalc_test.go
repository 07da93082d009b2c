package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/timecalc"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2026, 2, 27, 22, 15, 30, 0, time.UTC)

	got := timecalc.FromTime(ts, nil)
	want := model.TimeOfDay{Hour: 22, Minute: 15, Second: 30}
	if got != want {
		t.Errorf("FromTime(UTC) = %v, want %v", got, want)
	}

	plusTwo := time.FixedZone("UTC+2", 2*3600)
	got = timecalc.FromTime(ts, plusTwo)
	want = model.TimeOfDay{Hour: 0, Minute: 15, Second: 30}
	if got != want {
		t.Errorf("FromTime(UTC+2) = %v, want %v", got, want)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    model.TimeOfDay
		wantErr bool
	}{
		{"14:00", model.TimeOfDay{Hour: 14}, false},
		{"09:05:07", model.TimeOfDay{Hour: 9, Minute: 5, Second: 7}, false},
		{" 0:0 ", model.TimeOfDay{}, false},
		{"24:00", model.TimeOfDay{}, true},
		{"12:60", model.TimeOfDay{}, true},
		{"12", model.TimeOfDay{}, true},
		{"ab:cd", model.TimeOfDay{}, true},
		{"1:2:3:4", model.TimeOfDay{}, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpanSeconds(t *testing.T) {
	tests := []struct {
		start, end model.TimeOfDay
		want       int64
	}{
		{model.TimeOfDay{Hour: 14}, model.TimeOfDay{Hour: 15}, 3600},
		{model.TimeOfDay{Hour: 22}, model.TimeOfDay{Hour: 2}, 4 * 3600},
		{model.TimeOfDay{Hour: 8, Minute: 30}, model.TimeOfDay{Hour: 8, Minute: 30}, 0},
	}
	for _, tt := range tests {
		if got := timecalc.SpanSeconds(tt.start, tt.end); got != tt.want {
			t.Errorf("SpanSeconds(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestParseViewport(t *testing.T) {
	vp, err := timecalc.ParseViewport("500x300")
	if err != nil {
		t.Fatalf("ParseViewport: %v", err)
	}
	if vp != (model.Viewport{Width: 500, Height: 300}) {
		t.Errorf("ParseViewport = %v, want 500x300", vp)
	}

	for _, bad := range []string{"500", "x300", "0x10", "10x-1", "axb"} {
		if _, err := timecalc.ParseViewport(bad); err == nil {
			t.Errorf("ParseViewport(%q): expected error", bad)
		}
	}
}
