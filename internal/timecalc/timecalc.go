package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Tiliavir/dial/internal/model"
)

const secondsPerDay = 24 * 60 * 60

// FromTime returns the wall-clock reading of t in loc. A nil loc means UTC.
func FromTime(t time.Time, loc *time.Location) model.TimeOfDay {
	if loc == nil {
		loc = time.UTC
	}
	h, m, s := t.In(loc).Clock()
	return model.TimeOfDay{Hour: h, Minute: m, Second: s}
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into a range-checked TimeOfDay.
func ParseClock(s string) (model.TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return model.TimeOfDay{}, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return model.TimeOfDay{}, fmt.Errorf("invalid time %q: %q is not a number", s, p)
		}
		vals[i] = n
	}
	t := model.TimeOfDay{Hour: vals[0], Minute: vals[1], Second: vals[2]}
	if err := t.Validate(); err != nil {
		return model.TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}

// SecondOfDay returns the number of seconds since midnight.
func SecondOfDay(t model.TimeOfDay) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// SpanSeconds returns the length of the interval from start to end, going
// forward in time and wrapping past midnight when end is before start.
func SpanSeconds(start, end model.TimeOfDay) int64 {
	d := SecondOfDay(end) - SecondOfDay(start)
	if d < 0 {
		d += secondsPerDay
	}
	return int64(d)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// ParseViewport parses "WIDTHxHEIGHT", e.g. "500x300".
func ParseViewport(s string) (model.Viewport, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return model.Viewport{}, fmt.Errorf("invalid viewport %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return model.Viewport{}, fmt.Errorf("invalid viewport width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return model.Viewport{}, fmt.Errorf("invalid viewport height %q", h)
	}
	return model.Viewport{Width: width, Height: height}, nil
}
