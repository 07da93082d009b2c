// Package app holds the live clock's state and its transitions.
//
// State is a value. Update never mutates its input; every event yields a
// fresh State which replaces the previous one wholesale.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/timecalc"
)

// State is everything needed to draw one frame.
type State struct {
	LastTick time.Time
	Location *time.Location // UTC until a timezone resolves
	Time     model.TimeOfDay
	Viewport model.Viewport
	Size     int // rendered edge length in pixels
	Margin   int
	Busy     []model.BusyInterval // display order, newest first
	// Message is the outcome of the event that produced this state, if any.
	Message string
}

// NewState returns the state before the first tick.
func NewState(vp model.Viewport, margin int) State {
	return State{
		Location: time.UTC,
		Viewport: vp,
		Size:     geometry.RenderSize(vp, margin),
		Margin:   margin,
	}
}

// Scene composes the frame for s.
func (s State) Scene(opts geometry.Options) geometry.Group {
	return opts.Compose(s.Time, s.Busy)
}

// Event is one of Tick, Resize, TimezoneResolved, TimezoneFailed, AddBusy,
// RemoveBusy or ListBusy.
type Event interface {
	event()
}

// Tick carries the current instant.
type Tick struct{ At time.Time }

// Resize carries the new container size.
type Resize struct{ Viewport model.Viewport }

// TimezoneResolved switches the display to Location.
type TimezoneResolved struct{ Location *time.Location }

// TimezoneFailed reports a failed lookup. The current location stays.
type TimezoneFailed struct{ Err error }

// AddBusy adds the interval described by Input.
type AddBusy struct{ Input busy.Input }

// RemoveBusy removes every interval equal to the one described by Input.
type RemoveBusy struct{ Input busy.Input }

// ListBusy reports the current intervals in Message.
type ListBusy struct{}

func (Tick) event()             {}
func (Resize) event()           {}
func (TimezoneResolved) event() {}
func (TimezoneFailed) event()   {}
func (AddBusy) event()          {}
func (RemoveBusy) event()       {}
func (ListBusy) event()         {}

// Update applies ev to s and returns the new state.
func Update(s State, ev Event) State {
	s.Message = ""

	switch ev := ev.(type) {
	case Tick:
		s.LastTick = ev.At
		s.Time = timecalc.FromTime(ev.At, s.Location)

	case Resize:
		// a hidden or collapsed container reports a zero edge
		if ev.Viewport.Width <= 0 || ev.Viewport.Height <= 0 {
			break
		}
		s.Viewport = ev.Viewport
		s.Size = geometry.RenderSize(ev.Viewport, s.Margin)

	case TimezoneResolved:
		if ev.Location == nil {
			break
		}
		s.Location = ev.Location
		if !s.LastTick.IsZero() {
			s.Time = timecalc.FromTime(s.LastTick, s.Location)
		}

	case TimezoneFailed:
		// keep the current location

	case AddBusy:
		iv, err := ev.Input.Parse()
		if err != nil {
			s.Message = err.Error()
			break
		}
		s.Busy = busy.Add(s.Busy, iv)
		s.Message = "added " + describe(iv)

	case RemoveBusy:
		iv, err := ev.Input.Parse()
		if err != nil {
			s.Message = err.Error()
			break
		}
		before := len(s.Busy)
		s.Busy = busy.Remove(s.Busy, iv)
		if removed := before - len(s.Busy); removed > 0 {
			s.Message = fmt.Sprintf("removed %s (%d)", describe(iv), removed)
		} else {
			s.Message = "no busy interval matches " + describe(iv)
		}

	case ListBusy:
		s.Message = listing(s.Busy)
	}
	return s
}

func describe(iv model.BusyInterval) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d %s",
		iv.Start.Hour, iv.Start.Minute, iv.End.Hour, iv.End.Minute, iv.Color)
}

func listing(intervals []model.BusyInterval) string {
	if len(intervals) == 0 {
		return "no busy intervals"
	}
	lines := make([]string, len(intervals))
	for i, iv := range intervals {
		dur := timecalc.SpanSeconds(iv.Start, iv.End)
		lines[i] = fmt.Sprintf("%d. %s (%s)", i+1, describe(iv), timecalc.FormatDuration(dur))
	}
	return strings.Join(lines, "\n")
}
