package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/Tiliavir/dial/internal/app"
	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/geometry"
	"github.com/Tiliavir/dial/internal/model"
)

func input(sh, sm, eh, em, color string) busy.Input {
	return busy.Input{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em, Color: color}
}

func TestResizeSequence(t *testing.T) {
	s := app.NewState(model.Viewport{Width: 510, Height: 510}, geometry.DefaultMargin)
	if s.Size != 500 {
		t.Fatalf("initial Size = %d, want 500", s.Size)
	}

	s = app.Update(s, app.Resize{Viewport: model.Viewport{Width: 500, Height: 300}})
	if s.Size != 290 {
		t.Errorf("Size after 500x300 = %d, want 290", s.Size)
	}
	s = app.Update(s, app.Resize{Viewport: model.Viewport{Width: 200, Height: 800}})
	if s.Size != 190 {
		t.Errorf("Size after 200x800 = %d, want 190", s.Size)
	}
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	s := app.NewState(model.Viewport{Width: 500, Height: 300}, geometry.DefaultMargin)
	for _, vp := range []model.Viewport{{}, {Width: 0, Height: 400}, {Width: 400, Height: -1}} {
		got := app.Update(s, app.Resize{Viewport: vp})
		if got.Size != 290 || got.Viewport != s.Viewport {
			t.Errorf("Resize %v: Size = %d Viewport = %v, want 290 and %v", vp, got.Size, got.Viewport, s.Viewport)
		}
	}
}

func TestTickUsesLocation(t *testing.T) {
	at := time.Date(2024, 6, 1, 22, 15, 30, 0, time.UTC)
	s := app.Update(app.NewState(model.Viewport{Width: 100, Height: 100}, 10), app.Tick{At: at})
	if want := (model.TimeOfDay{Hour: 22, Minute: 15, Second: 30}); s.Time != want {
		t.Errorf("UTC tick Time = %v, want %v", s.Time, want)
	}

	s = app.Update(s, app.TimezoneFailed{Err: errors.New("offline")})
	if s.Location != time.UTC || s.Time.Hour != 22 {
		t.Errorf("failed lookup changed state: location %v, time %v", s.Location, s.Time)
	}
	if s.Message != "" {
		t.Errorf("failed lookup must not be surfaced, got message %q", s.Message)
	}

	s = app.Update(s, app.TimezoneResolved{Location: time.FixedZone("UTC+2", 2*3600)})
	if want := (model.TimeOfDay{Hour: 0, Minute: 15, Second: 30}); s.Time != want {
		t.Errorf("resolved Time = %v, want %v (recomputed from last tick)", s.Time, want)
	}
}

func TestAddBusyRejectsOutOfRange(t *testing.T) {
	s := app.NewState(model.Viewport{Width: 100, Height: 100}, 10)
	s = app.Update(s, app.AddBusy{Input: input("9", "0", "10", "0", "red")})
	before := s.Busy

	s = app.Update(s, app.AddBusy{Input: input("25", "0", "10", "0", "red")})
	if !strings.Contains(s.Message, "24") {
		t.Errorf("Message = %q, want it to mention 24", s.Message)
	}
	if diff := cmp.Diff(before, s.Busy); diff != "" {
		t.Errorf("busy list changed after rejected add (-want +got):\n%s", diff)
	}
}

func TestAddRemoveList(t *testing.T) {
	s := app.NewState(model.Viewport{Width: 100, Height: 100}, 10)
	s = app.Update(s, app.AddBusy{Input: input("9", "0", "10", "30", "red")})
	s = app.Update(s, app.AddBusy{Input: input("14", "0", "20", "0", "blue")})
	s = app.Update(s, app.AddBusy{Input: input("9", "0", "10", "30", "red")})

	want := []model.BusyInterval{
		{Start: model.TimeOfDay{Hour: 9}, End: model.TimeOfDay{Hour: 10, Minute: 30}, Color: "red"},
		{Start: model.TimeOfDay{Hour: 14}, End: model.TimeOfDay{Hour: 20}, Color: "blue"},
		{Start: model.TimeOfDay{Hour: 9}, End: model.TimeOfDay{Hour: 10, Minute: 30}, Color: "red"},
	}
	if diff := cmp.Diff(want, s.Busy); diff != "" {
		t.Fatalf("Busy after adds (-want +got):\n%s", diff)
	}

	s = app.Update(s, app.ListBusy{})
	if !strings.HasPrefix(s.Message, "1. 09:00-10:30 red (1h 30m") {
		t.Errorf("list Message = %q", s.Message)
	}

	s = app.Update(s, app.RemoveBusy{Input: input("9", "0", "10", "30", "red")})
	if diff := cmp.Diff(want[1:2], s.Busy); diff != "" {
		t.Errorf("Busy after remove (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(s.Message, "removed") {
		t.Errorf("remove Message = %q", s.Message)
	}

	s = app.Update(s, app.RemoveBusy{Input: input("1", "0", "2", "0", "red")})
	if len(s.Busy) != 1 || !strings.HasPrefix(s.Message, "no busy interval") {
		t.Errorf("removing unknown interval: busy %v, message %q", s.Busy, s.Message)
	}

	s = app.Update(s, app.Tick{At: time.Now()})
	if s.Message != "" {
		t.Errorf("message should not outlive its event, got %q", s.Message)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	s := app.NewState(model.Viewport{Width: 100, Height: 100}, 10)
	s = app.Update(s, app.AddBusy{Input: input("1", "0", "2", "0", "red")})
	old := s

	_ = app.Update(old, app.AddBusy{Input: input("3", "0", "4", "0", "blue")})
	_ = app.Update(old, app.Resize{Viewport: model.Viewport{Width: 40, Height: 40}})
	if len(old.Busy) != 1 || old.Size != 90 {
		t.Errorf("Update mutated its input: %+v", old)
	}
}

type gatedResolver struct {
	release chan struct{}
	loc     *time.Location
}

func (g gatedResolver) Resolve(ctx context.Context) (*time.Location, error) {
	select {
	case <-g.release:
		return g.loc, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestLoop(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC))
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("no tzdata: %v", err)
	}
	resolver := gatedResolver{release: make(chan struct{}), loc: berlin}

	frames := make(chan app.State)
	loop := &app.Loop{
		Clock:    fc,
		Resolver: resolver,
		Sink: app.SinkFunc(func(ctx context.Context, s app.State) error {
			select {
			case frames <- s:
			case <-ctx.Done():
			}
			return nil
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan app.Event)
	done := make(chan app.State)
	go func() {
		done <- loop.Run(ctx, app.NewState(model.Viewport{Width: 510, Height: 510}, 10), events)
	}()

	next := func() app.State {
		t.Helper()
		select {
		case s := <-frames:
			return s
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a frame")
			return app.State{}
		}
	}

	if s := next(); s.Time != (model.TimeOfDay{Hour: 14, Minute: 30}) {
		t.Errorf("first frame Time = %v, want 14:30:00", s.Time)
	}

	fc.BlockUntil(1)
	fc.Advance(time.Second)
	if s := next(); s.Time != (model.TimeOfDay{Hour: 14, Minute: 30, Second: 1}) {
		t.Errorf("after one tick Time = %v, want 14:30:01", s.Time)
	}

	events <- app.Resize{Viewport: model.Viewport{Width: 500, Height: 300}}
	if s := next(); s.Size != 290 {
		t.Errorf("Size = %d, want 290", s.Size)
	}

	events <- app.AddBusy{Input: input("25", "0", "1", "0", "red")}
	if s := next(); len(s.Busy) != 0 || !strings.Contains(s.Message, "24") {
		t.Errorf("rejected add: busy %v, message %q", s.Busy, s.Message)
	}

	close(resolver.release)
	s := next()
	if s.Location != berlin || s.Time != (model.TimeOfDay{Hour: 15, Minute: 30, Second: 1}) {
		t.Errorf("after timezone: location %v, time %v; want Europe/Berlin 15:30:01", s.Location, s.Time)
	}

	cancel()
	final := <-done
	if final.Size != 290 {
		t.Errorf("final state Size = %d, want 290", final.Size)
	}
}
