package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// TickInterval is the cadence of the live clock.
const TickInterval = 1000 * time.Millisecond

// Resolver yields the display location once.
type Resolver interface {
	Resolve(ctx context.Context) (*time.Location, error)
}

// Sink receives every state the loop produces, in order.
type Sink interface {
	Render(ctx context.Context, s State) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s State) error

func (f SinkFunc) Render(ctx context.Context, s State) error { return f(ctx, s) }

// Loop drives Update from the ticker, the timezone resolver and external
// events. All transitions run on the goroutine that calls Run.
type Loop struct {
	Clock    clockwork.Clock
	Resolver Resolver // nil keeps UTC
	Sink     Sink
	Log      *zap.Logger
}

// Run renders the initial state, then applies events until ctx is done.
// A closed events channel stops external input but not the clock.
// Sink errors are logged and do not stop the loop.
func (l *Loop) Run(ctx context.Context, initial State, events <-chan Event) State {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}
	clock := l.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ticker := clock.NewTicker(TickInterval)
	defer ticker.Stop()

	var tz <-chan Event
	if l.Resolver != nil {
		resolved := make(chan Event, 1)
		go func() {
			loc, err := l.Resolver.Resolve(ctx)
			if err != nil {
				resolved <- TimezoneFailed{Err: err}
				return
			}
			resolved <- TimezoneResolved{Location: loc}
		}()
		tz = resolved
	}

	state := initial
	apply := func(ev Event) {
		state = Update(state, ev)
		if err := l.Sink.Render(ctx, state); err != nil {
			log.Warn("render failed", zap.Error(err))
		}
	}

	apply(Tick{At: clock.Now()})
	for {
		select {
		case <-ctx.Done():
			return state
		case now := <-ticker.Chan():
			apply(Tick{At: now})
		case ev := <-tz:
			tz = nil
			switch ev := ev.(type) {
			case TimezoneResolved:
				log.Info("timezone resolved", zap.String("location", ev.Location.String()))
			case TimezoneFailed:
				log.Debug("timezone lookup failed, keeping UTC", zap.Error(ev.Err))
			}
			apply(ev)
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			apply(ev)
		}
	}
}
