package trampoline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// ErrBounceLimit is returned when a run defers more calls than Config.MaxBounces.
var ErrBounceLimit = errors.New("trampoline bounce limit exceeded")

// Stats describes one driven run.
type Stats struct {
	RunID   string
	Bounces int
	Span    timespan.TimeSpan
}

// drive runs first and then every deferred step it leads to, in a loop.
// Run ids and timing are only collected when stats are requested or the
// logger has debug enabled.
func drive[O any](first func() Step[O], config Config, withStats bool) (O, Stats, error) {
	observed := withStats || config.Logger.Core().Enabled(zap.DebugLevel)
	var stats Stats
	var start time.Time
	if observed {
		stats.RunID = uuid.New().String()
		start = time.Now()
	}

	var target any
	step := first()
	for {
		switch s := step.(type) {
		case done[O]:
			if observed {
				stats.Span = timespan.BetweenTimes(start, time.Now())
				config.Logger.Debug("trampoline settled",
					zap.String("runId", stats.RunID),
					zap.Int("bounces", stats.Bounces),
					zap.Duration("elapsed", stats.Span.Duration()),
				)
			}
			return s.value, stats, nil
		case tailCall[O]:
			if config.MaxBounces > 0 && stats.Bounces >= config.MaxBounces {
				config.Logger.Warn("trampoline bounce limit exceeded",
					zap.String("runId", stats.RunID),
					zap.Int("maxBounces", config.MaxBounces),
					zap.String("target", fmt.Sprintf("%T", s.target)),
				)
				var zero O
				return zero, stats, fmt.Errorf("%w: %d bounces", ErrBounceLimit, config.MaxBounces)
			}
			stats.Bounces++
			target = s.target
			step = s.handle()
		default:
			panic(fmt.Sprintf("exhaustive match fallback, step type: %T, last target: %T", s, target))
		}
	}
}

func mustSettle[O any](o O, _ Stats, err error) O {
	if err != nil {
		panic(err)
	}
	return o
}
