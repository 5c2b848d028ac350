package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSessionLost stops the schedules of a session that has ended.
var ErrSessionLost = errors.New("session lost")

// Clock drives the periodic schedules of a session until it is lost or ctx is done.
type Clock interface {
	Run(ctx context.Context) error
}

// RealtimeClock runs the body-advance, check and spawn schedules on wall-clock
// timers, one goroutine each. The schedules share one errgroup so they stop
// together: on cancellation, or as soon as any of them sees the loss.
type RealtimeClock struct {
	session *Session
}

// NewRealtimeClock creates a clock for session.
func NewRealtimeClock(session *Session) *RealtimeClock {
	return &RealtimeClock{session: session}
}

// Run blocks until ctx is cancelled or the session is lost. Neither is an error.
func (c *RealtimeClock) Run(ctx context.Context) error {
	settings := c.session.Settings()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return c.schedule(groupCtx, "advance", c.session.Period, c.session.AdvanceTick)
	})

	group.Go(func() error {
		return c.schedule(groupCtx, "check", fixed(settings.CheckPeriod), c.session.CheckTick)
	})

	group.Go(func() error {
		return c.schedule(groupCtx, "spawn", fixed(settings.FruitPeriod), c.session.SpawnTick)
	})

	err := group.Wait()
	if errors.Is(err, ErrSessionLost) {
		return nil
	}

	return err
}

// schedule fires tick every period until ctx is done or tick reports a loss.
// period is read again after every tick, so a speed-up applies to the next wait.
func (c *RealtimeClock) schedule(ctx context.Context, name string, period func() time.Duration, tick func() bool) error {
	timer := time.NewTimer(period())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Schedule stopped", "session", c.session.ID(), "schedule", name)
			return nil
		case <-c.session.Done():
			return ErrSessionLost
		case <-timer.C:
			if ctx.Err() != nil {
				return nil
			}

			if !tick() {
				slog.Debug("Schedule saw loss", "session", c.session.ID(), "schedule", name)
				return ErrSessionLost
			}

			timer.Reset(period())
		}
	}
}

func fixed(period time.Duration) func() time.Duration {
	return func() time.Duration {
		return period
	}
}
