package domain

import (
	"context"
	"time"
)

// VirtualClock replays the three schedules of a session in virtual time,
// without sleeping. Schedules due at the same instant fire in the order
// advance, check, spawn.
type VirtualClock struct {
	session     *Session
	now         time.Duration
	nextAdvance time.Duration
	nextCheck   time.Duration
	nextSpawn   time.Duration
}

// NewVirtualClock creates a clock at time zero with every schedule armed.
func NewVirtualClock(session *Session) *VirtualClock {
	settings := session.Settings()

	return &VirtualClock{
		session:     session,
		nextAdvance: session.Period(),
		nextCheck:   settings.CheckPeriod,
		nextSpawn:   settings.FruitPeriod,
	}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Step jumps to the next due instant and fires every schedule due then.
// It returns false once the session is lost.
func (c *VirtualClock) Step() bool {
	if c.session.Lost() {
		return false
	}

	c.now = c.nextDue()
	settings := c.session.Settings()

	if c.nextAdvance == c.now {
		if !c.session.AdvanceTick() {
			return false
		}

		c.nextAdvance = c.now + c.session.Period()
	}

	if c.nextCheck == c.now {
		if !c.session.CheckTick() {
			return false
		}

		c.nextCheck = c.now + settings.CheckPeriod
	}

	if c.nextSpawn == c.now {
		if !c.session.SpawnTick() {
			return false
		}

		c.nextSpawn = c.now + settings.FruitPeriod
	}

	return true
}

// RunFor fires everything due within the next d and leaves the clock at now+d
// (or at the instant of the loss). It returns false once the session is lost.
func (c *VirtualClock) RunFor(d time.Duration) bool {
	deadline := c.now + d

	for c.nextDue() <= deadline {
		if !c.Step() {
			return false
		}
	}

	c.now = max(c.now, deadline)

	return !c.session.Lost()
}

// Run steps until the session is lost or ctx is done.
func (c *VirtualClock) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !c.Step() {
			return nil
		}
	}
}

func (c *VirtualClock) nextDue() time.Duration {
	return min(c.nextAdvance, c.nextCheck, c.nextSpawn)
}
