package ui

import "time"

// Clock holds the loop to a fixed number of ticks per second
type Clock struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewClock() *Clock {
	return &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick blocks until the next frame boundary. The first call returns at once.
// A loop that fell behind is re-anchored on the current time instead of
// running the missed ticks back to back.
func (c *Clock) Tick(rate int) {
	if rate <= 0 {
		return
	}
	interval := time.Second / time.Duration(rate)
	now := c.now()

	if c.next.IsZero() {
		c.next = now.Add(interval)
		return
	}

	if wait := c.next.Sub(now); wait > 0 {
		c.sleep(wait)
		c.next = c.next.Add(interval)
		return
	}
	c.next = now.Add(interval)
}
