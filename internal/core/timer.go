package core

import "time"

// Delta measures the time elapsed between successive frames.
type Delta struct {
	last time.Time
	now  func() time.Time
}

// NewDelta returns a Delta reading the wall clock.
func NewDelta() *Delta {
	return &Delta{now: time.Now}
}

// Seconds returns the seconds elapsed since the previous call. The first call
// returns 0.
func (d *Delta) Seconds() float64 {
	now := time.Now
	if d.now != nil {
		now = d.now
	}
	return d.At(now())
}

// At is Seconds with an explicit current time.
func (d *Delta) At(t time.Time) float64 {
	if d.last.IsZero() {
		d.last = t
	}
	dt := t.Sub(d.last).Seconds()
	d.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// FPSSampleFrames is how many frames FPSCounter waits between samples.
const FPSSampleFrames = 60

// FPSCounter reports frames per second, refreshed once every
// FPSSampleFrames frames so the readout stays legible.
type FPSCounter struct {
	frames int
	fps    int
}

// Frame records one frame that took dt seconds and returns the current
// reading.
func (c *FPSCounter) Frame(dt float64) int {
	c.frames++
	if c.frames >= FPSSampleFrames {
		c.frames = 0
		if dt > 0 {
			c.fps = int(1 / dt)
		}
	}
	return c.fps
}

// FPS returns the last sampled reading.
func (c *FPSCounter) FPS() int { return c.fps }
