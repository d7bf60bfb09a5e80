package sim

import (
	"time"

	"github.com/san-kum/hidden/internal/physics"
)

// Phase is where a session is in its life.
type Phase int

const (
	// Idle is the title screen: no particles, nothing advances.
	Idle Phase = iota
	// Active is the running airflow.
	Active
	// Faded is terminal: the field emptied after inactivity. Frames keep
	// ticking so the backdrop keeps flowing.
	Faded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Faded:
		return "faded"
	}
	return "unknown"
}

// Clock reports monotonic time elapsed since some fixed epoch.
type Clock interface {
	Now() time.Duration
}

// WallClock measures real time from its creation.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// FrameClock is virtual time that moves only when told to, one frame at a
// time. Headless runs use it so a minute of airflow takes milliseconds.
type FrameClock struct {
	step time.Duration
	now  time.Duration
}

func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{step: time.Second / time.Duration(fps)}
}

func (c *FrameClock) Now() time.Duration  { return c.now }
func (c *FrameClock) Step() time.Duration { return c.step }
func (c *FrameClock) Advance()            { c.now += c.step }

// FrameInfo describes one tick after it ran.
type FrameInfo struct {
	Frame         int
	Now           time.Duration
	Phase         Phase
	Pointer       physics.Pointer
	Population    int
	SinceActivity time.Duration
}

// UntilFade is the time left before inactivity empties the field.
func (fi FrameInfo) UntilFade() time.Duration {
	if fi.Phase != Active {
		return 0
	}
	left := physics.FadeAfter - fi.SinceActivity
	if left < 0 {
		return 0
	}
	return left
}

// Observer is notified after every tick, renderers and metrics alike.
type Observer interface {
	OnFrame(f *physics.Field, info FrameInfo)
}
