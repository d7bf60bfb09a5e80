package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/physics"
)

// Driver owns the frame cadence and the inactivity timer, and turns
// interaction and lifecycle events into field operations.
//
// A Driver is not safe for concurrent use; the frame loop that calls Tick
// must also deliver the input events.
type Driver struct {
	field        *physics.Field
	clock        Clock
	fadeAfter    time.Duration
	phase        Phase
	frame        int
	lastActivity time.Duration
	pointer      physics.Pointer
	pressed      bool // a press landed since the last tick
	observers    []Observer
}

func NewDriver(field *physics.Field, clock Clock) *Driver {
	return &Driver{
		field:        field,
		clock:        clock,
		fadeAfter:    physics.FadeAfter,
		lastActivity: clock.Now(),
		observers:    make([]Observer, 0),
	}
}

// NewSession wires a driver over a fresh field seeded from seed, using
// Perlin noise for the flow.
func NewSession(geom physics.Geometry, seed int64, clock Clock) *Driver {
	rng := rand.New(rand.NewSource(seed))
	field := physics.NewField(geom, rng, noise.NewPerlin(seed))
	return NewDriver(field, clock)
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Start leaves the title screen: the timer restarts and the field fills
// with a fresh population. It is honored once per session; fading is
// final.
func (d *Driver) Start() bool {
	if d.phase != Idle {
		return false
	}
	d.lastActivity = d.clock.Now()
	d.field.Reset(physics.ParticleCount)
	d.phase = Active
	return true
}

// Resize moves the attractor to the new screen midpoint. Particles are
// not repositioned.
func (d *Driver) Resize(width, height float64) {
	d.field.OnResize(physics.Geometry{Width: width, Height: height})
}

// PointerDown is the only event besides Start that restarts the
// inactivity countdown.
func (d *Driver) PointerDown(pos dynamo.Vec2) {
	d.pointer = physics.Pointer{Active: true, Pos: pos}
	d.pressed = true
	d.lastActivity = d.clock.Now()
}

// PointerMove tracks a drag. Motion without a held button only moves the
// cursor; the blade stays sheathed.
func (d *Driver) PointerMove(pos dynamo.Vec2) {
	d.pointer.Pos = pos
}

func (d *Driver) PointerUp() {
	d.pointer.Active = false
}

// Tick runs one frame: refresh the timer if the pointer is pressed, fade
// if the timer has run out, then advance the airflow.
func (d *Driver) Tick() FrameInfo {
	now := d.clock.Now()
	frame := d.frame
	d.frame++

	if d.phase != Idle {
		if d.pressed || d.pointer.Active {
			d.lastActivity = now
		}

		expired := now-d.lastActivity > d.fadeAfter
		d.field.FadeIfExpired(now, d.lastActivity, d.fadeAfter)
		if expired && d.phase == Active {
			d.phase = Faded
		}

		d.field.Advance(frame, d.pointer)
	}
	d.pressed = false

	info := FrameInfo{
		Frame:         frame,
		Now:           now,
		Phase:         d.phase,
		Pointer:       d.pointer,
		Population:    d.field.Len(),
		SinceActivity: now - d.lastActivity,
	}
	for _, obs := range d.observers {
		obs.OnFrame(d.field, info)
	}
	return info
}

func (d *Driver) Phase() Phase                { return d.phase }
func (d *Driver) Field() *physics.Field       { return d.field }
func (d *Driver) Frame() int                  { return d.frame }
func (d *Driver) Pointer() physics.Pointer    { return d.pointer }
func (d *Driver) LastActivity() time.Duration { return d.lastActivity }
