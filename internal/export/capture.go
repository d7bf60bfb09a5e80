package export

import (
	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/scene"
	"github.com/san-kum/hidden/internal/sim"
)

// Capture observes a session and composes the scene on frame At. The
// backdrop, if any, flows along with the session so the captured lines
// sit where a live renderer would have drawn them.
type Capture struct {
	At       int
	backdrop *scene.Backdrop
	rng      dynamo.Rand
	frame    scene.Frame
	ok       bool
}

func NewCapture(at int, b *scene.Backdrop, rng dynamo.Rand) *Capture {
	return &Capture{At: at, backdrop: b, rng: rng}
}

func (c *Capture) OnFrame(f *physics.Field, info sim.FrameInfo) {
	if c.backdrop != nil && info.Phase != sim.Idle {
		c.backdrop.Advance()
	}
	if info.Frame == c.At {
		c.frame = scene.Compose(f, c.backdrop, c.rng)
		c.ok = true
	}
}

// Frame returns the captured frame, and false if frame At never ran.
func (c *Capture) Frame() (scene.Frame, bool) { return c.frame, c.ok }
