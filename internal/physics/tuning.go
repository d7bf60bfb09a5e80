package physics

import (
	"time"

	"github.com/san-kum/hidden/internal/dynamo"
)

const (
	ParticleCount      = 500
	TrailLength        = 4
	MaxSpeed           = 3.0 // per frame
	MinSpawnSpeed      = 1.0
	MaxSpawnSpeed      = 5.0
	FarPull            = 0.1   // attraction gain once outside MaxRange
	NearPull           = 0.006 // attraction gain inside MaxRange
	NoiseScale         = 0.002
	NoiseTimeScale     = 0.01
	NoiseTurns         = 3 // noise in [0,1) spans this many full turns
	FlowStrength       = 1.2
	JitterStrength     = 0.4
	BladeStrength      = 5.0
	BladeRadiusDivisor = 7.0 // blade radius = screen height / 7
	FadeAfter          = 60 * time.Second
)

// Geometry is the screen the field lives on. Every derived quantity the
// particles share is computed from it so they can never disagree.
type Geometry struct {
	Width, Height float64
}

func (g Geometry) Center() dynamo.Vec2 {
	return dynamo.V(g.Width/2, g.Height/2)
}

func (g Geometry) MaxRange() float64 { return g.Width / 2 }

func (g Geometry) BladeRadius() float64 { return g.Height / BladeRadiusDivisor }

// Origin is where a reset spawns particles: one screen height above the
// center, so they drift in from off-screen.
func (g Geometry) Origin() dynamo.Vec2 {
	return g.Center().Sub(dynamo.V(0, g.Height))
}

// Degenerate reports a zero-sized (or nonsensical) canvas.
func (g Geometry) Degenerate() bool {
	return !(g.Width > 0) || !(g.Height > 0)
}
