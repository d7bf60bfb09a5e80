package physics

import (
	"time"

	"github.com/san-kum/hidden/internal/dynamo"
)

// Pointer is the blade: where the user is pressing, if at all.
type Pointer struct {
	Active bool
	Pos    dynamo.Vec2
}

// Field owns the airflow population and the geometry all particles share.
//
// The population only ever changes through Reset and FadeIfExpired.
// Advance, whatever the pointer is doing, leaves the count untouched.
type Field struct {
	particles []Particle
	geom      Geometry
	rng       dynamo.Rand
	noise     dynamo.Noise
}

func NewField(geom Geometry, rng dynamo.Rand, noise dynamo.Noise) *Field {
	return &Field{
		geom:      geom,
		rng:       rng,
		noise:     noise,
		particles: make([]Particle, 0, ParticleCount),
	}
}

// Reset replaces the population with count fresh particles at the spawn
// origin.
func (f *Field) Reset(count int) {
	if count < 0 {
		count = 0
	}
	origin := f.geom.Origin()
	f.particles = f.particles[:0]
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, NewParticle(origin, f.rng))
	}
}

// Advance moves every particle one frame. frame feeds the time axis of the
// noise field.
func (f *Field) Advance(frame int, ptr Pointer) {
	if f.geom.Degenerate() {
		return
	}
	center := f.geom.Center()
	maxRange := f.geom.MaxRange()
	radius := f.geom.BladeRadius()

	for i := range f.particles {
		p := &f.particles[i]

		p.ApplyForce(Attraction(p.Pos, center, maxRange))
		p.ApplyForce(Flow(f.noise, p.Pos, frame))
		p.ApplyForce(Jitter(f.rng))
		if ptr.Active {
			p.ApplyForce(Repulsion(p.Pos, ptr.Pos, radius))
		}

		p.Integrate()
	}
}

// FadeIfExpired empties the field once more than threshold has passed
// since the last activity. It reports whether the field is empty
// afterwards.
func (f *Field) FadeIfExpired(now, lastActivity, threshold time.Duration) bool {
	if now-lastActivity > threshold {
		f.particles = f.particles[:0]
	}
	return len(f.particles) == 0
}

// OnResize swaps the shared geometry. Existing particles stay where they
// are and feel the new center from the next Advance on.
func (f *Field) OnResize(geom Geometry) {
	f.geom = geom
}

func (f *Field) Geometry() Geometry { return f.geom }
func (f *Field) Len() int           { return len(f.particles) }
func (f *Field) Empty() bool        { return len(f.particles) == 0 }

// Particles exposes the population for rendering. Callers must not
// append to or reslice it.
func (f *Field) Particles() []Particle { return f.particles }

// Validate returns the index of the first particle holding NaN or Inf,
// or -1.
func (f *Field) Validate() int {
	for i := range f.particles {
		if !f.particles[i].IsValid() {
			return i
		}
	}
	return -1
}

// Stats summarizes the population's motion.
func (f *Field) Stats() (mean, peak float64) {
	if len(f.particles) == 0 {
		return 0, 0
	}
	for i := range f.particles {
		s := f.particles[i].Speed()
		mean += s
		if s > peak {
			peak = s
		}
	}
	return mean / float64(len(f.particles)), peak
}
