package physics

import "github.com/san-kum/hidden/internal/dynamo"

// Particle is one strand of airflow.
type Particle struct {
	Pos   dynamo.Vec2
	Vel   dynamo.Vec2
	Acc   dynamo.Vec2
	Trail Trail
}

// NewParticle spawns at origin heading in a random direction at a speed
// drawn from [MinSpawnSpeed, MaxSpawnSpeed).
func NewParticle(origin dynamo.Vec2, r dynamo.Rand) Particle {
	speed := dynamo.Uniform(r, MinSpawnSpeed, MaxSpawnSpeed)
	return Particle{
		Pos: origin,
		Vel: dynamo.Random2D(r).Scale(speed),
	}
}

func (p *Particle) ApplyForce(f dynamo.Vec2) {
	p.Acc = p.Acc.Add(f)
}

// Integrate folds the accumulated acceleration into velocity (capped at
// MaxSpeed), moves, clears the accumulator and records the new position.
func (p *Particle) Integrate() {
	p.Vel = p.Vel.Add(p.Acc).Limit(MaxSpeed)
	p.Pos = p.Pos.Add(p.Vel)
	p.Acc = dynamo.Vec2{}
	p.Trail.Push(p.Pos)
}

func (p *Particle) Speed() float64 { return p.Vel.Mag() }

func (p *Particle) IsValid() bool {
	return p.Pos.IsValid() && p.Vel.IsValid() && p.Acc.IsValid()
}
