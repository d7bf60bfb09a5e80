package physics

import (
	"math"

	"github.com/san-kum/hidden/internal/dynamo"
)

// Attraction pulls pos toward center. Beyond maxRange the pull is strong
// (FarPull per unit distance) so strays snap back; inside it is gentle.
func Attraction(pos, center dynamo.Vec2, maxRange float64) dynamo.Vec2 {
	to := center.Sub(pos)
	d := to.Mag()
	if d > maxRange {
		return to.SetMag(FarPull * d)
	}
	return to.SetMag(NearPull * d)
}

// Flow is the coherent swirl: the noise value at the particle's position
// and time picks a heading.
func Flow(n dynamo.Noise, pos dynamo.Vec2, frame int) dynamo.Vec2 {
	level := n.Noise3D(pos.X*NoiseScale, pos.Y*NoiseScale, float64(frame)*NoiseTimeScale)
	angle := level * 2 * math.Pi * NoiseTurns
	return dynamo.FromAngle(angle).Scale(FlowStrength)
}

// Jitter is the per-particle random push that frays the strands.
func Jitter(r dynamo.Rand) dynamo.Vec2 {
	return dynamo.Random2D(r).Scale(JitterStrength)
}

// Repulsion pushes pos away from the blade at fixed strength when it is
// strictly inside radius. A particle sitting exactly on the blade has no
// defined direction and is left alone.
func Repulsion(pos, blade dynamo.Vec2, radius float64) dynamo.Vec2 {
	if pos.Dist(blade) >= radius {
		return dynamo.Vec2{}
	}
	return pos.Sub(blade).Normalize().Scale(BladeStrength)
}
