package dynamo

import (
	"math"
)

// Vec2 is a point or displacement in screen space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns the unit vector at angle a (radians).
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) MagSq() float64       { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Mag() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Mag() }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in v's direction. The zero vector
// has no direction and is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return v
	}
	m := v.Mag()
	if math.IsNaN(m) {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// SetMag rescales v to magnitude m, keeping its direction.
func (v Vec2) SetMag(m float64) Vec2 {
	return v.Normalize().Scale(m)
}

// Limit caps the magnitude of v at max.
func (v Vec2) Limit(max float64) Vec2 {
	sq := v.MagSq()
	if sq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(sq))
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Rand is the uniform source every random draw goes through.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Noise is a coherent 3D scalar field with values in [0, 1).
type Noise interface {
	Noise3D(x, y, z float64) float64
}

// Uniform draws from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Random2D returns a unit vector with a uniformly distributed heading.
func Random2D(r Rand) Vec2 {
	return FromAngle(r.Float64() * 2 * math.Pi)
}

// Map linearly rescales v from [inLo, inHi] onto [outLo, outHi].
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}
