// Package noise provides seedable coherent noise fields for the flow force
// and the backdrop lines.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	// Alpha is the per-octave amplitude divisor.
	Alpha = 2.0
	// Beta is the per-octave frequency multiplier.
	Beta = 2.0
	// Octaves summed per sample.
	Octaves = 3
)

// ceiling is the largest float64 strictly below 1.
var ceiling = math.Nextafter(1, 0)

// Perlin is a 3D Perlin field remapped from [-1, 1] onto [0, 1).
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		p: perlin.NewPerlin(Alpha, Beta, Octaves, seed),
	}
}

func (n *Perlin) Noise3D(x, y, z float64) float64 {
	return clamp01(0.5 + 0.5*n.p.Noise3D(x, y, z))
}

// Constant is a flat field. Every sample returns the same value.
type Constant float64

func (c Constant) Noise3D(_, _, _ float64) float64 { return clamp01(float64(c)) }

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= 1:
		return ceiling
	}
	return v
}
