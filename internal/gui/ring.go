package gui

import "github.com/charmbracelet/harmonica"

// bladeRing springs the cursor ring open to the blade radius while the
// pointer is held, and shut when it is released.
type bladeRing struct {
	spring harmonica.Spring
	radius float64
	vel    float64
}

func newBladeRing(fps int) *bladeRing {
	if fps <= 0 {
		fps = 60
	}
	return &bladeRing{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.6)}
}

func (b *bladeRing) Update(active bool, bladeRadius float64) {
	target := 0.0
	if active {
		target = bladeRadius
	}
	b.radius, b.vel = b.spring.Update(b.radius, b.vel, target)
	if b.radius < 0 {
		b.radius, b.vel = 0, 0
	}
}

func (b *bladeRing) Radius() float64 { return b.radius }
