package sim

import (
	"math"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
)

// Script stands in for a user during headless runs: it reports where the
// pointer is, and whether it is pressed, on a given frame. Scripts must be
// pure functions of their arguments so ensembles can share them.
type Script interface {
	Input(frame int, geom physics.Geometry) physics.Pointer
}

// Still never touches the screen.
type Still struct{}

func (Still) Input(int, physics.Geometry) physics.Pointer { return physics.Pointer{} }

// Tap presses the center for Hold frames every Every frames, starting at
// frame Offset.
type Tap struct {
	Every  int
	Hold   int
	Offset int
}

func (t Tap) Input(frame int, geom physics.Geometry) physics.Pointer {
	ptr := physics.Pointer{Pos: geom.Center()}
	if t.Every <= 0 || frame < t.Offset {
		return ptr
	}
	hold := t.Hold
	if hold <= 0 {
		hold = 1
	}
	ptr.Active = (frame-t.Offset)%t.Every < hold
	return ptr
}

// Orbit drags the blade in a circle around the center between frames
// From and Until (Until <= 0 means forever).
type Orbit struct {
	Period int
	Radius float64 // 0 uses twice the blade radius
	From   int
	Until  int
}

func (o Orbit) Input(frame int, geom physics.Geometry) physics.Pointer {
	period := o.Period
	if period <= 0 {
		period = 240
	}
	radius := o.Radius
	if radius == 0 {
		radius = 2 * geom.BladeRadius()
	}
	angle := 2 * math.Pi * float64(frame%period) / float64(period)
	pos := geom.Center().Add(dynamo.FromAngle(angle).Scale(radius))
	active := frame >= o.From && (o.Until <= 0 || frame < o.Until)
	return physics.Pointer{Active: active, Pos: pos}
}

// apply feeds a scripted pointer to the driver as the events a real
// window would deliver.
func apply(d *Driver, ptr physics.Pointer) {
	prev := d.Pointer()
	switch {
	case ptr.Active && !prev.Active:
		d.PointerDown(ptr.Pos)
	case !ptr.Active && prev.Active:
		d.PointerMove(ptr.Pos)
		d.PointerUp()
	default:
		d.PointerMove(ptr.Pos)
	}
}
