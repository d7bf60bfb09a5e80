package scene

import (
	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
)

// CurveSteps is the number of segments sampled per spline span.
const CurveSteps = 8

// Polyline is one inked trail, already smoothed.
type Polyline struct {
	Points []dynamo.Vec2
	Stroke Stroke
}

// Frame is everything a renderer needs for one draw, in screen space.
type Frame struct {
	Width, Height float64
	Background    []Line
	Trails        []Polyline
}

// Compose builds a frame from the field and backdrop. Strokes are drawn
// from rng on every call.
func Compose(f *physics.Field, b *Backdrop, rng dynamo.Rand) Frame {
	geom := f.Geometry()
	fr := Frame{Width: geom.Width, Height: geom.Height}

	if b != nil {
		for _, l := range b.Lines(geom.Width, geom.Height) {
			l.Points = CatmullRom(l.Points, CurveSteps)
			fr.Background = append(fr.Background, l)
		}
	}

	ps := f.Particles()
	fr.Trails = make([]Polyline, 0, len(ps))
	buf := make([]dynamo.Vec2, 0, physics.TrailLength)
	for i := range ps {
		buf = ps[i].Trail.Points(buf[:0])
		stroke := RandomStroke(rng)
		pts := CatmullRom(buf, CurveSteps)
		if pts == nil {
			continue
		}
		fr.Trails = append(fr.Trails, Polyline{Points: pts, Stroke: stroke})
	}
	return fr
}
