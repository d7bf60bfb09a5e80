package scene

import "github.com/san-kum/hidden/internal/dynamo"

const (
	LinesNum     = 30
	MotionStep   = 0.01 // phase gained per frame
	LineSpacing  = 100.0
	LineDrift    = 200.0 // vertical offset per unit of phase
	MaxLineShade = 50.0
	LineWidth    = 2.0
)

// Line is one backdrop curve, drawn as a Catmull-Rom spline through Points.
type Line struct {
	Shade  float64 // gray level 0..255
	Points []dynamo.Vec2
}

// Backdrop is the set of slow noise curves behind the airflow. Its phase
// only ever increases, so the curves sink down the screen over time.
type Backdrop struct {
	noise  dynamo.Noise
	motion float64
}

func NewBackdrop(n dynamo.Noise) *Backdrop {
	return &Backdrop{noise: n}
}

func (b *Backdrop) Advance()        { b.motion += MotionStep }
func (b *Backdrop) Motion() float64 { return b.motion }

// Lines samples every curve for a width×height screen.
func (b *Backdrop) Lines(width, height float64) []Line {
	lines := make([]Line, 0, LinesNum)
	for c := 0; c < LinesNum; c++ {
		l := Line{Shade: dynamo.Map(float64(c), 0, LinesNum, 0, MaxLineShade)}
		for x := -LineSpacing; x < width+2*LineSpacing; x += LineSpacing {
			n := b.noise.Noise3D(x*0.01+b.motion, float64(c)*0.001+b.motion, 0)
			y := dynamo.Map(n, 0, 1, -height/2, height/2)
			l.Points = append(l.Points, dynamo.V(x, y+b.motion*LineDrift))
		}
		lines = append(lines, l)
	}
	return lines
}
