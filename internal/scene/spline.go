package scene

import "github.com/san-kum/hidden/internal/dynamo"

// CatmullRom samples the curve through points the way curve vertices do
// in a sketchbook: the first and last points only shape the ends and are
// not reached. steps is the number of segments per span. Fewer than four
// points yield nothing.
func CatmullRom(points []dynamo.Vec2, steps int) []dynamo.Vec2 {
	if len(points) < 4 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}

	out := make([]dynamo.Vec2, 0, (len(points)-3)*steps+1)
	for i := 1; i+2 < len(points); i++ {
		p0, p1, p2, p3 := points[i-1], points[i], points[i+1], points[i+2]
		for s := 0; s < steps; s++ {
			out = append(out, catmullRom(p0, p1, p2, p3, float64(s)/float64(steps)))
		}
	}
	return append(out, points[len(points)-2])
}

func catmullRom(p0, p1, p2, p3 dynamo.Vec2, t float64) dynamo.Vec2 {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * ((2 * b) + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return dynamo.V(f(p0.X, p1.X, p2.X, p3.X), f(p0.Y, p1.Y, p2.Y, p3.Y))
}
