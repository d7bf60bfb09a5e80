package physics

import "github.com/san-kum/hidden/internal/dynamo"

// Trail holds the most recent TrailLength positions of a particle.
// Pushing onto a full trail overwrites the oldest point.
type Trail struct {
	buf  [TrailLength]dynamo.Vec2
	head int // index of the oldest point
	n    int
}

func (t *Trail) Push(p dynamo.Vec2) {
	if t.n < TrailLength {
		t.buf[(t.head+t.n)%TrailLength] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % TrailLength
}

func (t *Trail) Len() int { return t.n }

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) dynamo.Vec2 {
	if i < 0 || i >= t.n {
		panic("physics: trail index out of range")
	}
	return t.buf[(t.head+i)%TrailLength]
}

// Last returns the newest point.
func (t *Trail) Last() (dynamo.Vec2, bool) {
	if t.n == 0 {
		return dynamo.Vec2{}, false
	}
	return t.At(t.n - 1), true
}

// Points appends the trail to dst in time order.
func (t *Trail) Points(dst []dynamo.Vec2) []dynamo.Vec2 {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}
