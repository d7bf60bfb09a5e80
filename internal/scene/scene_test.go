package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/physics"
)

func TestBackdropLines(t *testing.T) {
	b := NewBackdrop(noise.Constant(0.5))
	lines := b.Lines(1000, 600)

	if len(lines) != LinesNum {
		t.Fatalf("expected %d lines, got %d", LinesNum, len(lines))
	}
	// x runs from -100 while x < width+200: -100, 0, ..., 1100
	if got := len(lines[0].Points); got != 13 {
		t.Errorf("expected 13 samples, got %d", got)
	}
	if lines[0].Shade != 0 || lines[LinesNum-1].Shade >= MaxLineShade {
		t.Errorf("unexpected shade range %f..%f", lines[0].Shade, lines[LinesNum-1].Shade)
	}
	// mid-gray noise maps to y = 0 before drift
	if y := lines[3].Points[4].Y; y != 0 {
		t.Errorf("expected y 0 at zero phase, got %f", y)
	}
}

func TestBackdropDrift(t *testing.T) {
	b := NewBackdrop(noise.Constant(0.5))
	for i := 0; i < 100; i++ {
		b.Advance()
	}
	if math.Abs(b.Motion()-1) > 1e-9 {
		t.Fatalf("expected phase 1 after 100 frames, got %f", b.Motion())
	}
	y := b.Lines(400, 400)[0].Points[0].Y
	if math.Abs(y-LineDrift) > 1e-6 {
		t.Errorf("expected lines to sink by %v, got %f", LineDrift, y)
	}
}

func TestRandomStrokeRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		s := RandomStroke(rng)
		if s.Shade < MinInkShade || s.Shade >= MaxInkShade {
			t.Fatalf("shade %f out of range", s.Shade)
		}
		if s.Alpha < MinInkAlpha || s.Alpha >= MaxInkAlpha {
			t.Fatalf("alpha %f out of range", s.Alpha)
		}
		if s.Width < MinInkWidth || s.Width >= MaxInkWidth {
			t.Fatalf("width %f out of range", s.Width)
		}
	}
}

func TestStrokeRGBA(t *testing.T) {
	r, g, b, a := Stroke{Shade: 9.6, Alpha: 300}.RGBA()
	if r != 10 || g != 10 || b != 10 || a != 255 {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestCatmullRom(t *testing.T) {
	tests := []struct {
		name   string
		points []dynamo.Vec2
		steps  int
		want   int
	}{
		{"too few", []dynamo.Vec2{{}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 4, 0},
		{"one span", []dynamo.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, 4, 5},
		{"two spans", []dynamo.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, 4, 9},
		{"zero steps", []dynamo.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CatmullRom(tt.points, tt.steps)
			if len(got) != tt.want {
				t.Fatalf("expected %d samples, got %d", tt.want, len(got))
			}
			if tt.want == 0 {
				return
			}
			if got[0] != tt.points[1] {
				t.Errorf("curve should start at the second point, got %v", got[0])
			}
			if got[len(got)-1] != tt.points[len(tt.points)-2] {
				t.Errorf("curve should end at the second-to-last point, got %v", got[len(got)-1])
			}
		})
	}
}

func TestCatmullRomCollinear(t *testing.T) {
	pts := []dynamo.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	for _, p := range CatmullRom(pts, 10) {
		if math.Abs(p.X-p.Y) > 1e-12 {
			t.Fatalf("collinear input left the line at %v", p)
		}
	}
}

func TestCompose(t *testing.T) {
	geom := physics.Geometry{Width: 640, Height: 480}
	rng := rand.New(rand.NewSource(3))
	f := physics.NewField(geom, rng, noise.NewPerlin(3))
	f.Reset(20)

	fr := Compose(f, NewBackdrop(noise.NewPerlin(4)), rng)
	if len(fr.Trails) != 0 {
		t.Errorf("fresh particles have no trail to draw, got %d", len(fr.Trails))
	}
	if len(fr.Background) != LinesNum {
		t.Errorf("expected %d background lines, got %d", LinesNum, len(fr.Background))
	}

	for i := 0; i < 5; i++ {
		f.Advance(i, physics.Pointer{})
	}
	fr = Compose(f, nil, rng)
	if len(fr.Trails) != 20 {
		t.Fatalf("expected 20 trails, got %d", len(fr.Trails))
	}
	if fr.Background != nil {
		t.Error("no backdrop should mean no background lines")
	}
	if fr.Width != 640 || fr.Height != 480 {
		t.Errorf("frame size %vx%v", fr.Width, fr.Height)
	}

	// strokes are re-drawn on every composition
	again := Compose(f, nil, rng)
	if again.Trails[0].Stroke == fr.Trails[0].Stroke {
		t.Error("expected a fresh stroke per draw")
	}
}
