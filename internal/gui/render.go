package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/scene"
	"github.com/san-kum/hidden/internal/sim"
)

const (
	textSize     = 20
	textAlpha    = 99
	ringAlpha    = 60
	ringMinShown = 0.5
)

var instructions = []struct {
	text string
	at   float32 // below center, as a fraction of the height
}{
	{"Consider the mouse as a blade.", 1 / 5.0},
	{"By clicking and dragging the mouse to slice the ink airflows until they vanished.", 1 / 4.6},
	{"Press F : Fullscreen", 1 / 3.0},
	{"Press S : Start", 1 / 2.8},
}

func gray(v, alpha uint8) rl.Color { return rl.NewColor(v, v, v, alpha) }

func vec(v rl.Vector2) dynamo.Vec2 { return dynamo.V(float64(v.X), float64(v.Y)) }

func point(v dynamo.Vec2) rl.Vector2 { return rl.NewVector2(float32(v.X), float32(v.Y)) }

func (a *App) Draw() {
	if a.driver.Phase() == sim.Idle {
		rl.BeginDrawing()
		a.drawTitle()
		rl.EndDrawing()
		return
	}

	rl.BeginTextureMode(a.canvas)
	a.drawScene()
	rl.EndTextureMode()

	rl.BeginDrawing()
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(a.canvas.Texture.Width), -float32(a.canvas.Texture.Height))
	rl.DrawTextureRec(a.canvas.Texture, src, rl.NewVector2(0, 0), rl.White)
	a.drawBlade()
	rl.EndDrawing()
}

func (a *App) drawTitle() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.ClearBackground(gray(scene.TitlePaper, 255))

	if a.hasTitle {
		const scale = 1.0 / 3
		iw, ih := float32(a.title.Width)*scale, float32(a.title.Height)*scale
		rl.DrawTextureEx(a.title, rl.NewVector2(w/2-iw/2, h/2-ih/2), 0, scale, rl.White)
	}

	for _, line := range instructions {
		size := rl.MeasureTextEx(a.font, line.text, textSize, 1)
		pos := rl.NewVector2(w/2-size.X/2, h/2+h*line.at-size.Y/2)
		rl.DrawTextEx(a.font, line.text, pos, textSize, 1, gray(0, textAlpha))
	}
}

// drawScene washes the canvas with translucent paper, so older ink fades
// over a few dozen frames, then inks this frame on top.
func (a *App) drawScene() {
	w, h := a.canvas.Texture.Width, a.canvas.Texture.Height
	rl.DrawRectangle(0, 0, w, h, gray(scene.Paper, scene.OverlayAlpha))

	fr := scene.Compose(a.driver.Field(), a.backdrop, a.rng)
	for _, l := range fr.Background {
		drawPolyline(l.Points, scene.LineWidth, gray(uint8(l.Shade), 255))
	}
	for _, tr := range fr.Trails {
		r, g, b, alpha := tr.Stroke.RGBA()
		drawPolyline(tr.Points, float32(tr.Stroke.Width), rl.NewColor(r, g, b, alpha))
	}
}

func drawPolyline(pts []dynamo.Vec2, width float32, col rl.Color) {
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(point(pts[i-1]), point(pts[i]), width, col)
	}
}

// drawBlade rings the cursor while the blade is out. It is drawn over
// the canvas so it leaves no ink.
func (a *App) drawBlade() {
	r := a.ring.Radius()
	if r < ringMinShown {
		return
	}
	p := a.driver.Pointer().Pos
	rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(r), gray(0, ringAlpha))
}
