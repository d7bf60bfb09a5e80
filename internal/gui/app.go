package gui

import (
	"log"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/scene"
	"github.com/san-kum/hidden/internal/sim"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type Options struct {
	Width, Height int
	FPS           int
	Fullscreen    bool
	Seed          int64
	TitleImage    string // optional; the title screen is text-only without it
}

type App struct {
	driver   *sim.Driver
	backdrop *scene.Backdrop
	rng      *rand.Rand
	ring     *bladeRing

	// Trails accumulate here under a translucent paper wash.
	canvas rl.RenderTexture2D
	title  rl.Texture2D
	font   rl.Font

	hasTitle bool
	quit     bool
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "hidden")
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
	if opts.Fullscreen {
		rl.ToggleFullscreen()
	}
}

// loadFont falls back to raylib's built-in font when the system font is
// missing.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp needs an open window.
func NewApp(opts Options) *App {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	geom := physics.Geometry{Width: float64(w), Height: float64(h)}

	app := &App{
		driver:   sim.NewSession(geom, opts.Seed, sim.NewWallClock()),
		backdrop: scene.NewBackdrop(noise.NewPerlin(opts.Seed + 1)),
		rng:      rand.New(rand.NewSource(opts.Seed + 2)),
		ring:     newBladeRing(opts.FPS),
		font:     loadFont(),
	}

	if opts.TitleImage != "" {
		if _, err := os.Stat(opts.TitleImage); err != nil {
			log.Printf("title image: %v", err)
		} else {
			app.title = rl.LoadTexture(opts.TitleImage)
			app.hasTitle = app.title.ID != 0
		}
	}

	app.loadCanvas(int32(w), int32(h))
	return app
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) {
	initWindow(opts)
	defer rl.CloseWindow()

	app := NewApp(opts)
	defer app.Close()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Close() {
	rl.UnloadRenderTexture(a.canvas)
	if a.hasTitle {
		rl.UnloadTexture(a.title)
	}
}

func (a *App) loadCanvas(w, h int32) {
	if a.canvas.ID != 0 {
		rl.UnloadRenderTexture(a.canvas)
	}
	a.canvas = rl.LoadRenderTexture(w, h)
	rl.BeginTextureMode(a.canvas)
	rl.ClearBackground(gray(scene.Paper, 255))
	rl.EndTextureMode()
}

// Update handles input, then advances the session one frame.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyF) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.driver.Start()
	}

	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		a.driver.Resize(float64(w), float64(h))
		a.loadCanvas(int32(w), int32(h))
	}

	mouse := rl.GetMousePosition()
	pos := vec(mouse)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.driver.PointerDown(pos)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.driver.PointerMove(pos)
		a.driver.PointerUp()
	default:
		a.driver.PointerMove(pos)
	}

	info := a.driver.Tick()
	if info.Phase != sim.Idle {
		a.backdrop.Advance()
	}
	a.ring.Update(info.Pointer.Active, a.driver.Field().Geometry().BladeRadius())
}
