package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
)

// RunConfig describes a headless session.
type RunConfig struct {
	Frames int
	FPS    int
	Seed   int64
	Width  float64
	Height float64
	Script Script
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Frames: 60 * 75,
		FPS:    60,
		Seed:   1,
		Width:  1280,
		Height: 720,
		Script: Still{},
	}
}

func (c RunConfig) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", dynamo.ErrInvalidConfig, c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", dynamo.ErrInvalidConfig, c.FPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative screen %vx%v", dynamo.ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Result summarizes a headless session.
type Result struct {
	Seed      int64
	Frames    int
	FadeFrame int // -1 if the airflow never faded
	Final     Phase
	Elapsed   time.Duration // virtual
}

// Runner plays a session frame by frame on a virtual clock.
type Runner struct {
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{observers: make([]Observer, 0)}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run starts a session, feeds it the script and ticks cfg.Frames frames.
// It stops early on cancellation or if any particle goes non-finite.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	script := cfg.Script
	if script == nil {
		script = Still{}
	}

	clock := NewFrameClock(cfg.FPS)
	geom := physics.Geometry{Width: cfg.Width, Height: cfg.Height}
	d := NewSession(geom, cfg.Seed, clock)
	for _, o := range r.observers {
		d.AddObserver(o)
	}
	d.Start()

	result := &Result{Seed: cfg.Seed, FadeFrame: -1}
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		apply(d, script.Input(i, geom))
		info := d.Tick()

		if idx := d.Field().Validate(); idx != -1 {
			return result, &dynamo.SimError{
				Frame:   info.Frame,
				Message: fmt.Sprintf("particle %d", idx),
				Wrapped: dynamo.ErrInvalidState,
			}
		}

		if info.Phase == Faded && result.FadeFrame < 0 {
			result.FadeFrame = info.Frame
		}
		result.Frames++
		result.Final = info.Phase
		result.Elapsed = info.Now
		clock.Advance()
	}

	return result, nil
}
