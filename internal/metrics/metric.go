package metrics

import (
	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/sim"
)

// Metric is a frame observer that boils a session down to one number.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Population tracks how many particles are alive, keeping a bounded
// history for plotting.
type Population struct {
	history []float64
	limit   int
	last    int
}

// NewPopulation keeps at most limit samples; limit <= 0 keeps everything.
func NewPopulation(limit int) *Population {
	return &Population{limit: limit}
}

func (p *Population) Name() string { return "population" }

func (p *Population) OnFrame(_ *physics.Field, info sim.FrameInfo) {
	p.last = info.Population
	p.history = append(p.history, float64(info.Population))
	if p.limit > 0 && len(p.history) > p.limit {
		p.history = p.history[len(p.history)-p.limit:]
	}
}

func (p *Population) Value() float64     { return float64(p.last) }
func (p *Population) History() []float64 { return p.history }

func (p *Population) Reset() {
	p.history = p.history[:0]
	p.last = 0
}

// FadeFrame records the first frame on which the session was faded.
type FadeFrame struct {
	frame int
}

func NewFadeFrame() *FadeFrame { return &FadeFrame{frame: -1} }

func (f *FadeFrame) Name() string { return "fade_frame" }

func (f *FadeFrame) OnFrame(_ *physics.Field, info sim.FrameInfo) {
	if f.frame < 0 && info.Phase == sim.Faded {
		f.frame = info.Frame
	}
}

func (f *FadeFrame) Value() float64 { return float64(f.frame) }
func (f *FadeFrame) Reset()         { f.frame = -1 }
