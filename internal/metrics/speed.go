package metrics

import (
	"math"

	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/sim"
)

// MeanSpeed averages particle speed over every frame that had particles.
type MeanSpeed struct {
	total   float64
	samples int
	history []float64
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) OnFrame(f *physics.Field, _ sim.FrameInfo) {
	mean, _ := f.Stats()
	m.history = append(m.history, mean)
	if f.Empty() {
		return
	}
	m.total += mean
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

// History is the per-frame mean, zero on empty frames.
func (m *MeanSpeed) History() []float64 { return m.history }

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
	m.history = m.history[:0]
}

// PeakSpeed is the fastest any particle moved in the session. It should
// never exceed physics.MaxSpeed.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) OnFrame(f *physics.Field, _ sim.FrameInfo) {
	_, peak := f.Stats()
	p.peak = math.Max(p.peak, peak)
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }
