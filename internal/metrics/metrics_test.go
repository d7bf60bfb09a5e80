package metrics

import (
	"context"
	"testing"

	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/sim"
)

func runWith(t *testing.T, frames int, script sim.Script, ms ...Metric) *sim.Result {
	t.Helper()
	cfg := sim.DefaultRunConfig()
	cfg.Frames = frames
	cfg.Script = script
	r := sim.NewRunner()
	for _, m := range ms {
		r.AddObserver(m)
	}
	res, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

func TestPopulationAndFade(t *testing.T) {
	pop := NewPopulation(100)
	fade := NewFadeFrame()
	res := runWith(t, 3700, sim.Still{}, pop, fade)

	if pop.Value() != 0 {
		t.Errorf("expected empty field at the end, got %v", pop.Value())
	}
	if len(pop.History()) != 100 {
		t.Errorf("expected history capped at 100, got %d", len(pop.History()))
	}
	if int(fade.Value()) != res.FadeFrame {
		t.Errorf("fade frame %v disagrees with runner %d", fade.Value(), res.FadeFrame)
	}

	pop.Reset()
	fade.Reset()
	if len(pop.History()) != 0 || fade.Value() != -1 {
		t.Error("reset did not clear state")
	}
}

func TestSpeedMetrics(t *testing.T) {
	mean := NewMeanSpeed()
	peak := NewPeakSpeed()
	runWith(t, 300, sim.Orbit{Period: 90}, mean, peak)

	if peak.Value() <= 0 || peak.Value() > physics.MaxSpeed+1e-9 {
		t.Errorf("peak speed %f outside (0, %v]", peak.Value(), physics.MaxSpeed)
	}
	if mean.Value() <= 0 || mean.Value() > peak.Value() {
		t.Errorf("mean speed %f should be positive and at most the peak %f", mean.Value(), peak.Value())
	}
	if len(mean.History()) != 300 {
		t.Errorf("expected 300 samples, got %d", len(mean.History()))
	}

	mean.Reset()
	peak.Reset()
	if mean.Value() != 0 || peak.Value() != 0 {
		t.Error("reset did not clear state")
	}
}

func TestMetricNames(t *testing.T) {
	ms := []Metric{NewPopulation(0), NewFadeFrame(), NewMeanSpeed(), NewPeakSpeed()}
	seen := map[string]bool{}
	for _, m := range ms {
		if m.Name() == "" || seen[m.Name()] {
			t.Errorf("bad or duplicate name %q", m.Name())
		}
		seen[m.Name()] = true
	}
}
