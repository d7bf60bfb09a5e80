package automation

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
	"github.com/san-kum/hidden/internal/sim"
)

// Scenario is a scripted visitor loaded from YAML: a sequence of steps,
// each holding one kind of input for a number of frames.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one stretch of scripted input.
//
//	script: still | tap | orbit
type Step struct {
	Script string  `yaml:"script"`
	Frames int     `yaml:"frames"`
	Every  int     `yaml:"every"`  // tap
	Hold   int     `yaml:"hold"`   // tap
	Period int     `yaml:"period"` // orbit
	Radius float64 `yaml:"radius"` // orbit
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: scenario %q has no steps", dynamo.ErrInvalidConfig, s.Name)
	}
	for i, step := range s.Steps {
		if step.Frames <= 0 {
			return fmt.Errorf("%w: step %d: frames must be positive", dynamo.ErrInvalidConfig, i+1)
		}
		if _, err := step.script(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Frames is the total length of all steps.
func (s *Scenario) Frames() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

func (st Step) script() (sim.Script, error) {
	switch st.Script {
	case "", "still":
		return sim.Still{}, nil
	case "tap":
		return sim.Tap{Every: st.Every, Hold: st.Hold}, nil
	case "orbit":
		return sim.Orbit{Period: st.Period, Radius: st.Radius}, nil
	}
	return nil, fmt.Errorf("%w: script %q", dynamo.ErrUnknownScenario, st.Script)
}

// Script strings the steps together. Frames past the last step are still.
func (s *Scenario) Script() (Sequence, error) {
	seq := make(Sequence, 0, len(s.Steps))
	start := 0
	for i, step := range s.Steps {
		sc, err := step.script()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		seq = append(seq, segment{start: start, end: start + step.Frames, script: sc})
		start += step.Frames
	}
	return seq, nil
}

type segment struct {
	start, end int
	script     sim.Script
}

// Sequence is a sim.Script that hands each frame to the step covering it,
// with frames counted from the start of that step.
type Sequence []segment

func (q Sequence) Input(frame int, geom physics.Geometry) physics.Pointer {
	for _, seg := range q {
		if frame >= seg.start && frame < seg.end {
			return seg.script.Input(frame-seg.start, geom)
		}
	}
	return physics.Pointer{}
}

// RunScenario plays the whole scenario headless. rc supplies the seed,
// screen and frame rate; its frame count and script are replaced.
func RunScenario(ctx context.Context, s *Scenario, rc sim.RunConfig, observers ...sim.Observer) (*sim.Result, error) {
	seq, err := s.Script()
	if err != nil {
		return nil, err
	}
	rc.Frames = s.Frames()
	rc.Script = seq

	runner := sim.NewRunner()
	for _, o := range observers {
		runner.AddObserver(o)
	}
	return runner.Run(ctx, rc)
}
