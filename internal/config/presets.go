package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/sim"
)

// Scenario is a scripted visitor for headless runs.
type Scenario struct {
	Description string
	Frames      int
	Script      sim.Script
}

var Scenarios = map[string]Scenario{
	"idle": {
		Description: "nobody touches it; the airflow fades after a minute",
		Frames:      60 * 75,
		Script:      sim.Still{},
	},
	"tap": {
		Description: "a click every thirty seconds keeps it alive",
		Frames:      60 * 150,
		Script:      sim.Tap{Every: 60 * 30, Hold: 3},
	},
	"blade": {
		Description: "continuous circular slicing through the center",
		Frames:      60 * 90,
		Script:      sim.Orbit{Period: 240},
	},
	"late-tap": {
		Description: "slices for ten seconds, then gives up",
		Frames:      60 * 80,
		Script:      sim.Orbit{Period: 180, Until: 60 * 10},
	},
}

func GetScenario(name string) (Scenario, error) {
	s, ok := Scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownScenario, name, ListScenarios())
	}
	return s, nil
}

func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
