package config

// Presets are named observer orbits worth jumping to: the classic thought
// experiment is re-running Galileo's observation from Mercury's or Mars's
// orbit instead of Earth's.
var Presets = map[string]*Scenario{
	"mercury": {
		ObserverRadiusAU: 0.39, ObserverAngleDeg: 0, PlanetAngleDeg: 90, PlanetRadiusAU: DefaultPlanetRadiusAU,
	},
	"venus": {
		// Co-orbital with the planet: the degenerate branch of the verdict table.
		ObserverRadiusAU: 0.72, ObserverAngleDeg: 0, PlanetAngleDeg: 90, PlanetRadiusAU: DefaultPlanetRadiusAU,
	},
	"earth": {
		ObserverRadiusAU: 1.0, ObserverAngleDeg: 0, PlanetAngleDeg: 90, PlanetRadiusAU: DefaultPlanetRadiusAU,
	},
	"mars": {
		ObserverRadiusAU: 1.52, ObserverAngleDeg: 0, PlanetAngleDeg: 90, PlanetRadiusAU: DefaultPlanetRadiusAU,
	},
	"galileo": {
		// Earth-bound observer with the planet near greatest elongation,
		// roughly what the 1610 telescope observations sampled.
		ObserverRadiusAU: 1.0, ObserverAngleDeg: 0, PlanetAngleDeg: 46, PlanetRadiusAU: DefaultPlanetRadiusAU,
	},
}

func GetPreset(name string) *Scenario {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	s := *p
	s.RadiusStepAU = DefaultRadiusStepAU
	s.AngleStepDeg = DefaultAngleStepDeg
	return &s
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
