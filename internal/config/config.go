package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultObserverRadiusAU = 1.0
	DefaultObserverAngleDeg = 0.0
	DefaultPlanetAngleDeg   = 90.0
	DefaultPlanetRadiusAU   = 0.72

	// Slider bounds and steps for the presentation layer. The calculator
	// itself accepts any positive radius; clamping happens here.
	MinObserverRadiusAU = 0.3
	MaxObserverRadiusAU = 2.0
	DefaultRadiusStepAU = 0.1
	DefaultAngleStepDeg = 10.0
)

// Scenario is one lab configuration: where the observer sits and where the
// planet is along its fixed orbit.
type Scenario struct {
	ObserverRadiusAU float64 `yaml:"observer_radius_au" json:"observer_radius_au"`
	ObserverAngleDeg float64 `yaml:"observer_angle_deg" json:"observer_angle_deg"`
	PlanetAngleDeg   float64 `yaml:"planet_angle_deg" json:"planet_angle_deg"`
	PlanetRadiusAU   float64 `yaml:"planet_radius_au" json:"planet_radius_au"`
	RadiusStepAU     float64 `yaml:"radius_step_au" json:"radius_step_au"`
	AngleStepDeg     float64 `yaml:"angle_step_deg" json:"angle_step_deg"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		ObserverRadiusAU: DefaultObserverRadiusAU,
		ObserverAngleDeg: DefaultObserverAngleDeg,
		PlanetAngleDeg:   DefaultPlanetAngleDeg,
		PlanetRadiusAU:   DefaultPlanetRadiusAU,
		RadiusStepAU:     DefaultRadiusStepAU,
		AngleStepDeg:     DefaultAngleStepDeg,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.Clamp()
	return s, nil
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clamp forces the observer radius into the slider range and normalizes
// angles into [0, 360). Zero steps fall back to defaults.
func (s *Scenario) Clamp() {
	if s.ObserverRadiusAU < MinObserverRadiusAU {
		s.ObserverRadiusAU = MinObserverRadiusAU
	}
	if s.ObserverRadiusAU > MaxObserverRadiusAU {
		s.ObserverRadiusAU = MaxObserverRadiusAU
	}
	if s.PlanetRadiusAU <= 0 {
		s.PlanetRadiusAU = DefaultPlanetRadiusAU
	}
	s.ObserverAngleDeg = normalizeAngle(s.ObserverAngleDeg)
	s.PlanetAngleDeg = normalizeAngle(s.PlanetAngleDeg)
	if s.RadiusStepAU <= 0 {
		s.RadiusStepAU = DefaultRadiusStepAU
	}
	if s.AngleStepDeg <= 0 {
		s.AngleStepDeg = DefaultAngleStepDeg
	}
}

func normalizeAngle(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}
