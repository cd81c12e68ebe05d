package config

import (
	"path/filepath"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Scenario
		want Scenario
	}{
		{
			"radius below range",
			Scenario{ObserverRadiusAU: 0.1, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
			Scenario{ObserverRadiusAU: 0.3, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
		{
			"radius above range",
			Scenario{ObserverRadiusAU: 5.0, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
			Scenario{ObserverRadiusAU: 2.0, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
		{
			"negative angle wraps",
			Scenario{ObserverRadiusAU: 1.0, ObserverAngleDeg: -90, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
			Scenario{ObserverRadiusAU: 1.0, ObserverAngleDeg: 270, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
		{
			"large angle wraps",
			Scenario{ObserverRadiusAU: 1.0, PlanetAngleDeg: 450, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
			Scenario{ObserverRadiusAU: 1.0, PlanetAngleDeg: 90, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
		{
			"zero steps fall back to defaults",
			Scenario{ObserverRadiusAU: 1.0, PlanetRadiusAU: 0.72},
			Scenario{ObserverRadiusAU: 1.0, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
		{
			"zero planet radius falls back",
			Scenario{ObserverRadiusAU: 1.0, RadiusStepAU: 0.1, AngleStepDeg: 10},
			Scenario{ObserverRadiusAU: 1.0, PlanetRadiusAU: 0.72, RadiusStepAU: 0.1, AngleStepDeg: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Clamp()
			if s != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	orig := &Scenario{
		ObserverRadiusAU: 1.52,
		ObserverAngleDeg: 30,
		PlanetAngleDeg:   120,
		PlanetRadiusAU:   0.72,
		RadiusStepAU:     0.05,
		AngleStepDeg:     5,
	}
	if err := Save(path, orig); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *loaded != *orig {
		t.Errorf("Load() = %+v, want %+v", loaded, orig)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	if err := Save(path, &Scenario{ObserverRadiusAU: 9.0, ObserverAngleDeg: -45}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.ObserverRadiusAU != MaxObserverRadiusAU {
		t.Errorf("observer radius = %g, want clamped to %g", loaded.ObserverRadiusAU, MaxObserverRadiusAU)
	}
	if loaded.ObserverAngleDeg != 315 {
		t.Errorf("observer angle = %g, want 315", loaded.ObserverAngleDeg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("mercury")
	if a == nil {
		t.Fatal("mercury preset missing")
	}
	if a.ObserverRadiusAU != 0.39 {
		t.Errorf("mercury radius = %g, want 0.39", a.ObserverRadiusAU)
	}
	if a.RadiusStepAU != DefaultRadiusStepAU || a.AngleStepDeg != DefaultAngleStepDeg {
		t.Errorf("preset copy missing default steps: %+v", a)
	}

	a.ObserverRadiusAU = 99
	if b := GetPreset("mercury"); b.ObserverRadiusAU == 99 {
		t.Errorf("mutating one preset copy leaked into the shared map")
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if GetPreset("pluto") != nil {
		t.Errorf("expected nil for an unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets() returned %d names, want %d", len(names), len(Presets))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"mercury", "venus", "earth", "mars", "galileo"} {
		if !seen[want] {
			t.Errorf("preset %q missing from list", want)
		}
	}
}
