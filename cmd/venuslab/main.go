package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jmpark/venuslab/internal/config"
	"github.com/jmpark/venuslab/internal/journal"
	"github.com/jmpark/venuslab/internal/orbital"
	"github.com/jmpark/venuslab/internal/storage"
	"github.com/jmpark/venuslab/internal/sweep"
	"github.com/jmpark/venuslab/internal/theory"
	"github.com/jmpark/venuslab/internal/viz"
)

var (
	dataDir        string
	configFile     string
	preset         string
	observerRadius float64
	observerAngle  float64
	planetAngle    float64
	sweepStep      float64
	asJSON         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "venuslab",
		Short: "inner-planet phase and theory-compatibility lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(scenario, dataDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".venuslab", "data directory for saved sessions")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named observer preset")
	rootCmd.PersistentFlags().Float64Var(&observerRadius, "observer-radius", config.DefaultObserverRadiusAU, "observer orbit radius (AU)")
	rootCmd.PersistentFlags().Float64Var(&observerAngle, "observer-angle", config.DefaultObserverAngleDeg, "observer orbit angle (degrees)")
	rootCmd.PersistentFlags().Float64Var(&planetAngle, "planet-angle", config.DefaultPlanetAngleDeg, "planet orbit angle (degrees)")

	observeCmd := &cobra.Command{
		Use:   "observe",
		Short: "compute one observation and print it",
		RunE:  runObserve,
	}
	observeCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the planet through a full orbit",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 2.0, "planet angle step (degrees)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list observer presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOBSERVER R\tPLANET θ")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f AU\t%.0f°\n", name, p.ObserverRadiusAU, p.PlanetAngleDeg)
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export a session as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [session_id]",
		Short: "export a session as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSVStdout(args[0])
		},
	}

	rootCmd.AddCommand(observeCmd, sweepCmd, presetsCmd, listCmd, exportCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario resolves preset, config file, and flags in rising priority.
func loadScenario(cmd *cobra.Command) (*config.Scenario, error) {
	scenario := config.DefaultScenario()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		scenario = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		scenario = loaded
	}

	if cmd.Flags().Changed("observer-radius") {
		scenario.ObserverRadiusAU = observerRadius
	}
	if cmd.Flags().Changed("observer-angle") {
		scenario.ObserverAngleDeg = observerAngle
	}
	if cmd.Flags().Changed("planet-angle") {
		scenario.PlanetAngleDeg = planetAngle
	}
	scenario.Clamp()

	return scenario, nil
}

func runObserve(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	observer := orbital.OrbitPosition{RadiusAU: scenario.ObserverRadiusAU, AngleDeg: scenario.ObserverAngleDeg}
	planet := orbital.OrbitPosition{RadiusAU: scenario.PlanetRadiusAU, AngleDeg: scenario.PlanetAngleDeg}

	obs, err := orbital.Observe(observer, planet)
	if err != nil {
		return err
	}
	verdict := theory.Evaluate(obs.PhaseAngle, observer.RadiusAU, planet.RadiusAU)

	if asJSON {
		entry := journal.Entry{Observer: observer, Planet: planet, Observation: obs, Verdict: verdict}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(storage.NewEntryRecord(entry))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "observer\t%.2f AU @ %.1f°\n", observer.RadiusAU, observer.AngleDeg)
	fmt.Fprintf(w, "planet\t%.2f AU @ %.1f°\n", planet.RadiusAU, planet.AngleDeg)
	fmt.Fprintf(w, "phase angle\t%.2f°  (%s)\n", orbital.Degrees(obs.PhaseAngle), orbital.ClassifyPhase(obs.PhaseAngle))
	fmt.Fprintf(w, "illuminated\t%.1f%%\n", obs.IlluminatedFraction*100)
	fmt.Fprintf(w, "angular diameter\t%.1f\"\n", orbital.Arcseconds(obs.AngularDiameter))
	fmt.Fprintf(w, "elongation\t%.2f°\n", orbital.Degrees(obs.Elongation))
	fmt.Fprintf(w, "distance\t%.4f AU\n", obs.ObserverPlanetAU)
	fmt.Fprintf(w, "magnitude\t%+.2f\n", obs.ApparentMagnitude)
	fmt.Fprintf(w, "geocentric\t%v  (%s)\n", verdict.GeocentricCompatible, verdict.GeocentricRationale)
	fmt.Fprintf(w, "heliocentric\t%v  (%s)\n", verdict.HeliocentricCompatible, verdict.HeliocentricRationale)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	observer := orbital.OrbitPosition{RadiusAU: scenario.ObserverRadiusAU, AngleDeg: scenario.ObserverAngleDeg}
	result, err := sweep.Run(observer, scenario.PlanetRadiusAU, sweepStep)
	if err != nil {
		return err
	}
	if len(result.Samples) == 0 {
		return fmt.Errorf("sweep produced no usable samples")
	}

	fmt.Printf("observer at %.2f AU, planet orbit %.2f AU, step %.1f°\n\n",
		observer.RadiusAU, scenario.PlanetRadiusAU, result.StepDeg)

	plots := []struct {
		caption string
		pick    func(sweep.Sample) float64
	}{
		{"phase angle (deg) vs planet angle", func(s sweep.Sample) float64 { return orbital.Degrees(s.Observation.PhaseAngle) }},
		{"illuminated fraction vs planet angle", func(s sweep.Sample) float64 { return s.Observation.IlluminatedFraction }},
		{"elongation (deg) vs planet angle", func(s sweep.Sample) float64 { return orbital.Degrees(s.Observation.Elongation) }},
		{"distance (AU) vs planet angle", func(s sweep.Sample) float64 { return s.Observation.ObserverPlanetAU }},
	}

	for _, p := range plots {
		graph := asciigraph.Plot(result.Series(p.pick),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "max elongation\t%.2f°\n", orbital.Degrees(result.MaxElongation))
	fmt.Fprintf(w, "distance range\t%.3f – %.3f AU\n", result.MinDistanceAU, result.MaxDistanceAU)
	fmt.Fprintf(w, "geocentric-compatible angles\t%.1f%%\n", result.GeocentricFraction*100)
	if result.Skipped > 0 {
		fmt.Fprintf(w, "skipped samples\t%d (degenerate)\n", result.Skipped)
	}
	return w.Flush()
}

func listSessions(cmd *cobra.Command, args []string) error {
	sessions, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no saved sessions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tENTRIES\tPLANET R")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f AU\n",
			s.ID,
			s.Created.Format("2006-01-02 15:04:05"),
			s.Entries,
			s.PlanetRadiusAU,
		)
	}
	return w.Flush()
}
