package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jmpark/venuslab/internal/config"
	"github.com/jmpark/venuslab/internal/journal"
	"github.com/jmpark/venuslab/internal/orbital"
)

// Store persists recorded observation sessions under a base directory:
// one directory per session holding metadata.json and entries.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID             string          `json:"id"`
	Created        time.Time       `json:"created"`
	Scenario       config.Scenario `json:"scenario"`
	PlanetRadiusAU float64         `json:"planet_radius_au"`
	Entries        int             `json:"entries"`
}

var csvHeader = []string{
	"recorded", "observer_radius_au", "observer_angle_deg", "planet_angle_deg",
	"phase_angle_deg", "illuminated_fraction", "angular_diameter_arcsec",
	"elongation_deg", "distance_au", "apparent_magnitude",
	"geocentric_compatible", "heliocentric_compatible", "case",
}

// Save writes the journal out as a new session and returns its id.
func (s *Store) Save(scenario *config.Scenario, j *journal.Journal) (string, error) {
	sessionID := fmt.Sprintf("session_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, sessionID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:             sessionID,
		Created:        time.Now(),
		Scenario:       *scenario,
		PlanetRadiusAU: scenario.PlanetRadiusAU,
		Entries:        j.Len(),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "entries.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, e := range j.Entries() {
		row := []string{
			e.Recorded.Format(time.RFC3339),
			formatFloat(e.Observer.RadiusAU),
			formatFloat(e.Observer.AngleDeg),
			formatFloat(e.Planet.AngleDeg),
			formatFloat(orbital.Degrees(e.Observation.PhaseAngle)),
			formatFloat(e.Observation.IlluminatedFraction),
			formatFloat(orbital.Arcseconds(e.Observation.AngularDiameter)),
			formatFloat(orbital.Degrees(e.Observation.Elongation)),
			formatFloat(e.Observation.ObserverPlanetAU),
			formatFloat(e.Observation.ApparentMagnitude),
			strconv.FormatBool(e.Verdict.GeocentricCompatible),
			strconv.FormatBool(e.Verdict.HeliocentricCompatible),
			e.Verdict.Case.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sessionID, nil
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(sessionID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Magnitude is a float64 that survives JSON round-trips when infinite
// (encoding/json rejects +Inf outright; a new-phase snapshot carries one).
type Magnitude float64

func (m Magnitude) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(m), 1) {
		return []byte(`"inf"`), nil
	}
	return []byte(strconv.FormatFloat(float64(m), 'f', 6, 64)), nil
}

func (m *Magnitude) UnmarshalJSON(data []byte) error {
	if string(data) == `"inf"` {
		*m = Magnitude(math.Inf(1))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = Magnitude(v)
	return nil
}

// Record mirrors one CSV row with values already converted for display.
type Record struct {
	Recorded               time.Time `json:"recorded"`
	ObserverRadiusAU       float64   `json:"observer_radius_au"`
	ObserverAngleDeg       float64   `json:"observer_angle_deg"`
	PlanetAngleDeg         float64   `json:"planet_angle_deg"`
	PhaseAngleDeg          float64   `json:"phase_angle_deg"`
	IlluminatedFraction    float64   `json:"illuminated_fraction"`
	AngularDiameterArcsec  float64   `json:"angular_diameter_arcsec"`
	ElongationDeg          float64   `json:"elongation_deg"`
	DistanceAU             float64   `json:"distance_au"`
	ApparentMagnitude      Magnitude `json:"apparent_magnitude"`
	GeocentricCompatible   bool      `json:"geocentric_compatible"`
	HeliocentricCompatible bool      `json:"heliocentric_compatible"`
	Case                   string    `json:"case"`
}

func (s *Store) LoadRecords(sessionID string) ([]Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, sessionID, "entries.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			continue
		}
		recorded, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			continue
		}
		records = append(records, Record{
			Recorded:               recorded,
			ObserverRadiusAU:       parseFloat(row[1]),
			ObserverAngleDeg:       parseFloat(row[2]),
			PlanetAngleDeg:         parseFloat(row[3]),
			PhaseAngleDeg:          parseFloat(row[4]),
			IlluminatedFraction:    parseFloat(row[5]),
			AngularDiameterArcsec:  parseFloat(row[6]),
			ElongationDeg:          parseFloat(row[7]),
			DistanceAU:             parseFloat(row[8]),
			ApparentMagnitude:      Magnitude(parseFloat(row[9])),
			GeocentricCompatible:   row[10] == "true",
			HeliocentricCompatible: row[11] == "true",
			Case:                   row[12],
		})
	}
	return records, nil
}

// NewEntryRecord converts a live journal entry into the export shape.
func NewEntryRecord(e journal.Entry) Record {
	return Record{
		Recorded:               e.Recorded,
		ObserverRadiusAU:       e.Observer.RadiusAU,
		ObserverAngleDeg:       e.Observer.AngleDeg,
		PlanetAngleDeg:         e.Planet.AngleDeg,
		PhaseAngleDeg:          orbital.Degrees(e.Observation.PhaseAngle),
		IlluminatedFraction:    e.Observation.IlluminatedFraction,
		AngularDiameterArcsec:  orbital.Arcseconds(e.Observation.AngularDiameter),
		ElongationDeg:          orbital.Degrees(e.Observation.Elongation),
		DistanceAU:             e.Observation.ObserverPlanetAU,
		ApparentMagnitude:      Magnitude(e.Observation.ApparentMagnitude),
		GeocentricCompatible:   e.Verdict.GeocentricCompatible,
		HeliocentricCompatible: e.Verdict.HeliocentricCompatible,
		Case:                   e.Verdict.Case.String(),
	}
}

// ExportData is the JSON export envelope for one session.
type ExportData struct {
	Session SessionMetadata `json:"session"`
	Records []Record        `json:"records"`
}

func (s *Store) ExportJSONStdout(sessionID string) error {
	meta, err := s.Load(sessionID)
	if err != nil {
		return err
	}
	records, err := s.LoadRecords(sessionID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Session: *meta, Records: records})
}

func (s *Store) ExportCSVStdout(sessionID string) error {
	records, err := s.LoadRecords(sessionID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Recorded.Format(time.RFC3339),
			formatFloat(rec.ObserverRadiusAU),
			formatFloat(rec.ObserverAngleDeg),
			formatFloat(rec.PlanetAngleDeg),
			formatFloat(rec.PhaseAngleDeg),
			formatFloat(rec.IlluminatedFraction),
			formatFloat(rec.AngularDiameterArcsec),
			formatFloat(rec.ElongationDeg),
			formatFloat(rec.DistanceAU),
			formatFloat(float64(rec.ApparentMagnitude)),
			strconv.FormatBool(rec.GeocentricCompatible),
			strconv.FormatBool(rec.HeliocentricCompatible),
			rec.Case,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat renders +Inf magnitudes as "inf" so the CSV stays parseable.
func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func parseFloat(s string) float64 {
	if s == "inf" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
