package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmpark/venuslab/internal/config"
	"github.com/jmpark/venuslab/internal/journal"
	"github.com/jmpark/venuslab/internal/orbital"
	"github.com/jmpark/venuslab/internal/storage"
	"github.com/jmpark/venuslab/internal/theory"
)

type viewMode int

const (
	viewCombined viewMode = iota
	viewObserver
	viewTheory
	viewModeCount
)

func (v viewMode) String() string {
	switch v {
	case viewCombined:
		return "combined"
	case viewObserver:
		return "observer"
	case viewTheory:
		return "theory"
	default:
		return "unknown"
	}
}

type param int

const (
	paramObserverRadius param = iota
	paramObserverAngle
	paramPlanetAngle
	paramCount
)

var paramLabels = [paramCount]string{
	"observer R",
	"observer θ",
	"planet θ",
}

var presetKeys = map[string]string{
	"1": "mercury",
	"2": "venus",
	"3": "earth",
	"4": "mars",
	"5": "galileo",
}

// Model is the interactive lab: three adjustable parameters, live derived
// quantities, and a journal of recorded snapshots.
type Model struct {
	scenario *config.Scenario
	log      *journal.Journal
	store    *storage.Store

	obs     orbital.Observation
	obsErr  error
	verdict theory.Verdict

	cursor    param
	mode      viewMode
	showZones bool
	status    string

	width, height int
}

func NewModel(scenario *config.Scenario, store *storage.Store) Model {
	m := Model{
		scenario:  scenario,
		log:       journal.New(),
		store:     store,
		showZones: true,
		width:     100,
		height:    32,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if name, ok := presetKeys[key]; ok {
		if p := config.GetPreset(name); p != nil {
			*m.scenario = *p
			m.scenario.Clamp()
			m.status = "preset: " + name
			m.recompute()
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.mode = (m.mode + 1) % viewModeCount
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < paramCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1, false)
	case "right", "l":
		m.adjust(1, false)
	case "H":
		m.adjust(-1, true)
	case "L":
		m.adjust(1, true)
	case "z":
		m.showZones = !m.showZones
	case "r":
		m.record()
	case "x":
		m.log.Clear()
		m.status = "journal cleared"
	case "s":
		m.saveSession()
	}
	return m, nil
}

func (m *Model) adjust(direction float64, fine bool) {
	radiusStep := m.scenario.RadiusStepAU
	angleStep := m.scenario.AngleStepDeg
	if fine {
		radiusStep /= 10
		angleStep /= 10
	}

	switch m.cursor {
	case paramObserverRadius:
		m.scenario.ObserverRadiusAU += direction * radiusStep
	case paramObserverAngle:
		m.scenario.ObserverAngleDeg += direction * angleStep
	case paramPlanetAngle:
		m.scenario.PlanetAngleDeg += direction * angleStep
	}
	m.scenario.Clamp()
	m.status = ""
	m.recompute()
}

func (m *Model) observer() orbital.OrbitPosition {
	return orbital.OrbitPosition{RadiusAU: m.scenario.ObserverRadiusAU, AngleDeg: m.scenario.ObserverAngleDeg}
}

func (m *Model) planet() orbital.OrbitPosition {
	return orbital.OrbitPosition{RadiusAU: m.scenario.PlanetRadiusAU, AngleDeg: m.scenario.PlanetAngleDeg}
}

func (m *Model) recompute() {
	m.obs, m.obsErr = orbital.Observe(m.observer(), m.planet())
	if m.obsErr == nil {
		m.verdict = theory.Evaluate(m.obs.PhaseAngle, m.scenario.ObserverRadiusAU, m.scenario.PlanetRadiusAU)
	}
}

func (m *Model) record() {
	if m.obsErr != nil {
		m.status = "cannot record a degenerate configuration"
		return
	}
	m.log.Record(journal.Entry{
		Observer:    m.observer(),
		Planet:      m.planet(),
		Observation: m.obs,
		Verdict:     m.verdict,
	})
	m.status = fmt.Sprintf("recorded (%d entries)", m.log.Len())
}

func (m *Model) saveSession() {
	if m.log.Len() == 0 {
		m.status = "nothing to save"
		return
	}
	if err := m.store.Init(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	id, err := m.store.Save(m.scenario, m.log)
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("VENUSLAB") + "  " +
		subtitleStyle.Render("inner-planet phases and the shape of the cosmos") + "\n\n")

	switch m.mode {
	case viewCombined:
		b.WriteString(m.viewCombined())
	case viewObserver:
		b.WriteString(m.viewObserver())
	case viewTheory:
		b.WriteString(m.viewTheory())
	}

	b.WriteString("\n  " + keyHint(
		"j/k", "param", "h/l", "adjust", "H/L", "fine", "tab", m.mode.String(),
		"z", "zones", "r", "record", "x", "clear", "s", "save", "1-5", "preset", "q", "quit",
	))
	if m.status != "" {
		b.WriteString("\n  " + warnStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewCombined() string {
	plan := panelStyle.Render(RenderPlanView(m.observer(), m.planet(), m.showZones))

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.paramsPanel(),
		m.metricsPanel(),
		m.verdictSummary(),
		m.journalPanel(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, plan, " ", right)
}

func (m Model) viewObserver() string {
	if m.obsErr != nil {
		return panelStyle.Render(incompatibleStyle.Render(m.obsErr.Error()))
	}

	px, py := m.planet().Cartesian()
	sunAngle := math.Atan2(-py, -px)
	disk := RenderPhaseDisk(m.obs.PhaseAngle, sunAngle, 17)

	caption := fmt.Sprintf("phase: %s   illuminated %.1f%%   diameter %.1f\"",
		orbital.ClassifyPhase(m.obs.PhaseAngle),
		m.obs.IlluminatedFraction*100,
		orbital.Arcseconds(m.obs.AngularDiameter))

	left := panelStyle.Render(disk + "\n" + valueStyle.Render(caption))
	right := lipgloss.JoinVertical(lipgloss.Left, m.paramsPanel(), m.metricsPanel())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) viewTheory() string {
	if m.obsErr != nil {
		return panelStyle.Render(incompatibleStyle.Render(m.obsErr.Error()))
	}

	geoHeader := "geocentric  " + verdictMark(m.verdict.GeocentricCompatible)
	helioHeader := "heliocentric  " + verdictMark(m.verdict.HeliocentricCompatible)

	body := lipgloss.NewStyle().Width(36)
	geo := panelStyle.Render(selectedStyle.Render(geoHeader) + "\n\n" + body.Render(m.verdict.GeocentricRationale))
	helio := panelStyle.Render(selectedStyle.Render(helioHeader) + "\n\n" + body.Render(m.verdict.HeliocentricRationale))

	ruling := fmt.Sprintf("case: %s   phase %.1f°   observer %.2f AU vs planet %.2f AU",
		m.verdict.Case,
		orbital.Degrees(m.obs.PhaseAngle),
		m.scenario.ObserverRadiusAU, m.scenario.PlanetRadiusAU)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, geo, " ", helio),
		"  "+dimStyle.Render(ruling),
		m.paramsPanel(),
	)
}

func (m Model) paramsPanel() string {
	var b strings.Builder
	values := [paramCount]string{
		fmt.Sprintf("%5.2f AU", m.scenario.ObserverRadiusAU),
		fmt.Sprintf("%6.1f°", m.scenario.ObserverAngleDeg),
		fmt.Sprintf("%6.1f°", m.scenario.PlanetAngleDeg),
	}
	for i := param(0); i < paramCount; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ ") + selectedStyle.Render(fmt.Sprintf("%-12s", paramLabels[i])) + valueStyle.Render(values[i]))
		} else {
			b.WriteString(dimStyle.Render("  "+fmt.Sprintf("%-12s", paramLabels[i])) + dimStyle.Render(values[i]))
		}
		if i < paramCount-1 {
			b.WriteByte('\n')
		}
	}
	return panelStyle.Render(b.String())
}

func (m Model) metricsPanel() string {
	if m.obsErr != nil {
		return panelStyle.Render(incompatibleStyle.Render(m.obsErr.Error()))
	}

	magnitude := fmt.Sprintf("%+.2f", m.obs.ApparentMagnitude)
	if math.IsInf(m.obs.ApparentMagnitude, 1) {
		magnitude = "—  (new phase)"
	}

	rows := []string{
		labelStyle.Render("phase angle") + valueStyle.Render(fmt.Sprintf("%.1f°  (%s)", orbital.Degrees(m.obs.PhaseAngle), orbital.ClassifyPhase(m.obs.PhaseAngle))),
		labelStyle.Render("illuminated") + illuminationBar(m.obs.IlluminatedFraction, 14) + valueStyle.Render(fmt.Sprintf(" %5.1f%%", m.obs.IlluminatedFraction*100)),
		labelStyle.Render("ang. diameter") + valueStyle.Render(fmt.Sprintf("%.1f\"", orbital.Arcseconds(m.obs.AngularDiameter))),
		labelStyle.Render("elongation") + valueStyle.Render(fmt.Sprintf("%.1f°", orbital.Degrees(m.obs.Elongation))),
		labelStyle.Render("distance") + valueStyle.Render(fmt.Sprintf("%.3f AU", m.obs.ObserverPlanetAU)),
		labelStyle.Render("magnitude") + valueStyle.Render(magnitude),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) verdictSummary() string {
	if m.obsErr != nil {
		return ""
	}
	line := "geocentric " + verdictMark(m.verdict.GeocentricCompatible) +
		dimStyle.Render("   ") +
		"heliocentric " + verdictMark(m.verdict.HeliocentricCompatible)
	return panelStyle.Render(line + "\n" + dimStyle.Render(m.verdict.Case.String()))
}

func (m Model) journalPanel() string {
	if m.log.Len() == 0 {
		return panelStyle.Render(dimStyle.Render("journal empty — press r to record"))
	}
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("journal (%d)", m.log.Len())))
	for _, e := range m.log.Tail(4) {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("R=%.2f  φ=%5.1f°  geo=%s",
			e.Observer.RadiusAU,
			orbital.Degrees(e.Observation.PhaseAngle),
			verdictMark(e.Verdict.GeocentricCompatible)))
	}
	return panelStyle.Render(b.String())
}

func verdictMark(ok bool) string {
	if ok {
		return compatibleStyle.Render("✓")
	}
	return incompatibleStyle.Render("✗")
}

// RunInteractive launches the lab TUI with the given scenario; recorded
// sessions are saved under dataDir.
func RunInteractive(scenario *config.Scenario, dataDir string) error {
	m := NewModel(scenario, storage.New(dataDir))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
