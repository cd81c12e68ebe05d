package orbital

// Phase buckets a phase angle into the display names used by the reference
// model. The labels run new → full with increasing phase angle, which is the
// reverse of lunar convention; the classroom material defines them that way
// and the verdict text depends on the wording.
type Phase int

const (
	PhaseNew Phase = iota
	PhaseCrescent
	PhaseQuarter
	PhaseGibbous
	PhaseFull
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseCrescent:
		return "crescent"
	case PhaseQuarter:
		return "quarter"
	case PhaseGibbous:
		return "gibbous"
	case PhaseFull:
		return "full"
	default:
		return "unknown"
	}
}

// ClassifyPhase maps a phase angle in radians onto a Phase bucket.
func ClassifyPhase(phaseAngle float64) Phase {
	deg := Degrees(phaseAngle)
	switch {
	case deg < 45:
		return PhaseNew
	case deg < 90:
		return PhaseCrescent
	case deg < 135:
		return PhaseQuarter
	case deg < 180:
		return PhaseGibbous
	default:
		return PhaseFull
	}
}
