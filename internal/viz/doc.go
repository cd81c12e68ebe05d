// Package viz renders the venuslab terminal interface.
//
// The interactive [Model] is a bubbletea program: a plan view of the two
// orbits on a braille [Canvas], the planet's disk as the observer sees it,
// live derived metrics, and the theory-compatibility verdict, all driven
// by slider-style key adjustments.
//
// Rendering helpers ([RenderPlanView], [RenderPhaseDisk]) are plain
// string producers so they stay testable without a terminal.
package viz
