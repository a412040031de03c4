package models

import (
	"time"

	"github.com/akyairhashvil/okrt/internal/util"
)

// Health is a qualitative status derived from progress against elapsed time.
type Health string

const (
	HealthOnTrack   Health = "on_track"
	HealthAtRisk    Health = "at_risk"
	HealthOffTrack  Health = "off_track"
	HealthCompleted Health = "completed"
)

// Thresholds for the health classifier.
const (
	atRiskTimeRatio   = 0.5
	atRiskProgress    = 0.2
	offTrackTimeRatio = 0.8
	offTrackProgress  = 0.6
)

// Label returns the display text for h.
func (h Health) Label() string {
	switch h {
	case HealthAtRisk:
		return "At Risk"
	case HealthOffTrack:
		return "Off Track"
	case HealthCompleted:
		return "Completed"
	default:
		return "On Track"
	}
}

// timeRatio is elapsed/total without clamping; 1 when the span is empty or negative.
func (o Objective) timeRatio(now time.Time) float64 {
	total := o.DueDate.Sub(o.StartDate)
	if total <= 0 {
		return 1
	}
	return float64(now.Sub(o.StartDate)) / float64(total)
}

// HealthAt classifies the objective as of now. The at-risk rule is checked
// before the off-track rule.
func (o Objective) HealthAt(now time.Time) Health {
	progress := o.Progress()
	if o.IsCompleted || progress >= 1 {
		return HealthCompleted
	}
	r := o.timeRatio(now)
	switch {
	case r > atRiskTimeRatio && progress < atRiskProgress:
		return HealthAtRisk
	case r > offTrackTimeRatio && progress < offTrackProgress:
		return HealthOffTrack
	default:
		return HealthOnTrack
	}
}

// Health classifies the objective against the wall clock.
func (o Objective) Health() Health {
	return o.HealthAt(time.Now())
}

// TimeProgressAt is the elapsed fraction of the objective's span, clamped to [0,1].
func (o Objective) TimeProgressAt(now time.Time) float64 {
	return util.Clamp(o.timeRatio(now), 0, 1)
}

// TimeProgress is TimeProgressAt against the wall clock.
func (o Objective) TimeProgress() float64 {
	return o.TimeProgressAt(time.Now())
}
