package models

import (
	"iter"
	"slices"
	"time"
)

// trailingPointGap suppresses the live "now" point when the latest log is this recent.
const trailingPointGap = 60 * time.Second

// DatePoint is one sample of an objective's progress curve.
type DatePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// valueAt returns the newValue of the latest log dated on or before at. Among
// logs sharing that date the lowest index, the most recently inserted, wins.
// Without a qualifying log the value is 0.
func (kr KeyResult) valueAt(at time.Time) float64 {
	var best *ActivityLog
	for i := range kr.Logs {
		l := &kr.Logs[i]
		if l.Date.After(at) {
			continue
		}
		if best == nil || l.Date.After(best.Date) {
			best = l
		}
	}
	if best == nil {
		return 0
	}
	return best.NewValue
}

// ProgressAt reconstructs the objective's weighted progress as it stood at
// the given instant, using only the key result logs.
func (o Objective) ProgressAt(at time.Time) float64 {
	progress := make([]float64, len(o.KeyResults))
	weights := make([]float64, len(o.KeyResults))
	for i, kr := range o.KeyResults {
		progress[i] = ratio(kr.valueAt(at), kr.TargetValue)
		weights[i] = kr.Weight
	}
	return weightedMean(progress, weights)
}

// logDates returns the distinct log instants across all key results, ascending.
func (o Objective) logDates() []time.Time {
	seen := make(map[int64]bool)
	var dates []time.Time
	for _, kr := range o.KeyResults {
		for _, l := range kr.Logs {
			key := l.Date.UnixNano()
			if seen[key] {
				continue
			}
			seen[key] = true
			dates = append(dates, l.Date)
		}
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates
}

func (o Objective) historyPoints(now time.Time) []DatePoint {
	points := []DatePoint{{Date: o.StartDate, Value: 0}}
	for _, d := range o.logDates() {
		// Logs predating the objective still feed later reconstructions but
		// do not get a point of their own, so the curve always opens at 0.
		if d.Before(o.StartDate) {
			continue
		}
		points = append(points, DatePoint{Date: d, Value: o.ProgressAt(d)})
	}
	if last := points[len(points)-1]; last.Date.Before(now.Add(-trailingPointGap)) {
		points = append(points, DatePoint{Date: now, Value: o.Progress()})
	}
	slices.SortStableFunc(points, func(a, b DatePoint) int { return a.Date.Compare(b.Date) })
	return points
}

// ProgressHistoryAt yields the objective's progress curve as of now in
// ascending date order. The sequence is recomputed on every range.
func (o Objective) ProgressHistoryAt(now time.Time) iter.Seq[DatePoint] {
	return func(yield func(DatePoint) bool) {
		for _, p := range o.historyPoints(now) {
			if !yield(p) {
				return
			}
		}
	}
}

// ProgressHistory is ProgressHistoryAt with the clock read when ranging starts.
func (o Objective) ProgressHistory() iter.Seq[DatePoint] {
	return func(yield func(DatePoint) bool) {
		o.ProgressHistoryAt(time.Now())(yield)
	}
}
