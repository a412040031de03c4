package models

import "github.com/akyairhashvil/okrt/internal/util"

// ratio is value/target capped to [0,1]; a non-positive target counts as no progress.
func ratio(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return util.Clamp(value/target, 0, 1)
}

// weightedMean aggregates per key result progress. When the weights do not
// sum to a positive total it falls back to the plain mean, and to 0 when
// there is nothing to average.
func weightedMean(progress, weights []float64) float64 {
	if len(progress) == 0 {
		return 0
	}
	var total, weighted, plain float64
	for i, p := range progress {
		total += weights[i]
		weighted += p * weights[i]
		plain += p
	}
	if total > 0 {
		return weighted / total
	}
	return plain / float64(len(progress))
}

// Progress is the completion fraction of the key result.
func (kr KeyResult) Progress() float64 {
	return ratio(kr.CurrentValue, kr.TargetValue)
}

// Progress is the weighted mean of the objective's key result progress.
func (o Objective) Progress() float64 {
	progress := make([]float64, len(o.KeyResults))
	weights := make([]float64, len(o.KeyResults))
	for i, kr := range o.KeyResults {
		progress[i] = kr.Progress()
		weights[i] = kr.Weight
	}
	return weightedMean(progress, weights)
}
