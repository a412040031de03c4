package models

import (
	"math"
	"testing"
)

const eps = 1e-9

func krWith(current, target, weight float64) KeyResult {
	return KeyResult{CurrentValue: current, TargetValue: target, Weight: weight}
}

func TestObjectiveProgressEmpty(t *testing.T) {
	var o Objective
	if got := o.Progress(); got != 0 {
		t.Fatalf("Progress() = %v, want 0", got)
	}
}

func TestKeyResultProgressBounds(t *testing.T) {
	cases := []struct {
		name string
		kr   KeyResult
		want float64
	}{
		{"half", krWith(2, 4, 1), 0.5},
		{"over target", krWith(9, 3, 1), 1},
		{"zero target", krWith(5, 0, 1), 0},
		{"negative target", krWith(5, -2, 1), 0},
		{"negative value", krWith(-1, 4, 1), 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := tc.kr.Progress()
			if math.Abs(got-tc.want) > eps {
				t.Fatalf("Progress() = %v, want %v", got, tc.want)
			}
			if got < 0 || got > 1 {
				t.Fatalf("Progress() = %v outside [0,1]", got)
			}
		})
	}
}

func TestObjectiveProgressWeighted(t *testing.T) {
	o := Objective{KeyResults: []KeyResult{krWith(1, 1, 300), krWith(0, 1, 100)}}
	if got := o.Progress(); math.Abs(got-0.75) > eps {
		t.Fatalf("Progress() = %v, want 0.75", got)
	}
}

func TestObjectiveProgressZeroWeightFallback(t *testing.T) {
	o := Objective{KeyResults: []KeyResult{krWith(2, 10, 0), krWith(8, 10, 0)}}
	if got := o.Progress(); math.Abs(got-0.5) > eps {
		t.Fatalf("Progress() = %v, want unweighted mean 0.5", got)
	}
}

func TestObjectiveProgressNegativeTotalWeightFallsBack(t *testing.T) {
	o := Objective{KeyResults: []KeyResult{krWith(1, 1, -5), krWith(0, 1, 1)}}
	if got := o.Progress(); math.Abs(got-0.5) > eps {
		t.Fatalf("Progress() = %v, want 0.5", got)
	}
}

func TestKeyResultIsCompleted(t *testing.T) {
	if !krWith(5, 5, 1).IsCompleted() {
		t.Fatalf("expected completed at target")
	}
	if krWith(4.9, 5, 1).IsCompleted() {
		t.Fatalf("expected not completed below target")
	}
}
