package core

import (
	"testing"
	"time"
)

func TestIntervalFiresOncePerPeriod(t *testing.T) {
	start := time.Unix(1000, 0)
	iv := NewInterval(100 * time.Millisecond)
	if iv.Due(start) {
		t.Fatal("disarmed interval must not fire")
	}
	iv.Arm(start)
	if iv.Due(start.Add(99 * time.Millisecond)) {
		t.Fatal("interval fired before its period elapsed")
	}
	if !iv.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("interval did not fire after one period")
	}
	if iv.Due(start.Add(150 * time.Millisecond)) {
		t.Fatal("interval fired twice within one period")
	}
	if !iv.Due(start.Add(200 * time.Millisecond)) {
		t.Fatal("interval did not fire after the second period")
	}
}

func TestIntervalDoesNotReplayMissedPeriods(t *testing.T) {
	start := time.Unix(1000, 0)
	iv := NewInterval(10 * time.Millisecond)
	iv.Arm(start)
	late := start.Add(time.Second)
	if !iv.Due(late) {
		t.Fatal("late interval must fire")
	}
	if iv.Due(late.Add(time.Millisecond)) {
		t.Fatal("missed periods replayed")
	}
}

func TestIntervalDisarm(t *testing.T) {
	start := time.Unix(1000, 0)
	iv := NewInterval(10 * time.Millisecond)
	iv.Arm(start)
	iv.Disarm()
	if iv.Armed() || iv.Due(start.Add(time.Hour)) {
		t.Fatal("disarmed interval fired")
	}
}

func TestIntervalSetPeriodReschedules(t *testing.T) {
	start := time.Unix(1000, 0)
	iv := NewInterval(time.Second)
	iv.Arm(start)
	iv.SetPeriod(50 * time.Millisecond)
	if !iv.Due(start.Add(50 * time.Millisecond)) {
		t.Fatal("shortened period not applied to the pending firing")
	}
}

func TestTorusWrap(t *testing.T) {
	tor := Torus{Rows: 3, Cols: 4}
	cases := []struct {
		row, col     int
		wantR, wantC int
	}{
		{-1, -1, 2, 3},
		{3, 4, 0, 0},
		{1, 2, 1, 2},
		{-4, 9, 2, 1},
	}
	for _, tc := range cases {
		r, c := tor.Wrap(tc.row, tc.col)
		if r != tc.wantR || c != tc.wantC {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantR, tc.wantC)
		}
	}
	if (Torus{Rows: 0, Cols: 5}).Len() != 0 {
		t.Fatal("empty torus must have zero length")
	}
}

func TestParameterControlAdjustClamps(t *testing.T) {
	ctrl := ParameterControl{Type: ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 10}
	if got := ctrl.Adjust(0.5, -1); got != 0.5 {
		t.Fatalf("Adjust below min = %v, want 0.5", got)
	}
	if got := ctrl.Adjust(9.5, 3); got != 10 {
		t.Fatalf("Adjust above max = %v, want 10", got)
	}
	if got := ctrl.Adjust(1, 1); got != 1.5 {
		t.Fatalf("Adjust = %v, want 1.5", got)
	}
}

func TestParameterControlCycleWraps(t *testing.T) {
	ctrl := ParameterControl{Type: ParamTypeChoice, Choices: []string{"a", "b", "c"}}
	if got := ctrl.Cycle("c", 1); got != "a" {
		t.Fatalf("Cycle forward = %q, want a", got)
	}
	if got := ctrl.Cycle("a", -1); got != "c" {
		t.Fatalf("Cycle backward = %q, want c", got)
	}
}
