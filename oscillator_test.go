package jitter

import (
	"math"
	"testing"

	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
	"github.com/edwinsyarief/jitter/easing"
)

func TestOscillatorTimerMonotonicAndWraps(t *testing.T) {
	param := fixedLoopParam(1, 1, 0, curve.Triangle())
	param.Interval.SetFixed(0.5)
	osc := NewOscillator(param, seeded(1))

	rollovers := 0
	prev := osc.Timer()
	for range 600 {
		if osc.AdvanceLoop(1.0 / 60.0) {
			rollovers += 1
			if osc.Timer() != 0 {
				t.Fatalf("timer after rollover = %v", osc.Timer())
			}
		} else if osc.Timer() < prev {
			t.Fatalf("timer went backwards: %v -> %v", prev, osc.Timer())
		}
		prev = osc.Timer()
	}
	// 10s with 1.5s cycles
	if rollovers < 6 || rollovers > 7 {
		t.Fatalf("got %d rollovers", rollovers)
	}
}

func TestOscillatorWeightContinuousAcrossRollover(t *testing.T) {
	param := NewParameter(curve.UpDown5(), axis.Unit, true)
	param.Interval.SetFixed(0)
	param.Amplitude.Min, param.Amplitude.Max = 0.2, 0.7
	param.Offset.Min, param.Offset.Max = 0, 0.3
	osc := NewOscillator(param, seeded(7))

	rollovers := 0
	before := osc.Weight(0, 1)
	for range 2000 {
		rolled := osc.AdvanceLoop(1.0 / 60.0)
		after := osc.Weight(0, 1)
		if rolled {
			rollovers += 1
			if !approx(before, after, 1e-9) {
				t.Fatalf("weight jumped at rollover: %v -> %v", before, after)
			}
		}
		before = after
	}
	if rollovers == 0 {
		t.Fatal("no rollover happened")
	}
}

func TestOscillatorWeight(t *testing.T) {
	param := fixedLoopParam(1, 1, 0, curve.Triangle())
	param.Magnification = 0.5
	osc := NewOscillator(param, fixedRand(0))
	osc.AdvanceLoop(0.5)
	if got := osc.Weight(0, 1); !approx(got, 0.5, 1e-12) {
		t.Fatalf("weight at the peak = %v, want 0.5", got)
	}

	param.Offset.Max = 0.8
	param.Offset.Min = 0.8
	osc = NewOscillator(param, fixedRand(0))
	osc.AdvanceLoop(0.5)
	if got := osc.Weight(0, 1); !approx(got, 0.5, 1e-12) {
		t.Fatalf("weight should be clamped before magnification, got %v", got)
	}
}

func TestOscillatorDegeneratePeriod(t *testing.T) {
	param := fixedLoopParam(1, 1, 0.25, curve.Triangle())
	osc := NewOscillator(param, fixedRand(0))
	osc.curPeriod, osc.nextPeriod = 0, 0

	if got := osc.Weight(0, 1); got != 0.25 {
		t.Fatalf("weight with zero period = %v, want the offset", got)
	}
	osc.AdvanceLoop(1.0 / 60.0)
	if math.IsNaN(osc.Timer()) || math.IsInf(osc.Timer(), 0) {
		t.Fatalf("timer = %v", osc.Timer())
	}
	if osc.Timer() != 1 {
		t.Fatalf("timer = %v, want the end of the active phase", osc.Timer())
	}
}

func TestOscillatorOnce(t *testing.T) {
	param := fixedOnceParam(0.5, 1)
	osc := NewOscillator(param, seeded(3))

	completions := 0
	onComplete := func() { completions += 1 }
	osc.AdvanceOnce(0.1, onComplete)
	if osc.Timer() != 0 || completions != 0 {
		t.Fatal("idle oscillator advanced")
	}

	osc.ArmOnce()
	if !osc.IsProcessing() {
		t.Fatal("ArmOnce didn't start processing")
	}
	for range 120 {
		osc.AdvanceOnce(1.0/60.0, onComplete)
	}
	if completions != 1 {
		t.Fatalf("onComplete called %d times", completions)
	}
	if osc.IsProcessing() || osc.Timer() != 0 {
		t.Fatalf("once didn't go idle: processing=%v timer=%v", osc.IsProcessing(), osc.Timer())
	}
}

func TestOscillatorFastForward(t *testing.T) {
	param := fixedLoopParam(2, 1, 0, curve.Triangle())
	param.Interval.SetFixed(1)
	osc := NewOscillator(param, fixedRand(0))

	osc.SetFastForward(1)
	osc.AdvanceLoop(0)
	if osc.Timer() != 1 {
		t.Fatalf("timer = %v, want the end of the active phase", osc.Timer())
	}
	osc.AdvanceLoop(0)
	if osc.Timer() != 2 {
		t.Fatalf("timer = %v, want the end of the interval", osc.Timer())
	}
	if !osc.AdvanceLoop(0) {
		t.Fatal("expected a rollover")
	}
	if osc.fastForward != 0 {
		t.Fatal("fast forward not cleared on rollover")
	}
}

func TestOscillatorSyncFrom(t *testing.T) {
	leaderParam := fixedLoopParam(2, 0.8, 0.1, curve.Triangle())
	followerParam := fixedLoopParam(1, 0.3, 0, curve.Triangle())
	leader := NewOscillator(leaderParam, fixedRand(0))
	follower := NewOscillator(followerParam, fixedRand(0))
	follower.AdvanceLoop(0.3)

	follower.SyncFrom(leader, true, false)
	if follower.Timer() != 0 {
		t.Fatal("SyncFrom didn't restart the cycle")
	}
	if follower.curPeriod != 2 || follower.curAmplitude != 0.3 {
		t.Fatalf("period %v amplitude %v", follower.curPeriod, follower.curAmplitude)
	}

	follower = NewOscillator(followerParam, fixedRand(0))
	follower.SyncFrom(leader, false, true)
	if follower.curPeriod != 1 || follower.curAmplitude != 0.8 || follower.curOffset != 0.1 {
		t.Fatalf("period %v amplitude %v offset %v", follower.curPeriod, follower.curAmplitude, follower.curOffset)
	}
}

func TestOscillatorEffectivePeriodEasing(t *testing.T) {
	param := fixedLoopParam(1, 1, 0, curve.Triangle())
	param.PeriodEasing = easing.Linear
	osc := NewOscillator(param, fixedRand(0))
	osc.curPeriod, osc.nextPeriod = 1, 3
	osc.timer = 0.5
	if got := osc.EffectivePeriod(); !approx(got, 2, 1e-12) {
		t.Fatalf("effective period = %v", got)
	}
}
