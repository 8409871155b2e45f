package jitter

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"testing"

	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
	"github.com/edwinsyarief/jitter/easing"
	"github.com/go-gl/mathgl/mgl32"
)

// always returns the same value
type fixedRand float64

func (self fixedRand) Float64() float64 { return float64(self) }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// loop parameter with a single fixed period, no interval and the
// given shape, amplitude and offset
func fixedLoopParam(period, amplitude, offset float64, shape curve.Keyframes) *Parameter {
	param := NewParameter(shape, axis.Unit, true)
	param.Period.SetFixed(period)
	param.Interval.SetFixed(0)
	param.Amplitude.SetFixed(amplitude)
	param.Offset.SetFixed(offset)
	param.PeriodEasing = easing.None
	param.AmplitudeEasing = easing.None
	param.OffsetEasing = easing.None
	return param
}

func fixedOnceParam(period, amplitude float64) *Parameter {
	param := NewParameter(curve.Triangle(), axis.Unit, false)
	param.Period.SetFixed(period)
	param.Interval.SetFixed(0)
	param.Amplitude.SetFixed(amplitude)
	param.Offset.SetFixed(0)
	return param
}

// redirects the package logger to a buffer for the duration of the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buffer bytes.Buffer
	previous := GetLogger()
	SetLogger(log.New(&buffer, "", 0))
	t.Cleanup(func() { SetLogger(previous) })
	return &buffer
}

// component-wise absolute tolerance, mgl32's own helpers are relative
func vecNear(a, b mgl32.Vec3, tolerance float64) bool {
	for i := range 3 {
		if !approx(float64(a[i]), float64(b[i]), tolerance) {
			return false
		}
	}
	return true
}

func quatNear(a, b mgl32.Quat, tolerance float64) bool {
	return approx(float64(a.W), float64(b.W), tolerance) && vecNear(a.V, b.V, tolerance)
}
