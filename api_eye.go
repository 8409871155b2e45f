package jitter

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/jitter/axis"
	"github.com/go-gl/mathgl/mgl32"
)

// Tolerance used to decide whether something else moved the eyes
// since the last write.
const eyeRotationTolerance = 1e-6

// Small random saccades for a pair of eye nodes. Every few seconds a
// new look direction is picked within Range degrees. If an animation
// or IK rotated the eyes since the last tick, the saccade is applied
// on top of that rotation instead of replacing it.
type Eye struct {
	Left, Right Node

	// Maximum half-amplitude in degrees, X for yaw and Y for pitch.
	Range ebimath.Vector

	// Seconds between saccades.
	Interval FloatRange

	Magnification float64

	rng     Rand
	timer   float64
	current mgl32.Quat
	prev    mgl32.Quat
	active  bool

	// applies to the next saccade only
	onceMagnification float64
}

var _ Component = (*Eye)(nil)

// Creates an eye component with default ranges. If rng is nil a
// time-seeded default is used.
func NewEye(left, right Node, rng Rand) *Eye {
	interval := NewFloatRange(0.04, 3, false, false)
	interval.Min, interval.Max = 0.5, 1
	return &Eye{
		Left:          left,
		Right:         right,
		Range:         ebimath.V(2, 1),
		Interval:      interval,
		Magnification: 1,
		rng:           randOrDefault(rng),
		current:       mgl32.QuatIdent(),
		prev:          mgl32.QuatIdent(),

		onceMagnification: 1,
	}
}

// Returns the rotation picked by the last saccade.
func (self *Eye) Saccade() mgl32.Quat { return self.current }

func (self *Eye) OnInit() {
	self.Interval.ClampToLimits()
	self.timer = 0
	self.current = mgl32.QuatIdent()
	if self.Left != nil {
		self.prev = self.Left.Rotation()
	}
	self.active = true
}

func (self *Eye) OnTick(dt float64) {
	if !self.active || self.Left == nil || self.Right == nil {
		return
	}

	self.timer -= dt
	if self.timer < 0 {
		self.timer = self.Interval.Sample(self.rng)
		pitch := (self.rng.Float64()*2 - 1) * self.Range.Y
		yaw := (self.rng.Float64()*2 - 1) * self.Range.X
		mag := self.Magnification * self.onceMagnification
		self.onceMagnification = 1
		self.current = eulerDegrees(pitch*mag, yaw*mag, 0)
		if !self.movedExternally() {
			self.Left.SetRotation(self.current)
			self.Right.SetRotation(self.current)
			self.prev = self.current
		}
	}

	if self.movedExternally() {
		self.Left.SetRotation(self.Left.Rotation().Mul(self.current))
		self.Right.SetRotation(self.Right.Rotation().Mul(self.current))
	}
	self.prev = self.Left.Rotation()
}

func (self *Eye) OnConfigChanged() {
	self.Interval.ClampToLimits()
	self.Magnification = max(0, self.Magnification)
	self.Range = ebimath.V(ebimath.Abs(self.Range.X), ebimath.Abs(self.Range.Y))
}

func (self *Eye) OnTeardown() { self.active = false }

// Saccades have no loop of their own, PlayLoop and FadeIn just resume
// them.
func (self *Eye) PlayLoop(magnification ...float64) {
	mag := magnificationArg(magnification)
	self.Magnification = mag
	self.active = true
}

func (self *Eye) StopLoop()               { self.active = false }
func (self *Eye) FadeIn(seconds float64)  { self.active = true }
func (self *Eye) FadeOut(seconds float64) { self.active = false }

// Forces a new saccade on the next tick, with its angles scaled by
// the given magnification on top of the component's own.
func (self *Eye) PlayOnce(magnification ...float64) {
	self.onceMagnification = magnificationArg(magnification)
	self.timer = 0
}

func (self *Eye) Initialize() {
	self.active = false
	self.timer = 0
	self.onceMagnification = 1
}

func (self *Eye) movedExternally() bool {
	rot := self.Left.Rotation()
	for i := range 4 {
		if ebimath.Abs(float64(component(rot, i)-component(self.prev, i))) > eyeRotationTolerance {
			return true
		}
	}
	return false
}

func component(q mgl32.Quat, i int) float32 {
	if i == 3 {
		return q.W
	}
	return q.V[i]
}

func eulerDegrees(x, y, z float64) mgl32.Quat {
	return axis.EulerToQuat(mgl32.Vec3{float32(x), float32(y), float32(z)})
}
