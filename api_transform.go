package jitter

import (
	"fmt"

	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var _ Component = (*Transform)(nil)

// The transform property animated by a [Transform] component.
type Property uint8

const (
	Position Property = iota
	Rotation          // Euler angles in degrees
	Scale

	propertyEndSentinel
)

// Returns a string representation of the property.
func (self Property) String() string {
	switch self {
	case Position:
		return "Position"
	case Rotation:
		return "Rotation"
	case Scale:
		return "Scale"
	default:
		panic("invalid Property")
	}
}

// Parses a property from its [Property.String]() representation.
func ParseProperty(name string) (Property, error) {
	for p := Position; p < propertyEndSentinel; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return Position, fmt.Errorf("unknown transform property %q", name)
}

// Implements [yaml.Marshaler].
func (self Property) MarshalYAML() (any, error) {
	if self >= propertyEndSentinel {
		return nil, fmt.Errorf("invalid transform property %d", uint8(self))
	}
	return self.String(), nil
}

// Implements [yaml.Unmarshaler].
func (self *Property) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	property, err := ParseProperty(name)
	if err != nil {
		return err
	}
	*self = property
	return nil
}

// Default magnification for each property. Rotation weights are
// scaled to degrees.
func (self Property) defaultMagnification() float64 {
	if self == Rotation {
		return 30
	}
	return 1
}

// Jitters the position, rotation or scale of a [Node], with one
// loop/once pair per axis (x, y, z).
//
// Multiple Transform components can animate the same node and property:
// attach them to a parent with [Transform.Attach]. Children don't loop
// and don't write to the node, the parent adds their once weights to
// its own before writing.
type Transform struct {
	Node     Node
	Property Property
	Mode     axis.Mode

	Loops [3]*Parameter
	Onces [3]*Parameter

	SyncPeriod       bool
	SyncAmplitude    bool
	SyncEasing       bool
	OverrideOnce     bool
	PlayOnInit       bool
	LoopGroupEnabled bool
	OnceGroupEnabled bool

	// Scale applied to the combined weights before writing them. For
	// rotations this is in degrees.
	Magnification float64

	// Event callbacks, applied on OnInit and OnConfigChanged.
	Hooks Hooks

	rng      Rand
	channel  *Channel
	parent   *Transform
	children []*Transform
	refVec   mgl32.Vec3
	refQuat  mgl32.Quat
	hasRef   bool
}

// Creates a transform component with default parameters for the given
// property. If rng is nil a time-seeded default is used.
func NewTransform(node Node, property Property, rng Rand) *Transform {
	self := &Transform{
		Node:             node,
		Property:         property,
		Mode:             axis.Reference,
		SyncEasing:       true,
		PlayOnInit:       true,
		LoopGroupEnabled: true,
		OnceGroupEnabled: true,
		Magnification:    property.defaultMagnification(),
		rng:              randOrDefault(rng),
	}
	shapes := [3]curve.Keyframes{curve.Cos(), curve.Sin(), curve.Sin()}
	for i := range 3 {
		self.Loops[i] = NewParameter(shapes[i], axis.Signed, true)
		self.Onces[i] = NewParameter(curve.UpDown25(), axis.Signed, false)
	}
	return self
}

// Returns the underlying channel, or nil before OnInit.
func (self *Transform) Channel() *Channel { return self.channel }

// Returns whether the transform is attached to a parent.
func (self *Transform) IsChild() bool { return self.parent != nil }

// Returns the play state of the loop group.
func (self *Transform) State() PlayState {
	if self.channel == nil {
		return Stopped
	}
	return self.channel.State()
}

// Returns whether a once cycle is in progress on this transform or
// any of its children.
func (self *Transform) IsOnceProcessing() bool {
	if self.channel != nil && self.channel.IsOnceProcessing() {
		return true
	}
	for _, child := range self.children {
		if child.IsOnceProcessing() {
			return true
		}
	}
	return false
}

// Returns the reference position or scale used by [axis.Reference]
// mode.
func (self *Transform) ReferenceVec() mgl32.Vec3 { return self.refVec }

// Returns the reference rotation used by [axis.Reference] mode.
func (self *Transform) ReferenceQuat() mgl32.Quat { return self.refQuat }

// Captures the current node value as the new reference.
func (self *Transform) CaptureReference() {
	if self.Node == nil {
		return
	}
	switch self.Property {
	case Position:
		self.refVec = self.Node.Position()
	case Rotation:
		self.refQuat = self.Node.Rotation()
	case Scale:
		self.refVec = self.Node.Scale()
	}
	self.hasRef = true
}

// Attaches a child animating the same node and property. The child's
// loop group is disabled and its once weights are added to the ones
// of this transform. Panics if the child targets something else or
// already has a parent.
func (self *Transform) Attach(child *Transform) {
	if child == self || child.parent != nil {
		panic(invalidChild)
	}
	if child.Node != self.Node || child.Property != self.Property {
		panic(invalidChild)
	}
	child.parent = self
	child.LoopGroupEnabled = false
	for _, loop := range child.Loops {
		loop.Enabled = false
	}
	if child.channel != nil {
		child.configure()
	}
	self.children = append(self.children, child)
}

// Detaches a child previously attached with [Transform.Attach].
func (self *Transform) Detach(child *Transform) {
	for i, candidate := range self.children {
		if candidate == child {
			self.children = append(self.children[:i], self.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// --- lifecycle ---

func (self *Transform) OnInit() {
	self.validate()
	if !self.IsChild() {
		self.CaptureReference()
	}
	self.build()
	if self.PlayOnInit && !self.IsChild() {
		self.PlayLoop()
	}
}

func (self *Transform) OnTick(dt float64) {
	if self.channel == nil {
		return
	}
	self.channel.Tick(dt)
}

func (self *Transform) OnConfigChanged() {
	self.validate()
	if self.channel == nil {
		return
	}
	self.configure()
	self.channel.Refresh()
}

func (self *Transform) OnTeardown() {
	self.Initialize()
}

// --- playback ---

func (self *Transform) PlayLoop(magnification ...float64) {
	mag := magnificationArg(magnification)
	if self.channel != nil {
		self.channel.PlayLoop(mag)
	}
}

func (self *Transform) StopLoop() {
	if self.channel != nil {
		self.channel.StopLoop()
	}
}

// Fading in enables the loop group if needed. Children have no loop
// group, so it does nothing on them.
func (self *Transform) FadeIn(seconds float64) {
	if self.channel == nil || self.IsChild() {
		return
	}
	if !self.LoopGroupEnabled {
		self.LoopGroupEnabled = true
		self.configure()
	}
	self.channel.FadeIn(seconds)
}

func (self *Transform) FadeOut(seconds float64) {
	if self.channel != nil {
		self.channel.FadeOut(seconds)
	}
}

func (self *Transform) PlayOnce(magnification ...float64) {
	mag := magnificationArg(magnification)
	if self.channel != nil {
		self.channel.PlayOnce(mag)
	}
}

func (self *Transform) Initialize() {
	if self.channel != nil {
		self.channel.Initialize()
	}
}

// Fast forwards the loop towards its next cycle. See [Channel.MoveNext].
func (self *Transform) MoveNext(speed float64) {
	if self.channel != nil {
		self.channel.MoveNext(speed)
	}
}

// --- internal ---

func (self *Transform) validate() {
	if !self.Mode.IsValid() {
		self.Mode = axis.Reference
	}
	self.Magnification = max(0, self.Magnification)
	for i := 1; i < 3; i++ {
		self.Loops[i].CopyFrom(self.Loops[0], self.SyncPeriod, self.SyncAmplitude, self.SyncEasing, false)
		self.Onces[i].CopyFrom(self.Onces[0], self.SyncPeriod, self.SyncAmplitude, self.SyncEasing, false)
	}
	for i := range 3 {
		self.Loops[i].Adjust()
		self.Loops[i].Validate()
		self.Onces[i].Adjust()
		self.Onces[i].Validate()
	}
}

func (self *Transform) build() {
	self.channel = NewChannel(axis.Signed, self.Loops[:], self.Onces[:], self.rng)
	self.configure()
}

func (self *Transform) configure() {
	loopGroup := self.LoopGroupEnabled && !self.IsChild()
	self.channel.SetGroupsEnabled(loopGroup, self.OnceGroupEnabled)
	self.channel.SetSync(self.SyncPeriod, self.SyncAmplitude)
	self.channel.SetOverrideOnce(self.OverrideOnce)
	self.channel.SetHooks(self.Hooks)
	for i := range 3 {
		self.channel.SetPairEnabled(i, self.Loops[i].Enabled && loopGroup, self.Onces[i].Enabled)
	}
	if self.IsChild() {
		self.channel.SetSink(nil)
	} else {
		self.channel.SetSink(self.apply)
	}
}

// Returns the combined displacement of this transform and its
// children, already scaled by the magnification.
func (self *Transform) Delta() mgl32.Vec3 {
	var sum mgl32.Vec3
	if self.channel != nil {
		for i, weight := range self.channel.Weights() {
			sum[i] += float32(weight)
		}
	}
	for _, child := range self.children {
		if child.channel == nil {
			continue
		}
		for i, weight := range child.channel.Weights() {
			sum[i] += float32(weight)
		}
	}
	return sum.Mul(float32(self.Magnification))
}

func (self *Transform) apply(weights []float64) {
	if self.Node == nil {
		return
	}
	if !self.hasRef {
		self.CaptureReference()
	}
	delta := self.Delta()
	switch self.Property {
	case Position:
		self.Node.SetPosition(self.Mode.ComposeVec(self.refVec, self.Node.Position(), delta))
	case Rotation:
		rotation := axis.EulerToQuat(delta)
		self.Node.SetRotation(self.Mode.ComposeQuat(self.refQuat, self.Node.Rotation(), rotation))
	case Scale:
		self.Node.SetScale(self.Mode.ComposeVec(self.refVec, self.Node.Scale(), delta))
	}
}
