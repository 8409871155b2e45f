package jitter

import "github.com/go-gl/mathgl/mgl32"

// A mesh exposing named morph targets (blend shapes), with weights
// in [0, MorphScale].
type MorphTarget interface {
	MorphCount() int
	MorphName(index int) string
	MorphWeight(index int) float64
	SetMorphWeight(index int, weight float64)
}

// A transform node with local position, rotation and scale.
type Node interface {
	Position() mgl32.Vec3
	SetPosition(position mgl32.Vec3)
	Rotation() mgl32.Quat
	SetRotation(rotation mgl32.Quat)
	Scale() mgl32.Vec3
	SetScale(scale mgl32.Vec3)
}

// Returns the index of the morph with the given name, or -1 if the
// target is nil or has no such morph.
func MorphIndex(target MorphTarget, name string) int {
	if target == nil || name == "" {
		return -1
	}
	for i := range target.MorphCount() {
		if target.MorphName(i) == name {
			return i
		}
	}
	return -1
}

// --- basic implementations ---

// A minimal in-memory [MorphTarget].
type SimpleMesh struct {
	names   []string
	weights []float64
}

// Creates a mesh with the given morph names, all at weight zero.
func NewSimpleMesh(names ...string) *SimpleMesh {
	return &SimpleMesh{
		names:   append([]string(nil), names...),
		weights: make([]float64, len(names)),
	}
}

func (self *SimpleMesh) MorphCount() int               { return len(self.names) }
func (self *SimpleMesh) MorphName(index int) string    { return self.names[index] }
func (self *SimpleMesh) MorphWeight(index int) float64 { return self.weights[index] }
func (self *SimpleMesh) SetMorphWeight(index int, weight float64) {
	self.weights[index] = weight
}

// Adds a morph and returns its index. Adding an existing name only
// updates its weight.
func (self *SimpleMesh) AddMorph(name string, weight float64) int {
	if index := MorphIndex(self, name); index >= 0 {
		self.weights[index] = weight
		return index
	}
	index := len(self.names)
	self.names = setAt(self.names, name, index)
	self.weights = setAt(self.weights, weight, index)
	return index
}

// A minimal in-memory [Node], starting at the identity transform.
type SimpleNode struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
}

func NewSimpleNode() *SimpleNode {
	return &SimpleNode{rotation: mgl32.QuatIdent(), scale: mgl32.Vec3{1, 1, 1}}
}

func (self *SimpleNode) Position() mgl32.Vec3            { return self.position }
func (self *SimpleNode) SetPosition(position mgl32.Vec3) { self.position = position }
func (self *SimpleNode) Rotation() mgl32.Quat            { return self.rotation }
func (self *SimpleNode) SetRotation(rotation mgl32.Quat) { self.rotation = rotation }
func (self *SimpleNode) Scale() mgl32.Vec3               { return self.scale }
func (self *SimpleNode) SetScale(scale mgl32.Vec3)       { self.scale = scale }
