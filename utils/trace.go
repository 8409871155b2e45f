package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed size history of weights, oldest first, for plotting how a
// jitter channel evolves over time.
type Trace struct {
	values []float64
	head   int
	count  int
}

// Creates a trace keeping the last capacity values.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		panic("expected capacity > 0")
	}
	return &Trace{values: make([]float64, capacity)}
}

// Appends a value, dropping the oldest one if the trace is full.
func (self *Trace) Push(value float64) {
	self.values[self.head] = value
	self.head = (self.head + 1) % len(self.values)
	self.count = min(self.count+1, len(self.values))
}

// Returns the number of values stored.
func (self *Trace) Len() int { return self.count }

// Returns the i-th stored value, 0 being the oldest.
func (self *Trace) At(i int) float64 {
	if i < 0 || i >= self.count {
		panic("trace index out of range")
	}
	start := self.head - self.count
	if start < 0 {
		start += len(self.values)
	}
	return self.values[(start+i)%len(self.values)]
}

// Draws the trace as a polyline inside bounds, mapping [lo, hi] to
// the bottom and top edges.
func (self *Trace) Draw(target *ebiten.Image, bounds image.Rectangle, lo, hi float64, clr color.Color) {
	if self.count < 2 {
		return
	}
	x, y := float32(bounds.Min.X), float32(bounds.Min.Y)
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	step := w / float32(len(self.values)-1)
	point := func(i int) (float32, float32) {
		return x + step*float32(i), y + h*(1-float32(BarFill(self.At(i), lo, hi)))
	}
	px, py := point(0)
	for i := 1; i < self.count; i++ {
		nx, ny := point(i)
		vector.StrokeLine(target, px, py, nx, ny, 1, clr, true)
		px, py = nx, ny
	}
}
