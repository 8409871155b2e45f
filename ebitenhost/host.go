// Package ebitenhost runs jitter components inside an Ebitengine game
// loop, calling their lifecycle hooks at the right times.
package ebitenhost

import (
	"slices"

	"github.com/edwinsyarief/jitter"
	"github.com/hajimehoshi/ebiten/v2"
)

// Implements [ebiten.Game], ticking every registered component once
// per update with a fixed step of rate/TPS seconds.
//
// Components are ticked in the order they were added. Transform
// children should be added before their parent, so the parent writes
// their once weights on the same tick.
type Host struct {
	components []jitter.Component

	update func() error
	draw   func(screen *ebiten.Image)

	logicalWidth  int
	logicalHeight int
	tickRate      float64
	currentTime   float64
	paused        bool
	inDraw        bool
}

var _ ebiten.Game = (*Host)(nil)

// Creates a host with the given logical screen size.
func New(width, height int) *Host {
	self := &Host{tickRate: 1}
	self.SetResolution(width, height)
	return self
}

// Sets the logical screen size returned by Layout.
func (self *Host) SetResolution(width, height int) {
	if self.inDraw {
		panic("can't change resolution during draw stage")
	}
	if width < 1 || height < 1 {
		panic("resolution must be at least (1, 1)")
	}
	self.logicalWidth, self.logicalHeight = width, height
}

// Returns the logical screen size.
func (self *Host) Resolution() (width, height int) {
	return self.logicalWidth, self.logicalHeight
}

// Sets a multiplier for the simulated time. 1 is real time, 0 freezes
// the components without pausing the game. Negative rates are treated
// as 0.
func (self *Host) SetTickRate(rate float64) { self.tickRate = max(0, rate) }

// Returns the simulated time multiplier.
func (self *Host) TickRate() float64 { return self.tickRate }

// Returns the simulated seconds since the host was created.
func (self *Host) Time() float64 { return self.currentTime }

// Stops or resumes ticking the components.
func (self *Host) SetPaused(paused bool) { self.paused = paused }

// Returns whether ticking is paused.
func (self *Host) IsPaused() bool { return self.paused }

// Sets a function invoked on every update before the components are
// ticked. Returning an error ends the game.
func (self *Host) SetUpdateFunc(update func() error) { self.update = update }

// Sets a function invoked on every draw.
func (self *Host) SetDrawFunc(draw func(screen *ebiten.Image)) { self.draw = draw }

// Registers the components and calls their OnInit. Components already
// registered are skipped.
func (self *Host) Add(components ...jitter.Component) {
	if self.inDraw {
		panic("can't add components during draw stage")
	}
	for _, component := range components {
		if component == nil || slices.Contains(self.components, component) {
			continue
		}
		self.components = append(self.components, component)
		component.OnInit()
	}
}

// Unregisters a component and calls its OnTeardown. Returns false if
// the component wasn't registered.
func (self *Host) Remove(component jitter.Component) bool {
	if self.inDraw {
		panic("can't remove components during draw stage")
	}
	index := slices.Index(self.components, component)
	if index < 0 {
		return false
	}
	self.components = slices.Delete(self.components, index, index+1)
	component.OnTeardown()
	return true
}

// Returns the registered components. The slice must not be modified.
func (self *Host) Components() []jitter.Component { return self.components }

// Calls OnConfigChanged on every component, for hosts that edit
// configurations live.
func (self *Host) Reconfigure() {
	for _, component := range self.components {
		component.OnConfigChanged()
	}
}

// Ticks every component by dt seconds, regardless of pause state.
func (self *Host) Step(dt float64) {
	self.currentTime += dt
	for _, component := range self.components {
		component.OnTick(dt)
	}
}

// Removes every component, calling their OnTeardown.
func (self *Host) Close() {
	for len(self.components) > 0 {
		self.Remove(self.components[len(self.components)-1])
	}
}

// --- ebiten.Game implementation ---

func (self *Host) Update() error {
	if self.update != nil {
		if err := self.update(); err != nil {
			return err
		}
	}
	if !self.paused {
		self.Step(self.tickRate / float64(ebiten.TPS()))
	}
	return nil
}

func (self *Host) Draw(screen *ebiten.Image) {
	self.inDraw = true
	if self.draw != nil {
		self.draw(screen)
	}
	self.inDraw = false
}

func (self *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return self.logicalWidth, self.logicalHeight
}

// Runs the game loop until it ends, tearing down the components
// afterwards.
func (self *Host) Run() error {
	defer self.Close()
	return ebiten.RunGame(self)
}
