// Package timeline drives jitter players from clips placed on a host
// timeline: a fade clip keeps a loop running while the playhead is
// inside it, a once clip fires a single cycle when entered.
package timeline

import "github.com/edwinsyarief/jitter"

// Behaviour attached to a span of a [Track]. OnPlay is invoked when
// the playhead enters the span and OnPause when it leaves it.
type Clip interface {
	OnPlay()
	OnPause()
}

// Fades the player's loop in when the clip starts and out when it
// ends.
type FadeClip struct {
	Player  jitter.Player
	FadeIn  float64 // seconds
	FadeOut float64 // seconds
}

// Creates a fade clip with one second fades.
func NewFadeClip(player jitter.Player) *FadeClip {
	return &FadeClip{Player: player, FadeIn: 1, FadeOut: 1}
}

func (self *FadeClip) OnPlay() {
	if self.Player != nil {
		self.Player.FadeIn(self.FadeIn)
	}
}

func (self *FadeClip) OnPause() {
	if self.Player != nil {
		self.Player.FadeOut(self.FadeOut)
	}
}

// Plays a single once cycle each time the clip is entered.
type OnceClip struct {
	Player        jitter.Player
	Magnification float64

	played bool
}

// Creates a once clip with magnification 1.
func NewOnceClip(player jitter.Player) *OnceClip {
	return &OnceClip{Player: player, Magnification: 1}
}

func (self *OnceClip) OnPlay() {
	if self.played || self.Player == nil {
		return
	}
	self.Player.PlayOnce(self.Magnification)
	self.played = true
}

func (self *OnceClip) OnPause() { self.played = false }
