package jitter

// Playback state of the loop group of a [Channel].
type PlayState uint8

const (
	Stopped PlayState = iota
	Playing
	FadingIn
	FadingOut

	playStateEndSentinel
)

// Returns a string representation of the play state.
func (self PlayState) String() string {
	switch self {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case FadingIn:
		return "FadingIn"
	case FadingOut:
		return "FadingOut"
	default:
		panic("invalid PlayState")
	}
}

// Drives the fade level of a loop group linearly between 0 and 1.
type fader struct {
	state PlayState
	level float64
	speed float64 // level units per second
}

func (self *fader) Play() {
	self.state = Playing
	self.level = 1
}

func (self *fader) Stop() {
	self.state = Stopped
	self.level = 0
}

// Starts fading in from the current level. Returns false if already
// playing or fading in.
func (self *fader) FadeIn(seconds float64) bool {
	if self.state == Playing || self.state == FadingIn {
		return false
	}
	if self.state == Stopped {
		self.level = 0
	}
	self.state = FadingIn
	self.speed = 1.0 / max(minFadeSeconds, seconds)
	return true
}

// Starts fading out from the current level. Returns false if already
// stopped.
func (self *fader) FadeOut(seconds float64) bool {
	if self.state == Stopped {
		return false
	}
	self.state = FadingOut
	self.speed = 1.0 / max(minFadeSeconds, seconds)
	return true
}

// Advances the fade. Returns true when a fade out reaches zero on this
// call, in which case the state is already Stopped.
func (self *fader) Update(dt float64) bool {
	switch self.state {
	case FadingIn:
		self.level += dt * self.speed
		if self.level >= 1-fadeEpsilon {
			self.level = 1
			self.state = Playing
		}
	case FadingOut:
		self.level -= dt * self.speed
		if self.level <= fadeEpsilon {
			self.level = 0
			self.state = Stopped
			return true
		}
	}
	return false
}

// Returns the current fade level, between 0 and 1.
func (self *fader) Level() float64 { return self.level }

// Returns whether the loop group should be advanced.
func (self *fader) IsActive() bool { return self.state != Stopped }
