package jitter

import (
	"io"
	"log"
	"os"
)

// --- playback ---

// The playback command surface shared by every jitter component. This
// is everything timelines, input handlers or game logic need in order
// to drive a component.
//
// Magnification arguments are optional and default to 1. Passing more
// than one magnification panics.
type Player interface {
	// Starts looping at full level, restarting any loop in progress.
	PlayLoop(magnification ...float64)

	// Stops looping and writes the rest value to the target.
	StopLoop()

	// Fades the loop in over the given seconds. No-op if the loop is
	// already playing or fading in.
	FadeIn(seconds float64)

	// Fades the loop out over the given seconds, then stops it. No-op
	// if the loop is already stopped.
	FadeOut(seconds float64)

	// Plays a single cycle on top of the loop. Ignored while a previous
	// once cycle is still in progress, unless override once is enabled.
	PlayOnce(magnification ...float64)

	// Stops everything and writes the rest value to the target.
	Initialize()
}

// --- lifecycle ---

// A [Player] that can be driven by a host. Hosts must call OnInit
// before the first OnTick and must not tick after OnTeardown. No other
// ordering is assumed.
type Component interface {
	Player

	// Binds targets and builds the internal state. Calling OnInit
	// again rebuilds everything from the current configuration.
	OnInit()

	// Advances the component by dt seconds and writes the result to
	// its target. Ticking before OnInit does nothing.
	OnTick(dt float64)

	// Revalidates the configuration after it has been edited. Values
	// out of range are clamped.
	OnConfigChanged()

	// Stops everything and writes the rest value to the target.
	OnTeardown()
}

// --- logging ---

var pkgLogger = log.New(os.Stderr, "jitter: ", log.LstdFlags)

// Sets the logger used for warnings. Passing nil silences them.
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	pkgLogger = logger
}

// Returns the logger used for warnings.
func GetLogger() *log.Logger {
	return pkgLogger
}

func warnf(format string, args ...any) {
	pkgLogger.Printf("warning: "+format, args...)
}
