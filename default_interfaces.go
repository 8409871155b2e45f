package jitter

import (
	"math/rand"
	"time"
)

// Used by components and channels created without an explicit source
// of randomness. Not safe for concurrent use, like everything else in
// this package.
var defaultRand Rand

func getDefaultRand() Rand {
	if defaultRand == nil {
		defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return defaultRand
}

func randOrDefault(rng Rand) Rand {
	if rng == nil {
		return getDefaultRand()
	}
	return rng
}
