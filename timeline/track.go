package timeline

import "sort"

// A clip placed on a track, active during [Start, Start+Duration).
type Span struct {
	Start    float64
	Duration float64
	Clip     Clip

	active bool
}

// Returns whether the given time lies inside the span.
func (self *Span) Contains(time float64) bool {
	return time >= self.Start && time < self.Start+self.Duration
}

// Returns whether the playhead is currently inside the span.
func (self *Span) IsActive() bool { return self.active }

// A sequence of clips and a playhead. Moving the playhead with
// [Track.Advance] or [Track.Seek] notifies the clips it enters and
// leaves, in start order. Overlapping spans are allowed.
type Track struct {
	spans []*Span
	time  float64
}

// Adds a clip and returns its span. Non-positive durations are never
// active.
func (self *Track) Add(start, duration float64, clip Clip) *Span {
	span := &Span{Start: start, Duration: max(0, duration), Clip: clip}
	index := sort.Search(len(self.spans), func(i int) bool {
		return self.spans[i].Start > start
	})
	self.spans = append(self.spans, nil)
	copy(self.spans[index+1:], self.spans[index:])
	self.spans[index] = span
	return span
}

// Returns the spans in start order. The slice must not be modified.
func (self *Track) Spans() []*Span { return self.spans }

// Returns the playhead position in seconds.
func (self *Track) Time() float64 { return self.time }

// Moves the playhead forward by dt seconds.
func (self *Track) Advance(dt float64) {
	self.Seek(self.time + max(0, dt))
}

// Moves the playhead to the given time, backwards or forwards.
// Clips that are left get OnPause before clips that are entered get
// OnPlay.
func (self *Track) Seek(time float64) {
	self.time = time
	for _, span := range self.spans {
		if span.active && !span.Contains(time) {
			span.active = false
			span.Clip.OnPause()
		}
	}
	for _, span := range self.spans {
		if !span.active && span.Contains(time) {
			span.active = true
			span.Clip.OnPlay()
		}
	}
}

// Pauses every active clip, as when the timeline stops.
func (self *Track) Stop() {
	for _, span := range self.spans {
		if span.active {
			span.active = false
			span.Clip.OnPause()
		}
	}
}
