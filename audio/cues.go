// Package audio plays short synthesized cues for game events through the beep
// speaker. Sound is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

//go:generate go tool stringer -type=Cue -linecomment

// Cue is a game event with a sound.
type Cue uint8

const (
	Gain     Cue = iota // gain
	Clear               // clear
	LevelUp             // level-up
	GameOver            // game-over
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	Gain:     {{660, 60 * time.Millisecond}},
	Clear:    {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}},
	LevelUp:  {{783.99, 90 * time.Millisecond}, {1046.5, 90 * time.Millisecond}},
	GameOver: {{392, 150 * time.Millisecond}, {329.63, 150 * time.Millisecond}, {261.63, 150 * time.Millisecond}},
}

// Tone returns a sine tone of freq Hz lasting d at the given linear volume.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(sr.N(d), sine), vol), nil
}

// Build returns the streamer for c. Unknown cues yield an empty streamer.
func Build(c Cue, sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := Tone(sr, n.freq, n.dur, vol)
		if err != nil {
			return nil, err
		}
		parts = append(parts, tone)
	}
	return beep.Seq(parts...), nil
}

// newVolume maps a linear volume onto effects.Volume; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
